package filmstrip

// Canvas geometry constants. Everything derives from CanvasWidth.
const (
	CanvasWidth  = 600
	CanvasMargin = 20
	HeaderHeight = 60
	FooterHeight = 80
	SlotSpacing  = 12

	singleSlotHeight = 560
	stripSlotHeight  = 380
)

// Geometry describes the computed canvas layout for one render pass.
type Geometry struct {
	CanvasWidth  int
	CanvasHeight int
	Margin       int
	HeaderHeight int
	FooterHeight int
	SlotWidth    int
	SlotHeight   int
	SlotSpacing  int
	// SlotYOffsets holds the top Y coordinate of each photo slot, in order.
	SlotYOffsets []int
}

// ComputeGeometry maps a layout mode and photo count to canvas geometry for
// the plain design. It is pure and always returns a valid geometry;
// photoCount 0 yields a header+footer-only strip.
func ComputeGeometry(mode LayoutMode, photoCount int) Geometry {
	g := Geometry{
		CanvasWidth:  CanvasWidth,
		Margin:       CanvasMargin,
		HeaderHeight: HeaderHeight,
		FooterHeight: FooterHeight,
		SlotSpacing:  SlotSpacing,
		SlotWidth:    CanvasWidth - 2*CanvasMargin,
	}

	if mode == Strip {
		g.SlotHeight = stripSlotHeight
	} else {
		g.SlotHeight = singleSlotHeight
	}

	if photoCount < 0 {
		photoCount = 0
	}

	y := g.Margin + g.HeaderHeight
	for i := 0; i < photoCount; i++ {
		g.SlotYOffsets = append(g.SlotYOffsets, y)
		y += g.SlotHeight + g.SlotSpacing
	}
	if photoCount > 0 {
		y -= g.SlotSpacing
	}
	g.CanvasHeight = y + g.FooterHeight + g.Margin

	return g
}

// ComputeOverlayGeometry pins canvas size to overlay artwork of native size
// (overlayW, overlayH), scaled to the fixed logical width. Slot positions are
// the plain-geometry positions scaled vertically into the pinned height so
// photos land inside the artwork's cutouts.
func ComputeOverlayGeometry(mode LayoutMode, photoCount, overlayW, overlayH int) Geometry {
	g := ComputeGeometry(mode, photoCount)
	if overlayW <= 0 || overlayH <= 0 {
		return g
	}

	pinned := overlayH * CanvasWidth / overlayW
	scale := float64(pinned) / float64(g.CanvasHeight)

	g.CanvasHeight = pinned
	g.SlotHeight = int(float64(g.SlotHeight) * scale)
	g.HeaderHeight = int(float64(g.HeaderHeight) * scale)
	g.FooterHeight = int(float64(g.FooterHeight) * scale)
	g.SlotSpacing = int(float64(g.SlotSpacing) * scale)
	for i, y := range g.SlotYOffsets {
		g.SlotYOffsets[i] = int(float64(y) * scale)
	}

	return g
}

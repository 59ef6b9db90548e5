package filmstrip

import (
	"image"
	"time"
)

// LayoutMode selects the strip arrangement.
type LayoutMode int

const (
	// Single is one square-ish photo slot.
	Single LayoutMode = iota
	// Strip is four landscape slots stacked vertically.
	Strip
)

func (m LayoutMode) String() string {
	if m == Strip {
		return "strip"
	}
	return "single"
}

// PhotoCount returns how many photos the capture step must collect.
func (m LayoutMode) PhotoCount() int {
	if m == Strip {
		return 4
	}
	return 1
}

// ParseLayoutMode parses a layout flag value.
func ParseLayoutMode(s string) (LayoutMode, bool) {
	switch s {
	case "single":
		return Single, true
	case "strip":
		return Strip, true
	}
	return Single, false
}

// DesignVariant selects between procedural decoration and overlay artwork.
type DesignVariant int

const (
	// Plain draws procedural header/footer bands and text.
	Plain DesignVariant = iota
	// Decorated stretches pre-authored overlay artwork over the canvas and
	// suppresses the procedural header/footer path entirely.
	Decorated
)

// FilterKind selects the capture-time color filter.
type FilterKind int

const (
	FilterNone FilterKind = iota
	// FilterRetro bakes a warm-tone/vignette/grain effect into the photo
	// pixels at capture time. The compositor never re-applies it.
	FilterRetro
)

// StickerKind identifies sticker artwork.
type StickerKind string

const (
	StickerHeart   StickerKind = "heart"
	StickerStar    StickerKind = "star"
	StickerSparkle StickerKind = "sparkle"
	StickerBolt    StickerKind = "bolt"
)

// Sticker scale bounds; mutations clamp into this range and the compositor
// clamps once more before drawing.
const (
	MinStickerScale = 0.3
	MaxStickerScale = 2.5
)

// BaseStickerSize is the unscaled sticker edge in canvas pixels.
const BaseStickerSize = 96

// ClampScale forces a sticker scale into [MinStickerScale, MaxStickerScale].
func ClampScale(s float64) float64 {
	if s < MinStickerScale {
		return MinStickerScale
	}
	if s > MaxStickerScale {
		return MaxStickerScale
	}
	return s
}

// CapturedPhoto is one captured frame. Pixels are immutable after capture;
// any capture-time filter is already baked in.
type CapturedPhoto struct {
	Pixels     image.Image
	CapturedAt time.Time
}

// StickerPlacement is one user-positioned sticker instance. X and Y are
// canvas-relative percentages in [0, 100].
type StickerPlacement struct {
	ID       int
	Kind     StickerKind
	X        float64
	Y        float64
	Rotation float64
	Scale    float64
}

// Request is the immutable input bundle for one render pass.
type Request struct {
	Layout     LayoutMode
	Photos     []*CapturedPhoto
	EventText  string
	FooterText string
	Stickers   []StickerPlacement
	Design     DesignVariant
	Filter     FilterKind
}

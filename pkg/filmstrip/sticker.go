package filmstrip

import (
	"image"
	"image/color"
	"math"
)

// Builtin sticker palette.
var (
	heartColor   = color.NRGBA{232, 58, 90, 255}
	starColor    = color.NRGBA{255, 200, 40, 255}
	sparkleColor = color.NRGBA{250, 250, 255, 255}
	boltColor    = color.NRGBA{255, 230, 0, 255}
)

// BuiltinStickerKinds lists the kinds the engine can draw without any
// external artwork.
var BuiltinStickerKinds = []StickerKind{StickerHeart, StickerStar, StickerSparkle, StickerBolt}

// BuiltinSticker procedurally draws artwork for a builtin kind on a
// transparent square. Returns nil for unknown kinds.
func BuiltinSticker(kind StickerKind) image.Image {
	switch kind {
	case StickerHeart:
		return fillShape(heartColor, insideHeart)
	case StickerStar:
		return fillShape(starColor, insideStar(5, 1.0, 0.42))
	case StickerSparkle:
		return fillShape(sparkleColor, insideSparkle)
	case StickerBolt:
		return fillShape(boltColor, insideBolt)
	}
	return nil
}

// fillShape rasterizes an implicit shape over [-1,1]² onto a transparent
// BaseStickerSize square.
func fillShape(c color.NRGBA, inside func(x, y float64) bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, BaseStickerSize, BaseStickerSize))
	half := float64(BaseStickerSize) / 2

	for py := 0; py < BaseStickerSize; py++ {
		for px := 0; px < BaseStickerSize; px++ {
			x := (float64(px) + 0.5 - half) / half
			y := (float64(py) + 0.5 - half) / half
			if inside(x, y) {
				img.SetNRGBA(px, py, c)
			}
		}
	}
	return img
}

// insideHeart is the classic implicit heart curve, flipped so the point
// faces down in raster coordinates.
func insideHeart(x, y float64) bool {
	x *= 1.3
	y = -y*1.3 + 0.1
	a := x*x + y*y - 1
	return a*a*a-x*x*y*y*y <= 0
}

// insideStar returns an n-pointed star test with the given outer and inner
// radii.
func insideStar(points int, outer, inner float64) func(x, y float64) bool {
	return func(x, y float64) bool {
		r := math.Hypot(x, y)
		if r == 0 {
			return true
		}
		theta := math.Atan2(-y, x) - math.Pi/2
		sector := math.Pi / float64(points)
		t := math.Mod(math.Abs(theta), 2*sector)
		if t > sector {
			t = 2*sector - t
		}
		// Radius of the star edge at this angle.
		edge := outer * inner / (inner + (outer-inner)*(t/sector))
		return r <= edge
	}
}

// insideSparkle is a four-point twinkle with concave edges.
func insideSparkle(x, y float64) bool {
	return math.Sqrt(math.Abs(x))+math.Sqrt(math.Abs(y)) <= 1
}

var boltOutline = []image.Point{
	{55, 0}, {20, 55}, {45, 55}, {35, 100}, {80, 40}, {52, 40},
}

// insideBolt tests against a lightning-bolt polygon authored on a 0..100
// grid.
func insideBolt(x, y float64) bool {
	px := (x + 1) * 50
	py := (y + 1) * 50
	return pointInPolygon(px, py, boltOutline)
}

// pointInPolygon is a standard even-odd ray cast.
func pointInPolygon(x, y float64, poly []image.Point) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		xi, yi := float64(poly[i].X), float64(poly[i].Y)
		xj, yj := float64(poly[j].X), float64(poly[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// stickerCenter converts a placement's percentage coordinates to absolute
// canvas pixels.
func stickerCenter(p StickerPlacement, canvas image.Rectangle) image.Point {
	return image.Pt(
		canvas.Min.X+int(p.X/100*float64(canvas.Dx())),
		canvas.Min.Y+int(p.Y/100*float64(canvas.Dy())),
	)
}

// drawSticker composes the placement transform: translate to center, rotate,
// scale, draw artwork centered. Scale is clamped once more as defense in
// depth; mutation handlers already clamp.
func drawSticker(s Surface, art image.Image, p StickerPlacement) {
	if art == nil {
		return
	}
	scale := ClampScale(p.Scale) * float64(BaseStickerSize) / float64(art.Bounds().Dx())
	s.DrawImageAt(art, stickerCenter(p, s.Bounds()), scale, p.Rotation)
}

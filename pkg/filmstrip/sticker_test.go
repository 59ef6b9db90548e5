package filmstrip

import (
	"image"
	"testing"
)

func TestClampScale(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, MinStickerScale},
		{-4, MinStickerScale},
		{0.3, 0.3},
		{1, 1},
		{2.5, 2.5},
		{99, MaxStickerScale},
	}
	for _, tc := range tests {
		if got := ClampScale(tc.in); got != tc.want {
			t.Errorf("ClampScale(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBuiltinStickerArtwork(t *testing.T) {
	for _, kind := range BuiltinStickerKinds {
		art := BuiltinSticker(kind)
		if art == nil {
			t.Fatalf("no artwork for builtin kind %q", kind)
		}
		b := art.Bounds()
		if b.Dx() != BaseStickerSize || b.Dy() != BaseStickerSize {
			t.Errorf("%s artwork is %v, want %dpx square", kind, b, BaseStickerSize)
		}

		// Shape covers something but not everything: some pixels opaque,
		// the corners transparent.
		opaque := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := art.At(x, y).RGBA(); a > 0 {
					opaque++
				}
			}
		}
		if opaque == 0 {
			t.Errorf("%s artwork is fully transparent", kind)
		}
		if opaque == b.Dx()*b.Dy() {
			t.Errorf("%s artwork has no transparent background", kind)
		}
	}

	if BuiltinSticker(StickerKind("no-such-kind")) != nil {
		t.Error("unknown kind should have no builtin artwork")
	}
}

func TestStickerCenterConversion(t *testing.T) {
	tests := []struct {
		x, y   float64
		canvas image.Rectangle
		want   image.Point
	}{
		{50, 50, image.Rect(0, 0, 600, 740), image.Pt(300, 370)},
		{50, 50, image.Rect(0, 0, 600, 1736), image.Pt(300, 868)},
		{0, 0, image.Rect(0, 0, 600, 740), image.Pt(0, 0)},
		{100, 100, image.Rect(0, 0, 400, 200), image.Pt(400, 200)},
		{25, 75, image.Rect(0, 0, 400, 400), image.Pt(100, 300)},
	}
	for _, tc := range tests {
		p := StickerPlacement{X: tc.x, Y: tc.y}
		if got := stickerCenter(p, tc.canvas); got != tc.want {
			t.Errorf("stickerCenter(%v%%, %v%%, %v) = %v, want %v", tc.x, tc.y, tc.canvas, got, tc.want)
		}
	}
}

func TestDrawStickerSkipsNilArtwork(t *testing.T) {
	fonts, err := NewFontSet()
	if err != nil {
		t.Fatal(err)
	}
	surf, err := NewRaster(100, 100, fonts)
	if err != nil {
		t.Fatal(err)
	}

	// Must not panic.
	drawSticker(surf, nil, StickerPlacement{X: 50, Y: 50, Scale: 1})
}

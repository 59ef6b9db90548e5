package filmstrip

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/clone"
)

// Retro filter tuning.
const (
	retroRedGain   = 1.15
	retroRedLift   = 10
	retroGreenGain = 0.97
	retroBlueGain  = 0.82
	retroContrast  = 0.18

	vignetteStart    = 0.55 // normalized radius where darkening begins
	vignetteMaxAlpha = 140

	retroDarkSpecks  = 900
	retroLightSpecks = 500
)

// Retro applies the warm-tone capture filter: channel shift, contrast
// stretch about the midpoint, radial vignette, then a dark and a light grain
// pass. It is applied exactly once, at capture time.
func Retro(img image.Image, rng *rand.Rand) *image.RGBA {
	out := clone.AsRGBA(img)
	b := out.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := out.PixOffset(x, y)
			out.Pix[i+0] = clampByte(float64(out.Pix[i+0])*retroRedGain + retroRedLift)
			out.Pix[i+1] = clampByte(float64(out.Pix[i+1]) * retroGreenGain)
			out.Pix[i+2] = clampByte(float64(out.Pix[i+2]) * retroBlueGain)
		}
	}

	out = adjust.Contrast(out, retroContrast)
	vignette(out)

	speckle(out, retroDarkSpecks, color.NRGBA{15, 10, 5, 25}, rng)
	speckle(out, retroLightSpecks, color.NRGBA{255, 245, 225, 18}, rng)

	return out
}

// vignette darkens pixels radially: transparent at the center, up to
// vignetteMaxAlpha black at the corners.
func vignette(img *image.RGBA) {
	b := img.Bounds()
	cx := float64(b.Min.X+b.Max.X) / 2
	cy := float64(b.Min.Y+b.Max.Y) / 2
	maxDist := math.Hypot(float64(b.Dx())/2, float64(b.Dy())/2)
	if maxDist == 0 {
		return
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			if d <= vignetteStart {
				continue
			}
			t := (d - vignetteStart) / (1 - vignetteStart)
			alpha := t * vignetteMaxAlpha / 255

			i := img.PixOffset(x, y)
			img.Pix[i+0] = clampByte(float64(img.Pix[i+0]) * (1 - alpha))
			img.Pix[i+1] = clampByte(float64(img.Pix[i+1]) * (1 - alpha))
			img.Pix[i+2] = clampByte(float64(img.Pix[i+2]) * (1 - alpha))
		}
	}
}

// speckle blends n single-pixel specks over the image. Colors are
// non-premultiplied so low alphas can carry bright channels.
func speckle(img *image.RGBA, n int, c color.NRGBA, rng *rand.Rand) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	src := image.NewUniform(c)
	for i := 0; i < n; i++ {
		x := b.Min.X + rng.Intn(b.Dx())
		y := b.Min.Y + rng.Intn(b.Dy())
		draw.Draw(img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

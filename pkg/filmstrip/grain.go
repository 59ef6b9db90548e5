package filmstrip

import (
	"image"
	"image/color"
	"math/rand"
	"time"
)

// Grain densities: one speck per this many square pixels.
const (
	canvasGrainDivisor = 600
	photoGrainDivisor  = 350
)

// darkSpeck is non-premultiplied: channel values may exceed the low alpha.
var darkSpeck = color.NRGBA{20, 16, 12, 18}

// newRand returns a seeded source, or a time-seeded one for seed 0 to match
// the reference per-render randomness.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// scatterGrain blends n low-alpha specks at uniformly random positions
// inside r. Speck size varies between 1 and 2 px.
func scatterGrain(s Surface, r image.Rectangle, n int, c color.Color, rng *rand.Rand) {
	if r.Empty() || n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		x := r.Min.X + rng.Intn(r.Dx())
		y := r.Min.Y + rng.Intn(r.Dy())
		size := 1 + rng.Intn(2)
		s.FillRect(image.Rect(x, y, x+size, y+size), c)
	}
}

// grainCount scales speck count with area.
func grainCount(r image.Rectangle, divisor int) int {
	return r.Dx() * r.Dy() / divisor
}

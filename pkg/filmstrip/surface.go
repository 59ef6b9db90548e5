package filmstrip

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"k8s.io/klog/v2"
)

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Size  float64
	Bold  bool
	Color color.Color
}

// Surface is the minimal drawing capability the compositor needs, so the
// pipeline is independent of any particular 2D backend.
type Surface interface {
	Bounds() image.Rectangle

	// FillRect blends a solid color over the given rectangle.
	FillRect(r image.Rectangle, c color.Color)

	// DrawImageRegion draws the src sub-rectangle region stretched exactly
	// onto dst.
	DrawImageRegion(src image.Image, region image.Rectangle, dst image.Rectangle)

	// DrawImageAt draws img centered at the given point after applying
	// uniform scale and a rotation in degrees.
	DrawImageAt(img image.Image, center image.Point, scale, rotationDegrees float64)

	// MeasureText returns the advance width of s in pixels.
	MeasureText(s string, style TextStyle) int

	// DrawText draws s with its baseline-left origin at (x, y).
	DrawText(s string, x, y int, style TextStyle)
}

// Raster is a software Surface over an in-memory RGBA image.
type Raster struct {
	img   *image.RGBA
	fonts *FontSet
}

// NewRaster allocates a raster surface. A zero-sized canvas is the one fatal
// input: no image can come out of it.
func NewRaster(w, h int, fonts *FontSet) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("unusable canvas size %dx%d", w, h)
	}
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		fonts: fonts,
	}, nil
}

// Image returns the underlying raster.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Bounds() image.Rectangle { return r.img.Bounds() }

func (r *Raster) FillRect(rect image.Rectangle, c color.Color) {
	draw.Draw(r.img, rect.Intersect(r.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *Raster) DrawImageRegion(src image.Image, region image.Rectangle, dst image.Rectangle) {
	if src == nil || region.Empty() || dst.Empty() {
		return
	}

	cropped := transform.Crop(src, region)
	scaled := transform.Resize(cropped, dst.Dx(), dst.Dy(), transform.Linear)
	draw.Draw(r.img, dst, scaled, scaled.Bounds().Min, draw.Over)
}

func (r *Raster) DrawImageAt(img image.Image, center image.Point, scale, rotationDegrees float64) {
	if img == nil || scale <= 0 {
		return
	}

	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 || h < 1 {
		return
	}

	out := transform.Resize(img, w, h, transform.Linear)
	if rotationDegrees != 0 {
		out = transform.Rotate(out, rotationDegrees, &transform.RotationOptions{ResizeBounds: true})
	}

	ob := out.Bounds()
	dst := image.Rect(0, 0, ob.Dx(), ob.Dy()).
		Add(image.Pt(center.X-ob.Dx()/2, center.Y-ob.Dy()/2))
	draw.Draw(r.img, dst, out, ob.Min, draw.Over)
}

func (r *Raster) MeasureText(s string, style TextStyle) int {
	face, err := r.fonts.Face(style.Size, style.Bold)
	if err != nil {
		klog.Errorf("face: %v", err)
		return 0
	}
	defer face.Close()

	return font.MeasureString(face, s).Ceil()
}

func (r *Raster) DrawText(s string, x, y int, style TextStyle) {
	face, err := r.fonts.Face(style.Size, style.Bold)
	if err != nil {
		klog.Errorf("face: %v", err)
		return
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(style.Color),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

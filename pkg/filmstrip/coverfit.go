package filmstrip

import "image"

// CoverFitRegion returns the sub-rectangle of src that, stretched onto a
// dstW x dstH slot, fills it completely without distortion: the source is
// cropped (centered) to the destination's aspect ratio, never letterboxed.
func CoverFitRegion(src image.Rectangle, dstW, dstH int) image.Rectangle {
	sw := float64(src.Dx())
	sh := float64(src.Dy())
	if sw <= 0 || sh <= 0 || dstW <= 0 || dstH <= 0 {
		return image.Rectangle{}
	}

	srcAspect := sw / sh
	dstAspect := float64(dstW) / float64(dstH)

	w, h := sw, sh
	if srcAspect > dstAspect {
		// Source is wider: crop width, keep height.
		w = sh * dstAspect
	} else {
		// Source is taller: crop height, keep width.
		h = sw / dstAspect
	}

	x0 := src.Min.X + int((sw-w)/2)
	y0 := src.Min.Y + int((sh-h)/2)
	return image.Rect(x0, y0, x0+int(w), y0+int(h))
}

// drawCoverFit crops photo to the slot's aspect ratio and stretches the crop
// exactly over the slot.
func drawCoverFit(s Surface, photo image.Image, slot image.Rectangle) {
	if photo == nil {
		return
	}
	region := CoverFitRegion(photo.Bounds(), slot.Dx(), slot.Dy())
	if region.Empty() {
		return
	}
	s.DrawImageRegion(photo, region, slot)
}

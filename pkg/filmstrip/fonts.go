package filmstrip

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSet holds parsed fonts and hands out faces at arbitrary sizes. The
// embedded Go fonts are always available, so text drawing never depends on
// external assets.
type FontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewFontSet parses the embedded fonts.
func NewFontSet() (*FontSet, error) {
	r, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular: %w", err)
	}

	b, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold: %w", err)
	}

	return &FontSet{regular: r, bold: b}, nil
}

// Face returns a font face at the given pixel size.
func (fs *FontSet) Face(size float64, bold bool) (font.Face, error) {
	f := fs.regular
	if bold {
		f = fs.bold
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	return face, nil
}

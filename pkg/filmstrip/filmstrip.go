// Package filmstrip composites captured photobooth photos into a stylized
// film-strip image with header/footer bands, film grain, stickers and
// optional overlay artwork.
package filmstrip

import "time"

// Config holds configuration for a filmstrip render run.
type Config struct {
	InDir      string
	OutDir     string
	EventText  string
	FooterText string

	Layout LayoutMode
	Design DesignVariant
	Filter FilterKind

	// StickerDir optionally overrides builtin sticker artwork.
	StickerDir string
	// OverlayPath points at decorative overlay artwork for the decorated
	// design variant.
	OverlayPath string

	// Seed for the grain random source; 0 means time-seeded.
	Seed int64

	// AssetTimeout bounds each artwork load; expired loads render as missing.
	AssetTimeout time.Duration
}

// DefaultAssetTimeout is used when Config.AssetTimeout is zero.
var DefaultAssetTimeout = 3 * time.Second

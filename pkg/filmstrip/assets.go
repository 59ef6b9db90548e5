package filmstrip

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// AssetStore supplies sticker artwork by kind and overlay artwork by layout
// mode. Loads may block; callers bound them with the context.
type AssetStore interface {
	Sticker(ctx context.Context, kind StickerKind) (image.Image, error)
	Overlay(ctx context.Context, mode LayoutMode) (image.Image, error)
}

// Library is the in-memory AssetStore. Builtin sticker artwork is always
// present; directory-loaded artwork overrides builtins per kind.
type Library struct {
	stickers map[StickerKind]image.Image
	overlays map[LayoutMode]image.Image
}

// NewLibrary returns a library preloaded with the builtin sticker kinds.
func NewLibrary() *Library {
	l := &Library{
		stickers: map[StickerKind]image.Image{},
		overlays: map[LayoutMode]image.Image{},
	}
	for _, k := range BuiltinStickerKinds {
		l.stickers[k] = BuiltinSticker(k)
	}
	return l
}

// Sticker returns artwork for kind.
func (l *Library) Sticker(_ context.Context, kind StickerKind) (image.Image, error) {
	img, ok := l.stickers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown sticker kind %q", kind)
	}
	return img, nil
}

// Overlay returns decorative artwork for a layout mode.
func (l *Library) Overlay(_ context.Context, mode LayoutMode) (image.Image, error) {
	img, ok := l.overlays[mode]
	if !ok {
		return nil, fmt.Errorf("no overlay artwork for layout %s", mode)
	}
	return img, nil
}

// RegisterSticker adds or replaces artwork for a kind.
func (l *Library) RegisterSticker(kind StickerKind, img image.Image) {
	l.stickers[kind] = img
}

// RegisterOverlay adds or replaces overlay artwork for a mode.
func (l *Library) RegisterOverlay(mode LayoutMode, img image.Image) {
	l.overlays[mode] = img
}

// LoadStickerDir walks dir and registers every decodable PNG as a sticker
// kind named after its base filename. Undecodable files are skipped, not
// fatal.
func (l *Library) LoadStickerDir(dir string) error {
	if dir == "" {
		return nil
	}

	return godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() || filepath.Base(path)[0] == '.' {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".png" {
				return nil
			}

			img, err := imgio.Open(path)
			if err != nil {
				klog.Warningf("skipping sticker %s: %v", path, err)
				return nil
			}

			kind := StickerKind(strings.TrimSuffix(filepath.Base(path), ext))
			l.stickers[kind] = img
			klog.V(1).Infof("loaded sticker %q from %s", kind, path)
			return nil
		},
	})
}

// LoadOverlay reads overlay artwork for a layout mode from disk.
func (l *Library) LoadOverlay(mode LayoutMode, path string) error {
	img, err := imgio.Open(path)
	if err != nil {
		return fmt.Errorf("open overlay: %w", err)
	}
	l.overlays[mode] = img
	return nil
}

package filmstrip

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
)

func TestLibraryBuiltins(t *testing.T) {
	lib := NewLibrary()
	ctx := context.Background()

	for _, kind := range BuiltinStickerKinds {
		if _, err := lib.Sticker(ctx, kind); err != nil {
			t.Errorf("builtin %q missing: %v", kind, err)
		}
	}

	if _, err := lib.Sticker(ctx, "nope"); err == nil {
		t.Error("unknown kind should error")
	}
	if _, err := lib.Overlay(ctx, Strip); err == nil {
		t.Error("unregistered overlay should error")
	}

	lib.RegisterOverlay(Strip, solid(10, 10, color.RGBA{1, 2, 3, 255}))
	if _, err := lib.Overlay(ctx, Strip); err != nil {
		t.Errorf("registered overlay: %v", err)
	}
}

func TestLoadStickerDir(t *testing.T) {
	dir := t.TempDir()

	if err := imgio.Save(filepath.Join(dir, "unicorn.png"), solid(32, 32, color.RGBA{250, 0, 250, 255}), imgio.PNGEncoder()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not artwork"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "corrupt.png"), []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary()
	if err := lib.LoadStickerDir(dir); err != nil {
		t.Fatalf("LoadStickerDir: %v", err)
	}

	ctx := context.Background()
	if _, err := lib.Sticker(ctx, "unicorn"); err != nil {
		t.Errorf("loaded sticker missing: %v", err)
	}
	if _, err := lib.Sticker(ctx, "corrupt"); err == nil {
		t.Error("corrupt file should have been skipped")
	}
	if _, err := lib.Sticker(ctx, StickerHeart); err != nil {
		t.Errorf("builtins must survive a directory load: %v", err)
	}
}

func TestLoadStickerDirEmptyPathIsNoop(t *testing.T) {
	lib := NewLibrary()
	if err := lib.LoadStickerDir(""); err != nil {
		t.Fatalf("empty dir should be a no-op, got %v", err)
	}
}

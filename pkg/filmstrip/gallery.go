package filmstrip

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"k8s.io/klog/v2"
)

//go:embed assets/gallery.tmpl
var galleryTmpl string

//go:embed assets/style.css
var styleText string

// WriteGallery writes an index.html listing every rendered strip in outDir,
// newest last, so listen mode has a browsable page.
func WriteGallery(outDir string, title string) error {
	strips, err := filepath.Glob(filepath.Join(outDir, "*.png"))
	if err != nil {
		return fmt.Errorf("glob: %w", err)
	}
	sort.Strings(strips)

	for i, s := range strips {
		strips[i] = filepath.Base(s)
	}
	klog.Infof("writing gallery with %d strips to %s", len(strips), outDir)

	tmpl, err := template.New("gallery").Parse(galleryTmpl)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	data := struct {
		Title  string
		Strips []string
	}{
		Title:  title,
		Strips: strips,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(outDir, "_"), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "_", "style.css"), []byte(styleText), 0o600); err != nil {
		return fmt.Errorf("write style: %w", err)
	}

	return os.WriteFile(filepath.Join(outDir, "index.html"), buf.Bytes(), 0o600)
}

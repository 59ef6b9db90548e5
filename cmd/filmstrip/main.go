// filmstrip renders photobooth film strips from a directory of captured
// photos.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/fsnotify/fsnotify"
	"github.com/otiai10/copy"
	"k8s.io/klog/v2"

	"github.com/tinybooth/filmstrip/pkg/booth"
	"github.com/tinybooth/filmstrip/pkg/filmstrip"
)

var (
	inDir      = flag.String("in", "", "Location of captured photos")
	outDir     = flag.String("out", "", "Location of output directory")
	layoutFlag = flag.String("layout", "strip", "Layout mode: single or strip")
	eventText  = flag.String("event", "", "Event text for the header band")
	footerText = flag.String("footer", "", "Footer tagline")
	design     = flag.String("design", "plain", "Design variant: plain or decorated")
	filterFlag = flag.String("filter", "none", "Capture filter: none or retro")
	stickerDir = flag.String("stickers", "", "Directory of sticker artwork overriding builtins")
	overlay    = flag.String("overlay", "", "Overlay artwork for the decorated design")
	seed       = flag.Int64("seed", 0, "Grain random seed (0 = time-seeded)")
	listen     = flag.Bool("listen", false, "serve the output directory via HTTP")
	addr       = flag.String("addr", "localhost:12801", "host:port to bind to in listen mode")
	watchFlag  = flag.Bool("watch", false, "watch for changes to the input directory and re-render")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *inDir == "" {
		klog.Exitf("--in is a required flag")
	}

	if *outDir == "" {
		klog.Exitf("--out is a required flag")
	}

	c := &filmstrip.Config{
		InDir:       *inDir,
		OutDir:      *outDir,
		EventText:   *eventText,
		FooterText:  *footerText,
		StickerDir:  *stickerDir,
		OverlayPath: *overlay,
		Seed:        *seed,
	}

	var ok bool
	c.Layout, ok = filmstrip.ParseLayoutMode(*layoutFlag)
	if !ok {
		klog.Exitf("unknown layout %q", *layoutFlag)
	}

	if *design == "decorated" {
		c.Design = filmstrip.Decorated
	}
	if *filterFlag == "retro" {
		c.Filter = filmstrip.FilterRetro
	}

	if err := render(c); err != nil {
		klog.Exitf("render failed: %v", err)
	}

	var wg sync.WaitGroup
	if *watchFlag {
		wg.Add(1)
		go func() {
			defer wg.Done()
			watch(c)
		}()
	}

	if *listen {
		wg.Add(1)
		go func() {
			defer wg.Done()
			serve(*outDir, *addr)
		}()
	}

	wg.Wait()
}

// render runs a full booth session against the input directory and writes
// strip.png plus copies of the source photos.
func render(c *filmstrip.Config) error {
	var rng *rand.Rand
	if c.Seed != 0 {
		rng = rand.New(rand.NewSource(c.Seed))
	}

	photos, err := filmstrip.CaptureAll(c.InDir, c.Filter, rng)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	need := c.Layout.PhotoCount()
	if len(photos) < need {
		klog.Warningf("only %d of %d photos captured, remaining slots stay blank", len(photos), need)
	}
	if len(photos) > need {
		photos = photos[:need]
	}

	s := booth.NewSession()
	if err := s.ChooseLayout(c.Layout, c.Design, c.Filter); err != nil {
		return err
	}
	for _, p := range photos {
		if err := s.AddPhoto(p); err != nil {
			return err
		}
	}
	s.SetText(c.EventText, c.FooterText)
	for _, sf := range stickerFlags {
		p, err := parseSticker(sf)
		if err != nil {
			return fmt.Errorf("bad -sticker %q: %w", sf, err)
		}
		id := s.AddSticker(p.Kind, p.X, p.Y)
		_ = s.RotateSticker(id, p.Rotation)
		_ = s.ResizeSticker(id, p.Scale)
	}

	lib := filmstrip.NewLibrary()
	if err := lib.LoadStickerDir(c.StickerDir); err != nil {
		klog.Warningf("sticker dir: %v", err)
	}
	if c.OverlayPath != "" {
		if err := lib.LoadOverlay(c.Layout, c.OverlayPath); err != nil {
			klog.Warningf("overlay: %v", err)
		}
	}

	comp, err := filmstrip.NewCompositor(lib)
	if err != nil {
		return fmt.Errorf("compositor: %w", err)
	}
	comp.Rand = rng

	req := s.Snapshot()
	img, err := comp.Compose(context.Background(), req)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}

	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	out := filepath.Join(c.OutDir, "strip.png")
	if err := imgio.Save(out, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	klog.Infof("wrote %s (%dx%d)", out, img.Bounds().Dx(), img.Bounds().Dy())

	if err := copy.Copy(c.InDir, filepath.Join(c.OutDir, "originals")); err != nil {
		klog.Warningf("copy originals: %v", err)
	}

	if err := filmstrip.WriteGallery(c.OutDir, "filmstrip 📸"); err != nil {
		return fmt.Errorf("gallery: %w", err)
	}

	return nil
}

// serve serves the output directory via HTTP.
func serve(path string, addr string) {
	fs := http.FileServer(http.Dir(path))
	http.Handle("/", fs)

	klog.Infof("Listening on %s...", addr)
	err := http.ListenAndServe(addr, nil)
	if err != nil {
		klog.Exitf("listen failed: %v", err)
	}
}

// watch re-renders whenever the input directory changes.
func watch(c *filmstrip.Config) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		klog.Exitf("new watcher: %v", err)
	}
	defer w.Close()

	go func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				klog.Infof("event: %s", event)
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					if err := render(c); err != nil {
						klog.Errorf("re-render failed: %v", err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				klog.Errorf("watch error: %v", err)
			}
		}
	}()

	if err := w.Add(c.InDir); err != nil {
		klog.Exitf("watch %s: %v", c.InDir, err)
	}

	<-make(chan struct{})
}

// stickerFlags collects repeated -sticker arguments.
var stickerFlags stickerList

type stickerList []string

func (s *stickerList) String() string { return strings.Join(*s, " ") }

func (s *stickerList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func init() {
	flag.Var(&stickerFlags, "sticker", "Sticker placement kind:x,y[,rotation[,scale]] (repeatable)")
}

// parseSticker parses "heart:50,50,15,1.2" into a placement.
func parseSticker(v string) (filmstrip.StickerPlacement, error) {
	p := filmstrip.StickerPlacement{Scale: 1}

	kind, rest, ok := strings.Cut(v, ":")
	if !ok {
		return p, fmt.Errorf("missing kind")
	}
	p.Kind = filmstrip.StickerKind(kind)

	parts := strings.Split(rest, ",")
	if len(parts) < 2 {
		return p, fmt.Errorf("need x,y")
	}

	vals := make([]float64, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return p, err
		}
		vals = append(vals, f)
	}

	p.X, p.Y = vals[0], vals[1]
	if len(vals) > 2 {
		p.Rotation = vals[2]
	}
	if len(vals) > 3 {
		p.Scale = vals[3]
	}
	return p, nil
}

package filmstrip

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"strings"
	"time"

	"k8s.io/klog/v2"
)

// Header/footer copy. The readout mimics a camcorder OSD.
const (
	HeaderReadout  = "REC ● PLAY ▲ SP CYBER-SHOT"
	DefaultEvent   = "MEMORIES"
	FooterBrand    = "CYBER-SHOT BOOTH"
	DefaultTagline = "MEMORIES MADE"
	footerDateFmt  = "02/Jan/2006"
	headerDateFmt  = "Jan 2006"
)

// Strip palette.
var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	bandColor       = color.RGBA{18, 18, 18, 255}
	matteColor      = color.RGBA{232, 232, 232, 255}
	readoutColor    = color.RGBA{255, 176, 0, 255}
	labelColor      = color.RGBA{235, 235, 235, 255}
)

const matteInset = 6

// Compositor renders Requests onto fresh raster surfaces. One Compositor may
// serve many render passes, but each pass owns its surface exclusively.
type Compositor struct {
	Assets AssetStore
	Fonts  *FontSet

	// Rand drives the grain passes. Nil means a time-seeded source per
	// render, matching the reference's intentional non-determinism.
	Rand *rand.Rand

	// AssetTimeout bounds each artwork load; on expiry the asset is treated
	// as missing and the render continues.
	AssetTimeout time.Duration
}

// NewCompositor builds a compositor around an asset store.
func NewCompositor(assets AssetStore) (*Compositor, error) {
	fonts, err := NewFontSet()
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	return &Compositor{
		Assets:       assets,
		Fonts:        fonts,
		AssetTimeout: DefaultAssetTimeout,
	}, nil
}

// Compose renders one request from scratch and returns the finished strip.
// Individual asset failures degrade to missing layers; the only fatal
// condition is a canvas no pixels can be drawn onto.
func (c *Compositor) Compose(ctx context.Context, req *Request) (*image.RGBA, error) {
	rng := c.Rand
	if rng == nil {
		rng = newRand(0)
	}

	design := req.Design
	var overlay image.Image
	if design == Decorated {
		var err error
		overlay, err = c.fetchOverlay(ctx, req.Layout)
		if err != nil {
			klog.Warningf("overlay unavailable, falling back to plain design: %v", err)
			design = Plain
		}
	}

	var g Geometry
	if overlay != nil {
		ob := overlay.Bounds()
		g = ComputeOverlayGeometry(req.Layout, len(req.Photos), ob.Dx(), ob.Dy())
	} else {
		g = ComputeGeometry(req.Layout, len(req.Photos))
	}

	surf, err := NewRaster(g.CanvasWidth, g.CanvasHeight, c.Fonts)
	if err != nil {
		return nil, err
	}

	canvas := surf.Bounds()
	klog.V(1).Infof("compose: %s/%d photos, %d stickers, canvas %dx%d",
		req.Layout, len(req.Photos), len(req.Stickers), g.CanvasWidth, g.CanvasHeight)

	// Layers commit bottom to top; later layers always win overlapping
	// pixels regardless of how long their assets took to load.
	surf.FillRect(canvas, backgroundColor)
	scatterGrain(surf, canvas, grainCount(canvas, canvasGrainDivisor), darkSpeck, rng)

	if design == Plain {
		c.drawHeader(surf, g, req)
	}

	c.drawPhotos(surf, g, req, rng)
	c.drawStickers(ctx, surf, req.Stickers)

	if overlay != nil {
		surf.DrawImageRegion(overlay, overlay.Bounds(), canvas)
	}

	if design == Plain {
		c.drawFooter(surf, g, req)
	}

	return surf.Image(), nil
}

func (c *Compositor) drawPhotos(surf Surface, g Geometry, req *Request, rng *rand.Rand) {
	slotX := (g.CanvasWidth - g.SlotWidth) / 2

	for i, y := range g.SlotYOffsets {
		if i >= len(req.Photos) {
			break
		}
		slot := image.Rect(slotX, y, slotX+g.SlotWidth, y+g.SlotHeight)
		surf.FillRect(slot.Inset(-matteInset), matteColor)

		p := req.Photos[i]
		if p == nil || p.Pixels == nil {
			klog.Warningf("photo %d has no pixels, leaving slot blank", i)
			continue
		}
		drawCoverFit(surf, p.Pixels, slot)
		scatterGrain(surf, slot, grainCount(slot, photoGrainDivisor), darkSpeck, rng)
	}
}

func (c *Compositor) drawStickers(ctx context.Context, surf Surface, placements []StickerPlacement) {
	// Insertion order: first placed ends up bottom-most among stickers.
	for _, p := range placements {
		art, err := c.fetchSticker(ctx, p.Kind)
		if err != nil {
			klog.Warningf("skipping sticker %d (%s): %v", p.ID, p.Kind, err)
			continue
		}
		drawSticker(surf, art, p)
	}
}

func (c *Compositor) drawHeader(surf Surface, g Geometry, req *Request) {
	top := g.Margin
	band := image.Rect(g.Margin, top, g.CanvasWidth-g.Margin, top+g.HeaderHeight)
	surf.FillRect(band, bandColor)

	readout := TextStyle{Size: 14, Bold: true, Color: readoutColor}
	surf.DrawText(HeaderReadout, band.Min.X+12, band.Min.Y+24, readout)

	event := strings.ToUpper(strings.TrimSpace(req.EventText))
	if event == "" {
		event = DefaultEvent
	}
	label := strings.ToUpper(captureTime(req).Format(headerDateFmt)) + " — " + event
	surf.DrawText(label, band.Min.X+12, band.Max.Y-14, TextStyle{Size: 16, Color: labelColor})
}

func (c *Compositor) drawFooter(surf Surface, g Geometry, req *Request) {
	band := image.Rect(g.Margin, g.CanvasHeight-g.Margin-g.FooterHeight,
		g.CanvasWidth-g.Margin, g.CanvasHeight-g.Margin)
	surf.FillRect(band, bandColor)

	tagline := strings.ToUpper(strings.TrimSpace(req.FooterText))
	if tagline == "" {
		tagline = DefaultTagline
	}

	brand := TextStyle{Size: 18, Bold: true, Color: labelColor}
	small := TextStyle{Size: 13, Color: readoutColor}

	// Single strips center their footer text, multi-photo strips keep it
	// left-aligned like a contact sheet.
	bx := band.Min.X + 12
	tx := band.Min.X + 12
	if req.Layout == Single {
		bx = band.Min.X + (band.Dx()-surf.MeasureText(FooterBrand, brand))/2
		tx = band.Min.X + (band.Dx()-surf.MeasureText(tagline, small))/2
	}
	surf.DrawText(FooterBrand, bx, band.Min.Y+30, brand)
	surf.DrawText(tagline, tx, band.Min.Y+50, small)

	date := captureTime(req).Format(footerDateFmt)
	dx := band.Max.X - 12 - surf.MeasureText(date, small)
	surf.DrawText(date, dx, band.Max.Y-12, small)
}

// captureTime is the first photo's capture moment, or now for an empty
// sequence.
func captureTime(req *Request) time.Time {
	for _, p := range req.Photos {
		if p != nil && !p.CapturedAt.IsZero() {
			return p.CapturedAt
		}
	}
	return time.Now()
}

func (c *Compositor) fetchSticker(ctx context.Context, kind StickerKind) (image.Image, error) {
	if c.Assets == nil {
		return nil, fmt.Errorf("no asset store")
	}
	return boundedFetch(ctx, c.assetTimeout(), func(ctx context.Context) (image.Image, error) {
		return c.Assets.Sticker(ctx, kind)
	})
}

func (c *Compositor) fetchOverlay(ctx context.Context, mode LayoutMode) (image.Image, error) {
	if c.Assets == nil {
		return nil, fmt.Errorf("no asset store")
	}
	return boundedFetch(ctx, c.assetTimeout(), func(ctx context.Context) (image.Image, error) {
		return c.Assets.Overlay(ctx, mode)
	})
}

func (c *Compositor) assetTimeout() time.Duration {
	if c.AssetTimeout > 0 {
		return c.AssetTimeout
	}
	return DefaultAssetTimeout
}

// boundedFetch runs an asset load with a deadline. A load that overruns is
// reported as an error so the caller can treat the asset as missing; the
// abandoned load finishes (and is discarded) on its own goroutine.
func boundedFetch(ctx context.Context, timeout time.Duration, load func(context.Context) (image.Image, error)) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		img image.Image
		err error
	}
	ch := make(chan result, 1)
	go func() {
		img, err := load(ctx)
		ch <- result{img, err}
	}()

	select {
	case r := <-ch:
		return r.img, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("asset load: %w", ctx.Err())
	}
}

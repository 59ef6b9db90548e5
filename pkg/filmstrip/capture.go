package filmstrip

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/barasher/go-exiftool"
	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

var exifDate = "2006:01:02 15:04:05"

// FindPhotoFiles walks root and returns photo file paths in name order, so
// repeated runs capture the same sequence.
func FindPhotoFiles(root string) ([]string, error) {
	found := []string{}

	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if filepath.Base(path)[0] == '.' {
				return godirwalk.SkipThis
			}
			if de.IsDir() {
				return nil
			}

			switch strings.ToLower(filepath.Ext(path)) {
			case ".jpg", ".jpeg", ".png":
				klog.V(1).Infof("found %s", path)
				found = append(found, path)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}

// Capture turns a photo file into a CapturedPhoto: decode, read the capture
// moment from EXIF DateTimeOriginal (file mtime when absent), and bake in
// the capture-time filter. The filter is applied here and nowhere else.
func Capture(path string, et *exiftool.Exiftool, filter FilterKind, rng *rand.Rand) (*CapturedPhoto, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio.Open: %w", err)
	}

	p := &CapturedPhoto{Pixels: img, CapturedAt: captureMoment(path, et)}

	if filter == FilterRetro {
		if rng == nil {
			rng = newRand(0)
		}
		p.Pixels = Retro(img, rng)
	}

	return p, nil
}

// CaptureAll captures every photo under root with the same filter setting.
func CaptureAll(root string, filter FilterKind, rng *rand.Rand) ([]*CapturedPhoto, error) {
	paths, err := FindPhotoFiles(root)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	et, err := exiftool.NewExiftool()
	if err != nil {
		klog.Warningf("exiftool unavailable, capture times fall back to mtime: %v", err)
	} else {
		defer et.Close()
	}

	photos := []*CapturedPhoto{}
	for _, path := range paths {
		p, err := Capture(path, et, filter, rng)
		if err != nil {
			klog.Errorf("capture %s: %v", path, err)
			continue
		}
		photos = append(photos, p)
	}

	return photos, nil
}

// captureMoment prefers EXIF DateTimeOriginal, then file mtime, then now.
func captureMoment(path string, et *exiftool.Exiftool) time.Time {
	if et != nil {
		fis := et.ExtractMetadata(path)
		if len(fis) > 0 && fis[0].Err == nil {
			if ds, err := fis[0].GetString("DateTimeOriginal"); err == nil {
				if t, err := time.Parse(exifDate, ds); err == nil {
					return t
				}
				klog.V(1).Infof("unparseable DateTimeOriginal for %s", path)
			}
		}
	}

	fi, err := os.Stat(path)
	if err != nil {
		return time.Now()
	}
	return fi.ModTime()
}

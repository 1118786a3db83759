package exifdate

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// DateString extracts the capture date of an image from its EXIF metadata
// and formats it as YYYY-MM-DD. Missing files, missing EXIF blocks, and
// missing date tags all produce an error; callers treat this as a
// non-fatal condition.
func DateString(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decoding EXIF: %w", err)
	}

	t, err := x.DateTime()
	if err != nil {
		return "", fmt.Errorf("no capture date in EXIF: %w", err)
	}

	return t.Format("2006-01-02"), nil
}

// Dimensions returns the pixel dimensions of an image, swapped when the
// EXIF orientation implies a 90 or 270 degree rotation, so the result
// reflects the image as displayed.
func Dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image header: %w", err)
	}
	w, h := cfg.Width, cfg.Height

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return w, h, nil
	}
	if x, err := exif.Decode(f); err == nil {
		if tag, err := x.Get(exif.Orientation); err == nil {
			if o, err := tag.Int(0); err == nil && o >= 5 && o <= 8 {
				w, h = h, w
			}
		}
	}

	return w, h, nil
}

package exifdate

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDateStringMissingFile(t *testing.T) {
	if _, err := DateString(filepath.Join(t.TempDir(), "absent.jpg")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDateStringNoExif(t *testing.T) {
	// PNGs carry no EXIF block; callers fall back to the default name.
	if _, err := DateString(writePNG(t, 4, 3)); err == nil {
		t.Fatal("expected error for image without EXIF")
	}
}

func TestDimensions(t *testing.T) {
	w, h, err := Dimensions(writePNG(t, 40, 30))
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if w != 40 || h != 30 {
		t.Errorf("expected 40x30, got %dx%d", w, h)
	}
}

func TestDimensionsUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.jpg")
	os.WriteFile(path, []byte("not an image"), 0644)

	if _, _, err := Dimensions(path); err == nil {
		t.Fatal("expected error for undecodable file")
	}
}

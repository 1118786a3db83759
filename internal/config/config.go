package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Render holds the resolved options for one renderer invocation.
type Render struct {
	FilelistPath string
	Name         string
	OutDir       string

	Orientation string // landscape, vertical
	Resolution  string // 1080p, 2160p, HD, 4k
	AspectMode  string // auto, scale, crop, pad
	CropBias    string // upper, center, lower

	DebugOverlay bool
	FPS          int
	Slowdown     float64

	WatermarkPath     string
	WatermarkPosition string
	WatermarkSize     string // class name or numeric fraction
	WatermarkAlpha    string // class name or numeric opacity

	Look      string
	Boomerang bool

	UseExifDate bool

	CRF     int
	Preset  string
	Encoder string
	FFmpeg  string

	DryRun  bool
	Verbose bool
}

// Validate rejects values outside the enumerated choices before anything
// is written or spawned.
func (c *Render) Validate() error {
	switch c.Orientation {
	case "landscape", "vertical":
	default:
		return fmt.Errorf("invalid orientation %q (landscape, vertical)", c.Orientation)
	}
	switch c.Resolution {
	case "1080p", "HD", "2160p", "4k":
	default:
		return fmt.Errorf("invalid resolution %q (1080p, 2160p, HD, 4k)", c.Resolution)
	}
	switch c.AspectMode {
	case "auto", "scale", "crop", "pad":
	default:
		return fmt.Errorf("invalid aspect mode %q (auto, scale, crop, pad)", c.AspectMode)
	}
	switch c.CropBias {
	case "upper", "center", "lower":
	default:
		return fmt.Errorf("invalid crop bias %q (upper, center, lower)", c.CropBias)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Slowdown <= 0 {
		return fmt.Errorf("slowdown must be positive, got %g", c.Slowdown)
	}
	return nil
}

// Dimensions maps orientation and resolution tier to exact pixel
// dimensions. HD/1080p and 4k/2160p are synonyms; vertical swaps the
// landscape dimensions of the same tier.
func Dimensions(orientation, resolution string) (int, int, error) {
	var w, h int
	switch resolution {
	case "1080p", "HD":
		w, h = 1920, 1080
	case "2160p", "4k":
		w, h = 3840, 2160
	default:
		return 0, 0, fmt.Errorf("unknown resolution tier %q", resolution)
	}
	switch orientation {
	case "landscape":
		return w, h, nil
	case "vertical":
		return h, w, nil
	default:
		return 0, 0, fmt.Errorf("unknown orientation %q", orientation)
	}
}

// ResolveAspectMode turns auto into the orientation default: crop for
// vertical output (fills the frame for social formats), scale for
// landscape (minimal aspect mismatch).
func ResolveAspectMode(mode, orientation string) string {
	if mode != "auto" {
		return mode
	}
	if orientation == "vertical" {
		return "crop"
	}
	return "scale"
}

// OutputBase returns the base output name: --name if given, otherwise the
// filelist name without extension.
func (c *Render) OutputBase() string {
	if c.Name != "" {
		return c.Name
	}
	base := filepath.Base(c.FilelistPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputFile builds the final file name from the base, an optional date
// prefix, and a suffix encoding the settings that shaped the render.
func (c *Render) OutputFile(datePrefix string) string {
	base := c.OutputBase()
	if datePrefix != "" {
		base = datePrefix + "_" + base
	}

	suffix := []string{c.Resolution}
	if c.Look != "" {
		suffix = append(suffix, c.Look)
	}
	if c.Slowdown != 1.0 {
		suffix = append(suffix, fmt.Sprintf("slow%gx", c.Slowdown))
	}
	if c.Boomerang {
		suffix = append(suffix, "boom")
	}
	if c.Orientation == "vertical" {
		suffix = append(suffix, "vertical")
	}
	if c.WatermarkPath != "" {
		suffix = append(suffix, "WM-"+c.WatermarkPosition)
	}

	return base + "_" + strings.Join(suffix, "_") + ".mp4"
}

// OutputPath joins the output directory and the resolved file name.
func (c *Render) OutputPath(datePrefix string) string {
	return filepath.Join(c.OutDir, c.OutputFile(datePrefix))
}

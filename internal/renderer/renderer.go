package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ivlev/timelapse/internal/config"
	"github.com/ivlev/timelapse/internal/look"
)

// FilterChain assembles the per-frame video filter chain for the target
// dimensions w x h. Stage order matters: geometry first, then tonal
// shaping, then diagnostic overlay, with the fps lock always last.
func FilterChain(cfg *config.Render, p look.Params, w, h int) (string, error) {
	var filters []string

	switch cfg.AspectMode {
	case "scale":
		// Forces exact WxH; distorts if the source AR differs.
		filters = append(filters, fmt.Sprintf("scale=%d:%d:flags=lanczos", w, h))

	case "pad":
		// Fit inside WxH preserving AR, bars fill the rest.
		filters = append(filters, fmt.Sprintf(
			"scale=iw*min(%d/iw\\,%d/ih):ih*min(%d/iw\\,%d/ih),pad=%d:%d:(ow-iw)/2:(oh-ih)/2",
			w, h, w, h, w, h))

	case "crop":
		// Cover WxH preserving AR, overflow is trimmed. The bias picks
		// which vertical band survives.
		var yExpr string
		switch cfg.CropBias {
		case "upper":
			yExpr = "0"
		case "center":
			yExpr = "(ih-oh)/2"
		case "lower":
			yExpr = "ih-oh"
		default:
			return "", fmt.Errorf("unknown crop bias %q", cfg.CropBias)
		}
		filters = append(filters, fmt.Sprintf(
			"scale=iw*max(%d/iw\\,%d/ih):ih*max(%d/iw\\,%d/ih),crop=%d:%d:(iw-ow)/2:%s",
			w, h, w, h, w, h, yExpr))

	default:
		return "", fmt.Errorf("unknown aspect mode %q", cfg.AspectMode)
	}

	if p.Gamma != 1.0 || p.Contrast != 1.0 || p.Saturation != 1.0 {
		filters = append(filters, fmt.Sprintf("eq=gamma=%g:contrast=%g:saturation=%g",
			p.Gamma, p.Contrast, p.Saturation))
	}

	if p.Clarity > 0 {
		filters = append(filters, fmt.Sprintf("unsharp=3:3:%g", p.Clarity))
	}

	if cfg.Slowdown != 1.0 {
		filters = append(filters, fmt.Sprintf("setpts=%g*PTS", cfg.Slowdown))
	}

	if cfg.DebugOverlay {
		// Frame index and source filename, for frame-level debugging.
		filters = append(filters,
			"drawtext=fontcolor=white:fontsize=24:text='%{n} %{filename}':x=20:y=20:box=1:boxcolor=black@0.5")
	}

	filters = append(filters, fmt.Sprintf("fps=%d", cfg.FPS))

	return strings.Join(filters, ","), nil
}

// Watermark overlay positions, as ffmpeg overlay x:y expressions with a 2%
// frame margin.
var watermarkPositions = map[string]string{
	"top-left":      "0.02*W:0.02*H",
	"top-right":     "W-w-0.02*W:0.02*H",
	"bottom-left":   "0.02*W:H-h-0.02*H",
	"bottom-right":  "W-w-0.02*W:H-h-0.02*H",
	"center":        "(W-w)/2:(H-h)/2",
	"center-bottom": "(W-w)/2:H-h-0.04*H",
}

// Watermark size classes as fractions of the shorter frame edge.
var watermarkSizes = map[string]float64{
	"small":   0.08,
	"default": 0.12,
	"large":   0.15,
}

// Watermark opacity classes. "weak" keeps the logo solid, "strong"
// suppresses it.
var watermarkAlphas = map[string]float64{
	"weak":    0.8,
	"default": 0.6,
	"strong":  0.35,
}

const (
	// DefaultWatermarkPosition is used when the requested position is not
	// recognized.
	DefaultWatermarkPosition = "bottom-left"

	// Vertical output gets a slightly larger watermark; 1.25-1.4 is the
	// usual sweet spot.
	verticalWatermarkBoost = 1.35

	// Hard cap on the rendered watermark width.
	maxWatermarkPx = 512
)

// WatermarkSpec is the resolved watermark overlay plan.
type WatermarkSpec struct {
	PositionExpr string
	SizeFraction float64
	TargetPx     int
	Alpha        float64

	// Warnings collects fallback notes for unrecognized class names.
	Warnings []string
}

// ResolveWatermark maps position/size/alpha classes (or raw numeric
// values for size and alpha) to concrete overlay parameters for a WxH
// frame. Unknown class names fall back to defaults with a warning rather
// than failing the run.
func ResolveWatermark(cfg *config.Render, w, h int) WatermarkSpec {
	spec := WatermarkSpec{}

	pos, ok := watermarkPositions[cfg.WatermarkPosition]
	if !ok {
		spec.Warnings = append(spec.Warnings, fmt.Sprintf(
			"unknown watermark position %q, using %s", cfg.WatermarkPosition, DefaultWatermarkPosition))
		pos = watermarkPositions[DefaultWatermarkPosition]
	}
	spec.PositionExpr = pos

	size := watermarkSizes["default"]
	if v, err := strconv.ParseFloat(cfg.WatermarkSize, 64); err == nil {
		size = v
	} else if v, ok := watermarkSizes[cfg.WatermarkSize]; ok {
		size = v
	} else {
		spec.Warnings = append(spec.Warnings, fmt.Sprintf(
			"unknown watermark size %q, using default", cfg.WatermarkSize))
	}

	if cfg.Orientation == "vertical" {
		size *= verticalWatermarkBoost
	}
	spec.SizeFraction = size

	minEdge := w
	if h < minEdge {
		minEdge = h
	}
	px := int(float64(minEdge) * size)
	if px > maxWatermarkPx {
		px = maxWatermarkPx
	}
	spec.TargetPx = px

	alpha := watermarkAlphas["default"]
	if v, err := strconv.ParseFloat(cfg.WatermarkAlpha, 64); err == nil {
		alpha = v
	} else if v, ok := watermarkAlphas[cfg.WatermarkAlpha]; ok {
		alpha = v
	} else {
		spec.Warnings = append(spec.Warnings, fmt.Sprintf(
			"unknown watermark alpha %q, using default", cfg.WatermarkAlpha))
	}
	spec.Alpha = alpha

	return spec
}

// WatermarkGraph wraps the plain filter chain into a filter_complex graph
// that scales the watermark input, applies its opacity, and overlays it on
// the filtered frames.
func WatermarkGraph(chain string, spec WatermarkSpec) string {
	return fmt.Sprintf(
		"[0:v]%s[bg];[1:v]scale=%d:-1[wm];[wm]format=rgba,colorchannelmixer=aa=%g[wm2];[bg][wm2]overlay=%s",
		chain, spec.TargetPx, spec.Alpha, spec.PositionExpr)
}

// Args builds the complete ffmpeg argument vector. listPath is the concat
// list to read (the boomerang list when looping is on), filter is either a
// -vf chain or, when watermarked, a filter_complex graph.
func Args(cfg *config.Render, listPath, filter, outputPath string) []string {
	args := []string{
		"-y",
		"-f", "concat", "-safe", "0",
		"-i", listPath,
	}

	if cfg.WatermarkPath != "" {
		args = append(args, "-i", cfg.WatermarkPath, "-filter_complex", filter)
	} else {
		args = append(args, "-vf", filter)
	}

	args = append(args, "-c:v", cfg.Encoder, "-pix_fmt", "yuv420p")

	// Quality knob depends on the encoder family.
	switch cfg.Encoder {
	case "h264_videotoolbox":
		// VideoToolbox has no CRF; map the knob to a bitrate.
		args = append(args, "-b:v", fmt.Sprintf("%dk", cfg.CRF*100))
	case "h264_nvenc":
		args = append(args, "-cq", strconv.Itoa(cfg.CRF))
	default:
		args = append(args, "-crf", strconv.Itoa(cfg.CRF), "-preset", cfg.Preset)
	}

	args = append(args, "-movflags", "+faststart", outputPath)
	return args
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/ivlev/timelapse/internal/config"
	"github.com/ivlev/timelapse/internal/exifdate"
	"github.com/ivlev/timelapse/internal/filelist"
	"github.com/ivlev/timelapse/internal/look"
	"github.com/ivlev/timelapse/internal/renderer"
	"github.com/ivlev/timelapse/internal/system"
	"github.com/ivlev/timelapse/internal/video"
)

func main() {
	log.SetFlags(0)

	// Output
	namePtr := pflag.String("name", "", "Base output name (default: file list name)")
	outdirPtr := pflag.String("outdir", "Timelapses", "Output directory")

	// Video basics
	orientationPtr := pflag.String("orientation", "landscape", "Output orientation: landscape (16:9) or vertical (9:16)")
	resolutionPtr := pflag.String("resolution", "1080p", "Resolution tier: 1080p/HD or 2160p/4k")
	aspectModePtr := pflag.String("aspect-mode", "auto", "Fit source into frame: auto, scale, crop, pad")
	cropBiasPtr := pflag.String("crop-bias", "center", "Crop bias for crop mode: upper, center, lower")
	debugOverlayPtr := pflag.Bool("debug-overlay", false, "Burn frame number + filename on video (for debugging)")
	fpsPtr := pflag.Int("fps", 24, "Output frame rate")

	// Timing
	slowdownPtr := pflag.Float64("slowdown", 1.0, "Playback slowdown (1.5 = 50% slower). 1.2-1.6 works well for astro")

	// Watermark
	watermarkPtr := pflag.String("watermark", "", "Path to watermark PNG")
	wmPositionPtr := pflag.String("wm-position", renderer.DefaultWatermarkPosition, "Watermark position: top-left, top-right, bottom-left, bottom-right, center, center-bottom")
	wmSizePtr := pflag.String("wm-size", "default", "Watermark size: small, default, large, or a fraction of frame width")
	wmAlphaPtr := pflag.String("wm-alpha", "default", "Watermark opacity: weak, default, strong, or a numeric alpha")

	// Look / color
	lookPtr := pflag.String("look", "", "Color look preset: milkyway, aurora, aurora-boosted")
	looksFilePtr := pflag.String("looks-file", "", "YAML file with additional look presets")
	gammaPtr := pflag.Float64("gamma", 1.0, "Gamma lift (1.2-1.25 recommended for astro)")
	contrastPtr := pflag.Float64("contrast", 1.0, "Contrast multiplier (1.1-1.25 recommended)")
	saturationPtr := pflag.Float64("saturation", 1.0, "Color saturation (1.05-1.15 recommended)")
	clarityPtr := pflag.Float64("clarity", 0.0, "Micro-contrast via unsharp mask (0.2-0.4 safe)")

	// Extras
	boomerangPtr := pflag.Bool("boomerang", false, "Play the sequence forward, then reversed")
	useExifDatePtr := pflag.Bool("use-exif-date", false, "Prefix output filename with EXIF date (YYYY-MM-DD)")

	// Encoding
	crfPtr := pflag.Int("crf", 20, "Encoding quality knob (passed to the encoder)")
	presetPtr := pflag.String("preset", "slow", "Encoding speed/quality preset (passed to the encoder)")
	encoderPtr := pflag.String("encoder", "libx264", "Video encoder, or 'auto' to probe for hardware H.264")
	ffmpegPtr := pflag.String("ffmpeg", "ffmpeg", "Path to the ffmpeg executable")

	// Debug
	dryRunPtr := pflag.Bool("dry-run", false, "Print the final ffmpeg command without executing")
	verbosePtr := pflag.Bool("verbose", false, "Print resolved configuration values")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Render a timelapse video from an ffmpeg concat file list.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <filelist>\n\nOptions:\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	cfg := &config.Render{
		FilelistPath:      pflag.Arg(0),
		Name:              *namePtr,
		OutDir:            *outdirPtr,
		Orientation:       *orientationPtr,
		Resolution:        *resolutionPtr,
		AspectMode:        *aspectModePtr,
		CropBias:          *cropBiasPtr,
		DebugOverlay:      *debugOverlayPtr,
		FPS:               *fpsPtr,
		Slowdown:          *slowdownPtr,
		WatermarkPath:     *watermarkPtr,
		WatermarkPosition: *wmPositionPtr,
		WatermarkSize:     *wmSizePtr,
		WatermarkAlpha:    *wmAlphaPtr,
		Look:              *lookPtr,
		Boomerang:         *boomerangPtr,
		UseExifDate:       *useExifDatePtr,
		CRF:               *crfPtr,
		Preset:            *presetPtr,
		Encoder:           *encoderPtr,
		FFmpeg:            *ffmpegPtr,
		DryRun:            *dryRunPtr,
		Verbose:           *verbosePtr,
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] %v", err)
	}

	// Explicit color flags override the preset per-field.
	overrides := look.Overrides{}
	if pflag.CommandLine.Changed("gamma") {
		overrides.Gamma = gammaPtr
	}
	if pflag.CommandLine.Changed("contrast") {
		overrides.Contrast = contrastPtr
	}
	if pflag.CommandLine.Changed("saturation") {
		overrides.Saturation = saturationPtr
	}
	if pflag.CommandLine.Changed("clarity") {
		overrides.Clarity = clarityPtr
	}

	looks := look.Builtin()
	if *looksFilePtr != "" {
		if err := looks.LoadFile(*looksFilePtr); err != nil {
			log.Fatalf("[-] %v", err)
		}
	}
	params, err := looks.Resolve(cfg.Look, overrides)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	frames, err := filelist.Read(cfg.FilelistPath)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	width, height, err := config.Dimensions(cfg.Orientation, cfg.Resolution)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	cfg.AspectMode = config.ResolveAspectMode(cfg.AspectMode, cfg.Orientation)

	warnOrientationMismatch(cfg, frames[0])

	datePrefix := ""
	if cfg.UseExifDate {
		date, err := exifdate.DateString(frames[0])
		if err != nil {
			fmt.Printf("[!] No EXIF date in %s (%v), using default name\n", frames[0], err)
		} else {
			datePrefix = date
		}
	}

	if cfg.Encoder == "auto" {
		cfg.Encoder = system.DetectEncoder(cfg.FFmpeg)
		fmt.Printf("[*] Selected encoder: %s\n", cfg.Encoder)
	}

	if cfg.Verbose {
		fmt.Printf("[*] System: %s\n", system.Preflight())
		fmt.Printf("[*] Output frame: %dx%d (%s %s), aspect mode %s\n",
			width, height, cfg.Orientation, cfg.Resolution, cfg.AspectMode)
		fmt.Printf("[*] Look parameters: gamma=%g contrast=%g saturation=%g clarity=%g\n",
			params.Gamma, params.Contrast, params.Saturation, params.Clarity)
	}

	chain, err := renderer.FilterChain(cfg, params, width, height)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	filter := chain
	if cfg.WatermarkPath != "" {
		if _, err := os.Stat(cfg.WatermarkPath); err != nil {
			log.Fatalf("[-] Watermark file not found: %s", cfg.WatermarkPath)
		}
		spec := renderer.ResolveWatermark(cfg, width, height)
		for _, w := range spec.Warnings {
			fmt.Printf("[!] %s\n", w)
		}
		if cfg.Verbose {
			fmt.Printf("[*] Watermark: size factor %.3f, target %dpx, alpha %.2f\n",
				spec.SizeFraction, spec.TargetPx, spec.Alpha)
		}
		filter = renderer.WatermarkGraph(chain, spec)
	}

	// The boomerang list is only materialized for a real run; a dry run
	// must not touch the filesystem.
	inputList := cfg.FilelistPath
	if cfg.Boomerang {
		if cfg.DryRun {
			fmt.Printf("[*] Boomerang: a real run reads a generated concat list of %d frames\n", 2*len(frames)-1)
		} else {
			tmp, err := filelist.WriteBoomerang(frames)
			if err != nil {
				log.Fatalf("[-] %v", err)
			}
			inputList = tmp
		}
	}

	outputPath := cfg.OutputPath(datePrefix)
	args := renderer.Args(cfg, inputList, filter, outputPath)

	fmt.Printf("\nFFmpeg command:\n\n%s\n\n", video.Command(cfg.FFmpeg, args))

	if cfg.DryRun {
		return
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		log.Fatalf("[-] Creating output directory: %v", err)
	}

	runner := &video.FFmpegRunner{Binary: cfg.FFmpeg}
	runErr := runner.Run(context.Background(), args)

	// The boomerang list is temporary even when the encode fails.
	if inputList != cfg.FilelistPath {
		os.Remove(inputList)
	}
	if runErr != nil {
		log.Fatalf("[-] %v", runErr)
	}

	fmt.Printf("[+] Done: %s\n", outputPath)
}

// warnOrientationMismatch compares the first frame's displayed dimensions
// with the requested output orientation. Mismatches are allowed (the
// aspect mode reconciles them) but usually lose edges.
func warnOrientationMismatch(cfg *config.Render, firstFrame string) {
	w, h, err := exifdate.Dimensions(firstFrame)
	if err != nil {
		if cfg.Verbose {
			fmt.Printf("[!] Could not read dimensions of %s: %v\n", firstFrame, err)
		}
		return
	}
	if cfg.Verbose {
		fmt.Printf("[*] Source dimensions: %dx%d\n", w, h)
	}

	srcVertical := h > w
	outVertical := cfg.Orientation == "vertical"
	if outVertical && !srcVertical {
		fmt.Println("[!] Output is vertical but source images are landscape; edges may be lost depending on --aspect-mode")
	}
	if !outVertical && srcVertical {
		fmt.Println("[!] Output is landscape but source images are vertical; edges may be lost depending on --aspect-mode")
	}
}

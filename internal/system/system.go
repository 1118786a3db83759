package system

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// DetectEncoder probes the ffmpeg build for a hardware H.264 encoder and
// falls back to software x264. Used for --encoder auto.
//
// Priority:
//  1. macOS (VideoToolbox)
//  2. NVIDIA (NVENC)
//  3. Software (libx264)
func DetectEncoder(ffmpegPath string) string {
	candidates := []string{
		"h264_videotoolbox",
		"h264_nvenc",
	}

	out, err := exec.Command(ffmpegPath, "-encoders").CombinedOutput()
	if err != nil {
		return "libx264"
	}

	for _, name := range candidates {
		if strings.Contains(string(out), name) {
			return name
		}
	}
	return "libx264"
}

// Preflight summarizes the machine the encode is about to run on. Purely
// informational; probe failures degrade to omitted fields.
func Preflight() string {
	var parts []string

	if n, err := cpu.Counts(true); err == nil {
		parts = append(parts, fmt.Sprintf("cpus=%d", n))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		parts = append(parts, fmt.Sprintf("mem=%.1f/%.1f GiB available",
			float64(vm.Available)/(1<<30), float64(vm.Total)/(1<<30)))
	}

	if len(parts) == 0 {
		return "system info unavailable"
	}
	return strings.Join(parts, " ")
}

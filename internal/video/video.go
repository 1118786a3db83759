package video

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes one encoder invocation and reports its outcome.
type Runner interface {
	Run(ctx context.Context, args []string) error
}

// FFmpegRunner runs the external ffmpeg binary synchronously, streaming
// its output through to the caller's terminal.
type FFmpegRunner struct {
	Binary string // path or name of the ffmpeg executable; "ffmpeg" if empty
}

func (r *FFmpegRunner) binary() string {
	if r.Binary == "" {
		return "ffmpeg"
	}
	return r.Binary
}

func (r *FFmpegRunner) Run(ctx context.Context, args []string) error {
	bin, err := exec.LookPath(r.binary())
	if err != nil {
		return fmt.Errorf("encoder binary %q not found: %w", r.binary(), err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("ffmpeg exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("running ffmpeg: %w", err)
	}
	return nil
}

// Command renders an invocation as a single printable line, for dry runs
// and logging.
func Command(binary string, args []string) string {
	return strings.Join(append([]string{binary}, args...), " ")
}

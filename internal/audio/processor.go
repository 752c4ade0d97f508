package audio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/radio-t/speech-budget/internal/content"
)

//go:generate moq -out mocks/command_runner.go -pkg mocks -skip-ensure -fmt goimports . CommandRunner

// CommandRunner runs an external command and returns its standard output
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// FFprobeProcessor measures audio files with ffprobe
type FFprobeProcessor struct {
	binary    string
	cmdRunner CommandRunner
}

// NewFFprobeProcessor creates a new ffprobe processor; empty binary means "ffprobe" from PATH
func NewFFprobeProcessor(binary string) *FFprobeProcessor {
	if binary == "" {
		binary = content.DefaultFFprobePath
	}
	return &FFprobeProcessor{
		binary:    binary,
		cmdRunner: &DefaultCommandRunner{},
	}
}

// probeOutput is the part of `ffprobe -print_format json -show_format` output we use.
// ffprobe reports numbers as strings.
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Duration returns the duration of an audio file in seconds
func (p *FFprobeProcessor) Duration(ctx context.Context, filename string) (float64, error) {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("audio file does not exist: %s", filename)
		}
		return 0, fmt.Errorf("failed to check audio file: %w", err)
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		filename,
	}

	out, err := p.cmdRunner.Output(ctx, p.binary, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseProbeDuration(out)
}

// parseProbeDuration extracts format.duration from ffprobe json output
func parseProbeDuration(out []byte) (float64, error) {
	var probe probeOutput
	if err := sonic.Unmarshal(out, &probe); err != nil {
		return 0, fmt.Errorf("failed to decode ffprobe output: %w", err)
	}

	raw := strings.TrimSpace(probe.Format.Duration)
	if raw == "" || raw == "N/A" {
		return 0, errors.New("ffprobe output has no duration")
	}

	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}

	return duration, nil
}

// DefaultCommandRunner is the default implementation of CommandRunner
type DefaultCommandRunner struct{}

// Output runs the command and returns its stdout; stderr is included in the error
func (r *DefaultCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 -- binary comes from startup configuration, arguments are constructed internally
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}

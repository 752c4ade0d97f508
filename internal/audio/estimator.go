package audio

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/radio-t/speech-budget/internal/content"
	"github.com/radio-t/speech-budget/speech"
)

//go:generate moq -out mocks/synthesizer.go -pkg mocks -skip-ensure -fmt goimports . Synthesizer
//go:generate moq -out mocks/prober.go -pkg mocks -skip-ensure -fmt goimports . Prober

// Synthesizer renders text to audio bytes
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Prober reports the duration of an audio file in seconds
type Prober interface {
	Duration(ctx context.Context, filename string) (float64, error)
}

// Estimator measures how long text takes to speak.
// It synthesizes the text and probes the audio; when either step fails it
// falls back to a word-count estimate, so Measure never fails.
type Estimator struct {
	synth   Synthesizer
	prober  Prober
	text    *content.TextProcessor
	tempDir string
}

// NewEstimator creates an estimator; empty tempDir means os.TempDir()
func NewEstimator(synth Synthesizer, prober Prober, wordsPerMinute float64, tempDir string) *Estimator {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Estimator{
		synth:   synth,
		prober:  prober,
		text:    content.NewTextProcessor(wordsPerMinute),
		tempDir: tempDir,
	}
}

// Measure returns the spoken duration of text
func (e *Estimator) Measure(ctx context.Context, text string) speech.Measurement {
	log := zerolog.Ctx(ctx)

	if e.text.WordCount(text) == 0 {
		return speech.Measurement{Seconds: 0, Estimated: true}
	}

	duration, err := e.measureSynthesized(ctx, text)
	if err != nil {
		estimate := e.text.EstimateAudioDuration(text)
		log.Warn().Err(err).Float64("estimate", estimate).Msg("error generating TTS audio, using word count estimate")
		return speech.Measurement{Seconds: estimate, Estimated: true}
	}

	log.Debug().Float64("duration", duration).Msg("measured synthesized audio")
	return speech.Measurement{Seconds: duration}
}

// measureSynthesized renders text to a temporary file, probes it and removes the file
func (e *Estimator) measureSynthesized(ctx context.Context, text string) (float64, error) {
	audioData, err := e.synth.Synthesize(ctx, text)
	if err != nil {
		return 0, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	filename := filepath.Join(e.tempDir, fmt.Sprintf("speech-%s.mp3", uuid.NewString()))
	defer func() {
		if rmErr := os.Remove(filename); rmErr != nil && !os.IsNotExist(rmErr) {
			zerolog.Ctx(ctx).Warn().Err(rmErr).Str("file", filename).Msg("failed to remove audio file")
		}
	}()

	if err := os.WriteFile(filename, audioData, 0o600); err != nil {
		return 0, fmt.Errorf("failed to write audio file: %w", err)
	}

	duration, err := e.prober.Duration(ctx, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to probe audio duration: %w", err)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, fmt.Errorf("invalid audio duration %v", duration)
	}

	return duration, nil
}

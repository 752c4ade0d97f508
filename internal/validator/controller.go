// Package validator fits text into a spoken-duration limit.
//
// Controller measures the text, and when it is too long asks the shortener
// for a rewrite at the ratio limit/duration, re-measures, and repeats once more
// if needed. It never makes more than MaxShorteningPasses rewrite requests and
// does not promise the final text fits: the result carries the last measurement.
package validator

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/radio-t/speech-budget/internal/content"
	"github.com/radio-t/speech-budget/speech"
)

//go:generate moq -out mocks/measurer.go -pkg mocks -skip-ensure -fmt goimports . Measurer
//go:generate moq -out mocks/shortener.go -pkg mocks -skip-ensure -fmt goimports . Shortener

// MaxShorteningPasses caps rewrite requests per validation
const MaxShorteningPasses = 2

// Measurer returns the spoken duration of text; it never fails
type Measurer interface {
	Measure(ctx context.Context, text string) speech.Measurement
}

// Shortener rewrites text at about ratio of its word count; on failure it returns text unchanged
type Shortener interface {
	Shorten(ctx context.Context, text string, ratio float64) string
}

// Controller runs the measure/shorten loop for one text at a time.
// It holds no per-request state and is safe for concurrent use.
type Controller struct {
	measurer    Measurer
	shortener   Shortener
	maxDuration float64
}

// NewController creates a controller enforcing maxDuration seconds
func NewController(measurer Measurer, shortener Shortener, maxDuration float64) *Controller {
	return &Controller{measurer: measurer, shortener: shortener, maxDuration: maxDuration}
}

// MaxDuration returns the enforced limit in seconds
func (c *Controller) MaxDuration() float64 {
	return c.maxDuration
}

// Validate measures text and shortens it when it exceeds the limit
func (c *Controller) Validate(ctx context.Context, text string) speech.ValidationResult {
	log := zerolog.Ctx(ctx)
	log.Info().Float64("max_duration", c.maxDuration).Msg("maximum allowed audio duration")

	original := c.measurer.Measure(ctx, text)
	log.Info().Float64("duration", original.Seconds).Bool("estimated", original.Estimated).
		Msg("generated audio duration")

	if original.Seconds <= c.maxDuration {
		log.Info().Msg("duration is within limits, text doesn't need shortening")
		return speech.ValidationResult{
			Modified:           false,
			Text:               text,
			OriginalDuration:   original.Seconds,
			Duration:           original.Seconds,
			MaxAllowedDuration: c.maxDuration,
			Estimated:          original.Estimated,
		}
	}

	result := speech.ValidationResult{
		Modified:           true,
		Text:               text,
		OriginalDuration:   original.Seconds,
		Duration:           original.Seconds,
		MaxAllowedDuration: c.maxDuration,
		Estimated:          original.Estimated,
	}

	for result.Duration > c.maxDuration && result.Passes < MaxShorteningPasses {
		req := speech.ShorteningRequest{Text: result.Text, Ratio: c.maxDuration / result.Duration}
		log.Info().Int("pass", result.Passes+1).
			Float64("overshoot", result.Duration-c.maxDuration).
			Float64("factor", 1/req.Ratio).
			Msg("audio exceeds allowed duration, shortening text")

		result.Text = c.shortener.Shorten(ctx, req.Text, req.Ratio)
		result.Passes++

		m := c.measurer.Measure(ctx, result.Text)
		result.Duration, result.Estimated = m.Seconds, m.Estimated
		log.Info().Int("pass", result.Passes).Float64("duration", m.Seconds).
			Str("text", content.TruncateString(result.Text, content.DisplayTruncateLength)).
			Msg("duration after shortening")
	}

	if result.Duration > c.maxDuration {
		log.Warn().Float64("duration", result.Duration).Int("passes", result.Passes).
			Msg("text still exceeds allowed duration")
	}
	return result
}

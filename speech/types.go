package speech

import (
	"errors"
	"fmt"
	"time"
)

// Config represents the application configuration, read once at startup
type Config struct {
	OpenAIAPIKey   string
	OpenAIBaseURL  string        // alternative OpenAI-compatible endpoint, empty for api.openai.com
	MaxDuration    float64       // maximum allowed audio duration in seconds
	Port           int           // listening port of the HTTP API
	TTSModel       string        // openAI speech model
	Voice          string        // openAI TTS voice to use
	ChatModel      string        // model used to shorten text
	WordsPerMinute float64       // speaking rate for heuristic estimates
	FFprobePath    string        // ffprobe binary used to measure audio
	TempDir        string        // directory for transient audio artifacts
	RequestTimeout time.Duration // upper bound for a single validation request
	Debug          bool
}

// Validate checks that the configuration can drive the service
func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return errors.New("openai api key is required")
	}
	if c.MaxDuration <= 0 {
		return fmt.Errorf("max audio duration must be positive, got %v", c.MaxDuration)
	}
	if c.WordsPerMinute <= 0 {
		return fmt.Errorf("words per minute must be positive, got %v", c.WordsPerMinute)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// Measurement is a duration of spoken text in seconds.
// Estimated is set when the value comes from the word-count heuristic
// rather than from probing synthesized audio.
type Measurement struct {
	Seconds   float64
	Estimated bool
}

// ShorteningRequest asks for a rewrite of Text at roughly Ratio of its word count
type ShorteningRequest struct {
	Text  string
	Ratio float64
}

// ValidationResult is the outcome of fitting a text into the duration limit
type ValidationResult struct {
	Modified           bool
	Text               string
	OriginalDuration   float64 // first measurement of the submitted text
	Duration           float64 // last measurement, of Text
	MaxAllowedDuration float64
	Passes             int  // shortening passes performed
	Estimated          bool // Duration is a heuristic estimate
}

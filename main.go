// file: main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/radio-t/speech-budget/internal/ai"
	"github.com/radio-t/speech-budget/internal/audio"
	"github.com/radio-t/speech-budget/internal/server"
	"github.com/radio-t/speech-budget/internal/validator"
	"github.com/radio-t/speech-budget/speech"
)

func main() {
	// .env is optional, real environment wins over it
	_ = godotenv.Load()

	config, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	log := setupLogger(config.Debug)
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, log); err != nil {
		log.Fatal().Err(err).Msg("application error")
	}
}

func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()
}

// newController wires the estimator and summarizer around a single OpenAI client
func newController(config speech.Config, client ai.HTTPClient) *validator.Controller {
	openAI := ai.NewOpenAIService(config.OpenAIAPIKey, client, ai.Options{
		TTSModel:  config.TTSModel,
		Voice:     config.Voice,
		ChatModel: config.ChatModel,
		BaseURL:   config.OpenAIBaseURL,
	})

	estimator := audio.NewEstimator(openAI, audio.NewFFprobeProcessor(config.FFprobePath),
		config.WordsPerMinute, config.TempDir)
	summarizer := ai.NewSummarizer(openAI, config.WordsPerMinute)

	return validator.NewController(estimator, summarizer, config.MaxDuration)
}

func run(ctx context.Context, config speech.Config, log zerolog.Logger) error {
	if _, err := exec.LookPath(config.FFprobePath); err != nil {
		log.Warn().Err(err).Msg("ffprobe not found, durations will be estimated from word count")
	}

	ctrl := newController(config, nil)

	srv := server.NewServer()
	srv.Addr = fmt.Sprintf(":%d", config.Port)
	srv.Validator = ctrl
	srv.RequestTimeout = config.RequestTimeout
	srv.Logger = log

	log.Info().
		Float64("max_duration", ctrl.MaxDuration()).
		Str("tts_model", config.TTSModel).
		Str("voice", config.Voice).
		Str("chat_model", config.ChatModel).
		Msg("starting audio length validator")

	if err := srv.Open(); err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-srv.Err():
		_ = srv.Close()
		return fmt.Errorf("http server failed: %w", err)
	}

	if err := srv.Close(); err != nil {
		return fmt.Errorf("failed to stop http server: %w", err)
	}
	return nil
}

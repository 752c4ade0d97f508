package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/radio-t/speech-budget/internal/content"
	"github.com/radio-t/speech-budget/speech"
)

// loadConfig builds the configuration from environment variables, overridden by command line flags
func loadConfig(args []string) (speech.Config, error) {
	var errs []error
	envFloat := func(key string, def float64) float64 {
		v, err := getEnvFloat(key, def)
		errs = append(errs, err)
		return v
	}
	envInt := func(key string, def int) int {
		v, err := getEnvInt(key, def)
		errs = append(errs, err)
		return v
	}
	envDuration := func(key string, def time.Duration) time.Duration {
		v, err := getEnvDuration(key, def)
		errs = append(errs, err)
		return v
	}

	var config speech.Config
	fs := flag.NewFlagSet("speech-budget", flag.ContinueOnError)
	fs.StringVar(&config.OpenAIAPIKey, "apikey", os.Getenv("OPENAI_API_KEY"), "OpenAI API key")
	fs.StringVar(&config.OpenAIBaseURL, "openai-url", os.Getenv("OPENAI_BASE_URL"), "OpenAI-compatible API base URL (optional)")
	fs.Float64Var(&config.MaxDuration, "max", envFloat("MAX_AUDIO_LENGTH", content.DefaultMaxDuration), "Maximum allowed audio duration in seconds")
	fs.IntVar(&config.Port, "port", envInt("API_PORT", content.DefaultPort), "HTTP listening port")
	fs.StringVar(&config.TTSModel, "tts-model", getEnv("TTS_MODEL", content.DefaultTTSModel), "OpenAI speech model")
	fs.StringVar(&config.Voice, "voice", getEnv("TTS_VOICE", content.DefaultVoice), "OpenAI TTS voice")
	fs.StringVar(&config.ChatModel, "chat-model", getEnv("CHAT_MODEL", content.DefaultChatModel), "Model used to shorten text")
	fs.Float64Var(&config.WordsPerMinute, "wpm", envFloat("WORDS_PER_MINUTE", content.DefaultWordsPerMinute), "Speaking rate for duration estimates")
	fs.StringVar(&config.FFprobePath, "ffprobe", getEnv("FFPROBE_PATH", content.DefaultFFprobePath), "Path to the ffprobe binary")
	fs.StringVar(&config.TempDir, "tmp", getEnv("AUDIO_TMP_DIR", ""), "Directory for temporary audio files (default OS temp dir)")
	fs.DurationVar(&config.RequestTimeout, "timeout", envDuration("REQUEST_TIMEOUT", content.DefaultRequestTimeout), "Per-request timeout")
	fs.BoolVar(&config.Debug, "dbg", getEnvBool("DEBUG", false), "Debug logging")

	if err := errors.Join(errs...); err != nil {
		return speech.Config{}, err
	}
	if err := fs.Parse(args); err != nil {
		return speech.Config{}, err
	}
	return config, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func getEnvInt(key string, def int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return i, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func getEnvBool(key string, def bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

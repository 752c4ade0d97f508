package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radio-t/speech-budget/internal/ai/mocks"
	"github.com/radio-t/speech-budget/speech"
)

var configEnv = []string{
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "MAX_AUDIO_LENGTH", "API_PORT", "TTS_MODEL", "TTS_VOICE",
	"CHAT_MODEL", "WORDS_PER_MINUTE", "FFPROBE_PATH", "AUDIO_TMP_DIR", "REQUEST_TIMEOUT", "DEBUG",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("OPENAI_API_KEY", "test-key")

	config, err := loadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "test-key", config.OpenAIAPIKey)
	assert.Empty(t, config.OpenAIBaseURL)
	assert.InDelta(t, 10.0, config.MaxDuration, 0.000001)
	assert.Equal(t, 5000, config.Port)
	assert.Equal(t, "tts-1", config.TTSModel)
	assert.Equal(t, "ash", config.Voice)
	assert.Equal(t, "gpt-4", config.ChatModel)
	assert.InDelta(t, 150.0, config.WordsPerMinute, 0.000001)
	assert.Equal(t, "ffprobe", config.FFprobePath)
	assert.Empty(t, config.TempDir)
	assert.Equal(t, 2*time.Minute, config.RequestTimeout)
	assert.False(t, config.Debug)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_Environment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("MAX_AUDIO_LENGTH", "15")
	t.Setenv("API_PORT", "8080")
	t.Setenv("TTS_VOICE", "nova")
	t.Setenv("WORDS_PER_MINUTE", "170")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("DEBUG", "true")

	config, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "env-key", config.OpenAIAPIKey)
	assert.InDelta(t, 15.0, config.MaxDuration, 0.000001)
	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "nova", config.Voice)
	assert.InDelta(t, 170.0, config.WordsPerMinute, 0.000001)
	assert.Equal(t, 30*time.Second, config.RequestTimeout)
	assert.True(t, config.Debug)
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("MAX_AUDIO_LENGTH", "15")

	config, err := loadConfig([]string{"-apikey", "flag-key", "-max", "7.5", "-port", "9000", "-chat-model", "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "flag-key", config.OpenAIAPIKey)
	assert.InDelta(t, 7.5, config.MaxDuration, 0.000001)
	assert.Equal(t, 9000, config.Port)
	assert.Equal(t, "gpt-4o", config.ChatModel)
}

func TestLoadConfig_InvalidEnvironment(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "MAX_AUDIO_LENGTH", value: "ten"},
		{key: "API_PORT", value: "http"},
		{key: "WORDS_PER_MINUTE", value: "fast"},
		{key: "REQUEST_TIMEOUT", value: "forever"},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(test.key, test.value)
			_, err := loadConfig(nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.key)
		})
	}
}

func TestLoadConfig_UnknownFlag(t *testing.T) {
	clearConfigEnv(t)
	_, err := loadConfig([]string{"-unknown"})
	require.Error(t, err)
}

func TestGetEnvBool(t *testing.T) {
	for value, expected := range map[string]bool{"1": true, "TRUE": true, "on": true, "0": false, "no": false, "Off": false} {
		t.Setenv("TEST_BOOL", value)
		assert.Equal(t, expected, getEnvBool("TEST_BOOL", !expected), value)
	}
	t.Setenv("TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("TEST_BOOL", true))
}

func TestNewController_FallsBackWhenBackendsFail(t *testing.T) {
	client := &mocks.HTTPClientMock{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusUnauthorized,
				Body:       io.NopCloser(strings.NewReader(`{"error": {"message": "invalid api key"}}`)),
				Header:     make(http.Header),
			}, nil
		},
	}
	dir := t.TempDir()
	config := speech.Config{
		OpenAIAPIKey:   "bad-key",
		MaxDuration:    10,
		WordsPerMinute: 150,
		FFprobePath:    "ffprobe",
		TempDir:        dir,
	}

	text := strings.TrimSpace(strings.Repeat("word ", 30))
	res := newController(config, client).Validate(context.Background(), text)

	// one synthesis attempt, then two rounds of chat + synthesis
	assert.Len(t, client.DoCalls(), 5)
	assert.True(t, res.Modified)
	assert.Equal(t, text, res.Text)
	assert.InDelta(t, 12.0, res.OriginalDuration, 0.000001)
	assert.InDelta(t, 12.0, res.Duration, 0.000001)
	assert.True(t, res.Estimated)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	config := speech.Config{
		OpenAIAPIKey:   "test-key",
		MaxDuration:    10,
		Port:           0,
		WordsPerMinute: 150,
		FFprobePath:    "ffprobe",
		RequestTimeout: time.Second,
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, run(ctx, config, zerolog.Nop()))
}

package speech

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		OpenAIAPIKey:   "test-key",
		MaxDuration:    10,
		Port:           5000,
		WordsPerMinute: 150,
		RequestTimeout: time.Minute,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name     string
		modify   func(c *Config)
		contains string
	}{
		{name: "missing api key", modify: func(c *Config) { c.OpenAIAPIKey = "" }, contains: "api key"},
		{name: "zero max duration", modify: func(c *Config) { c.MaxDuration = 0 }, contains: "max audio duration"},
		{name: "negative max duration", modify: func(c *Config) { c.MaxDuration = -1 }, contains: "max audio duration"},
		{name: "zero speaking rate", modify: func(c *Config) { c.WordsPerMinute = 0 }, contains: "words per minute"},
		{name: "port too low", modify: func(c *Config) { c.Port = 0 }, contains: "invalid port"},
		{name: "port too high", modify: func(c *Config) { c.Port = 70000 }, contains: "invalid port"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := valid
			test.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.contains)
		})
	}
}

package content

import "time"

// http and network timeouts
const (
	OpenAIHTTPTimeout     = 2 * time.Minute
	DefaultRequestTimeout = 2 * time.Minute
)

// openai api parameters
const (
	DefaultTTSModel   = "tts-1"
	DefaultVoice      = "ash"
	DefaultChatModel  = "gpt-4"
	OpenAITemperature = 0.7
	OpenAIMaxTokens   = 1000
)

// text processing constants
const (
	DefaultWordsPerMinute = 150.0
	DisplayTruncateLength = 50
	minTargetWords        = 1
	targetWordsEpsilon    = 1e-9
)

// service defaults
const (
	DefaultMaxDuration = 10.0
	DefaultPort        = 5000
	DefaultFFprobePath = "ffprobe"
)

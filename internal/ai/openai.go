package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/radio-t/speech-budget/internal/content"
)

//go:generate moq -out mocks/http_client.go -pkg mocks -skip-ensure -fmt goimports . HTTPClient

// HTTPClient defines the interface for HTTP client operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenAIService implements OpenAI API interactions
type OpenAIService struct {
	client    *openai.Client
	ttsModel  string
	voice     string
	chatModel string
}

// Options configures OpenAIService models and voice; empty fields use package defaults
type Options struct {
	TTSModel  string
	Voice     string
	ChatModel string
	BaseURL   string
}

// NewOpenAIService creates a new OpenAI service
func NewOpenAIService(apiKey string, httpClient HTTPClient, opts Options) *OpenAIService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: content.OpenAIHTTPTimeout}
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = httpClient
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	s := &OpenAIService{
		client:    openai.NewClientWithConfig(cfg),
		ttsModel:  opts.TTSModel,
		voice:     opts.Voice,
		chatModel: opts.ChatModel,
	}
	if s.ttsModel == "" {
		s.ttsModel = content.DefaultTTSModel
	}
	if s.voice == "" {
		s.voice = content.DefaultVoice
	}
	if s.chatModel == "" {
		s.chatModel = content.DefaultChatModel
	}
	return s
}

// Synthesize renders text to mp3 audio with the configured model and voice
func (s *OpenAIService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.ttsModel),
		Input:          text,
		Voice:          openai.SpeechVoice(s.voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", describeAPIError(err))
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if len(audio) == 0 {
		return nil, errors.New("empty audio response from API")
	}
	return audio, nil
}

// Complete sends a system/user prompt pair to the chat completions API and returns the first reply
func (s *OpenAIService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: content.OpenAITemperature,
		MaxTokens:   content.OpenAIMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", describeAPIError(err))
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from API")
	}

	return resp.Choices[0].Message.Content, nil
}

// describeAPIError adds the HTTP status to errors returned by the OpenAI API
func describeAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("status %d: %w", apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("status %d: %w", reqErr.HTTPStatusCode, err)
	}
	return err
}

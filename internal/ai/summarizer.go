package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/radio-t/speech-budget/internal/content"
)

//go:generate moq -out mocks/chat_completer.go -pkg mocks -skip-ensure -fmt goimports . ChatCompleter

// ChatCompleter sends a system/user prompt pair to a language model
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const shortenSystemPrompt = `You are an expert at text summarization with a focus on spoken content.
Your task is to shorten text while:
- Maintaining the core meaning and context
- Ensuring natural speech flow
- Strictly adhering to word count limits
- Using clear pronunciation-friendly words
- Maintaining a conversational tone suitable for text-to-speech

The text should sound natural when spoken aloud.`

// Summarizer shortens text for speech with a chat model.
// It never fails: on any backend problem the input text is returned as is.
type Summarizer struct {
	completer ChatCompleter
	text      *content.TextProcessor
}

// NewSummarizer creates a summarizer for the given speaking rate
func NewSummarizer(completer ChatCompleter, wordsPerMinute float64) *Summarizer {
	return &Summarizer{
		completer: completer,
		text:      content.NewTextProcessor(wordsPerMinute),
	}
}

// Shorten asks the model to rewrite text at about ratio of its word count
func (s *Summarizer) Shorten(ctx context.Context, text string, ratio float64) string {
	log := zerolog.Ctx(ctx)

	clamped, ok := content.ClampRatio(ratio)
	if !ok {
		log.Warn().Float64("ratio", ratio).Msg("invalid shortening ratio, text left as is")
		return text
	}
	ratio = clamped

	targetWords := s.text.TargetWords(text, ratio)
	log.Debug().Int("words", s.text.WordCount(text)).Int("target_words", targetWords).
		Float64("ratio", ratio).Msg("shortening text")

	reply, err := s.completer.Complete(ctx, shortenSystemPrompt, s.createUserPrompt(text, targetWords))
	if err != nil {
		log.Error().Err(err).Msg("error shortening text")
		return text
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		log.Warn().Msg("empty shortening reply, text left as is")
		return text
	}

	log.Info().Int("words", s.text.WordCount(reply)).
		Str("text", content.TruncateString(reply, content.DisplayTruncateLength)).Msg("text shortened")
	return reply
}

// createUserPrompt anchors the rewrite to both a word count and a duration
func (s *Summarizer) createUserPrompt(text string, targetWords int) string {
	wpm := s.text.WordsPerMinute()
	return fmt.Sprintf(`Please shorten the following text to approximately %d words (%.1f seconds of speech at %g words per minute).

Original text:
%s

Important:
- Stay as close as possible to %d words
- Maintain natural speech flow
- Keep essential information
- Use clear, easily pronounceable words`, targetWords, s.text.WordsDuration(targetWords), wpm, text, targetWords)
}

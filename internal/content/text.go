package content

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "p, h1, h2, h3, h4, h5, h6, li, blockquote"

// TextProcessor handles word-count based text operations
type TextProcessor struct {
	wordsPerMinute float64
}

// NewTextProcessor creates a text processor for the given speaking rate.
// Non-positive rates fall back to DefaultWordsPerMinute.
func NewTextProcessor(wordsPerMinute float64) *TextProcessor {
	if wordsPerMinute <= 0 || math.IsNaN(wordsPerMinute) || math.IsInf(wordsPerMinute, 0) {
		wordsPerMinute = DefaultWordsPerMinute
	}
	return &TextProcessor{wordsPerMinute: wordsPerMinute}
}

// WordsPerMinute returns the speaking rate used by the processor
func (tp *TextProcessor) WordsPerMinute() float64 {
	return tp.wordsPerMinute
}

// WordCount returns the number of whitespace-delimited words in text
func (tp *TextProcessor) WordCount(text string) int {
	return len(strings.Fields(text))
}

// EstimateAudioDuration estimates the spoken duration of text in seconds
func (tp *TextProcessor) EstimateAudioDuration(text string) float64 {
	return tp.WordsDuration(tp.WordCount(text))
}

// WordsDuration converts a word count to seconds of speech
func (tp *TextProcessor) WordsDuration(words int) float64 {
	return float64(words) / tp.wordsPerMinute * 60
}

// TargetWords returns the word count a rewrite of text should aim for at the given ratio.
// The result is floored and never below one word.
func (tp *TextProcessor) TargetWords(text string, ratio float64) int {
	target := int(math.Floor(float64(tp.WordCount(text))*ratio + targetWordsEpsilon))
	if target < minTargetWords {
		return minTargetWords
	}
	return target
}

// TruncateString truncates a string to the specified length and adds "..." if truncated
// it ensures UTF-8 characters are not broken
func TruncateString(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	if maxLength < 0 {
		maxLength = 0
	}
	return string(runes[:maxLength]) + "..."
}

// ClampRatio normalizes a shortening ratio into (0,1].
// The second value is false when no shortening should be attempted at all.
func ClampRatio(ratio float64) (float64, bool) {
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0, false
	}
	return math.Min(ratio, 1), true
}

// PlainText extracts the visible text of an HTML fragment.
// Block elements become paragraphs separated by blank lines; inline whitespace is collapsed.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// nested blocks are collected on their own
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		if text := collapseSpaces(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return collapseSpaces(doc.Text()), nil
	}
	return strings.Join(blocks, "\n\n"), nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

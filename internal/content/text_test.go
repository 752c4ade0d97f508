package content

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextProcessor(t *testing.T) {
	assert.InDelta(t, 150.0, NewTextProcessor(150).WordsPerMinute(), 0.0001)
	assert.InDelta(t, 180.0, NewTextProcessor(180).WordsPerMinute(), 0.0001)
	assert.InDelta(t, DefaultWordsPerMinute, NewTextProcessor(0).WordsPerMinute(), 0.0001)
	assert.InDelta(t, DefaultWordsPerMinute, NewTextProcessor(-5).WordsPerMinute(), 0.0001)
	assert.InDelta(t, DefaultWordsPerMinute, NewTextProcessor(math.NaN()).WordsPerMinute(), 0.0001)
}

func TestTextProcessor_WordCount(t *testing.T) {
	tp := NewTextProcessor(150)

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty text", text: "", expected: 0},
		{name: "only whitespace", text: "  \n\t  ", expected: 0},
		{name: "single word", text: "hello", expected: 1},
		{name: "multiple spaces", text: "one   two \n\n three\tfour", expected: 4},
		{name: "punctuation stays attached", text: "Hello, world! How are you?", expected: 5},
		{name: "utf-8 words", text: "Привет, как дела?", expected: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tp.WordCount(tc.text))
		})
	}
}

func TestTextProcessor_EstimateAudioDuration(t *testing.T) {
	tp := NewTextProcessor(150)

	tests := []struct {
		name  string
		words int
	}{
		{name: "empty text", words: 0},
		{name: "one word", words: 1},
		{name: "thirty words", words: 30},
		{name: "one minute of speech", words: 150},
		{name: "odd count", words: 37},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text := strings.TrimSpace(strings.Repeat("word ", tc.words))
			expected := (float64(tc.words) / 150) * 60
			assert.Equal(t, expected, tp.EstimateAudioDuration(text))
		})
	}

	assert.InDelta(t, 12.0, tp.EstimateAudioDuration(strings.Repeat("word ", 30)), 0.0001)
	assert.InDelta(t, 60.0, tp.EstimateAudioDuration(strings.Repeat("word ", 150)), 0.0001)
}

func TestTextProcessor_TargetWords(t *testing.T) {
	tp := NewTextProcessor(150)
	thirty := strings.Repeat("word ", 30)

	tests := []struct {
		name     string
		text     string
		ratio    float64
		expected int
	}{
		{name: "ten of twelve seconds", text: thirty, ratio: 10.0 / 12.0, expected: 25},
		{name: "half", text: thirty, ratio: 0.5, expected: 15},
		{name: "floors fractional result", text: thirty, ratio: 0.71, expected: 21},
		{name: "full ratio", text: thirty, ratio: 1, expected: 30},
		{name: "never below one word", text: "just two", ratio: 0.1, expected: 1},
		{name: "empty text", text: "", ratio: 0.5, expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tp.TargetWords(tc.text, tc.ratio))
		})
	}
}

func TestTextProcessor_WordsDuration(t *testing.T) {
	assert.InDelta(t, 10.0, NewTextProcessor(150).WordsDuration(25), 0.0001)
	assert.InDelta(t, 5.0, NewTextProcessor(120).WordsDuration(10), 0.0001)
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{name: "shorter than max", input: "Hello", maxLength: 10, expected: "Hello"},
		{name: "equal to max", input: "Hello", maxLength: 5, expected: "Hello"},
		{name: "longer than max", input: "Hello, world!", maxLength: 5, expected: "Hello..."},
		{name: "empty string", input: "", maxLength: 5, expected: ""},
		{name: "zero max length", input: "Hello", maxLength: 0, expected: "..."},
		{name: "utf-8 russian text", input: "Привет, мир!", maxLength: 5, expected: "Приве..."},
		{name: "utf-8 emoji", input: "Hello 👋 World 🌍", maxLength: 8, expected: "Hello 👋 ..."},
		{name: "utf-8 byte length > maxLength but rune count <= maxLength", input: "Привет", maxLength: 10, expected: "Привет"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TruncateString(tc.input, tc.maxLength))
		})
	}
}

func TestClampRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected float64
		ok       bool
	}{
		{name: "within range", ratio: 0.8, expected: 0.8, ok: true},
		{name: "exactly one", ratio: 1, expected: 1, ok: true},
		{name: "above one is clamped", ratio: 2.5, expected: 1, ok: true},
		{name: "positive infinity is clamped", ratio: math.Inf(1), expected: 1, ok: true},
		{name: "zero", ratio: 0, ok: false},
		{name: "negative", ratio: -0.3, ok: false},
		{name: "nan", ratio: math.NaN(), ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ratio, ok := ClampRatio(tc.ratio)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.expected, ratio, 0.0001)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "paragraphs",
			html:     "<p>Hello   <b>world</b>.</p><p>Second\nparagraph</p>",
			expected: "Hello world.\n\nSecond paragraph",
		},
		{
			name:     "scripts and styles dropped",
			html:     "<style>p{color:red}</style><p>Visible</p><script>alert(1)</script>",
			expected: "Visible",
		},
		{
			name:     "nested blocks are not duplicated",
			html:     "<ul><li><p>Item one</p></li><li>Item two</li></ul>",
			expected: "Item one\n\nItem two",
		},
		{
			name:     "no block elements",
			html:     "<span>Just</span> <em>inline</em> text",
			expected: "Just inline text",
		},
		{
			name:     "plain text passes through",
			html:     "no markup at all",
			expected: "no markup at all",
		},
		{
			name:     "empty input",
			html:     "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := PlainText(tc.html)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

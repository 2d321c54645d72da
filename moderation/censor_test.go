package moderation

import (
	"forum-lab/errors"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestTextCensor_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"badger", "snake", "mushroom"}
	censor, err := NewTextCensor(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			words:    []string{"badger", "badger", "badger"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			words:    []string{"badger"},
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "S-N-A-K-E is a B.A.D.G.E.R",
			expected: "********* is a ***********",
			words:    []string{"snake", "badger"},
		},
		{
			name:     "Accents are preserved",
			input:    "Un été avec un badger",
			expected: "Un été avec un ******",
			words:    []string{"badger"},
		},
		{
			name:     "Nothing to censor",
			input:    "Off topic, locked by the mods",
			expected: "Off topic, locked by the mods",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			content, words := censor.censor(tt.input)
			req.Equal(tt.expected, content)
			req.Equal(tt.words, words)
			req.Equal(tt.expected, censor.Censor(tt.input))
		})
	}
}

func TestTextCensor_Ignores_Empty_Patterns(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise next to a real word
	censor, err := NewTextCensor([]string{"...", ",,,", "", "badger"}, replacementChar, log)
	req.NoError(err)

	req.Equal("The ****** is safe", censor.Censor("The badger is safe"))
	req.Equal("Hello ...", censor.Censor("Hello ..."))

	// And a dictionary of noise only is refused
	_, err = NewTextCensor([]string{"...", " "}, replacementChar, log)
	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestLoadWordList(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{
		"words/en.txt":       {Data: []byte("# comment\nbadger\r\nsnake\n\n")},
		"words/fr.txt":       {Data: []byte("blaireau\nbadger\n")},
		"words/readme.md":    {Data: []byte("ignored")},
		"words/nested/x.txt": {Data: []byte("ignored")},
	}

	list, err := LoadWordList(fsys, "words")

	req.NoError(err)
	req.ElementsMatch([]string{"badger", "snake", "blaireau"}, list.Words)
	req.ElementsMatch([]string{"en", "fr"}, list.Languages)
}

func TestDefaultWordList(t *testing.T) {
	req := require.New(t)

	list, err := DefaultWordList()

	req.NoError(err)
	req.NotEmpty(list.Words)
	req.ElementsMatch([]string{"en", "fr"}, list.Languages)
}

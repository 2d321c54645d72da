package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"forum-lab/errors"
	"io/fs"
	"path"
	"strings"

	"github.com/samber/lo"
)

//go:embed slurs/*.txt
var slursFolder embed.FS

// WordList is the result of loading the embedded dictionaries.
type WordList struct {
	Words     []string
	Languages []string
}

// LoadWordList reads every "<lang>.txt" file of dir, one word per line,
// and returns the deduplicated words.
func LoadWordList(fsys fs.FS, dir string) (WordList, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return WordList{}, err
	}

	var languages []string
	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return WordList{}, err
		}
		// Scanner handles both \n and \r\n endings.
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
				unique[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return WordList{}, err
		}
	}

	if len(unique) == 0 {
		return WordList{}, errors.ErrEmptyWords
	}
	return WordList{Words: lo.Keys(unique), Languages: languages}, nil
}

// DefaultWordList loads the dictionaries shipped with the binary.
func DefaultWordList() (WordList, error) {
	return LoadWordList(slursFolder, "slurs")
}

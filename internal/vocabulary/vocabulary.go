// Package vocabulary prepares the working word list for square generation:
// the intersection of a frequency-ranked word list with a dictionary of legal
// words, restricted to one word length and capped at the top-N most frequent
// entries.
package vocabulary

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadDictionary reads a flat text file of legal words, one per line.
// Lines are lower-cased and trimmed; blank lines and '#' comments are
// skipped.
func ReadDictionary(r io.Reader) (map[string]struct{}, error) {
	words := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return words, nil
}

// ReadFrequencyList reads a CSV whose first column is a word, with rows
// sorted most-frequent first. Only the word column is used; any header row
// falls out later because it won't appear in the dictionary.
func ReadFrequencyList(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var words []string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read frequency list: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(row[0]))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}

// Filter returns, in order, the first topN words from freqRanked that are
// legal dictionary words of length wordLen. Words containing characters
// outside a-z are rejected here so the trie never sees them. topN <= 0 means
// no cap. Duplicates in freqRanked are kept only once.
func Filter(freqRanked []string, dictionary map[string]struct{}, wordLen, topN int) []string {
	var working []string
	seen := make(map[string]struct{})
	for _, word := range freqRanked {
		if len(word) != wordLen {
			continue
		}
		if !isLowerAlpha(word) {
			continue
		}
		if _, ok := dictionary[word]; !ok {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		working = append(working, word)
		if topN > 0 && len(working) >= topN {
			break
		}
	}
	return working
}

// WorkingWords reads both inputs and returns the filtered vocabulary.
func WorkingWords(freqCSV, dictionary io.Reader, wordLen, topN int) ([]string, error) {
	dict, err := ReadDictionary(dictionary)
	if err != nil {
		return nil, err
	}
	ranked, err := ReadFrequencyList(freqCSV)
	if err != nil {
		return nil, err
	}
	return Filter(ranked, dict, wordLen, topN), nil
}

func isLowerAlpha(word string) bool {
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

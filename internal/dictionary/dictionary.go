// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dictionary loads candidate word lists and filters them by length.
//
// A word list is an ordered sequence of text lines; each line is one
// candidate word. The package ships an embedded default list so the tool
// works without any external file, and reads user-supplied lists from disk.
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
)

//go:embed default_words.txt
var defaultWords string

// staticSource serves a fixed, in-memory word list.
type staticSource struct {
	words []string
}

// NewStaticSource returns a [WordSource] over the given fixed word list.
func NewStaticSource(words []string) WordSource {
	return &staticSource{words: words}
}

func (s *staticSource) Words() ([]string, error) {
	return s.words, nil
}

// NewDefaultSource returns a [WordSource] over the embedded default word
// list (lower-case English words, 3–10 letters).
func NewDefaultSource() WordSource {
	return NewStaticSource(splitLines(defaultWords))
}

// fileSource reads the word list from a file on every call, so a
// long-running process always observes the current file content.
type fileSource struct {
	path string
}

// NewFileSource returns a [WordSource] reading one word per line from the
// file at path.
func NewFileSource(path string) WordSource {
	return &fileSource{path: path}
}

func (f *fileSource) Words() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDictionaryUnavailable, f.path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDictionaryUnavailable, f.path, err)
	}

	return words, nil
}

// Filter returns every entry of words whose character length falls in the
// closed range [min, max]. A zero min defaults to 1; a zero max leaves the
// range open above. Matching is whole-token over word characters (letters,
// digits, underscore), so entries containing other characters never match.
// An empty result is not an error.
func Filter(words []string, min, max int) []string {
	re := lengthPattern(min, max)

	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if re.MatchString(word) {
			filtered = append(filtered, word)
		}
	}

	return filtered
}

// lengthPattern builds the anchored whole-token pattern for the given
// bounds. Inputs are small non-negative integers, so the pattern always
// compiles.
func lengthPattern(min, max int) *regexp.Regexp {
	if min < 1 {
		min = 1
	}

	var expr string
	if max > 0 {
		expr = fmt.Sprintf(`^\w{%d,%d}$`, min, max)
	} else {
		expr = fmt.Sprintf(`^\w{%d,}$`, min)
	}

	return regexp.MustCompile(expr)
}

func splitLines(s string) []string {
	var words []string
	for _, line := range strings.Split(s, "\n") {
		if word := strings.TrimSpace(line); word != "" {
			words = append(words, word)
		}
	}
	return words
}

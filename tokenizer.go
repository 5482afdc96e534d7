// Package search implements an in-memory full-text search engine over a
// small corpus of short text documents: an inverted/forward index pair,
// a TF-IDF ranker with sequential and parallel execution, and the query
// parsing and matching that sit on top of them.
package search

import "fmt"

// splitIntoWords splits text on runs of ASCII space (0x20) and returns the
// non-empty substrings between them. Go string slicing never copies, so
// each returned token is already a view borrowed from text's backing
// array — callers that want index entries to outlive a transient query
// string must re-tokenize a stored copy of the text, not the original
// argument. See IndexStore.AddDocument.
func splitIntoWords(text string) []string {
	var words []string
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}

// isValidWord reports whether word contains no control character, i.e. no
// byte in [0x00, 0x20). The delimiting space itself is never part of a
// token, so 0x20 is not checked here.
func isValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < ' ' {
			return false
		}
	}
	return true
}

// splitIntoValidWords tokenizes text and validates every token, failing
// with ErrInvalidCharacter (wrapped with the offending token) on the first
// malformed one.
func splitIntoValidWords(text string) ([]string, error) {
	words := splitIntoWords(text)
	for _, w := range words {
		if !isValidWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, w)
		}
	}
	return words, nil
}

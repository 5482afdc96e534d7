package search

import (
	"fmt"
	"sort"
	"strings"
)

// ParsedQuery holds the two word lists a raw query splits into: words that
// must be present (plus) and words that must be absent (minus). Under the
// default parse mode both lists are sorted ascending and de-duplicated;
// ParseQueryOpt's skipSort mode preserves token order and duplicates
// instead, for callers (the parallel Matcher) that need set-membership
// tests rather than set semantics.
type ParsedQuery struct {
	PlusWords  []string
	MinusWords []string
}

// ParseQuery parses a raw query string against stopWords, producing
// sorted, de-duplicated plus/minus word lists. A word that is also a stop
// word is discarded before either list is built.
func ParseQuery(raw string, stopWords *StopWordSet) (ParsedQuery, error) {
	return ParseQueryOpt(raw, stopWords, false)
}

// ParseQueryOpt is ParseQuery with an explicit skipSort flag. When
// skipSort is true, both word lists retain original token order and any
// duplicates; callers relying on set semantics must leave it false.
func ParseQueryOpt(raw string, stopWords *StopWordSet, skipSort bool) (ParsedQuery, error) {
	var q ParsedQuery
	for _, token := range splitIntoWords(raw) {
		word, isMinus, err := parseQueryWord(token)
		if err != nil {
			return ParsedQuery{}, err
		}
		if stopWords.Contains(word) {
			continue
		}
		if isMinus {
			q.MinusWords = append(q.MinusWords, word)
		} else {
			q.PlusWords = append(q.PlusWords, word)
		}
	}
	if !skipSort {
		q.PlusWords = sortDedup(q.PlusWords)
		q.MinusWords = sortDedup(q.MinusWords)
	}
	return q, nil
}

// parseQueryWord strips a leading '-' (marking the word as a minus word)
// and validates what remains: it must be non-empty, must not itself start
// with '-' (a double minus), and must contain no control character.
func parseQueryWord(token string) (word string, isMinus bool, err error) {
	if token == "" {
		return "", false, ErrEmptyQueryWord
	}
	if token[0] == '-' {
		isMinus = true
		token = token[1:]
	}
	if token == "" {
		return "", false, ErrEmptyQueryWord
	}
	if token[0] == '-' {
		return "", false, fmt.Errorf("%w: double minus in %q", ErrInvalidQueryWord, token)
	}
	if !isValidWord(token) {
		return "", false, fmt.Errorf("%w: control character in %q", ErrInvalidQueryWord, token)
	}
	return token, isMinus, nil
}

func sortDedup(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	out := sorted[:1]
	for _, w := range sorted[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}

// sortDedupStrings is a small helper used by the parallel matcher to turn
// an unordered, possibly-duplicated word collection into a canonical
// sorted form. The duplicate collapser reaches sortDedup through joinKey.
func sortDedupStrings(words []string) []string {
	return sortDedup(words)
}

// joinKey builds a canonical, order-independent key for a set of words —
// used by the duplicate collapser to compare two documents' indexed word
// sets for exact equality.
func joinKey(words []string) string {
	return strings.Join(sortDedup(words), "\x00")
}

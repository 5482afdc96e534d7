package search

// StopWordSet is an immutable set of stop words, built once at engine
// construction and queried on every tokenization pass thereafter. Word
// membership is a plain map lookup: O(1) and good enough for the small
// stop-word vocabularies this engine deals with.
type StopWordSet struct {
	words map[string]struct{}
}

// NewStopWordSet builds a StopWordSet from an explicit list of candidate
// words. Empty strings are discarded silently; any remaining candidate
// containing a control character fails the whole construction with
// ErrInvalidStopWord.
func NewStopWordSet(candidates ...string) (*StopWordSet, error) {
	words := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if !isValidWord(c) {
			return nil, ErrInvalidStopWord
		}
		words[c] = struct{}{}
	}
	return &StopWordSet{words: words}, nil
}

// NewStopWordSetFromText tokenizes a whitespace-delimited string and
// builds a StopWordSet from the resulting words, exactly as
// NewStopWordSet would from an equivalent slice.
func NewStopWordSetFromText(text string) (*StopWordSet, error) {
	return NewStopWordSet(splitIntoWords(text)...)
}

// Contains reports whether word is a stop word. A nil *StopWordSet (the
// zero value) contains nothing, so callers never need a nil check before
// calling it.
func (s *StopWordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

package search

import "errors"

// Error kinds surfaced by the public API. Each is a package-level sentinel
// so callers can compare with errors.Is instead of string-matching.
var (
	// ErrInvalidStopWord is returned by New/NewFromWords when a candidate
	// stop word contains a control character (byte < 0x20).
	ErrInvalidStopWord = errors.New("search: invalid stop word")

	// ErrInvalidDocumentID is returned by AddDocument for a negative id,
	// a duplicate (already-live) id, or a document whose tokens are all
	// stop words (nothing survives to index).
	ErrInvalidDocumentID = errors.New("search: invalid document id")

	// ErrInvalidCharacter is returned by AddDocument when a document token
	// contains a byte below 0x20. A query token with such a byte yields
	// ErrInvalidQueryWord instead.
	ErrInvalidCharacter = errors.New("search: invalid character in token")

	// ErrEmptyQueryWord is returned for a bare "-" or a zero-length token.
	ErrEmptyQueryWord = errors.New("search: empty query word")

	// ErrInvalidQueryWord is returned for a double-leading-minus token or
	// a query token containing a byte below 0x20.
	ErrInvalidQueryWord = errors.New("search: invalid query word")
)

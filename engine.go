package search

import (
	"io"
	"os"
)

// Execution selects how a query's internal work is spread across
// goroutines. It does not change the result, only how it's computed: the
// set of documents in the top-K and their relative order are identical
// under both modes (relevance values may differ by floating-point
// rounding well under RelevanceTolerance).
type Execution int

const (
	// Sequential runs a query's scoring work on the calling goroutine.
	Sequential Execution = iota
	// Parallel spreads a query's scoring work across an errgroup.
	Parallel
)

// Engine is the public façade composing the tokenizer, stop-word set,
// index store, ranker, matcher, and duplicate collapser into one API:
// add documents, find the top matches for a query, match a query against
// one document, remove a document, and inspect the corpus.
type Engine struct {
	stopWords   *StopWordSet
	store       *IndexStore
	diagnostics io.Writer
}

// New builds an Engine whose stop words come from a single
// whitespace-delimited string.
func New(stopWords string) (*Engine, error) {
	sw, err := NewStopWordSetFromText(stopWords)
	if err != nil {
		return nil, err
	}
	return newEngine(sw), nil
}

// NewFromWords builds an Engine whose stop words come from an explicit
// slice, deduplicated and validated exactly as New does.
func NewFromWords(stopWords []string) (*Engine, error) {
	sw, err := NewStopWordSet(stopWords...)
	if err != nil {
		return nil, err
	}
	return newEngine(sw), nil
}

func newEngine(sw *StopWordSet) *Engine {
	return &Engine{
		stopWords:   sw,
		store:       NewIndexStore(sw),
		diagnostics: os.Stdout,
	}
}

// SetDiagnostics redirects the stream RemoveDuplicates writes its
// "Found duplicate document id <id>" lines to. Defaults to os.Stdout.
func (e *Engine) SetDiagnostics(w io.Writer) {
	e.diagnostics = w
}

// AddDocument indexes a new document. See IndexStore.AddDocument for the
// exact validation and term-frequency rules.
func (e *Engine) AddDocument(id int, text string, status Status, ratings []int) error {
	return e.store.AddDocument(id, text, status, ratings)
}

// FindTopDocuments ranks documents against query, keeping only those pred
// accepts, and returns up to MaxResultDocumentCount results ordered by
// relevance (ties broken by rating).
func (e *Engine) FindTopDocuments(query string, pred Predicate, exec Execution) ([]Result, error) {
	q, err := ParseQuery(query, e.stopWords)
	if err != nil {
		return nil, err
	}
	if exec == Parallel {
		return FindTopDocumentsParallel(e.store, q, pred), nil
	}
	return FindTopDocumentsSequential(e.store, q, pred), nil
}

// FindTopDocumentsByStatus is FindTopDocuments with a predicate that
// accepts a document iff its status equals status.
func (e *Engine) FindTopDocumentsByStatus(query string, status Status, exec Execution) ([]Result, error) {
	return e.FindTopDocuments(query, StatusPredicate(status), exec)
}

// FindTopDocumentsActual is FindTopDocuments restricted to StatusActual
// documents — the default when a caller supplies neither a predicate nor
// a status.
func (e *Engine) FindTopDocumentsActual(query string, exec Execution) ([]Result, error) {
	return e.FindTopDocuments(query, ActualPredicate(), exec)
}

// MatchDocument reports which of query's plus-words hit document id, or
// an empty slice if any minus-word hits it. It panics if id is not live.
func (e *Engine) MatchDocument(query string, id int, exec Execution) ([]string, Status, error) {
	if exec == Parallel {
		return MatchDocumentParallel(e.store, query, e.stopWords, id)
	}
	return MatchDocument(e.store, query, e.stopWords, id)
}

// RemoveDocument removes id; a no-op if id isn't live.
func (e *Engine) RemoveDocument(id int, exec Execution) {
	if exec == Parallel {
		e.store.RemoveDocumentParallel(id)
		return
	}
	e.store.RemoveDocument(id)
}

// GetWordFrequencies returns id's forward-index row, or an empty mapping
// if id isn't live.
func (e *Engine) GetWordFrequencies(id int) map[string]float64 {
	return e.store.GetWordFrequencies(id)
}

// DocumentCount returns the number of currently live documents.
func (e *Engine) DocumentCount() int {
	return e.store.DocumentCount()
}

// IterateIds returns the live document ids in ascending order.
func (e *Engine) IterateIds() []int {
	return e.store.IterateIds()
}

// RemoveDuplicates collapses documents whose indexed word sets exactly
// match an earlier (lower-id) document's, writing one diagnostic line per
// collapsed id to e's diagnostics stream.
func (e *Engine) RemoveDuplicates() {
	RemoveDuplicates(e.store, e.diagnostics)
}

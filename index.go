package search

import (
	"log/slog"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/sync/errgroup"
)

// documentMeta is the per-document record stored once at insertion and
// never mutated afterward: average rating and status tag.
type documentMeta struct {
	rating int
	status Status
}

// emptyFreqs is the shared empty mapping GetWordFrequencies hands back
// for an id that isn't live, so callers never need a nil check.
var emptyFreqs = map[string]float64{}

// IndexStore owns the inverted index (word -> doc -> term frequency), the
// forward index (doc -> word -> term frequency), the metadata map, and
// the set of live document ids. It provides no internal locking: callers
// must ensure no writer (AddDocument, RemoveDocument) overlaps any reader
// (FindTopDocuments, MatchDocument, GetWordFrequencies) or another writer.
// The parallel execution modes below parallelize work *within* a single
// call, not across concurrent calls.
type IndexStore struct {
	stopWords *StopWordSet

	inverted map[string]map[int]float64
	forward  map[int]map[string]float64
	meta     map[int]documentMeta
	liveIDs  *roaring.Bitmap

	// texts retains each document's owned text for the lifetime of the
	// engine (or until the document is removed). Index entries are
	// tokenized from this stored copy rather than the caller's original
	// argument, so that word views stay valid even if the caller's string
	// were somehow transient.
	texts map[int]string
}

// NewIndexStore builds an empty store that filters against stopWords.
func NewIndexStore(stopWords *StopWordSet) *IndexStore {
	return &IndexStore{
		stopWords: stopWords,
		inverted:  make(map[string]map[int]float64),
		forward:   make(map[int]map[string]float64),
		meta:      make(map[int]documentMeta),
		liveIDs:   roaring.New(),
		texts:     make(map[int]string),
	}
}

// AddDocument indexes a new document. id must be non-negative and not
// already live; every token of text must be a valid word. A document
// whose tokens are entirely stop words (nothing survives to index) is
// rejected with ErrInvalidDocumentID rather than silently computing a
// zero-length term-frequency divisor.
func (s *IndexStore) AddDocument(id int, text string, status Status, ratings []int) error {
	if id < 0 || s.liveIDs.Contains(uint32(id)) {
		return ErrInvalidDocumentID
	}

	s.texts[id] = text
	tokens, err := splitIntoValidWords(s.texts[id])
	if err != nil {
		delete(s.texts, id)
		return err
	}

	survivors := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !s.stopWords.Contains(t) {
			survivors = append(survivors, t)
		}
	}
	if len(survivors) == 0 {
		delete(s.texts, id)
		return ErrInvalidDocumentID
	}

	inv := 1.0 / float64(len(survivors))
	row := make(map[string]float64, len(survivors))
	for _, w := range survivors {
		row[w] += inv
	}
	for w, tf := range row {
		bucket, ok := s.inverted[w]
		if !ok {
			bucket = make(map[int]float64)
			s.inverted[w] = bucket
		}
		bucket[id] = tf
	}
	s.forward[id] = row
	s.meta[id] = documentMeta{rating: averageRating(ratings), status: status}
	s.liveIDs.Add(uint32(id))

	slog.Info("indexed document", slog.Int("id", id), slog.Int("tokens", len(survivors)))
	return nil
}

// RemoveDocument removes id if it is live; a no-op otherwise. Empty inner
// maps left behind in the inverted index are not garbage collected — they
// are benign, and future queries for that word simply find zero documents.
func (s *IndexStore) RemoveDocument(id int) {
	row, ok := s.forward[id]
	if !ok {
		return
	}
	delete(s.meta, id)
	delete(s.forward, id)
	delete(s.texts, id)
	s.liveIDs.Remove(uint32(id))
	for w := range row {
		delete(s.inverted[w], id)
	}
}

// RemoveDocumentParallel is RemoveDocument with the per-word erase spread
// across an errgroup, one task per distinct word in the document's
// forward row. This is safe without per-word locking because a forward
// row never contains a word twice, so no two tasks ever touch the same
// inner map of the inverted index.
func (s *IndexStore) RemoveDocumentParallel(id int) {
	row, ok := s.forward[id]
	if !ok {
		return
	}
	delete(s.meta, id)
	delete(s.forward, id)
	delete(s.texts, id)
	s.liveIDs.Remove(uint32(id))

	var g errgroup.Group
	for w := range row {
		w := w
		g.Go(func() error {
			delete(s.inverted[w], id)
			return nil
		})
	}
	_ = g.Wait()
}

// GetWordFrequencies returns id's forward-index row, or the shared empty
// mapping if id is not live. The returned map must be treated as
// read-only by the caller; it is valid until the next mutation affecting
// that document.
func (s *IndexStore) GetWordFrequencies(id int) map[string]float64 {
	if row, ok := s.forward[id]; ok {
		return row
	}
	return emptyFreqs
}

// IterateIds returns the live document ids in ascending order.
func (s *IndexStore) IterateIds() []int {
	card := s.liveIDs.GetCardinality()
	ids := make([]int, 0, card)
	it := s.liveIDs.Iterator()
	for it.HasNext() {
		ids = append(ids, int(it.Next()))
	}
	return ids
}

// DocumentCount returns the number of currently live documents.
func (s *IndexStore) DocumentCount() int {
	return int(s.liveIDs.GetCardinality())
}

// metaOf returns id's metadata and whether it is live.
func (s *IndexStore) metaOf(id int) (documentMeta, bool) {
	m, ok := s.meta[id]
	return m, ok
}

func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

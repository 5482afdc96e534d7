package search

import (
	"log/slog"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// MaxResultDocumentCount caps every FindTopDocuments result vector.
const MaxResultDocumentCount = 5

// RelevanceTolerance is the absolute tolerance used both to compare
// relevance values for equality and to decide when the sort comparator
// falls back to comparing ratings instead.
const RelevanceTolerance = 1e-6

// Predicate decides whether a document qualifies for a result set, given
// its id, status, and rating. StatusPredicate and ActualPredicate build
// the common "status equals X" predicates.
type Predicate func(id int, status Status, rating int) bool

// StatusPredicate returns a predicate that accepts a document iff its
// status equals the given status.
func StatusPredicate(status Status) Predicate {
	return func(_ int, s Status, _ int) bool { return s == status }
}

// ActualPredicate accepts only StatusActual documents — the default used
// when a caller supplies neither a predicate nor a status.
func ActualPredicate() Predicate {
	return StatusPredicate(StatusActual)
}

// Result is one ranked document: its id, computed relevance, and rating.
type Result struct {
	ID        int
	Relevance float64
	Rating    int
}

// FindTopDocumentsSequential executes q against store and returns up to
// MaxResultDocumentCount results ranked by relevance (ties broken by
// rating), keeping only documents pred accepts.
func FindTopDocumentsSequential(store *IndexStore, q ParsedQuery, pred Predicate) []Result {
	rel := make(map[int]float64)
	n := store.DocumentCount()

	for _, w := range q.PlusWords {
		docs, ok := store.inverted[w]
		if !ok || len(docs) == 0 {
			continue
		}
		idf := math.Log(float64(n) / float64(len(docs)))
		for id, tf := range docs {
			meta, ok := store.metaOf(id)
			if !ok || !pred(id, meta.status, meta.rating) {
				continue
			}
			rel[id] += tf * idf
		}
	}

	for _, w := range q.MinusWords {
		docs, ok := store.inverted[w]
		if !ok {
			continue
		}
		for id := range docs {
			delete(rel, id)
		}
	}

	results := rankAndTruncate(rel, store)
	slog.Debug("find_top_documents", slog.String("execution", "sequential"), slog.Int("results", len(results)))
	return results
}

// FindTopDocumentsParallel is FindTopDocumentsSequential with plus-word
// accumulation and minus-word removal each spread across an errgroup,
// accumulating into a ShardedRelevanceMap instead of a plain map. Minus-
// word removal only begins once all plus-word accumulation has completed.
func FindTopDocumentsParallel(store *IndexStore, q ParsedQuery, pred Predicate) []Result {
	n := store.DocumentCount()
	rel := NewShardedRelevanceMap(shardCountFor(n))

	var plusGroup errgroup.Group
	for _, w := range q.PlusWords {
		w := w
		plusGroup.Go(func() error {
			docs, ok := store.inverted[w]
			if !ok || len(docs) == 0 {
				return nil
			}
			idf := math.Log(float64(n) / float64(len(docs)))
			for id, tf := range docs {
				meta, ok := store.metaOf(id)
				if !ok || !pred(id, meta.status, meta.rating) {
					continue
				}
				rel.Accumulate(id, tf*idf)
			}
			return nil
		})
	}
	_ = plusGroup.Wait()

	var minusGroup errgroup.Group
	for _, w := range q.MinusWords {
		w := w
		minusGroup.Go(func() error {
			docs, ok := store.inverted[w]
			if !ok {
				return nil
			}
			for id := range docs {
				rel.Remove(id)
			}
			return nil
		})
	}
	_ = minusGroup.Wait()

	results := rankAndTruncate(rel.Drain(), store)
	slog.Debug("find_top_documents", slog.String("execution", "parallel"), slog.Int("results", len(results)))
	return results
}

// rankAndTruncate turns an id->relevance mapping into a sorted, truncated
// Result slice. The sort is a strict weak order: results within
// RelevanceTolerance of each other compare by rating instead, and rating
// comparison is total, so ties never leave the ordering ambiguous.
func rankAndTruncate(rel map[int]float64, store *IndexStore) []Result {
	results := make([]Result, 0, len(rel))
	for id, r := range rel {
		meta, ok := store.metaOf(id)
		if !ok {
			continue
		}
		results = append(results, Result{ID: id, Relevance: r, Rating: meta.rating})
	}

	sort.Slice(results, func(i, j int) bool {
		if math.Abs(results[i].Relevance-results[j].Relevance) < RelevanceTolerance {
			return results[i].Rating > results[j].Rating
		}
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > MaxResultDocumentCount {
		results = results[:MaxResultDocumentCount]
	}
	return results
}

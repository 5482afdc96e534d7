package search

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// MatchDocument reports which of query's plus-words appear in document
// id's forward-index row, or an empty slice if any of query's minus-words
// appear there. It panics if id is not live — GetWordFrequencies's "empty
// if absent" contract would otherwise silently turn a caller bug into a
// wrong, not missing, answer; callers must gate with IterateIds first,
// exactly as the forward-index contract in spec.md §4.7 requires.
func MatchDocument(store *IndexStore, query string, stopWords *StopWordSet, id int) ([]string, Status, error) {
	meta, ok := store.metaOf(id)
	if !ok {
		panic("search: MatchDocument called with a non-live document id")
	}

	q, err := ParseQuery(query, stopWords)
	if err != nil {
		return nil, 0, err
	}

	row := store.GetWordFrequencies(id)
	for _, w := range q.MinusWords {
		if _, present := row[w]; present {
			return nil, meta.status, nil
		}
	}

	var matched []string
	for _, w := range q.PlusWords {
		if _, present := row[w]; present {
			matched = append(matched, w)
		}
	}
	return matched, meta.status, nil
}

// MatchDocumentParallel is MatchDocument with the minus-word check and the
// plus-word lookup each spread across an errgroup. Minus-words are tested
// concurrently with short-circuit on the first hit (via context
// cancellation); plus-words are mapped concurrently to themselves-or-empty
// then filtered and sorted into a deduplicated result. The query is
// parsed with skipSort so duplicate/unsorted tokens don't change which
// words get tested, only the bookkeeping around it.
func MatchDocumentParallel(store *IndexStore, query string, stopWords *StopWordSet, id int) ([]string, Status, error) {
	meta, ok := store.metaOf(id)
	if !ok {
		panic("search: MatchDocumentParallel called with a non-live document id")
	}

	q, err := ParseQueryOpt(query, stopWords, true)
	if err != nil {
		return nil, 0, err
	}

	row := store.GetWordFrequencies(id)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	minusGroup, _ := errgroup.WithContext(ctx)
	var anyHit atomic.Bool
	for _, w := range q.MinusWords {
		w := w
		minusGroup.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if _, present := row[w]; present {
				anyHit.Store(true)
				cancel()
			}
			return nil
		})
	}
	_ = minusGroup.Wait()
	if anyHit.Load() {
		return nil, meta.status, nil
	}

	matches := make([]string, len(q.PlusWords))
	var plusGroup errgroup.Group
	for i, w := range q.PlusWords {
		i, w := i, w
		plusGroup.Go(func() error {
			if _, present := row[w]; present {
				matches[i] = w
			}
			return nil
		})
	}
	_ = plusGroup.Wait()

	var survivors []string
	for _, w := range matches {
		if w != "" {
			survivors = append(survivors, w)
		}
	}
	return sortDedupStrings(survivors), meta.status, nil
}

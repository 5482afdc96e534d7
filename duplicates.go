package search

import (
	"fmt"
	"io"
)

// RemoveDuplicates walks store's live ids in ascending order and collapses
// any document whose exact set of indexed words has already been seen
// under a lower id. Multiplicity, order, and ratings are ignored — only
// the word *set* matters. One diagnostic line per collapsed id is written
// to diagnostics, and the surviving representative of each equivalence
// class is always the smallest id in it, since ids are walked ascending
// and only later duplicates get scheduled for removal.
func RemoveDuplicates(store *IndexStore, diagnostics io.Writer) {
	seen := make(map[string]int)
	var toRemove []int

	for _, id := range store.IterateIds() {
		row := store.GetWordFrequencies(id)
		words := make([]string, 0, len(row))
		for w := range row {
			words = append(words, w)
		}
		key := joinKey(words)

		if _, exists := seen[key]; exists {
			fmt.Fprintf(diagnostics, "Found duplicate document id %d\n", id)
			toRemove = append(toRemove, id)
			continue
		}
		seen[key] = id
	}

	for _, id := range toRemove {
		store.RemoveDocument(id)
	}
}

package search

import "golang.org/x/sync/errgroup"

// ProcessQueries runs each query against e concurrently (one goroutine
// per query, via errgroup) and returns one result vector per query,
// preserving input order in the output. A query that fails to parse
// contributes a nil result rather than aborting the batch.
func ProcessQueries(e *Engine, queries []string) [][]Result {
	results := make([][]Result, len(queries))

	var g errgroup.Group
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			r, err := e.FindTopDocumentsActual(query, Sequential)
			if err != nil {
				return nil
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ProcessQueriesJoined flattens ProcessQueries' per-query result vectors
// into one sequence, preserving query order and each query's intra-query
// order.
func ProcessQueriesJoined(e *Engine, queries []string) []Result {
	var joined []Result
	for _, r := range ProcessQueries(e, queries) {
		joined = append(joined, r...)
	}
	return joined
}

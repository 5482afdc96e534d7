package search

import "testing"

func TestProcessQueriesPreservesOrder(t *testing.T) {
	e, _ := New("")
	_ = e.AddDocument(1, "cat", StatusActual, nil)
	_ = e.AddDocument(2, "dog", StatusActual, nil)

	queries := []string{"cat", "dog", "bird"}
	results := ProcessQueries(e, queries)

	if len(results) != len(queries) {
		t.Fatalf("expected %d result vectors, got %d", len(queries), len(results))
	}
	if len(results[0]) != 1 || results[0][0].ID != 1 {
		t.Errorf("query 0 (cat) = %v, want [doc 1]", results[0])
	}
	if len(results[1]) != 1 || results[1][0].ID != 2 {
		t.Errorf("query 1 (dog) = %v, want [doc 2]", results[1])
	}
	if len(results[2]) != 0 {
		t.Errorf("query 2 (bird) = %v, want empty", results[2])
	}
}

func TestProcessQueriesMalformedQueryYieldsNilSlot(t *testing.T) {
	e, _ := New("")
	_ = e.AddDocument(1, "cat", StatusActual, nil)

	results := ProcessQueries(e, []string{"cat", "cat --dog"})
	if results[0] == nil {
		t.Error("expected non-nil results for the valid query")
	}
	if results[1] != nil {
		t.Errorf("expected nil for the malformed query, got %v", results[1])
	}
}

func TestProcessQueriesJoinedFlattensPreservingOrder(t *testing.T) {
	e, _ := New("")
	_ = e.AddDocument(1, "cat", StatusActual, nil)
	_ = e.AddDocument(2, "dog", StatusActual, nil)

	joined := ProcessQueriesJoined(e, []string{"cat", "dog"})
	if len(joined) != 2 {
		t.Fatalf("expected 2 results, got %v", joined)
	}
	if joined[0].ID != 1 || joined[1].ID != 2 {
		t.Errorf("expected [doc1 doc2] in query order, got %v", joined)
	}
}

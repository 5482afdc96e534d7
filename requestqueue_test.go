package search

import "testing"

func TestRequestQueueRecordsSuccessAndFailure(t *testing.T) {
	e, _ := New("")
	_ = e.AddDocument(1, "cat", StatusActual, nil)
	q := NewRequestQueue(e)

	if _, err := q.AddFindRequestActual("cat", Sequential); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := q.AddFindRequestActual("nonexistent", Sequential); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := q.NoResultRequests(); got != 1 {
		t.Errorf("NoResultRequests() = %d, want 1", got)
	}
}

func TestRequestQueueByStatusAndPredicateVariants(t *testing.T) {
	e, _ := New("")
	_ = e.AddDocument(1, "cat", StatusIrrelevant, nil)
	q := NewRequestQueue(e)

	if _, err := q.AddFindRequestByStatus("cat", StatusIrrelevant, Sequential); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := q.AddFindRequest("cat", ActualPredicate(), Sequential); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := q.NoResultRequests(); got != 1 {
		t.Errorf("NoResultRequests() = %d, want 1 (the ActualPredicate miss)", got)
	}
}

func TestRequestQueueWindowEviction(t *testing.T) {
	e, _ := New("")
	_ = e.AddDocument(1, "cat", StatusActual, nil)
	q := NewRequestQueue(e)

	// Fill the window entirely with failures.
	for i := 0; i < RequestWindow; i++ {
		q.record(false)
	}
	if got := q.NoResultRequests(); got != RequestWindow {
		t.Fatalf("NoResultRequests() = %d, want %d", got, RequestWindow)
	}

	// Pushing a success now must evict the oldest failure, net -1.
	q.record(true)
	if got := q.NoResultRequests(); got != RequestWindow-1 {
		t.Fatalf("NoResultRequests() = %d, want %d", got, RequestWindow-1)
	}

	// Filling the rest of the window with successes evicts every
	// remaining failure one at a time.
	for i := 0; i < RequestWindow-1; i++ {
		q.record(true)
	}
	if got := q.NoResultRequests(); got != 0 {
		t.Fatalf("NoResultRequests() = %d, want 0", got)
	}
}

func TestRequestQueueBeforeWindowFillsNeverEvicts(t *testing.T) {
	e, _ := New("")
	q := NewRequestQueue(e)

	for i := 0; i < 10; i++ {
		q.record(false)
	}
	if got := q.NoResultRequests(); got != 10 {
		t.Fatalf("NoResultRequests() = %d, want 10", got)
	}
}

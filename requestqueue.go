package search

import (
	"container/ring"
	"sync"
)

// RequestWindow is the number of trailing find-top requests RequestQueue
// tracks for its failure count.
const RequestWindow = 1440

// RequestQueue wraps an Engine and records the outcome (success = a
// non-empty result, failure = empty) of the last RequestWindow
// FindTopDocuments-family calls made through it, exposing a count of
// failures over that trailing window. It uses a fixed-size container/ring
// as its circular buffer — the stdlib's direct analogue of the original's
// std::deque-backed sliding window.
type RequestQueue struct {
	engine *Engine

	mu       sync.Mutex
	buf      *ring.Ring // buf.Value holds bool or nil (not yet filled)
	filled   int
	failures int
}

// NewRequestQueue wraps engine in a RequestQueue with an empty window.
func NewRequestQueue(engine *Engine) *RequestQueue {
	return &RequestQueue{engine: engine, buf: ring.New(RequestWindow)}
}

// AddFindRequest runs FindTopDocuments through the wrapped engine and
// records the outcome.
func (q *RequestQueue) AddFindRequest(query string, pred Predicate, exec Execution) ([]Result, error) {
	results, err := q.engine.FindTopDocuments(query, pred, exec)
	q.record(len(results) > 0)
	return results, err
}

// AddFindRequestByStatus runs FindTopDocumentsByStatus and records the
// outcome.
func (q *RequestQueue) AddFindRequestByStatus(query string, status Status, exec Execution) ([]Result, error) {
	results, err := q.engine.FindTopDocumentsByStatus(query, status, exec)
	q.record(len(results) > 0)
	return results, err
}

// AddFindRequestActual runs FindTopDocumentsActual and records the
// outcome.
func (q *RequestQueue) AddFindRequestActual(query string, exec Execution) ([]Result, error) {
	results, err := q.engine.FindTopDocumentsActual(query, exec)
	q.record(len(results) > 0)
	return results, err
}

// NoResultRequests returns how many of the trailing RequestWindow calls
// through this queue returned an empty result.
func (q *RequestQueue) NoResultRequests() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.failures
}

// record pushes one outcome into the ring, evicting the oldest entry once
// the window is full (adjusting the failure count for whichever outcome
// falls off the back).
func (q *RequestQueue) record(success bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.filled == RequestWindow {
		if old, ok := q.buf.Value.(bool); ok && !old {
			q.failures--
		}
	} else {
		q.filled++
	}

	q.buf.Value = success
	if !success {
		q.failures++
	}
	q.buf = q.buf.Next()
}

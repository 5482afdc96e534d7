package search

import "sync"

// ShardedRelevanceMap is a fixed-bucket concurrent mapping from document
// id to accumulated relevance, used only by the parallel ranking path
// (FindTopDocumentsParallel) to let independent goroutines update disjoint or
// overlapping documents without a single global lock.
//
// Bucket assignment is id % len(shards); any two operations targeting
// different shards proceed without blocking each other, while operations
// on the same shard (and hence possibly the same key) serialize on that
// shard's mutex. This is the same partition-by-key-then-lock shape as a
// sharded cache, just keyed by document id instead of a cache key's hash.
type ShardedRelevanceMap struct {
	shards []*relevanceShard
}

type relevanceShard struct {
	mu sync.Mutex
	m  map[int]float64
}

// NewShardedRelevanceMap builds a map with the given number of shards.
// Shard count is a tuning parameter, not a correctness one: even a single
// shard (a global lock) is a valid, merely less concurrent, instance.
func NewShardedRelevanceMap(shardCount int) *ShardedRelevanceMap {
	if shardCount < 1 {
		shardCount = 1
	}
	shards := make([]*relevanceShard, shardCount)
	for i := range shards {
		shards[i] = &relevanceShard{m: make(map[int]float64)}
	}
	return &ShardedRelevanceMap{shards: shards}
}

func (r *ShardedRelevanceMap) shardFor(id int) *relevanceShard {
	n := len(r.shards)
	b := id % n
	if b < 0 {
		b += n
	}
	return r.shards[b]
}

// Accumulate adds delta to the value stored at id, creating the entry
// with value 0.0 first if it doesn't yet exist.
func (r *ShardedRelevanceMap) Accumulate(id int, delta float64) {
	shard := r.shardFor(id)
	shard.mu.Lock()
	shard.m[id] += delta
	shard.mu.Unlock()
}

// Remove deletes id's entry if present. A no-op otherwise.
func (r *ShardedRelevanceMap) Remove(id int) {
	shard := r.shardFor(id)
	shard.mu.Lock()
	delete(shard.m, id)
	shard.mu.Unlock()
}

// Drain locks each bucket in turn and merges its contents into a single
// ordinary map for the caller. Intended to be called once, after all
// concurrent accumulation/removal for a query has completed.
func (r *ShardedRelevanceMap) Drain() map[int]float64 {
	out := make(map[int]float64)
	for _, shard := range r.shards {
		shard.mu.Lock()
		for id, v := range shard.m {
			out[id] = v
		}
		shard.mu.Unlock()
	}
	return out
}

// shardCountFor sizes the ShardedRelevanceMap from a corpus size: roughly
// one shard per four live documents, never fewer than one.
func shardCountFor(documentCount int) int {
	n := documentCount / 4
	if n < 1 {
		n = 1
	}
	return n
}

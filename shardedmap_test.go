package search

import (
	"sync"
	"testing"
)

func TestShardedRelevanceMapAccumulate(t *testing.T) {
	m := NewShardedRelevanceMap(4)
	m.Accumulate(1, 0.5)
	m.Accumulate(1, 0.25)
	m.Accumulate(2, 1.0)

	got := m.Drain()
	if got[1] != 0.75 {
		t.Errorf("id 1 = %v, want 0.75", got[1])
	}
	if got[2] != 1.0 {
		t.Errorf("id 2 = %v, want 1.0", got[2])
	}
}

func TestShardedRelevanceMapRemove(t *testing.T) {
	m := NewShardedRelevanceMap(4)
	m.Accumulate(5, 1.0)
	m.Remove(5)
	got := m.Drain()
	if _, ok := got[5]; ok {
		t.Error("expected id 5 to be removed")
	}
}

func TestShardedRelevanceMapNegativeKeyDoesNotPanic(t *testing.T) {
	m := NewShardedRelevanceMap(4)
	m.Accumulate(-3, 1.0) // defensive: document ids are non-negative in practice
	got := m.Drain()
	if got[-3] != 1.0 {
		t.Errorf("got %v, want 1.0", got[-3])
	}
}

func TestShardedRelevanceMapConcurrentAccumulate(t *testing.T) {
	m := NewShardedRelevanceMap(8)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		for id := 0; id < 10; id++ {
			wg.Add(1)
			id := id
			go func() {
				defer wg.Done()
				m.Accumulate(id, 1.0)
			}()
		}
	}
	wg.Wait()

	got := m.Drain()
	for id := 0; id < 10; id++ {
		if got[id] != 100.0 {
			t.Errorf("id %d = %v, want 100.0", id, got[id])
		}
	}
}

func TestShardCountFor(t *testing.T) {
	cases := []struct {
		docs int
		want int
	}{
		{0, 1}, {1, 1}, {4, 1}, {8, 2}, {40, 10},
	}
	for _, c := range cases {
		if got := shardCountFor(c.docs); got != c.want {
			t.Errorf("shardCountFor(%d) = %d, want %d", c.docs, got, c.want)
		}
	}
}

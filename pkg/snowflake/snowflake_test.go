package snowflake

import (
	"sync"
	"testing"
)

func TestGenID(t *testing.T) {
	if err := Init(1); err != nil {
		t.Fatalf("init snowflake: %v", err)
	}

	id1 := GenID()
	id2 := GenID()
	if id1 == id2 {
		t.Errorf("expected unique ids, got %d twice", id1)
	}
	if id1 <= 0 || id2 <= 0 {
		t.Errorf("expected positive ids, got %d %d", id1, id2)
	}
}

func TestGenIDString(t *testing.T) {
	s := GenIDString()
	if s == "" {
		t.Error("expected non-empty id string")
	}
}

func TestGenIDMonotonic(t *testing.T) {
	prev := GenID()
	for i := 0; i < 1000; i++ {
		cur := GenID()
		if cur <= prev {
			t.Fatalf("id not increasing: %d <= %d", cur, prev)
		}
		prev = cur
	}
}

func TestGenIDConcurrent(t *testing.T) {
	const n = 100
	var wg sync.WaitGroup
	ids := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- GenID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}

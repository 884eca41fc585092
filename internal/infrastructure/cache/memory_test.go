package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	defer ms.Close()

	if _, ok, _ := ms.Get(ctx, "missing"); ok {
		t.Fatal("Get on empty store reported a hit")
	}

	if err := ms.Set(ctx, "post:hello", `{"slug":"hello"}`, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	val, ok, err := ms.Get(ctx, "post:hello")
	if err != nil || !ok || val != `{"slug":"hello"}` {
		t.Fatalf("Get() = %q, %v, %v", val, ok, err)
	}

	if err := ms.Delete(ctx, "post:hello", "never-set"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := ms.Get(ctx, "post:hello"); ok {
		t.Error("Get after Delete reported a hit")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	defer ms.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return now }

	_ = ms.Set(ctx, "a", "1", time.Minute)
	_ = ms.Set(ctx, "b", "2", time.Hour)

	now = now.Add(2 * time.Minute)
	if _, ok, _ := ms.Get(ctx, "a"); ok {
		t.Error("expired key still readable")
	}
	if v, ok, _ := ms.Get(ctx, "b"); !ok || v != "2" {
		t.Errorf("live key = %q, %v", v, ok)
	}

	ms.purge()
	if n := ms.Len(); n != 1 {
		t.Errorf("Len() after purge = %d, want 1", n)
	}
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	ms := NewMemoryStore()
	if err := ms.Close(); err != nil {
		t.Fatal(err)
	}
	if err := ms.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestMemoryStore_Incr(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	defer ms.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return now }

	for want := int64(1); want <= 3; want++ {
		got, err := ms.Incr(ctx, "hits", time.Minute)
		if err != nil || got != want {
			t.Fatalf("Incr() = %d, %v, want %d", got, err, want)
		}
	}
	if v, ok, _ := ms.Get(ctx, "hits"); !ok || v != "3" {
		t.Errorf("Get() = %q, %v, want \"3\"", v, ok)
	}

	// the window is fixed by the first increment
	now = now.Add(61 * time.Second)
	if got, _ := ms.Incr(ctx, "hits", time.Minute); got != 1 {
		t.Errorf("Incr() after expiry = %d, want 1", got)
	}

	_ = ms.Set(ctx, "text", "abc", time.Minute)
	if _, err := ms.Incr(ctx, "text", time.Minute); err == nil {
		t.Error("Incr() on a non-integer value succeeded")
	}
}

func TestMemoryStore_IncrConcurrent(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	defer ms.Close()

	const workers = 50
	var wg sync.WaitGroup
	seen := make([]int64, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i], _ = ms.Incr(ctx, "n", time.Minute)
		}(i)
	}
	wg.Wait()

	unique := make(map[int64]bool, workers)
	for _, n := range seen {
		unique[n] = true
	}
	if len(unique) != workers {
		t.Errorf("got %d distinct counter values, want %d", len(unique), workers)
	}
	if v, _, _ := ms.Get(ctx, "n"); v != "50" {
		t.Errorf("final value = %q, want \"50\"", v)
	}
}

package cache

import (
	"context"
	"strconv"
	"sync"
	"testing"
)

func TestIncrSequential(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := store.Incr(ctx, "a1")
		if err != nil {
			t.Fatalf("Incr() error = %v", err)
		}
		if got != want {
			t.Fatalf("Incr() = %d, 期望 %d", got, want)
		}
	}
}

func TestIncrConcurrent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Incr(ctx, "a1"); err != nil {
				t.Errorf("Incr() error = %v", err)
			}
		}()
	}
	wg.Wait()

	counts, err := store.Counts(ctx, []string{"a1"})
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if counts[0] != n {
		t.Fatalf("并发递增后计数 = %d, 期望 %d", counts[0], n)
	}
}

func TestCountsAlignment(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set(CountKey("a1"), "7")
	mr.Set(CountKey("a3"), "42")
	// a2、a4没有计数记录

	counts, err := store.Counts(ctx, []string{"a1", "a2", "a3", "a4"})
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	want := []int64{7, 0, 42, 0}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("Counts()[%d] = %d, 期望 %d", i, counts[i], want[i])
		}
	}
}

func TestCountsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	counts, err := store.Counts(context.Background(), nil)
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("Counts(nil) 长度 = %d", len(counts))
	}
}

func TestCountsUnparseableValue(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set(CountKey("a1"), "not-a-number")
	mr.Set(CountKey("a2"), strconv.Itoa(9))

	counts, err := store.Counts(ctx, []string{"a1", "a2"})
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if counts[0] != 0 || counts[1] != 9 {
		t.Fatalf("Counts() = %v, 期望 [0 9]", counts)
	}
}

func TestCountKeyRoundTrip(t *testing.T) {
	if got := CountKey("a1"); got != "count:a1" {
		t.Fatalf("CountKey() = %q", got)
	}
	if got := IDFromCountKey("count:a1"); got != "a1" {
		t.Fatalf("IDFromCountKey() = %q", got)
	}
	if got := IDFromCountKey("navigations"); got != "" {
		t.Fatalf("IDFromCountKey() 非计数键 = %q", got)
	}
}

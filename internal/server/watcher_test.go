package server

import (
	"sort"
	"sync"
	"testing"
	"time"
)

// Rapid events must collapse into one rebuild carrying every path.
func TestWatcherBatchesChangedPaths(t *testing.T) {
	var (
		mu    sync.Mutex
		calls [][]string
	)
	rebuild := func(changed []string) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, changed)
		return nil
	}

	srv := New(Config{Port: 0, SiteDir: t.TempDir()})
	w := NewWatcher(t.TempDir(), rebuild, srv)

	w.schedule("content/a.md")
	w.schedule("content/b.md")
	w.schedule("content/a.md")

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(calls)
		mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("rebuild never fired")
		}
		time.Sleep(10 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Fatalf("rebuild fired %d times, want 1", len(calls))
	}
	got := append([]string(nil), calls[0]...)
	sort.Strings(got)
	want := []string{"content/a.md", "content/b.md"}
	if len(got) != len(want) {
		t.Fatalf("changed = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("changed[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// A second burst after a rebuild must start from an empty change set.
func TestWatcherResetsPendingAfterFire(t *testing.T) {
	var (
		mu    sync.Mutex
		calls [][]string
	)
	rebuild := func(changed []string) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, changed)
		return nil
	}

	srv := New(Config{Port: 0, SiteDir: t.TempDir()})
	w := NewWatcher(t.TempDir(), rebuild, srv)

	w.schedule("content/a.md")
	waitForCalls(t, &mu, &calls, 1)

	w.schedule("content/b.md")
	waitForCalls(t, &mu, &calls, 2)

	mu.Lock()
	defer mu.Unlock()
	if len(calls[1]) != 1 || calls[1][0] != "content/b.md" {
		t.Errorf("second rebuild changed = %v, want [content/b.md]", calls[1])
	}
}

func waitForCalls(t *testing.T, mu *sync.Mutex, calls *[][]string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		done := len(*calls) >= n
		mu.Unlock()
		if done {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("rebuild call %d never fired", n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

package tiles

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "gem.yaml")
	if err := os.WriteFile(target, []byte("kind: normal\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Base(name) == "ignored.txt" {
				t.Fatalf("non-tile file should be filtered")
			}
			if filepath.Base(name) == "gem.yaml" {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-timeout:
			t.Fatalf("timed out waiting for event on %s", target)
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("expected Events to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Events not closed after Close")
	}
}

func TestWatcherReportsAfterWritesSettle(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "gem.yaml")
	if err := os.WriteFile(target, []byte("kind: normal\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	// Truncate, then finish the write inside the quiet period.
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("kind: "); err != nil {
		t.Fatal(err)
	}
	time.Sleep(debounce / 2)
	if _, err := f.WriteString("obstacle\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		tile, err := ParseSpec(name, data)
		if err != nil {
			t.Fatalf("reported file should be complete: %v", err)
		}
		if tile.ID != "gem" || tile.Kind.String() != "obstacle" {
			t.Fatalf("got %s/%s, want gem/obstacle", tile.ID, tile.Kind)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("burst of writes should be reported once, got extra event for %s", name)
	case <-time.After(4 * debounce):
	}
}

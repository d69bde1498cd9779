package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "gravity.yaml")
	if err := os.WriteFile(path, []byte("direction:\n  y: -1\n"), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event for %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for spec write")
	}
}

func TestWatcherIgnoresNonSpecFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestIsSpecFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"gravity.yaml", true},
		{"gravity.YML", true},
		{"gravity.json", false},
		{"yaml", false},
	}

	for _, tc := range tests {
		if got := isSpecFile(tc.path); got != tc.want {
			t.Fatalf("isSpecFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

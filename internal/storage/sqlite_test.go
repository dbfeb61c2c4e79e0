package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTemp(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreGetMissing(t *testing.T) {
	store, _ := openTemp(t)

	v, err := store.Get("snake_high")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != 0 {
		t.Errorf("Expected 0 for missing key, got %d", v)
	}
}

func TestStoreRaise(t *testing.T) {
	store, _ := openTemp(t)

	tests := []struct {
		key   string
		value int
		want  int
	}{
		{"snake_high", 120, 120},
		{"snake_high", 340, 340},
		{"snake_high", 200, 340},
		{"snake_high", 340, 340},
		{"other", 7, 7},
	}
	for _, tc := range tests {
		got, err := store.Raise(tc.key, tc.value)
		if err != nil {
			t.Fatalf("Raise(%q, %d) failed: %v", tc.key, tc.value, err)
		}
		if got != tc.want {
			t.Errorf("Raise(%q, %d) = %d, want %d", tc.key, tc.value, got, tc.want)
		}
		if v, _ := store.Get(tc.key); v != tc.want {
			t.Errorf("Get(%q) after Raise = %d, want %d", tc.key, v, tc.want)
		}
	}
}

func TestStoreRemove(t *testing.T) {
	store, _ := openTemp(t)

	store.Raise("snake_high", 90)
	store.Raise("other", 5)

	if err := store.Remove("snake_high"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if err := store.Remove("missing"); err != nil {
		t.Errorf("Remove() of missing key should succeed: %v", err)
	}

	if v, _ := store.Get("snake_high"); v != 0 {
		t.Errorf("Expected 0 after remove, got %d", v)
	}
	if v, _ := store.Get("other"); v != 5 {
		t.Errorf("Other keys should not be affected, got %d", v)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.Raise("snake_high", 410); err != nil {
		t.Fatalf("Raise() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, _ := store.Get("snake_high"); v != 410 {
		t.Errorf("Expected 410 after reopen, got %d", v)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.snake/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".snake", "scores.db"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestStoreOpenFailure(t *testing.T) {
	// A regular file where a directory is expected.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(filepath.Join(blocker, "scores.db"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "storage:") {
		t.Errorf("error not prefixed: %v", err)
	}
}

func TestStoreConcurrentWriters(t *testing.T) {
	store, _ := openTemp(t)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := store.Raise("snake_high", n*10); err != nil {
				t.Errorf("Raise() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	v, err := store.Get("snake_high")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != 80 {
		t.Errorf("Expected the largest concurrent write to win, got %d", v)
	}
}

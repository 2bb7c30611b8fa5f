package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	if err := fs.Save(StorageKey, `{"fullName":"Jane"}`); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	blob, ok, err := fs.Load(StorageKey)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() reported absent after Save()")
	}
	if blob != `{"fullName":"Jane"}` {
		t.Errorf("Load() = %q, want saved blob", blob)
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	blob, ok, err := fs.Load(StorageKey)
	if err != nil {
		t.Fatalf("Load() on empty store error = %v", err)
	}
	if ok {
		t.Error("Load() reported a blob that was never saved")
	}
	if blob != "" {
		t.Errorf("Load() = %q, want empty", blob)
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	for _, blob := range []string{"first", "second", "third"} {
		if err := fs.Save(StorageKey, blob); err != nil {
			t.Fatalf("Save(%q) error = %v", blob, err)
		}
	}

	got, _, err := fs.Load(StorageKey)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "third" {
		t.Errorf("Load() = %q, want last saved blob", got)
	}
}

func TestFileStoreClear(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	if err := fs.Save(StorageKey, "data"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := fs.Clear(StorageKey); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if _, ok, _ := fs.Load(StorageKey); ok {
		t.Error("Load() found a blob after Clear()")
	}

	// Clearing again must not fail
	if err := fs.Clear(StorageKey); err != nil {
		t.Errorf("Clear() on empty store error = %v", err)
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")
	fs := NewFileStore(dir)

	if err := fs.Save(StorageKey, "data"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(fs.Path(StorageKey)); err != nil {
		t.Errorf("blob file missing after Save(): %v", err)
	}
}

func TestMemStoreRecordsSaveOrder(t *testing.T) {
	ms := NewMemStore()

	blobs := []string{"a", "b", "c"}
	for _, b := range blobs {
		if err := ms.Save(StorageKey, b); err != nil {
			t.Fatalf("Save(%q) error = %v", b, err)
		}
	}

	if len(ms.Saves) != len(blobs) {
		t.Fatalf("recorded %d saves, want %d", len(ms.Saves), len(blobs))
	}
	for i, want := range blobs {
		if ms.Saves[i] != want {
			t.Errorf("Saves[%d] = %q, want %q", i, ms.Saves[i], want)
		}
	}
	if ms.LastSave() != "c" {
		t.Errorf("LastSave() = %q, want %q", ms.LastSave(), "c")
	}
}

func TestMemStoreFaultInjection(t *testing.T) {
	ms := NewMemStore()
	boom := errors.New("disk on fire")

	ms.SaveErr = boom
	if err := ms.Save(StorageKey, "data"); !errors.Is(err, boom) {
		t.Errorf("Save() error = %v, want injected error", err)
	}
	if ms.SaveCount() != 0 {
		t.Error("failed Save() was recorded")
	}

	ms.SaveErr = nil
	if err := ms.Save(StorageKey, "data"); err != nil {
		t.Fatalf("Save() after clearing fault error = %v", err)
	}

	ms.LoadErr = boom
	if _, _, err := ms.Load(StorageKey); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want injected error", err)
	}
}

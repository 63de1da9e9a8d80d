package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jdex/internal/domain"
)

func sampleIndex() *domain.Index {
	idx := domain.NewIndex()

	area := &domain.Area{Code: "10-19", Name: "10-19 Life admin"}
	idx.AddArea(area)

	cat := &domain.Category{Code: "11", Name: "11 Me"}
	area.AddCategory(cat)
	cat.AddID(&domain.ID{Code: "11.01", Name: "11.01 Inbox"})
	cat.AddID(&domain.ID{Code: "11.10", Name: "11.10 ■ Finance", Section: true})

	return idx
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	store := NewStore(path)

	if err := store.Save(sampleIndex()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	areas, cats, ids := loaded.Count()
	if areas != 1 || cats != 1 || ids != 2 {
		t.Errorf("Count() = (%d, %d, %d), want (1, 1, 2)", areas, cats, ids)
	}

	id := loaded.GetID("11.10")
	if id == nil || !id.Section {
		t.Errorf("section flag lost in round trip: %+v", id)
	}
	if id.Category() == nil || id.Category().Area() == nil {
		t.Error("back-references not rebuilt on load")
	}
}

func TestSaveOmitsSectionForRegularIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	store := NewStore(path)

	if err := store.Save(sampleIndex()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if strings.Count(text, `"section": true`) != 1 {
		t.Errorf("expected exactly one section flag, got:\n%s", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Error("index file should end with a newline")
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config", "index.json")
	store := NewStore(path)

	if err := store.Save(sampleIndex()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("index file not written: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load()
	if !errors.Is(err, ErrIndexNotFound) {
		t.Errorf("expected ErrIndexNotFound, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewStore(path).Load()
	if !errors.Is(err, ErrIndexEmpty) {
		t.Errorf("expected ErrIndexEmpty, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewStore(path).Load()

	var malformed *MalformedIndexError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedIndexError, got %v", err)
	}
	if malformed.Path != path {
		t.Errorf("error should carry the file path, got %q", malformed.Path)
	}
	if errors.Is(err, ErrIndexNotFound) || errors.Is(err, ErrIndexEmpty) {
		t.Error("malformed must be distinct from absent and empty")
	}
}

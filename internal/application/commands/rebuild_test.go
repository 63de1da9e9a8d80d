package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/jsonstore"
	"jdex/internal/application"
)

func TestRebuildScansAndPersists(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{
		"10-19 Life admin/11 Me/11.01 Inbox",
		"20-29 Work/21 Clients",
	} {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatal(err)
		}
	}

	indexPath := filepath.Join(t.TempDir(), "index.json")
	store := jsonstore.NewStore(indexPath)
	cmd := NewRebuildCommand(filesystem.NewScanner(root), store)

	index, stats, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if stats.Areas != 2 || stats.Categories != 2 || stats.IDs != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if index.GetID("11.01") == nil {
		t.Error("scanned index missing 11.01")
	}

	// The persisted copy loads back identical in shape
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	a1, c1, i1 := index.Count()
	a2, c2, i2 := loaded.Count()
	if a1 != a2 || c1 != c2 || i1 != i2 {
		t.Errorf("persisted counts (%d,%d,%d) != scanned (%d,%d,%d)", a2, c2, i2, a1, c1, i1)
	}
}

func TestRebuildEmptyRoot(t *testing.T) {
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "index.json"))
	cmd := NewRebuildCommand(filesystem.NewScanner(t.TempDir()), store)

	_, _, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrEmptyScan) {
		t.Errorf("expected ErrEmptyScan, got %v", err)
	}

	// Nothing persisted on a failed rebuild
	if _, err := store.Load(); !errors.Is(err, jsonstore.ErrIndexNotFound) {
		t.Errorf("index file should not exist, got %v", err)
	}
}

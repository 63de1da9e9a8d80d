package cmd

import (
	"os"
	"testing"

	"jdex/internal/adapters/sqlite"
)

func TestCachedCountsAbsentCacheLeavesNoFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	rootPath = t.TempDir()

	_, _, _, ok := cachedCounts()
	if ok {
		t.Fatal("expected no cached counts for a root that was never built")
	}

	dbPath := sqlite.DatabasePath(rootPath)
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Errorf("reading stats created %s", dbPath)
	}
}

package sqlite

import (
	"path/filepath"
	"testing"

	"jdex/internal/domain"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()

	c := NewCacheAt("/jd", filepath.Join(t.TempDir(), "cache.db"))
	if err := c.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func cacheTestIndex() *domain.Index {
	idx := domain.NewIndex()

	area := &domain.Area{Code: "10-19", Name: "10-19 Life admin"}
	idx.AddArea(area)

	cat := &domain.Category{Code: "11", Name: "11 Me"}
	area.AddCategory(cat)
	cat.AddID(&domain.ID{Code: "11.01", Name: "11.01 Inbox"})
	cat.AddID(&domain.ID{Code: "11.10", Name: "11.10 ■ Finance", Section: true})

	return idx
}

func TestSyncFullAndGetNode(t *testing.T) {
	c := openTestCache(t)

	stats, err := c.SyncFull(cacheTestIndex())
	if err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}
	if stats.NodesWritten != 4 {
		t.Errorf("expected 4 nodes written, got %d", stats.NodesWritten)
	}

	node, err := c.GetNode("11.10")
	if err != nil {
		t.Fatalf("GetNode failed: %v", err)
	}
	if node == nil {
		t.Fatal("11.10 not cached")
	}
	if node.Tier != domain.TierID || !node.Section || node.ParentCode != "11" {
		t.Errorf("node not cached correctly: %+v", node)
	}

	missing, err := c.GetNode("99.99")
	if err != nil {
		t.Fatalf("GetNode failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown code, got %+v", missing)
	}
}

func TestSyncFullReplacesWholesale(t *testing.T) {
	c := openTestCache(t)

	if _, err := c.SyncFull(cacheTestIndex()); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	// Second sync from a smaller index leaves no stale rows
	small := domain.NewIndex()
	small.AddArea(&domain.Area{Code: "20-29", Name: "20-29 Work"})
	if _, err := c.SyncFull(small); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}

	stale, err := c.GetNode("11.01")
	if err != nil {
		t.Fatal(err)
	}
	if stale != nil {
		t.Errorf("stale node survived resync: %+v", stale)
	}

	counts, err := c.CountByTier()
	if err != nil {
		t.Fatal(err)
	}
	if counts[domain.TierArea] != 1 || counts[domain.TierID] != 0 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestCountByTier(t *testing.T) {
	c := openTestCache(t)

	if _, err := c.SyncFull(cacheTestIndex()); err != nil {
		t.Fatal(err)
	}

	counts, err := c.CountByTier()
	if err != nil {
		t.Fatal(err)
	}
	if counts[domain.TierArea] != 1 || counts[domain.TierCategory] != 1 || counts[domain.TierID] != 2 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestNeedsFullRebuild(t *testing.T) {
	c := openTestCache(t)

	// Fresh database has no meta rows
	if !c.NeedsFullRebuild() {
		t.Error("fresh cache should need a rebuild")
	}

	if _, err := c.SyncFull(cacheTestIndex()); err != nil {
		t.Fatal(err)
	}
	if c.NeedsFullRebuild() {
		t.Error("synced cache should not need a rebuild")
	}

	// Same database opened for a different root must resync
	other := NewCacheAt("/elsewhere", c.dbPath)
	if err := other.Open(); err != nil {
		t.Fatal(err)
	}
	defer other.Close()
	if !other.NeedsFullRebuild() {
		t.Error("cache synced for another root should need a rebuild")
	}
}

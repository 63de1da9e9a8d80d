package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestRoot builds a small folder tree:
//
//	10-19 Life admin/
//	  11 Me/
//	    11.01 Inbox/
//	    11.10 ■ Finance/
//	    11.11 Taxes/
//	    notes.txt            (file, ignored)
//	  12 Health/
//	  Misc/                  (non-conforming, ignored)
//	20-29 Work/
//	11.01 Stray/             (ID folder at root, ignored)
func setupTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	dirs := []string{
		"10-19 Life admin/11 Me/11.01 Inbox",
		"10-19 Life admin/11 Me/11.10 ■ Finance",
		"10-19 Life admin/11 Me/11.11 Taxes",
		"10-19 Life admin/12 Health",
		"10-19 Life admin/Misc",
		"20-29 Work",
		"11.01 Stray",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	notes := filepath.Join(root, "10-19 Life admin", "11 Me", "notes.txt")
	if err := os.WriteFile(notes, []byte("not a folder"), 0644); err != nil {
		t.Fatalf("failed to create notes.txt: %v", err)
	}

	return root
}

func TestScanBuildsTree(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()

	areas, cats, ids := index.Count()
	if areas != 2 || cats != 2 || ids != 3 {
		t.Fatalf("Count() = (%d, %d, %d), want (2, 2, 3)", areas, cats, ids)
	}

	area := index.GetArea("10-19")
	if area == nil || area.Name != "10-19 Life admin" {
		t.Fatalf("area 10-19 missing or misnamed: %+v", area)
	}

	cat := area.GetCategory("11")
	if cat == nil || cat.Name != "11 Me" {
		t.Fatalf("category 11 missing or misnamed: %+v", cat)
	}
	if cat.Area() != area {
		t.Error("category back-reference not wired")
	}

	id := cat.GetID("11.10")
	if id == nil || !id.Section {
		t.Fatalf("11.10 should be a section: %+v", id)
	}
	if id.Category() != cat {
		t.Error("ID back-reference not wired")
	}
}

func TestScanStrictNesting(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()

	// An ID-named folder directly under root is never picked up
	if index.GetArea("11.01") != nil || index.GetID("11.01") == nil {
		// 11.01 must exist only as the Inbox inside 11, not as the stray
		id := index.GetID("11.01")
		if id == nil || id.Name != "11.01 Inbox" {
			t.Errorf("stray ID folder leaked into the index: %+v", id)
		}
	}

	// A category folder too deep is not picked up either
	deep := filepath.Join(root, "10-19 Life admin", "11 Me", "11.01 Inbox", "12 Deep")
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatal(err)
	}
	index = NewScanner(root).Scan()
	if index.GetCategory("12") == nil {
		t.Fatal("category 12 should exist at its proper tier")
	}
	if index.GetCategory("12").Name == "12 Deep" {
		t.Error("folder one level too deep was treated as a category")
	}
}

func TestScanMissingRoot(t *testing.T) {
	index := NewScanner(filepath.Join(t.TempDir(), "does-not-exist")).Scan()

	if index == nil {
		t.Fatal("missing root must yield an empty index, not nil")
	}
	if index.Len() != 0 {
		t.Errorf("expected empty index, got %d areas", index.Len())
	}
}

func TestScanTraversalOrder(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()

	areas := index.Areas()
	if areas[0].Code != "10-19" || areas[1].Code != "20-29" {
		t.Errorf("areas out of order: %s, %s", areas[0].Code, areas[1].Code)
	}

	ids := index.GetCategory("11").IDs()
	want := []string{"11.01", "11.10", "11.11"}
	for i, id := range ids {
		if id.Code != want[i] {
			t.Errorf("ids[%d] = %s, want %s", i, id.Code, want[i])
		}
	}
}

func TestScanIgnoresNonConformingNames(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()

	for _, area := range index.Areas() {
		if area.Name == "Misc" {
			t.Error("non-conforming folder leaked into the index")
		}
	}

	for _, id := range index.GetCategory("11").IDs() {
		if id.Name == "notes.txt" {
			t.Error("plain file leaked into the index")
		}
	}
}

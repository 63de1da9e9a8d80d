package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveArea(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()
	resolver := NewResolver(root)

	path, ok := resolver.Resolve("10-19", index)
	if !ok {
		t.Fatal("expected area to resolve")
	}
	if want := filepath.Join(root, "10-19 Life admin"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
}

func TestResolveCategory(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()
	resolver := NewResolver(root)

	path, ok := resolver.Resolve("11", index)
	if !ok {
		t.Fatal("expected category to resolve")
	}
	if want := filepath.Join(root, "10-19 Life admin", "11 Me"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
}

func TestResolveID(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()
	resolver := NewResolver(root)

	path, ok := resolver.Resolve("11.01", index)
	if !ok {
		t.Fatal("expected ID to resolve")
	}
	if want := filepath.Join(root, "10-19 Life admin", "11 Me", "11.01 Inbox"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
}

func TestResolveUnknownCode(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()
	resolver := NewResolver(root)

	for _, code := range []string{"30-39", "99", "99.99", "garbage"} {
		if path, ok := resolver.Resolve(code, index); ok {
			t.Errorf("code %s unknown to the index resolved to %s", code, path)
		}
	}
}

func TestResolveDeletedFolder(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()
	resolver := NewResolver(root)

	// Delete the folder after the index was built
	if err := os.RemoveAll(filepath.Join(root, "10-19 Life admin", "11 Me", "11.01 Inbox")); err != nil {
		t.Fatal(err)
	}

	if path, ok := resolver.Resolve("11.01", index); ok {
		t.Errorf("deleted folder resolved to %s", path)
	}

	// Siblings still resolve
	if _, ok := resolver.Resolve("11.11", index); !ok {
		t.Error("sibling should still resolve")
	}
}

func TestResolveRenamedFolderPickedUpNextCall(t *testing.T) {
	root := setupTestRoot(t)
	index := NewScanner(root).Scan()
	resolver := NewResolver(root)

	if _, ok := resolver.Resolve("11.11", index); !ok {
		t.Fatal("expected 11.11 to resolve")
	}

	old := filepath.Join(root, "10-19 Life admin", "11 Me", "11.11 Taxes")
	renamed := filepath.Join(root, "10-19 Life admin", "11 Me", "11.11 Taxes 2026")
	if err := os.Rename(old, renamed); err != nil {
		t.Fatal(err)
	}

	// Same index, no rescan: the prefix match follows the rename
	path, ok := resolver.Resolve("11.11", index)
	if !ok {
		t.Fatal("renamed folder should still resolve by code prefix")
	}
	if path != renamed {
		t.Errorf("expected %s, got %s", renamed, path)
	}
}

func TestResolvePrefixRequiresWhitespace(t *testing.T) {
	root := t.TempDir()
	// "110 Other" starts with "11" but not followed by whitespace
	for _, d := range []string{"10-19 Area/110 Other", "10-19 Area/11 Me"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatal(err)
		}
	}

	index := NewScanner(root).Scan()
	resolver := NewResolver(root)

	path, ok := resolver.Resolve("11", index)
	if !ok {
		t.Fatal("expected category 11 to resolve")
	}
	if want := filepath.Join(root, "10-19 Area", "11 Me"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
}

package filesystem

import (
	"os"
	"path/filepath"

	"jdex/internal/config"
	"jdex/internal/domain"
)

// Scanner builds an index from a three-level folder walk.
// It reads area folders directly under the root, category folders under
// each area, and ID folders under each category; anything not matching
// the naming convention is invisible to the index.
type Scanner struct {
	root string
}

// NewScanner creates a scanner rooted at the given directory
func NewScanner(root string) *Scanner {
	return &Scanner{root: config.ExpandHome(root)}
}

// Root returns the scanned root directory
func (s *Scanner) Root() string {
	return s.root
}

// Scan walks the root and builds a fresh index. A missing root yields an
// empty index; unreadable folders below the root contribute no entries.
func (s *Scanner) Scan() *domain.Index {
	index := domain.NewIndex()

	for _, areaEntry := range listDirs(s.root) {
		areaCode, ok := domain.ParseAreaFolder(areaEntry)
		if !ok {
			continue
		}

		area := &domain.Area{Code: areaCode, Name: areaEntry}
		index.AddArea(area)

		areaPath := filepath.Join(s.root, areaEntry)
		for _, catEntry := range listDirs(areaPath) {
			catCode, ok := domain.ParseCategoryFolder(catEntry)
			if !ok {
				continue
			}

			cat := &domain.Category{Code: catCode, Name: catEntry}
			area.AddCategory(cat)

			catPath := filepath.Join(areaPath, catEntry)
			for _, idEntry := range listDirs(catPath) {
				idCode, section, ok := domain.ParseIDFolder(idEntry)
				if !ok {
					continue
				}

				cat.AddID(&domain.ID{Code: idCode, Name: idEntry, Section: section})
			}
		}
	}

	return index
}

// listDirs returns the names of a directory's subdirectories in ascending
// name order. Unreadable or missing directories yield no entries.
func listDirs(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

package filesystem

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"jdex/internal/config"
	"jdex/internal/domain"
)

// Resolver finds the directory for a code by composing prefix lookups
// through the tree's ancestor chain. Nothing is cached: folders may be
// renamed between calls.
type Resolver struct {
	root string
}

// NewResolver creates a resolver rooted at the given directory
func NewResolver(root string) *Resolver {
	return &Resolver{root: config.ExpandHome(root)}
}

// Resolve maps a code known to the index onto its directory on disk.
// Returns false for codes unknown to the index and for folders that have
// been renamed or removed since the index was built.
func (r *Resolver) Resolve(code string, index *domain.Index) (string, bool) {
	switch domain.ParseTier(code) {
	case domain.TierArea:
		if index.GetArea(code) == nil {
			return "", false
		}
		return findFolderByCode(r.root, code)

	case domain.TierCategory:
		area := index.AreaForCategory(code)
		if area == nil {
			return "", false
		}
		areaPath, ok := findFolderByCode(r.root, area.Code)
		if !ok {
			return "", false
		}
		return findFolderByCode(areaPath, code)

	case domain.TierID:
		id := index.GetID(code)
		if id == nil || id.Category() == nil || id.Category().Area() == nil {
			return "", false
		}
		areaPath, ok := findFolderByCode(r.root, id.Category().Area().Code)
		if !ok {
			return "", false
		}
		catPath, ok := findFolderByCode(areaPath, id.Category().Code)
		if !ok {
			return "", false
		}
		return findFolderByCode(catPath, code)
	}

	return "", false
}

// findFolderByCode finds a child directory whose name is the code followed
// by a whitespace character, tolerating trailing annotations in the name.
func findFolderByCode(parent, code string) (string, bool) {
	for _, name := range listDirs(parent) {
		rest, ok := strings.CutPrefix(name, code)
		if !ok || rest == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(rest)
		if unicode.IsSpace(first) {
			return filepath.Join(parent, name), true
		}
	}
	return "", false
}

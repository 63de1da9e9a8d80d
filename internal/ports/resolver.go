package ports

import "jdex/internal/domain"

// Scanner builds a fresh index from the folder tree.
// A missing root yields an empty index, never an error.
type Scanner interface {
	Scan() *domain.Index
}

// PathResolver maps a code known to the index onto its directory on disk.
// Nothing is cached between calls; a renamed folder is picked up on the
// next resolution. The boolean is false when no folder matches.
type PathResolver interface {
	Resolve(code string, index *domain.Index) (string, bool)
}

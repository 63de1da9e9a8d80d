package ports

import "jdex/internal/domain"

// IndexCache is a derived, flattened view of the tree kept in a database.
// It is replaced wholesale on every sync, never patched incrementally.
type IndexCache interface {
	Open() error
	Close() error

	NeedsFullRebuild() bool
	SyncFull(index *domain.Index) (*domain.SyncStats, error)

	GetNode(code string) (*domain.IndexNode, error)
	CountByTier() (map[domain.Tier]int, error)
}

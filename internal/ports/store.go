package ports

import "jdex/internal/domain"

// IndexStore persists the Johnny Decimal index between processes.
// Load distinguishes absent, empty, malformed, and unreadable state so
// callers can present distinct guidance.
type IndexStore interface {
	Load() (*domain.Index, error)
	Save(index *domain.Index) error
}

package application

import "jdex/internal/domain"

// Re-export tier types for use by adapters
type Tier = domain.Tier

const (
	TierUnknown  = domain.TierUnknown
	TierArea     = domain.TierArea
	TierCategory = domain.TierCategory
	TierID       = domain.TierID
)

// Re-export domain types for use by adapters
type (
	Index        = domain.Index
	Area         = domain.Area
	Category     = domain.Category
	ID           = domain.ID
	SearchResult = domain.SearchResult
)

// ParseTier determines the tier of a bare code string
func ParseTier(code string) Tier {
	return domain.ParseTier(code)
}

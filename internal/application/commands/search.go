package commands

import (
	"context"

	"jdex/internal/domain"
	"jdex/internal/ports"
)

// SearchCommand runs a ranked text search over the index
type SearchCommand struct {
	index    *domain.Index
	resolver ports.PathResolver
	Query    string
	Level    domain.Tier
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index *domain.Index, resolver ports.PathResolver, query string, level domain.Tier) *SearchCommand {
	return &SearchCommand{
		index:    index,
		resolver: resolver,
		Query:    query,
		Level:    level,
	}
}

// Execute returns ranked entries with resolved paths and breadcrumbs
func (c *SearchCommand) Execute(ctx context.Context) ([]Entry, error) {
	browse := NewBrowseCommand(c.index, c.resolver, c.Query, c.Level)
	return browse.search(c.Query, c.Level), nil
}

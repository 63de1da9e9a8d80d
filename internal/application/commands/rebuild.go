package commands

import (
	"context"
	"fmt"

	"jdex/internal/application"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// RebuildStats summarizes a rebuild
type RebuildStats struct {
	Areas      int
	Categories int
	IDs        int
}

func (s RebuildStats) String() string {
	return fmt.Sprintf("%d areas, %d categories, %d IDs", s.Areas, s.Categories, s.IDs)
}

// RebuildCommand scans the root and replaces the persisted index wholesale
type RebuildCommand struct {
	scanner ports.Scanner
	store   ports.IndexStore
}

// NewRebuildCommand creates a new RebuildCommand
func NewRebuildCommand(scanner ports.Scanner, store ports.IndexStore) *RebuildCommand {
	return &RebuildCommand{scanner: scanner, store: store}
}

// Execute rebuilds and persists the index, returning it with counts.
// A scan that finds no areas is an error: the root is not a Johnny
// Decimal tree (or the config points somewhere wrong).
func (c *RebuildCommand) Execute(ctx context.Context) (*domain.Index, RebuildStats, error) {
	index := c.scanner.Scan()

	areas, cats, ids := index.Count()
	stats := RebuildStats{Areas: areas, Categories: cats, IDs: ids}

	if areas == 0 {
		return nil, stats, application.ErrEmptyScan
	}

	if err := c.store.Save(index); err != nil {
		return nil, stats, err
	}

	return index, stats, nil
}

package sqlite

import (
	"fmt"
	"time"

	"jdex/internal/domain"
)

// SyncFull replaces the cached nodes with a flattened copy of the index.
// Runs in a single transaction so readers never observe a half-synced cache.
func (c *Cache) SyncFull(index *domain.Index) (*domain.SyncStats, error) {
	start := time.Now()

	tx, err := c.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin sync: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM nodes"); err != nil {
		return nil, fmt.Errorf("failed to clear cache: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO nodes (code, tier, name, section, parent_code)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	nodes := index.FlattenNodes()
	for _, node := range nodes {
		section := 0
		if node.Section {
			section = 1
		}
		if _, err := stmt.Exec(node.Code, node.Tier.String(), node.Name, section, node.ParentCode); err != nil {
			return nil, fmt.Errorf("failed to insert %s: %w", node.Code, err)
		}
	}

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
	`, schemaVersion); err != nil {
		return nil, fmt.Errorf("failed to update meta: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('root_hash', ?);
	`, hashRoot(c.root)); err != nil {
		return nil, fmt.Errorf("failed to update meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sync: %w", err)
	}

	return &domain.SyncStats{
		NodesWritten: len(nodes),
		Duration:     time.Since(start),
	}, nil
}

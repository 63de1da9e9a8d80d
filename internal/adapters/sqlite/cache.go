package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"jdex/internal/config"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

const schemaVersion = "1"

// Cache is a flattened, queryable copy of the index kept in SQLite.
// Derived state only: a sync replaces it wholesale.
type Cache struct {
	root   string
	dbPath string
	db     *sql.DB
}

var _ ports.IndexCache = (*Cache)(nil)

// NewCache creates a cache for the given root, stored under the XDG
// data directory with a name derived from the root path.
func NewCache(root string) *Cache {
	root = config.ExpandHome(root)
	return &Cache{root: root, dbPath: DatabasePath(root)}
}

// NewCacheAt creates a cache with an explicit database location
func NewCacheAt(root, dbPath string) *Cache {
	return &Cache{root: config.ExpandHome(root), dbPath: dbPath}
}

// DatabasePath returns the default database location for a root
func DatabasePath(root string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "jdex", hashRoot(root)+".db")
}

// hashRoot returns a short hash of the root path for the DB file name
func hashRoot(root string) string {
	h := sha256.Sum256([]byte(root))
	return hex.EncodeToString(h[:8])
}

// Open initializes the database, creating the schema if needed
func (c *Cache) Open() error {
	if err := os.MkdirAll(filepath.Dir(c.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", c.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	c.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS nodes (
			code TEXT PRIMARY KEY,
			tier TEXT NOT NULL,
			name TEXT NOT NULL,
			section INTEGER NOT NULL DEFAULT 0,
			parent_code TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_nodes_parent ON nodes(parent_code);
		CREATE INDEX IF NOT EXISTS idx_nodes_tier ON nodes(tier);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup cache database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// NeedsFullRebuild reports whether the cache belongs to another schema
// version or another root and must be resynced before use
func (c *Cache) NeedsFullRebuild() bool {
	var version, rootHash string

	c.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	c.db.QueryRow("SELECT value FROM meta WHERE key = 'root_hash'").Scan(&rootHash)

	return version != schemaVersion || rootHash != hashRoot(c.root)
}

// GetNode retrieves a node by code, nil when absent
func (c *Cache) GetNode(code string) (*domain.IndexNode, error) {
	var node domain.IndexNode
	var tier string
	var section int

	err := c.db.QueryRow(`
		SELECT code, tier, name, section, parent_code
		FROM nodes WHERE code = ?
	`, code).Scan(&node.Code, &tier, &node.Name, &section, &node.ParentCode)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	node.Tier = tierFromName(tier)
	node.Section = section != 0
	return &node, nil
}

// CountByTier returns the number of cached nodes per tier
func (c *Cache) CountByTier() (map[domain.Tier]int, error) {
	rows, err := c.db.Query("SELECT tier, COUNT(*) FROM nodes GROUP BY tier")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Tier]int)
	for rows.Next() {
		var tier string
		var n int
		if err := rows.Scan(&tier, &n); err != nil {
			return nil, err
		}
		counts[tierFromName(tier)] = n
	}
	return counts, rows.Err()
}

func tierFromName(name string) domain.Tier {
	switch name {
	case "area":
		return domain.TierArea
	case "category":
		return domain.TierCategory
	case "id":
		return domain.TierID
	default:
		return domain.TierUnknown
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jdex/internal/adapters/sqlite"
	"jdex/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index size per tier",
	Long: `Show how many areas, categories and IDs the index holds. Reads the
SQLite cache when one exists for this root, otherwise counts the
persisted index directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if areas, categories, ids, ok := cachedCounts(); ok {
			printStats(areas, categories, ids, "cache")
			return nil
		}

		index, err := loadIndex()
		if err != nil {
			return err
		}
		areas, categories, ids := index.Count()
		printStats(areas, categories, ids, "index")
		return nil
	},
}

func cachedCounts() (areas, categories, ids int, ok bool) {
	// Opening would create an empty database; a read-only command
	// only consults a cache that already exists
	if _, err := os.Stat(sqlite.DatabasePath(rootPath)); err != nil {
		return 0, 0, 0, false
	}

	cache := sqlite.NewCache(rootPath)
	if err := cache.Open(); err != nil {
		return 0, 0, 0, false
	}
	defer cache.Close()
	if cache.NeedsFullRebuild() {
		return 0, 0, 0, false
	}
	counts, err := cache.CountByTier()
	if err != nil {
		return 0, 0, 0, false
	}
	return counts[domain.TierArea], counts[domain.TierCategory], counts[domain.TierID], true
}

func printStats(areas, categories, ids int, source string) {
	fmt.Printf("areas:      %d\n", areas)
	fmt.Printf("categories: %d\n", categories)
	fmt.Printf("ids:        %d\n", ids)
	fmt.Printf("(from %s)\n", source)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

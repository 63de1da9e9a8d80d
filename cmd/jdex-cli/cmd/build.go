package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jdex/internal/adapters/sqlite"
	"jdex/internal/application"
	"jdex/internal/application/commands"
)

var buildNoCache bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan the folder tree and rebuild the index",
	Long: `Walk the Johnny Decimal root folder, rebuild the index from what is
on disk, and persist it. The derived SQLite cache is refreshed as well
unless --no-cache is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rebuild := commands.NewRebuildCommand(scanner, store)
		index, stats, err := rebuild.Execute(ctx)
		if err != nil {
			if errors.Is(err, application.ErrEmptyScan) {
				return fmt.Errorf("no Johnny Decimal areas found under %s, index left untouched", rootPath)
			}
			return err
		}

		fmt.Printf("Indexed %s into %s\n", stats, indexPath)

		if buildNoCache {
			return nil
		}
		cache := sqlite.NewCache(rootPath)
		if err := cache.Open(); err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer cache.Close()
		syncStats, err := cache.SyncFull(index)
		if err != nil {
			return fmt.Errorf("sync cache: %w", err)
		}
		fmt.Printf("Cached %d nodes in %s\n", syncStats.NodesWritten, syncStats.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildNoCache, "no-cache", false, "skip refreshing the SQLite cache")
	rootCmd.AddCommand(buildCmd)
}

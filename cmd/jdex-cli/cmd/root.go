package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/jsonstore"
	"jdex/internal/config"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

var (
	rootPath  string
	indexPath string

	store    ports.IndexStore
	scanner  ports.Scanner
	resolver ports.PathResolver
)

var rootCmd = &cobra.Command{
	Use:   "jdex-cli",
	Short: "CLI for browsing Johnny Decimal folder trees",
	Long: `jdex-cli indexes a folder tree organized with the Johnny Decimal
system and answers questions about it.

It provides commands to rebuild the index, browse and search it,
resolve codes to folder paths, and find free ID slots.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		rootPath = config.ExpandHome(rootPath)
		indexPath = config.ExpandHome(indexPath)
		store = jsonstore.NewStore(indexPath)
		scanner = filesystem.NewScanner(rootPath)
		resolver = filesystem.NewResolver(rootPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.Root(), "path to the Johnny Decimal root folder")
	rootCmd.PersistentFlags().StringVarP(&indexPath, "index", "i", config.IndexPath(), "path to the persisted index file")
}

// loadIndex reads the persisted index, with a usable hint when it is missing
func loadIndex() (*domain.Index, error) {
	index, err := store.Load()
	if err != nil {
		if errors.Is(err, jsonstore.ErrIndexNotFound) || errors.Is(err, jsonstore.ErrIndexEmpty) {
			return nil, fmt.Errorf("no index at %s, run 'jdex-cli build' first", indexPath)
		}
		return nil, err
	}
	return index, nil
}

// parseLevel maps a --level flag value onto a tier filter
func parseLevel(level string) (domain.Tier, error) {
	switch level {
	case "":
		return domain.TierUnknown, nil
	case "area":
		return domain.TierArea, nil
	case "category":
		return domain.TierCategory, nil
	case "id":
		return domain.TierID, nil
	default:
		return domain.TierUnknown, fmt.Errorf("invalid level %q: want area, category or id", level)
	}
}

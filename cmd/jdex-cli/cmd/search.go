package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
)

var searchLevel string

var searchCmd = &cobra.Command{
	Use:   "search <words...>",
	Short: "Search folder names",
	Long: `Search the index by name. Every word must match; section dividers
are excluded. Results are ranked, exact phrase matches first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		level, err := parseLevel(searchLevel)
		if err != nil {
			return err
		}
		index, err := loadIndex()
		if err != nil {
			return err
		}

		search := commands.NewSearchCommand(index, resolver, strings.Join(args, " "), level)
		entries, err := search.Execute(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no match")
			return nil
		}
		printEntries(entries)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchLevel, "level", "l", "", "restrict to one tier: area, category or id")
	rootCmd.AddCommand(searchCmd)
}

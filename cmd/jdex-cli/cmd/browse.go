package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jdex/internal/application/commands"
)

var (
	browseLevel string
	browsePaths bool
)

var browseCmd = &cobra.Command{
	Use:   "browse [query]",
	Short: "Browse the index by code or text",
	Long: `Browse the index. With no query, lists all areas. A code prefix
drills down instead of searching:

  jdex-cli browse               all areas
  jdex-cli browse 10-19         categories in area 10-19
  jdex-cli browse 11            IDs in category 11 (also "11.")
  jdex-cli browse 11.02         that single ID
  jdex-cli browse tax invoice   text search`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		level, err := parseLevel(browseLevel)
		if err != nil {
			return err
		}
		index, err := loadIndex()
		if err != nil {
			return err
		}

		browse := commands.NewBrowseCommand(index, resolver, strings.Join(args, " "), level)
		result, err := browse.Execute(ctx)
		if err != nil {
			return err
		}

		if result.Parent != nil {
			fmt.Printf("%s\n\n", result.Parent.Name)
		}
		if len(result.Entries) == 0 {
			fmt.Println("no match")
			return nil
		}
		printEntries(result.Entries)
		return nil
	},
}

func printEntries(entries []commands.Entry) {
	for _, e := range entries {
		line := e.Name
		if e.Subtitle != "" {
			line += "  — " + e.Subtitle
		}
		if browsePaths && e.Path != "" {
			line += "  " + e.Path
		}
		fmt.Println(line)
	}
}

func init() {
	browseCmd.Flags().StringVarP(&browseLevel, "level", "l", "", "restrict to one tier: area, category or id")
	browseCmd.Flags().BoolVarP(&browsePaths, "paths", "p", false, "show resolved folder paths")
	rootCmd.AddCommand(browseCmd)
}

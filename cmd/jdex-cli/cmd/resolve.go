package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jdex/internal/application"
	"jdex/internal/domain"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <code>",
	Short: "Resolve a code to its folder path",
	Long: `Resolve an area, category or ID code to the absolute path of its
folder on disk. The path is looked up at call time, so renames since the
last build are picked up.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := args[0]
		if domain.ParseTier(code) == domain.TierUnknown {
			return fmt.Errorf("%w: %q is not an area, category or ID code", application.ErrInvalidCode, code)
		}
		index, err := loadIndex()
		if err != nil {
			return err
		}
		if index.FindByCode(code) == nil {
			return fmt.Errorf("%s is not in the index, run 'jdex-cli build' if the folder is new", code)
		}

		path, ok := resolver.Resolve(code, index)
		if !ok {
			return fmt.Errorf("no folder found for %s", code)
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

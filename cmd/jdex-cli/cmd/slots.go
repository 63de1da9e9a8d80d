package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jdex/internal/domain"
)

var slotsLimit int

var nextCmd = &cobra.Command{
	Use:   "next <category>",
	Short: "Print the next free ID in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := loadIndex()
		if err != nil {
			return err
		}
		cat := index.GetCategory(args[0])
		if cat == nil {
			return fmt.Errorf("no category %s in the index", args[0])
		}
		code, ok := cat.NextFreeID()
		if !ok {
			return fmt.Errorf("category %s is full", args[0])
		}
		fmt.Println(code)
		return nil
	},
}

var slotsCmd = &cobra.Command{
	Use:   "slots <category>",
	Short: "List free ID slots in a category",
	Long: `List free ID slots in a category: up to the limit from the unsectioned
range, plus the first free slot in each ■ section.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := loadIndex()
		if err != nil {
			return err
		}
		cat := index.GetCategory(args[0])
		if cat == nil {
			return fmt.Errorf("no category %s in the index", args[0])
		}
		slots := cat.AvailableSlots(slotsLimit)
		if len(slots) == 0 {
			fmt.Printf("category %s is full\n", args[0])
			return nil
		}
		for _, code := range slots {
			if header := cat.SectionHeaderFor(domain.IDNumber(code)); header != nil {
				fmt.Printf("%s  — %s\n", code, domain.CleanSectionName(header.Name))
			} else {
				fmt.Println(code)
			}
		}
		return nil
	},
}

func init() {
	slotsCmd.Flags().IntVarP(&slotsLimit, "limit", "n", domain.DefaultSlotLimit, "max slots from the unsectioned range")
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(slotsCmd)
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/tui"
	"jdex/internal/config"
)

func main() {
	root := config.Root()
	scanner := filesystem.NewScanner(root)
	resolver := filesystem.NewResolver(root)

	app := tui.NewApp(scanner, resolver)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

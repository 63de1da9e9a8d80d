package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("jdex Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpKey.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / ← / Esc", "Back to parent level"))
	b.WriteString(helpLine("l / → / Enter", "Open area or category"))
	b.WriteString("\n")

	b.WriteString(styles.HelpKey.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("y", "Copy folder path to clipboard"))
	b.WriteString(helpLine("r", "Rescan the folder tree"))
	b.WriteString("\n")

	b.WriteString(styles.HelpKey.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpKey.Render("Johnny Decimal Structure"))
	b.WriteString("\n")
	b.WriteString(styles.StatusText.Render("  Area     : 10-19 Life admin"))
	b.WriteString("\n")
	b.WriteString(styles.StatusText.Render("  Category : 11 Me & my stuff"))
	b.WriteString("\n")
	b.WriteString(styles.StatusText.Render("  ID       : 11.01 Inbox"))
	b.WriteString("\n")
	b.WriteString(styles.StatusText.Render("  Section  : 11.10 ■ Finance"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	width := utf8.RuneCountInString(s)
	if width >= length {
		return s
	}
	return s + strings.Repeat(" ", length-width)
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

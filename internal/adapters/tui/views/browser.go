package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/tui/styles"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Back    key.Binding
	Enter   key.Binding
	Copy    key.Binding
	Rebuild key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "left", "esc"),
		key.WithHelp("h/←", "back"),
	),
	Enter: key.NewBinding(
		key.WithKeys("l", "right", "enter"),
		key.WithHelp("l/enter", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Rebuild: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rebuild"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// row is a single selectable line in the browser
type row struct {
	code    string
	name    string
	tier    domain.Tier
	section bool
}

// BrowserModel drills down through areas, categories and IDs
type BrowserModel struct {
	scanner  ports.Scanner
	resolver ports.PathResolver

	index *domain.Index
	area  *domain.Area
	cat   *domain.Category

	rows   []row
	cursor int

	// remembered cursor positions for the levels above the current one
	areaCursor int
	catCursor  int

	width      int
	height     int
	message    string
	messageErr bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(scanner ports.Scanner, resolver ports.PathResolver) *BrowserModel {
	return &BrowserModel{
		scanner:  scanner,
		resolver: resolver,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadIndex
}

func (m *BrowserModel) loadIndex() tea.Msg {
	return indexLoadedMsg{index: m.scanner.Scan()}
}

type indexLoadedMsg struct {
	index *domain.Index
}

type errMsg struct {
	err error
}

type copiedMsg struct {
	path string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case indexLoadedMsg:
		m.index = msg.index
		// Re-resolve the drill-down position against the fresh tree
		if m.area != nil {
			m.area = m.index.GetArea(m.area.Code)
		}
		if m.area != nil && m.cat != nil {
			m.cat = m.area.GetCategory(m.cat.Code)
		} else {
			m.cat = nil
		}
		m.refreshRows()
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case copiedMsg:
		m.message = fmt.Sprintf("Copied %s", msg.path)
		m.messageErr = false
		return m, nil

	case tea.KeyMsg:
		m.message = ""

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			return m, m.descend()

		case key.Matches(msg, BrowserKeys.Back):
			m.ascend()
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			return m, m.copyPath()

		case key.Matches(msg, BrowserKeys.Rebuild):
			m.message = "Rescanning..."
			m.messageErr = false
			return m, m.loadIndex

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) descend() tea.Cmd {
	r := m.selectedRow()
	if r == nil {
		return nil
	}
	switch r.tier {
	case domain.TierArea:
		if area := m.index.GetArea(r.code); area != nil {
			m.area = area
			m.areaCursor = m.cursor
			m.cursor = 0
			m.refreshRows()
		}
	case domain.TierCategory:
		if cat := m.area.GetCategory(r.code); cat != nil {
			m.cat = cat
			m.catCursor = m.cursor
			m.cursor = 0
			m.refreshRows()
		}
	}
	// IDs and sections are leaves
	return nil
}

func (m *BrowserModel) ascend() {
	switch {
	case m.cat != nil:
		m.cat = nil
		m.cursor = m.catCursor
		m.refreshRows()
	case m.area != nil:
		m.area = nil
		m.cursor = m.areaCursor
		m.refreshRows()
	}
}

func (m *BrowserModel) copyPath() tea.Cmd {
	r := m.selectedRow()
	if r == nil || r.section {
		return nil
	}
	code := r.code
	return func() tea.Msg {
		path, ok := m.resolver.Resolve(code, m.index)
		if !ok {
			return errMsg{fmt.Errorf("no folder found for %s", code)}
		}
		if err := clipboard.WriteAll(path); err != nil {
			return errMsg{fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{path}
	}
}

func (m *BrowserModel) selectedRow() *row {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return &m.rows[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshRows() {
	m.rows = m.rows[:0]
	switch {
	case m.cat != nil:
		for _, id := range m.cat.IDs() {
			m.rows = append(m.rows, row{code: id.Code, name: id.Name, tier: domain.TierID, section: id.Section})
		}
	case m.area != nil:
		for _, cat := range m.area.Categories() {
			m.rows = append(m.rows, row{code: cat.Code, name: cat.Name, tier: domain.TierCategory})
		}
	default:
		if m.index != nil {
			for _, area := range m.index.Areas() {
				m.rows = append(m.rows, row{code: area.Code, name: area.Name, tier: domain.TierArea})
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// breadcrumb shows where the drill-down currently sits
func (m *BrowserModel) breadcrumb() string {
	parts := []string{"Index"}
	if m.area != nil {
		parts = append(parts, m.area.Name)
	}
	if m.cat != nil {
		parts = append(parts, m.cat.Name)
	}
	return strings.Join(parts, " › ")
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.index == nil {
		return "Scanning..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("jdex"))
	b.WriteString("\n")
	b.WriteString(styles.Breadcrumb.Render(m.breadcrumb()))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(styles.StatusText.Render("(empty)"))
		b.WriteString("\n")
	}

	for i, r := range m.rows {
		text := r.name
		if r.section {
			text = "── " + domain.CleanSectionName(r.name) + " ──"
		}
		if i == m.cursor {
			b.WriteString(styles.RowSelected.Render(text))
		} else {
			b.WriteString(styles.RowStyle(r.tier, r.section).Render(text))
		}
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"l/h", "open/back"},
		{"y", "copy path"},
		{"r", "rebuild"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, "  ")
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload rescans the folder tree
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadIndex
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

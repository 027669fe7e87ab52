package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"archstyles/internal/styles"
	"archstyles/pkg/selection"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

type browseKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBrowseKeys() browseKeys {
	return browseKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎", "open")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace", "left", "h"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// BrowseModel is the bubbletea model for exploring the catalog in a
// terminal. Opening a style starts with nothing selected; enter toggles the
// feature under the cursor the same way a click does on the site.
type BrowseModel struct {
	Styles []*styles.Style
	Cursor int

	// Style is the open style, nil while the style list is shown.
	Style         *styles.Style
	Panel         selection.Panel[styles.FeatureID, *styles.Feature]
	FeatureCursor int

	Width int

	keys browseKeys
	help help.Model
}

// NewBrowseModel creates a model over the catalog's styles.
func NewBrowseModel(c *styles.Catalog) BrowseModel {
	return BrowseModel{Styles: c.All(), Width: 72, keys: newBrowseKeys(), help: help.New()}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Select):
			if m.Style == nil {
				return m.open(m.Styles[m.Cursor]), nil
			}
			keys := m.Panel.Keys()
			if len(keys) > 0 {
				m.Panel = m.Panel.Toggle(keys[m.FeatureCursor])
			}
		case key.Matches(msg, m.keys.Back):
			if m.Style == nil {
				return m, tea.Quit
			}
			m.Style = nil
			m.Panel = m.Panel.Clear()
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.Width = msg.Width - 4
		if m.Width < 30 {
			m.Width = 30
		}
	}
	return m, nil
}

func (m BrowseModel) open(s *styles.Style) BrowseModel {
	panel, err := s.Panel()
	if err != nil {
		return m
	}
	m.Style = s
	m.Panel = panel
	m.FeatureCursor = 0
	return m
}

func (m *BrowseModel) move(delta int) {
	if m.Style == nil {
		m.Cursor = clamp(m.Cursor+delta, len(m.Styles))
		return
	}
	m.FeatureCursor = clamp(m.FeatureCursor+delta, m.Panel.Len())
}

func clamp(i, n int) int {
	switch {
	case n == 0 || i < 0:
		return 0
	case i >= n:
		return n - 1
	default:
		return i
	}
}

func (m BrowseModel) View() string {
	if m.Style == nil {
		return m.listView()
	}
	return m.styleView()
}

func (m BrowseModel) listView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Architectural Styles Explorer"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")

	for i, s := range m.Styles {
		line := fmt.Sprintf("%s %s  %s", s.Icon, s.Name, listDimStyle.Render(s.Era))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m BrowseModel) styleView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.Style.Title()))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(m.Style.Era))
	b.WriteString("\n")
	keys := m.keys
	keys.Select.SetHelp("⏎", "toggle")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n\n")

	for i, id := range m.Panel.Keys() {
		f, _ := m.Panel.Lookup(id)
		mark := "○"
		if m.Panel.IsSelected(id) {
			mark = "●"
		}
		line := mark + " " + f.Heading()
		if i == m.FeatureCursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if _, f, ok := m.Panel.Selected(); ok {
		b.WriteString("\n")
		body := StyleTitle.Render(f.Heading()) + "\n" + lipgloss.NewStyle().Width(m.Width).Render(f.Description)
		b.WriteString(panelStyle.Render(body))
		b.WriteString("\n")
	}
	return b.String()
}

func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Explore the styles in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(NewBrowseModel(styles.Default()),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}

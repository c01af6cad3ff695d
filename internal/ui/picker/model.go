// Package picker is the built-in fuzzy list used when fzf is not available.
package picker

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"flatpick/internal/ui/theme"
)

type rowItem struct {
	row   string
	index int
}

func (i rowItem) Title() string       { return i.row }
func (i rowItem) Description() string { return "" }
func (i rowItem) FilterValue() string { return i.row }

// Model lists display rows under the column header. Enter picks the highlighted
// row; q, esc and ctrl+c leave without a choice.
type Model struct {
	list   list.Model
	chosen int
}

func New(header string, rows []string) Model {
	items := make([]list.Item, len(rows))
	for n, row := range rows {
		items[n] = rowItem{row: row, index: n}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Lavender).BorderForeground(theme.Lavender)

	l := list.New(items, delegate, 0, 0)
	l.Title = header
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{list: l, chosen: -1}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		// enter while typing a filter only applies the filter
		if msg.Type == tea.KeyEnter && m.list.FilterState() != list.Filtering {
			if item, ok := m.list.SelectedItem().(rowItem); ok {
				m.chosen = item.index
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// Chosen returns the index of the picked row.
func (m Model) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// Run shows the picker on out, reading keys from in, until the user picks or leaves.
func Run(ctx context.Context, header string, rows []string, in io.Reader, out io.Writer) (int, bool, error) {
	program := tea.NewProgram(New(header, rows),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return -1, false, err
	}
	model, ok := final.(Model)
	if !ok {
		return -1, false, nil
	}
	idx, picked := model.Chosen()
	return idx, picked, nil
}

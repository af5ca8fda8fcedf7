package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	filterAll   = "all"
	tableHeight = 10
)

// catalogBase holds what every catalog tab shares: a table, a search input
// and the last notice.
type catalogBase struct {
	table     table.Model
	search    textinput.Model
	searching bool
	loading   bool
	loadErr   string
	notice    notice
}

func newCatalogBase(columns []table.Column, placeholder string) catalogBase {
	search := textinput.New()
	search.Placeholder = placeholder
	search.Prompt = "/ "
	search.Width = 40

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	return catalogBase{table: t, search: search, loading: true}
}

// updateSearch handles a key while the search input has focus. changed
// reports whether the query text changed.
func (c *catalogBase) updateSearch(msg tea.KeyMsg) (changed bool, cmd tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
		c.searching = false
		c.search.Blur()
		return false, nil
	}

	prev := c.search.Value()
	c.search, cmd = c.search.Update(msg)
	return c.search.Value() != prev, cmd
}

func (c *catalogBase) startSearch() {
	c.searching = true
	c.search.Focus()
}

func (c *catalogBase) updateTable(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	return cmd
}

// cursor returns the selected row index, or -1 when the table is empty.
func (c catalogBase) cursor(n int) int {
	i := c.table.Cursor()
	if n == 0 || i < 0 || i >= n {
		return -1
	}
	return i
}

func (c catalogBase) viewBody(header, filters string) string {
	out := header + "\n"
	if c.search.Placeholder != "" {
		out += c.search.View() + "   "
	}
	out += filters + "\n\n"
	switch {
	case c.loadErr != "":
		out += errorStyle.Render(c.loadErr)
	case c.loading && len(c.table.Rows()) == 0:
		out += "Loading..."
	default:
		out += c.table.View()
	}
	if v := c.notice.View(); v != "" {
		out += "\n\n" + v
	}
	return out
}

// nextFilter cycles idx through "all" (0) and the n options.
func nextFilter(idx, n int) int {
	return (idx + 1) % (n + 1)
}

// filterValue returns "all" for idx 0, else options[idx-1].
func filterValue[T ~string](options []T, idx int) T {
	if idx <= 0 || idx > len(options) {
		return T(filterAll)
	}
	return options[idx-1]
}

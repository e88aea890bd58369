package tui

import (
	"marando/pkg/filter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTable draws the view as a terminal table. Links show their URL
// since the terminal cannot follow a "lien" label.
func RenderTable(view filter.View) string {
	var rows [][]string
	for _, cells := range view.Cells() {
		row := make([]string, len(cells))
		for i, c := range cells {
			if c.IsLink() {
				row[i] = c.Href
			} else {
				row[i] = c.Text()
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(view.Columns()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Foreground(accentStyle.GetForeground())
			}
			return cellStyle
		})

	return t.String()
}

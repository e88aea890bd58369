package filter

import (
	"slices"

	"marando/pkg/hikes"
)

// View is a derived table: a subset of rows with the columns to display.
// It never shares storage with the base table.
type View struct {
	columns []string
	rows    []hikes.Hike
}

// Columns returns the header row.
func (v View) Columns() []string { return slices.Clone(v.columns) }

// Rows returns the filtered hikes.
func (v View) Rows() []hikes.Hike { return slices.Clone(v.rows) }

// Len returns the number of filtered hikes.
func (v View) Len() int { return len(v.rows) }

// Cells returns the body of the table, one slice of cells per row, in
// column order.
func (v View) Cells() [][]hikes.Cell {
	body := make([][]hikes.Cell, len(v.rows))
	for i, h := range v.rows {
		row := make([]hikes.Cell, len(v.columns))
		for j, col := range v.columns {
			row[j] = h.Cell(col)
		}
		body[i] = row
	}
	return body
}

// Strings returns the body as plain text, links rendered as their label.
func (v View) Strings() [][]string {
	cells := v.Cells()
	out := make([][]string, len(cells))
	for i, row := range cells {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = c.Text()
		}
	}
	return out
}

// HasColumn reports whether column is displayed.
func (v View) HasColumn(column string) bool {
	return slices.Contains(v.columns, column)
}

package hikes

import (
	"slices"
	"strconv"
)

// Source column names as they appear in the hikes file header.
const (
	ColumnID                = "Identifiant"
	ColumnNegativeElevation = "Dénivelé négatif"
	ColumnDistance          = "Distance"
	ColumnElevation         = "Dénivelé positif"
	ColumnDifficulty        = "Difficulté"
	ColumnLines             = "Lignes"
	ColumnDepartment        = "Département"
	ColumnLink              = "Lien"
	ColumnStation           = "Gare départ"
	ColumnTravelTime        = "Temps de trajet"
)

// LinkLabel is the text shown for every hike link.
const LinkLabel = "lien"

// droppedColumns are required in the source but never displayed.
var droppedColumns = []string{ColumnID, ColumnNegativeElevation}

// requiredColumns must all be present or the file is rejected.
var requiredColumns = []string{
	ColumnID,
	ColumnNegativeElevation,
	ColumnDistance,
	ColumnElevation,
	ColumnDifficulty,
	ColumnLines,
	ColumnDepartment,
	ColumnLink,
	ColumnStation,
}

// Hike is one cleaned row of the hikes table.
type Hike struct {
	DistanceKm        float64
	ElevationGainM    int
	Difficulty        string
	Lines             string
	Department        string
	Link              string // raw URL, rendered as a LinkLabel anchor
	DepartureStation  string
	TravelTimeMinutes int // only meaningful when the table has the travel time column

	// extra holds the untouched source columns (hike name, duration...)
	extra map[string]string
}

// Cell is a displayable value. Href is set for link cells.
type Cell struct {
	Value any
	Href  string
}

// IsLink reports whether the cell renders as a hyperlink.
func (c Cell) IsLink() bool {
	return c.Href != ""
}

// Text formats the cell value the way the results table shows it.
func (c Cell) Text() string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		// Whole distances keep one decimal ("12.0") like the source tooling did.
		if v == float64(int64(v)) {
			return strconv.FormatFloat(v, 'f', 1, 64)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Cell returns the value of the named column for this hike.
func (h Hike) Cell(column string) Cell {
	switch column {
	case ColumnDistance:
		return Cell{Value: h.DistanceKm}
	case ColumnElevation:
		return Cell{Value: h.ElevationGainM}
	case ColumnDifficulty:
		return Cell{Value: h.Difficulty}
	case ColumnLines:
		return Cell{Value: h.Lines}
	case ColumnDepartment:
		return Cell{Value: h.Department}
	case ColumnLink:
		return Cell{Value: LinkLabel, Href: h.Link}
	case ColumnStation:
		return Cell{Value: h.DepartureStation}
	case ColumnTravelTime:
		return Cell{Value: h.TravelTimeMinutes}
	}
	return Cell{Value: h.extra[column]}
}

// Extra returns a source column the loader does not interpret.
func (h Hike) Extra(column string) string {
	return h.extra[column]
}

// Table is the immutable hikes dataset. It is built once by the loader and
// only exposes read accessors; every accessor returns a copy.
type Table struct {
	columns       []string
	hikes         []Hike
	hasTravelTime bool

	departments  []string
	stations     []string
	difficulties []string
}

// NewTable builds a table from already cleaned hikes. columns is the display
// order. The distinct value lists are derived here and never change.
func NewTable(columns []string, rows []Hike, hasTravelTime bool) *Table {
	t := &Table{
		columns:       slices.Clone(columns),
		hikes:         make([]Hike, len(rows)),
		hasTravelTime: hasTravelTime,
	}
	for i, h := range rows {
		h.extra = cloneExtra(h.extra)
		t.hikes[i] = h
	}

	t.departments = distinct(t.hikes, func(h Hike) string { return h.Department })
	t.stations = distinct(t.hikes, func(h Hike) string { return h.DepartureStation })
	t.difficulties = distinct(t.hikes, func(h Hike) string { return h.Difficulty })
	return t
}

// Columns returns the displayed columns in source order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// Len returns the number of hikes.
func (t *Table) Len() int { return len(t.hikes) }

// Hikes returns a copy of every row.
func (t *Table) Hikes() []Hike { return slices.Clone(t.hikes) }

// HasTravelTime reports whether the source had the travel time column.
func (t *Table) HasTravelTime() bool { return t.hasTravelTime }

// Departments returns the distinct departments in first-seen order.
func (t *Table) Departments() []string { return slices.Clone(t.departments) }

// Stations returns the distinct departure stations in first-seen order.
func (t *Table) Stations() []string { return slices.Clone(t.stations) }

// Difficulties returns the distinct difficulty labels in first-seen order.
func (t *Table) Difficulties() []string { return slices.Clone(t.difficulties) }

func distinct(rows []Hike, key func(Hike) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, h := range rows {
		k := key(h)
		if !seen[k] {
			seen[k] = true
			values = append(values, k)
		}
	}
	return values
}

func cloneExtra(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

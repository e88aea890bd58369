package filter

import (
	"reflect"
	"testing"

	"marando/pkg/hikes"
)

var baseColumns = []string{
	hikes.ColumnDistance,
	hikes.ColumnElevation,
	hikes.ColumnDifficulty,
	hikes.ColumnLines,
	hikes.ColumnDepartment,
	hikes.ColumnLink,
	hikes.ColumnStation,
}

func scenarioTable(withTravelTime bool) *hikes.Table {
	rows := []hikes.Hike{
		{DistanceKm: 12.0, ElevationGainM: 350, Difficulty: "Facile", Department: "75", DepartureStation: "Gare1", Link: "https://example.org/a", TravelTimeMinutes: 45},
		{DistanceKm: 42.0, ElevationGainM: 900, Difficulty: "Difficile", Department: "92", DepartureStation: "Gare2", Link: "https://example.org/b", TravelTimeMinutes: 95},
	}
	cols := append([]string(nil), baseColumns...)
	if withTravelTime {
		cols = append(cols, hikes.ColumnTravelTime)
	}
	return hikes.NewTable(cols, rows, withTravelTime)
}

func stations(v View) []string {
	var out []string
	for _, h := range v.Rows() {
		out = append(out, h.DepartureStation)
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestApply_DistanceElevationDifficulty(t *testing.T) {
	engine := NewEngine(scenarioTable(false))

	view := engine.Apply(Criteria{
		Distance:     &Range[float64]{Min: 0, Max: 20},
		Elevation:    &Range[int]{Min: 0, Max: 500},
		Difficulties: []string{"Facile"},
	})

	if !reflect.DeepEqual(stations(view), []string{"Gare1"}) {
		t.Errorf("expected only hike A, got %v", stations(view))
	}
}

func TestApply_DepartmentsWithEmptyStation(t *testing.T) {
	engine := NewEngine(scenarioTable(false))

	view := engine.Apply(Criteria{
		Departments: []string{"75", "92"},
		Station:     "",
	})

	if !reflect.DeepEqual(stations(view), []string{"Gare1", "Gare2"}) {
		t.Errorf("expected hikes A and B, got %v", stations(view))
	}
}

func TestApply_EmptyControlsAreNoConstraint(t *testing.T) {
	engine := NewEngine(scenarioTable(true))

	view := engine.Apply(Criteria{
		Difficulties:  []string{},
		Departments:   nil,
		MaxTravelTime: intPtr(0),
	})

	if view.Len() != 2 {
		t.Errorf("expected empty controls to keep every hike, got %d", view.Len())
	}
}

func TestApply_RangesAreInclusive(t *testing.T) {
	engine := NewEngine(scenarioTable(false))

	view := engine.Apply(Criteria{
		Distance:  &Range[float64]{Min: 12, Max: 42},
		Elevation: &Range[int]{Min: 350, Max: 900},
	})

	if view.Len() != 2 {
		t.Errorf("expected bounds to be inclusive, got %d rows", view.Len())
	}
}

func TestApply_TravelTime(t *testing.T) {
	engine := NewEngine(scenarioTable(true))

	view := engine.Apply(Criteria{MaxTravelTime: intPtr(60)})
	if !reflect.DeepEqual(stations(view), []string{"Gare1"}) {
		t.Errorf("expected only the 45 minute hike, got %v", stations(view))
	}
	for _, h := range view.Rows() {
		if h.TravelTimeMinutes < TravelTimeFloor || h.TravelTimeMinutes > 60 {
			t.Errorf("travel time %d outside [%d, 60]", h.TravelTimeMinutes, TravelTimeFloor)
		}
	}

	cols := view.Columns()
	if cols[len(cols)-1] != hikes.ColumnTravelTime {
		t.Errorf("expected travel time column to be shown, got %v", cols)
	}
}

func TestApply_TravelTimeFloor(t *testing.T) {
	rows := []hikes.Hike{
		{Difficulty: "Facile", Department: "75", DepartureStation: "Tout près", TravelTimeMinutes: 20},
		{Difficulty: "Facile", Department: "75", DepartureStation: "Limite", TravelTimeMinutes: 30},
	}
	cols := append(append([]string(nil), baseColumns...), hikes.ColumnTravelTime)
	engine := NewEngine(hikes.NewTable(cols, rows, true))

	view := engine.Apply(Criteria{MaxTravelTime: intPtr(120)})
	if !reflect.DeepEqual(stations(view), []string{"Limite"}) {
		t.Errorf("expected hikes under the 30 minute floor to be excluded, got %v", stations(view))
	}
}

func TestApply_NoTravelTimeColumn(t *testing.T) {
	engine := NewEngine(scenarioTable(false))

	for _, c := range []Criteria{
		{},
		{MaxTravelTime: intPtr(31)},
		engine.Defaults(),
	} {
		view := engine.Apply(c)
		for _, col := range view.Columns() {
			if col == hikes.ColumnTravelTime {
				t.Fatalf("travel time column must not be shown, got %v", view.Columns())
			}
		}
		if view.Len() != 2 {
			t.Errorf("travel time must be ignored without the column, got %d rows", view.Len())
		}
	}
}

func TestApply_StrayTravelTimeColumnIsHidden(t *testing.T) {
	cols := append(append([]string(nil), baseColumns...), hikes.ColumnTravelTime)
	view := Apply(hikes.NewTable(cols, nil, true), false, Criteria{})

	for _, col := range view.Columns() {
		if col == hikes.ColumnTravelTime {
			t.Fatalf("travel time column must be dropped when the flag is off")
		}
	}
}

func TestApply_Station(t *testing.T) {
	engine := NewEngine(scenarioTable(false))

	view := engine.Apply(Criteria{Station: "Gare2"})
	if !reflect.DeepEqual(stations(view), []string{"Gare2"}) {
		t.Errorf("expected exact station match, got %v", stations(view))
	}

	view = engine.Apply(Criteria{Station: "gare2"})
	if view.Len() != 0 {
		t.Errorf("station matching must be exact, got %v", stations(view))
	}
}

func TestApply_EmptyResultKeepsHeader(t *testing.T) {
	engine := NewEngine(scenarioTable(false))

	view := engine.Apply(Criteria{Station: "Nowhere"})
	if view.Len() != 0 {
		t.Fatalf("expected no rows, got %d", view.Len())
	}
	if len(view.Columns()) != len(baseColumns) {
		t.Errorf("expected header to be kept, got %v", view.Columns())
	}
	if len(view.Cells()) != 0 {
		t.Errorf("expected empty body")
	}
}

func TestApply_Idempotent(t *testing.T) {
	engine := NewEngine(scenarioTable(true))
	c := engine.Defaults()

	first := engine.Apply(c)
	second := engine.Apply(c)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("applying the same criteria twice produced different views")
	}
	if engine.Table().Len() != 2 {
		t.Errorf("base table was modified")
	}
}

func TestApply_DoesNotAliasBase(t *testing.T) {
	engine := NewEngine(scenarioTable(false))

	rows := engine.Apply(Criteria{}).Rows()
	rows[0].DistanceKm = 1000

	if engine.Table().Hikes()[0].DistanceKm != 12.0 {
		t.Errorf("view rows alias the base table")
	}
}

func TestDefaults(t *testing.T) {
	table := scenarioTable(true)
	c := Defaults(table)

	if *c.Distance != (Range[float64]{Min: 0, Max: 50}) {
		t.Errorf("unexpected default distance: %+v", *c.Distance)
	}
	if *c.Elevation != (Range[int]{Min: 0, Max: 1000}) {
		t.Errorf("unexpected default elevation: %+v", *c.Elevation)
	}
	if !reflect.DeepEqual(c.Difficulties, DefaultDifficulties) {
		t.Errorf("unexpected default difficulties: %v", c.Difficulties)
	}
	if *c.MaxTravelTime != ControlTravelTimeDefault {
		t.Errorf("unexpected default travel time: %d", *c.MaxTravelTime)
	}
	if !reflect.DeepEqual(c.Departments, table.Departments()) {
		t.Errorf("expected every department to be selected, got %v", c.Departments)
	}
	if c.Station != "" {
		t.Errorf("expected no station by default")
	}
}

func TestViewCells(t *testing.T) {
	engine := NewEngine(scenarioTable(false))
	view := engine.Apply(Criteria{Station: "Gare1"})

	cells := view.Cells()
	if len(cells) != 1 || len(cells[0]) != len(baseColumns) {
		t.Fatalf("unexpected cell grid: %v", cells)
	}

	link := cells[0][5]
	if !link.IsLink() || link.Href != "https://example.org/a" {
		t.Errorf("expected link cell, got %+v", link)
	}

	text := view.Strings()
	if text[0][0] != "12.0" || text[0][1] != "350" || text[0][5] != hikes.LinkLabel {
		t.Errorf("unexpected text row: %v", text[0])
	}
}

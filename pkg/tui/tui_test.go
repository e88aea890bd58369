package tui

import (
	"strings"
	"testing"

	"marando/pkg/filter"
	"marando/pkg/hikes"
)

func testEngine(withTravelTime bool) *filter.Engine {
	cols := []string{
		hikes.ColumnDistance,
		hikes.ColumnElevation,
		hikes.ColumnDifficulty,
		hikes.ColumnLines,
		hikes.ColumnDepartment,
		hikes.ColumnLink,
		hikes.ColumnStation,
	}
	if withTravelTime {
		cols = append(cols, hikes.ColumnTravelTime)
	}
	rows := []hikes.Hike{
		{DistanceKm: 12.0, ElevationGainM: 350, Difficulty: "Facile", Department: "75", Link: "https://example.org/a", DepartureStation: "Gare1", TravelTimeMinutes: 45},
		{DistanceKm: 42.0, ElevationGainM: 900, Difficulty: "Difficile", Department: "92", Link: "https://example.org/b", DepartureStation: "Gare2", TravelTimeMinutes: 95},
	}
	return filter.NewEngine(hikes.NewTable(cols, rows, withTravelTime))
}

func TestFormStateDefaults(t *testing.T) {
	state := newFormState(testEngine(true))

	if state.DistanceMin != 0 || state.DistanceMax != 50 {
		t.Errorf("unexpected default distance %v-%v", state.DistanceMin, state.DistanceMax)
	}
	if state.ElevationMin != 0 || state.ElevationMax != 1000 {
		t.Errorf("unexpected default elevation %d-%d", state.ElevationMin, state.ElevationMax)
	}
	if state.TravelTime != "60" {
		t.Errorf("expected default travel time 60, got %q", state.TravelTime)
	}
	if len(state.Departments) != 2 || state.Station != "" {
		t.Errorf("unexpected defaults: %+v", state)
	}
}

func TestFormStateCriteria(t *testing.T) {
	engine := testEngine(true)
	state := newFormState(engine)
	state.DistanceMax = 20
	state.ElevationMax = 500
	state.Difficulties = []string{"Facile"}

	c, err := state.criteria(true)
	if err != nil {
		t.Fatalf("criteria failed: %v", err)
	}
	view := engine.Apply(c)
	if view.Len() != 1 || view.Rows()[0].DepartureStation != "Gare1" {
		t.Errorf("expected only Gare1, got %d rows", view.Len())
	}

	state.TravelTime = "vite"
	if _, err := state.criteria(true); err == nil {
		t.Errorf("expected error for non numeric travel time")
	}
	if c, err := state.criteria(false); err != nil || c.MaxTravelTime != nil {
		t.Errorf("travel time must be ignored without the column, got %v %v", c.MaxTravelTime, err)
	}
}

func TestValidateTravelTime(t *testing.T) {
	for _, ok := range []string{"", "30", " 90 "} {
		if err := validateTravelTime(ok); err != nil {
			t.Errorf("expected %q to be accepted, got %v", ok, err)
		}
	}
	for _, bad := range []string{"29", "abc", "-5"} {
		if err := validateTravelTime(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestValidateHexColor(t *testing.T) {
	if err := validateHexColor("#FF00FF"); err != nil {
		t.Errorf("expected valid hex, got %v", err)
	}
	if err := validateHexColor("FF00FF"); err == nil {
		t.Errorf("expected missing # to be rejected")
	}
}

func TestRenderTable(t *testing.T) {
	engine := testEngine(false)

	out := RenderTable(engine.Apply(filter.Criteria{Station: "Gare1"}))
	for _, want := range []string{hikes.ColumnDistance, hikes.ColumnStation, "12.0", "https://example.org/a"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Gare2") {
		t.Errorf("filtered hike should not be rendered")
	}
	if strings.Contains(out, hikes.ColumnTravelTime) {
		t.Errorf("travel time column must not be rendered")
	}
}

func TestRenderTable_Empty(t *testing.T) {
	out := RenderTable(testEngine(true).Apply(filter.Criteria{Station: "Nowhere"}))

	if !strings.Contains(out, hikes.ColumnTravelTime) {
		t.Errorf("expected header row for an empty result, got:\n%s", out)
	}
	if strings.Contains(out, "Gare1") {
		t.Errorf("expected no body rows, got:\n%s", out)
	}
}

func TestStepOptions(t *testing.T) {
	opts := stepOptions(filter.ElevationMin, filter.ElevationMax, filter.ElevationStep, func(v int) string { return "" })
	if len(opts) != 11 {
		t.Errorf("expected 11 elevation steps, got %d", len(opts))
	}
	if opts[10].Value != 1000 {
		t.Errorf("expected last step 1000, got %d", opts[10].Value)
	}
}

// Package filter computes the displayed hikes for a set of control values.
package filter

import (
	"marando/pkg/hikes"
)

// TravelTimeFloor is the fixed lower bound of the travel time filter.
// It does not follow the control minimum (see ControlTravelTimeMin).
const TravelTimeFloor = 30

// Control bounds and defaults shown by every front end.
const (
	DistanceMin  = 0.0
	DistanceMax  = 50.0
	DistanceStep = 5.0

	ElevationMin  = 0
	ElevationMax  = 1000
	ElevationStep = 100

	ControlTravelTimeMin     = 30
	ControlTravelTimeDefault = 60
)

// DefaultDifficulties are preselected in the difficulty control.
var DefaultDifficulties = []string{"Facile", "Moyenne", "Difficile"}

// Range is an inclusive interval.
type Range[T int | float64] struct {
	Min T
	Max T
}

// Contains reports whether Min <= v <= Max.
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

// Criteria holds the current control values. Nil, zero and empty values mean
// the control imposes no constraint.
type Criteria struct {
	Distance      *Range[float64]
	Elevation     *Range[int]
	Difficulties  []string
	MaxTravelTime *int
	Departments   []string
	Station       string
}

// Defaults returns the control values shown on first load.
func Defaults(base *hikes.Table) Criteria {
	maxTime := ControlTravelTimeDefault
	return Criteria{
		Distance:      &Range[float64]{Min: DistanceMin, Max: DistanceMax},
		Elevation:     &Range[int]{Min: ElevationMin, Max: ElevationMax},
		Difficulties:  append([]string(nil), DefaultDifficulties...),
		MaxTravelTime: &maxTime,
		Departments:   base.Departments(),
	}
}

type predicate func(hikes.Hike) bool

// predicates returns one row-local test per active control. The tests are
// independent, so their order has no effect on the result.
func (c Criteria) predicates(hasTravelTime bool) []predicate {
	var preds []predicate

	if c.Distance != nil {
		r := *c.Distance
		preds = append(preds, func(h hikes.Hike) bool { return r.Contains(h.DistanceKm) })
	}

	if c.Elevation != nil {
		r := *c.Elevation
		preds = append(preds, func(h hikes.Hike) bool { return r.Contains(h.ElevationGainM) })
	}

	if len(c.Difficulties) > 0 {
		set := toSet(c.Difficulties)
		preds = append(preds, func(h hikes.Hike) bool { return set[h.Difficulty] })
	}

	if hasTravelTime && c.MaxTravelTime != nil && *c.MaxTravelTime != 0 {
		r := Range[int]{Min: TravelTimeFloor, Max: *c.MaxTravelTime}
		preds = append(preds, func(h hikes.Hike) bool { return r.Contains(h.TravelTimeMinutes) })
	}

	if len(c.Departments) > 0 {
		set := toSet(c.Departments)
		preds = append(preds, func(h hikes.Hike) bool { return set[h.Department] })
	}

	if c.Station != "" {
		station := c.Station
		preds = append(preds, func(h hikes.Hike) bool { return h.DepartureStation == station })
	}

	return preds
}

// Apply returns the hikes of base that pass every active control. The
// travel time flag is the one captured when base was loaded.
func Apply(base *hikes.Table, hasTravelTime bool, c Criteria) View {
	preds := c.predicates(hasTravelTime)

	rows := []hikes.Hike{}
	for _, h := range base.Hikes() {
		if matchesAll(h, preds) {
			rows = append(rows, h)
		}
	}

	return View{
		columns: visibleColumns(base.Columns(), hasTravelTime),
		rows:    rows,
	}
}

func matchesAll(h hikes.Hike, preds []predicate) bool {
	for _, p := range preds {
		if !p(h) {
			return false
		}
	}
	return true
}

// visibleColumns hides the travel time column when the source did not have it.
func visibleColumns(columns []string, hasTravelTime bool) []string {
	if hasTravelTime {
		return columns
	}
	visible := make([]string, 0, len(columns))
	for _, col := range columns {
		if col != hikes.ColumnTravelTime {
			visible = append(visible, col)
		}
	}
	return visible
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"marando/pkg/filter"

	"github.com/charmbracelet/huh"
)

// formState holds the values bound to the filter form fields.
type formState struct {
	DistanceMin  float64
	DistanceMax  float64
	ElevationMin int
	ElevationMax int
	Difficulties []string
	TravelTime   string
	Departments  []string
	Station      string
}

func newFormState(engine *filter.Engine) formState {
	d := engine.Defaults()
	return formState{
		DistanceMin:  d.Distance.Min,
		DistanceMax:  d.Distance.Max,
		ElevationMin: d.Elevation.Min,
		ElevationMax: d.Elevation.Max,
		Difficulties: d.Difficulties,
		TravelTime:   strconv.Itoa(*d.MaxTravelTime),
		Departments:  d.Departments,
	}
}

// criteria converts the form values. The travel time is only read when the
// table has the column, mirroring the disabled control on the web page.
func (s formState) criteria(hasTravelTime bool) (filter.Criteria, error) {
	c := filter.Criteria{
		Distance:     &filter.Range[float64]{Min: s.DistanceMin, Max: s.DistanceMax},
		Elevation:    &filter.Range[int]{Min: s.ElevationMin, Max: s.ElevationMax},
		Difficulties: append([]string(nil), s.Difficulties...),
		Departments:  append([]string(nil), s.Departments...),
		Station:      s.Station,
	}

	if hasTravelTime {
		if raw := strings.TrimSpace(s.TravelTime); raw != "" {
			minutes, err := strconv.Atoi(raw)
			if err != nil {
				return c, fmt.Errorf("invalid travel time %q: %w", raw, err)
			}
			c.MaxTravelTime = &minutes
		}
	}

	return c, nil
}

func validateTravelTime(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < filter.ControlTravelTimeMin {
		return fmt.Errorf("entrez un nombre de minutes supérieur ou égal à %d", filter.ControlTravelTimeMin)
	}
	return nil
}

func stepOptions[T int | float64](lo, hi, step T, format func(T) string) []huh.Option[T] {
	var opts []huh.Option[T]
	for v := lo; v <= hi; v += step {
		opts = append(opts, huh.NewOption(format(v), v))
	}
	return opts
}

func selectedOptions(values, selected []string) []huh.Option[string] {
	chosen := make(map[string]bool, len(selected))
	for _, v := range selected {
		chosen[v] = true
	}
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v).Selected(chosen[v]))
	}
	return opts
}

func buildFilterForm(engine *filter.Engine, state *formState) *huh.Form {
	table := engine.Table()
	km := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) + " km" }
	meters := func(v int) string { return strconv.Itoa(v) + " m" }

	distanceOpts := stepOptions(filter.DistanceMin, filter.DistanceMax, filter.DistanceStep, km)
	elevationOpts := stepOptions(filter.ElevationMin, filter.ElevationMax, filter.ElevationStep, meters)

	var travelField huh.Field
	if engine.HasTravelTime() {
		travelField = huh.NewInput().
			Title("Temps de voyage (minutes) :").
			Placeholder(strconv.Itoa(filter.ControlTravelTimeDefault)).
			Value(&state.TravelTime).
			Validate(validateTravelTime)
	} else {
		travelField = huh.NewNote().
			Title("Temps de voyage (minutes) :").
			Description("Non disponible pour ce fichier.")
	}

	stationOpts := []huh.Option[string]{huh.NewOption("Toutes les gares", "")}
	for _, st := range table.Stations() {
		stationOpts = append(stationOpts, huh.NewOption(st, st))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[float64]().Title("Distance minimale :").Options(distanceOpts...).Value(&state.DistanceMin),
			huh.NewSelect[float64]().Title("Distance maximale :").Options(distanceOpts...).Value(&state.DistanceMax),
			huh.NewSelect[int]().Title("Dénivelé minimal :").Options(elevationOpts...).Value(&state.ElevationMin),
			huh.NewSelect[int]().Title("Dénivelé maximal :").Options(elevationOpts...).Value(&state.ElevationMax),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Difficulté :").
				Description("Espace = cocher, Entrée = valider.").
				Options(selectedOptions(table.Difficulties(), state.Difficulties)...).
				Value(&state.Difficulties),
			travelField,
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Département :").
				Description("Espace = cocher, Entrée = valider. Tapez pour filtrer.").
				Options(selectedOptions(table.Departments(), state.Departments)...).
				Value(&state.Departments).
				Filterable(true).
				Height(10),
			huh.NewSelect[string]().
				Title("Rechercher une gare :").
				Options(stationOpts...).
				Value(&state.Station).
				Filtering(true).
				Height(10),
		),
	)
}

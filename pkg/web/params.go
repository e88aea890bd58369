package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"marando/pkg/filter"
)

// Query parameter names sent by the dashboard controls.
const (
	paramDistanceMin  = "distance_min"
	paramDistanceMax  = "distance_max"
	paramElevationMin = "elevation_min"
	paramElevationMax = "elevation_max"
	paramDifficulty   = "difficulty"
	paramTime         = "time"
	paramDepartment   = "department"
	paramStation      = "station"

	// paramStationSearch narrows the station list; it never filters hikes.
	paramStationSearch = "station_search"
)

// parseCriteria maps the submitted control values to filter criteria. A
// missing control stays unset so the engine skips it; a range with only one
// bound submitted falls back to the slider limit for the other one.
func parseCriteria(q url.Values) (filter.Criteria, error) {
	var c filter.Criteria

	if q.Has(paramDistanceMin) || q.Has(paramDistanceMax) {
		r := filter.Range[float64]{Min: filter.DistanceMin, Max: filter.DistanceMax}
		if err := parseBound(q, paramDistanceMin, &r.Min, parseFloat); err != nil {
			return c, err
		}
		if err := parseBound(q, paramDistanceMax, &r.Max, parseFloat); err != nil {
			return c, err
		}
		c.Distance = &r
	}

	if q.Has(paramElevationMin) || q.Has(paramElevationMax) {
		r := filter.Range[int]{Min: filter.ElevationMin, Max: filter.ElevationMax}
		if err := parseBound(q, paramElevationMin, &r.Min, strconv.Atoi); err != nil {
			return c, err
		}
		if err := parseBound(q, paramElevationMax, &r.Max, strconv.Atoi); err != nil {
			return c, err
		}
		c.Elevation = &r
	}

	c.Difficulties = nonEmpty(q[paramDifficulty])
	c.Departments = nonEmpty(q[paramDepartment])
	c.Station = q.Get(paramStation)

	if raw := strings.TrimSpace(q.Get(paramTime)); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return c, fmt.Errorf("invalid %s %q: %w", paramTime, raw, err)
		}
		c.MaxTravelTime = &minutes
	}

	return c, nil
}

func parseBound[T int | float64](q url.Values, name string, dst *T, parse func(string) (T, error)) error {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	*dst = v
	return nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

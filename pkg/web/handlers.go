package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"marando/pkg/exporter"
	"marando/pkg/filter"
	"marando/pkg/hikes"
	"marando/pkg/search"
)

type option struct {
	Value    string
	Selected bool
}

type rangeControl struct {
	Min, Max, Step, Low, High string
}

type travelTimeControl struct {
	Min      int
	Value    int
	Disabled bool
}

// stationOptions feeds the station select. Selected is always one of the
// listed stations or empty.
type stationOptions struct {
	Matches  []string
	Selected string
}

type tableData struct {
	Columns   []string
	Rows      [][]hikes.Cell
	Count     int
	ChartHref template.URL
	XLSXHref  template.URL
	ICSHref   template.URL
}

type pageData struct {
	Distance     rangeControl
	Elevation    rangeControl
	Difficulties []option
	TravelTime   travelTimeControl
	Departments  []option
	Stations     stationOptions
	Table        tableData
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	table := s.engine.Table()
	defaults := s.engine.Defaults()

	data := pageData{
		Distance: rangeControl{
			Min:  formatFloat(filter.DistanceMin),
			Max:  formatFloat(filter.DistanceMax),
			Step: formatFloat(filter.DistanceStep),
			Low:  formatFloat(defaults.Distance.Min),
			High: formatFloat(defaults.Distance.Max),
		},
		Elevation: rangeControl{
			Min:  fmt.Sprint(filter.ElevationMin),
			Max:  fmt.Sprint(filter.ElevationMax),
			Step: fmt.Sprint(filter.ElevationStep),
			Low:  fmt.Sprint(defaults.Elevation.Min),
			High: fmt.Sprint(defaults.Elevation.Max),
		},
		Difficulties: options(table.Difficulties(), defaults.Difficulties),
		TravelTime: travelTimeControl{
			Min:      filter.ControlTravelTimeMin,
			Value:    filter.ControlTravelTimeDefault,
			Disabled: !s.engine.HasTravelTime(),
		},
		Departments: options(table.Departments(), defaults.Departments),
		Stations:    stationOptions{Matches: table.Stations()},
		Table:       newTableData(s.engine.Apply(defaults), defaultsQuery(defaults, s.engine.HasTravelTime())),
	}

	s.render(w, "index", data)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.render(w, "table", newTableData(s.engine.Apply(c), r.URL.Query()))
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	all := s.engine.Table().Stations()
	q := r.URL.Query()

	opts := stationOptions{Matches: search.Stations(all, q.Get(paramStationSearch))}

	// Keep the current choice listed so narrowing the list never changes
	// the submitted filter behind the user's back.
	if selected := q.Get(paramStation); slices.Contains(all, selected) {
		opts.Selected = selected
		if !slices.Contains(opts.Matches, selected) {
			opts.Matches = append([]string{selected}, opts.Matches...)
		}
	}

	s.render(w, "station-options", opts)
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := exporter.GenerateXLSX(s.engine.Apply(c), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="randos.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleExportICS(w http.ResponseWriter, r *http.Request) {
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start, err := exporter.ParseOuting(r.URL.Query().Get("date"), r.URL.Query().Get("start"), time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := exporter.GenerateICS(s.engine.Apply(c), start, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="randos.ics"`)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func newTableData(view filter.View, query url.Values) tableData {
	encoded := query.Encode()
	return tableData{
		Columns:   view.Columns(),
		Rows:      view.Cells(),
		Count:     view.Len(),
		ChartHref: template.URL("/chart/distance.png?" + encoded),
		XLSXHref:  template.URL("/export.xlsx?" + encoded),
		ICSHref:   template.URL("/export.ics?" + encoded),
	}
}

// defaultsQuery encodes the initial control values so the export links of
// the first page match what the controls show.
func defaultsQuery(c filter.Criteria, hasTravelTime bool) url.Values {
	q := url.Values{}
	q.Set(paramDistanceMin, formatFloat(c.Distance.Min))
	q.Set(paramDistanceMax, formatFloat(c.Distance.Max))
	q.Set(paramElevationMin, fmt.Sprint(c.Elevation.Min))
	q.Set(paramElevationMax, fmt.Sprint(c.Elevation.Max))
	for _, d := range c.Difficulties {
		q.Add(paramDifficulty, d)
	}
	if hasTravelTime && c.MaxTravelTime != nil {
		q.Set(paramTime, fmt.Sprint(*c.MaxTravelTime))
	}
	for _, d := range c.Departments {
		q.Add(paramDepartment, d)
	}
	return q
}

func options(values, selected []string) []option {
	chosen := make(map[string]bool, len(selected))
	for _, v := range selected {
		chosen[v] = true
	}
	opts := make([]option, len(values))
	for i, v := range values {
		opts[i] = option{Value: v, Selected: chosen[v]}
	}
	return opts
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

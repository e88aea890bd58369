package web

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"

	"marando/pkg/filter"

	"github.com/wcharczuk/go-chart/v2"
)

// overflowBucket collects every hike at or beyond the slider maximum.
var overflowBucket = int(filter.DistanceMax / filter.DistanceStep)

// distanceBuckets counts hikes per slider step: [0,5), [5,10), ... Hikes of
// filter.DistanceMax km or more share a single "50+" bucket.
func distanceBuckets(view filter.View) []chart.Value {
	rows := view.Rows()
	if len(rows) == 0 {
		return nil
	}

	last := 0
	for _, h := range rows {
		last = max(last, bucketIndex(h.DistanceKm))
	}

	counts := make([]int, last+1)
	for _, h := range rows {
		counts[bucketIndex(h.DistanceKm)]++
	}

	bars := make([]chart.Value, len(counts))
	for i, count := range counts {
		low := float64(i) * filter.DistanceStep
		label := fmt.Sprintf("%g-%g", low, low+filter.DistanceStep)
		if i == overflowBucket {
			label = fmt.Sprintf("%g+", low)
		}
		bars[i] = chart.Value{Label: label, Value: float64(count)}
	}
	return bars
}

func bucketIndex(km float64) int {
	switch {
	case math.IsNaN(km) || km < 0:
		return 0
	case km >= filter.DistanceMax:
		return overflowBucket
	}
	return min(int(km/filter.DistanceStep), overflowBucket)
}

func renderDistanceChart(view filter.View, w io.Writer) error {
	bars := distanceBuckets(view)

	highest := 0.0
	for _, b := range bars {
		highest = math.Max(highest, b.Value)
	}

	graph := chart.BarChart{
		Title:      "Distance (km)",
		Width:      800,
		Height:     320,
		BarWidth:   40,
		BarSpacing: 10,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: highest + 1},
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, w)
}

func (s *Server) handleDistanceChart(w http.ResponseWriter, r *http.Request) {
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := s.engine.Apply(c)
	if view.Len() == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := renderDistanceChart(view, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

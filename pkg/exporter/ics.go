package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"marando/pkg/filter"
	"marando/pkg/hikes"

	ics "github.com/arran4/golang-ical"
)

// defaultTripDuration is used when the table has no travel time.
const defaultTripDuration = time.Hour

// GenerateICS writes one calendar event per hike of the view: the trip to the
// departure station, leaving at start. The event lasts the travel time when
// the table has it.
func GenerateICS(view filter.View, start time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//marando//Ma rando//FR")

	withTravelTime := view.HasColumn(hikes.ColumnTravelTime)
	now := time.Now()

	for i, h := range view.Rows() {
		duration := defaultTripDuration
		if withTravelTime && h.TravelTimeMinutes > 0 {
			duration = time.Duration(h.TravelTimeMinutes) * time.Minute
		}

		event := cal.AddEvent(fmt.Sprintf("%s-rando-%d", start.UTC().Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(duration))
		event.SetSummary(fmt.Sprintf("Rando au départ de %s", h.DepartureStation))
		event.SetLocation(h.DepartureStation)
		event.SetDescription(describeHike(h))
	}

	return cal.SerializeTo(w)
}

func describeHike(h hikes.Hike) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : %s km\n", hikes.ColumnDistance, h.Cell(hikes.ColumnDistance).Text())
	fmt.Fprintf(&b, "%s : %d m\n", hikes.ColumnElevation, h.ElevationGainM)
	fmt.Fprintf(&b, "%s : %s\n", hikes.ColumnDifficulty, h.Difficulty)
	if h.Lines != "" {
		fmt.Fprintf(&b, "%s : %s\n", hikes.ColumnLines, h.Lines)
	}
	fmt.Fprintf(&b, "%s : %s", hikes.ColumnLink, h.Link)
	return b.String()
}

// ParseOuting resolves the departure time of an outing. An empty date means
// the day after now, an empty start means 08:00. Times are read in the
// Europe/Paris zone when it is available.
func ParseOuting(date, start string, now time.Time) (time.Time, error) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		loc = time.Local
	}

	if date == "" {
		date = now.In(loc).AddDate(0, 0, 1).Format("2006-01-02")
	}
	if start == "" {
		start = "08:00"
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+start, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid outing date or start time: %w", err)
	}
	return t, nil
}

package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"marando/pkg/filter"
	"marando/pkg/hikes"

	"github.com/xuri/excelize/v2"
)

func testView(withTravelTime bool) filter.View {
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
		{DistanceKm: 12.5, ElevationGainM: 350, Difficulty: "Facile", Lines: "RER A", Department: "75", Link: "https://example.org/1", DepartureStation: "Gare1", TravelTimeMinutes: 45},
	}
	table := hikes.NewTable(cols, rows, withTravelTime)
	return filter.NewEngine(table).Apply(filter.Criteria{})
}

func TestGenerateICS(t *testing.T) {
	start := time.Date(2026, 5, 3, 8, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := GenerateICS(testView(true), start, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Rando au départ de Gare1") {
		t.Errorf("expected ICS to contain the hike summary, got: \n%s", output)
	}
	if !strings.Contains(output, "LOCATION:Gare1") {
		t.Errorf("expected ICS to contain the departure station")
	}
	if !strings.Contains(output, "DTSTART:20260503T080000Z") {
		t.Errorf("expected start time in ICS, got: \n%s", output)
	}
	// 45 minutes of travel
	if !strings.Contains(output, "DTEND:20260503T084500Z") {
		t.Errorf("expected end time to follow the travel time, got: \n%s", output)
	}
}

func TestGenerateICS_DefaultDuration(t *testing.T) {
	start := time.Date(2026, 5, 3, 8, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := GenerateICS(testView(false), start, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	if !strings.Contains(buf.String(), "DTEND:20260503T090000Z") {
		t.Errorf("expected one hour trip without travel time, got: \n%s", buf.String())
	}
}

func TestGenerateXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateXLSX(testView(true), &buf); err != nil {
		t.Fatalf("GenerateXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header and one row, got %d rows", len(rows))
	}
	if rows[0][0] != hikes.ColumnDistance || rows[0][len(rows[0])-1] != hikes.ColumnTravelTime {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][5] != hikes.LinkLabel {
		t.Errorf("expected link label, got %q", rows[1][5])
	}

	hasLink, target, err := f.GetCellHyperLink(SheetName, "F2")
	if err != nil || !hasLink || target != "https://example.org/1" {
		t.Errorf("expected hyperlink on F2, got %v %q %v", hasLink, target, err)
	}

	distance, err := f.GetCellValue(SheetName, "A2")
	if err != nil || distance != "12.5" {
		t.Errorf("expected numeric distance 12.5, got %q (%v)", distance, err)
	}
}

func TestGenerateXLSX_EmptyView(t *testing.T) {
	view := filter.NewEngine(hikes.NewTable([]string{hikes.ColumnDistance}, nil, false)).Apply(filter.Criteria{})

	var buf bytes.Buffer
	if err := GenerateXLSX(view, &buf); err != nil {
		t.Fatalf("GenerateXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows(SheetName)
	if len(rows) != 1 {
		t.Errorf("expected header row only, got %d rows", len(rows))
	}
}

package hikes

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

// LoadFile reads and cleans a hikes file. CSV and XLSX sources are supported;
// for XLSX the first sheet is used.
func LoadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open hikes file: %w", err)
		}
		defer file.Close()
		return ReadCSV(file)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadCSV reads a comma separated hikes table with a header row.
func ReadCSV(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.WithDelimiter(','),
		dataframe.WithLazyQuotes(true),
	)
	return fromDataFrame(df)
}

// FromRecords builds the table from raw string records, header first.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("hikes table is empty")
	}

	// Spreadsheet rows come back trimmed of trailing blanks
	width := len(records[0])
	padded := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, width)
		copy(row, rec)
		padded[i] = row
	}

	df := dataframe.LoadRecords(padded,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
	)
	return fromDataFrame(df)
}

func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open hikes workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("hikes workbook has no sheet")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return FromRecords(rows)
}

// fromDataFrame applies the column rules to an all-string frame.
func fromDataFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read hikes table: %w", df.Err)
	}

	names := df.Names()
	for _, col := range requiredColumns {
		if !slices.Contains(names, col) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	hasTravelTime := slices.Contains(names, ColumnTravelTime)

	var columns []string
	for _, name := range names {
		if !slices.Contains(droppedColumns, name) {
			columns = append(columns, name)
		}
	}

	cells := make(map[string][]string, len(columns))
	for _, name := range columns {
		cells[name] = columnValues(df, name)
	}

	rows := make([]Hike, df.Nrow())
	for i := range rows {
		h, err := buildHike(cells, columns, i, hasTravelTime)
		if err != nil {
			return nil, err
		}
		rows[i] = h
	}

	return NewTable(columns, rows, hasTravelTime), nil
}

// columnValues returns the raw strings of a column with missing cells as "".
func columnValues(df dataframe.DataFrame, name string) []string {
	col := df.Col(name)
	values := col.Records()
	missing := col.IsNaN()
	for i := range values {
		if missing[i] {
			values[i] = ""
		}
	}
	return values
}

func buildHike(cells map[string][]string, columns []string, i int, hasTravelTime bool) (Hike, error) {
	var err error
	h := Hike{
		Difficulty:       cells[ColumnDifficulty][i],
		Lines:            parseLines(cells[ColumnLines][i]),
		Department:       cells[ColumnDepartment][i],
		Link:             cells[ColumnLink][i],
		DepartureStation: cells[ColumnStation][i],
	}

	raw := cells[ColumnDistance][i]
	if h.DistanceKm, err = parseDistance(raw); err != nil {
		return Hike{}, &CellError{Column: ColumnDistance, Row: i + 1, Value: raw, Err: err}
	}

	raw = cells[ColumnElevation][i]
	if h.ElevationGainM, err = parseElevation(raw); err != nil {
		return Hike{}, &CellError{Column: ColumnElevation, Row: i + 1, Value: raw, Err: err}
	}

	if hasTravelTime {
		raw = cells[ColumnTravelTime][i]
		if h.TravelTimeMinutes, err = parseTravelTime(raw); err != nil {
			return Hike{}, &CellError{Column: ColumnTravelTime, Row: i + 1, Value: raw, Err: err}
		}
	}

	for _, name := range columns {
		if isKnownColumn(name) {
			continue
		}
		if h.extra == nil {
			h.extra = make(map[string]string)
		}
		h.extra[name] = cells[name][i]
	}

	return h, nil
}

func isKnownColumn(name string) bool {
	switch name {
	case ColumnDistance, ColumnElevation, ColumnDifficulty, ColumnLines,
		ColumnDepartment, ColumnLink, ColumnStation, ColumnTravelTime:
		return true
	}
	return false
}

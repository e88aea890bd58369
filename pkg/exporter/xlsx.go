package exporter

import (
	"fmt"
	"io"

	"marando/pkg/filter"

	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet holding exported hikes.
const SheetName = "Randos"

// GenerateXLSX writes the view as a workbook: one header row, then one row
// per hike. Link cells keep their label and carry the URL as a hyperlink.
func GenerateXLSX(view filter.View, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("could not name sheet: %w", err)
	}

	header := make([]interface{}, 0, len(view.Columns()))
	for _, col := range view.Columns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	for i, row := range view.Cells() {
		for j, c := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, c.Value); err != nil {
				return fmt.Errorf("could not write cell %s: %w", cell, err)
			}
			if c.IsLink() {
				if err := f.SetCellHyperLink(SheetName, cell, c.Href, "External"); err != nil {
					return fmt.Errorf("could not link cell %s: %w", cell, err)
				}
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}

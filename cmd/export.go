package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"marando/pkg/exporter"
	"marando/pkg/filter"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered hikes to an .xlsx or .ics file",
	Long: `Apply the dashboard filters (defaults unless overridden by flags) and write
the result as a spreadsheet, or as a calendar with one trip per hike.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}

		c, err := criteriaFromFlags(cmd, engine)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format != "xlsx" && format != "ics" {
			return fmt.Errorf("unknown format %q (must be xlsx or ics)", format)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = "randos." + format
		}

		var departure time.Time
		if format == "ics" {
			date, _ := cmd.Flags().GetString("date")
			start, _ := cmd.Flags().GetString("start")
			if departure, err = exporter.ParseOuting(date, start, time.Now()); err != nil {
				return err
			}
		}

		view := engine.Apply(c)

		var genErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting %d hikes to %s...", view.Len(), output)).
			Action(func() {
				genErr = writeExport(output, func(w io.Writer) error {
					if format == "ics" {
						return exporter.GenerateICS(view, departure, w)
					}
					return exporter.GenerateXLSX(view, w)
				})
			}).
			Run()

		if genErr != nil {
			return genErr
		}

		fmt.Printf("Successfully exported %d hikes to %s\n", view.Len(), output)
		return nil
	},
}

// writeExport creates output and fills it with write. A failed export
// leaves no file behind.
func writeExport(output string, write func(io.Writer) error) error {
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(file); err != nil {
		file.Close()
		os.Remove(output)
		return fmt.Errorf("failed to export hikes: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(output)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// criteriaFromFlags starts from the dashboard defaults and overrides the
// controls given on the command line.
func criteriaFromFlags(cmd *cobra.Command, engine *filter.Engine) (filter.Criteria, error) {
	c := engine.Defaults()
	flags := cmd.Flags()

	if flags.Changed("distance-min") || flags.Changed("distance-max") {
		lo, _ := flags.GetFloat64("distance-min")
		hi, _ := flags.GetFloat64("distance-max")
		c.Distance = &filter.Range[float64]{Min: lo, Max: hi}
	}
	if flags.Changed("elevation-min") || flags.Changed("elevation-max") {
		lo, _ := flags.GetInt("elevation-min")
		hi, _ := flags.GetInt("elevation-max")
		c.Elevation = &filter.Range[int]{Min: lo, Max: hi}
	}
	if flags.Changed("difficulty") {
		c.Difficulties, _ = flags.GetStringSlice("difficulty")
	}
	if flags.Changed("department") {
		c.Departments, _ = flags.GetStringSlice("department")
	}
	if flags.Changed("max-time") {
		minutes, _ := flags.GetInt("max-time")
		if minutes < filter.ControlTravelTimeMin {
			return c, fmt.Errorf("--max-time must be at least %d minutes", filter.ControlTravelTimeMin)
		}
		c.MaxTravelTime = &minutes
	}
	c.Station, _ = flags.GetString("station")

	return c, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "xlsx", "Output format: xlsx or ics")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default randos.<format>)")
	exportCmd.Flags().Float64("distance-min", filter.DistanceMin, "Minimum distance in km")
	exportCmd.Flags().Float64("distance-max", filter.DistanceMax, "Maximum distance in km")
	exportCmd.Flags().Int("elevation-min", filter.ElevationMin, "Minimum elevation gain in m")
	exportCmd.Flags().Int("elevation-max", filter.ElevationMax, "Maximum elevation gain in m")
	exportCmd.Flags().StringSlice("difficulty", filter.DefaultDifficulties, "Difficulty labels to keep")
	exportCmd.Flags().StringSlice("department", nil, "Departments to keep (default all)")
	exportCmd.Flags().Int("max-time", filter.ControlTravelTimeDefault, "Maximum travel time in minutes")
	exportCmd.Flags().StringP("station", "s", "", "Departure station (exact name)")
	exportCmd.Flags().String("date", "", "Outing date for ics (YYYY-MM-DD), defaults to tomorrow")
	exportCmd.Flags().String("start", "08:00", "Departure time for ics (HH:MM)")
}

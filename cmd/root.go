package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marando",
	Short: "An interactive dashboard to pick your next hike",
	Long: `marando loads a table of hikes reachable by public transport and lets you
filter it by distance, elevation, difficulty, travel time, department and
departure station, in the browser or in the terminal.

Without a command it serves the dashboard, like "marando serve".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data", "d", "", "Hikes file (.csv or .xlsx), defaults to the saved path or data/hikes.csv")
}

package cmd

import (
	"marando/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Filter the hikes from the terminal with the same controls as the web dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		return tui.RunDashboardTUI(engine)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

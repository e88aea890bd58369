package cmd

import (
	"fmt"

	"marando/pkg/config"
	"marando/pkg/hikes"
	"marando/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage marando configuration",
	Long:  "View or edit your local configuration settings (hikes file, server address, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setData, _ := cmd.Flags().GetString("set-data")
		setAddr, _ := cmd.Flags().GetString("set-addr")

		if setData == "" && setAddr == "" {
			return tui.RunConfigTUI()
		}

		if setData != "" {
			// Refuse a file the dashboard could not start with
			table, err := hikes.LoadFile(setData)
			if err != nil {
				return fmt.Errorf("could not use %s: %w", setData, err)
			}
			cfg.DataPath = setData
			fmt.Printf("✅ Hikes file saved as: %s (%d hikes)\n", setData, table.Len())
		}

		if setAddr != "" {
			cfg.ListenAddr = setAddr
			fmt.Printf("✅ Listen address saved as: %s\n", setAddr)
		}

		return config.Save(cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-data", "", "Set the default hikes file")
	configCmd.Flags().String("set-addr", "", "Set the default listen address")
}

package cmd

import (
	"fmt"

	"marando/pkg/config"
	"marando/pkg/filter"
	"marando/pkg/hikes"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// loadEngine resolves the data path (flag, then config, then default),
// loads the table once and binds it to a filter engine. Any load error is
// returned so the command stops before serving anything.
func loadEngine(cmd *cobra.Command) (*filter.Engine, *config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dataFlag, _ := cmd.Flags().GetString("data")
	path := cfg.DataPathOr(dataFlag)

	table, err := hikes.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load hikes from %s: %w", path, err)
	}

	travel := "absent"
	if table.HasTravelTime() {
		travel = "présent"
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("✅ %d randonnées chargées depuis %s", table.Len(), path)))
	fmt.Println(infoStyle.Render(fmt.Sprintf("   %d départements, %d gares, temps de trajet %s",
		len(table.Departments()), len(table.Stations()), travel)))

	return filter.NewEngine(table), cfg, nil
}

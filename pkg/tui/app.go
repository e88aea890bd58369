package tui

import (
	"fmt"

	"marando/pkg/config"
	"marando/pkg/filter"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// These act as fallbacks until GetTheme() reads the saved accent color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(config.DefaultAccentColor))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	baseColor := config.DefaultAccentColor
	if cfg, err := config.Load(); err == nil && cfg != nil {
		baseColor = cfg.Accent()
	}

	// Keep plain fmt output in the same color as the forms
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
// This is used for live-previewing styles before they are officially saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunDashboardTUI shows the filter form, prints the matching hikes and
// offers to adjust the filters until the user is done.
func RunDashboardTUI(engine *filter.Engine) error {
	state := newFormState(engine)

	for {
		form := buildFilterForm(engine, &state).WithTheme(GetTheme())
		if err := form.Run(); err != nil {
			return err
		}

		c, err := state.criteria(engine.HasTravelTime())
		if err != nil {
			return err
		}
		view := engine.Apply(c)

		fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🥾 Résultats : %d randonnée(s) ---", view.Len())))
		if view.Len() == 0 {
			fmt.Println(errorStyle.Render("Aucune randonnée ne correspond à ces filtres."))
		}
		fmt.Println(RenderTable(view))

		again := false
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Modifier les filtres ?").
					Affirmative("Oui").
					Negative("Non").
					Value(&again),
			),
		).WithTheme(GetTheme())

		if err := confirm.Run(); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

package tui

import (
	"fmt"
	"strings"

	"marando/pkg/config"
	"marando/pkg/hikes"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Réglages").
					Options(
						huh.NewOption("Couleur d'accent (thème)", "theme"),
						huh.NewOption("Fichier de randonnées", "data"),
						huh.NewOption("Adresse du serveur", "addr"),
						huh.NewOption("Afficher la configuration", "view"),
						huh.NewOption("Quitter", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "data":
			err = runSetDataPathTUI(cfg)
		case "addr":
			err = runSetListenAddrTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Configuration (~/.marando.json) ---"))
			fmt.Printf("Fichier : %s\n", cfg.DataPathOr(""))
			fmt.Printf("Serveur : %s\n", cfg.ListenAddrOr(""))
			fmt.Printf("Accent  : %s\n", cfg.Accent())
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetDataPathTUI(cfg *config.AppConfig) error {
	input := cfg.DataPath

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Chemin du fichier de randonnées").
				Description("Fichier .csv ou .xlsx lu au démarrage du tableau de bord.").
				Placeholder(config.DefaultDataPath).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if input == "" {
		fmt.Println("Opération annulée : aucun chemin fourni.")
		return nil
	}

	var table *hikes.Table
	var loadErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Vérification de '%s'...", input)).
		Action(func() {
			table, loadErr = hikes.LoadFile(input)
		}).
		Run()

	if loadErr != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ Fichier refusé : %v", loadErr)))
		return nil
	}

	cfg.DataPath = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Fichier enregistré : %s (%d randonnées)\n", input, table.Len())))
	return nil
}

func runSetListenAddrTUI(cfg *config.AppConfig) error {
	input := cfg.ListenAddr

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Adresse d'écoute du serveur").
				Placeholder(config.DefaultListenAddr).
				Value(&input).
				Validate(func(str string) error {
					if str != "" && !strings.Contains(str, ":") {
						return fmt.Errorf("format attendu : hôte:port (ex. 127.0.0.1:8050)")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.ListenAddr = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Adresse du serveur : %s\n", cfg.ListenAddrOr(""))))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choisissez une couleur d'accent").
				Description("Une couleur prédéfinie, ou Personnalisée pour saisir un code hexadécimal.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Violet", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Bruyère", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Lac", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Forêt", colorBlock("42")), "42"),
					huh.NewOption("✨ Personnalisée", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Code couleur hexadécimal").
					Description("Avec le symbole `#`. Exemple : #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHexColor),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Couleur enregistrée.\n"))
	return nil
}

func validateHexColor(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("code hexadécimal de 6 caractères commençant par # attendu")
	}
	return nil
}

package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"markbookctl/pkg/config"

	"github.com/charmbracelet/huh"
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

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Username (Restricted GPA)", "user"),
						huh.NewOption("Set Reference Time Zone", "tz"),
						huh.NewOption("Set Course Alias", "alias"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "user":
			err = runSetUsernameTUI(cfg)
		case "tz":
			err = runSetTimeZoneTUI(cfg)
		case "alias":
			err = runSetAliasTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.markbookctl.json) ---"))
			fmt.Print(RenderConfig(cfg))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

// RenderConfig summarizes the persisted settings
func RenderConfig(cfg *config.AppConfig) string {
	var b strings.Builder

	if cfg.Username == "" {
		b.WriteString("Username: Not set\n")
	} else {
		fmt.Fprintf(&b, "Username: %s\n", cfg.Username)
	}
	fmt.Fprintf(&b, "Time Zone: %s\n", cfg.TimeZone)
	if cfg.BaseURL != "" {
		fmt.Fprintf(&b, "Portal: %s\n", cfg.BaseURL)
	}
	for _, g := range cfg.ProgramGroups {
		fmt.Fprintf(&b, "Program %s: %d courses\n", g.Name, len(g.Courses))
	}
	fmt.Fprintf(&b, "Restricted Courses: %d\n", len(cfg.RestrictedCourses))
	fmt.Fprintf(&b, "Aliases: %d\n", len(cfg.Aliases))
	fmt.Fprintf(&b, "Accent Color: %s\n", cfg.AccentColor)
	return b.String()
}

func runSetUsernameTUI(cfg *config.AppConfig) error {
	input := cfg.Username

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter your portal username").
				Description("Used to decide whether the restricted GPA is shown. Leave empty to clear.").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Username = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Username saved.\n"))
	return nil
}

func runSetTimeZoneTUI(cfg *config.AppConfig) error {
	input := cfg.TimeZone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the IANA time zone used to decide what \"today\" is").
				Placeholder("e.g. America/Denver").
				Value(&input).
				Validate(func(str string) error {
					if _, err := time.LoadLocation(str); err != nil || str == "" {
						return fmt.Errorf("unknown time zone %q", str)
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.TimeZone = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Reference time zone changed to: %s\n", input)))
	return nil
}

func runSetAliasTUI(cfg *config.AppConfig) error {
	var name, alias string

	var known []string
	for n := range cfg.Aliases {
		known = append(known, n)
	}
	slices.Sort(known)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course name as shown on the portal").
				Suggestions(known).
				Value(&name).
				Validate(func(str string) error {
					if strings.TrimSpace(str) == "" {
						return fmt.Errorf("course name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Display name").
				Description("Leave empty to remove the alias.").
				Value(&alias),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]string)
	}
	name = strings.TrimSpace(name)
	if alias = strings.TrimSpace(alias); alias == "" {
		delete(cfg.Aliases, name)
	} else {
		cfg.Aliases[name] = alias
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Alias saved.\n"))
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
				Title("Choose an Accent Color for markbookctl").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Maple Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
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
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
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

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}

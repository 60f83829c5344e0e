package tui

import (
	"context"
	"fmt"

	"markbookctl/pkg/config"
	"markbookctl/pkg/report"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

var (
	// Fallbacks until GetTheme() picks up the saved accent color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// GetTheme loads the saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := "99" // Default purple

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so manual CLI print statements also receive the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
// This is used for live-previewing styles before they are officially saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	// Inject the dynamic color into the active inputs, cursors, borders, and buttons
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

// Session carries what every interactive flow needs to load a report
type Session struct {
	Log  zerolog.Logger
	Env  *config.Env
	From string // snapshot to replay instead of scraping

	report *report.Report
}

// config loads the saved settings with the environment overlay applied
func (s *Session) config() (*config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.Apply(s.Env)
	return cfg, nil
}

// Report loads the report on first use behind a spinner and reuses it afterwards
func (s *Session) Report(cfg *config.AppConfig) (*report.Report, error) {
	if s.report != nil {
		return s.report, nil
	}

	var rep *report.Report
	var err error

	_ = spinner.New().
		Title("Fetching markbooks from Maplewood...").
		Action(func() {
			rep, err = report.Load(context.Background(), s.Log, cfg, s.Env, s.From)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to load markbooks: %w", err)
	}
	s.report = rep
	return rep, nil
}

// RunTUI launches the main menu interactive form experience
func RunTUI(s *Session) error {
	for {
		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("📚 Browse Markbooks", "marks"),
						huh.NewOption("🎓 View GPA", "gpa"),
						huh.NewOption("📅 Export Assignments", "export"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		var err error
		switch action {
		case "marks":
			err = RunMarkbookTUI(s)
		case "gpa":
			err = RunGPATUI(s)
		case "export":
			err = RunExportTUI(s)
		case "config":
			err = RunConfigTUI()
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

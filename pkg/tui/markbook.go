package tui

import (
	"fmt"
	"os"
	"strings"

	"markbookctl/pkg/exporter"
	"markbookctl/pkg/markbook"

	"github.com/charmbracelet/huh"
)

// RunMarkbookTUI shows the course overview and lets the user open one markbook at a time
func RunMarkbookTUI(s *Session) error {
	cfg, err := s.config()
	if err != nil {
		return err
	}

	rep, err := s.Report(cfg)
	if err != nil {
		return err
	}

	fmt.Println(RenderCourses(rep))

	var options []huh.Option[string]
	for _, c := range rep.Courses {
		if !c.Active {
			continue
		}
		label := c.DisplayName()
		if c.UpdatedToday {
			label += " (updated today)"
		}
		options = append(options, huh.NewOption(label, c.Name))
	}
	options = append(options, huh.NewOption("Back to Main Menu", ""))

	for {
		var selected string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Open a markbook").
					Options(options...).
					Value(&selected).
					Filtering(true).
					Height(12),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}
		if selected == "" {
			return nil
		}

		course, ok := rep.Course(selected)
		if !ok {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Course %s not found!", selected)))
			continue
		}
		fmt.Println(RenderCourse(course))
	}
}

// RunGPATUI prints the GPA figures of the current report
func RunGPATUI(s *Session) error {
	cfg, err := s.config()
	if err != nil {
		return err
	}

	rep, err := s.Report(cfg)
	if err != nil {
		return err
	}

	fmt.Println(RenderGPA(rep.GPA))
	return nil
}

// RunExportTUI runs the interactive flow for picking courses and exporting their assignment dates
func RunExportTUI(s *Session) error {
	cfg, err := s.config()
	if err != nil {
		return err
	}

	rep, err := s.Report(cfg)
	if err != nil {
		return err
	}

	var courseOptions []huh.Option[string]
	for _, c := range rep.Courses {
		if c.AssignmentCount() == 0 {
			continue
		}
		courseOptions = append(courseOptions, huh.NewOption(c.DisplayName(), c.Name).Selected(true))
	}

	if len(courseOptions) == 0 {
		fmt.Println(errorStyle.Render("No courses with assignments found!"))
		return nil
	}

	var selectedCourses []string
	outputFile := "assignments.ics"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select courses to export").
				Description("Space = toggle, Enter = confirm").
				Options(courseOptions...).
				Value(&selectedCourses).
				Filterable(true).
				Height(10),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(str string) error {
					if str == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	var filtered []markbook.Course
	for _, name := range selectedCourses {
		if c, ok := rep.Course(name); ok {
			filtered = append(filtered, c)
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(filtered, loc, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported assignments of %d courses to %s", len(filtered), outputFile)))
	return nil
}

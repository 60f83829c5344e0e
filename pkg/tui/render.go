package tui

import (
	"fmt"
	"strconv"
	"strings"

	"markbookctl/pkg/grades"
	"markbookctl/pkg/markbook"
	"markbookctl/pkg/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const notAvailable = "n/a"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(1, 0)
	updatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

func markText(m markbook.Mark) string {
	if m.IsAbsent() {
		return notAvailable
	}
	return m.String()
}

func intText(v *int) string {
	if v == nil {
		return notAvailable
	}
	return strconv.Itoa(*v)
}

func percentText(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// node formats one tree line and highlights it when it changed today
func node(name string, mark, weight, denominator markbook.Mark, date string, updated bool) string {
	parts := []string{name, markText(mark)}
	if !denominator.IsAbsent() {
		parts[1] += "/" + denominator.String()
	}
	if !weight.IsAbsent() {
		parts = append(parts, dimStyle.Render("w "+weight.String()))
	}
	if date != "" {
		parts = append(parts, dimStyle.Render(date))
	}

	line := strings.Join(parts, "  ")
	if updated {
		return updatedStyle.Render(line + " *")
	}
	return line
}

func assignmentNode(a markbook.Assignment) any {
	line := node(a.Name, a.Mark, a.Weight, a.Denominator, a.Date, a.UpdatedToday)
	if a.Comment != nil && a.Comment.Text != "" {
		return tree.Root(line).Child(commentStyle.Render(a.Comment.Text))
	}
	return line
}

// RenderCourse draws a course's unit/section/assignment tree with its calculated mark
func RenderCourse(c markbook.Course) string {
	root := tree.Root(accentStyle.Render(fmt.Sprintf("%s (%s)", c.DisplayName(), markText(c.Mark)))).
		Enumerator(tree.RoundedEnumerator)

	for _, u := range c.Units {
		unit := tree.Root(node(u.Name, u.Mark, u.Weight, u.Denominator, "", u.UpdatedToday))
		for _, a := range u.Assignments {
			unit.Child(assignmentNode(a))
		}
		for _, s := range u.Sections {
			section := tree.Root(node(s.Name, s.Mark, s.Weight, s.Denominator, "", s.UpdatedToday))
			for _, a := range s.Assignments {
				section.Child(assignmentNode(a))
			}
			unit.Child(section)
		}
		root.Child(unit)
	}

	var b strings.Builder
	b.WriteString(root.String())
	b.WriteString("\n\n")

	if len(c.Units) == 0 {
		b.WriteString(dimStyle.Render("No markbook available."))
		b.WriteString("\n")
		return b.String()
	}

	calculated := notAvailable
	if pct, err := markbook.CalculateCourse(c); err == nil {
		calculated = fmt.Sprintf("%.2f%%", pct)
	}
	fmt.Fprintf(&b, "Calculated mark: %s\n", calculated)
	return b.String()
}

// RenderCourses draws the course overview table
func RenderCourses(rep *report.Report) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Course", "Code", "Teacher", "Mark", "Last Updated", "Absent", "Late")

	for _, c := range rep.Courses {
		name := c.DisplayName()
		updated := c.LastUpdated
		if updated == "" {
			updated = notAvailable
		}
		if c.UpdatedToday {
			name = updatedStyle.Render(name + " *")
		} else if !c.Active {
			name = dimStyle.Render(name)
		}
		t.Row(name, c.Code, c.Teacher, markText(c.Mark), updated, intText(c.Absences), intText(c.Late))
	}

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	for _, s := range rep.Skipped {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Skipped %s: %s", s.Name, s.Reason)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderGPA draws the overall, per-program and restricted averages
func RenderGPA(s grades.Summary) string {
	title := cases.Title(language.English)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Overall GPA:"), percentText(s.Overall))
	for _, p := range s.Programs {
		avg := p.Average
		fmt.Fprintf(&b, "  %s: %s (%d courses)\n", title.String(p.Name), percentText(&avg), p.Courses)
	}
	if s.Restricted != nil {
		fmt.Fprintf(&b, "Restricted GPA: %s\n", percentText(s.Restricted))
	}
	return b.String()
}

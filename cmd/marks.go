package cmd

import (
	"fmt"

	"markbookctl/pkg/tui"

	"github.com/spf13/cobra"
)

var marksCmd = &cobra.Command{
	Use:   "marks [course]",
	Short: "Show your courses, or the markbook tree of one course",
	Long: `Without arguments, lists every course with its term mark and attendance.
With a course code, portal name or alias, prints that course's markbook tree.
Entries updated today are highlighted and marked with *.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := loadReport(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Print(tui.RenderCourses(rep))
			return nil
		}

		course, ok := rep.Course(args[0])
		if !ok {
			return fmt.Errorf("no course matching %q", args[0])
		}
		fmt.Print(tui.RenderCourse(course))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(marksCmd)
}

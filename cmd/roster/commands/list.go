package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrled/suns/roster/internal/model"
	"github.com/mrled/suns/roster/internal/presenter"
	"github.com/mrled/suns/roster/internal/usecase/roster"
)

var listFlags struct {
	Grades []string
	SortBy string
	Format string
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "all"},
	Short:   "List students",
	GroupID: "records",
	Long: `Display students in the order they were added.

Examples:
  # Show all students
  roster list

  # Show students with grade A or A+
  roster list --grade A --grade A+

  # Show students sorted by name in a table
  roster list --sort name --format compact`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, err := model.ParseSortBy(listFlags.SortBy)
		if err != nil {
			return UsageError{err}
		}

		students, err := app.roster.List(cmd.Context(), roster.ListOptions{
			Filter: model.StudentFilter{Grades: listFlags.Grades},
			SortBy: sortBy,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch listFlags.Format {
		case "compact":
			fmt.Fprint(out, presenter.Table(students))
		case "detailed", "":
			fmt.Fprint(out, presenter.Listing(students))
		default:
			return UsageError{fmt.Errorf("invalid format %q (must be detailed or compact)", listFlags.Format)}
		}

		if len(students) == 0 {
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringSliceVarP(&listFlags.Grades, "grade", "g", nil, "Only show students with this grade (repeatable, case-insensitive)")
	listCmd.Flags().StringVar(&listFlags.SortBy, "sort", "", "Sort by: name, roll, grade, or email (default: insertion order)")
	listCmd.Flags().StringVar(&listFlags.Format, "format", "detailed", "Output format: detailed or compact")
}

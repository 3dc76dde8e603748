package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrled/suns/roster/internal/model"
	"github.com/mrled/suns/roster/internal/presenter"
)

var addFlags struct {
	Name  string
	Roll  string
	Grade string
	Email string
}

var addCmd = &cobra.Command{
	Use:     "add --name <name> --roll <roll> --grade <grade> --email <email>",
	Short:   "Add a student",
	GroupID: "records",
	Long: `Add a student to the roster. All four fields are required; surrounding
whitespace is trimmed.

Duplicate roll numbers are accepted unless --reject-duplicates is set.

Example:
  roster add --name Ann --roll R1 --grade A+ --email ann@example.com`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, result, err := app.roster.Enroll(cmd.Context(), addFlags.Name, addFlags.Roll, addFlags.Grade, addFlags.Email)
		if errors.Is(err, model.ErrMissingField) {
			return UsageError{fmt.Errorf("%s (%w)", presenter.MsgAllFieldsRequired, err)}
		}
		if err != nil {
			return err
		}

		if result.PersistErr != nil {
			return ExitWithCode(ExitNotPersisted, errors.New(presenter.PersistWarning(result.PersistErr)))
		}

		fmt.Fprintln(cmd.OutOrStdout(), presenter.MsgAdded)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addFlags.Name, "name", "n", "", "Student name")
	addCmd.Flags().StringVarP(&addFlags.Roll, "roll", "r", "", "Roll number")
	addCmd.Flags().StringVarP(&addFlags.Grade, "grade", "g", "", "Grade")
	addCmd.Flags().StringVarP(&addFlags.Email, "email", "m", "", "Email address")
}

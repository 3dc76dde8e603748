package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrled/suns/roster/internal/model"
	"github.com/mrled/suns/roster/internal/presenter"
)

var removeCmd = &cobra.Command{
	Use:     "remove <roll>",
	Aliases: []string{"rm"},
	Short:   "Remove a student by roll number",
	GroupID: "records",
	Long: `Remove the first student whose roll number matches, ignoring case.
The students file is only rewritten when a student was removed.

Exits with status 3 when no student matches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roll := strings.TrimSpace(args[0])
		result, err := app.roster.Withdraw(cmd.Context(), roll)
		if errors.Is(err, model.ErrMissingField) {
			return UsageError{errors.New(presenter.MsgEnterRollRemove)}
		}
		if err != nil {
			return err
		}

		if !result.Changed {
			return ExitWithCode(ExitNotFound, errors.New(presenter.MsgNotRemoved))
		}
		if result.PersistErr != nil {
			return ExitWithCode(ExitNotPersisted, errors.New(presenter.PersistWarning(result.PersistErr)))
		}

		fmt.Fprintln(cmd.OutOrStdout(), presenter.Removed(roll))
		return nil
	},
}

package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrled/suns/roster/internal/model"
	"github.com/mrled/suns/roster/internal/presenter"
)

var findCmd = &cobra.Command{
	Use:     "find <roll>",
	Aliases: []string{"search"},
	Short:   "Find a student by roll number",
	GroupID: "records",
	Long: `Display the first student whose roll number matches, ignoring case.

Exits with status 3 when no student matches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roll := strings.TrimSpace(args[0])
		s, err := app.roster.Lookup(cmd.Context(), roll)
		switch {
		case errors.Is(err, model.ErrMissingField):
			return UsageError{errors.New(presenter.MsgEnterRollSearch)}
		case errors.Is(err, model.ErrNotFound):
			return ExitWithCode(ExitNotFound, errors.New(presenter.NotFound(roll)))
		case err != nil:
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), presenter.Found(s))
		return nil
	},
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/mrled/suns/roster/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive roster screen",
	Long: `Open a full-screen form for adding, searching, removing and listing
students. Press esc to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cmd.Context(), app.roster)
	},
}

package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrled/suns/roster/internal/config"
	"github.com/mrled/suns/roster/internal/logger"
	"github.com/mrled/suns/roster/internal/model"
	"github.com/mrled/suns/roster/internal/repository"
	"github.com/mrled/suns/roster/internal/usecase/roster"
)

// appContext holds what PersistentPreRunE builds for the running subcommand
type appContext struct {
	cfg    *config.Config
	log    *slog.Logger
	repo   model.StudentRepository
	roster *roster.RosterUseCase
}

var (
	configFile string
	app        appContext
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Roster manages student records",
	Long: `A command-line tool for managing student records (name, roll number, grade, email).

Records are kept in a flat text file, one "name,roll,grade,email" line per
student, rewritten after every change. Roll numbers are matched without
regard to case.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context(), cmd)
	},
}

// setup loads configuration and builds the repository for cmd
func setup(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return UsageError{err}
	}

	log := logger.NewLogger(cfg.Logger())
	if cmd == uiCmd {
		// Log lines would be drawn over the screen
		log = logger.Discard()
	}
	log = logger.WithCommand(logger.WithExecutable(log, "roster"), cmd.Name())
	logger.SetDefault(log)

	repoCfg := cfg.Repository()
	repoCfg.Logger = log
	repo, err := repository.NewRepository(ctx, repoCfg)
	if err != nil {
		return err
	}

	app = appContext{
		cfg:    cfg,
		log:    log,
		repo:   repo,
		roster: roster.NewRosterUseCase(repo, log),
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: ./roster.yaml or ~/.config/roster/roster.yaml)")
	addPersistenceFlags(rootCmd)
	addLoggingFlags(rootCmd)

	rootCmd.AddGroup(
		&cobra.Group{ID: "records", Title: "Record Commands:"},
		&cobra.Group{ID: "snapshot", Title: "Snapshot Commands:"},
	)

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(uiCmd)
}

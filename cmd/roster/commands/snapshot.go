package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/mrled/suns/roster/internal/adapter/s3snapshot"
	"github.com/mrled/suns/roster/internal/usecase/roster"
)

// newSnapshotClient builds the S3 client used by export and import.
// It is a variable so tests can substitute a fake.
var newSnapshotClient = func(ctx context.Context) (s3snapshot.API, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

func openSnapshot(ctx context.Context) (*s3snapshot.Snapshot, error) {
	bucket, key := app.cfg.Snapshot.Bucket, app.cfg.Snapshot.Key
	if bucket == "" {
		return nil, UsageError{errors.New("--bucket (or snapshot.bucket) is required")}
	}

	client, err := newSnapshotClient(ctx)
	if err != nil {
		return nil, err
	}
	return s3snapshot.New(client, bucket, key, app.log), nil
}

var exportCmd = &cobra.Command{
	Use:     "export --bucket <bucket> [--key <key>]",
	Short:   "Upload the roster to S3",
	GroupID: "snapshot",
	Long: `Upload every student to an S3 object in the students file format,
replacing the object if it exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		snap, err := openSnapshot(ctx)
		if err != nil {
			return err
		}

		students, err := app.roster.List(ctx, roster.ListOptions{})
		if err != nil {
			return err
		}
		if err := snap.Save(ctx, students); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d student(s) to s3://%s/%s\n", len(students), app.cfg.Snapshot.Bucket, app.cfg.Snapshot.Key)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:     "import --bucket <bucket> [--key <key>]",
	Short:   "Add the students from an S3 snapshot",
	GroupID: "snapshot",
	Long: `Download a snapshot written by export and add each of its students, in
order, to the current roster. Existing students are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		snap, err := openSnapshot(ctx)
		if err != nil {
			return err
		}

		students, err := snap.Load(ctx)
		if err != nil {
			return err
		}

		added, err := app.roster.Import(ctx, students)
		if err != nil {
			app.log.Error("Import stopped", slog.Int("added", added), slog.String("error", err.Error()))
			return ExitWithCode(ExitNotPersisted, fmt.Errorf("imported %d of %d student(s): %w", added, len(students), err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d student(s) from s3://%s/%s\n", added, app.cfg.Snapshot.Bucket, app.cfg.Snapshot.Key)
		return nil
	},
}

func init() {
	addSnapshotFlags(exportCmd)
	addSnapshotFlags(importCmd)
}

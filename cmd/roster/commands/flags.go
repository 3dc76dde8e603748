package commands

import (
	"github.com/spf13/cobra"
)

// addPersistenceFlags adds the persistence flags shared by every subcommand.
// Their values are read through config.Load, which only honors flags that were set.
func addPersistenceFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("file", "f", "", "Path to the students file (default \"students.txt\")")
	cmd.PersistentFlags().StringP("dynamodb-table", "t", "", "DynamoDB table name for persistence")
	cmd.PersistentFlags().StringP("dynamodb-endpoint", "e", "", "DynamoDB endpoint URL (optional, uses AWS SDK default if not specified)")
	cmd.PersistentFlags().Bool("reject-duplicates", false, "Refuse to add a roll number that is already stored")
}

// addLoggingFlags adds log configuration flags
func addLoggingFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default \"warn\")")
	cmd.PersistentFlags().String("log-format", "", "Log format: text or json (default \"text\")")
}

// addSnapshotFlags adds the S3 location flags used by export and import
func addSnapshotFlags(cmd *cobra.Command) {
	cmd.Flags().String("bucket", "", "S3 bucket holding the roster snapshot")
	cmd.Flags().String("key", "", "S3 object key of the roster snapshot (default \"students.txt\")")
}

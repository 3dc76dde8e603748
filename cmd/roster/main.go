package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mrled/suns/roster/cmd/roster/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		var usageErr commands.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(os.Stderr, "Run 'roster --help' for usage.")
		}
		os.Exit(commands.ExitFailure)
	}
}

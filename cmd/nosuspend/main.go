// Package main is the entry point for the nosuspend CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/nosuspend/cmd/nosuspend/commands"
	"github.com/thoreinstein/nosuspend/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		// A nil underlying error means the exit code is the whole
		// message (e.g. a wrapped child process exited non-zero).
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(errors.ExitUser)
}

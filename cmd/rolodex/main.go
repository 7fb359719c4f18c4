// Package main provides the rolodex CLI: a contact book with an ordered
// in-memory index, a SQLite backend, and an HTTP server mode.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to a process exit code: user-correctable failures
// (bad input, duplicate, not found) exit 1, system failures exit 2.
func exitCode(err error) int {
	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, types.ErrDuplicateID),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID):
		return exitUserError
	default:
		return exitSysError
	}
}

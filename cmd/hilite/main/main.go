package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/hilite/cmd/hilite"
	"github.com/arthur-debert/hilite/pkg/errors"
)

func main() {
	rootCmd := hilite.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.FgRed.Sprintf("Error: %v", err))

		// Usage mistakes also get the full help text
		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Help()
		}

		os.Exit(1)
	}
}

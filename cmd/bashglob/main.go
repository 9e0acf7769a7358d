package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/bashglob/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrNoMatch) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

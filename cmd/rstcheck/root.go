// Package main provides the entry point for the rstcheck CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for rstcheck. Checking is the root
// action: positional arguments are the documents to check.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rstcheck [flags] FILE...",
		Short: "Check code blocks embedded in documentation",
		Long: `rstcheck checks the code samples embedded in documentation files.

Every code-block (or sourcecode) directive in a reStructuredText document,
and every fenced code block in a Markdown document, is extracted and run
through a syntax checker for its declared language. Blocks that fail to
parse are reported with their file and line; the process exits nonzero
when any block fails.

Blocks with an unrecognized language are reported but only count as
failures under --strict-warnings.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runCheckCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Strictness flags
	cmd.Flags().Bool("strict-rst", false,
		"Treat markup warnings as fatal parse errors")
	cmd.Flags().Bool("strict-warnings", false,
		"Treat compiler warnings and unknown languages as failures")

	// Execution flags
	cmd.Flags().IntP("jobs", "j", 1,
		"Number of documents to check concurrently")
	cmd.Flags().Duration("check-timeout", 0,
		"Timeout for each checker process (0 disables)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .rstcheck.yaml in current or home directory)")

	// Report flags
	cmd.Flags().Bool("json", false,
		"Output a JSON run report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output a Markdown run report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the JSON/Markdown report to the specified file path")

	// History flags
	cmd.Flags().Bool("save", false,
		"Record the run in the history database")

	// Add subcommands
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. Check failures exit with status 1
// without an extra error line; the summary has already been printed.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailuresFound) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// getDurationFlag reads a duration flag, returning 0 on lookup failure.
func getDurationFlag(cmd *cobra.Command, name string) time.Duration {
	d, err := cmd.Flags().GetDuration(name)
	if err != nil {
		return 0
	}
	return d
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

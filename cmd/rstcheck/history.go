package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ishaan29/rstcheck/internal/config"
	"github.com/Ishaan29/rstcheck/internal/history"
)

// NewHistoryCmd creates the history command.
// It lists runs previously recorded with --save.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded check runs",
		Long: `History lists check runs previously recorded with --save.

Each line shows when the run started, how many documents and code blocks
were checked, and how many failures were found under the run's
strict-warnings policy.

Examples:
  # Record a run
  rstcheck --save docs/*.rst

  # Show the last ten recorded runs
  rstcheck history

  # Show the last three
  rstcheck history -n 3`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 10, "Maximum number of runs to list")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	opts := history.DefaultOptions()
	opts.CreateIfNotExists = false

	db, err := history.Open(config.XDGDataDir(), opts)
	if err != nil {
		return fmt.Errorf("no recorded runs (record one with --save): %w", err)
	}
	defer func() {
		_ = db.Close() //nolint:errcheck // Best effort cleanup
	}()

	records, err := db.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-5s %-20s %-10s %-8s %-9s %s\n",
		"ID", "STARTED", "DOCUMENTS", "BLOCKS", "FAILURES", "STRICT")
	for _, r := range records {
		fmt.Fprintf(out, "%-5d %-20s %-10d %-8d %-9d %s\n",
			r.ID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Documents,
			r.Blocks,
			r.Failures,
			strconv.FormatBool(r.StrictWarnings),
		)
	}
	return nil
}

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/falmaashani/jarvisctl/internal/app"
	"github.com/falmaashani/jarvisctl/internal/domain"
)

const msgNoRunsRecorded = "No diagnostic runs recorded yet."

// NewHistoryCommand creates the history command with its subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past diagnostic runs",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent diagnostic runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRunRecords(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all journaled runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Journal == nil {
				return fmt.Errorf("journal unavailable")
			}
			if err := container.Journal.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Journal cleared.")
			return nil
		},
	}
}

func listRunRecords(out io.Writer, container *app.Container, limit int) error {
	if container.Journal == nil {
		return fmt.Errorf("journal unavailable")
	}
	records, err := container.Journal.Runs(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, msgNoRunsRecorded)
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s  %-10s  passed %d  failed %d  %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			rec.Backend,
			rec.PassedCount,
			rec.FailedCount,
			verdict(rec.OverallPass))
	}
	return nil
}

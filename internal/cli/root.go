// Package cli implements the divvy command line interface. Commands work
// directly against the SQLite-backed tracker, so the CLI and the server
// can share one database file.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/divvy-app/divvy/internal/service"
	"github.com/divvy-app/divvy/internal/storage/sqlite"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "divvy",
		Short:         "Track shared expenses and settle up",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().String("db", "./data/divvy.db", "path to the SQLite database")
	root.PersistentFlags().StringP("output", "o", "text", "output format: text or json")

	root.AddCommand(
		newMemberCmd(),
		newExpenseCmd(),
		newBalancesCmd(),
		newSettleCmd(),
	)
	return root
}

// openTracker opens the store named by --db and loads a tracker over it.
// The returned closer must be called when the command is done.
func openTracker(cmd *cobra.Command) (*service.Tracker, func(), error) {
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, nil, err
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	tracker, err := service.NewTracker(context.Background(), store)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("load tracker: %w", err)
	}
	return tracker, func() { _ = store.Close() }, nil
}

func getOutputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return "text"
	}
	return format
}

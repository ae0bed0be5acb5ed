package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage participants",
	}
	cmd.AddCommand(newMemberAddCmd(), newMemberListCmd())
	return cmd
}

func newMemberAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closer, err := openTracker(cmd)
			if err != nil {
				return err
			}
			defer closer()

			name, err := tracker.RegisterParticipant(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]string{"name": name})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added participant: %s\n", name)
			return nil
		},
	}
}

func newMemberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List participants in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, closer, err := openTracker(cmd)
			if err != nil {
				return err
			}
			defer closer()

			names := tracker.ListParticipants(context.Background())
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/divvy-app/divvy/internal/models"
)

func newBalancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show each participant's net balance",
		Long: `Show each participant's net balance. Positive means the group
owes them (creditor); negative means they owe the group (debtor).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, closer, err := openTracker(cmd)
			if err != nil {
				return err
			}
			defer closer()

			ctx := context.Background()
			balances := tracker.ComputeBalances(ctx)

			records := make([]models.MemberBalance, 0, len(balances))
			for _, name := range tracker.ListParticipants(ctx) {
				records = append(records, models.MemberBalance{Name: name, NetBalance: balances[name]})
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), records)
			}
			for _, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %+.2f\n", rec.Name, rec.NetBalance)
			}
			return nil
		},
	}
}

func newSettleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle",
		Short: "Suggest transfers that settle all balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, closer, err := openTracker(cmd)
			if err != nil {
				return err
			}
			defer closer()

			transfers := tracker.PlanSettlement(context.Background())

			if getOutputFormat(cmd) == "json" {
				if transfers == nil {
					transfers = []models.Transfer{}
				}
				return printJSON(cmd.OutOrStdout(), transfers)
			}
			if len(transfers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Everyone is settled up!")
				return nil
			}
			for _, t := range transfers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s pays %s %.2f\n", t.From, t.To, t.Amount)
			}
			return nil
		},
	}
}

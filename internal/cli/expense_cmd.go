package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/divvy-app/divvy/internal/models"
)

func newExpenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expenses",
	}
	cmd.AddCommand(newExpenseAddCmd(), newExpenseListCmd())
	return cmd
}

func newExpenseAddCmd() *cobra.Command {
	var (
		paidBy string
		among  []string
		shares []string
	)

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record an expense",
		Long: `Record an expense paid by one participant.

Without --among or --share the amount splits evenly across every
registered participant. --among splits evenly across the named
participants. --share gives manual name=amount pairs that must sum
to the expense amount.`,
		Example: `  divvy expense add "Groceries" 52.40 --paid-by Alice
  divvy expense add "Taxi" 18.00 --paid-by Bob --among Alice,Bob
  divvy expense add "Dinner" 60.00 --paid-by Carol --share Alice=20 --share Carol=40`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			spec, err := splitSpecFromFlags(among, shares)
			if err != nil {
				return err
			}

			tracker, closer, err := openTracker(cmd)
			if err != nil {
				return err
			}
			defer closer()

			exp, err := tracker.RecordExpense(context.Background(), args[0], amount, paidBy, spec)
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), exp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %q for %.2f paid by %s\n", exp.Description, exp.Amount, exp.PaidBy)
			for _, s := range exp.Splits {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s owes %.2f\n", s.Participant, s.Share)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&paidBy, "paid-by", "", "participant who paid (required)")
	cmd.Flags().StringSliceVar(&among, "among", nil, "split evenly across these participants")
	cmd.Flags().StringArrayVar(&shares, "share", nil, "manual share as name=amount (repeatable)")
	_ = cmd.MarkFlagRequired("paid-by")
	return cmd
}

func newExpenseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses in ledger order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, closer, err := openTracker(cmd)
			if err != nil {
				return err
			}
			defer closer()

			expenses := tracker.ListExpenses(context.Background())
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), expenses)
			}
			for _, exp := range expenses {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %.2f  paid by %s (%d splits)\n",
					exp.Description, exp.Amount, exp.PaidBy, len(exp.Splits))
			}
			return nil
		},
	}
}

// splitSpecFromFlags builds the split spec from --among / --share.
// Passing both is ambiguous and rejected.
func splitSpecFromFlags(among, shares []string) (models.SplitSpec, error) {
	if len(among) > 0 && len(shares) > 0 {
		return models.SplitSpec{}, fmt.Errorf("--among and --share are mutually exclusive")
	}
	if len(among) > 0 {
		return models.EqualSubset(among...), nil
	}
	if len(shares) > 0 {
		parsed := make(map[string]float64, len(shares))
		for _, raw := range shares {
			name, value, ok := strings.Cut(raw, "=")
			if !ok {
				return models.SplitSpec{}, fmt.Errorf("invalid share %q: want name=amount", raw)
			}
			amount, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return models.SplitSpec{}, fmt.Errorf("invalid share amount in %q", raw)
			}
			parsed[name] = amount
		}
		return models.Manual(parsed), nil
	}
	return models.EqualAll(), nil
}

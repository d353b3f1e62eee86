package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"billlookup/billing/render"
)

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup <transaction-id>",
		Aliases: []string{"print"},
		Short:   "Print the bill of a transaction",
		Long: `Look up one transaction with its buyer and purchased products and print
the bill. When the lookup fails only the error message is printed and the
command exits with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			business, closeFn, err := newBusiness(ctx, opts.cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			view, lookupErr := business.LookupBill(ctx, args[0])
			if err := render.Result(cmd.OutOrStdout(), headerFromConfig(opts.cfg), view, lookupErr); err != nil {
				return err
			}
			if lookupErr != nil {
				slog.Debug("lookup failed", "transaction_id", args[0], "error", lookupErr)
				return errReported
			}
			return nil
		},
	}
}

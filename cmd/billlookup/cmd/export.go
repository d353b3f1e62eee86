package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"billlookup/billing/business/bill"
	"billlookup/billing/render"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <transaction-id>",
		Short: "Export the bill of a transaction to PDF (not implemented)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBillAction(cmd, opts, args[0], bill.Business.ExportBill)
		},
	}
}

func newSaveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save <transaction-id>",
		Short: "Save the bill of a transaction (not implemented)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBillAction(cmd, opts, args[0], bill.Business.SaveBill)
		},
	}
}

func runBillAction(cmd *cobra.Command, opts *rootOptions, id string, action func(bill.Business, context.Context, string) error) error {
	ctx := cmd.Context()

	business, closeFn, err := newBusiness(ctx, opts.cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := action(business, ctx, id); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), render.Message(err))
		return errReported
	}
	return nil
}

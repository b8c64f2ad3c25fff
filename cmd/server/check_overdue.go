package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckOverdueCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "check-overdue-invoices",
		Short: "Mark invoices past their due date overdue and notify tenants and landlords",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			db, err := openDatabase(false)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			_, svc, _, err := buildServices(ctx, db)
			if err != nil {
				return err
			}
			result, err := svc.Invoices.CheckOverdue(ctx, dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, "Dry run: no invoices were changed")
				for _, c := range result.Candidates {
					fmt.Fprintf(out, "  %s  period=%s  due=%s  tenant=%s\n", c.InvoiceID, c.Period, c.DueDate, c.TenantEmail)
				}
			}
			fmt.Fprintf(out, "Checked %d invoices, %d notified, %d errors\n", result.Checked, result.Notified, result.Errors)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List overdue invoices without changing them")
	return cmd
}

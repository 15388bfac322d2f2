package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reynaldiarya/flashpos/internal/api"
)

func init() {
	listFlags(transactionListCmd)
}

// flashpos transaction:list
var transactionListCmd = &cobra.Command{
	Use:   "transaction:list",
	Short: "List transactions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		res, err := client.Transactions.List(cmd.Context(), api.ListQuery{Page: listPage, Limit: listLimit, Search: listSearch})
		if err != nil {
			return err
		}

		w := table("ID", "CODE", "CUSTOMER", "SUBTOTAL", "TAX", "TOTAL", "CREATED")
		for _, t := range res.Items {
			customer := "-"
			if t.Customer != nil {
				customer = t.Customer.Name
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
				t.ID, t.Code, customer, t.Subtotal, t.Tax, t.Total, t.CreatedAt.Format("2006-01-02 15:04"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		pageFooter(res.Pagination.CurrentPage, res.Pagination.LastPage, res.Pagination.Total)
		return nil
	},
}

// flashpos transaction:get <id>
var transactionGetCmd = &cobra.Command{
	Use:   "transaction:get <id>",
	Short: "Show one transaction with its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := argID(args)
		if err != nil {
			return err
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}

		t, err := client.Transactions.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Code:    %s\n", t.Code)
		if t.Customer != nil {
			fmt.Printf("Customer: %s\n", t.Customer.Name)
		}
		fmt.Printf("Created: %s\n\n", t.CreatedAt.Format("2006-01-02 15:04:05"))

		w := table("PRODUCT", "QTY", "PRICE", "SUBTOTAL")
		for _, it := range t.Items {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", it.ProductName, it.Quantity, it.Price, it.Subtotal)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nSubtotal: %d\nTax:      %d\nTotal:    %d\n", t.Subtotal, t.Tax, t.Total)
		return nil
	},
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reynaldiarya/flashpos/internal/store"
)

var (
	saleCustomerID int64
	saleItems      []string
)

func init() {
	saleCmd.Flags().Int64Var(&saleCustomerID, "customer", 0, "customer id (required)")
	saleCmd.Flags().StringArrayVar(&saleItems, "item", nil, "product line as <product-id>:<quantity>, repeatable")
}

// flashpos sale --customer 1 --item 3:2 --item 5:1
//
// Builds a cart, submits it as one transaction, and prints the receipt the
// backend priced.
var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Ring up a sale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(saleItems) == 0 {
			return fmt.Errorf("at least one --item is required")
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		pos := store.NewPos(client.Transactions)
		if saleCustomerID > 0 {
			pos.SetCustomer(&saleCustomerID)
		}

		for _, raw := range saleItems {
			idPart, qtyPart, ok := strings.Cut(raw, ":")
			if !ok {
				return fmt.Errorf("invalid --item %q, want <product-id>:<quantity>", raw)
			}
			id, err := strconv.ParseInt(idPart, 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid product id in --item %q", raw)
			}
			qty, err := strconv.ParseInt(qtyPart, 10, 64)
			if err != nil || qty <= 0 {
				return fmt.Errorf("invalid quantity in --item %q", raw)
			}

			p, err := client.Products.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("product %d: %w", id, err)
			}
			pos.AddToCart(*p)
			pos.UpdateQuantity(p.ID, qty)
		}

		w := table("PRODUCT", "QTY", "PRICE", "SUBTOTAL")
		for _, it := range pos.Items() {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", it.Product.Name, it.Quantity, it.Product.Price, it.Product.Price*it.Quantity)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\nSubtotal: %d\nTax:      %d\nTotal:    %d\n\n", pos.Subtotal(), pos.Tax(), pos.Total())

		tx, err := pos.Checkout(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Sale complete: %s (transaction %d, total %d)\n", tx.Code, tx.ID, tx.Total)
		return nil
	},
}

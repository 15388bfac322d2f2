package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/models"
)

var (
	productCategoryID int64
	productName       string
	productPrice      int64
	productStock      int64
)

func init() {
	listFlags(productListCmd)
	productListCmd.Flags().Int64Var(&productCategoryID, "category", 0, "filter by category id")

	for _, cmd := range []*cobra.Command{productCreateCmd, productUpdateCmd} {
		cmd.Flags().Int64Var(&productCategoryID, "category", 0, "category id")
		cmd.Flags().StringVar(&productName, "name", "", "product name")
		cmd.Flags().Int64Var(&productPrice, "price", 0, "unit price")
		cmd.Flags().Int64Var(&productStock, "stock", 0, "units in stock")
	}
}

func categoryNameOf(p models.Product) string {
	if p.Category != nil {
		return p.Category.Name
	}
	return "-"
}

// flashpos product:list
var productListCmd = &cobra.Command{
	Use:   "product:list",
	Short: "List products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		q := api.ListQuery{Page: listPage, Limit: listLimit, Search: listSearch, CategoryID: productCategoryID}
		res, err := client.Products.List(cmd.Context(), q)
		if err != nil {
			return err
		}

		w := table("ID", "NAME", "CATEGORY", "PRICE", "STOCK")
		for _, p := range res.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", p.ID, p.Name, categoryNameOf(p), p.Price, p.Stock)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		pageFooter(res.Pagination.CurrentPage, res.Pagination.LastPage, res.Pagination.Total)
		return nil
	},
}

// flashpos product:get <id>
var productGetCmd = &cobra.Command{
	Use:   "product:get <id>",
	Short: "Show one product",
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

		p, err := client.Products.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("ID:       %d\nName:     %s\nCategory: %s\nPrice:    %d\nStock:    %d\n",
			p.ID, p.Name, categoryNameOf(*p), p.Price, p.Stock)
		if p.Image != "" {
			fmt.Printf("Image:    %s\n", p.Image)
		}
		return nil
	},
}

// flashpos product:create --category --name --price --stock
var productCreateCmd = &cobra.Command{
	Use:   "product:create",
	Short: "Create a product",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		in := api.ProductInput{
			ProductCategoryID: productCategoryID,
			Name:              productName,
			Price:             productPrice,
			Stock:             productStock,
		}
		p, err := client.Products.Create(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Printf("Created product %d: %s\n", p.ID, p.Name)
		return nil
	},
}

// flashpos product:update <id> --category --name --price --stock
var productUpdateCmd = &cobra.Command{
	Use:   "product:update <id>",
	Short: "Update a product",
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

		in := api.ProductInput{
			ProductCategoryID: productCategoryID,
			Name:              productName,
			Price:             productPrice,
			Stock:             productStock,
		}
		p, err := client.Products.Update(cmd.Context(), id, in)
		if err != nil {
			return err
		}
		fmt.Printf("Updated product %d: %s\n", p.ID, p.Name)
		return nil
	},
}

// flashpos product:delete <id>
var productDeleteCmd = &cobra.Command{
	Use:   "product:delete <id>",
	Short: "Delete a product",
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

		if err := client.Products.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted product %d\n", id)
		return nil
	},
}

// flashpos product:image <id> <file>
var productImageCmd = &cobra.Command{
	Use:   "product:image <id> <file>",
	Short: "Upload a product image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := argID(args)
		if err != nil {
			return err
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}

		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		p, err := client.Products.UploadImage(cmd.Context(), id, filepath.Base(args[1]), f)
		if err != nil {
			return err
		}
		fmt.Printf("Image set for product %d: %s\n", p.ID, p.Image)
		return nil
	},
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reynaldiarya/flashpos/internal/api"
)

var (
	categoryName        string
	categoryDescription string
)

func init() {
	listFlags(categoryListCmd)

	for _, cmd := range []*cobra.Command{categoryCreateCmd, categoryUpdateCmd} {
		cmd.Flags().StringVar(&categoryName, "name", "", "category name")
		cmd.Flags().StringVar(&categoryDescription, "description", "", "category description")
	}
}

// flashpos category:list
var categoryListCmd = &cobra.Command{
	Use:   "category:list",
	Short: "List product categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		res, err := client.ProductCategories.List(cmd.Context(), api.ListQuery{Page: listPage, Limit: listLimit, Search: listSearch})
		if err != nil {
			return err
		}

		w := table("ID", "NAME", "DESCRIPTION")
		for _, c := range res.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		pageFooter(res.Pagination.CurrentPage, res.Pagination.LastPage, res.Pagination.Total)
		return nil
	},
}

// flashpos category:get <id>
var categoryGetCmd = &cobra.Command{
	Use:   "category:get <id>",
	Short: "Show one product category",
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

		c, err := client.ProductCategories.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("ID:          %d\nName:        %s\nDescription: %s\n", c.ID, c.Name, c.Description)
		if c.Image != "" {
			fmt.Printf("Image:       %s\n", c.Image)
		}
		return nil
	},
}

// flashpos category:create --name --description
var categoryCreateCmd = &cobra.Command{
	Use:   "category:create",
	Short: "Create a product category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		c, err := client.ProductCategories.Create(cmd.Context(), api.ProductCategoryInput{Name: categoryName, Description: categoryDescription})
		if err != nil {
			return err
		}
		fmt.Printf("Created category %d: %s\n", c.ID, c.Name)
		return nil
	},
}

// flashpos category:update <id> --name --description
var categoryUpdateCmd = &cobra.Command{
	Use:   "category:update <id>",
	Short: "Update a product category",
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

		c, err := client.ProductCategories.Update(cmd.Context(), id, api.ProductCategoryInput{Name: categoryName, Description: categoryDescription})
		if err != nil {
			return err
		}
		fmt.Printf("Updated category %d: %s\n", c.ID, c.Name)
		return nil
	},
}

// flashpos category:delete <id>
var categoryDeleteCmd = &cobra.Command{
	Use:   "category:delete <id>",
	Short: "Delete a product category",
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

		if err := client.ProductCategories.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted category %d\n", id)
		return nil
	},
}

// flashpos category:image <id> <file>
var categoryImageCmd = &cobra.Command{
	Use:   "category:image <id> <file>",
	Short: "Upload a category image",
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

		c, err := client.ProductCategories.UploadImage(cmd.Context(), id, filepath.Base(args[1]), f)
		if err != nil {
			return err
		}
		fmt.Printf("Image set for category %d: %s\n", c.ID, c.Image)
		return nil
	},
}

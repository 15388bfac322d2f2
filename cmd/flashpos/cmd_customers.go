package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reynaldiarya/flashpos/internal/api"
)

var (
	listPage   int
	listLimit  int
	listSearch string
)

// listFlags attaches the shared pagination flags to a list command.
func listFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&listPage, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&listLimit, "limit", 10, "rows per page")
	cmd.Flags().StringVar(&listSearch, "search", "", "search term")
}

// argID parses the positional id argument.
func argID(args []string) (int64, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

var (
	customerName  string
	customerPhone string
)

func init() {
	listFlags(customerListCmd)

	for _, cmd := range []*cobra.Command{customerCreateCmd, customerUpdateCmd} {
		cmd.Flags().StringVar(&customerName, "name", "", "customer name")
		cmd.Flags().StringVar(&customerPhone, "phone", "", "customer phone")
	}
}

// flashpos customer:list
var customerListCmd = &cobra.Command{
	Use:   "customer:list",
	Short: "List customers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		res, err := client.Customers.List(cmd.Context(), api.ListQuery{Page: listPage, Limit: listLimit, Search: listSearch})
		if err != nil {
			return err
		}

		w := table("ID", "NAME", "PHONE")
		for _, c := range res.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Phone)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		pageFooter(res.Pagination.CurrentPage, res.Pagination.LastPage, res.Pagination.Total)
		return nil
	},
}

// flashpos customer:get <id>
var customerGetCmd = &cobra.Command{
	Use:   "customer:get <id>",
	Short: "Show one customer",
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

		c, err := client.Customers.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("ID:    %d\nName:  %s\nPhone: %s\n", c.ID, c.Name, c.Phone)
		return nil
	},
}

// flashpos customer:create --name --phone
var customerCreateCmd = &cobra.Command{
	Use:   "customer:create",
	Short: "Create a customer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		c, err := client.Customers.Create(cmd.Context(), api.CustomerInput{Name: customerName, Phone: customerPhone})
		if err != nil {
			return err
		}
		fmt.Printf("Created customer %d: %s\n", c.ID, c.Name)
		return nil
	},
}

// flashpos customer:update <id> --name --phone
var customerUpdateCmd = &cobra.Command{
	Use:   "customer:update <id>",
	Short: "Update a customer",
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

		c, err := client.Customers.Update(cmd.Context(), id, api.CustomerInput{Name: customerName, Phone: customerPhone})
		if err != nil {
			return err
		}
		fmt.Printf("Updated customer %d: %s\n", c.ID, c.Name)
		return nil
	},
}

// flashpos customer:delete <id>
var customerDeleteCmd = &cobra.Command{
	Use:   "customer:delete <id>",
	Short: "Delete a customer",
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

		if err := client.Customers.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted customer %d\n", id)
		return nil
	},
}

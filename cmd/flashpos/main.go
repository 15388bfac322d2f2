package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reynaldiarya/flashpos/config"
	"github.com/reynaldiarya/flashpos/internal/api"
	"github.com/reynaldiarya/flashpos/internal/token"
	"github.com/reynaldiarya/flashpos/pkg/cache"
	"github.com/reynaldiarya/flashpos/pkg/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var apiFlag string

var rootCmd = &cobra.Command{
	Use:   "flashpos",
	Short: "FlashPOS point of sale admin console",
	Long:  "FlashPOS is a terminal admin console for the FlashPOS backend: manage customers, categories, and products, and ring up sales.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "backend base URL (overrides API_BASE_URL)")

	// Session
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	// Resources
	rootCmd.AddCommand(customerListCmd)
	rootCmd.AddCommand(customerGetCmd)
	rootCmd.AddCommand(customerCreateCmd)
	rootCmd.AddCommand(customerUpdateCmd)
	rootCmd.AddCommand(customerDeleteCmd)

	rootCmd.AddCommand(categoryListCmd)
	rootCmd.AddCommand(categoryGetCmd)
	rootCmd.AddCommand(categoryCreateCmd)
	rootCmd.AddCommand(categoryUpdateCmd)
	rootCmd.AddCommand(categoryDeleteCmd)
	rootCmd.AddCommand(categoryImageCmd)

	rootCmd.AddCommand(productListCmd)
	rootCmd.AddCommand(productGetCmd)
	rootCmd.AddCommand(productCreateCmd)
	rootCmd.AddCommand(productUpdateCmd)
	rootCmd.AddCommand(productDeleteCmd)
	rootCmd.AddCommand(productImageCmd)

	rootCmd.AddCommand(transactionListCmd)
	rootCmd.AddCommand(transactionGetCmd)

	// Point of sale
	rootCmd.AddCommand(saleCmd)

	// Tooling
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(devCmd)
}

// boot loads config, applies CLI overrides, and connects the optional
// options cache.
func boot() error {
	if err := config.Load(); err != nil {
		return err
	}
	if apiFlag != "" {
		config.Set("API_BASE_URL", apiFlag)
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("options cache unavailable, continuing without it", "error", err)
	}
	return nil
}

// tokenStore is the persisted session token, shared by every command.
func tokenStore() *token.Store {
	return token.NewStore(config.TokenPath())
}

// newClient builds the API client bound to the persisted token. Commands
// that need a session warn early when the stored token is already expired.
func newClient() (*api.Client, *token.Store, error) {
	if err := boot(); err != nil {
		return nil, nil, err
	}

	ts := tokenStore()
	if ts.Expired() {
		logger.Warn("stored token is expired, run `flashpos login` again")
	}
	return api.New(config.APIBaseURL(), ts), ts, nil
}

// table starts a tabwriter with a header row.
func table(headers ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)
	return w
}

// pageFooter prints the pagination line under a listing.
func pageFooter(current, last, total int) {
	fmt.Printf("\nPage %d of %d (%d total)\n", current, last, total)
}

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reynaldiarya/flashpos/config"
	"github.com/reynaldiarya/flashpos/internal/devserver"
	"github.com/reynaldiarya/flashpos/pkg/metrics"
)

var devPort int

func init() {
	devCmd.Flags().IntVar(&devPort, "port", 0, "port to listen on (overrides DEV_PORT)")
}

// flashpos dev runs the bundled in-memory backend for local work and demos.
var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the in-memory dev backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		if devPort > 0 {
			config.Set("DEV_PORT", strconv.Itoa(devPort))
		}
		return devserver.New().Listen(config.DevPort())
	},
}

// flashpos stats dumps the metrics collected during this process.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print collected API call metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := metrics.Snapshot()
		if err != nil {
			return err
		}
		if out == "" {
			cmd.Println("No metrics collected yet.")
			return nil
		}
		cmd.Print(out)
		return nil
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd serves the API when run without a subcommand
var rootCmd = &cobra.Command{
	Use:   "greenlens",
	Short: "GreenLens sustainability dashboard backend",
	Long: `GreenLens serves the sustainability dashboard: carbon footprint
estimates, ESG scoring, packaging suggestions and eco product
recommendations.

Available subcommands:
  serve     - Run the HTTP API (default)
  recommend - Filter the product catalog and print the result as JSON`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recommendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

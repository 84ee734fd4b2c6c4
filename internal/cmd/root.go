package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront - demo e-commerce backend",
	Long: `Storefront is a self-contained e-commerce backend with an in-memory
product catalog, a live shopping cart and a local persistent store for the
signed-in user and order history.

Run it as a server to expose the REST API, or use the CLI commands to
inspect and reset the local store.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

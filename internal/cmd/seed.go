package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/storefront/internal/config"
	"github.com/matthieukhl/storefront/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the local store to a clean demo state",
	Long: `Clear the persisted session and order history so the app starts
from a fresh anonymous state with an empty order list. The product catalog
is built in and unaffected.`,
	RunE: seedStore,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seedStore(cmd *cobra.Command, args []string) error {
	fmt.Println("🧹 Resetting local store...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	kv, err := store.Open(&cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer kv.Close()

	if err := kv.Delete(store.KeyUser); err != nil {
		return fmt.Errorf("failed to clear user: %w", err)
	}
	if err := kv.Delete(store.KeyOrders); err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}

	fmt.Println("✅ Store reset: anonymous session, empty order history")
	fmt.Println("💡 Sign in with demo@example.com / password123")
	return nil
}

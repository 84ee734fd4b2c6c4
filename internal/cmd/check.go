package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/storefront/internal/config"
	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/store"
)

var showItems bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the local store contents",
	Long: `Inspect the local persistent store: which user is signed in and how
many orders have been placed. This helps verify that sessions and order
history survive restarts.`,
	RunE: checkStore,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&showItems, "show-items", false, "Show the line items of each order")
}

func checkStore(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	kv, err := store.Open(&cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer kv.Close()

	fmt.Printf("🔍 Checking store at %s...\n\n", cfg.Store.Path)

	raw, ok, err := kv.Get(store.KeyUser)
	if err != nil {
		return fmt.Errorf("failed to read user: %w", err)
	}
	if !ok {
		fmt.Println("👤 No user signed in")
	} else {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			fmt.Println("⚠️  Stored user is corrupt and will be ignored on startup")
		} else {
			fmt.Printf("👤 Signed in: %s <%s>\n", user.Name, user.Email)
		}
	}

	raw, ok, err = kv.Get(store.KeyOrders)
	if err != nil {
		return fmt.Errorf("failed to read orders: %w", err)
	}
	if !ok {
		fmt.Println("📭 No orders placed yet")
		return nil
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		fmt.Println("⚠️  Stored order history is corrupt and will be ignored on startup")
		return nil
	}

	fmt.Printf("📋 %d order(s) in history:\n", len(orders))
	for _, o := range orders {
		fmt.Printf("   %s  %s  $%s  (%s)\n",
			o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Total.StringFixed(2), o.DisplayStatus())
		if showItems {
			for _, item := range o.Items {
				fmt.Printf("      %dx %s @ $%s\n",
					item.Quantity, item.Product.Name, item.Product.Price.StringFixed(2))
			}
		}
	}

	return nil
}

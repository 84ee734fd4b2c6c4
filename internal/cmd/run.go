package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matthieukhl/storefront/internal/auth"
	"github.com/matthieukhl/storefront/internal/cart"
	"github.com/matthieukhl/storefront/internal/catalog"
	"github.com/matthieukhl/storefront/internal/checkout"
	"github.com/matthieukhl/storefront/internal/config"
	"github.com/matthieukhl/storefront/internal/pricing"
	"github.com/matthieukhl/storefront/internal/server"
	"github.com/matthieukhl/storefront/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Storefront server",
	Long: `Start the Storefront server which provides:
- REST API for catalog browsing, cart, checkout and order history
- Demo authentication with a persisted session
- A local store that survives restarts`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🛒 Storefront Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	fmt.Println("🔌 Opening local store...")
	kv, err := store.Open(&cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer kv.Close()

	rule, err := pricing.FromConfig(&cfg.Pricing)
	if err != nil {
		return fmt.Errorf("invalid pricing config: %w", err)
	}

	cat := catalog.NewDemo()
	shoppingCart := cart.New()

	session := auth.NewSession(kv, &cfg.Auth, cfg.Latency.Auth, logger)
	session.Hydrate()

	materializer := checkout.NewMaterializer(shoppingCart, session, rule, kv, cfg.Latency.Checkout, logger)

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(cat, shoppingCart, session, materializer, rule, kv, logger)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-backend/internal/interfaces/http"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Product catalog: seeded in-memory by default, postgres when configured
	catalogRepo, cleanup, err := buildCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to set up catalog: %v", err)
	}
	defer cleanup()

	// Cart store: process memory by default, redis sessions when configured
	var redisClient *goredis.Client
	var cartStore cart.Store = cart.NewMemoryStore()
	if cfg.Cart.Driver == "redis" {
		conn, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		redisClient = conn.GetClient()
		cartStore = cart.NewRedisStore(redisClient, cfg.Cart.SessionTTL)
	}

	members, err := seedMembers(cfg)
	if err != nil {
		log.Fatalf("Failed to seed member accounts: %v", err)
	}

	carts := cart.NewService(cartStore, catalogRepo, cart.PricingRules{
		ShippingFee:            cfg.Pricing.ShippingFee,
		ShippingFeeExemptLimit: cfg.Pricing.ShippingFeeExemptLimit,
	})
	orders := order.NewService(carts, members)

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, routes.Services{
		Catalog: catalogRepo,
		Members: members,
		Carts:   carts,
		Orders:  orders,
	}, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

// buildCatalog selects the configured catalog source and returns it along
// with its cleanup function.
func buildCatalog(cfg *config.Config) (catalog.Repository, func(), error) {
	if cfg.Catalog.Driver != "postgres" {
		return catalog.NewMemoryRepository(catalog.SeedProducts()), func() {}, nil
	}

	db, err := postgres.NewConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Health(); err != nil {
		db.Close()
		return nil, nil, err
	}

	migration := postgres.NewMigration(db.GetDB())
	if err := migration.RunAutoMigrations(); err != nil {
		db.Close()
		return nil, nil, err
	}

	// Seed initial data in development
	if cfg.IsDevelopment() {
		if err := migration.SeedInitialData(); err != nil {
			log.Printf("Warning: Data seeding failed: %v", err)
		}
	}

	return catalog.NewGormRepository(db.GetDB()), func() { db.Close() }, nil
}

// seedMembers creates the development shopper accounts. The cumulative
// purchase amounts put the two accounts in different rank tiers.
func seedMembers(cfg *config.Config) (*member.Service, error) {
	type account struct {
		username   string
		password   string
		cumulative int64
	}

	accounts := []account{
		{username: envOr("MEMBER_USERNAME_1", "jude"), password: envOr("MEMBER_PASSWORD_1", "jude-password"), cumulative: 0},
		{username: envOr("MEMBER_USERNAME_2", "ruby"), password: envOr("MEMBER_PASSWORD_2", "ruby-password"), cumulative: 12_000_000},
	}

	seed := make([]member.Member, 0, len(accounts))
	for i, a := range accounts {
		hash, err := member.HashPassword(a.password, cfg.Security.BcryptCost)
		if err != nil {
			return nil, err
		}
		seed = append(seed, member.Member{
			ID:                       uint(i + 1),
			Username:                 a.username,
			PasswordHash:             hash,
			CumulativePurchaseAmount: a.cumulative,
		})
	}

	return member.NewService(seed), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oakline/storefront/internal/api/handlers"
	"github.com/oakline/storefront/internal/api/middleware"
	"github.com/oakline/storefront/internal/cache"
	"github.com/oakline/storefront/internal/cart"
	"github.com/oakline/storefront/internal/config"
	"github.com/oakline/storefront/internal/health"
	"github.com/oakline/storefront/internal/metrics"
	service "github.com/oakline/storefront/internal/services"
	"github.com/oakline/storefront/internal/storage"
	"github.com/redis/go-redis/v9"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Durable cart storage (the per-browser store)
	cartStorage, err := storage.NewFileStore(cfg.Cart.StoragePath)
	if err != nil {
		slog.Error("Error opening cart storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Session-scoped mirror for orders
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Addr,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})
	sessionCache := cache.NewRedisCache(redisClient, &cfg.SessionCache)

	defer func() {
		if err := sessionCache.Close(); err != nil {
			slog.Error("Error closing session cache", slog.String("error", err.Error()))
		}
	}()

	// Cart store: hydrates from the last snapshot, persists debounced
	cartStore := cart.NewStore(cartStorage,
		cart.WithStorageKey(cfg.Cart.StorageKey),
		cart.WithThrottleWindow(cfg.Cart.ThrottleWindow),
	)

	simPolicy := service.NewSimulationPolicy(&cfg.Simulation)

	catalogService := service.NewCatalogService(simPolicy)
	productHandler := handlers.NewProductHandler(catalogService)
	orderStore := service.NewOrderStore(sessionCache, cfg.SessionCache.DefaultTTL)
	orderService := service.NewOrderService(orderStore, simPolicy, &cfg.Shipping)
	orderHandler := handlers.NewOrderHandler(orderService, cartStore)
	cartHandler := handlers.NewCartHandler(cartStore)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{CartStorage: cartStorage})
	if err != nil {
		slog.Error("Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{slug}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/cart/items/{id}/save", cartHandler.SaveForLater())
	routerMux.HandleFunc("POST /api/v1/cart/saved/{id}/move", cartHandler.MoveToCart())
	routerMux.HandleFunc("DELETE /api/v1/cart/saved/{id}", cartHandler.RemoveSaved())
	routerMux.HandleFunc("POST /api/v1/checkout", orderHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	// Flush the cart once on the way out; a pending debounced write would
	// otherwise be lost.
	if err := cartStore.Close(); err != nil {
		slog.Error("Error flushing cart state", slog.String("error", err.Error()))
	}
}

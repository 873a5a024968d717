package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/handler"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/service"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// 2. Setup Database
	ctx := context.Background()
	if err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	dbPool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()
	log.Info().Msg("connected to database")

	// 3. Setup Logic
	userRepo := repository.NewUserRepository(dbPool, cfg.DBTimeout)
	productRepo := repository.NewProductRepository(dbPool, cfg.DBTimeout)
	orderRepo := repository.NewOrderRepository(dbPool, cfg.DBTimeout)

	issuer := auth.NewIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, issuer)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)

	h := handler.NewHandler(
		handler.NewAuthHandler(authService, log),
		handler.NewProductHandler(productService, log),
		handler.NewOrderHandler(orderService, log),
	)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}

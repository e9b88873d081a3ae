// Package main is the entry point for the BizTime API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"biztime/internal/domain/company"
	"biztime/internal/domain/industry"
	"biztime/internal/domain/invoice"
	v1 "biztime/internal/infrastructure/http/v1"
	"biztime/internal/infrastructure/storage/postgres"
	"biztime/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting biztime server")

	dsn := mustEnv("DATABASE_URL")

	if err := postgres.RunMigrations(dsn, getEnv("MIGRATIONS_DIR", "db/migrations")); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}
	log.Info("database schema up to date")

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	companyService := company.NewService(postgres.NewCompanyRepo(txManager))
	invoiceService := invoice.NewService(postgres.NewInvoiceRepo(txManager), txManager)
	industryService := industry.NewService(postgres.NewIndustryRepo(txManager), txManager)

	router := v1.NewRouter(v1.RouterConfig{
		Logger:          log,
		Pool:            pool,
		CompanyService:  companyService,
		InvoiceService:  invoiceService,
		IndustryService: industryService,
	})

	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

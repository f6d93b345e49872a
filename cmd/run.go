package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"cashflow/config"
	"cashflow/database"
	"cashflow/repository"
	"cashflow/server"
	"cashflow/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting cashflow service...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	ruleRepo := repository.NewRecurringRuleRepository(db)
	fundingRepo := repository.NewGoalFundingRuleRepository(db)
	familyRepo := repository.NewFamilyRepository(db)

	// Initialize services
	cashflowService := service.NewCashflowService(accountRepo, ruleRepo, fundingRepo, familyRepo, cfg.DefaultCurrency)

	// Initialize HTTP server
	srv := server.New(server.Config{
		Addr:                  cfg.HTTPAddr,
		DefaultProjectionDays: cfg.DefaultProjectionDays,
		MaxProjectionDays:     cfg.MaxProjectionDays,
	}, cashflowService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	log.Printf("Service is running in %s mode...", cfg.Environment)

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	log.Println("Shutdown complete")
	return nil
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lazarus_guide/internal/adapter/persistence/repository"
	"lazarus_guide/internal/config"
	"lazarus_guide/internal/infrastructure/database"
	"lazarus_guide/internal/mcp"
	"lazarus_guide/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
)

// guides-mcp serves the analytics tools over stdio for MCP clients.
func main() {
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Get()

	db := database.ConnectMySQLWithRetry(cfg.DB)
	guideRepo := repository.NewGuideGormRepository(db)
	analytics := usecase.NewAnalyticsUseCase(guideRepo, cfg.DefaultHospitalID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(analytics)
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("mcp server stopped: %v", err)
	}
}

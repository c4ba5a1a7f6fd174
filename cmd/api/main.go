package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"engclin_tse/internal/adapter/http/routes"
	"engclin_tse/internal/infrastructure/config"
	"engclin_tse/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           EngClin TSE API
// @version         1.0
// @description     Electrical safety test (TSE) executions, traceability and certificates.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Tenant
// @in header
// @name X-Tenant-ID
// @description Tenant identifier; every business route is scoped to it.

func main() {
	os.Exit(run())
}

// run returns the process exit code once every deferred cleanup has run.
func run() int {
	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat, config.ServiceName)
	if err != nil {
		log.Printf("failed to build logger: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped", zap.Error(err))
		return 1
	}
	logger.Info("service stopped")
	return 0
}

package routes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "engclin_tse/docs"
	"engclin_tse/internal/adapter/http/handlers"
	"engclin_tse/internal/adapter/http/middleware"
	"engclin_tse/internal/adapter/persistence/registry"
	"engclin_tse/internal/adapter/persistence/repository"
	"engclin_tse/internal/infrastructure/assets"
	"engclin_tse/internal/infrastructure/cache"
	"engclin_tse/internal/infrastructure/config"
	"engclin_tse/internal/infrastructure/database"
	"engclin_tse/internal/infrastructure/rendering"
	"engclin_tse/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router serves.
type Handlers struct {
	Profile     *handlers.ProfileHandler
	Standard    *handlers.StandardHandler
	Execution   *handlers.ExecutionHandler
	Certificate *handlers.CertificateHandler
}

// Run wires the service and blocks serving HTTP.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	h, closeFn, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           NewRouter(h, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("http server starting",
		zap.String("port", cfg.HTTPPort),
		zap.String("profiles_table", cfg.TestProfilesTable),
		zap.String("standards_table", cfg.StandardsTable),
		zap.String("executions_table", cfg.TestExecutionsTable),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with middlewares and all routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	tenant := v1.Group("", middleware.RequireTenant())
	addProfileRoutes(tenant, h.Profile)
	addStandardRoutes(tenant, h.Standard)
	addExecutionRoutes(tenant, h.Execution, h.Certificate)
	addOrderRoutes(tenant, h.Execution, h.Certificate)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) (Handlers, func(), error) {
	ddb, err := database.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, err
	}
	db, err := database.OpenRegistry(ctx, cfg.RegistryDatabaseURL)
	if err != nil {
		return Handlers{}, nil, err
	}

	profileRepo := repository.NewTestProfileDynamoRepository(ddb, cfg.TestProfilesTable)
	standardRepo := repository.NewStandardDynamoRepository(ddb, cfg.StandardsTable)
	executionRepo := repository.NewTestExecutionDynamoRepository(ddb, cfg.TestExecutionsTable)
	registryRepo := registry.NewPostgresRegistry(db, logger.Named("registry"))

	profileUseCase := usecase.NewProfileUseCase(profileRepo, logger.Named("profiles"))
	standardUseCase := usecase.NewStandardUseCase(standardRepo, logger.Named("standards"))
	executionUseCase := usecase.NewExecutionUseCase(executionRepo, profileRepo, registryRepo, standardUseCase, logger.Named("executions"))
	certificateUseCase := usecase.NewCertificateUseCase(
		executionUseCase,
		profileRepo,
		registryRepo,
		cache.NewTenantConfigCache(cfg.TenantCacheSize, cfg.TenantCacheTTL),
		assets.NewLogoFetcher(cfg.LogoFetchTimeout, logger.Named("assets")),
		rendering.NewExcelCertificateRenderer(logger.Named("rendering")),
		logger.Named("certificates"),
	)

	h := Handlers{
		Profile:     handlers.NewProfileHandler(profileUseCase),
		Standard:    handlers.NewStandardHandler(standardUseCase),
		Execution:   handlers.NewExecutionHandler(executionUseCase),
		Certificate: handlers.NewCertificateHandler(certificateUseCase),
	}
	return h, closeDB(db, logger), nil
}

func closeDB(db *sql.DB, logger *zap.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("registry close failed", zap.Error(err))
		}
	}
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics())
}

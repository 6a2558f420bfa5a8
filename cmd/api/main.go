package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/armahcreates/iwil/internal/api/http"
	"github.com/armahcreates/iwil/internal/api/http/handlers"
	"github.com/armahcreates/iwil/internal/config"
	"github.com/armahcreates/iwil/internal/events"
	"github.com/armahcreates/iwil/internal/observability"
	"github.com/armahcreates/iwil/internal/persistence"
	"github.com/armahcreates/iwil/internal/rate"
	"github.com/armahcreates/iwil/internal/repository"
	"github.com/armahcreates/iwil/internal/service"
	"github.com/armahcreates/iwil/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		pg         *persistence.Postgres
		staffRepo  repository.StaffRepository
		clientRepo repository.ClientRepository
		reportRepo repository.ReportRepository
	)
	if cfg.Postgres.DSN != "" {
		pg, err = persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}

		pool := pg.PoolHandle()
		staffRepo = repository.NewStaffRepository(pool)
		clientRepo = repository.NewClientRepository(pool)
		reportRepo = repository.NewReportRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set; running in single-instance demo mode with in-memory stores")
		staffRepo = repository.NewMemoryStaffRepository()
		clientRepo = repository.NewMemoryClientRepository()
		reportRepo = repository.NewMemoryReportRepository()
	}

	var (
		redis        *persistence.Redis
		loginLimiter rate.Limiter
	)
	if cfg.Redis.Addr != "" {
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		loginLimiter = rate.NewRedisLimiter(redis.Client, "rl:login:", cfg.Rate.LoginMaxAttempts, cfg.Rate.LoginWindow())
	} else {
		loginLimiter = rate.NewMemoryLimiter(cfg.Rate.LoginMaxAttempts, cfg.Rate.LoginWindow())
	}

	metrics := observability.NewMetrics(nil)

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger.Named("audit"))
	worker.StartAuditWorker(auditService)

	authService := service.NewAuthService(cfg.Auth, staffRepo, dispatcher)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:    handlers.NewAuthHandler(authService, loginLimiter, metrics, logger),
		Session: handlers.NewSessionHandler(authService),
		Clients: handlers.NewClientsHandler(clientRepo),
		Reports: handlers.NewReportsHandler(reportRepo),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

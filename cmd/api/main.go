package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/portfolio-service/internal/api/http"
	"github.com/spec-kit/portfolio-service/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/bootstrap"
	"github.com/spec-kit/portfolio-service/internal/config"
	"github.com/spec-kit/portfolio-service/internal/events"
	"github.com/spec-kit/portfolio-service/internal/observability"
	"github.com/spec-kit/portfolio-service/internal/persistence"
	"github.com/spec-kit/portfolio-service/internal/repository"
	"github.com/spec-kit/portfolio-service/internal/service"
	"github.com/spec-kit/portfolio-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewAdminUserRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	skillRepo := repository.NewSkillRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	experienceRepo := repository.NewExperienceRepository(pool)
	educationRepo := repository.NewEducationRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	authService := service.NewAuthService(*cfg, userRepo, dispatcher, logger)
	portfolioService := service.NewPortfolioService(service.PortfolioDependencies{
		ProfileRepo:    profileRepo,
		SkillRepo:      skillRepo,
		ProjectRepo:    projectRepo,
		ExperienceRepo: experienceRepo,
		EducationRepo:  educationRepo,
	}, redis, cfg.Seed.CacheTTL(), dispatcher, logger)

	importer := bootstrap.NewResumeImporter(bootstrap.ResumeDependencies{
		ProfileRepo:    profileRepo,
		SkillRepo:      skillRepo,
		ProjectRepo:    projectRepo,
		ExperienceRepo: experienceRepo,
		EducationRepo:  educationRepo,
	}, cfg.Seed.File, dispatcher, logger)

	if pool != nil {
		if err := bootstrap.EnsureAdmin(ctx, cfg.Auth, userRepo, logger); err != nil {
			logger.Fatal("failed to provision admin account", zap.Error(err))
		}
		if cfg.Seed.ImportOnStart {
			if err := importer.ImportIfEmpty(ctx); err != nil {
				logger.Fatal("failed to import resume data", zap.Error(err))
			}
		}
	}

	gate := auth.NewGate(authService.TokenManager(), logger)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:      handlers.NewAuthHandler(authService),
		Portfolio: handlers.NewPortfolioHandler(portfolioService),
		Admin:     handlers.NewAdminHandler(importer, portfolioService),
		Gate:      gate,
	})

	go func() {
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

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	httptransport "github.com/neogig/neogig/internal/api/http"
	"github.com/neogig/neogig/internal/api/http/handlers"
	"github.com/neogig/neogig/internal/auth"
	"github.com/neogig/neogig/internal/cache"
	"github.com/neogig/neogig/internal/config"
	"github.com/neogig/neogig/internal/events"
	"github.com/neogig/neogig/internal/observability"
	"github.com/neogig/neogig/internal/persistence"
	"github.com/neogig/neogig/internal/repository"
	"github.com/neogig/neogig/internal/service"
	"github.com/neogig/neogig/internal/worker"
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

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	seekerRepo := repository.NewSeekerRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	savedJobRepo := repository.NewSavedJobRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	listCache := cache.New(redis.Client)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		AccountRepo: accountRepo,
		SeekerRepo:  seekerRepo,
		CompanyRepo: companyRepo,
	})
	profileService := service.NewProfileService(seekerRepo, companyRepo)
	jobService := service.NewJobService(service.JobDependencies{
		JobRepo:     jobRepo,
		CompanyRepo: companyRepo,
		Dispatcher:  dispatcher,
		ListCache:   listCache,
		ListTTL:     cfg.Cache.JobListTTL(),
		Logger:      logger,
	})
	applicationService := service.NewApplicationService(service.ApplicationDependencies{
		ApplicationRepo: applicationRepo,
		JobRepo:         jobRepo,
		SeekerRepo:      seekerRepo,
		CompanyRepo:     companyRepo,
		Dispatcher:      dispatcher,
	})
	savedJobService := service.NewSavedJobService(savedJobRepo, seekerRepo, jobRepo)
	questionService := service.NewQuestionService(service.QuestionDependencies{
		QuestionRepo: questionRepo,
		JobRepo:      jobRepo,
		SeekerRepo:   seekerRepo,
		CompanyRepo:  companyRepo,
		Dispatcher:   dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	deriver := auth.NewContextDeriver(authService.TokenService(), logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Profiles:       handlers.NewProfilesHandler(profileService),
		Jobs:           handlers.NewJobsHandler(jobService, questionService, savedJobService),
		Applications:   handlers.NewApplicationsHandler(applicationService),
		SavedJobs:      handlers.NewSavedJobsHandler(savedJobService),
		Questions:      handlers.NewQuestionsHandler(questionService),
		ContextDeriver: deriver,
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

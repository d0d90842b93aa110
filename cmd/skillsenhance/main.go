package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/skillsenhance/skillsenhance/internal/app"
	"github.com/skillsenhance/skillsenhance/internal/approvals"
	"github.com/skillsenhance/skillsenhance/internal/auth"
	"github.com/skillsenhance/skillsenhance/internal/authz"
	"github.com/skillsenhance/skillsenhance/internal/content"
	"github.com/skillsenhance/skillsenhance/internal/navbar"
	"github.com/skillsenhance/skillsenhance/internal/observability"
	"github.com/skillsenhance/skillsenhance/internal/platform/cache"
	"github.com/skillsenhance/skillsenhance/internal/roles"
	"github.com/skillsenhance/skillsenhance/internal/shared"
	"github.com/skillsenhance/skillsenhance/internal/support"
	"github.com/skillsenhance/skillsenhance/internal/users"
	"github.com/skillsenhance/skillsenhance/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, redisAddr, err := connectRedis(ctx, cfg)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()
	logger.Info("redis ready", slog.String("addr", redisAddr), slog.Bool("embedded", cfg.RedisEmbedded))

	sessionManager := shared.NewSessionManager(redisClient, cfg.SessionCookie, cfg.SessionTTL, cfg.IsProduction())

	authzStore := authz.NewStore()
	navbarStore := navbar.NewStore()
	contentStore := content.NewStore()
	approvalsStore := approvals.NewStore(contentStore)
	supportStore := support.NewStore()
	if cfg.SeedDemoData {
		authzStore.SeedDemoUsers()
		contentStore.SeedDemoContent()
		approvalsStore.SeedDemoRequests()
		supportStore.SeedDemoTickets()
		logger.Info("demo data seeded")
	}

	guard := authz.Middleware{Store: authzStore, Logger: logger}

	authHandler := auth.NewHandler(logger, authzStore, sessionManager)
	rolesHandler := roles.NewHandler(logger, authzStore, guard)
	usersHandler := users.NewHandler(logger, authzStore, guard)
	navbarHandler := navbar.NewHandler(logger, navbarStore)
	contentHandler := content.NewHandler(logger, contentStore, approvalsStore, authzStore, guard)
	approvalsHandler := approvals.NewHandler(logger, approvalsStore, authzStore, guard)
	supportHandler := support.NewHandler(logger, supportStore, authzStore, guard)
	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		SessionManager:   sessionManager,
		AuthHandler:      authHandler,
		RolesHandler:     rolesHandler,
		UsersHandler:     usersHandler,
		NavbarHandler:    navbarHandler,
		ContentHandler:   contentHandler,
		ApprovalsHandler: approvalsHandler,
		SupportHandler:   supportHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	// The stores live in this process, so the background worker runs here
	// too instead of in a separate binary.
	sweepTask, err := jobs.NewTicketAutoCloseTask(jobs.TicketAutoClosePayload{OlderThanHours: 72})
	if err != nil {
		logger.Error("build ticket sweep task", slog.Any("error", err))
		os.Exit(1)
	}
	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: redisAddr},
		Logger:    logger,
		Deps: jobs.TaskDeps{
			Tickets:   supportStore,
			Approvals: approvalsStore,
			Logger:    logger,
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 * * * *", Task: sweepTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "0 9 * * *", Task: jobs.NewApprovalReminderTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	// Sweep once at boot so a restart does not wait for the hourly cron;
	// the scheduler takes over from there.
	queue := jobs.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer func() {
		if err := queue.Close(); err != nil {
			logger.Warn("queue close", slog.Any("error", err))
		}
	}()
	if _, err := queue.EnqueueTicketAutoClose(ctx, jobs.TicketAutoClosePayload{OlderThanHours: 72}); err != nil {
		logger.Warn("enqueue startup sweep", slog.Any("error", err))
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := worker.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server exit", slog.Any("error", err))
		os.Exit(1)
	}
}

func connectRedis(ctx context.Context, cfg *app.Config) (*redis.Client, string, error) {
	if cfg.RedisEmbedded {
		return cache.NewEmbedded(ctx)
	}
	c, err := cache.New(ctx, cfg.RedisAddr)
	return c, cfg.RedisAddr, err
}

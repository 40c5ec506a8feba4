package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sitepulse/sitepulse/internal/api/handler"
	"github.com/sitepulse/sitepulse/internal/api/routes"
	"github.com/sitepulse/sitepulse/internal/config"
	"github.com/sitepulse/sitepulse/internal/events"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/notifier"
	"github.com/sitepulse/sitepulse/internal/probe"
	"github.com/sitepulse/sitepulse/internal/repository"
	"github.com/sitepulse/sitepulse/internal/scheduler"
	"github.com/sitepulse/sitepulse/internal/service"
	"github.com/sitepulse/sitepulse/internal/tracker"
	"github.com/sitepulse/sitepulse/pkg/infra"
	"github.com/sitepulse/sitepulse/pkg/logger"
	"github.com/sitepulse/sitepulse/pkg/mail"
	"github.com/sitepulse/sitepulse/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	sink, err := logger.NewFileSink("./log/sitepulse.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, sink).With(zap.String("service.name", "sitepulse"))
	defer zapLogger.Sync()
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			<-hup
			zapLogger.Info("receive logrotate SIGHUP, reopening log file")
			if e := sink.Reopen(); e != nil {
				zapLogger.Error("failed to reopen log file", zap.Error(e))
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
		SSLMode:  appConfig.Postgres.SSLMode,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	if err = db.AutoMigrate(
		&model.MonitorGroup{},
		&model.Monitor{},
		&model.CheckResult{},
		&model.SSLInfo{},
		&model.Notification{},
		&model.Subscription{},
	); err != nil {
		zapLogger.Fatal("failed to run migrations", zap.Error(err))
	}

	// set up repositories
	var monitorRepo repository.MonitorRepository = repository.NewMonitorRepository(db)
	if appConfig.Redis.Addr != "" {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Addr:     appConfig.Redis.Addr,
			Password: appConfig.Redis.Password,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		defer redisClient.Close()
		zapLogger.Info("connected to redis successfully")
		monitorRepo = repository.NewCachedMonitorRepository(redisClient, monitorRepo, appConfig.Redis.CacheTTL)
	}
	historyRepo := repository.NewHistoryRepository(db)
	sslRepo := repository.NewSSLRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	// set up check pipeline
	bus := events.NewBus(zapLogger, appConfig.Notify.SubscriberBufferSize)
	stateTracker := tracker.NewTracker(tracker.Config{
		DebounceSeconds: appConfig.Notify.DebounceSeconds,
		FlapThreshold:   appConfig.Notify.FlapThreshold,
		FlapWindow:      appConfig.Notify.FlapWindow,
	}, zapLogger)
	historyWriter := scheduler.NewHistoryWriter(zapLogger, historyRepo,
		appConfig.Scheduler.HistoryQueueSize, appConfig.Scheduler.HistoryWriteRetries, 200*time.Millisecond)
	historyWriter.Start()
	checkScheduler := scheduler.NewScheduler(
		zapLogger,
		scheduler.Config{
			DefaultIntervalSeconds: appConfig.Scheduler.DefaultIntervalSeconds,
			MinIntervalSeconds:     appConfig.Scheduler.MinIntervalSeconds,
			MaxProbeTimeout:        appConfig.Scheduler.MaxProbeTimeout,
			CooldownMinutes:        appConfig.Notify.CooldownMinutes,
			SSLAlertBeforeDays:     appConfig.Notify.SSLAlertBeforeDays,
		},
		monitorRepo,
		sslRepo,
		notificationRepo,
		historyWriter,
		stateTracker,
		bus,
		probe.NewExecutor(appConfig.Scheduler.MaxProbeTimeout),
		probe.NewInspector(10*time.Second),
	)
	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err = checkScheduler.Start(startCtx); err != nil {
		startCancel()
		zapLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	startCancel()

	// set up notification dispatcher
	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	dispatcher := notifier.NewDispatcher(zapLogger, notifier.Config{
		Enabled:            appConfig.Notify.Enabled,
		Events:             appConfig.Notify.Events,
		SendRetries:        appConfig.Notify.SendRetries,
		SendInitialBackoff: appConfig.Notify.SendInitialBackoff,
		AdminEmail:         appConfig.Mail.AdminMailAddress,
		SiteName:           appConfig.Server.SiteName,
	}, subscriptionRepo, mailSender, bus)
	dispatcherCtx, dispatcherCancel := context.WithCancel(context.Background())
	go dispatcher.Run(dispatcherCtx)

	// set up services and handlers
	monitorService := service.NewMonitorService(monitorRepo, historyRepo, sslRepo, checkScheduler,
		appConfig.Scheduler.MinIntervalSeconds, appConfig.Scheduler.DefaultIntervalSeconds)
	groupService := service.NewGroupService(groupRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, monitorRepo, mailSender,
		appConfig.Server.PublicURL, appConfig.Server.SiteName, appConfig.Notify.VerificationTokenTTL)
	notificationService := service.NewNotificationService(notificationRepo, mailSender,
		appConfig.Mail.AdminMailAddress, appConfig.Server.SiteName)

	handlerLogger := handler.NewLogger(zapLogger)
	monitorHandler := handler.NewMonitorHandler(handlerLogger, monitorService)
	groupHandler := handler.NewGroupHandler(handlerLogger, groupService)
	subscriptionHandler := handler.NewSubscriptionHandler(handlerLogger, subscriptionService)
	notificationHandler := handler.NewNotificationHandler(handlerLogger, notificationService)
	eventsHandler := handler.NewEventsHandler(zapLogger, bus)

	m := middleware.NewAuthMiddleware(appConfig.Server.AdminToken)

	// daily maintenance: retention prune and certificate sweep
	cronJob := cron.New()
	_, err = cronJob.AddFunc("0 4 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		deleted, e := historyRepo.Prune(ctx, appConfig.Scheduler.RetentionDays)
		if e != nil {
			zapLogger.Error("failed to prune old results", zap.Error(e))
		} else {
			zapLogger.Info("pruned old results", zap.Int64("deleted", deleted))
		}
		checkScheduler.RunSSLSweep(ctx)
	})
	if err != nil {
		zapLogger.Fatal("failed to create daily maintenance cron job", zap.Error(err))
	}
	cronJob.Start()

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(middleware.CORS())

	routes.AddMonitorRoutes(r, monitorHandler, m)
	routes.AddGroupRoutes(r, groupHandler, m)
	routes.AddSubscriptionRoutes(r, subscriptionHandler, m)
	routes.AddNotificationRoutes(r, notificationHandler, m)
	routes.AddEventRoutes(r, eventsHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	cronJob.Stop()
	checkScheduler.Stop()
	bus.Close()
	dispatcherCancel()
	historyWriter.Stop()
	zapLogger.Info("server exiting")
}

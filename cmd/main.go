package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SergeyBogomolovv/transport-sync/docs"
	"github.com/SergeyBogomolovv/transport-sync/internal/app"
	"github.com/SergeyBogomolovv/transport-sync/internal/config"
	"github.com/SergeyBogomolovv/transport-sync/internal/dispatch"
	"github.com/SergeyBogomolovv/transport-sync/internal/gateway"
	"github.com/SergeyBogomolovv/transport-sync/internal/handler"
	"github.com/SergeyBogomolovv/transport-sync/internal/jobs"
	"github.com/SergeyBogomolovv/transport-sync/internal/postgres"
	"github.com/SergeyBogomolovv/transport-sync/internal/repo"
	"github.com/SergeyBogomolovv/transport-sync/internal/service"
	"github.com/SergeyBogomolovv/transport-sync/internal/tracing"
	"github.com/SergeyBogomolovv/transport-sync/pkg/cache"
	"github.com/SergeyBogomolovv/transport-sync/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Transport Sync API
// @version         1.0
// @description     Shipment creation and transport status of shop orders
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	shipping, err := config.LoadShippingMethod(conf.ShippingConfigPath)
	panicIfErr("invalid shipping method settings", err)

	tp, err := tracing.New(conf.Tracing)
	panicIfErr("failed to init tracing", err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("failed to shutdown tracing", slog.Any("error", err))
		}
	}()

	panicIfErr("failed to migrate db", postgres.Migrate(logger, conf.Postgres))

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	pgRepo := repo.NewPostgresRepo(db)
	jobStore := repo.NewJobStore(db)
	txManager := trm.NewManager(db)
	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	provider := gateway.New(logger, conf.Provider)
	publisher := handler.NewStatusPublisher(logger, conf.Kafka)

	scheduler := jobs.New(logger, jobStore, jobs.Options{
		PollInterval: conf.Reconcile.PollInterval,
		Workers:      conf.Reconcile.Workers,
		BatchSize:    conf.Reconcile.BatchSize,
	})

	orderService := service.NewOrderService(logger, txManager, pgRepo)
	transportService := service.NewTransportService(
		logger,
		txManager,
		pgRepo,
		pgRepo,
		provider,
		scheduler,
		publisher,
		cache,
		shipping,
		conf.Reconcile,
	)
	scheduler.Register(service.HookTransportStatus, transportService.HandleJob)

	dispatcher := dispatch.New(logger, transportService, shipping.ShippingClasses)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService, transportService, dispatcher)
	httpHandler := handler.NewHTTPHandler(logger, transportService, dispatcher)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(cache, scheduler)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

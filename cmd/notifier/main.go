package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"breaking_news/internal/config"
	"breaking_news/internal/metrics"
	"breaking_news/internal/publisher"
	"breaking_news/internal/scheduler"
	"breaking_news/internal/service"
	"breaking_news/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run the pipeline once and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := run(ctx, cfg, logger, *once); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("notifier stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, once bool) error {
	if !cfg.Database.SkipMigrate {
		if err := postgres.Migrate(cfg.Database.URL()); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	logger.Info("connected to database")

	sender, closeSender, err := newSender(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSender()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	articleStore := postgres.NewArticleStore(db)
	userStore := postgres.NewUserStore(db)
	queueStore := postgres.NewQueueStore(db)
	runStateStore := postgres.NewRunStateStore(db)

	reportQueueDepth(ctx, queueStore, logger)

	selector := service.NewSelector(userStore, articleStore, queueStore, m, logger, cfg.Pipeline)
	dispatcher := service.NewDispatcher(articleStore, queueStore, sender, m, logger, cfg.Pipeline)
	pipeline := service.NewPipeline(dispatcher, selector, runStateStore, logger, cfg.Pipeline)

	if once {
		start := time.Now()
		_, err := pipeline.Run(ctx)
		m.RunFinished(err, time.Since(start))
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           metricsHandler(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("metrics server listening", "addr", cfg.Metrics.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting breaking news notifier",
		"sender", cfg.Sender,
		"schedule", cfg.Pipeline.Schedule,
		"user_page_size", cfg.Pipeline.UserPageSize,
		"queue_page_size", cfg.Pipeline.QueuePageSize,
		"page_delay", cfg.Pipeline.PageDelay,
	)

	sched := scheduler.NewScheduler(pipeline, cfg.Pipeline.Schedule, cfg.Pipeline.RunTimeout, m, logger)
	return sched.Start(ctx)
}

type queueCounter interface {
	Count(ctx context.Context) (int, error)
}

// reportQueueDepth warns about items a previous process left behind.
func reportQueueDepth(ctx context.Context, queue queueCounter, logger *slog.Logger) {
	depth, err := queue.Count(ctx)
	switch {
	case err != nil:
		logger.Warn("failed to count queued items at startup", "error", err)
	case depth > 0:
		logger.Warn("queue not empty at startup, will drain first", "items", depth)
	}
}

func newSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Sender, func(), error) {
	switch cfg.Sender {
	case config.SenderTelegram:
		tg, err := publisher.NewTelegram(publisher.TelegramConfig{
			Token:   cfg.Telegram.Token,
			APIURL:  cfg.Telegram.APIURL,
			Timeout: cfg.Telegram.Timeout,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return tg, func() {}, nil
	default:
		rabbitMQ, err := publisher.NewRabbitMQ(ctx, publisher.Config{
			URL:            cfg.RabbitMQ.URL,
			Exchange:       cfg.RabbitMQ.Exchange,
			RoutingKey:     cfg.RabbitMQ.RoutingKey,
			QueueName:      cfg.RabbitMQ.QueueName,
			ConnectRetries: cfg.RabbitMQ.ConnectRetries,
			RetryDelay:     cfg.RabbitMQ.RetryDelay,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return rabbitMQ, func() { _ = rabbitMQ.Close() }, nil
	}
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

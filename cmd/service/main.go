package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "shipping/internal/app"
	"shipping/internal/handlers/rest/healthcheck_head"
	"shipping/internal/handlers/rest/journey_get"
	"shipping/internal/handlers/rest/journey_post"
	"shipping/internal/handlers/rest/journey_status_post"
	"shipping/internal/handlers/rest/package_get"
	"shipping/internal/handlers/rest/package_history_get"
	"shipping/internal/handlers/rest/package_post"
	"shipping/internal/handlers/rest/package_status_post"
	"shipping/internal/handlers/rest/ping_get"
	"shipping/internal/handlers/rest/review_post"
	"shipping/internal/handlers/rest/vehicle_post"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/dotenv"
	"shipping/internal/pkg/grpchealth"
	"shipping/internal/pkg/kafka"
	metrics_system "shipping/internal/pkg/metrics"
	"shipping/internal/pkg/middlewares/auth"
	"shipping/internal/pkg/middlewares/graceful_shutdown"
	"shipping/internal/pkg/middlewares/metrics"
	"shipping/internal/pkg/middlewares/rate_limiter"
	"shipping/internal/pkg/middlewares/timeout"
	"shipping/internal/pkg/postgres"
	"shipping/internal/pkg/redis"
	"shipping/pkg/logger"
	"shipping/pkg/logger/zap_adapter"
	"shipping/pkg/token_bucket"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Logger.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("binary", "service"))

	mainLog.Info("starting shipping service")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	publicKey, err := auth.LoadPublicKey(cfg.Auth.JWTPublicKeyPath)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	authMiddleware := auth.Middleware(log, publicKey, auth.NewRedisRevocationList(redisClient, cfg.Auth.RevokedTokenPrefix))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, authMiddleware, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// grpc health
	grpcHealth := grpchealth.NewServer(log)
	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}

	grpcHealthErr := make(chan error, 1)
	go func() {
		defer close(grpcHealthErr)
		if err := grpcHealth.Serve(grpcListener); err != nil {
			grpcHealthErr <- err
		}
	}()
	grpcHealth.SetServing()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-grpcHealthErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof, кейс никогда не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	grpcHealth.SetNotServing()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	grpcHealth.GracefulStop()

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	pinger ping_get.Pinger,
	authMiddleware mux.MiddlewareFunc,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, pinger)).Methods("GET")

	// бизнес-маршруты только с bearer-токеном
	api := router.NewRoute().Subrouter()
	api.Use(authMiddleware)

	api.Handle("/vehicle", vehicle_post.New(log, app.ServiceVehicle)).Methods("POST")

	api.Handle("/journey", journey_post.New(log, app.ServiceJourney)).Methods("POST")
	api.Handle("/journey/{id:[0-9]+}", journey_get.New(log, app.ServiceJourney)).Methods("GET")
	api.Handle("/journey/{id:[0-9]+}/status", journey_status_post.New(log, app.ServiceJourney)).Methods("POST")

	api.Handle("/package", package_post.New(log, app.ServicePackage)).Methods("POST")
	api.Handle("/package/{id:[0-9]+}", package_get.New(log, app.ServicePackage)).Methods("GET")
	api.Handle("/package/{id:[0-9]+}/status", package_status_post.New(log, app.ServicePackage)).Methods("POST")
	api.Handle("/package/{id:[0-9]+}/history", package_history_get.New(log, app.ServiceTracking)).Methods("GET")

	api.Handle("/review", review_post.New(log, app.ServiceReview)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/batchview/internal/clock"
	"github.com/goodnatureofminers/batchview/internal/config"
	"github.com/goodnatureofminers/batchview/internal/epoch"
	"github.com/goodnatureofminers/batchview/internal/lookup"
	"github.com/goodnatureofminers/batchview/internal/metrics"
	"github.com/goodnatureofminers/batchview/internal/model"
	"github.com/goodnatureofminers/batchview/internal/repository/clickhouse"
	"github.com/goodnatureofminers/batchview/internal/transport"
	"github.com/goodnatureofminers/batchview/internal/view"
	"github.com/goodnatureofminers/batchview/pkg/batcher"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type options struct {
	Addr          string        `long:"addr" env:"BATCH_VIEW_ADDR" description:"gRPC addr" default:":8000"`
	RestAddr      string        `long:"rest-addr" env:"BATCH_VIEW_REST_ADDR" description:"HTTP addr" default:":8001"`
	ConfigPath    string        `long:"config" env:"BATCH_VIEW_CONFIG" description:"path to the widget YAML config"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"BATCH_VIEW_CLICKHOUSE_DSN" description:"ClickHouse DSN, solutions and stored links are disabled when empty"`
	ReadyAttempts int           `long:"ready-attempts" env:"BATCH_VIEW_READY_ATTEMPTS" description:"ClickHouse ping attempts at startup" default:"10"`
	ReadyDelay    time.Duration `long:"ready-delay" env:"BATCH_VIEW_READY_DELAY" description:"delay between ClickHouse ping attempts" default:"3s"`
	LinkBatchSize int           `long:"link-batch-size" env:"BATCH_VIEW_LINK_BATCH_SIZE" description:"resolved links per insert" default:"100"`
	LinkFlush     time.Duration `long:"link-flush" env:"BATCH_VIEW_LINK_FLUSH" description:"resolved link flush interval" default:"5s"`
}

func main() {
	opts := options{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := run(ctx, opts, cfg, logger); err != nil {
		logger.Fatal("batch view failed", zap.Error(err))
	}
}

func run(ctx context.Context, opts options, cfg *config.Config, logger *zap.Logger) error {
	epochClock, err := epoch.NewClock(cfg.Epoch.Seconds, cfg.Epoch.SolveWindowSeconds)
	if err != nil {
		return fmt.Errorf("init epoch clock: %w", err)
	}

	var (
		solutions transport.SolutionSource
		storage   transport.Pinger
		links     lookup.LinkRepository
		writer    lookup.LinkWriter
	)
	if opts.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		if err := waitReady(ctx, repo, opts.ReadyAttempts, opts.ReadyDelay, logger); err != nil {
			return err
		}

		linkWriter, err := batcher.New[model.BatchLink](logger.Named("linkWriter"), repo.InsertBatchLinks, batcher.Options{
			Size:     opts.LinkBatchSize,
			Interval: opts.LinkFlush,
			RPS:      10,
		})
		if err != nil {
			return fmt.Errorf("init link writer: %w", err)
		}
		linkWriter.Start(ctx)
		defer linkWriter.Stop()

		solutions, storage, links, writer = repo, repo, repo, linkWriter
	}

	remote, err := lookup.NewBucketClient(
		cfg.Lookup.InstanceURL,
		cfg.Lookup.LinkURL,
		cfg.Lookup.Timeout,
		cfg.Lookup.RPS,
		metrics.NewLookupClient(),
	)
	if err != nil {
		return fmt.Errorf("init lookup client: %w", err)
	}
	resolver, err := lookup.NewCachedResolver(remote, links, writer, cfg.Lookup.CacheSize, logger.Named("lookup"))
	if err != nil {
		return fmt.Errorf("init link resolver: %w", err)
	}

	batches, err := transport.NewBatchHandler(solutions, epochClock, resolver, metrics.NewView(), logger.Named("batches"), transport.HandlerOptions{
		View: view.Options{
			LinkInterval:      cfg.View.LinkInterval,
			CountdownInterval: cfg.View.CountdownInterval,
			EpochSeconds:      epochClock.Epoch(),
			TxURL:             cfg.Explorer.TxURL,
		},
		SolutionsInterval: cfg.View.SolutionsInterval,
	})
	if err != nil {
		return fmt.Errorf("init batch handler: %w", err)
	}
	health := transport.NewHealthHandler(storage, logger.Named("health"))

	if err := serveGRPC(ctx, opts.Addr, health, logger); err != nil {
		return err
	}

	gw := gwruntime.NewServeMux()
	if err := batches.Register(gw); err != nil {
		return err
	}
	if err := health.Register(gw); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	return serveHTTP(ctx, opts.RestAddr, cors.Default().Handler(mux), logger)
}

func serveGRPC(ctx context.Context, addr string, health grpc_health_v1.HealthServer, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpc_health_v1.RegisterHealthServer(grpcServer, health)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	return nil
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
		// Streams end with ctx since Shutdown does not wait for hijacked connections.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

// waitReady pings ClickHouse until it answers or attempts run out.
func waitReady(ctx context.Context, storage transport.Pinger, attempts int, delay time.Duration, logger *zap.Logger) error {
	err := clock.Retry(ctx, attempts, delay, storage.Ping, func(attempt int, err error) {
		logger.Warn("clickhouse not ready", zap.Int("attempt", attempt), zap.Error(err))
	})
	if err != nil {
		return fmt.Errorf("clickhouse not ready: %w", err)
	}
	return nil
}

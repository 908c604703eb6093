// Command api serves league statistics, win probabilities and player
// similarity over a ball-by-ball dataset.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/crickstats/stats-api/docs"
	"github.com/crickstats/stats-api/internal/cache"
	"github.com/crickstats/stats-api/internal/config"
	"github.com/crickstats/stats-api/internal/dataset"
	"github.com/crickstats/stats-api/internal/handlers"
	"github.com/crickstats/stats-api/internal/logic"
	"github.com/crickstats/stats-api/internal/ml"
	"github.com/crickstats/stats-api/internal/worker"
)

const (
	warmRecordsLimit = 10
	shutdownTimeout  = 15 * time.Second
	redisKeyPrefix   = "crickstats:"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	sugar := logger.Sugar()

	start := time.Now()
	ds, err := dataset.Load(ctx, cfg.MatchesPath(), cfg.DeliveriesPath())
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	sugar.Infow("Dataset loaded",
		"matches", len(ds.Matches),
		"deliveries", len(ds.Deliveries),
		"seasons", len(ds.Seasons()),
		"duration", time.Since(start),
	)

	store, janitor, err := buildCache(cfg, logger)
	if err != nil {
		return err
	}
	if janitor != nil {
		janitor.Start()
		defer janitor.Stop()
	}

	stats := logic.NewStatsService(ds, store, logger)

	predOpts := ml.DefaultPredictorOptions()
	predOpts.LiveFeatures = cfg.LiveFeatures
	predictor := ml.NewWinPredictor(predOpts, logger)
	predictor.Train(ds.Matches, ds.Deliveries)

	similarity := ml.NewSimilarityEngine(logger)
	if err := similarity.Build(ml.FeatureTableFromStats(stats.Players())); err != nil {
		sugar.Warnw("Similar player lookups disabled", "error", err)
	}

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount: cfg.WorkerCount,
		QueueSize:   cfg.QueueSize,
		Logger:      logger,
	})
	pool.Start(ctx)
	defer pool.Stop()

	if cfg.WarmCache {
		jobs := worker.WarmJobs(stats, warmRecordsLimit)
		queued := pool.EnqueueAll(jobs)
		sugar.Infow("Cache warming queued", "jobs", len(jobs), "queued", queued)
	}

	h := handlers.New(handlers.Config{
		Stats:      stats,
		Predictor:  predictor,
		Similarity: similarity,
		WorkerPool: pool,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr: ":" + strconv.Itoa(cfg.Port),
		Handler: handlers.NewRouter(h, handlers.RouterOptions{
			AllowedOrigins:     cfg.AllowedOrigins,
			RateLimitPerSecond: cfg.RateLimitPerSecond,
			RateLimitBurst:     cfg.RateLimitBurst,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("HTTP server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	sugar.Info("HTTP server stopped")
	return nil
}

// buildCache puts a memory tier in front of Redis when REDIS_URL is set,
// otherwise in front of the disk store. Only the disk store needs a janitor.
func buildCache(cfg *config.Config, logger *zap.Logger) (cache.Store, *cache.Janitor, error) {
	memory := cache.NewMemoryStore(cfg.MemoryCacheTTL)

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		logger.Info("Using Redis cache tier", zap.String("addr", opts.Addr))
		return cache.NewTiered(memory, cache.NewRedisStore(client, redisKeyPrefix, cfg.CacheMaxAge)), nil, nil
	}

	disk, err := cache.NewFileStore(cfg.CacheDir, cfg.CacheMaxAge)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache dir: %w", err)
	}
	janitor, err := cache.NewJanitor(disk, cfg.CacheSweepSchedule, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Using disk cache tier", zap.String("dir", cfg.CacheDir))
	return cache.NewTiered(memory, disk), janitor, nil
}

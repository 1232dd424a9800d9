// Command server exposes the katsuyou conjugation engine as a JSON REST API.
// See package internal/transport/rest for the endpoints.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-japonais/katsuyou"
	"github.com/cours-de-japonais/katsuyou/internal/app"
	"github.com/cours-de-japonais/katsuyou/internal/config"
	"github.com/cours-de-japonais/katsuyou/internal/transport/middleware"
	"github.com/cours-de-japonais/katsuyou/internal/transport/rest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := app.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("loading lexicon", zap.String("data_dir", cfg.Lexicon.DataDir))
	conj, err := katsuyou.New(cfg.Lexicon.DataDir)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}
	logger.Info("lexicon loaded", zap.Int("verbs", conj.Len()), zap.Int("languages", len(conj.Languages())))

	var tables *cache.Cache
	if cfg.Cache.Enabled {
		tables = cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	var limit middleware.Middleware
	if cfg.RateLimit.PerMinute > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
		limit = rl.Limit()
	}
	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
	)

	h := rest.NewHandler(conj, tables, logger, cfg.Server.MaxBatch)
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      chain(h.Routes()),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"republic/internal/judge"
	"republic/internal/platform/config"
	"republic/internal/platform/httpserver"
	"republic/internal/platform/logger"
	platformredis "republic/internal/platform/redis"
	"republic/internal/republic/handler"
	"republic/internal/republic/metrics"
	"republic/internal/republic/service"
	"republic/internal/republic/store"
	filestore "republic/internal/republic/store/file"
	"republic/internal/republic/store/memory"
	pgstore "republic/internal/republic/store/postgres"
	redisstore "republic/internal/republic/store/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	documents, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		log.Error("store setup failed", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	m := metrics.New()
	saver := store.NewSaver(documents, log,
		store.WithDelay(cfg.SaveDebounce),
		store.WithOnFailure(func(error) { m.IncrementSaveFailures() }),
	)

	engine := service.New(documents, saver,
		service.WithLogger(log),
		service.WithMetrics(m),
	)
	engine.Load(ctx)

	var judgeClient handler.Judge
	if cfg.JudgeURL != "" {
		judgeClient = judge.NewClient(cfg.JudgeURL, judge.WithLogger(log))
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	handler.New(engine, judgeClient, log, m).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting republic server", "addr", cfg.Addr, "backend", string(cfg.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		// Persist any snapshot still waiting on the debounce timer.
		if err := saver.Flush(shutdownCtx); err != nil {
			return fmt.Errorf("flush pending document: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// buildStore constructs the configured document store and a cleanup for its
// underlying connections.
func buildStore(ctx context.Context, cfg config.Config) (store.DocumentStore, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.BackendMemory:
		return memory.New(), noop, nil

	case config.BackendFile:
		return filestore.New(cfg.FilePath), noop, nil

	case config.BackendPostgres:
		db, err := sql.Open("pgx", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		st := pgstore.NewPostgres(db)
		if err := st.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return st, func() { db.Close() }, nil

	case config.BackendRedis:
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.New(client.Client), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

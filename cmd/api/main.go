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

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	"github.com/BruksfildServices01/valet-reports/internal/config"
	dbpkg "github.com/BruksfildServices01/valet-reports/internal/db"
	infraRepo "github.com/BruksfildServices01/valet-reports/internal/infra/repository"
	"github.com/BruksfildServices01/valet-reports/internal/infra/storage"
	"github.com/BruksfildServices01/valet-reports/internal/routes"
	"github.com/BruksfildServices01/valet-reports/internal/session"
	ucAccount "github.com/BruksfildServices01/valet-reports/internal/usecase/account"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// DATABASE
	// ======================================================
	db, err := dbpkg.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer dbpkg.Close(db)

	if err := dbpkg.Migrate(db); err != nil {
		return err
	}

	// ======================================================
	// SESSIONS
	// ======================================================
	var store session.Store
	switch cfg.SessionStore {
	case config.SessionsMemory:
		store = session.NewMemoryStore()
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		store = session.NewRedisStore(rdb)
	}
	sessions := session.NewManager(store, cfg.JWTSecret, cfg.SessionTTL)

	// ======================================================
	// STORAGE & AUDIT
	// ======================================================
	objects, err := storage.New(ctx, cfg)
	if err != nil {
		return err
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger)
	defer dispatcher.Close()

	ensureAdmin := ucAccount.NewEnsureAdmin(infraRepo.NewUserGormRepository(db), logger)
	if err := ensureAdmin.Execute(ctx, cfg.AdminName, cfg.AdminPhone, cfg.AdminPassword); err != nil {
		return err
	}

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Sessions: sessions,
		Storage:  objects,
		Audit:    dispatcher,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "env", cfg.AppEnv)
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

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

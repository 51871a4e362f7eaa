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

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/linhares06/expensetracker-app/internal/account"
	accountStore "github.com/linhares06/expensetracker-app/internal/account/store"
	"github.com/linhares06/expensetracker-app/internal/config"
	"github.com/linhares06/expensetracker-app/internal/database"
	appHttp "github.com/linhares06/expensetracker-app/internal/http"
	"github.com/linhares06/expensetracker-app/internal/http/authweb"
	"github.com/linhares06/expensetracker-app/internal/http/render"
	"github.com/linhares06/expensetracker-app/internal/http/session"
	"github.com/linhares06/expensetracker-app/internal/http/statement"
	"github.com/linhares06/expensetracker-app/internal/http/tracker"
	"github.com/linhares06/expensetracker-app/internal/importer"
	"github.com/linhares06/expensetracker-app/internal/ledger"
	ledgerStore "github.com/linhares06/expensetracker-app/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := database.New(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			slog.Error("failed to disconnect from database", "error", err)
		}
	}()

	view, err := render.New(cfg.App.Name)
	if err != nil {
		slog.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.Secure)

	var (
		accountService = account.NewService(accountStore.New(db))
		ledgerService  = ledger.NewService(ledgerStore.New(db))
		importService  = importer.NewService()
	)

	var (
		authH      = authweb.NewHandler(accountService, sessions, view)
		trackerH   = tracker.NewHandler(ledgerService, sessions, view)
		statementH = statement.NewHandler(importService, ledgerService, sessions, view)
	)

	router := appHttp.New(sessions, authH, trackerH, statementH)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cafepos/docs"
	"cafepos/pkg/app"
	"cafepos/pkg/config"
	"cafepos/pkg/httpapi"
	"cafepos/pkg/logger"
	"cafepos/pkg/otel"
	"cafepos/pkg/session"
	"cafepos/pkg/terminal"
)

// @title Cafe POS API
// @version 1.0
// @description Till API for taking orders, printing receipts and settling cash payments
// @host localhost:8443
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in cookie
// @name session_id
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	log := logger.New(os.Stdout, logger.LevelInfo, "cafepos", otel.GetTraceID)
	if err != nil {
		log.Error(ctx, "load config", "error", err)
		return err
	}
	if lvl, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		log = logger.New(os.Stdout, lvl, "cafepos", otel.GetTraceID)
	} else {
		log.Warn(ctx, "unknown log level, using info", "level", cfg.LogLevel)
	}
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "cafepos", Host: cfg.OTELHost, Probability: cfg.TraceSampling})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		return err
	}
	defer shutdown(context.Background())

	catalog, db, err := app.OpenCatalog(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "open catalog", "error", err)
		return err
	}
	defer db.Close()

	sessions, rdb, err := app.OpenSessions(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "open sessions", "error", err)
		return err
	}
	defer rdb.Close()

	queue, qc, err := app.OpenPrinter(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "open printer", "error", err)
		return err
	}
	defer qc.Close()

	if len(cfg.Cashiers) == 0 {
		log.Warn(ctx, "CAFE_CASHIERS empty, any username may log in")
	}

	srv := httpapi.NewServer(httpapi.Deps{
		Log:        log,
		Tracer:     tp.Tracer("cafepos"),
		Sessions:   sessions,
		Auth:       session.NewAuthenticator(cfg.Cashiers),
		Terminals:  terminal.New(terminal.NewFactory(catalog, cfg.CashierOptions()), cfg.SessionTTL),
		Catalog:    catalog,
		Currency:   cfg.Currency,
		Printer:    queue,
		SessionTTL: cfg.SessionTTL,
	})

	hs := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.Addr, "tls", cfg.TLSCert != "")
		if cfg.TLSCert != "" {
			errc <- hs.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
			return
		}
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server closed", "error", err)
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "shutdown", "error", err)
		return err
	}
	log.Info(shutdownCtx, "server stopped")
	return nil
}

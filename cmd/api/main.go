package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/config"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	appHTTP "github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/locale"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/api"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/postgresql"
	dashboardService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/dashboard"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("app", "hris-dashboard")))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var sources dashboard.SourceFactory
	switch cfg.Source.Type {
	case config.SourceTypeAPI:
		sources = api.NewSourceFactory(apiclient.Config{
			BaseURL:        cfg.API.BaseURL,
			TenantHeader:   cfg.API.TenantHeader,
			RateLimitFloor: cfg.API.RateLimitFloor,
			Timeout:        cfg.API.RequestTimeout,
		})
	case config.SourceTypePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns)
		if err != nil {
			slog.Error("failed to connect to database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		sources = postgresql.NewDashboardSourceFactory(db)
	default:
		slog.Error("unsupported source type", "source", cfg.Source.Type)
		os.Exit(1)
	}

	slog.Info("config loaded",
		"env", cfg.App.Env,
		"port", cfg.App.Port,
		"source", cfg.Source.Type,
		"tier_pause", cfg.Dashboard.TierPause,
		"locale", cfg.App.Locale,
	)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	dashboardSvc := dashboardService.NewDashboardService(sources, cfg.Dashboard.TierPause, locale.New(cfg.App.Locale))
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, JWTService, cfg.App.LoginURL)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		FrontendURL: cfg.App.FrontendURL,
		LoginURL:    cfg.App.LoginURL,
		Env:         cfg.App.Env,
		Version:     version,
		LogLevel:    cfg.SlogLevel(),
	}, JWTService, dashboardHandler)

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("server listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
}

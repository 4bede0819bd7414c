package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	countriesclient "atlas/internal/countries/client"
	countrieshandler "atlas/internal/countries/handler"
	countriesmetrics "atlas/internal/countries/metrics"
	countriesservice "atlas/internal/countries/service"
	"atlas/internal/platform/config"
	"atlas/internal/platform/httpserver"
	"atlas/internal/platform/logger"
	"atlas/internal/platform/middleware"
	weatherclient "atlas/internal/weather/client"
	weatherhandler "atlas/internal/weather/handler"
	weathermetrics "atlas/internal/weather/metrics"
	weatherservice "atlas/internal/weather/service"
	"atlas/pkg/platform/httputil"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	log := logger.New()

	countriesClient := countriesclient.New(cfg.RestCountries, cfg.UpstreamTimeout)
	countriesService := countriesservice.New(countriesClient, log, countriesmetrics.New())
	weatherClient := weatherclient.New(cfg.OpenWeather, cfg.UpstreamTimeout)
	weatherService := weatherservice.New(weatherClient, log, weathermetrics.New())

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", handleHome)
	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(api chi.Router) {
		countrieshandler.New(countriesService, log).Register(api)
		weatherhandler.New(weatherService, log).Register(api)
	})

	srv := httpserver.New(cfg.Addr, r)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("starting atlas", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message":     "Welcome to the Atlas API",
		"description": "Country and weather lookups backed by REST Countries and OpenWeather",
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

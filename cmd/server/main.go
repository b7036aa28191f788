package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	apphandler "ujjwala/internal/application/handler"
	appservice "ujjwala/internal/application/service"
	appstore "ujjwala/internal/application/store"
	"ujjwala/internal/officer"
	"ujjwala/internal/platform/config"
	"ujjwala/internal/platform/httpserver"
	"ujjwala/internal/platform/logger"
	"ujjwala/internal/platform/metrics"
	registryhandler "ujjwala/internal/registry/handler"
	registrystore "ujjwala/internal/registry/store"
	httptransport "ujjwala/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	registry := registrystore.NewInMemory()
	registrystore.Seed(registry)
	directory := officer.NewDirectory(officer.DefaultOfficers())

	applications := appservice.New(
		appstore.NewInMemory(),
		registry,
		directory,
		appservice.WithLogger(log),
		appservice.WithMetrics(m),
	)

	router := httptransport.NewRouter(
		apphandler.New(applications, log, m),
		registryhandler.New(registry, log, m),
	)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting scheme portal", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/questx-lab/chime-integration/internal/middleware"
	"github.com/questx-lab/chime-integration/pkg/prometheus"
	"github.com/questx-lab/chime-integration/pkg/router"
	"github.com/questx-lab/chime-integration/pkg/xcontext"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func (s *srv) startApi(ct *cli.Context) error {
	if err := s.loadConfig(ct.String(flagConfig)); err != nil {
		return err
	}

	s.loadLogger()
	if err := s.loadChime(); err != nil {
		return err
	}

	if err := s.loadCredentialIssuer(); err != nil {
		return err
	}

	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := xcontext.Configs(s.ctx)
	apiSrv := &http.Server{
		Addr:              cfg.ApiServer.Address(),
		Handler:           s.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricSrv := &http.Server{
		Addr:              cfg.MetricServer.Address(),
		Handler:           prometheus.NewHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
		return listen(apiSrv)
	})

	g.Go(func() error {
		xcontext.Logger(s.ctx).Infof("Starting prometheus on port: %s", cfg.MetricServer.Port)
		return listen(metricSrv)
	})

	g.Go(func() error {
		<-gctx.Done()
		xcontext.Logger(s.ctx).Infof("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(apiSrv.Shutdown(shutdownCtx), metricSrv.Shutdown(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		xcontext.Logger(s.ctx).Errorf("Server stopped with error: %v", err)
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func listen(httpSrv *http.Server) error {
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(xcontext.Configs(s.ctx), xcontext.Logger(s.ctx))
	s.router.Before(middleware.WithRequestID(), middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger(), middleware.Prometheus())

	router.GET(s.router, "/health", s.healthDomain.Check)

	chimeRouter := s.router.Group("/chime-integration")
	{
		router.GET(chimeRouter, "/meeting-session", s.meetingDomain.GetSession)
		router.GET(chimeRouter, "/messaging-session/:meetingId", s.messagingDomain.GetSession)
		router.POST(chimeRouter, "/message", s.messagingDomain.SendMessage)
	}
}

func (s *srv) handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: xcontext.Configs(s.ctx).Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	}).Handler(s.router.Handler())
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"loandecision/internal/decision"
	grpcadapter "loandecision/internal/decision/adapters/grpc"
	"loandecision/internal/decision/handler"
	decisionmetrics "loandecision/internal/decision/metrics"
	"loandecision/internal/platform/config"
	"loandecision/internal/platform/httpserver"
	"loandecision/internal/platform/logger"
	"loandecision/internal/platform/metrics"
	httptransport "loandecision/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP and gRPC transports, and
// keeps the server lifecycle small. Decision logic lives in internal/decision.
func main() {
	if err := run(); err != nil {
		slog.Error("loan decision service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	statusMode, err := handler.ParseStatusMode(cfg.StatusMode)
	if err != nil {
		return err
	}

	routerCfg := httptransport.RouterConfig{
		Logger:             log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	svcOpts := []decision.Option{decision.WithLogger(log)}
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		routerCfg.Metrics = metrics.New(reg)
		routerCfg.Gatherer = reg
		svcOpts = append(svcOpts, decision.WithMetrics(decisionmetrics.New(reg)))
	}

	svc := decision.NewService(decision.NewEngine(), svcOpts...)
	router := httptransport.NewRouter(routerCfg, handler.New(svc, log, statusMode))
	srv := httpserver.New(cfg.Addr, router)

	var grpcServer *grpcadapter.Server
	var grpcListener net.Listener
	if cfg.GRPCAddr != "" {
		grpcListener, err = net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
		}
		grpcServer = grpcadapter.NewServer(grpcadapter.NewDecisionHandler(svc, log), log, cfg.GRPCReflection)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting loan decision service",
			"addr", cfg.Addr,
			"grpc_addr", cfg.GRPCAddr,
			"status_mode", statusMode,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if grpcServer != nil {
		g.Go(func() error {
			if err := grpcServer.Serve(grpcListener); err != nil {
				return fmt.Errorf("grpc server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		var errs []error
		if grpcServer != nil {
			if err := grpcServer.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
			}
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("graceful shutdown failed: %w", err))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

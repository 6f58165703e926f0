package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"tinyhttp/internal/config"
	"tinyhttp/internal/logging"
	"tinyhttp/internal/metrics"
	"tinyhttp/internal/router"
	"tinyhttp/internal/transport"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type Bootstrap struct {
	Config        config.Config
	Router        router.Router
	Recorder      metrics.Recorder
	MeterProvider *sdkmetric.MeterProvider
	ErrChan       chan error
	SignalChan    chan os.Signal
}

func New(conf config.Config, provider *sdkmetric.MeterProvider) (*Bootstrap, error) {
	if provider == nil {
		provider = sdkmetric.NewMeterProvider()
	}

	recorder, err := metrics.New(provider)
	if err != nil {
		return nil, err
	}

	rt := router.New()
	registerRoutes(rt)

	return &Bootstrap{
		Config:        conf,
		Router:        rt,
		Recorder:      recorder,
		MeterProvider: provider,
		ErrChan:       make(chan error, 5),
		SignalChan:    make(chan os.Signal, 1),
	}, nil
}

// NewMeterProvider exports to the OTLP collector configured through the
// standard OTEL_EXPORTER_OTLP_* variables when metrics are enabled.
func NewMeterProvider(ctx context.Context, conf config.Config) (*sdkmetric.MeterProvider, error) {
	if !conf.MetricsEnabled() {
		return sdkmetric.NewMeterProvider(), nil
	}

	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create otlp metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)))
	otel.SetMeterProvider(provider)
	return provider, nil
}

func startHTTPServer(srv transport.Transport, ln net.Listener, errChan chan<- error) {
	if err := srv.Serve(ln); err != nil && !errors.Is(err, net.ErrClosed) {
		errChan <- fmt.Errorf("error when serving http server: %w", err)
	}
}

func startPprof(pprofPort string, errChan chan<- error) {
	pprofAddr := fmt.Sprintf("localhost:%s", pprofPort)
	logging.Get("bootstrap").Infof("Starting pprof server on http://%s/debug/pprof/", pprofAddr)
	if err := http.ListenAndServe(pprofAddr, nil); err != nil {
		errChan <- fmt.Errorf("pprof server error: %v", err)
	}
}

func (b *Bootstrap) Run() error {
	log := logging.Get("bootstrap")

	httpServer := transport.NewHTTPServer(b.Config, b.Router, b.Recorder)
	ln, err := httpServer.Listen()
	if err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}
	defer func() {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.WithError(err).Error("Failed to close listener")
		}
	}()

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	go startHTTPServer(httpServer, ln, b.ErrChan)

	if b.Config.PprofEnabled() {
		go startPprof(b.Config.PprofPort(), b.ErrChan)
	}

	log.Info("All services started successfully")

	select {
	case err = <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		log.Infof("Received signal %s, initiating graceful shutdown", sig)
		return nil
	}
}

// Shutdown flushes pending metrics.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.MeterProvider == nil {
		return nil
	}
	return b.MeterProvider.Shutdown(ctx)
}

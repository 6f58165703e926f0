package cmd

import (
	"context"
	"fmt"
	"os"
	"time"
	"tinyhttp/internal/bootstrap"
	"tinyhttp/internal/config"
	"tinyhttp/internal/logging"
	"tinyhttp/internal/version"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides HTTP_PORT")
	return serveCmd
}

func runServe(port string) error {
	if port != "" {
		if err := os.Setenv("HTTP_PORT", port); err != nil {
			return err
		}
	}

	conf, err := config.MustLoad()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(conf.LogLevel(), nil)
	log := logging.Get("main")
	info := version.Current()
	log.WithFields(logrus.Fields{
		"version": info.Version,
		"commit":  info.Commit,
		"built":   info.BuildDate,
	}).Infof("Starting %s", info.Token())

	ctx := context.Background()
	provider, err := bootstrap.NewMeterProvider(ctx, conf)
	if err != nil {
		return err
	}

	app, err := bootstrap.New(conf, provider)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("Failed to flush metrics")
		}
	}()

	return app.Run()
}

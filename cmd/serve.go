package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/adapters/proxy"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
	"github.com/kamal-hamza/gallery-cli/internal/telemetry"
	"github.com/kamal-hamza/gallery-cli/pkg/config"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var (
	serveAddr      string
	serveNoReload  bool
	serveTelemetry bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the token/content proxy and the web viewer",
	Long: `Run the HTTP server that stands in front of the CMS.

Routes:
  GET /api/get-token                   Exchange the configured credential for a token
  GET /api/fetch-content?token=T       Published items (token may also be a Bearer header)
  GET /                                Web viewer (?program=P&tag=T)
  GET /healthz                         Liveness

The config file is watched and the CMS settings are swapped in without a
restart when it changes. Logs are JSON on stdout and in a rotated file under
the logs directory.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&serveNoReload, "no-reload", false, "Do not watch the config file")
	serveCmd.Flags().BoolVar(&serveTelemetry, "telemetry", false, "Export traces and metrics to the logs directory")
}

func runServe(cmd *cobra.Command, args []string) error {
	logFile := appConfig.LogFile
	if logFile == "" {
		logFile = appDirs.LogPath("server.log")
	}

	logger, closeLog, err := telemetry.InitLogger(telemetry.LoggerOptions{
		Level:   appConfig.LogLevel,
		File:    logFile,
		Console: os.Stdout,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	if err := appConfig.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveTelemetry || appConfig.Telemetry {
		shutdown, err := telemetry.InitTelemetry(ctx, appDirs.LogsPath, Version)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	addr := serveAddr
	if addr == "" {
		addr = appConfig.Addr
	}

	server, err := proxy.NewServer(newBackend(appConfig), logger)
	if err != nil {
		return err
	}

	if !serveNoReload {
		go watchConfig(ctx, server, logger)
	}

	fmt.Println(ui.FormatRocket("Serving gallery on " + addr))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))

	return server.ListenAndServe(ctx, addr)
}

// newBackend builds the CMS-facing half of the server from a configuration
func newBackend(cfg *config.Config) *proxy.Backend {
	client := newCMSClient(cfg)
	return &proxy.Backend{
		CMS:      client,
		Gallery:  services.NewGalleryService(client, client, cfg.AssetBase()),
		Endpoint: cfg.APIEndpoint,
		Username: cfg.Username,
	}
}

// watchConfig swaps the backend whenever the config file changes to a valid one
func watchConfig(ctx context.Context, server *proxy.Server, logger *slog.Logger) {
	err := config.Watch(ctx, appDirs.ConfigPath, func(cfg *config.Config) {
		applyReload(server, cfg, logger)
	})
	if err != nil {
		logger.Warn("config file is not watched", "path", appDirs.ConfigPath, "error", err)
	}
}

// applyReload keeps the running backend when the new settings are incomplete
func applyReload(server *proxy.Server, cfg *config.Config, logger *slog.Logger) bool {
	if err := cfg.Validate(); err != nil {
		logger.Error("ignoring reloaded config", "error", err)
		return false
	}
	server.SetBackend(newBackend(cfg))
	return true
}

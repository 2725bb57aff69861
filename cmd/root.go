package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/adapters/directus"
	"github.com/kamal-hamza/gallery-cli/internal/adapters/system"
	"github.com/kamal-hamza/gallery-cli/internal/core/ports"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
	"github.com/kamal-hamza/gallery-cli/pkg/appdir"
	"github.com/kamal-hamza/gallery-cli/pkg/config"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var (
	// Global directories and configuration
	appDirs   *appdir.Dirs
	appConfig *config.Config

	// CMS
	cmsClient *directus.Client

	// Services
	galleryService  *services.GalleryService
	downloadService *services.DownloadService
	statsService    *services.StatsService

	// Desktop
	appClipboard ports.Clipboard
	appOpener    ports.FileOpener

	// Global flags
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Gallery - browse published creative assets",
	Long: ui.StyleTitle.Render("Gallery") + " - Creative Asset Browser\n\n" +
		"Browse, filter, copy and download the creative assets published in the CMS.\n" +
		"Run 'gallery serve' for the web viewer or 'gallery browse' in the terminal.",
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(programsCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/gallery/config.yaml)")
	rootCmd.SilenceErrors = true
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// version needs nothing
	if cmd.Name() == "version" {
		return nil
	}

	dirs, err := appdir.New()
	if err != nil {
		return fmt.Errorf("failed to resolve directories: %w", err)
	}
	if configPath != "" {
		dirs.ConfigPath = configPath
	}
	appDirs = dirs

	cfg, err := config.Load(appDirs.ConfigPath)
	if err != nil {
		return err
	}
	appConfig = cfg

	ui.SetTheme(appConfig.ColorTheme)

	wireServices(appConfig)
	return nil
}

// wireServices builds the CMS client and everything that depends on it
func wireServices(cfg *config.Config) {
	cmsClient = newCMSClient(cfg)

	galleryService = services.NewGalleryService(cmsClient, cmsClient, cfg.AssetBase())
	downloadService = services.NewDownloadService(cmsClient)
	statsService = services.NewStatsService()

	appClipboard = system.NewClipboard()
	appOpener = system.NewOpener(cfg.ImageViewer)
}

func newCMSClient(cfg *config.Config) *directus.Client {
	return directus.NewClient(directus.Options{
		Endpoint:   cfg.APIEndpoint,
		Collection: cfg.Collection,
		Email:      cfg.Username,
		Password:   cfg.Password,
		Timeout:    cfg.Timeout(),
	})
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

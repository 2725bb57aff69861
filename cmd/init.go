package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/pkg/config"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var (
	initEndpoint string
	initAssetURL string
	initUsername string
	initForce    bool
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the gallery directories and config file",
	Long: `Create the data directories and a config file.

This creates the following under ~/.local/share/gallery/:
  - logs/       : Server logs, traces and metrics
  - cache/      : Generated pages such as stats charts
  - downloads/  : Downloaded asset images

The password is never written to the config file. Provide it through
DIRECTUS_PASSWORD when running gallery.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initEndpoint, "endpoint", "", "CMS API endpoint")
	initCmd.Flags().StringVar(&initAssetURL, "asset-url", "", "Public URL images are served from")
	initCmd.Flags().StringVar(&initUsername, "username", "", "Service account email")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.FormatRocket("Initializing gallery..."))
	fmt.Println()

	if err := appDirs.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to create directories"))
		return err
	}
	fmt.Println(ui.FormatSuccess("Directories created"))

	if _, err := os.Stat(appDirs.ConfigPath); err == nil && !initForce {
		fmt.Println(ui.FormatWarning("Config already exists (use --force to overwrite)"))
		fmt.Println(ui.FormatMuted("Location: " + appDirs.ConfigPath))
		return nil
	}

	cfg := initialConfig(appConfig)
	if err := cfg.Save(appDirs.ConfigPath); err != nil {
		fmt.Println(ui.FormatError("Failed to write config"))
		return err
	}
	fmt.Println(ui.FormatSuccess("Config written"))

	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Config", appDirs.ConfigPath))
	fmt.Println(ui.RenderKeyValue("Data", appDirs.DataPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. export DIRECTUS_PASSWORD=..."))
	fmt.Println(ui.FormatMuted("  2. Check the login: gallery token"))
	fmt.Println(ui.FormatMuted("  3. Browse: gallery browse, or gallery serve for the web viewer"))

	return nil
}

// initialConfig starts from the loaded settings and applies the init flags
func initialConfig(current *config.Config) *config.Config {
	cfg := config.DefaultConfig()
	if current != nil {
		c := *current
		cfg = &c
	}

	if initEndpoint != "" {
		cfg.APIEndpoint = initEndpoint
	}
	if initAssetURL != "" {
		cfg.AssetURL = initAssetURL
	}
	if initUsername != "" {
		cfg.Username = initUsername
	}
	return cfg
}

package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/gallery-cli/pkg/config"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the gallery configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appDirs.ConfigPath

		// Ensure it exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config file not found at %s (run 'gallery init')", path)
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (file plus environment)",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := renderConfig(appConfig)
		if err != nil {
			return err
		}
		if ui.IsTerminal(os.Stdout) {
			out = ui.Highlight(out, "yaml")
		}
		fmt.Print(out)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(appDirs.ConfigPath)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// renderConfig marshals cfg as YAML with the password masked
func renderConfig(cfg *config.Config) (string, error) {
	masked := *cfg
	if masked.Password != "" {
		masked.Password = "********"
	}

	data, err := yaml.Marshal(&masked)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

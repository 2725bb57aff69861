package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "gallery"

// Dirs holds the directories gallery reads and writes
type Dirs struct {
	DataPath      string
	LogsPath      string
	CachePath     string
	DownloadsPath string
	ConfigPath    string // The config file, not its directory
}

// New resolves XDG-compliant paths
func New() (*Dirs, error) {
	dataRoot, err := getDataRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to determine data directory: %w", err)
	}
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", err)
	}

	return &Dirs{
		DataPath:      dataRoot,
		LogsPath:      filepath.Join(dataRoot, "logs"),
		CachePath:     filepath.Join(dataRoot, "cache"),
		DownloadsPath: filepath.Join(dataRoot, "downloads"),
		ConfigPath:    configPath,
	}, nil
}

// getDataRoot follows the XDG Base Directory specification on Unix and uses AppData on Windows
func getDataRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", appName), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName+"-config", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// Initialize creates the directory structure if it doesn't exist
func (d *Dirs) Initialize() error {
	directories := []string{
		d.DataPath,
		d.LogsPath,
		d.CachePath,
		d.DownloadsPath,
		filepath.Dir(d.ConfigPath),
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// LogPath returns the full path for a log file
func (d *Dirs) LogPath(filename string) string {
	return filepath.Join(d.LogsPath, filename)
}

// GetCachePath returns the full path for a cached file
func (d *Dirs) GetCachePath(filename string) string {
	return filepath.Join(d.CachePath, filename)
}

// DownloadDir returns the configured directory, or the default one
func (d *Dirs) DownloadDir(configured string) string {
	if configured != "" {
		return configured
	}
	return d.DownloadsPath
}

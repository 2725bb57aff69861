package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/adapters/proxy"
	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
	"github.com/kamal-hamza/gallery-cli/pkg/config"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{
		"serve", "browse", "list", "pick", "download", "programs",
		"tags", "stats", "token", "config", "init", "version",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{cmdName})
			if err != nil {
				t.Fatalf("Command '%s' not found: %v", cmdName, err)
			}
			if cmd == nil {
				t.Fatalf("Command '%s' is nil", cmdName)
			}
			if cmd.Use == "" {
				t.Errorf("Command '%s' has no Use field", cmdName)
			}
		})
	}
}

// TestRootCommandExists verifies the root command is properly configured
func TestRootCommandExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("Root command is nil")
	}

	if rootCmd.Use != "gallery" {
		t.Errorf("Expected root command Use to be 'gallery', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Root command Short description is empty")
	}

	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Root command has no --config flag")
	}
}

// TestCommandsHaveHelp verifies all commands have help text
func TestCommandsHaveHelp(t *testing.T) {
	commands := rootCmd.Commands()

	if len(commands) == 0 {
		t.Fatal("No commands registered")
	}

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			if cmd.Short == "" {
				t.Errorf("Command '%s' has no Short description", cmd.Name())
			}
		})
	}
}

// TestSubcommands verifies specific subcommands exist
func TestSubcommands(t *testing.T) {
	tests := []struct {
		parent     string
		subcommand string
	}{
		{"config", "show"},
		{"config", "path"},
	}

	for _, tt := range tests {
		t.Run(tt.parent+"_"+tt.subcommand, func(t *testing.T) {
			parentCmd, _, err := rootCmd.Find([]string{tt.parent})
			if err != nil {
				t.Fatalf("Parent command '%s' not found: %v", tt.parent, err)
			}

			found := false
			for _, cmd := range parentCmd.Commands() {
				if cmd.Name() == tt.subcommand {
					found = true
					break
				}
			}

			if !found {
				t.Errorf("Subcommand '%s' not found under '%s'", tt.subcommand, tt.parent)
			}
		})
	}
}

// TestFlagsExist verifies important flags are registered
func TestFlagsExist(t *testing.T) {
	tests := []struct {
		command  string
		flagName string
	}{
		{"serve", "addr"},
		{"serve", "no-reload"},
		{"serve", "telemetry"},
		{"browse", "program"},
		{"browse", "tag"},
		{"list", "program"},
		{"list", "tag"},
		{"list", "json"},
		{"pick", "url"},
		{"download", "dir"},
		{"download", "force"},
		{"tags", "program"},
		{"stats", "chart"},
		{"stats", "no-open"},
		{"token", "quiet"},
		{"init", "endpoint"},
		{"init", "username"},
	}

	for _, tt := range tests {
		t.Run(tt.command+"_"+tt.flagName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.command})
			if err != nil {
				t.Fatalf("Command '%s' not found: %v", tt.command, err)
			}

			flag := cmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				t.Errorf("Flag '--%s' not found on command '%s'", tt.flagName, tt.command)
			}
		})
	}
}

// TestCommandAliases verifies command aliases work
func TestCommandAliases(t *testing.T) {
	tests := []struct {
		alias   string
		command string
	}{
		{"ls", "list"},
		{"dl", "download"},
		{"v", "version"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.alias})
			if err != nil {
				t.Fatalf("Alias '%s' not found: %v", tt.alias, err)
			}
			if cmd.Name() != tt.command {
				t.Errorf("Alias '%s' resolved to '%s', want '%s'", tt.alias, cmd.Name(), tt.command)
			}
		})
	}
}

func TestResolveFilter(t *testing.T) {
	saved := appConfig
	defer func() { appConfig = saved }()

	appConfig = config.DefaultConfig()
	appConfig.DefaultFilter.Program = "Silver"
	appConfig.DefaultFilter.Tag = "Renewal"

	tests := []struct {
		name string
		args []string
		want domain.Filter
	}{
		{"config defaults", nil, domain.Filter{Program: "Silver", Tag: "Renewal"}},
		{"flag overrides program", []string{"--program", "Gold"}, domain.Filter{Program: "Gold", Tag: "Renewal"}},
		{"flag overrides tag", []string{"--tag", "Upsell"}, domain.Filter{Program: "Silver", Tag: "Upsell"}},
		{"explicit all", []string{"--program", "all", "--tag", "all"}, domain.NewFilter()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var program, tag string
			c := &cobra.Command{Use: "test"}
			c.Flags().StringVar(&program, "program", domain.All, "")
			c.Flags().StringVar(&tag, "tag", domain.All, "")
			if err := c.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}

			got := resolveFilter(c, program, tag)
			if got != tt.want {
				t.Errorf("resolveFilter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyReload(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	valid := config.DefaultConfig()
	valid.APIEndpoint = "https://cms.example.com"
	valid.Username = "svc@example.com"
	valid.Password = "secret"

	server, err := proxy.NewServer(newBackend(valid), logger)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if !applyReload(server, valid, logger) {
		t.Error("expected a valid config to be applied")
	}

	incomplete := config.DefaultConfig()
	incomplete.APIEndpoint = "https://cms.example.com"
	if applyReload(server, incomplete, logger) {
		t.Error("expected a config without credentials to be ignored")
	}
}

func TestNewBackend(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.APIEndpoint = "https://cms.example.com"
	cfg.Username = "svc@example.com"

	b := newBackend(cfg)
	if b.CMS == nil || b.Gallery == nil {
		t.Fatal("backend is missing its CMS client or gallery service")
	}
	if b.Endpoint != cfg.APIEndpoint || b.Username != cfg.Username {
		t.Errorf("backend = %q/%q, want %q/%q", b.Endpoint, b.Username, cfg.APIEndpoint, cfg.Username)
	}
}

func TestWriteAssetsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeAssetsJSON(&buf, nil, false); err != nil {
		t.Fatalf("writeAssetsJSON failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected an empty array, got %q", buf.String())
	}

	buf.Reset()
	assets := []domain.Asset{{ImageName: "img-1", ImageURL: "https://cms/assets/img-1", Tags: []string{"Gold"}}}
	if err := writeAssetsJSON(&buf, assets, false); err != nil {
		t.Fatalf("writeAssetsJSON failed: %v", err)
	}
	for _, want := range []string{`"image_name": "img-1"`, `"image_url": "https://cms/assets/img-1"`, `"Gold"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %s:\n%s", want, buf.String())
		}
	}
}

func TestRenderAssetTable(t *testing.T) {
	out := renderAssetTable([]domain.Asset{
		{ImageName: "img-1", Content: "Hello<br>World", Tags: []string{"Upsell", "Renewal"}, Programs: []string{"Gold"}},
	})

	for _, want := range []string{"Creative Assets", "Message", "Use Case", "img-1", "Upsell, Renewal", "Gold"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderConfigMasksPassword(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Username = "svc@example.com"
	cfg.Password = "hunter2"

	out, err := renderConfig(cfg)
	if err != nil {
		t.Fatalf("renderConfig failed: %v", err)
	}
	if strings.Contains(out, "hunter2") {
		t.Error("password leaked into the rendered config")
	}
	if !strings.Contains(out, "svc@example.com") {
		t.Errorf("username missing from rendered config:\n%s", out)
	}
	if cfg.Password != "hunter2" {
		t.Error("renderConfig modified the caller's config")
	}
}

func TestInitialConfig(t *testing.T) {
	defer func() { initEndpoint, initAssetURL, initUsername = "", "", "" }()

	current := config.DefaultConfig()
	current.APIEndpoint = "https://old.example.com"
	current.Collection = "stories"

	initEndpoint = "https://cms.example.com"
	initUsername = "svc@example.com"

	cfg := initialConfig(current)
	if cfg.APIEndpoint != "https://cms.example.com" || cfg.Username != "svc@example.com" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Collection != "stories" {
		t.Errorf("expected collection to be kept, got %q", cfg.Collection)
	}
	if current.APIEndpoint != "https://old.example.com" {
		t.Error("initialConfig modified the loaded config")
	}
}

func TestRenderSummary(t *testing.T) {
	summary := services.Summary{
		Total:    3,
		Untagged: 1,
		Programs: []services.Count{{Name: "Gold", Count: 2}, {Name: "Silver", Count: 1}},
		Tags:     []services.Count{{Name: "Renewal", Count: 2}, {Name: "Upsell", Count: 1}},
	}

	var buf bytes.Buffer
	renderSummary(&buf, summary, 1)
	out := buf.String()

	for _, want := range []string{"Total Assets:", "Gold", "Silver", "Renewal"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Upsell") {
		t.Error("expected --top 1 to hide the second tag")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPickLabel(t *testing.T) {
	if got := pickLabel(domain.Asset{ImageName: "img-1"}); got != "img-1" {
		t.Errorf("pickLabel() = %q", got)
	}
	got := pickLabel(domain.Asset{ImageName: "img-1", Tags: []string{"Upsell", "Renewal"}})
	if !strings.Contains(got, "Upsell, Renewal") {
		t.Errorf("pickLabel() = %q, expected the use case", got)
	}
}

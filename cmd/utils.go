package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
	"github.com/kamal-hamza/gallery-cli/pkg/richtext"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

// requireCMS fails early with a hint when the CMS settings are incomplete
func requireCMS() error {
	if err := appConfig.Validate(); err != nil {
		fmt.Println(ui.FormatInfo("Run 'gallery init' or set the DIRECTUS_* environment variables"))
		return err
	}
	return nil
}

// loadGallery logs in and fetches the published assets
func loadGallery(ctx context.Context) (*services.LoadResponse, error) {
	if err := requireCMS(); err != nil {
		return nil, err
	}
	return galleryService.Load(ctx, services.LoadRequest{})
}

// resolveFilter combines --program and --tag with the configured defaults.
// Flags the user did not set fall back to the config file.
func resolveFilter(cmd *cobra.Command, program, tag string) domain.Filter {
	filter := domain.Filter{Program: program, Tag: tag}
	if !cmd.Flags().Changed("program") {
		filter.Program = appConfig.DefaultFilter.Program
	}
	if !cmd.Flags().Changed("tag") {
		filter.Tag = appConfig.DefaultFilter.Tag
	}
	return filter.Normalize()
}

// plainMessage is the message as it goes to the clipboard or a terminal
func plainMessage(a domain.Asset) string {
	return richtext.PlainText(a.Content)
}

// assetPreview is the text shown next to an asset in pickers and previews
func assetPreview(a domain.Asset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Image: %s\n", a.ImageName)
	fmt.Fprintf(&b, "Programs: %s\n", joinOrDash(a.Programs))
	fmt.Fprintf(&b, "Use Case: %s\n", joinOrDash(a.Tags))
	fmt.Fprintf(&b, "URL: %s\n\n", a.ImageURL)
	b.WriteString(plainMessage(a))
	return b.String()
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

// shortenHome replaces the home directory prefix with ~
func shortenHome(path string) string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if rest, ok := strings.CutPrefix(path, home); ok {
			return "~" + rest
		}
	}
	return path
}

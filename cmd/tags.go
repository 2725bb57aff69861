package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var tagsProgram string

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the use-case tags",
	Long: `List every use-case tag found in the published assets.

With --program, only tags of that program's assets are listed.`,
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().StringVar(&tagsProgram, "program", domain.All, "Only count assets of one program")
}

func runTags(cmd *cobra.Command, args []string) error {
	resp, err := loadGallery(getContext())
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	assets := galleryService.Filter(resp.Assets, domain.Filter{Program: tagsProgram, Tag: domain.All})
	tags := resp.Tags
	title := ui.IconTag + " Tags"
	if program := domain.NewFilter().WithProgram(tagsProgram).Program; program != domain.All {
		tags = services.UniqueValues(assets, func(a domain.Asset) []string { return a.Tags })
		title += " in " + program
	}

	printLabels(title, tags, assets, func(a domain.Asset, t string) bool {
		return a.HasTag(t)
	})
	return nil
}

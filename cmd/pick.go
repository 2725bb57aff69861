package cmd

import (
	"errors"
	"fmt"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/pkg/richtext"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var (
	pickProgram string
	pickTag     string
	pickURL     bool
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Fuzzy-find an asset and copy its message",
	Long: `Pick an asset with a fuzzy finder and copy its message to the clipboard.

The preview shows the programs, use case and message of the highlighted asset.
Use --url to copy the image URL instead.`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVar(&pickProgram, "program", domain.All, "Only offer assets of one program")
	pickCmd.Flags().StringVar(&pickTag, "tag", domain.All, "Only offer assets with one tag")
	pickCmd.Flags().BoolVar(&pickURL, "url", false, "Copy the image URL instead of the message")
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	resp, err := loadGallery(ctx)
	if err != nil {
		return fmt.Errorf("failed to load gallery: %w", err)
	}

	assets := galleryService.Filter(resp.Assets, resolveFilter(cmd, pickProgram, pickTag))
	if len(assets) == 0 {
		fmt.Println(ui.FormatWarning("No assets match the current filters"))
		return nil
	}

	idx, err := fuzzyfinder.Find(
		assets,
		func(i int) string {
			return pickLabel(assets[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return assetPreview(assets[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return err
	}

	chosen := assets[idx]
	text, what := plainMessage(chosen), "Message"
	if pickURL {
		text, what = chosen.ImageURL, "Image URL"
	}

	if err := appClipboard.WriteAll(text); err != nil {
		fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		fmt.Println(text)
		return nil
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("%s of %s copied", what, chosen.ImageName)))
	return nil
}

// pickLabel is the searchable line for an asset: name, use case and the start of the message
func pickLabel(a domain.Asset) string {
	parts := []string{a.ImageName}
	if len(a.Tags) > 0 {
		parts = append(parts, a.TagLine())
	}
	if excerpt := richtext.Excerpt(a.Content, 60); excerpt != "" {
		parts = append(parts, excerpt)
	}
	return strings.Join(parts, "  ")
}

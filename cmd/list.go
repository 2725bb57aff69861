package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var (
	listProgram string
	listTag     string
	listJSON    bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List published assets",
	Aliases: []string{"ls"},
	Long: `List the published assets in a table, or as JSON.

Examples:
  gallery list
  gallery list --program "Gold"
  gallery list --program "Gold" --tag "Renewal"
  gallery list --json | jq '.[].image_url'`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listProgram, "program", domain.All, "Show assets of one program")
	listCmd.Flags().StringVar(&listTag, "tag", domain.All, "Show assets with one tag")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of a table")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	resp, err := loadGallery(ctx)
	if err != nil {
		return fmt.Errorf("failed to list assets: %w", err)
	}

	assets := galleryService.Filter(resp.Assets, resolveFilter(cmd, listProgram, listTag))

	if listJSON {
		return writeAssetsJSON(os.Stdout, assets, ui.IsTerminal(os.Stdout))
	}

	if len(assets) == 0 {
		fmt.Println(ui.FormatWarning("No assets match the current filters"))
		return nil
	}

	fmt.Print(renderAssetTable(assets))
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d of %d assets", len(assets), resp.Total)))
	return nil
}

// renderAssetTable lays assets out with the web viewer's columns
func renderAssetTable(assets []domain.Asset) string {
	table := ui.NewTable([]ui.TableColumn{
		{Header: "Creative Assets", Width: 15},
		{Header: "Message", MaxWidth: 50},
		{Header: "Use Case", MaxWidth: 40},
		{Header: "Programs", MaxWidth: 30},
	})

	for _, a := range assets {
		table.AddRow([]string{
			a.ImageName,
			plainMessage(a),
			a.TagLine(),
			joinOrDash(a.Programs),
		})
	}
	return table.Render()
}

// writeAssetsJSON prints an indented JSON array, highlighted on a terminal
func writeAssetsJSON(w io.Writer, assets []domain.Asset, color bool) error {
	if assets == nil {
		assets = []domain.Asset{}
	}

	data, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode assets: %w", err)
	}

	out := string(data)
	if color {
		out = ui.Highlight(out, "json")
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

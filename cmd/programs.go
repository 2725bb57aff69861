package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List the programs assets are published under",
	Long: `List every program found in the published assets, in the order the
web viewer shows them as buttons.`,
	RunE: runPrograms,
}

func runPrograms(cmd *cobra.Command, args []string) error {
	resp, err := loadGallery(getContext())
	if err != nil {
		return fmt.Errorf("failed to list programs: %w", err)
	}

	printLabels(ui.IconProgram+" Programs", resp.Programs, resp.Assets, func(a domain.Asset, p string) bool {
		return a.InProgram(p)
	})
	return nil
}

// printLabels prints a titled list of labels with the number of assets carrying each
func printLabels(title string, labels []string, assets []domain.Asset, has func(domain.Asset, string) bool) {
	if len(labels) == 0 {
		fmt.Println(ui.FormatWarning("None found"))
		return
	}

	items := make([]string, 0, len(labels))
	for _, label := range labels {
		count := 0
		for _, a := range assets {
			if has(a, label) {
				count++
			}
		}
		items = append(items, fmt.Sprintf("%s %s", label, ui.FormatMuted(fmt.Sprintf("(%d)", count))))
	}

	fmt.Println(ui.FormatTitle(title))
	fmt.Println(ui.RenderSimpleList(items))
}

package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/adapters/charts"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var (
	statsChart  bool
	statsOutput string
	statsNoOpen bool
	statsTop    int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show gallery statistics",
	Long: `Summarize the published assets.

Includes:
  - Total, untagged and unassigned asset counts
  - Assets per program
  - Top use-case tags

With --chart, an HTML page with the same numbers as charts is written to the
cache directory (or --output) and opened in the browser.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsChart, "chart", false, "Write an HTML chart page")
	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "", "Chart file path (default: cache/stats.html)")
	statsCmd.Flags().BoolVar(&statsNoOpen, "no-open", false, "Do not open the chart page")
	statsCmd.Flags().IntVar(&statsTop, "top", 5, "Number of tags to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	resp, err := loadGallery(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatRocket("Analyzing gallery..."))

	summary := statsService.Summarize(resp.Assets)
	renderSummary(os.Stdout, summary, statsTop)

	if !statsChart {
		return nil
	}

	path := statsOutput
	if path == "" {
		if err := appDirs.Initialize(); err != nil {
			return err
		}
		path = appDirs.GetCachePath("stats.html")
	}

	if err := charts.WriteFile(path, summary); err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess("Chart written to " + shortenHome(path)))

	if statsNoOpen {
		return nil
	}
	return appOpener.Open(ctx, path)
}

// renderSummary prints the totals table, the program list and the top tag bars
func renderSummary(out io.Writer, summary services.Summary, top int) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.FormatTitle("Gallery Analytics"))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.FormatBold("Total Assets:"), summary.Total)
	fmt.Fprintf(w, "%s\t%d\n", ui.FormatBold("Programs:"), len(summary.Programs))
	fmt.Fprintf(w, "%s\t%d\n", ui.FormatBold("Tags:"), len(summary.Tags))
	fmt.Fprintf(w, "%s\t%d\n", ui.FormatBold("Untagged:"), summary.Untagged)
	fmt.Fprintf(w, "%s\t%d\n", ui.FormatBold("No Program:"), summary.Unassigned)
	w.Flush()
	fmt.Fprintln(out)

	if len(summary.Programs) > 0 {
		fmt.Fprintln(out, ui.StyleHeader.Render("Assets per Program"))
		table := ui.NewTable([]ui.TableColumn{
			{Header: "Program", MaxWidth: 40},
			{Header: "Assets", Align: "right"},
		})
		for _, c := range summary.Programs {
			table.AddRow([]string{c.Name, fmt.Sprintf("%d", c.Count)})
		}
		fmt.Fprint(out, table.Render())
		fmt.Fprintln(out)
	}

	renderTopTags(out, summary.Tags, top)
}

// renderTopTags displays a horizontal bar chart
func renderTopTags(out io.Writer, counts []services.Count, top int) {
	if len(counts) == 0 || top <= 0 {
		return
	}

	fmt.Fprintln(out, ui.StyleHeader.Render("Top Tags"))

	limit := min(top, len(counts))
	maxCount := counts[0].Count
	barWidth := 20

	for _, t := range counts[:limit] {
		length := int(math.Ceil(float64(t.Count) / float64(maxCount) * float64(barWidth)))
		bar := strings.Repeat("█", length)

		fmt.Fprintf(out, "%s %-20s %s\n",
			ui.StyleAccent.Render(bar),
			ui.Truncate(t.Name, 20),
			ui.StyleMuted.Render(fmt.Sprintf("%d", t.Count)),
		)
	}
}

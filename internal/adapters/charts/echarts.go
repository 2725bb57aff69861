// Package charts renders gallery statistics as a standalone HTML page.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kamal-hamza/gallery-cli/internal/core/services"
)

const pageTitle = "Gallery statistics"

// Render writes a page with one bar chart per dimension and a coverage pie
func Render(w io.Writer, summary services.Summary) error {
	page := components.NewPage()
	page.AddCharts(
		barChart("Assets per program", summary.Programs),
		barChart("Assets per tag", summary.Tags),
		coverageChart(summary),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// WriteFile renders the page to path, creating parent directories
func WriteFile(path string, summary services.Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return Render(f, summary)
}

func barChart(title string, counts []services.Count) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: pageTitle}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	names := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		names = append(names, c.Name)
		data = append(data, opts.BarData{Name: c.Name, Value: c.Count})
	}

	bar.SetXAxis(names).AddSeries("Assets", data)
	return bar
}

func coverageChart(summary services.Summary) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: pageTitle}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Tag coverage",
			Subtitle: fmt.Sprintf("%d assets", summary.Total),
		}),
	)

	pie.AddSeries("Coverage", []opts.PieData{
		{Name: "Tagged", Value: summary.Total - summary.Untagged},
		{Name: "Untagged", Value: summary.Untagged},
	})
	return pie
}

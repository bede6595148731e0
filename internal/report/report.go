// Package report renders download history as an interactive HTML page
// using go-echarts line and bar charts.
package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/huangsam/plugtrend/schema"
)

const (
	chartWidth  = "1200px"
	chartHeight = "500px"
	lineWidth   = 2
	dataZoomEnd = 100
)

// Render writes the full HTML report for the given data to outputPath.
// An empty series produces a valid page with a "No data" placeholder chart.
func Render(data *schema.ReportData, outputPath string) error {
	page := components.NewPage()
	page.PageTitle = data.Plugin + " download history"

	if data.Empty() {
		page.AddCharts(emptyChart(data.Plugin))
	} else {
		page.AddCharts(
			totalDownloadsChart(data),
			dailyGrowthChart(data),
			rollingAverageChart(data),
		)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := page.Render(file); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// totalDownloadsChart plots the cumulative counter, with each point colored
// by the version that was active at that snapshot.
func totalDownloadsChart(data *schema.ReportData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    data.Plugin,
			Subtitle: "Cumulative downloads by active version",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: dataZoomEnd},
			opts.DataZoom{Type: "inside"},
		),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
	)
	line.SetXAxis(data.Timestamps)

	// One series per active version label, so the legend doubles as a
	// release timeline. Points outside a version's span hold "-" which
	// echarts treats as a gap.
	for _, label := range seriesOrder(data) {
		points := make([]opts.LineData, len(data.TotalCounts))
		for i := range data.TotalCounts {
			if data.ActiveVersions[i] == label {
				points[i] = opts.LineData{Value: data.TotalCounts[i]}
			} else {
				points[i] = opts.LineData{Value: "-"}
			}
		}
		line.AddSeries(label, points,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: data.VersionColors[label]}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
		)
	}
	return line
}

// dailyGrowthChart plots the per-snapshot growth as bars.
func dailyGrowthChart(data *schema.ReportData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily growth",
			Subtitle: "Counter delta between accepted snapshots",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: dataZoomEnd},
			opts.DataZoom{Type: "inside"},
		),
	)
	bar.SetXAxis(data.Timestamps)

	points := make([]opts.BarData, len(data.DailyGrowth))
	for i, v := range data.DailyGrowth {
		points[i] = opts.BarData{Value: v}
	}
	bar.AddSeries("Growth", points)
	return bar
}

// rollingAverageChart plots the trailing 7 and 30 snapshot averages.
func rollingAverageChart(data *schema.ReportData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Rolling averages",
			Subtitle: "Trailing 7 and 30 snapshot windows over daily growth",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: dataZoomEnd},
			opts.DataZoom{Type: "inside"},
		),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
	)
	line.SetXAxis(data.Timestamps)

	line.AddSeries("7-snapshot avg", rollingPoints(data.Rolling7),
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
	)
	line.AddSeries("30-snapshot avg", rollingPoints(data.Rolling30),
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
	)
	return line
}

func rollingPoints(points []schema.RollingPoint) []opts.LineData {
	out := make([]opts.LineData, len(points))
	for i, p := range points {
		out[i] = opts.LineData{Value: p.Value}
	}
	return out
}

// seriesOrder returns the distinct active version labels in first-appearance
// order, so chart series follow the timeline.
func seriesOrder(data *schema.ReportData) []string {
	seen := make(map[string]bool, len(data.VersionColors))
	var order []string
	for _, label := range data.ActiveVersions {
		if !seen[label] {
			seen[label] = true
			order = append(order, label)
		}
	}
	return order
}

func emptyChart(plugin string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: plugin, Subtitle: "No data"}),
	)
	return line
}

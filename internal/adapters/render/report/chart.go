package report

import (
	"fmt"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/guptarohit/asciigraph"
)

type ChartOptions struct {
	Graph  bool
	Width  int
	Height int
}

// winRateChart plots the cumulative win rate, oldest match on the left.
func winRateChart(summary domain.WinRateSummary, opts ChartOptions) string {
	series := summary.Rolling()
	if len(series) == 0 {
		return ""
	}
	if len(series) == 1 {
		series = append(series, series[0])
	}

	width := opts.Width
	if width < 20 {
		width = 50
	}
	height := opts.Height
	if height < 3 {
		height = 8
	}

	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("win rate over %d matches", summary.Considered)),
	)
}

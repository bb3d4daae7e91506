package report

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"github.com/mourad-alt/chess-stats-visualizer/analysis"
	"github.com/mourad-alt/chess-stats-visualizer/stats"
)

const (
	chartWidth    = 40
	histogramBins = 15
)

// OutcomeChart renders the win/loss/draw proportions as horizontal bars.
// Games with other result tokens show up in the "other" row.
func OutcomeChart(w io.Writer, s stats.Summary) {
	if s.TotalGames == 0 {
		fmt.Fprintln(w, "no games found")
		return
	}
	other := s.TotalGames - s.Wins - s.Losses - s.Draws
	rows := []struct {
		label string
		count int
	}{
		{"win", s.Wins},
		{"lost", s.Losses},
		{"draw", s.Draws},
		{"other", other},
	}
	fmt.Fprintln(w, "Outcomes")
	for _, row := range rows {
		frac := float64(row.count) / float64(s.TotalGames)
		bar := int(frac*chartWidth + 0.5)
		fmt.Fprintf(w, "%-6s %-*s %3d (%5.1f%%)\n",
			row.label, chartWidth, barString(bar), row.count, frac*100)
	}
}

func barString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '#'
	}
	return string(b)
}

// MoveHistogram renders the distribution of per-game move counts.
func MoveHistogram(w io.Writer, metrics []analysis.GameMetrics) error {
	if len(metrics) == 0 {
		fmt.Fprintln(w, "no games found")
		return nil
	}
	moveCounts := lo.Map(metrics, func(m analysis.GameMetrics, _ int) float64 {
		return float64(m.MoveCount)
	})
	fmt.Fprintln(w, "Move counts")
	hist := histogram.Hist(histogramBins, moveCounts)
	return histogram.Fprint(w, hist, histogram.Linear(chartWidth))
}

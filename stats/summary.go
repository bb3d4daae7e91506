package stats

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mourad-alt/chess-stats-visualizer/analysis"
)

// Result tokens the server reports from the queried player's perspective.
// Anything else ("aborted", "outoftime", ...) counts toward the total only.
const (
	ResultWin  = "win"
	ResultLost = "lost"
	ResultDraw = "draw"
)

// Summary is the aggregate over one batch of analyzed games.
type Summary struct {
	TotalGames   int     `json:"total_games"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Draws        int     `json:"draws"`
	AverageMoves float64 `json:"average_moves"`
	StdevMoves   float64 `json:"stdev_moves"`
	MinMoves     int     `json:"min_moves"`
	MaxMoves     int     `json:"max_moves"`
	// MovesCI95 is the half-width of the 95% confidence interval on
	// AverageMoves; 0 when fewer than two games were seen.
	MovesCI95 float64 `json:"moves_ci_95"`
}

// Summarize folds a batch of metrics into one Summary. The empty batch yields
// the zero Summary rather than an error.
func Summarize(metrics []analysis.GameMetrics) Summary {
	if len(metrics) == 0 {
		return Summary{}
	}

	counts := lo.CountValuesBy(metrics, func(m analysis.GameMetrics) string {
		return m.Result
	})

	moves := &Statistic{}
	for _, m := range metrics {
		moves.Push(float64(m.MoveCount))
	}

	return Summary{
		TotalGames:   len(metrics),
		Wins:         counts[ResultWin],
		Losses:       counts[ResultLost],
		Draws:        counts[ResultDraw],
		AverageMoves: moves.Mean(),
		StdevMoves:   moves.Stdev(),
		MinMoves:     int(moves.Min()),
		MaxMoves:     int(moves.Max()),
		MovesCI95:    ZVal(95) * moves.StandardError(),
	}
}

// ZVal returns the two-tailed Z-value associated with a specific confidence
// interval. The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}

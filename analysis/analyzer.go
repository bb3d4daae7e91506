package analysis

import (
	"strings"

	"github.com/samber/lo"

	"github.com/mourad-alt/chess-stats-visualizer/game"
)

// GameMetrics contains the derived numbers for a single game.
type GameMetrics struct {
	ID        string
	MoveCount int
	Result    string
}

// AnalyzeGame derives metrics from one normalized record. The result token is
// carried verbatim; classification happens during aggregation.
func AnalyzeGame(rec game.GameRecord) GameMetrics {
	return GameMetrics{
		ID:        rec.ID,
		MoveCount: len(strings.Fields(rec.Moves)),
		Result:    rec.Status,
	}
}

// AnalyzeAll maps AnalyzeGame over a batch, preserving order.
func AnalyzeAll(records []game.GameRecord) []GameMetrics {
	return lo.Map(records, func(rec game.GameRecord, _ int) GameMetrics {
		return AnalyzeGame(rec)
	})
}

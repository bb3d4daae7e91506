package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/mourad-alt/chess-stats-visualizer/stats"
)

// DefaultFilename is where the text summary lands unless configured otherwise.
const DefaultFilename = "games_summary.txt"

// Render produces the fixed-format text block for a summary.
func Render(username string, s stats.Summary) string {
	var sb strings.Builder
	header := fmt.Sprintf("Game summary for %s", username)
	sb.WriteString(header + "\n")
	sb.WriteString(strings.Repeat("=", len(header)) + "\n")
	fmt.Fprintf(&sb, "Total games:   %d\n", s.TotalGames)
	fmt.Fprintf(&sb, "Wins:          %d\n", s.Wins)
	fmt.Fprintf(&sb, "Losses:        %d\n", s.Losses)
	fmt.Fprintf(&sb, "Draws:         %d\n", s.Draws)
	fmt.Fprintf(&sb, "Average moves: %.2f\n", s.AverageMoves)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Stdev moves:   %.2f\n", s.StdevMoves)
	fmt.Fprintf(&sb, "Shortest game: %d moves\n", s.MinMoves)
	fmt.Fprintf(&sb, "Longest game:  %d moves\n", s.MaxMoves)
	fmt.Fprintf(&sb, "Avg moves 95%% CI: ±%.2f\n", s.MovesCI95)
	return sb.String()
}

// WriteFile renders the summary and persists it, overwriting any existing
// file at path.
func WriteFile(path, username string, s stats.Summary) error {
	if err := os.WriteFile(path, []byte(Render(username, s)), 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}
	return nil
}

package analysis

import (
	"testing"

	"github.com/mourad-alt/chess-stats-visualizer/game"
)

func TestAnalyzeGameMoveCount(t *testing.T) {
	cases := []struct {
		moves string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"e4", 1},
		{"e4 e5 Nf3", 3},
		{"  e4   e5  ", 2},
	}
	for _, c := range cases {
		m := AnalyzeGame(game.GameRecord{ID: "g1", Moves: c.moves, Status: "win"})
		if m.MoveCount != c.want {
			t.Errorf("moves %q: expected MoveCount=%d, got %d", c.moves, c.want, m.MoveCount)
		}
	}
}

func TestAnalyzeGameCarriesFields(t *testing.T) {
	rec := game.GameRecord{
		ID:     "abc123",
		White:  "alice",
		Black:  "bob",
		Moves:  "d4 d5",
		Status: "outoftime",
	}
	m := AnalyzeGame(rec)
	if m.ID != "abc123" {
		t.Errorf("expected ID carried over, got %q", m.ID)
	}
	// The result token is not remapped, even for unusual statuses.
	if m.Result != "outoftime" {
		t.Errorf("expected Result=%q, got %q", "outoftime", m.Result)
	}
}

func TestAnalyzeAllPreservesOrder(t *testing.T) {
	records := []game.GameRecord{
		{ID: "1", Moves: "e4", Status: "win"},
		{ID: "2", Moves: "e4 c5", Status: "lost"},
		{ID: "3", Moves: "", Status: "draw"},
	}
	metrics := AnalyzeAll(records)
	if len(metrics) != 3 {
		t.Fatalf("expected 3 metrics, got %d", len(metrics))
	}
	for i, rec := range records {
		if metrics[i].ID != rec.ID {
			t.Errorf("position %d: expected ID %q, got %q", i, rec.ID, metrics[i].ID)
		}
	}
}

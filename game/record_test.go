package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mourad-alt/chess-stats-visualizer/lichess"
)

func strptr(s string) *string { return &s }

func rawGame(id, white, black, moves, status string) lichess.RawGame {
	return lichess.RawGame{
		ID:      strptr(id),
		Players: rawPlayers(white, black),
		Moves:   strptr(moves),
		Status:  strptr(status),
	}
}

func rawPlayers(white, black string) *lichess.RawPlayers {
	return &lichess.RawPlayers{
		White: &lichess.RawSide{User: &lichess.RawUser{Name: strptr(white)}},
		Black: &lichess.RawSide{User: &lichess.RawUser{Name: strptr(black)}},
	}
}

func TestNormalizeBatchNil(t *testing.T) {
	is := is.New(t)
	is.Equal(len(NormalizeBatch(nil)), 0)
}

func TestNormalizeBatch(t *testing.T) {
	is := is.New(t)
	batch := &lichess.GameBatch{Games: []lichess.RawGame{
		rawGame("g1", "alice", "bob", "e4 e5", "win"),
		rawGame("g2", "alice", "carol", "d4 Nf6 c4", "lost"),
	}}
	records := NormalizeBatch(batch)
	is.Equal(len(records), 2)
	is.Equal(records[0], GameRecord{ID: "g1", White: "alice", Black: "bob", Moves: "e4 e5", Status: "win"})
	is.Equal(records[1].ID, "g2")
}

func TestNormalizeBatchSkipsMalformed(t *testing.T) {
	is := is.New(t)

	noID := rawGame("", "alice", "bob", "e4", "win")
	noID.ID = nil
	noStatus := rawGame("g3", "alice", "bob", "e4", "")
	noStatus.Status = nil
	noMoves := rawGame("g4", "alice", "bob", "", "win")
	noMoves.Moves = nil
	noBlackName := rawGame("g5", "alice", "", "e4", "win")
	noBlackName.Players.Black.User.Name = nil

	batch := &lichess.GameBatch{Games: []lichess.RawGame{
		noID,
		rawGame("g2", "alice", "bob", "e4 e5", "draw"),
		noStatus,
		noMoves,
		rawGame("g6", "dave", "erin", "c4", "lost"),
		noBlackName,
		{},
	}}

	records := NormalizeBatch(batch)
	is.Equal(len(records), 2)
	// Surviving records keep batch order.
	is.Equal(records[0].ID, "g2")
	is.Equal(records[1].ID, "g6")
}

func TestNormalizeBatchKeepsEmptyMovesAndDuplicates(t *testing.T) {
	is := is.New(t)
	batch := &lichess.GameBatch{Games: []lichess.RawGame{
		rawGame("dup", "alice", "bob", "", "draw"),
		rawGame("dup", "alice", "bob", "e4", "win"),
	}}
	records := NormalizeBatch(batch)
	is.Equal(len(records), 2)
	is.Equal(records[0].Moves, "")
	is.Equal(records[0].ID, records[1].ID)
}

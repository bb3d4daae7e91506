package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mourad-alt/chess-stats-visualizer/lichess"
)

// GameRecord is the normalized shape of one completed game. Every field is
// guaranteed present; entries that cannot satisfy that are never constructed.
type GameRecord struct {
	ID     string
	White  string
	Black  string
	Moves  string
	Status string
}

// NormalizeBatch converts a raw batch into GameRecords, in batch order. A nil
// batch yields no records. Malformed entries are skipped with a diagnostic;
// the rest of the batch still goes through.
func NormalizeBatch(batch *lichess.GameBatch) []GameRecord {
	if batch == nil {
		return nil
	}
	records := make([]GameRecord, 0, len(batch.Games))
	for i, raw := range batch.Games {
		rec, err := normalizeGame(raw)
		if err != nil {
			log.Warn().Err(err).Int("entry", i).Msg("skipping malformed game entry")
			continue
		}
		records = append(records, rec)
	}
	return records
}

func normalizeGame(raw lichess.RawGame) (GameRecord, error) {
	if raw.ID == nil {
		return GameRecord{}, fmt.Errorf("missing id")
	}
	white, err := playerName(raw.Players, "white")
	if err != nil {
		return GameRecord{}, err
	}
	black, err := playerName(raw.Players, "black")
	if err != nil {
		return GameRecord{}, err
	}
	if raw.Moves == nil {
		return GameRecord{}, fmt.Errorf("missing moves")
	}
	if raw.Status == nil {
		return GameRecord{}, fmt.Errorf("missing status")
	}
	return GameRecord{
		ID:     *raw.ID,
		White:  white,
		Black:  black,
		Moves:  *raw.Moves,
		Status: *raw.Status,
	}, nil
}

func playerName(players *lichess.RawPlayers, color string) (string, error) {
	if players == nil {
		return "", fmt.Errorf("missing players")
	}
	side := players.White
	if color == "black" {
		side = players.Black
	}
	if side == nil || side.User == nil || side.User.Name == nil {
		return "", fmt.Errorf("missing %s player name", color)
	}
	return *side.User.Name, nil
}

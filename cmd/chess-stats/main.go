package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mourad-alt/chess-stats-visualizer/analysis"
	"github.com/mourad-alt/chess-stats-visualizer/config"
	"github.com/mourad-alt/chess-stats-visualizer/game"
	"github.com/mourad-alt/chess-stats-visualizer/lichess"
	"github.com/mourad-alt/chess-stats-visualizer/report"
	"github.com/mourad-alt/chess-stats-visualizer/stats"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Set up logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().
		Str("username", cfg.Username).
		Int("max-games", cfg.MaxGames).
		Msg("fetching recent games")

	client := lichess.NewClient(cfg.APIBaseURL)

	// One straight-line run: fetch, normalize, analyze, aggregate, report.
	// A failed fetch degrades to a zero-valued report instead of aborting.
	batch, err := client.FetchRecentGames(context.Background(), cfg.Username, cfg.MaxGames)
	if err != nil {
		log.Warn().Err(err).Msg("fetch failed; continuing with no games")
		batch = nil
	}

	records := game.NormalizeBatch(batch)
	metrics := analysis.AnalyzeAll(records)
	summary := stats.Summarize(metrics)

	if summary.TotalGames == 0 {
		log.Info().Msg("no games found")
	}

	fmt.Print(report.Render(cfg.Username, summary))
	fmt.Println()
	report.OutcomeChart(os.Stdout, summary)
	fmt.Println()
	if err := report.MoveHistogram(os.Stdout, metrics); err != nil {
		log.Error().Err(err).Msg("failed to render move histogram")
	}

	if err := report.WriteFile(cfg.OutputFile, cfg.Username, summary); err != nil {
		log.Error().Err(err).Msg("failed to write summary file")
	} else {
		log.Info().Str("path", cfg.OutputFile).Msg("wrote summary file")
	}
}

package config

import "github.com/namsral/flag"

type Config struct {
	Username   string
	MaxGames   int
	APIBaseURL string
	OutputFile string
	Debug      bool
}

func DefaultConfig() *Config {
	return &Config{
		Username:   "DrNykterstein",
		MaxGames:   10,
		APIBaseURL: "https://lichess.org/api",
		OutputFile: "games_summary.txt",
	}
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("chess-stats", flag.ContinueOnError)
	fs.StringVar(&c.Username, "username", c.Username, "player whose recent games are fetched")
	fs.IntVar(&c.MaxGames, "max-games", c.MaxGames, "maximum number of recent games to fetch")
	fs.StringVar(&c.APIBaseURL, "api-base-url", c.APIBaseURL, "base URL of the game export API")
	fs.StringVar(&c.OutputFile, "output-file", c.OutputFile, "path the text summary is written to")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	err := fs.Parse(args)
	return err
}

package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tictactoe/experiments"
)

func main() {
	games := flag.Int("games", experiments.DefaultGames, "games per matchup")
	depth := flag.Int("depth", experiments.DefaultDepth, "search depth in plies")
	size := flag.Int("size", experiments.DefaultSize, "board side length")
	seed := flag.Uint64("seed", 0, "master random seed, 0 picks one from the clock")
	name := flag.String("experiment", "selfplay", "experiment to run: selfplay, depths or random")
	record := flag.Bool("record", false, "store CSV records under experiments/")
	debug := flag.Bool("debug", false, "log per-game detail")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().
		Logger()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
		log.Info().Uint64("seed", *seed).Msg("picked a seed")
	}

	cfg := experiments.Config{
		Games:  *games,
		Size:   *size,
		Depth:  *depth,
		Seed:   *seed,
		Record: *record,
	}

	var matchups []experiments.Matchup
	switch *name {
	case "selfplay":
		matchups = experiments.RunSelfPlay(cfg)
	case "depths":
		matchups = experiments.RunDepthToStrength(cfg)
	case "random":
		matchups = experiments.RunRandomBaseline(cfg)
	default:
		log.Fatal().Str("experiment", *name).Msg("unknown experiment")
	}

	for _, m := range matchups {
		experiments.PrintSummary(m)
	}
}

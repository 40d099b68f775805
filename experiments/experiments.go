package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

// Defaults reproduce the reference run: 100 self-play games at depth 6
// on a 3x3 board.
const (
	DefaultGames = 100
	DefaultSize  = 3
	DefaultDepth = 6
)

// Config parameterizes a batch of games.
type Config struct {
	Games  int
	Size   int
	Depth  int
	Seed   uint64 // Master seed; per-game agent seeds derive from it
	Record bool   // Store CSV records under experiments/
}

func (c Config) withDefaults() Config {
	if c.Games <= 0 {
		c.Games = DefaultGames
	}
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.Depth <= 0 {
		c.Depth = DefaultDepth
	}
	return c
}

// Summary tallies the outcomes of one matchup.
type Summary struct {
	Games            int
	Wins             [2]int // Indexed by player, player 0 moves first
	Draws            int
	TotalMoves       int
	TotalEvaluations int
}

func (s *Summary) add(winner game.Player, gameMetric metrics.GameMetric) {
	s.Games++
	s.TotalMoves += gameMetric.TotalMoves
	s.TotalEvaluations += gameMetric.Evaluations
	if winner == game.NoPlayer {
		s.Draws++
	} else {
		s.Wins[winner]++
	}
}

// AvgEvaluations returns the mean number of positions searched per game.
func (s Summary) AvgEvaluations() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalEvaluations) / float64(s.Games)
}

// Matchup pairs two agent configs with the summary of their games.
// The first agent plays player 0.
type Matchup struct {
	Agent1  metrics.AgentConfig
	Agent2  metrics.AgentConfig
	Summary Summary
}

// RunSelfPlay plays one negamax configuration against itself, the
// reference experiment.
func RunSelfPlay(cfg Config) []Matchup {
	cfg = cfg.withDefaults()
	config := metrics.AgentConfig{ID: 1, Kind: "negamax", Depth: cfg.Depth, Seed: cfg.Seed}

	return runExperiment("self_play", cfg,
		[]metrics.AgentConfig{config},
		[][2]metrics.AgentConfig{{config, config}})
}

// RunDepthToStrength pits a ladder of search depths against a fixed
// baseline depth to measure how much each extra ply is worth.
func RunDepthToStrength(cfg Config) []Matchup {
	cfg = cfg.withDefaults()
	baseline := metrics.AgentConfig{ID: 0, Kind: "negamax", Depth: cfg.Depth, Seed: cfg.Seed}

	matchUps := [][2]metrics.AgentConfig{}
	configs := []metrics.AgentConfig{baseline}
	for _, config := range depthLadder(cfg) {
		configs = append(configs, config)
		// TODO: alternate starting agent
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth_to_strength", cfg, configs, matchUps)
}

// RunRandomBaseline pits the depth ladder against the random agent.
func RunRandomBaseline(cfg Config) []Matchup {
	cfg = cfg.withDefaults()
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: cfg.Seed}

	matchUps := [][2]metrics.AgentConfig{}
	configs := []metrics.AgentConfig{baseline}
	for _, config := range depthLadder(cfg) {
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("random_baseline", cfg, configs, matchUps)
}

// depthLadder enumerates negamax configs from depth 1 up to a full
// exhaustive search of the board.
func depthLadder(cfg Config) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for depth := 1; depth <= cfg.Size*cfg.Size; depth++ {
		configs = append(configs, metrics.AgentConfig{
			ID:    depth,
			Kind:  "negamax",
			Depth: depth,
			Seed:  cfg.Seed,
		})
	}
	return configs
}

func runExperiment(name string, cfg Config, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) []Matchup {
	// Per-game agent seeds derive from one master source so a single
	// seed flag reproduces the whole experiment.
	master := rand.New(rand.NewSource(cfg.Seed))

	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	matchups := []Matchup{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		summary := Summary{}
		for i := 0; i < cfg.Games; i++ {
			winner, gameMetric, moveMetrics := runGame(cfg, config1, config2, master)

			count++
			summary.add(winner, gameMetric)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d game %d of %d with winner: %d",
				mi+1, i+1, cfg.Games, winner)
		}

		matchups = append(matchups, Matchup{Agent1: config1, Agent2: config2, Summary: summary})
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	if cfg.Record {
		storeRecords(name, configs, gameRecords, moveRecords)
	}

	return matchups
}

// runGame plays a single game between two agent configs and returns the
// winner with the game's metrics.
func runGame(cfg Config, config1, config2 metrics.AgentConfig, master *rand.Rand) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	agents := [2]engine.Agent{
		newAgent(config1, master.Uint64()),
		newAgent(config2, master.Uint64()),
	}
	board := game.NewBoard(cfg.Size)

	e := engine.Local(board, agents)
	return e.Run()
}

func newAgent(config metrics.AgentConfig, seed uint64) engine.Agent {
	switch config.Kind {
	case "negamax":
		return searcher.NewNegamax(
			searcher.WithDepth(config.Depth),
			searcher.WithSeed(seed),
			searcher.WithMetrics())
	case "random":
		return searcher.NewRandom(searcher.WithRandomSeed(seed))
	default:
		panic(fmt.Sprintf("unknown agent kind: %q", config.Kind))
	}
}

func storeRecords(name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store game records: %v", err))
	}

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store move records: %v", err))
	}

	log.Info().Msgf("stored records under %s", writer.BaseDir())
}

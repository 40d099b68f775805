package metrics

import (
	"time"

	"tictactoe/game"
)

// SearchMetric describes the work a single search did.
type SearchMetric struct {
	Depth    int
	Nodes    int // Positions evaluated
	Duration time.Duration
}

type MoveMetric struct {
	Step   int
	Player game.Player
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer on a draw
	TotalMoves     int
	Evaluations    int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// AgentConfig identifies an agent setup within an experiment.
type AgentConfig struct {
	ID    int
	Kind  string // "negamax" or "random"
	Depth int    // Search depth, negamax only
	Seed  uint64
}

type Collector interface {
	Start(depth int)
	AddNodes(count int)
	Complete() SearchMetric
}

// collector accumulates the work of one search at a time. Searches run
// synchronously, so plain counters suffice.
type collector struct {
	depth     int
	startTime time.Time
	nodes     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes = 0
}

func (m *collector) AddNodes(count int) {
	m.nodes += count
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Nodes:    m.nodes,
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNodes(count int)     {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }

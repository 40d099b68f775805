package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/utils"
)

// Agent picks the next move for the side to move. Implementations may
// mutate the board during lookahead but must leave it as they found it.
type Agent interface {
	Name() string
	FindMove(b *game.Board) (game.Square, metrics.SearchMetric)
}

// Engine drives one local game between two agents sharing a board.
// Agents are indexed by the player they play for.
type Engine struct {
	board  *game.Board
	agents [2]Agent
}

func Local(board *game.Board, agents [2]Agent) *Engine {
	if board == nil {
		panic("need a board to play on")
	}
	if agents[0] == nil || agents[1] == nil {
		panic("need exactly two agents")
	}
	return &Engine{board: board, agents: agents}
}

// Run plays the game out: while it is open, the agent of the side to
// move picks a square, which is checked against the board's legal moves
// and then played unconditionally. An agent returning an occupied
// square is a programmer error and panics rather than corrupting the
// board. Returns the winner (NoPlayer on a draw) along with the game
// and per-move metrics.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	startingPlayer := e.board.Turn
	startingEvaluations := e.board.Evaluations

	log.Debug().Int("player", int(startingPlayer)).Msgf("%s is starting", e.agents[startingPlayer].Name())

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !e.board.IsOver() {
		player := e.board.Turn
		agent := e.agents[player]

		sq, searchMetric := agent.FindMove(e.board)
		if utils.FindIndex(e.board.Moves(), sq) == -1 {
			panic("agent picked an illegal square")
		}
		e.board.MakeMove(sq)

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: searchMetric,
		})
	}

	winner := e.board.Winner()
	end := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: startingPlayer,
		Winner:         winner,
		TotalMoves:     step,
		Evaluations:    e.board.Evaluations - startingEvaluations,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
	}

	log.Debug().
		Int("winner", int(winner)).
		Int("moves", step).
		Int("evaluations", gameMetric.Evaluations).
		Msg("game over")

	return winner, gameMetric, moveMetrics
}

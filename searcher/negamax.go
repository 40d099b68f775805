package searcher

import (
	"fmt"
	"math"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(n *Negamax)

// Negamax picks moves by depth-limited negamax search with alpha-beta
// pruning. A searcher is not safe for concurrent use: it mutates the
// board in place and shares one random source across calls.
type Negamax struct {
	depth   int
	rng     *rand.Rand
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(n *Negamax) {
		if depth > 0 {
			n.depth = depth
		}
	}
}

// WithSeed fixes the random source that decides between equally strong
// moves, making searches reproducible.
func WithSeed(seed uint64) Option {
	return func(n *Negamax) {
		n.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(n *Negamax) {
		if rng != nil {
			n.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = metrics.NewCollector()
	}
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	if n.depth <= 0 {
		panic("Must specify a search depth")
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return n
}

func (n *Negamax) Name() string {
	return fmt.Sprintf("negamax-%d", n.depth)
}

// FindMove searches the position over the full value window at the
// configured depth and reports how much work the search did.
func (n *Negamax) FindMove(b *game.Board) (game.Square, metrics.SearchMetric) {
	n.metrics.Start(n.depth)
	before := b.Evaluations
	sq, _ := n.Search(b, math.Inf(-1), math.Inf(1), n.depth)
	n.metrics.AddNodes(b.Evaluations - before)
	return sq, n.metrics.Complete()
}

// BestMove returns the move Search picks within the given window.
func (n *Negamax) BestMove(b *game.Board, alpha, beta float64, depth int) game.Square {
	sq, _ := n.Search(b, alpha, beta, depth)
	return sq
}

// Search scores the position for the side to move and picks a move for
// it. A position the opponent already won scores -Inf, then a full board
// scores 0, then at depth 0 the heuristic decides; all three return
// NoSquare. Otherwise each free square is tried in order: counted on the
// board's evaluation counter, played, scored by negating the search of
// the opponent's swapped window, and undone. Equal scores accumulate and
// the choice between them is uniformly random; a strictly better score
// restarts the accumulation and, past beta, ends the search early. The
// returned value is fail soft: the best score seen, even outside the
// window.
func (n *Negamax) Search(b *game.Board, alpha, beta float64, depth int) (game.Square, float64) {
	if b.IsWon() {
		return game.NoSquare, math.Inf(-1)
	} else if b.IsFull() {
		return game.NoSquare, 0
	} else if depth == 0 {
		return game.NoSquare, b.Heuristic()
	}

	var bestMoves []game.Square
	value := math.Inf(-1)
	bestValue := math.Inf(-1)
	for _, sq := range b.Moves() {
		b.Evaluations++
		b.MakeMove(sq)
		_, reply := n.Search(b, -beta, -alpha, depth-1)
		score := -reply
		value = math.Max(value, score)
		b.UndoMove(sq)

		if score == bestValue {
			bestMoves = append(bestMoves, sq)
		} else if score > bestValue {
			bestValue = score
			bestMoves = []game.Square{sq}
			if score > beta { // Beta cutoff
				break
			}
		}
		alpha = math.Max(alpha, score)
	}

	if len(bestMoves) == 0 {
		panic("Can't choose from 0 moves")
	}
	return bestMoves[n.rng.Intn(len(bestMoves))], value
}

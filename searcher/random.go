package searcher

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"time"

	"golang.org/x/exp/rand"
)

type RandomOption func(r *Random)

// Random plays a uniformly random legal move. It serves as the baseline
// opponent in experiments.
type Random struct {
	rng *rand.Rand
}

func WithRandomSeed(seed uint64) RandomOption {
	return func(r *Random) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRandomRand(rng *rand.Rand) RandomOption {
	return func(r *Random) {
		if rng != nil {
			r.rng = rng
		}
	}
}

func NewRandom(options ...RandomOption) *Random {
	r := &Random{}
	for _, option := range options {
		option(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return r
}

func (r *Random) Name() string {
	return "random"
}

// FindMove picks any free square with equal probability.
func (r *Random) FindMove(b *game.Board) (game.Square, metrics.SearchMetric) {
	start := time.Now()
	moves := b.Moves()
	if len(moves) == 0 {
		panic("Can't choose from 0 moves")
	}
	sq := moves[r.rng.Intn(len(moves))]
	return sq, metrics.SearchMetric{Duration: time.Since(start)}
}

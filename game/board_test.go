package game

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/**
Tests the bitboard state:
- construction: win masks per size, rejected sizes
- make/undo: turn alternation, exact inversion over random playouts
- move generation: ascending, complete, shrinks by one per move
- termination: win attribution to the mover, full board, win+full overlap
*/

func TestNewBoard(t *testing.T) {
	t.Run("building the documented 3x3 win masks", func(t *testing.T) {
		b := NewBoard(3)

		want := []uint32{
			0b000000111, 0b000111000, 0b111000000, // rows
			0b001001001, 0b010010010, 0b100100100, // columns
			0b100010001, 0b001010100, // diagonals
		}
		require.Equal(t, want, b.wins, "Board should build rows, columns, then diagonals")
	})

	t.Run("building 2n+2 masks of n bits for every size", func(t *testing.T) {
		for size := 1; size <= MaxSize; size++ {
			b := NewBoard(size)

			require.Len(t, b.wins, 2*size+2, "Board should hold one mask per line")
			for _, mask := range b.wins {
				require.Equal(t, size, bits.OnesCount32(mask), "Each line should cover size squares")
				require.Zero(t, mask&^b.fullMask(), "Each line should stay on the board")
			}
		}
	})

	t.Run("rejecting sizes outside the supported range", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(0) }, "Board should reject size 0")
		require.Panics(t, func() { NewBoard(-1) }, "Board should reject negative sizes")
		require.Panics(t, func() { NewBoard(MaxSize + 1) }, "Board should reject sizes overflowing the bitboards")
	})

	t.Run("starting empty with player 0 to move", func(t *testing.T) {
		b := NewBoard(3)

		require.Equal(t, [2]uint32{0, 0}, b.Players, "Board should start empty")
		require.Equal(t, Player(0), b.Turn, "Player 0 should move first")
		require.Zero(t, b.Evaluations, "Evaluation counter should start at zero")
		require.Equal(t, 3, b.Size())
	})
}

func TestMakeUndoMove(t *testing.T) {
	t.Run("making a move marks the mover and passes the turn", func(t *testing.T) {
		b := NewBoard(3)

		b.MakeMove(4)

		require.Equal(t, uint32(1<<4), b.Players[0], "Square 4 should belong to player 0")
		require.Zero(t, b.Players[1], "Player 1 should have no marks")
		require.Equal(t, Player(1), b.Turn, "Turn should pass to player 1")
	})

	t.Run("undoing a move restores the exact previous position", func(t *testing.T) {
		b := NewBoard(3)
		b.MakeMove(4)
		before := *b

		b.MakeMove(0)
		b.UndoMove(0)

		require.Equal(t, before.Players, b.Players, "Undo should restore the bitboards")
		require.Equal(t, before.Turn, b.Turn, "Undo should restore the turn")
	})

	t.Run("undoing a random playout move by move empties the board", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for round := 0; round < 20; round++ {
			b := NewBoard(3)
			var played []Square
			for !b.IsOver() {
				moves := b.Moves()
				sq := moves[rng.Intn(len(moves))]
				b.MakeMove(sq)
				played = append(played, sq)
			}

			for i := len(played) - 1; i >= 0; i-- {
				b.UndoMove(played[i])
			}

			require.Equal(t, [2]uint32{0, 0}, b.Players, "Full undo should empty the board")
			require.Equal(t, Player(0), b.Turn, "Full undo should return the turn to player 0")
		}
	})
}

func TestMoves(t *testing.T) {
	t.Run("listing every square of the empty board in ascending order", func(t *testing.T) {
		b := NewBoard(3)

		got := b.Moves()

		want := []Square{0, 1, 2, 3, 4, 5, 6, 7, 8}
		require.Equal(t, want, got, "Empty board should offer all squares in order")
	})

	t.Run("excluding occupied squares", func(t *testing.T) {
		b := NewBoard(3)
		b.MakeMove(4)
		b.MakeMove(0)

		got := b.Moves()

		want := []Square{1, 2, 3, 5, 6, 7, 8}
		require.Equal(t, want, got, "Occupied squares should not be offered")
	})

	t.Run("shrinking by exactly one move per ply", func(t *testing.T) {
		b := NewBoard(3)
		for expected := 9; expected > 0; expected-- {
			moves := b.Moves()
			require.Len(t, moves, expected, "Each ply should remove one square")
			b.MakeMove(moves[0])
		}
		require.Empty(t, b.Moves(), "Full board should offer no moves")
	})
}

func TestTermination(t *testing.T) {
	t.Run("attributing a win to the player who just moved", func(t *testing.T) {
		b := NewBoard(3)
		// Player 0 takes the top row while player 1 follows beneath
		for _, sq := range []Square{0, 3, 1, 4} {
			b.MakeMove(sq)
			require.False(t, b.IsWon(), "No line is complete yet")
		}
		b.MakeMove(2)

		require.True(t, b.IsWon(), "Top row should win")
		require.True(t, b.IsOver())
		require.Equal(t, Player(0), b.Winner(), "The mover holds the line")
		require.Equal(t, Player(1), b.Turn, "The turn already passed to the loser")
	})

	t.Run("attributing a win to player 1", func(t *testing.T) {
		b := NewBoard(3)
		for _, sq := range []Square{0, 3, 1, 4, 8, 5} {
			b.MakeMove(sq)
		}

		require.True(t, b.IsWon(), "Middle row should win")
		require.Equal(t, Player(1), b.Winner())
	})

	t.Run("detecting a drawn full board", func(t *testing.T) {
		b := NewBoard(3)
		for _, sq := range []Square{0, 4, 8, 1, 7, 6, 2, 5, 3} {
			b.MakeMove(sq)
		}

		require.True(t, b.IsFull(), "All nine squares are taken")
		require.False(t, b.IsWon(), "Nobody completed a line")
		require.True(t, b.IsOver(), "A full board ends the game")
		require.Equal(t, NoPlayer, b.Winner(), "A draw has no winner")
	})

	t.Run("detecting a win on the very last square", func(t *testing.T) {
		b := NewBoard(3)
		for _, sq := range []Square{0, 3, 1, 4, 6, 7, 5, 8, 2} {
			b.MakeMove(sq)
		}

		require.True(t, b.IsFull())
		require.True(t, b.IsWon(), "The final move completed the top row")
		require.Equal(t, Player(0), b.Winner())
	})

	t.Run("running game is not over", func(t *testing.T) {
		b := NewBoard(3)
		b.MakeMove(4)

		require.False(t, b.IsWon())
		require.False(t, b.IsFull())
		require.False(t, b.IsOver())
		require.Equal(t, NoPlayer, b.Winner())
	})
}

func TestString(t *testing.T) {
	b := NewBoard(3)
	for _, sq := range []Square{4, 0, 8} {
		b.MakeMove(sq)
	}

	require.Equal(t, "O..\n.X.\n..X", b.String())
}

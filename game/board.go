package game

import (
	"math/bits"
	"strings"
)

// Player indexes a side. Player 0 moves first.
type Player int

// NoPlayer marks the absence of a winner, i.e. a drawn game.
const NoPlayer Player = -1

// Square is a row-major board index, 0 at the top-left corner.
type Square int

// NoSquare marks the absence of a move, returned from terminal positions.
const NoSquare Square = -1

// MaxSize bounds the side length so that size*size squares still fit into
// the 32-bit occupancy words.
const MaxSize = 5

// Board is the dynamic state of a game: one occupancy bitboard per player,
// the side to move, and the winning line masks (the only static part,
// derived from the size). Bit i of a bitboard is set when that player
// occupies square i.
type Board struct {
	Players     [2]uint32 // Occupancy bitboards, indexed by player
	Turn        Player    // The player to move next
	Evaluations int       // Positions evaluated by search, for diagnostics

	size int
	wins []uint32 // Winning line masks, built once at construction
}

// NewBoard initializes and returns an empty size x size board with
// player 0 to move.
func NewBoard(size int) *Board {
	if size < 1 || size > MaxSize {
		panic("Board size must be between 1 and 5")
	}
	return &Board{size: size, wins: winMasks(size)}
}

// winMasks generates the masks for the win conditions: size rows, size
// columns, the descending diagonal, then the ascending diagonal.
func winMasks(size int) []uint32 {
	wins := make([]uint32, 0, 2*size+2)

	// Rows
	mask := uint32(1)<<size - 1
	for i := 0; i < size; i++ {
		wins = append(wins, mask)
		mask <<= size
	}

	// Columns
	mask = 0
	for i := 0; i < size; i++ {
		mask = mask<<size | 1
	}
	for i := 0; i < size; i++ {
		wins = append(wins, mask)
		mask <<= 1
	}

	// Descending diagonal: one more than a row step per square
	mask = 0
	for i := 0; i < size; i++ {
		mask = mask<<(size+1) | 1
	}
	wins = append(wins, mask)

	// Ascending diagonal: one less, anchored at the top-right corner
	mask = 0
	for i := 0; i < size; i++ {
		mask = mask<<(size-1) | 1
	}
	wins = append(wins, mask<<(size-1))

	return wins
}

// Size returns the side length fixed at construction.
func (b *Board) Size() int {
	return b.size
}

// MakeMove puts the mover's mark on square sq and passes the turn.
// The square must be free; callers pick from Moves.
func (b *Board) MakeMove(sq Square) {
	b.Players[b.Turn] ^= 1 << sq
	b.Turn = 1 - b.Turn
}

// UndoMove reverses MakeMove for square sq, restoring the previous turn.
func (b *Board) UndoMove(sq Square) {
	b.Turn = 1 - b.Turn
	b.Players[b.Turn] ^= 1 << sq
}

// Moves returns the free squares in ascending order.
func (b *Board) Moves() []Square {
	moves := make([]Square, 0, b.size*b.size)
	free := b.fullMask() &^ (b.Players[0] | b.Players[1])
	for free != 0 {
		moves = append(moves, Square(bits.TrailingZeros32(free)))
		free &= free - 1
	}
	return moves
}

// fullMask has one bit set per square of the board.
func (b *Board) fullMask() uint32 {
	return 1<<(b.size*b.size) - 1
}

// IsWon reports whether the player who just moved completed a line.
// Only that player can have won: the game stops before the other answers.
func (b *Board) IsWon() bool {
	x := b.Players[1-b.Turn]
	for _, mask := range b.wins {
		if x&mask == mask {
			return true
		}
	}
	return false
}

// IsFull reports whether no more move is possible.
func (b *Board) IsFull() bool {
	return b.Players[0]|b.Players[1] == b.fullMask()
}

// IsOver reports whether the game ended, by win, by full board, or both.
func (b *Board) IsOver() bool {
	return b.IsFull() || b.IsWon()
}

// Winner returns the player holding a completed line, or NoPlayer while
// the game is running or drawn.
func (b *Board) Winner() Player {
	if b.IsWon() {
		return 1 - b.Turn
	}
	return NoPlayer
}

// String renders the position as a grid, player 0 as X and player 1 as O.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.size; col++ {
			mask := uint32(1) << (row*b.size + col)
			switch {
			case b.Players[0]&mask != 0:
				sb.WriteByte('X')
			case b.Players[1]&mask != 0:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

package game

import "math/bits"

// Threats scores how close player p is to winning: the sum, over every
// line the opponent has no mark on, of the squared count of p's marks on
// that line. Squaring rewards nearly complete lines over scattered marks.
func (b *Board) Threats(p Player) float64 {
	player := b.Players[p]
	opponent := b.Players[1-p]
	threats := 0
	for _, mask := range b.wins {
		if opponent&mask != 0 {
			continue
		}
		n := bits.OnesCount32(player & mask)
		threats += n * n
	}
	return float64(threats)
}

// Heuristic returns a score indicating how favorable the position is to
// the side to move: that side's threats minus the opponent's. Zero-sum,
// so negating it gives the opponent's view.
func (b *Board) Heuristic() float64 {
	return b.Threats(b.Turn) - b.Threats(1-b.Turn)
}

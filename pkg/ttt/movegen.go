package ttt

import "math/bits"

// Generate all empty cells of the board, in ascending position order
func (b Board) EmptyCells() *MoveList {
	movelist := NewMoveList()

	free := uint(0b111111111 ^ (b.bitboard(Cross) | b.bitboard(Circle)))
	for free != 0 {
		movelist.AppendMove(PosType(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}

func (b Board) CountEmpty() int {
	return bits.OnesCount(uint(0b111111111 ^ (b.bitboard(Cross) | b.bitboard(Circle))))
}

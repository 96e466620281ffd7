package ttt

// Fixed 9-cell grid, row-major. Being an array, it is compared cell by cell
// and can be used directly as a map key.
type Board [9]PlayerType

func NewBoard() Board {
	return Board{}
}

// Set all cells to None
func (b *Board) Init() {
	*b = Board{}
}

// Put player's piece on given position, doesn't check if the cell is empty
func (b *Board) Play(player PlayerType, pos PosType) {
	b[pos] = player
}

func (b Board) At(pos PosType) PlayerType {
	return b[pos]
}

// Whose move it is, based on piece count (cross moves first)
func (b Board) Turn() PlayerType {
	crosses, circles := 0, 0
	for _, c := range b {
		switch c {
		case Cross:
			crosses++
		case Circle:
			circles++
		}
	}
	if crosses > circles {
		return Circle
	}
	return Cross
}

// Lexicographic, cell-by-cell ordering of the boards, returns -1, 0 or 1
func Compare(left, right Board) int {
	for i := range left {
		if left[i] < right[i] {
			return -1
		} else if left[i] > right[i] {
			return 1
		}
	}
	return 0
}

// bitboard of the player's pieces, bit i set means position i is taken
func (b Board) bitboard(player PlayerType) uint {
	bb := uint(0)
	for i, c := range b {
		if c == player {
			bb |= 1 << i
		}
	}
	return bb
}

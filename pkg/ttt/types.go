package ttt

type PosType uint8
type PlayerType uint8
type BoardState uint8
type MoveResult uint8

const (
	None   PlayerType = 0
	Cross  PlayerType = 1 // always moves first
	Circle PlayerType = 2
)

// Enum for the squares, position = column + row*3
const (
	A1 PosType = iota
	B1
	C1
	A2
	B2
	C2
	A3
	B3
	C3
)

const (
	PosIllegal PosType = 255
)

const (
	Won BoardState = iota
	Complete
	Incomplete
)

const (
	Win MoveResult = iota
	Draw
	Good
	Bad
)

// Returns the other player, None stays None
func (p PlayerType) Opponent() PlayerType {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

func (p PlayerType) Rune() rune {
	switch p {
	case Cross:
		return 'X'
	case Circle:
		return 'O'
	}
	return '.'
}

func (p PlayerType) String() string {
	return string(p.Rune())
}

func (s BoardState) String() string {
	switch s {
	case Won:
		return "Won"
	case Complete:
		return "Complete"
	}
	return "Incomplete"
}

func (r MoveResult) String() string {
	switch r {
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	case Good:
		return "Good"
	}
	return "Bad"
}

// Convert (column, row) pair into a position, returns PosIllegal if out of range
func PosFromColRow(col, row int) PosType {
	if col < 0 || col > 2 || row < 0 || row > 2 {
		return PosIllegal
	}
	return PosType(col + row*3)
}

// Get the (column, row) pair of this position
func (pos PosType) ColRow() (int, int) {
	return int(pos) % 3, int(pos) / 3
}

func (pos PosType) Valid() bool {
	return pos < 9
}

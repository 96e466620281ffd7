package ttt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotationLength = errors.New("ttt: notation must describe exactly 9 cells")
	ErrNotationPiece  = errors.New("ttt: invalid piece in notation")
)

// String notation of the board, 3 rows of 3 characters separated with '\n':
//
//	XX.
//	.O.
//	...
func (b Board) String() string {
	builder := strings.Builder{}
	builder.Grow(11)
	for i, c := range b {
		if i > 0 && i%3 == 0 {
			builder.WriteByte('\n')
		}
		builder.WriteRune(c.Rune())
	}
	return builder.String()
}

// Parse the board notation, rows may be separated by '/', whitespace or
// nothing at all, for example:
//
//	XX./.O./...
func ParseBoard(notation string) (Board, error) {
	var board Board
	i := 0
	for _, r := range notation {
		switch r {
		case '/', ' ', '\n', '\t', '\r':
			continue
		}

		if i >= 9 {
			return Board{}, ErrNotationLength
		}

		switch r {
		case 'x', 'X':
			board[i] = Cross
		case 'o', 'O':
			board[i] = Circle
		case '.', '-', '_':
			board[i] = None
		default:
			return Board{}, fmt.Errorf("%w: %q at cell %d", ErrNotationPiece, r, i)
		}
		i++
	}

	if i != 9 {
		return Board{}, ErrNotationLength
	}
	return board, nil
}

// Same as ParseBoard, but panics on error, meant for tests and constants
func MustParseBoard(notation string) Board {
	board, err := ParseBoard(notation)
	if err != nil {
		panic(err)
	}
	return board
}

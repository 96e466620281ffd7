package session

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-rlttt/pkg/ttt"
)

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) piece(p ttt.PlayerType) string {
	if s.out.Profile == termenv.Ascii || p == ttt.None {
		return p.String()
	}

	color := "4" // blue
	if p == ttt.Circle {
		color = "1" // red
	}
	return s.out.String(p.String()).Foreground(s.out.Color(color)).Bold().String()
}

// Print the board as 3 rows of 'X', 'O' and '.', without a trailing newline
func (s *Session) printBoard(board ttt.Board) {
	builder := strings.Builder{}
	for i := range 9 {
		if i > 0 && i%3 == 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(s.piece(board.At(ttt.PosType(i))))
	}
	fmt.Fprint(s.out, builder.String())
}

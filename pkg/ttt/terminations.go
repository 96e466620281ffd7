package ttt

// horizontal, vertical and diagonal patterns as bitboards (bit i = position i)
var _winningBitboardPatterns [8]uint = [...]uint{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// Check the board for given player, three in a row takes priority
// over a filled board
func (b Board) Evaluate(player PlayerType) BoardState {
	bb := b.bitboard(player)
	for i := range 8 {
		if bb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return Won
		}
	}

	if (b.bitboard(Cross) | b.bitboard(Circle)) == 0b111111111 {
		return Complete
	}
	return Incomplete
}

// Lookahead: what would happen if player moved to pos, the board is not modified
func (b Board) WouldMove(player PlayerType, pos PosType) MoveResult {
	if !pos.Valid() || b[pos] != None {
		return Bad
	}

	b[pos] = player
	switch b.Evaluate(player) {
	case Won:
		return Win
	case Complete:
		return Draw
	}
	return Good
}

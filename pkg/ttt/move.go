package ttt

type MoveList struct {
	Moves [9]PosType
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv PosType) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

func (ml *MoveList) Slice() []PosType {
	return ml.Moves[:ml.Size]
}

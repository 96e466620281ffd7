package learn

import "github.com/IlikeChooros/go-rlttt/pkg/ttt"

// Single candidate move, Worth is its unnormalized selection weight
type Decision struct {
	Pos   ttt.PosType
	Worth int
}

func NewDecision(pos ttt.PosType, worth int) Decision {
	return Decision{Pos: pos, Worth: worth}
}

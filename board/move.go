package board

import "github.com/dekrit-g/yao/position"

// Move is a transient disc placement or pass. The zero Move marks the start
// position (no move applied yet).
type Move struct {
	Pos position.Pos

	IsTurn Side
	IsPass bool
}

// NewMove returns a disc placement at pos for side s.
func NewMove(s Side, pos position.Pos) Move {
	return Move{Pos: pos, IsTurn: s}
}

// NewPass returns the pass action for side s.
func NewPass(s Side) Move {
	return Move{Pos: -1, IsTurn: s, IsPass: true}
}

// IsStart reports whether m is the start-position marker.
func (m Move) IsStart() bool {
	return m.IsTurn == SideUnknown && !m.IsPass
}

func (m Move) String() string {
	if m.IsStart() {
		return "START"
	}
	if m.IsPass {
		return "PASS"
	}
	return m.Pos.Notation()
}

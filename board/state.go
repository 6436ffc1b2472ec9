package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateBlackWins is when the game ended with more Black discs.
	StateBlackWins

	// StateWhiteWins is when the game ended with more White discs.
	StateWhiteWins

	// StateDraw is when the game ended with equal disc counts.
	StateDraw
)

func (s State) IsRunning() bool {
	return s == StateRunning
}

func (s State) IsEnded() bool {
	switch s {
	case StateBlackWins, StateWhiteWins, StateDraw:
		return true
	default:
		return false
	}
}

// Winner returns the winning side, or SideUnknown for a draw or a running game.
func (s State) Winner() Side {
	switch s {
	case StateBlackWins:
		return SideBlack
	case StateWhiteWins:
		return SideWhite
	default:
		return SideUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateBlackWins:
		return "StateBlackWins"
	case StateWhiteWins:
		return "StateWhiteWins"
	case StateDraw:
		return "StateDraw"
	default:
		return ""
	}
}

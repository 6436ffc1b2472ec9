package board

type Side uint8

const (
	SideUnknown Side = iota
	SideBlack
	SideWhite
)

func (s Side) String() string {
	switch s {
	case SideBlack:
		return "Black"
	case SideWhite:
		return "White"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideBlack:
		return SideWhite
	case SideWhite:
		return SideBlack
	default:
		return SideUnknown
	}
}

// SymbolNotation returns the board notation symbol for a disc of this side.
func (s Side) SymbolNotation() string {
	switch s {
	case SideBlack:
		return "x"
	case SideWhite:
		return "o"
	default:
		return ""
	}
}

func (s Side) SymbolUnicode() string {
	switch s {
	case SideBlack:
		return "●"
	case SideWhite:
		return "○"
	default:
		return ""
	}
}

package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dekrit-g/yao/position"
)

const (
	// DefaultStartingPositionNotation is the classic Othello opening:
	// D4/E5 Black, E4/D5 White, Black to move.
	DefaultStartingPositionNotation = "8/8/8/3xo3/3ox3/8/8/8 b 0"
)

var (
	ErrInvalidNotation = errors.New("invalid board notation")
)

// parseNotation decodes "<ranks> <turn> <passCount>": 8 '/'-separated ranks
// from rank 1 to rank 8, 'x' Black, 'o' White, digit runs of empty cells.
func parseNotation(n string) (bitmap, bitmap, Side, uint8, error) {
	segments := strings.Split(n, " ")
	if len(segments) != 3 {
		return 0, 0, SideUnknown, 0, fmt.Errorf("%w: incorrect number of segments", ErrInvalidNotation)
	}

	var black, white bitmap
	ranks := strings.Split(segments[0], "/")
	if len(ranks) != int(Height) {
		return 0, 0, SideUnknown, 0, fmt.Errorf("%w: invalid board configuration", ErrInvalidNotation)
	}
	for y := position.Pos(0); y < Height; y++ {
		rank := ranks[y]
		ptr := -1
		for x := position.Pos(0); x < Width; x++ {
			ptr++
			if ptr >= len(rank) {
				return 0, 0, SideUnknown, 0, fmt.Errorf("%w: missing cells", ErrInvalidNotation)
			}
			switch cell := rune(rank[ptr]); cell {
			case 'x':
				black.Set(y*Width + x)
			case 'o':
				white.Set(y*Width + x)
			default:
				if cell > '0' && cell <= '8' {
					skip := position.Pos(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return 0, 0, SideUnknown, 0, fmt.Errorf("%w: skip out of bounds", ErrInvalidNotation)
				}
				return 0, 0, SideUnknown, 0, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidNotation, string(cell))
			}
		}
		if ptr != len(rank)-1 {
			return 0, 0, SideUnknown, 0, fmt.Errorf("%w: excess cells", ErrInvalidNotation)
		}
	}

	var turn Side
	switch segments[1] {
	case "b":
		turn = SideBlack
	case "w":
		turn = SideWhite
	default:
		return 0, 0, SideUnknown, 0, fmt.Errorf("%w: invalid turn", ErrInvalidNotation)
	}

	passCount, err := strconv.ParseUint(segments[2], 10, 8)
	if err != nil {
		return 0, 0, SideUnknown, 0, fmt.Errorf("%w: invalid pass count", ErrInvalidNotation)
	}

	return black, white, turn, uint8(passCount), nil
}

// Notation serializes the position in the format parseNotation reads.
func (b *Board) Notation() string {
	builder := strings.Builder{}
	occupied := b.occupied()
	for y := position.Pos(0); y < Height; y++ {
		var skip uint8
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && maskCell[y*Width+x]&occupied == 0; x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				_, _ = builder.WriteString(b.sideAt(y*Width + x).SymbolNotation())
			}
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideBlack {
		_, _ = builder.WriteString(" b ")
	} else {
		_, _ = builder.WriteString(" w ")
	}
	_, _ = builder.WriteString(strconv.FormatUint(uint64(b.passCount), 10))

	return builder.String()
}

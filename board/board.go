package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dekrit-g/yao/position"
)

var (
	ErrIllegalMove = errors.New("illegal move")
)

type bitmap uint64

// Board is an immutable position snapshot: the per-side disc sets, the side
// to move, and the consecutive-pass counter. Apply and ApplyPass return new
// snapshots and never mutate their receiver.
type Board struct {
	discs [2 + 1]bitmap // indexed by Side

	turn      Side
	passCount uint8
	lastMove  Move
}

type boardConfig struct {
	notation string
}

type BoardOption func(*boardConfig)

// WithNotation constructs the board from a position notation string instead
// of the starting position.
func WithNotation(notation string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.notation = notation
	}
}

func NewBoard(opts ...BoardOption) (*Board, Side, error) {
	cfg := &boardConfig{
		notation: DefaultStartingPositionNotation,
	}
	for _, f := range opts {
		f(cfg)
	}
	black, white, turn, passCount, err := parseNotation(cfg.notation)
	if err != nil {
		return nil, SideUnknown, err
	}

	b := &Board{
		turn:      turn,
		passCount: passCount,
	}
	b.discs[SideBlack] = black
	b.discs[SideWhite] = white
	return b, turn, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) PassCount() int {
	return int(b.passCount)
}

func (b *Board) LastMove() Move {
	return b.lastMove
}

// Discs returns the disc set of side s.
func (b *Board) Discs(s Side) bitmap {
	return b.discs[s]
}

func (b *Board) occupied() bitmap {
	return Union(b.discs[SideBlack], b.discs[SideWhite])
}

// GenerateMoves returns the legal-move cell set for the side to move.
func (b *Board) GenerateMoves() bitmap {
	return b.GenerateMovesFor(b.turn)
}

// GenerateMovesFor returns the legal-move cell set side s would have in this
// position, regardless of whose turn it is. Occupancy is unchanged.
func (b *Board) GenerateMovesFor(s Side) bitmap {
	own := b.discs[s]
	opp := b.discs[s.Opposite()]
	empty := ^Union(own, opp)

	var legal bitmap
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if maskCell[pos]&empty == 0 {
			continue
		}
		if flips(maskCell[pos], own, opp) != 0 {
			legal |= maskCell[pos]
		}
	}
	return legal
}

// GetFlips returns the cells recolored when the side to move places at pos.
// The result is non-empty exactly when pos is a legal move.
func (b *Board) GetFlips(pos position.Pos) bitmap {
	return flips(maskCell[pos], b.discs[b.turn], b.discs[b.turn.Opposite()])
}

// flips unions the captures of all 8 rays from a single-cell origin mask.
func flips(cell, own, opp bitmap) bitmap {
	var captured bitmap
	for _, r := range rays {
		captured |= flipsInRay(cell, own, opp, r)
	}
	return captured
}

// flipsInRay walks cells from the origin in one direction: traversed
// opponent discs are captured only when the walk ends on an own disc.
func flipsInRay(cell, own, opp bitmap, r ray) bitmap {
	var captured bitmap
	cur := r.shift(cell & r.mask)
	for cur != 0 && cur&opp != 0 {
		captured |= cur
		cur = r.shift(cur & r.mask)
	}
	if cur != 0 && cur&own != 0 {
		return captured
	}
	return 0
}

// Apply places the mover's disc at pos, recolors the captured cells, swaps
// the turn, and resets the pass counter. It returns ErrIllegalMove when pos
// is not in the current legal-move set.
func (b *Board) Apply(pos position.Pos) (*Board, error) {
	if pos < 0 || pos >= TotalCells || !b.GenerateMoves().IsSet(pos) {
		return nil, fmt.Errorf("%w: %s for %s", ErrIllegalMove, pos.Notation(), b.turn)
	}

	captured := b.GetFlips(pos)
	next := *b
	next.discs[b.turn] |= maskCell[pos] | captured
	next.discs[b.turn.Opposite()] &^= captured
	next.turn = b.turn.Opposite()
	next.passCount = 0
	next.lastMove = NewMove(b.turn, pos)
	return &next, nil
}

// ApplyPass swaps the turn and increments the pass counter. Occupancy is
// unchanged. The caller must have checked that no legal move exists.
func (b *Board) ApplyPass() *Board {
	next := *b
	next.turn = b.turn.Opposite()
	next.passCount = b.passCount + 1
	next.lastMove = NewPass(b.turn)
	return &next
}

// IsTerminal reports whether the position is over, given the legal-move sets
// of both sides. It does not recompute them. A side holding zero discs ends
// the game immediately (house rule).
func (b *Board) IsTerminal(blackLegal, whiteLegal bitmap) bool {
	totalDiscs := b.TotalDiscs()
	if totalDiscs == int(TotalCells) {
		return true
	}
	if b.passCount >= 2 {
		return true
	}
	if b.discs[SideBlack] == 0 || b.discs[SideWhite] == 0 {
		return true
	}
	if blackLegal == 0 && whiteLegal == 0 && totalDiscs < int(TotalCells) {
		return true
	}
	return false
}

func (b *Board) CountDiscs(s Side) int {
	return b.discs[s].BitCount()
}

func (b *Board) TotalDiscs() int {
	return b.discs[SideBlack].BitCount() + b.discs[SideWhite].BitCount()
}

// State resolves the game outcome, generating both legal-move sets itself.
func (b *Board) State() State {
	if !b.IsTerminal(b.GenerateMovesFor(SideBlack), b.GenerateMovesFor(SideWhite)) {
		return StateRunning
	}
	black, white := b.CountDiscs(SideBlack), b.CountDiscs(SideWhite)
	switch {
	case black > white:
		return StateBlackWins
	case white > black:
		return StateWhiteWins
	default:
		return StateDraw
	}
}

func (b *Board) sideAt(pos position.Pos) Side {
	switch {
	case b.discs[SideBlack]&maskCell[pos] != 0:
		return SideBlack
	case b.discs[SideWhite]&maskCell[pos] != 0:
		return SideWhite
	default:
		return SideUnknown
	}
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.sideAt(y*Width + x).SymbolNotation()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the board for the terminal, with the legal cells of the side
// to move marked when markLegal is set.
func (b *Board) Draw(markLegal bool) string {
	var legal bitmap
	if markLegal {
		legal = b.GenerateMoves()
	}
	var (
		cellEven  = color.New(color.FgBlack, color.BgGreen)
		cellOdd   = color.New(color.FgBlack, color.BgHiGreen)
		labelBold = color.New(color.Bold)
	)
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(labelBold.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			pos := y*Width + x
			sym := " "
			switch {
			case b.sideAt(pos) != SideUnknown:
				sym = b.sideAt(pos).SymbolUnicode()
			case legal.IsSet(pos):
				sym = "·"
			}
			cell := cellEven
			if x%2^y%2 == 1 {
				cell = cellOdd
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(labelBold.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %s\npass: %4d\nlast: %s\nstat: %s", b.turn, b.passCount, b.lastMove, b.State())
}

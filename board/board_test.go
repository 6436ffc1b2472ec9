package board

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/dekrit-g/yao/position"
)

func TestStartingPosition(t *testing.T) {
	t.Parallel()
	b, turn, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if turn != SideBlack {
		t.Errorf("unexpected starting side: got=%s want=%s", turn, SideBlack)
	}
	if got := b.Discs(SideBlack); got != maskCell[27]|maskCell[36] {
		t.Errorf("unexpected Black discs: got=%064b", got)
	}
	if got := b.Discs(SideWhite); got != maskCell[28]|maskCell[35] {
		t.Errorf("unexpected White discs: got=%064b", got)
	}
	if got := b.TotalDiscs(); got != 4 {
		t.Errorf("unexpected total discs: got=%d want=4", got)
	}
	if got := b.PassCount(); got != 0 {
		t.Errorf("unexpected pass count: got=%d want=0", got)
	}
	if !b.LastMove().IsStart() {
		t.Errorf("unexpected last move: got=%s want=START", b.LastMove())
	}

	// the four canonical opening moves: E3, F4, C5, D6
	want := maskCell[20] | maskCell[29] | maskCell[34] | maskCell[43]
	if got := b.GenerateMoves(); got != want {
		t.Errorf("unexpected legal moves: got=%064b want=%064b", got, want)
	}
}

func TestLegalitySoundness(t *testing.T) {
	t.Parallel()
	b, _, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	legal := b.GenerateMoves()
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if !legal.IsSet(pos) {
			continue
		}
		if b.GetFlips(pos) == 0 {
			t.Errorf("legal move %s has no flips", pos.Notation())
		}
	}
}

func TestApplyOpeningMove(t *testing.T) {
	t.Parallel()
	for _, pos := range []position.Pos{20, 29, 34, 43} {
		pos := pos
		t.Run(pos.Notation(), func(t *testing.T) {
			t.Parallel()
			b, _, err := NewBoard()
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			next, err := b.Apply(pos)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := next.CountDiscs(SideBlack); got != 4 {
				t.Errorf("unexpected Black discs: got=%d want=4", got)
			}
			if got := next.CountDiscs(SideWhite); got != 1 {
				t.Errorf("unexpected White discs: got=%d want=1", got)
			}
			if got := next.TotalDiscs(); got != 5 {
				t.Errorf("unexpected total discs: got=%d want=5", got)
			}
			if got := next.Turn(); got != SideWhite {
				t.Errorf("unexpected turn: got=%s want=%s", got, SideWhite)
			}
			if got := next.PassCount(); got != 0 {
				t.Errorf("unexpected pass count: got=%d want=0", got)
			}
			if got := next.LastMove(); got.IsPass || got.IsTurn != SideBlack || got.Pos != pos {
				t.Errorf("unexpected last move: got=%+v", got)
			}

			// receiver must be untouched
			if got := b.TotalDiscs(); got != 4 {
				t.Errorf("receiver mutated: total discs got=%d want=4", got)
			}
			if got := b.Turn(); got != SideBlack {
				t.Errorf("receiver mutated: turn got=%s want=%s", got, SideBlack)
			}
		})
	}
}

func TestApplyIllegalMove(t *testing.T) {
	t.Parallel()
	b, _, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for _, pos := range []position.Pos{-1, 64, 0, 27, 28, 19} {
		if _, err := b.Apply(pos); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("expected ErrIllegalMove for %d: got=%v", pos, err)
		}
	}
}

func TestApplyPass(t *testing.T) {
	t.Parallel()
	b, _, err := NewBoard(WithNotation("xo6/8/8/8/8/8/8/8 w 0"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	p1 := b.ApplyPass()
	if got := p1.Turn(); got != SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideBlack)
	}
	if got := p1.PassCount(); got != 1 {
		t.Errorf("unexpected pass count: got=%d want=1", got)
	}
	if p1.Discs(SideBlack) != b.Discs(SideBlack) || p1.Discs(SideWhite) != b.Discs(SideWhite) {
		t.Error("pass changed occupancy")
	}
	if got := p1.LastMove(); !got.IsPass || got.IsTurn != SideWhite {
		t.Errorf("unexpected last move: got=%+v", got)
	}

	p2 := p1.ApplyPass()
	if got := p2.PassCount(); got != 2 {
		t.Errorf("unexpected pass count: got=%d want=2", got)
	}
	if !p2.IsTerminal(p2.GenerateMovesFor(SideBlack), p2.GenerateMovesFor(SideWhite)) {
		t.Error("two consecutive passes must be terminal")
	}
}

func TestForcedPassNotTerminal(t *testing.T) {
	t.Parallel()
	b, _, err := NewBoard(WithNotation("xo6/8/8/8/8/8/8/8 w 0"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b.GenerateMoves(); got != 0 {
		t.Errorf("expected no legal moves for White: got=%064b", got)
	}
	if got := b.GenerateMovesFor(SideBlack); got != maskCell[2] {
		t.Errorf("unexpected Black legal moves: got=%064b want C1", got)
	}
	if b.IsTerminal(b.GenerateMovesFor(SideBlack), b.GenerateMovesFor(SideWhite)) {
		t.Error("a blocked side with an unblocked opponent is not terminal")
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     bool
		state    State
	}{
		{
			name:     "start position running",
			notation: DefaultStartingPositionNotation,
			want:     false,
			state:    StateRunning,
		},
		{
			name:     "full board",
			notation: "xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/oooooooo/oooooooo/oooooooo/oooooooo b 0",
			want:     true,
			state:    StateDraw,
		},
		{
			name:     "double pass",
			notation: "xo6/8/8/8/8/8/8/8 w 2",
			want:     true,
			state:    StateDraw,
		},
		{
			name:     "white wiped out",
			notation: "xxx5/8/8/8/8/8/8/8 w 0",
			want:     true,
			state:    StateBlackWins,
		},
		{
			name:     "black wiped out",
			notation: "ooo5/8/8/8/8/8/8/8 b 0",
			want:     true,
			state:    StateWhiteWins,
		},
		{
			name:     "both sides blocked",
			notation: "x7/8/8/8/8/8/8/7o b 0",
			want:     true,
			state:    StateDraw,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _, err := NewBoard(WithNotation(tt.notation))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			got := b.IsTerminal(b.GenerateMovesFor(SideBlack), b.GenerateMovesFor(SideWhite))
			if got != tt.want {
				t.Errorf("unexpected IsTerminal: got=%v want=%v", got, tt.want)
			}
			if gotState := b.State(); gotState != tt.state {
				t.Errorf("unexpected State: got=%s want=%s", gotState, tt.state)
			}
		})
	}
}

func TestIsTerminalDoublePassEdge(t *testing.T) {
	t.Parallel()
	b, _, err := NewBoard(WithNotation("xo6/8/8/8/8/8/8/8 w 0"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	p2 := b.ApplyPass().ApplyPass()
	if !p2.IsTerminal(p2.GenerateMovesFor(SideBlack), p2.GenerateMovesFor(SideWhite)) {
		t.Error("pass count 2 must be terminal")
	}
}

// TestRandomPlayout checks the rule invariants along full random games:
// disjoint disc sets, per-move conservation, non-empty flips for every legal
// move, and eventual termination.
func TestRandomPlayout(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 5; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewSource(seed))
			b, _, err := NewBoard()
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			for ply := 0; ; ply++ {
				if ply > 200 {
					t.Fatal("game did not terminate within 200 plies")
				}
				if b.Discs(SideBlack)&b.Discs(SideWhite) != 0 {
					t.Fatal("disc sets overlap")
				}
				if got := b.TotalDiscs(); got > int(TotalCells) {
					t.Fatalf("unexpected total discs: got=%d", got)
				}
				if !b.State().IsRunning() {
					break
				}

				legal := b.GenerateMoves()
				if legal == 0 {
					b = b.ApplyPass()
					continue
				}

				var candidates []position.Pos
				for pos := position.Pos(0); pos < TotalCells; pos++ {
					if !legal.IsSet(pos) {
						continue
					}
					if b.GetFlips(pos) == 0 {
						t.Fatalf("legal move %s has no flips", pos.Notation())
					}
					candidates = append(candidates, pos)
				}
				pos := candidates[r.Intn(len(candidates))]

				mover := b.Turn()
				ownBefore := b.CountDiscs(mover)
				oppBefore := b.CountDiscs(mover.Opposite())
				flips := b.GetFlips(pos).BitCount()

				next, err := b.Apply(pos)
				if err != nil {
					t.Fatal("unexpected error:", err)
				}
				if got := next.CountDiscs(mover); got != ownBefore+1+flips {
					t.Fatalf("unexpected mover discs after %s: got=%d want=%d", pos.Notation(), got, ownBefore+1+flips)
				}
				if got := next.CountDiscs(mover.Opposite()); got != oppBefore-flips {
					t.Fatalf("unexpected opponent discs after %s: got=%d want=%d", pos.Notation(), got, oppBefore-flips)
				}
				b = next
			}
		})
	}
}

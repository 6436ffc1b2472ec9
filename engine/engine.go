package engine

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dekrit-g/yao/board"
	"github.com/dekrit-g/yao/position"
)

const (
	scoreInfinite int32 = math.MaxInt32
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	Debug  bool
	Logger func(...any)
}

// Engine picks moves by fixed-depth minimax with alpha-beta pruning. It is
// fully deterministic: no randomness, no clock, no transposition table.
type Engine struct {
	debug  bool
	logger func(...any)

	nodes       uint32
	elapsedTime time.Duration
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}

	return &Engine{
		debug:  cfg.Debug,
		logger: cfg.Logger,
	}
}

// FindBestMove searches the position to the given ply depth and returns the
// best move for the side to move, or the pass action when no move is legal.
// Ties keep the lowest-index move, so results are reproducible.
func (e *Engine) FindBestMove(b *board.Board, depth uint8) board.Move {
	legal := b.GenerateMoves()
	if legal.BitCount() == 0 {
		return board.NewPass(b.Turn())
	}

	e.nodes = 0
	startTime := time.Now()

	bestPos := position.Pos(-1)
	bestScore := -scoreInfinite
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		if !legal.IsSet(pos) {
			continue
		}
		child, err := b.Apply(pos)
		if err != nil {
			continue
		}
		// Fresh bounds per root child; the mover stays the perspective for
		// every leaf below.
		score := e.minimax(child, depth-1, -scoreInfinite, scoreInfinite, false, b.Turn())
		if score > bestScore {
			bestScore = score
			bestPos = pos
		}
	}

	e.elapsedTime = time.Since(startTime)
	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("depth:%d best:%s score:%d nodes:%d (%.0fn/s) t:%s",
				depth, bestPos, bestScore, e.nodes, float64(e.nodes)/((e.elapsedTime + 1).Seconds()), e.elapsedTime))
	}

	return board.NewMove(b.Turn(), bestPos)
}

// minimax returns the alpha-beta minimax score of the position, signed from
// perspective's viewpoint. A forced pass recurses at the same depth with the
// roles flipped: a pass does not consume a ply.
func (e *Engine) minimax(b *board.Board, depth uint8, alpha, beta int32, maximizing bool, perspective board.Side) int32 {
	e.nodes++

	ownLegal := b.GenerateMoves()
	oppLegal := b.GenerateMovesFor(b.Turn().Opposite())
	blackLegal, whiteLegal := ownLegal, oppLegal
	if b.Turn() == board.SideWhite {
		blackLegal, whiteLegal = oppLegal, ownLegal
	}

	if depth == 0 || b.IsTerminal(blackLegal, whiteLegal) {
		return Evaluate(b, perspective)
	}

	if ownLegal == 0 {
		return e.minimax(b.ApplyPass(), depth, alpha, beta, !maximizing, perspective)
	}

	if maximizing {
		maxEval := -scoreInfinite
		for pos := position.Pos(0); pos < position.TotalCells; pos++ {
			if !ownLegal.IsSet(pos) {
				continue
			}
			child, err := b.Apply(pos)
			if err != nil {
				continue
			}
			eval := e.minimax(child, depth-1, alpha, beta, false, perspective)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, maxEval)
			if beta <= alpha {
				break // pruned
			}
		}
		return maxEval
	}

	minEval := scoreInfinite
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		if !ownLegal.IsSet(pos) {
			continue
		}
		child, err := b.Apply(pos)
		if err != nil {
			continue
		}
		eval := e.minimax(child, depth-1, alpha, beta, true, perspective)
		minEval = min(minEval, eval)
		beta = min(beta, minEval)
		if beta <= alpha {
			break // pruned
		}
	}
	return minEval
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

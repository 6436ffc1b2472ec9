package engine

import (
	"github.com/dekrit-g/yao/board"
	"github.com/dekrit-g/yao/position"
)

const (
	scoreMobility int32 = 5

	// Phase multipliers for the disc differential: raw count matters little
	// while the board is open and dominates towards the end.
	phaseOpeningMaxDiscs = 20
	phaseMidgameMaxDiscs = 40

	phaseWeightOpening = 0.5
	phaseWeightMidgame = 2.0
	phaseWeightEndgame = 5.0
)

var (
	// Cell weights for the positional heuristic: corners are decisive,
	// X-squares and the cells beside them hand corners to the opponent.
	// Symmetric across all four quadrants.
	scorePositionWeight = [board.TotalCells]int32{
		200, -20, 10, 5, 5, 10, -20, 200,
		-20, -30, -5, -5, -5, -5, -30, -20,
		10, -5, 2, 2, 2, 2, -5, 10,
		5, -5, 2, 1, 1, 2, -5, 5,
		5, -5, 2, 1, 1, 2, -5, 5,
		10, -5, 2, 2, 2, 2, -5, 10,
		-20, -30, -5, -5, -5, -5, -30, -20,
		200, -20, 10, 5, 5, 10, -20, 200,
	}
)

// Evaluate returns the static heuristic score of the position, signed from
// perspective's viewpoint. It combines mobility, positional weights, and the
// phase-scaled disc differential, and never recurses.
func Evaluate(b *board.Board, perspective board.Side) int32 {
	return scoreSide(b, perspective) - scoreSide(b, perspective.Opposite())
}

func scoreSide(b *board.Board, s board.Side) int32 {
	score := int32(b.GenerateMovesFor(s).BitCount()) * scoreMobility

	discs := b.Discs(s)
	for pos := position.Pos(0); discs != 0; pos++ {
		if discs&1 == 1 {
			score += scorePositionWeight[pos]
		}
		discs >>= 1
	}

	diff := b.CountDiscs(s) - b.CountDiscs(s.Opposite())
	score += int32(float64(diff) * phaseWeight(b.TotalDiscs()))

	return score
}

func phaseWeight(totalDiscs int) float64 {
	switch {
	case totalDiscs <= phaseOpeningMaxDiscs:
		return phaseWeightOpening
	case totalDiscs <= phaseMidgameMaxDiscs:
		return phaseWeightMidgame
	default:
		return phaseWeightEndgame
	}
}

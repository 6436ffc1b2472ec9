package board

import (
	"github.com/dekrit-g/yao/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	maskCol = [Width]bitmap{
		0x_01_01_01_01_01_01_01_01, // file A
		0x_02_02_02_02_02_02_02_02,
		0x_04_04_04_04_04_04_04_04,
		0x_08_08_08_08_08_08_08_08,
		0x_10_10_10_10_10_10_10_10,
		0x_20_20_20_20_20_20_20_20,
		0x_40_40_40_40_40_40_40_40,
		0x_80_80_80_80_80_80_80_80, // file H
	}
	maskRow = [Height]bitmap{
		0x_00_00_00_00_00_00_00_FF, // rank 1
		0x_00_00_00_00_00_00_FF_00,
		0x_00_00_00_00_00_FF_00_00,
		0x_00_00_00_00_FF_00_00_00,
		0x_00_00_00_FF_00_00_00_00,
		0x_00_00_FF_00_00_00_00_00,
		0x_00_FF_00_00_00_00_00_00,
		0x_FF_00_00_00_00_00_00_00, // rank 8
	}
	maskCell [TotalCells]bitmap

	// Starting discs: D4/E5 Black, E4/D5 White.
	maskStartBlack = bitmap(1)<<27 | bitmap(1)<<36
	maskStartWhite = bitmap(1)<<28 | bitmap(1)<<35

	// rays lists the 8 unit step directions of a capture walk. Rays with an
	// eastward component must not step from file H, westward ones not from
	// file A; the mask removes the edge cell before the shift so the walk
	// dies instead of wrapping to the next rank. Vertical shifts fall off
	// the 64-bit word naturally.
	rays [8]ray
)

type ray struct {
	shift func(bitmap) bitmap
	mask  bitmap
}

func init() {
	initMask()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	all := ^bitmap(0)
	rays = [8]ray{
		{shift: ShiftN, mask: all},
		{shift: ShiftS, mask: all},
		{shift: ShiftE, mask: all &^ maskCol[7]},
		{shift: ShiftW, mask: all &^ maskCol[0]},
		{shift: ShiftNE, mask: all &^ maskCol[7]},
		{shift: ShiftNW, mask: all &^ maskCol[0]},
		{shift: ShiftSE, mask: all &^ maskCol[7]},
		{shift: ShiftSW, mask: all &^ maskCol[0]},
	}
}

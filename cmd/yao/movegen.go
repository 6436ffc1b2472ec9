package main

import (
	"fmt"
	"log"

	"github.com/dekrit-g/yao/board"
	"github.com/dekrit-g/yao/position"
)

// movegen dumps the legal moves of a position with their capture counts.
func movegen(notation string) error {
	log.Println("============ movegen")
	b, _, err := board.NewBoard(board.WithNotation(notation))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw(true))
	fmt.Println(b.State())

	legal := b.GenerateMoves()
	i := 0
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		if !legal.IsSet(pos) {
			continue
		}
		i++
		fmt.Printf("option %2d: %s (flips=%d)\n", i, pos.Notation(), b.GetFlips(pos).BitCount())
	}
	if i == 0 {
		fmt.Println("no legal moves:", b.Turn(), "must pass")
	}
	return nil
}

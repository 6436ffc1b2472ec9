package main

import (
	"fmt"
	"log"
	"time"

	"github.com/dekrit-g/yao/board"
	"github.com/dekrit-g/yao/engine"
)

// selfplay has the engine play both sides from the given position until the
// game ends, printing every move.
func selfplay(notation string, depth uint8) error {
	b, _, err := board.NewBoard(board.WithNotation(notation))
	if err != nil {
		return err
	}
	e := engine.NewEngine(&engine.EngineConfig{Debug: true})

	fmt.Println(b.Draw(false))
	fmt.Println(b.Notation())
	fmt.Println(b.DebugString())

	var history []board.Move
	for b.State().IsRunning() {
		mv := e.FindBestMove(b, depth)
		if mv.IsPass {
			b = b.ApplyPass()
		} else {
			b, err = b.Apply(mv.Pos)
			if err != nil {
				return err
			}
		}
		history = append(history, mv)

		fmt.Printf("\n>>> %s: %s\n", mv.IsTurn, mv)
		fmt.Println(b.Draw(false))
		fmt.Println(b.Notation())
		<-time.Tick(200 * time.Millisecond)
	}

	log.Println("=============== game ended:", b.State())
	fmt.Printf("score: %s %d - %d %s\n",
		board.SideBlack, b.CountDiscs(board.SideBlack),
		b.CountDiscs(board.SideWhite), board.SideWhite)
	dumpHistory(history)
	return nil
}

func dumpHistory(mvs []board.Move) {
	n := 0
	for _, mv := range mvs {
		if mv.IsTurn == board.SideBlack {
			n++
			fmt.Printf("%d.", n)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}

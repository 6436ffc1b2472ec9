package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/dekrit-g/yao/board"
	"github.com/dekrit-g/yao/engine"
	"github.com/dekrit-g/yao/position"
)

const aiMoveDelay = 1 * time.Second

// gameController mediates between the command loop and the rule/search core.
// It owns the snapshot history; the core never retains state.
type gameController struct {
	history []*board.Board
	engine  *engine.Engine
	depth   uint8
}

func newGameController(b *board.Board, depth uint8) *gameController {
	return &gameController{
		history: []*board.Board{b},
		engine:  engine.NewEngine(&engine.EngineConfig{}),
		depth:   depth,
	}
}

func (c *gameController) current() *board.Board {
	return c.history[len(c.history)-1]
}

func (c *gameController) handleMove(pos position.Pos) error {
	next, err := c.current().Apply(pos)
	if err != nil {
		return err
	}
	c.history = append(c.history, next)
	return nil
}

func (c *gameController) handlePass() {
	c.history = append(c.history, c.current().ApplyPass())
}

// handleUndo unwinds one snapshot, and a second one when the head lands on
// the AI's turn, so an undo always returns control to the human.
func (c *gameController) handleUndo(aiSide board.Side) bool {
	if len(c.history) <= 1 {
		return false
	}
	c.history = c.history[:len(c.history)-1]
	if c.current().Turn() == aiSide && len(c.history) > 1 {
		c.history = c.history[:len(c.history)-1]
	}
	return true
}

func (c *gameController) aiMove() board.Move {
	return c.engine.FindBestMove(c.current(), c.depth)
}

type commandKind uint8

const (
	commandInvalid commandKind = iota
	commandMove
	commandUndo
	commandHint
	commandPass
	commandQuit
)

type command struct {
	kind       commandKind
	pos        position.Pos
	errMessage string
}

func parseCommand(b *board.Board, input string) command {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return command{kind: commandInvalid, errMessage: "unknown command, try MOVE D3, UNDO, HINT, PASS, or QUIT"}
	}

	legal := b.GenerateMoves()
	switch fields[0] {
	case "quit", "exit":
		return command{kind: commandQuit}
	case "undo":
		return command{kind: commandUndo}
	case "hint":
		return command{kind: commandHint}
	case "pass":
		if legal.BitCount() != 0 {
			return command{kind: commandInvalid, errMessage: "cannot PASS, legal moves remain"}
		}
		return command{kind: commandPass}
	case "move":
		if len(fields) < 2 {
			return command{kind: commandInvalid, errMessage: "MOVE needs a coordinate (e.g. MOVE D3)"}
		}
		pos, err := position.NewPosFromNotation(fields[1])
		if err != nil {
			return command{kind: commandInvalid, errMessage: fmt.Sprintf("coordinate %q is not valid, use A1-H8", strings.ToUpper(fields[1]))}
		}
		if !legal.IsSet(pos) {
			return command{kind: commandInvalid, errMessage: fmt.Sprintf("move %s is not legal, pick a marked cell", pos.Notation())}
		}
		return command{kind: commandMove, pos: pos}
	default:
		return command{kind: commandInvalid, errMessage: "unknown command, try MOVE D3, UNDO, HINT, PASS, or QUIT"}
	}
}

func play(notation string, depth uint8) error {
	b, _, err := board.NewBoard(board.WithNotation(notation))
	if err != nil {
		return err
	}

	humanSide, aiSide := board.SideBlack, board.SideWhite
	c := newGameController(b, depth)
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("======================================")
	fmt.Println("YET ANOTHER OTHELLO")
	fmt.Println("======================================")
	fmt.Printf("You (%s %s) vs AI (%s %s, depth %d)\n",
		humanSide.SymbolUnicode(), humanSide, aiSide.SymbolUnicode(), aiSide, depth)
	fmt.Println("Commands: MOVE D3, UNDO, HINT, PASS, QUIT")

	for {
		cur := c.current()

		if st := cur.State(); st.IsEnded() {
			fmt.Println(cur.Draw(false))
			printScore(cur)
			announceResult(st, cur)
			return nil
		}

		if cur.Turn() == humanSide {
			fmt.Println(cur.Draw(true))
			printScore(cur)

			if cur.GenerateMoves().BitCount() == 0 {
				fmt.Printf("\n(%s has no legal move, passing.)\n", humanSide)
				c.handlePass()
				continue
			}

			fmt.Printf("\n%s %s > ", humanSide.SymbolUnicode(), humanSide)
			input, err := reader.ReadString('\n')
			if err != nil {
				return err
			}

			switch cmd := parseCommand(cur, strings.TrimSpace(input)); cmd.kind {
			case commandMove:
				if err := c.handleMove(cmd.pos); err != nil {
					return err
				}
			case commandUndo:
				if c.handleUndo(aiSide) {
					fmt.Println(">> UNDO done, back to your turn.")
				} else {
					fmt.Println(">> Error: nothing to undo, already at the start position.")
				}
			case commandHint:
				fmt.Println(">> Searching for a hint...")
				fmt.Println(">> Hint:", c.aiMove())
			case commandPass:
				c.handlePass()
				fmt.Printf(">> %s passes.\n", humanSide)
			case commandQuit:
				fmt.Println("Thanks for playing!")
				return nil
			default:
				fmt.Println(">> Error:", cmd.errMessage)
			}
			continue
		}

		// AI turn
		fmt.Println(cur.Draw(false))
		fmt.Printf("\n%s %s (AI) is thinking...\n", aiSide.SymbolUnicode(), aiSide)

		if mv := c.aiMove(); mv.IsPass {
			fmt.Printf(">> AI passes (%s has no legal move).\n", aiSide)
			c.handlePass()
		} else {
			fmt.Println(">> AI plays", mv)
			if err := c.handleMove(mv.Pos); err != nil {
				return err
			}
		}
		<-time.Tick(aiMoveDelay)
	}
}

func printScore(b *board.Board) {
	fmt.Printf("Score: %s Black: %d | %s White: %d\n",
		board.SideBlack.SymbolUnicode(), b.CountDiscs(board.SideBlack),
		board.SideWhite.SymbolUnicode(), b.CountDiscs(board.SideWhite))
	fmt.Println("Last move:", b.LastMove())
}

func announceResult(st board.State, b *board.Board) {
	bold := color.New(color.Bold)
	black, white := b.CountDiscs(board.SideBlack), b.CountDiscs(board.SideWhite)
	switch winner := st.Winner(); winner {
	case board.SideBlack:
		bold.Printf("\n=== GAME OVER: BLACK (%s) WINS! (%d - %d) ===\n", winner.SymbolUnicode(), black, white)
	case board.SideWhite:
		bold.Printf("\n=== GAME OVER: WHITE (%s) WINS! (%d - %d) ===\n", winner.SymbolUnicode(), white, black)
	default:
		bold.Printf("\n=== GAME OVER: DRAW! (%d - %d) ===\n", black, white)
	}
}

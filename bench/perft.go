// Package bench counts the leaves of the Othello game tree, mirroring the
// perft tooling of chess engines. A side with no legal move passes without
// consuming depth; a position where neither side can move is a leaf.
package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dekrit-g/yao/board"
	"github.com/dekrit-g/yao/position"
)

func Perft(depth int, notation string, parallel, verbose bool, out chan string) (uint64, error) {
	var nodes, passes, terminals uint64
	b, _, err := board.NewBoard(
		board.WithNotation(notation),
	)
	if err != nil {
		return 0, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, depth, true, verbose, out, &nodes, &passes, &terminals)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s pass=%d term=%d (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/end.Sub(start).Seconds()), passes, terminals, end.Sub(start).Seconds())

	return nodes, nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, nodes, passes, terminals *uint64) uint64

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, nodes, passes, terminals *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	legal := b.GenerateMoves()
	if legal.BitCount() == 0 {
		if b.GenerateMovesFor(b.Turn().Opposite()).BitCount() == 0 {
			*terminals++
			*nodes++
			return 1
		}
		*passes++
		return runPerft(b.ApplyPass(), d, root, verbose, out, nodes, passes, terminals)
	}

	var sum uint64
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		if !legal.IsSet(pos) {
			continue
		}
		bb, err := b.Apply(pos)
		if err != nil {
			continue
		}
		child := runPerft(bb, d-1, false, verbose, out, nodes, passes, terminals)
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", pos.Notation(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, nodes, passes, terminals *uint64) uint64 {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return 1
	}

	legal := b.GenerateMoves()
	if legal.BitCount() == 0 {
		if b.GenerateMovesFor(b.Turn().Opposite()).BitCount() == 0 {
			atomic.AddUint64(terminals, 1)
			atomic.AddUint64(nodes, 1)
			return 1
		}
		atomic.AddUint64(passes, 1)
		return runPerftParallel(b.ApplyPass(), d, root, verbose, out, nodes, passes, terminals)
	}

	var sum uint64
	var wg sync.WaitGroup
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		if !legal.IsSet(pos) {
			continue
		}
		pos := pos
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb, err := b.Apply(pos)
			if err != nil {
				return
			}
			child := runPerftParallel(bb, d-1, false, verbose, out, nodes, passes, terminals)
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", pos.Notation(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

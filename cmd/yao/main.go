package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/dekrit-g/yao/bench"
	"github.com/dekrit-g/yao/board"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	depth = flag.Uint("depth", 5, "AI search depth in plies")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	selfplayRun = flag.Bool("selfplay", false, "run selfplay mode")

	perftRun    = flag.Bool("perft", false, "run perft mode")
	perftDepth  = flag.Int("perft.depth", 6, "perft depth")
	perftSerial = flag.Bool("perft.serial", false, "disable parallel perft")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	notation := board.DefaultStartingPositionNotation
	if len(args) > 0 {
		notation = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(notation)
	}
	if *perftRun {
		return perft(*perftDepth, notation, !*perftSerial)
	}
	if *selfplayRun {
		return selfplay(notation, uint8(*depth))
	}

	return play(notation, uint8(*depth))
}

func perft(depth int, notation string, parallel bool) error {
	out := make(chan string, 64)
	go func() {
		for s := range out {
			fmt.Println(s)
		}
	}()
	defer close(out)

	_, err := bench.Perft(depth, notation, parallel, true, out)
	return err
}

// perft walks the legal-move tree to a fixed depth and counts leaf
// nodes. The counts for standard positions are well known, which makes
// this the quickest way to shake out move generation bugs.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"

	. "github.com/chesskit-go/chesskit/internal/chess"
)

func perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, move := range LegalMoves(p) {
		next := p.ApplyUnchecked(move)
		nodes += perft(&next, depth-1)
	}
	return nodes
}

func perftWithProgress(p *Position, depth int) int {
	roots := LegalMoves(p)
	bar := progressbar.Default(int64(len(roots)), fmt.Sprintf("depth %v", depth))

	nodes := 0
	for _, move := range roots {
		next := p.ApplyUnchecked(move)
		nodes += perft(&next, depth-1)
		_ = bar.Add(1)
	}
	_ = bar.Close()
	return nodes
}

func main() {
	profileFlag := flag.Bool("profile", false, "write a cpu profile")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("usage:")
		fmt.Println(" > perft <depth> [fen]")
		os.Exit(1)
	}

	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		fmt.Fprintln(os.Stderr, "invalid depth:", args[0])
		os.Exit(1)
	}

	position := StartingPosition()
	if len(args) > 1 {
		parsed, fenErr := PositionFromFen(strings.Join(args[1:], " "))
		if fenErr.HasError() {
			fmt.Fprintln(os.Stderr, "invalid fen:", fenErr)
			os.Exit(1)
		}
		position = parsed
	}

	if *profileFlag {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	for d := 1; d <= depth; d++ {
		start := time.Now()

		var nodes int
		if d == depth {
			nodes = perftWithProgress(&position, d)
		} else {
			nodes = perft(&position, d)
		}

		elapsed := time.Since(start)
		fmt.Printf("perft(%v) = %v (%.0f nodes/s)\n",
			d, nodes, float64(nodes)/elapsed.Seconds())
	}
}

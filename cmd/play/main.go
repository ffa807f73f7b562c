package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"

	"github.com/chesskit-go/chesskit/internal/chess"
	"github.com/chesskit-go/chesskit/internal/game"
	. "github.com/chesskit-go/chesskit/internal/helpers"
)

var lightSquare = color.New(color.BgWhite, color.FgBlack)
var darkSquare = color.New(color.BgCyan, color.FgBlack)
var hintText = color.New(color.FgHiBlack)

func printBoard(p chess.Position) {
	fmt.Println()
	for rank := 7; rank >= 0; rank-- {
		hintText.Printf(" %v ", chess.Rank(rank))
		for file := 0; file < 8; file++ {
			sq := chess.Sq(chess.File(file), chess.Rank(rank))
			cell := fmt.Sprintf(" %v ", p.PieceAt(sq).Unicode())
			if (file+rank)%2 == 0 {
				darkSquare.Print(cell)
			} else {
				lightSquare.Print(cell)
			}
		}
		fmt.Println()
	}
	hintText.Print("   ")
	for file := 0; file < 8; file++ {
		hintText.Printf(" %v ", chess.File(file))
	}
	fmt.Println()
	fmt.Println()
}

func printHelp() {
	fmt.Println("commands:")
	fmt.Println("  e2e4        perform a move (e7e8q to promote)")
	fmt.Println("  moves e2    list the legal moves of the piece on e2")
	fmt.Println("  undo        take back the last move")
	fmt.Println("  fen         print the current position as FEN")
	fmt.Println("  quit")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	g := game.NewGame()
	if len(os.Args) > 1 {
		fromFen, err := game.GameFromFen(strings.Join(os.Args[1:], " "))
		if err.HasError() {
			fmt.Fprintln(os.Stderr, "invalid fen:", err)
			os.Exit(1)
		}
		g = fromFen
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		printBoard(g.Position())

		status := g.Status()
		if status != chess.Ongoing {
			fmt.Println(status)
		}
		if status.IsTerminal() {
			return
		}

		fmt.Printf("%v> ", g.Player())
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "" || input == "help":
			printHelp()
		case input == "quit" || input == "exit":
			return
		case input == "fen":
			fmt.Println(g.Fen())
		case input == "undo":
			if err := g.Rewind(1); err.HasError() {
				fmt.Println(err)
			}
		case strings.HasPrefix(input, "moves "):
			square := strings.TrimSpace(strings.TrimPrefix(input, "moves "))
			moves, err := g.MovesForSelection(square)
			if err.HasError() {
				fmt.Println(err)
			} else if len(moves) == 0 {
				fmt.Println("no moves from", square)
			} else {
				fmt.Println(strings.Join(moves, " "))
			}
		default:
			if err := g.PerformMoveFromString(input); IsNil(err) {
				continue
			}
			fmt.Printf("cannot play '%v' (try 'help')\n", input)
		}
	}
}

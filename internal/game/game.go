// Package game wraps the rules engine with the state a sitting game
// needs: move history for rewinding and repetition detection, and
// string-based entry points for clients that speak coordinates.
package game

import (
	. "github.com/chesskit-go/chesskit/internal/chess"
	. "github.com/chesskit-go/chesskit/internal/helpers"
	"golang.org/x/exp/slices"
)

type Game struct {
	Logger Logger

	position Position
	history  []Position // positions preceding each performed move
	moves    []Move
}

func NewGame() *Game {
	return &Game{
		Logger:   SilentLogger,
		position: StartingPosition(),
	}
}

func GameFromFen(fen string) (*Game, Error) {
	position, err := PositionFromFen(fen)
	if err.HasError() {
		return nil, err
	}
	return &Game{Logger: SilentLogger, position: position}, NilError
}

// Position returns the current position. It is a value; callers can
// hold on to it across further moves.
func (g *Game) Position() Position {
	return g.position
}

func (g *Game) Fen() string {
	return FenString(&g.position)
}

func (g *Game) Player() Player {
	return g.position.SideToMove
}

func (g *Game) NumMoves() int {
	return len(g.moves)
}

func (g *Game) LastMove() Optional[Move] {
	if len(g.moves) == 0 {
		return Empty[Move]()
	}
	return Some(g.moves[len(g.moves)-1])
}

func (g *Game) PerformMove(move Move) Error {
	next, err := g.position.Apply(move)
	if err.HasError() {
		return err
	}

	g.history = append(g.history, g.position)
	g.moves = append(g.moves, move)
	g.position = next

	g.Logger.Printf("%v: %v", move.DebugString(), g.Fen())
	return NilError
}

func (g *Game) PerformMoveFromString(s string) Error {
	move, err := MoveFromString(&g.position, s)
	if err.HasError() {
		return err
	}
	return g.PerformMove(move)
}

// MovesForSelection lists the destinations of the piece on the given
// square as move strings, sorted for stable output.
func (g *Game) MovesForSelection(square string) ([]string, Error) {
	selection, err := SquareFromString(square)
	if err.HasError() {
		return nil, err
	}

	moves := MapSlice(LegalMovesFrom(&g.position, selection), func(m Move) string {
		return m.String()
	})
	slices.Sort(moves)
	return moves, NilError
}

// Rewind undoes up to num moves by restoring recorded positions.
func (g *Game) Rewind(num int) Error {
	if num < 0 {
		return Errorf("cannot rewind %v moves", num)
	}
	num = MinInt(num, len(g.history))
	if num == 0 {
		return NilError
	}

	g.position = g.history[len(g.history)-num]
	g.history = g.history[:len(g.history)-num]
	g.moves = g.moves[:len(g.moves)-num]
	return NilError
}

// Status classifies the current position, including threefold
// repetition over this game's history.
func (g *Game) Status() GameStatus {
	return ClassifyWithHistory(&g.position, g.history)
}

// MoveHistory returns the moves played so far in coordinate notation.
func (g *Game) MoveHistory() []string {
	return MapSlice(g.moves, func(m Move) string {
		return m.String()
	})
}

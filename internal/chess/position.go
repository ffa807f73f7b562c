package chess

import (
	. "github.com/chesskit-go/chesskit/internal/helpers"
)

type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

var AllCastlingSides = [2]CastlingSide{Kingside, Queenside}

func (s CastlingSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// CastlingRights is indexed by [Player][CastlingSide]. Rights only ever
// go from true to false over the course of a game.
type CastlingRights [2][2]bool

// Position is a complete game state. It is a value: Apply returns a new
// Position and never touches the receiver, so Positions can be shared
// freely across goroutines for reading.
type Position struct {
	Board          Board
	SideToMove     Player
	Castling       CastlingRights
	EnPassant      Optional[Square]
	HalfmoveClock  int
	FullmoveNumber int
}

const StartingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func StartingPosition() Position {
	p, err := PositionFromFen(StartingFen)
	if err.HasError() {
		panic(err)
	}
	return p
}

func (p *Position) PieceAt(sq Square) Piece {
	return p.Board.At(sq)
}

// KingSquare panics if the side does not have exactly one king: that is
// an unrecoverable invariant breach, not a state a caller can handle.
func (p *Position) KingSquare(player Player) Square {
	king := PieceFor(player, King)
	found := -1
	for index, piece := range p.Board {
		if piece != king {
			continue
		}
		if found >= 0 {
			panic(Errorf("invariant violation: multiple %v kings\n%v", player, p.Board))
		}
		found = index
	}
	if found < 0 {
		panic(Errorf("invariant violation: no %v king\n%v", player, p.Board))
	}
	return SquareFromIndex(found)
}

func (p *Position) checkKings() Error {
	for _, player := range []Player{White, Black} {
		count := 0
		for _, piece := range p.Board {
			if piece == PieceFor(player, King) {
				count++
			}
		}
		if count != 1 {
			return Errorf("position needs exactly one %v king, found %v", player, count)
		}
	}
	return NilError
}

func (p Position) String() string {
	return FenString(&p)
}

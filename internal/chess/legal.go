package chess

import (
	. "github.com/chesskit-go/chesskit/internal/helpers"
)

// LegalMoves is the single source of truth for legality: every
// pseudo-legal move of the side to move is applied to a scratch copy
// and discarded if it leaves the mover's own king in check.
func LegalMoves(p *Position) []Move {
	side := p.SideToMove
	pseudo := PseudoLegalMoves(p, side)

	legal := make([]Move, 0, len(pseudo))
	for _, move := range pseudo {
		next := p.applyUnchecked(move)
		if !InCheck(&next, side) {
			legal = append(legal, move)
		}
	}
	return legal
}

// LegalMovesFrom is the "click a piece, highlight destinations" query:
// the subset of LegalMoves starting on the given square.
func LegalMovesFrom(p *Position, from Square) []Move {
	return FilterSlice(LegalMoves(p), func(move Move) bool {
		return move.From == from
	})
}

// MoveFromString resolves coordinate notation ("e2e4", "e7e8q") against
// the legal moves of the position. Unknown and illegal moves come back
// as errors, as do malformed squares.
func MoveFromString(p *Position, s string) (Move, Error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, Errorf("invalid move '%v'", s)
	}
	if _, err := SquareFromString(s[0:2]); err.HasError() {
		return Move{}, err
	}
	if _, err := SquareFromString(s[2:4]); err.HasError() {
		return Move{}, err
	}

	for _, move := range LegalMoves(p) {
		if move.String() == s {
			return move, NilError
		}
	}
	return Move{}, Errorf("move '%v' is not legal in %v", s, FenString(p))
}

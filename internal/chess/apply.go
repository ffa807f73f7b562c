package chess

import (
	. "github.com/chesskit-go/chesskit/internal/helpers"
)

// Apply commits a move and returns the successor Position. The move
// must have been generated for this exact Position; anything else is
// rejected with an error and the receiver is left untouched. Legality
// problems (self-check, castling through check) never show up here:
// such moves simply do not exist in LegalMoves.
func (p Position) Apply(move Move) (Position, Error) {
	if !Contains(LegalMoves(&p), move) {
		return p, Errorf("invalid move %v for position %v", move.DebugString(), FenString(&p))
	}
	return p.applyUnchecked(move), NilError
}

// ApplyUnchecked commits a move without the legality check. The move
// must come from LegalMoves of this exact Position; callers that walk
// the legal-move list themselves (the perft driver) skip re-generating
// it once per move.
func (p Position) ApplyUnchecked(move Move) Position {
	return p.applyUnchecked(move)
}

// applyUnchecked trusts the move. LegalMoves uses it directly for its
// simulate-and-discard pass, where re-validating would recurse.
func (p Position) applyUnchecked(move Move) Position {
	next := p
	side := p.SideToMove

	next.Board[move.From.Index()] = XX

	switch move.Special {
	case EnPassantCapture:
		// The captured pawn is behind the destination square, on the
		// capturing pawn's starting rank.
		captured := Sq(move.To.File, move.From.Rank)
		next.Board[captured.Index()] = XX
		next.Board[move.To.Index()] = move.Piece
	case CastleKingside:
		geom := castleGeometries[side][Kingside]
		next.Board[geom.rookFrom.Index()] = XX
		next.Board[move.To.Index()] = move.Piece
		next.Board[geom.rookTo.Index()] = PieceFor(side, Rook)
	case CastleQueenside:
		geom := castleGeometries[side][Queenside]
		next.Board[geom.rookFrom.Index()] = XX
		next.Board[move.To.Index()] = move.Piece
		next.Board[geom.rookTo.Index()] = PieceFor(side, Rook)
	case Promotion:
		next.Board[move.To.Index()] = PieceFor(side, move.Promotion)
	default:
		next.Board[move.To.Index()] = move.Piece
	}

	next.EnPassant = Empty[Square]()
	if move.Piece.Type() == Pawn && AbsDiff(int(move.From.Rank), int(move.To.Rank)) == 2 {
		skipped := Sq(move.From.File, (move.From.Rank+move.To.Rank)/2)
		next.EnPassant = Some(skipped)
	}

	next.clearCastlingRightsFor(move.From)
	next.clearCastlingRightsFor(move.To)

	if move.Piece.Type() == Pawn || move.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if side == Black {
		next.FullmoveNumber++
	}
	next.SideToMove = side.Other()

	return next
}

// clearCastlingRightsFor revokes rights tied to a king or rook origin
// square whenever a move starts or ends there. Ending there means the
// rook was captured; rights never come back either way.
func (p *Position) clearCastlingRightsFor(sq Square) {
	for _, player := range []Player{White, Black} {
		if sq == castleGeometries[player][Kingside].kingFrom {
			p.Castling[player][Kingside] = false
			p.Castling[player][Queenside] = false
		}
		for _, side := range AllCastlingSides {
			if sq == castleGeometries[player][side].rookFrom {
				p.Castling[player][side] = false
			}
		}
	}
}

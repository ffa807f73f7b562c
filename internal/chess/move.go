package chess

// Special marks the moves whose effects go beyond "piece travels from
// one square to another": castling also relocates a rook, en passant
// removes a pawn from a third square, promotion swaps the pawn out.
type Special uint8

const (
	NoSpecial Special = iota
	CastleKingside
	CastleQueenside
	EnPassantCapture
	Promotion
)

func (s Special) String() string {
	switch s {
	case NoSpecial:
		return "none"
	case CastleKingside:
		return "castle-kingside"
	case CastleQueenside:
		return "castle-queenside"
	case EnPassantCapture:
		return "en-passant"
	case Promotion:
		return "promotion"
	}
	return "invalid"
}

// Move is a value describing a transition between two Positions. It
// does nothing by itself; Position.Apply performs it. Moves are only
// meaningful for the exact Position they were generated from.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece     // XX when nothing is captured
	Special   Special
	Promotion PieceType // set iff Special == Promotion
}

func (m Move) IsCapture() bool {
	return m.Captured != XX
}

// String renders the move in coordinate notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Special == Promotion {
		s += m.Promotion.String()
	}
	return s
}

func (m Move) DebugString() string {
	if m.IsCapture() {
		s := m.From.String() + "x" + m.To.String()
		if m.Special == Promotion {
			s += m.Promotion.String()
		}
		return s
	}
	return m.String()
}

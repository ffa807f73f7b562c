package chess

type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
	DrawByFiftyMove
	DrawByInsufficientMaterial
	DrawByRepetition
)

var _statusStrings = [7]string{
	"ongoing",
	"check",
	"checkmate",
	"stalemate",
	"draw by fifty-move rule",
	"draw by insufficient material",
	"draw by repetition",
}

func (s GameStatus) String() string {
	return _statusStrings[s]
}

func (s GameStatus) IsTerminal() bool {
	return s != Ongoing && s != Check
}

// Classify decides what state the position is in for the side to move.
// Mate and stalemate outrank the draw rules: a checkmate delivered on
// the hundredth halfmove is still a checkmate.
func Classify(p *Position) GameStatus {
	check := InCheck(p, p.SideToMove)

	if len(LegalMoves(p)) == 0 {
		if check {
			return Checkmate
		}
		return Stalemate
	}

	if p.HalfmoveClock >= 100 {
		return DrawByFiftyMove
	}
	if insufficientMaterial(p) {
		return DrawByInsufficientMaterial
	}

	if check {
		return Check
	}
	return Ongoing
}

// ClassifyWithHistory additionally detects threefold repetition.
// history is the sequence of positions that preceded p; repetition
// tracking lives with the caller because a bare Position has no past.
func ClassifyWithHistory(p *Position, history []Position) GameStatus {
	status := Classify(p)
	if status.IsTerminal() {
		return status
	}

	occurrences := 1
	for i := range history {
		if SameRepetitionPosition(p, &history[i]) {
			occurrences++
		}
	}
	if occurrences >= 3 {
		return DrawByRepetition
	}

	return status
}

// SameRepetitionPosition compares what matters for the repetition rule:
// placement, side to move, castling rights and en-passant target. The
// move counters are bookkeeping, not position.
func SameRepetitionPosition(a *Position, b *Position) bool {
	return a.Board == b.Board &&
		a.SideToMove == b.SideToMove &&
		a.Castling == b.Castling &&
		a.EnPassant == b.EnPassant
}

// insufficientMaterial covers the bare minimum that can never mate:
// king vs king, and king plus one minor piece vs king.
func insufficientMaterial(p *Position) bool {
	minors := 0
	for _, piece := range p.Board {
		switch piece.Type() {
		case NoPieceType, King:
		case Knight, Bishop:
			minors++
			if minors > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

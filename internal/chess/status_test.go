package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classifyFen(t *testing.T, fen string) GameStatus {
	p := positionFromFenOrFail(t, fen)
	return Classify(&p)
}

func TestClassifyOngoing(t *testing.T) {
	assert.Equal(t, Ongoing, classifyFen(t, StartingFen))
}

func TestClassifyCheck(t *testing.T) {
	// Queen on e7 gives check; the king can move away.
	assert.Equal(t, Check, classifyFen(t, "4k3/4q3/8/8/8/8/8/4K3 w - - 0 1"))
}

func TestClassifyFoolsMate(t *testing.T) {
	p := StartingPosition()
	for _, moveStr := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		p = applyOrFail(t, p, moveStr)
	}
	assert.Equal(t, Checkmate, Classify(&p))
	assert.Empty(t, LegalMoves(&p))
}

func TestClassifyBackRankMate(t *testing.T) {
	assert.Equal(t, Checkmate, classifyFen(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1"))
}

func TestClassifyStalemate(t *testing.T) {
	assert.Equal(t, Stalemate, classifyFen(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
}

func TestClassifyFiftyMoveDraw(t *testing.T) {
	assert.Equal(t, DrawByFiftyMove,
		classifyFen(t, "4k3/8/8/8/8/8/8/R3K3 w - - 100 80"))
	assert.Equal(t, Ongoing,
		classifyFen(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80"))
}

func TestCheckmateOutranksFiftyMoveRule(t *testing.T) {
	assert.Equal(t, Checkmate,
		classifyFen(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 100 80"))
}

func TestClassifyInsufficientMaterial(t *testing.T) {
	assert.Equal(t, DrawByInsufficientMaterial,
		classifyFen(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1"))
	assert.Equal(t, DrawByInsufficientMaterial,
		classifyFen(t, "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1"))
	assert.Equal(t, DrawByInsufficientMaterial,
		classifyFen(t, "4kn2/8/8/8/8/8/8/4K3 w - - 0 1"))

	// Rooks, queens and pawns can still mate.
	assert.Equal(t, Ongoing, classifyFen(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"))
	assert.Equal(t, Ongoing, classifyFen(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"))
	// Two minors are beyond the minimal rule.
	assert.Equal(t, Ongoing, classifyFen(t, "4k3/8/8/8/8/8/8/1NB1K3 w - - 0 1"))
}

func TestNoLegalMovesAlwaysMeansMateOrStalemate(t *testing.T) {
	fens := []string{
		StartingFen,
		"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"4k3/4q3/8/8/8/8/8/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		p := positionFromFenOrFail(t, fen)
		status := Classify(&p)
		if len(LegalMoves(&p)) == 0 {
			if InCheck(&p, p.SideToMove) {
				assert.Equal(t, Checkmate, status, fen)
			} else {
				assert.Equal(t, Stalemate, status, fen)
			}
		} else {
			assert.NotEqual(t, Checkmate, status, fen)
			assert.NotEqual(t, Stalemate, status, fen)
		}
	}
}

func TestClassifyWithHistoryDetectsRepetition(t *testing.T) {
	p := StartingPosition()
	history := []Position{}

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for round := 0; round < 2; round++ {
		for _, moveStr := range shuffle {
			history = append(history, p)
			p = applyOrFail(t, p, moveStr)
		}
	}

	// The starting placement has now occurred three times.
	assert.Equal(t, DrawByRepetition, ClassifyWithHistory(&p, history))
	assert.Equal(t, Ongoing, Classify(&p))
}

package chess

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pp(t any) string {
	return spew.Sdump(t)
}

func positionFromFenOrFail(t *testing.T, fen string) Position {
	p, err := PositionFromFen(fen)
	require.True(t, err.IsNil(), err.String())
	return p
}

func moveStrings(moves []Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = m.String()
	}
	return result
}

func TestStartingPositionHasTwentyMoves(t *testing.T) {
	p := StartingPosition()
	moves := LegalMoves(&p)
	assert.Equal(t, 20, len(moves), pp(moveStrings(moves)))
}

func TestPawnDoubleStepNeedsBothSquaresEmpty(t *testing.T) {
	// Knight on e3 blocks only the double step of the e-pawn.
	p := positionFromFenOrFail(t, "4k3/8/8/8/8/4N3/4P3/4K3 w - - 0 1")
	moves := moveStrings(LegalMovesFrom(&p, MustSquareFromString("e2")))
	assert.NotContains(t, moves, "e2e3")
	assert.NotContains(t, moves, "e2e4")

	// Blocker on e4 still allows the single step.
	p = positionFromFenOrFail(t, "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1")
	moves = moveStrings(LegalMovesFrom(&p, MustSquareFromString("e2")))
	assert.Contains(t, moves, "e2e3")
	assert.NotContains(t, moves, "e2e4")
}

func TestPawnNeverCapturesStraightAhead(t *testing.T) {
	p := positionFromFenOrFail(t, "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1")
	moves := moveStrings(LegalMovesFrom(&p, MustSquareFromString("e2")))
	assert.Contains(t, moves, "e2e3")
	assert.NotContains(t, moves, "e2e4")
}

func TestKnightJumpsFromCorner(t *testing.T) {
	p := positionFromFenOrFail(t, "4k3/8/8/8/8/8/8/N3K3 w - - 0 1")
	moves := moveStrings(LegalMovesFrom(&p, MustSquareFromString("a1")))
	assert.ElementsMatch(t, []string{"a1b3", "a1c2"}, moves)
}

func TestSliderStopsAtFirstBlocker(t *testing.T) {
	p := positionFromFenOrFail(t, "7k/8/8/r2pR3/8/8/8/4K3 w - - 0 1")
	moves := moveStrings(LegalMovesFrom(&p, MustSquareFromString("e5")))

	// West ray is blocked by the black pawn on d5, inclusive.
	assert.Contains(t, moves, "e5d5")
	assert.NotContains(t, moves, "e5c5")
	assert.NotContains(t, moves, "e5a5")
	// North and east rays are open.
	assert.Contains(t, moves, "e5e8")
	assert.Contains(t, moves, "e5h5")
}

func TestPromotionGeneratesOneMovePerPieceType(t *testing.T) {
	p := positionFromFenOrFail(t, "8/P6k/8/8/8/8/8/7K w - - 0 1")
	moves := LegalMovesFrom(&p, MustSquareFromString("a7"))

	require.Equal(t, 4, len(moves), pp(moves))
	promotions := []PieceType{}
	for _, m := range moves {
		assert.Equal(t, Promotion, m.Special)
		assert.Equal(t, MustSquareFromString("a8"), m.To)
		promotions = append(promotions, m.Promotion)
	}
	assert.ElementsMatch(t, []PieceType{Knight, Bishop, Rook, Queen}, promotions)
}

func TestCastlingRequiresEmptyPath(t *testing.T) {
	p := StartingPosition()
	assert.NotContains(t, moveStrings(LegalMoves(&p)), "e1g1")

	p = positionFromFenOrFail(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	moves := moveStrings(LegalMoves(&p))
	assert.Contains(t, moves, "e1g1")
	assert.Contains(t, moves, "e1c1")
}

func TestCastlingBlockedThroughAttackedSquare(t *testing.T) {
	// The queen on h3 covers f1: kingside is out, queenside is fine.
	p := positionFromFenOrFail(t, "r3k2r/8/8/8/8/7q/8/R3K2R w KQkq - 0 1")
	moves := moveStrings(LegalMoves(&p))
	assert.NotContains(t, moves, "e1g1")
	assert.Contains(t, moves, "e1c1")
}

func TestCastlingBlockedWhileInCheck(t *testing.T) {
	p := positionFromFenOrFail(t, "r3k2r/8/8/8/8/4q3/8/R3K2R w KQkq - 0 1")
	moves := moveStrings(LegalMoves(&p))
	assert.NotContains(t, moves, "e1g1")
	assert.NotContains(t, moves, "e1c1")
}

func TestCastlingNeedsRookOnOriginalSquare(t *testing.T) {
	// Rights still claim kingside, but the rook is gone.
	p := positionFromFenOrFail(t, "4k3/8/8/8/8/8/8/R3K3 w KQ - 0 1")
	moves := moveStrings(LegalMoves(&p))
	assert.NotContains(t, moves, "e1g1")
	assert.Contains(t, moves, "e1c1")
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	p := positionFromFenOrFail(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	moves := LegalMovesFrom(&p, MustSquareFromString("e5"))

	var enPassant *Move
	for i := range moves {
		if moves[i].Special == EnPassantCapture {
			enPassant = &moves[i]
		}
	}
	require.NotNil(t, enPassant, pp(moves))
	assert.Equal(t, "e5d6", enPassant.String())
	assert.Equal(t, BP, enPassant.Captured)
}

func TestEnPassantOnlyOntoTarget(t *testing.T) {
	// No en-passant target set: the diagonal onto the empty d6 square
	// must not be generated.
	p := positionFromFenOrFail(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")
	moves := moveStrings(LegalMovesFrom(&p, MustSquareFromString("e5")))
	assert.NotContains(t, moves, "e5d6")
}

func TestMovesNeverLandOnOwnPieces(t *testing.T) {
	p := StartingPosition()
	for _, move := range PseudoLegalMoves(&p, White) {
		occupant := p.Board.At(move.To)
		assert.False(t, occupant != XX && occupant.Player() == White,
			"move %v lands on own piece", move)
	}
}

func perft(t *testing.T, p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, move := range LegalMoves(p) {
		next := p.applyUnchecked(move)
		nodes += perft(t, &next, depth-1)
	}
	return nodes
}

func assertPerft(t *testing.T, fen string, expected []int) {
	p := positionFromFenOrFail(t, fen)
	for depth, want := range expected {
		got := perft(t, &p, depth+1)
		assert.Equal(t, want, got, fmt.Sprintf("%v at depth %v", fen, depth+1))
	}
}

func TestPerftStartingPosition(t *testing.T) {
	assertPerft(t, StartingFen, []int{20, 400, 8902, 197281})
}

func TestPerftKiwipete(t *testing.T) {
	assertPerft(t,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		[]int{48, 2039, 97862})
}

func TestPerftEnPassantPins(t *testing.T) {
	assertPerft(t,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		[]int{14, 191, 2812, 43238})
}

func TestPerftPromotionsAndCastlingRights(t *testing.T) {
	assertPerft(t,
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		[]int{6, 264, 9467})
}

func TestPerftPromotionGivesCheck(t *testing.T) {
	assertPerft(t,
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		[]int{44, 1486, 62379})
}

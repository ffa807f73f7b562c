package chess

var knightJumps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingSteps = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopRays = [4][2]int{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var rookRays = [4][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// pawnAdvanceDir is the rank delta a pawn of the given player moves in.
func pawnAdvanceDir(player Player) int {
	if player == White {
		return 1
	}
	return -1
}

// Attacks returns every square the given side could capture on in one
// move, regardless of whose turn it is. Pawns count their two capture
// diagonals only; sliders stop at the first occupied square in each
// ray, including that square.
func Attacks(p *Position, by Player) SquareSet {
	var attacked SquareSet

	for index, piece := range p.Board {
		if piece == XX || piece.Player() != by {
			continue
		}
		from := SquareFromIndex(index)

		switch piece.Type() {
		case Pawn:
			dir := pawnAdvanceDir(by)
			for _, df := range [2]int{-1, 1} {
				to := from.Offset(df, dir)
				if to.OnBoard() {
					attacked.Add(to)
				}
			}
		case Knight:
			for _, jump := range knightJumps {
				to := from.Offset(jump[0], jump[1])
				if to.OnBoard() {
					attacked.Add(to)
				}
			}
		case King:
			for _, step := range kingSteps {
				to := from.Offset(step[0], step[1])
				if to.OnBoard() {
					attacked.Add(to)
				}
			}
		case Bishop:
			addRayAttacks(&attacked, p, from, bishopRays[:])
		case Rook:
			addRayAttacks(&attacked, p, from, rookRays[:])
		case Queen:
			addRayAttacks(&attacked, p, from, bishopRays[:])
			addRayAttacks(&attacked, p, from, rookRays[:])
		}
	}

	return attacked
}

func addRayAttacks(attacked *SquareSet, p *Position, from Square, rays [][2]int) {
	for _, ray := range rays {
		to := from.Offset(ray[0], ray[1])
		for to.OnBoard() {
			attacked.Add(to)
			if p.Board.At(to) != XX {
				break
			}
			to = to.Offset(ray[0], ray[1])
		}
	}
}

// IsSquareAttacked reports whether the given side attacks the target
// square. Equivalent to Attacks(p, by).Contains(target) but scans
// outward from the target so it can stop early.
func IsSquareAttacked(p *Position, target Square, by Player) bool {
	for _, jump := range knightJumps {
		from := target.Offset(jump[0], jump[1])
		if from.OnBoard() && p.Board.At(from) == PieceFor(by, Knight) {
			return true
		}
	}

	// A pawn attacking the target sits one rank behind it, relative to
	// the pawn's own direction of travel.
	dir := pawnAdvanceDir(by)
	for _, df := range [2]int{-1, 1} {
		from := target.Offset(df, -dir)
		if from.OnBoard() && p.Board.At(from) == PieceFor(by, Pawn) {
			return true
		}
	}

	for _, step := range kingSteps {
		from := target.Offset(step[0], step[1])
		if from.OnBoard() && p.Board.At(from) == PieceFor(by, King) {
			return true
		}
	}

	if rayHits(p, target, bishopRays[:], PieceFor(by, Bishop), PieceFor(by, Queen)) {
		return true
	}
	if rayHits(p, target, rookRays[:], PieceFor(by, Rook), PieceFor(by, Queen)) {
		return true
	}

	return false
}

func rayHits(p *Position, target Square, rays [][2]int, sliders ...Piece) bool {
	for _, ray := range rays {
		from := target.Offset(ray[0], ray[1])
		for from.OnBoard() {
			piece := p.Board.At(from)
			if piece != XX {
				for _, slider := range sliders {
					if piece == slider {
						return true
					}
				}
				break
			}
			from = from.Offset(ray[0], ray[1])
		}
	}
	return false
}

func InCheck(p *Position, side Player) bool {
	return IsSquareAttacked(p, p.KingSquare(side), side.Other())
}

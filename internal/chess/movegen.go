package chess

func pawnStartRank(player Player) Rank {
	if player == White {
		return 1
	}
	return 6
}

func pawnLastRank(player Player) Rank {
	if player == White {
		return 7
	}
	return 0
}

type castleGeometry struct {
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	between  []Square // must be empty
	kingPath []Square // must not be attacked, kingFrom included
}

var castleGeometries = [2][2]castleGeometry{
	{ // White
		{ // Kingside
			kingFrom: Sq(4, 0), kingTo: Sq(6, 0),
			rookFrom: Sq(7, 0), rookTo: Sq(5, 0),
			between:  []Square{Sq(5, 0), Sq(6, 0)},
			kingPath: []Square{Sq(4, 0), Sq(5, 0), Sq(6, 0)},
		},
		{ // Queenside
			kingFrom: Sq(4, 0), kingTo: Sq(2, 0),
			rookFrom: Sq(0, 0), rookTo: Sq(3, 0),
			between:  []Square{Sq(3, 0), Sq(2, 0), Sq(1, 0)},
			kingPath: []Square{Sq(4, 0), Sq(3, 0), Sq(2, 0)},
		},
	},
	{ // Black
		{ // Kingside
			kingFrom: Sq(4, 7), kingTo: Sq(6, 7),
			rookFrom: Sq(7, 7), rookTo: Sq(5, 7),
			between:  []Square{Sq(5, 7), Sq(6, 7)},
			kingPath: []Square{Sq(4, 7), Sq(5, 7), Sq(6, 7)},
		},
		{ // Queenside
			kingFrom: Sq(4, 7), kingTo: Sq(2, 7),
			rookFrom: Sq(0, 7), rookTo: Sq(3, 7),
			between:  []Square{Sq(3, 7), Sq(2, 7), Sq(1, 7)},
			kingPath: []Square{Sq(4, 7), Sq(3, 7), Sq(2, 7)},
		},
	},
}

var specialForCastlingSide = [2]Special{CastleKingside, CastleQueenside}

// PseudoLegalMoves produces every move of the given side that follows
// piece movement and occupancy rules, without checking whether the
// mover's king is left in check; that filtering is LegalMoves' job.
// The one exception is the castling king-path rule, which by definition
// looks at attacks on the current position.
func PseudoLegalMoves(p *Position, side Player) []Move {
	moves := make([]Move, 0, 48)

	for index, piece := range p.Board {
		if piece == XX || piece.Player() != side {
			continue
		}
		from := SquareFromIndex(index)

		switch piece.Type() {
		case Pawn:
			moves = appendPawnMoves(moves, p, from, piece)
		case Knight:
			moves = appendStepMoves(moves, p, from, piece, knightJumps[:])
		case Bishop:
			moves = appendSlideMoves(moves, p, from, piece, bishopRays[:])
		case Rook:
			moves = appendSlideMoves(moves, p, from, piece, rookRays[:])
		case Queen:
			moves = appendSlideMoves(moves, p, from, piece, bishopRays[:])
			moves = appendSlideMoves(moves, p, from, piece, rookRays[:])
		case King:
			moves = appendStepMoves(moves, p, from, piece, kingSteps[:])
			moves = appendCastlingMoves(moves, p, from, piece)
		}
	}

	return moves
}

// appendPawnStepOrPromotions expands a pawn arrival on the last rank
// into one move per promotable piece type.
func appendPawnStepOrPromotions(moves []Move, side Player, move Move) []Move {
	if move.To.Rank != pawnLastRank(side) {
		return append(moves, move)
	}
	for _, promotion := range PromotablePieceTypes {
		promoted := move
		promoted.Special = Promotion
		promoted.Promotion = promotion
		moves = append(moves, promoted)
	}
	return moves
}

func appendPawnMoves(moves []Move, p *Position, from Square, piece Piece) []Move {
	side := piece.Player()
	dir := pawnAdvanceDir(side)

	// Forward steps never capture.
	oneAhead := from.Offset(0, dir)
	if oneAhead.OnBoard() && p.Board.At(oneAhead) == XX {
		moves = appendPawnStepOrPromotions(moves, side, Move{
			From: from, To: oneAhead, Piece: piece,
		})

		twoAhead := from.Offset(0, 2*dir)
		if from.Rank == pawnStartRank(side) && p.Board.At(twoAhead) == XX {
			moves = append(moves, Move{
				From: from, To: twoAhead, Piece: piece,
			})
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.OnBoard() {
			continue
		}
		occupant := p.Board.At(to)
		if occupant != XX && occupant.Player() != side {
			moves = appendPawnStepOrPromotions(moves, side, Move{
				From: from, To: to, Piece: piece, Captured: occupant,
			})
		} else if occupant == XX && p.EnPassant.HasValue() && to == p.EnPassant.Value() {
			// The captured pawn sits beside us, not on the target square.
			moves = append(moves, Move{
				From: from, To: to, Piece: piece,
				Captured: PieceFor(side.Other(), Pawn),
				Special:  EnPassantCapture,
			})
		}
	}

	return moves
}

func appendStepMoves(moves []Move, p *Position, from Square, piece Piece, steps [][2]int) []Move {
	side := piece.Player()
	for _, step := range steps {
		to := from.Offset(step[0], step[1])
		if !to.OnBoard() {
			continue
		}
		occupant := p.Board.At(to)
		if occupant == XX {
			moves = append(moves, Move{From: from, To: to, Piece: piece})
		} else if occupant.Player() != side {
			moves = append(moves, Move{From: from, To: to, Piece: piece, Captured: occupant})
		}
	}
	return moves
}

func appendSlideMoves(moves []Move, p *Position, from Square, piece Piece, rays [][2]int) []Move {
	side := piece.Player()
	for _, ray := range rays {
		to := from.Offset(ray[0], ray[1])
		for to.OnBoard() {
			occupant := p.Board.At(to)
			if occupant == XX {
				moves = append(moves, Move{From: from, To: to, Piece: piece})
			} else {
				if occupant.Player() != side {
					moves = append(moves, Move{From: from, To: to, Piece: piece, Captured: occupant})
				}
				break
			}
			to = to.Offset(ray[0], ray[1])
		}
	}
	return moves
}

func appendCastlingMoves(moves []Move, p *Position, from Square, piece Piece) []Move {
	side := piece.Player()

	for _, castlingSide := range AllCastlingSides {
		if !p.Castling[side][castlingSide] {
			continue
		}
		geom := castleGeometries[side][castlingSide]
		if from != geom.kingFrom || p.Board.At(geom.rookFrom) != PieceFor(side, Rook) {
			continue
		}

		blocked := false
		for _, sq := range geom.between {
			if p.Board.At(sq) != XX {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		// The king may not castle out of, through, or into an attacked
		// square; checked against the opponent on the pre-move position.
		attacked := false
		for _, sq := range geom.kingPath {
			if IsSquareAttacked(p, sq, side.Other()) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}

		moves = append(moves, Move{
			From: geom.kingFrom, To: geom.kingTo, Piece: piece,
			Special: specialForCastlingSide[castlingSide],
		})
	}

	return moves
}

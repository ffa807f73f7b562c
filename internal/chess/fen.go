package chess

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/chesskit-go/chesskit/internal/helpers"
)

func fenStringForPlayer(p Player) string {
	if p == White {
		return "w"
	}
	return "b"
}

var fenCastlingLetters = [2][2]string{
	{"K", "Q"},
	{"k", "q"},
}

func fenStringForCastling(rights CastlingRights) string {
	s := ""
	for _, player := range []Player{White, Black} {
		for _, side := range AllCastlingSides {
			if rights[player][side] {
				s += fenCastlingLetters[player][side]
			}
		}
	}
	if s == "" {
		s = "-"
	}
	return s
}

func fenStringForEnPassant(target Optional[Square]) string {
	if target.IsEmpty() {
		return "-"
	}
	return target.Value().String()
}

func fenStringForBoard(b Board) string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b[rank*8+file]
			if piece == XX {
				empty++
				continue
			}
			if empty > 0 {
				s += fmt.Sprint(empty)
				empty = 0
			}
			s += piece.String()
		}
		if empty > 0 {
			s += fmt.Sprint(empty)
		}
		if rank != 0 {
			s += "/"
		}
	}
	return s
}

func FenString(p *Position) string {
	return fmt.Sprintf("%v %v %v %v %v %v",
		fenStringForBoard(p.Board),
		fenStringForPlayer(p.SideToMove),
		fenStringForCastling(p.Castling),
		fenStringForEnPassant(p.EnPassant),
		p.HalfmoveClock,
		p.FullmoveNumber)
}

// PositionFromFen accepts 6-field FEN as well as the 4- and 2-field
// abbreviations, defaulting the missing fields. The parsed position
// must carry exactly one king per side.
func PositionFromFen(s string) (Position, Error) {
	fields := strings.Fields(s)
	if len(fields) != 6 && len(fields) != 4 && len(fields) != 2 {
		return Position{}, Errorf("wrong number of fields (%v) in fen '%v'", len(fields), s)
	}

	p := Position{FullmoveNumber: 1}

	rank, file := Rank(7), File(0)
	for _, c := range fields[0] {
		if c == '/' {
			if file != 8 {
				return Position{}, Errorf("rank %v has %v squares in fen '%v'", rank, file, s)
			}
			if rank == 0 {
				return Position{}, Errorf("too many ranks in fen '%v'", s)
			}
			rank--
			file = 0
		} else if c >= '1' && c <= '8' {
			file += File(c - '0')
		} else if piece, err := PieceFromRune(c); err.IsNil() {
			if file >= 8 {
				return Position{}, Errorf("rank %v overflows in fen '%v'", rank, s)
			}
			p.Board[Sq(file, rank).Index()] = piece
			file++
		} else {
			return Position{}, Errorf("unknown character '%v' in fen '%v'", string(c), s)
		}
	}
	if rank != 0 || file != 8 {
		return Position{}, Errorf("board ends early at rank %v file %v in fen '%v'", rank, file, s)
	}

	player, err := PlayerFromString(fields[1])
	if err.HasError() {
		return Position{}, err
	}
	p.SideToMove = player

	castling, enPassant := "-", "-"
	if len(fields) >= 4 {
		castling, enPassant = fields[2], fields[3]
	}

	for _, c := range castling {
		switch c {
		case '-':
		case 'K':
			p.Castling[White][Kingside] = true
		case 'Q':
			p.Castling[White][Queenside] = true
		case 'k':
			p.Castling[Black][Kingside] = true
		case 'q':
			p.Castling[Black][Queenside] = true
		default:
			return Position{}, Errorf("invalid castling rights '%v' in fen '%v'", castling, s)
		}
	}

	if enPassant != "-" {
		target, err := SquareFromString(enPassant)
		if err.HasError() {
			return Position{}, err
		}
		p.EnPassant = Some(target)
	}

	if len(fields) == 6 {
		halfmove, halfErr := WrapReturn(strconv.Atoi(fields[4]))
		if halfErr.HasError() {
			return Position{}, Errorf("invalid halfmove clock '%v' in fen '%v'", fields[4], s)
		}
		fullmove, fullErr := WrapReturn(strconv.Atoi(fields[5]))
		if fullErr.HasError() {
			return Position{}, Errorf("invalid fullmove number '%v' in fen '%v'", fields[5], s)
		}
		p.HalfmoveClock = halfmove
		p.FullmoveNumber = fullmove
	}

	if err := p.checkKings(); err.HasError() {
		return Position{}, err
	}

	return p, NilError
}

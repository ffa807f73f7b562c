package chess

import (
	. "github.com/chesskit-go/chesskit/internal/helpers"
)

type Player uint8

const (
	White Player = iota
	Black
)

var _playerStrings = [2]string{
	"white", "black",
}

func (p Player) String() string {
	return _playerStrings[p]
}

func (p Player) Other() Player {
	return 1 - p
}

func PlayerFromString(s string) (Player, Error) {
	switch s {
	case "w":
		return White, NilError
	case "b":
		return Black, NilError
	default:
		return White, Errorf("invalid player '%v'", s)
	}
}

type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (t PieceType) String() string {
	return [7]string{
		"?", "p", "n", "b", "r", "q", "k",
	}[t]
}

func PieceTypeFromString(s string) PieceType {
	switch s {
	case "p":
		return Pawn
	case "n":
		return Knight
	case "b":
		return Bishop
	case "r":
		return Rook
	case "q":
		return Queen
	case "k":
		return King
	default:
		return NoPieceType
	}
}

// PromotablePieceTypes is the closed set of types a pawn may promote to.
var PromotablePieceTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

type Piece uint8

const (
	XX Piece = iota
	WP
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
)

var _pieceTypes = [13]PieceType{
	NoPieceType,
	Pawn, Knight, Bishop, Rook, Queen, King,
	Pawn, Knight, Bishop, Rook, Queen, King,
}

func (p Piece) Type() PieceType {
	return _pieceTypes[p]
}

func (p Piece) Player() Player {
	if p >= BP {
		return Black
	}
	return White
}

var _pieceForPlayer = [2][7]Piece{
	{XX, WP, WN, WB, WR, WQ, WK},
	{XX, BP, BN, BB, BR, BQ, BK},
}

func PieceFor(player Player, pieceType PieceType) Piece {
	return _pieceForPlayer[player][pieceType]
}

var _pieceStrings = [13]string{
	" ",
	"P", "N", "B", "R", "Q", "K",
	"p", "n", "b", "r", "q", "k",
}

func (p Piece) String() string {
	return _pieceStrings[p]
}

var _pieceUnicode = [13]string{
	" ",
	"♙", "♘", "♗", "♖", "♕", "♔",
	"♟", "♞", "♝", "♜", "♛", "♚",
}

func (p Piece) Unicode() string {
	return _pieceUnicode[p]
}

func PieceFromRune(c rune) (Piece, Error) {
	switch c {
	case 'P':
		return WP, NilError
	case 'N':
		return WN, NilError
	case 'B':
		return WB, NilError
	case 'R':
		return WR, NilError
	case 'Q':
		return WQ, NilError
	case 'K':
		return WK, NilError
	case 'p':
		return BP, NilError
	case 'n':
		return BN, NilError
	case 'b':
		return BB, NilError
	case 'r':
		return BR, NilError
	case 'q':
		return BQ, NilError
	case 'k':
		return BK, NilError
	default:
		return XX, Errorf("invalid piece '%v'", string(c))
	}
}

type File int8
type Rank int8

func (f File) String() string {
	return [8]string{
		"a", "b", "c", "d", "e", "f", "g", "h",
	}[f]
}

func (r Rank) String() string {
	return [8]string{
		"1", "2", "3", "4", "5", "6", "7", "8",
	}[r]
}

func FileFromChar(c byte) (File, Error) {
	file := int(c - 'a')
	if file < 0 || file >= 8 {
		return 0, Errorf("invalid file '%v'", string(c))
	}
	return File(file), NilError
}

func RankFromChar(c byte) (Rank, Error) {
	rank := int(c - '1')
	if rank < 0 || rank >= 8 {
		return 0, Errorf("invalid rank '%v'", string(c))
	}
	return Rank(rank), NilError
}

// Square is a coordinate pair; both components are in 0..7 for any
// square that is actually on the board.
type Square struct {
	File File
	Rank Rank
}

func Sq(file File, rank Rank) Square {
	return Square{file, rank}
}

func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

func (s Square) Index() int {
	return int(s.Rank)*8 + int(s.File)
}

func SquareFromIndex(index int) Square {
	return Square{File(index & 0b111), Rank(index >> 3)}
}

func (s Square) Offset(df int, dr int) Square {
	return Square{s.File + File(df), s.Rank + Rank(dr)}
}

func (s Square) String() string {
	return s.File.String() + s.Rank.String()
}

func SquareFromString(s string) (Square, Error) {
	if len(s) != 2 {
		return Square{}, Errorf("invalid square '%v'", s)
	}

	file, fileErr := FileFromChar(s[0])
	if fileErr.HasError() {
		return Square{}, fileErr
	}
	rank, rankErr := RankFromChar(s[1])
	if rankErr.HasError() {
		return Square{}, rankErr
	}

	return Square{file, rank}, NilError
}

func MustSquareFromString(s string) Square {
	sq, err := SquareFromString(s)
	if err.HasError() {
		panic(err)
	}
	return sq
}

// SquareSet is a bitset over board indices, rank-major from a1.
type SquareSet uint64

func (ss SquareSet) Contains(sq Square) bool {
	return ss&(1<<sq.Index()) != 0
}

func (ss *SquareSet) Add(sq Square) {
	*ss |= 1 << sq.Index()
}

func (ss SquareSet) Count() int {
	count := 0
	for ss != 0 {
		ss &= ss - 1
		count++
	}
	return count
}

func (ss SquareSet) Squares() []Square {
	squares := []Square{}
	for index := 0; index < 64; index++ {
		if ss&(1<<index) != 0 {
			squares = append(squares, SquareFromIndex(index))
		}
	}
	return squares
}

// Board is a mailbox of 64 squares, index 0 = a1, 63 = h8.
type Board [64]Piece

func (b *Board) At(sq Square) Piece {
	return b[sq.Index()]
}

func (b Board) String() string {
	result := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			result += b[rank*8+file].String()
		}
		if rank != 0 {
			result += "\n"
		}
	}
	return result
}

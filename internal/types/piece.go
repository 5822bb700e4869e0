/*
 * Corvid - a bitboard chess engine core written in Go
 */

package types

// Piece is a color+kind pair, indexing the Board's twelve piece bitboards.
// Layout is PieceNone, then White{Pawn..King}, then Black{Pawn..King} - six
// piece types per color, matching PtLength-1.
type Piece uint8

const (
	PieceNone Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceLength = int(BlackKing) + 1
)

// piecesPerColor is the number of real piece types (Pawn..King).
const piecesPerColor = int(King)

// MakePiece builds a Piece from a color and piece type. Returns PieceNone
// if pt is PtNone.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int(c)*piecesPerColor + int(pt))
}

// IsValid reports whether p is one of the twelve real pieces.
func (p Piece) IsValid() bool {
	return p > PieceNone && int(p) < PieceLength
}

// ColorOf returns the piece's color. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	if int(p) > piecesPerColor {
		return Black
	}
	return White
}

// TypeOf returns the piece's color-independent type.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	if int(p) > piecesPerColor {
		return PieceType(int(p) - piecesPerColor)
	}
	return PieceType(p)
}

var pieceChar = [PieceLength]string{
	"-", "P", "N", "B", "R", "Q", "K",
	"p", "n", "b", "r", "q", "k",
}

// Char returns the FEN character for the piece: uppercase for White,
// lowercase for Black, "-" for PieceNone.
func (p Piece) Char() string {
	return pieceChar[p]
}

// PieceFromChar parses a single FEN piece letter. Returns PieceNone, false
// for any character that isn't one of the twelve piece letters.
func PieceFromChar(c byte) (Piece, bool) {
	for p := WhitePawn; int(p) < PieceLength; p++ {
		if pieceChar[p][0] == c {
			return p, true
		}
	}
	return PieceNone, false
}

// String returns a human-readable "White Knight" style name.
func (p Piece) String() string {
	if p == PieceNone {
		return "none"
	}
	color := "White"
	if p.ColorOf() == Black {
		color = "Black"
	}
	return color + " " + p.TypeOf().String()
}

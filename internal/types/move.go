/*
 * Corvid - a bitboard chess engine core written in Go
 */

package types

import "strings"

// MoveType classifies how a move changes the board beyond a plain
// from/to relocation.
type MoveType uint8

const (
	Quiet MoveType = iota
	Capture
	DoublePush
	EnPassant
	Castle
	Promotion
	PromotionCapture
	moveTypeLength
)

// IsValid reports whether mt is one of the seven defined move kinds.
func (mt MoveType) IsValid() bool {
	return mt < moveTypeLength
}

// IsCapture reports whether the move kind removes an enemy piece,
// including en-passant and promotion-captures.
func (mt MoveType) IsCapture() bool {
	return mt == Capture || mt == EnPassant || mt == PromotionCapture
}

// IsPromotion reports whether the move kind promotes a pawn.
func (mt MoveType) IsPromotion() bool {
	return mt == Promotion || mt == PromotionCapture
}

// Move packs source, target, moving piece, move kind and (for promotions)
// the promotion piece type into a single 32-bit value. Equality is
// field-wise over {from, to, piece, kind, promotion} only - nothing else is
// ever packed into a Move, so plain == comparison is move equality, exactly
// as required for TT storage and killer-move lookup (spec design note on
// move equality).
//
//	bit layout (low to high):
//	 0..5   to square      (6 bits)
//	 6..11  from square    (6 bits)
//	12..15  moving piece    (4 bits)
//	16..18  move type       (3 bits)
//	19..21  promotion type  (3 bits, PtNone when not a promotion)
type Move uint32

// MoveNone is the zero value: not a legal move in any position.
const MoveNone Move = 0

const (
	fromShift  = 6
	pieceShift = 12
	typeShift  = 16
	promShift  = 19

	toMask    Move = 0x3F
	fromMask  Move = 0x3F << fromShift
	pieceMask Move = 0xF << pieceShift
	typeMask  Move = 0x7 << typeShift
	promMask  Move = 0x7 << promShift
)

// NewMove encodes a move. promo is ignored (stored as PtNone) unless kind
// is Promotion or PromotionCapture.
func NewMove(from, to Square, piece Piece, kind MoveType, promo PieceType) Move {
	if !kind.IsPromotion() {
		promo = PtNone
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(piece)<<pieceShift |
		Move(kind)<<typeShift |
		Move(promo)<<promShift
}

// From returns the source square.
func (m Move) From() Square { return Square((m & fromMask) >> fromShift) }

// To returns the target square.
func (m Move) To() Square { return Square(m & toMask) }

// Piece returns the moving piece.
func (m Move) Piece() Piece { return Piece((m & pieceMask) >> pieceShift) }

// Type returns the move kind.
func (m Move) Type() MoveType { return MoveType((m & typeMask) >> typeShift) }

// PromotionType returns the promotion piece type; PtNone unless Type() is
// Promotion or PromotionCapture.
func (m Move) PromotionType() PieceType { return PieceType((m & promMask) >> promShift) }

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool { return m.Type().IsCapture() }

// IsTactical reports whether the move is a capture or a promotion - the
// category that move ordering/LMR treat specially ("non-tactical" in the
// spec is the negation of this).
func (m Move) IsTactical() bool {
	return m.Type().IsCapture() || m.Type().IsPromotion()
}

// IsValid reports whether m has well-formed fields. MoveNone is never
// valid in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.Piece().IsValid() &&
		m.Type().IsValid()
}

// UCI renders the move in long algebraic form ("e2e4", "e7e8q"), the
// format used by both the UCI adapter and the perft/test-suite records.
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Type().IsPromotion() {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

// String is a verbose debugging representation.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return "Move{" + m.UCI() + " " + m.Piece().String() + "}"
}

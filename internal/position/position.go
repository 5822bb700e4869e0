/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package position implements the board model (C2), FEN decoding (C7),
// Zobrist hashing (C9) and move application (C6). Position is a plain
// value type - every field is a fixed-size array or scalar, no slices or
// pointers - so Go's ordinary struct assignment is already a full,
// independent copy. That is what makes the search's copy-make discipline
// trivial: save a copy with `saved := *pos`, call DoMove, and unmake by
// `*pos = saved` if the move turns out to be illegal or once search of
// that branch is done.
package position

import (
	"github.com/corvidchess/corvid/internal/attacks"
	. "github.com/corvidchess/corvid/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the complete, self-contained state of a chess position.
type Position struct {
	bitboards [PieceLength]Bitboard
	occupancy [3]Bitboard // [White], [Black], [ColorBoth]

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantTarget Square
	halfMoveClock   int
	fullMoveNumber  int

	zobristKey Key

	lastMove          Move
	lastCapturedPiece Piece
}

// Empty returns an empty position: no pieces, White to move, no castling
// rights, no en-passant target. Useful as a starting point for tests and
// for FEN parsing.
func Empty() Position {
	return Position{
		enPassantTarget: SqNone,
		fullMoveNumber:  1,
	}
}

// New parses fen (defaulting to the standard start position when empty)
// and panics on a malformed FEN. Prefer NewFromFEN for callers that need
// to handle a bad FEN gracefully (e.g. the UCI adapter).
func New(fen string) Position {
	if fen == "" {
		fen = StartFen
	}
	p, err := NewFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// Copy returns an independent copy of p. Because Position holds only
// value fields, this is equivalent to (and no more expensive than) a
// plain `p` value copy via assignment; it exists for readability at call
// sites that want to be explicit about the copy-make discipline.
func (p *Position) Copy() Position {
	return *p
}

// SetPieceAt places piece on sq. Caller must ensure sq is currently
// empty; occupancy is not recomputed here - call RecomputeOccupancy once
// after a batch of set/clear calls (FEN parsing) or rely on DoMove, which
// recomputes it itself after every move.
func (p *Position) SetPieceAt(piece Piece, sq Square) {
	p.bitboards[piece].PushSquare(sq)
}

// ClearPieceAt removes piece from sq.
func (p *Position) ClearPieceAt(piece Piece, sq Square) {
	p.bitboards[piece].PopSquare(sq)
}

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece {
	for pc := WhitePawn; int(pc) < PieceLength; pc++ {
		if p.bitboards[pc].Has(sq) {
			return pc
		}
	}
	return PieceNone
}

// RecomputeOccupancy rebuilds the derived occupancy bitboards from the
// twelve piece bitboards. Must be called after any direct manipulation of
// the piece bitboards (FEN parsing); DoMove calls it itself.
func (p *Position) RecomputeOccupancy() {
	var white, black Bitboard
	for pt := Pawn; pt <= King; pt++ {
		white |= p.bitboards[MakePiece(White, pt)]
		black |= p.bitboards[MakePiece(Black, pt)]
	}
	p.occupancy[White] = white
	p.occupancy[Black] = black
	p.occupancy[ColorBoth] = white | black
}

// PiecesBb returns the bitboard of color c's pieces of type pt.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.bitboards[MakePiece(c, pt)]
}

// PieceBb returns the raw bitboard for one of the twelve pieces.
func (p *Position) PieceBb(piece Piece) Bitboard {
	return p.bitboards[piece]
}

// Occupied returns the combined occupancy of both colors.
func (p *Position) Occupied() Bitboard {
	return p.occupancy[ColorBoth]
}

// OccupiedBy returns the occupancy of a single color.
func (p *Position) OccupiedBy(c Color) Bitboard {
	return p.occupancy[c]
}

// SideToMove returns the side to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantTarget returns the current en-passant target square, or
// SqNone.
func (p *Position) EnPassantTarget() Square {
	return p.enPassantTarget
}

// HalfMoveClock returns the fifty-move-rule half-move clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the FEN full-move counter.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// ZobristKey returns the position's current Zobrist key.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// LastMove returns the most recently applied move, or MoveNone.
func (p *Position) LastMove() Move {
	return p.lastMove
}

// KingSquare returns the square of color c's king. Panics if the board
// doesn't have exactly one king of that color - a violated board
// invariant is a programming error, not a recoverable condition.
func (p *Position) KingSquare(c Color) Square {
	kings := p.bitboards[MakePiece(c, King)]
	if kings.PopCount() != 1 {
		panic("position: expected exactly one king for " + c.String())
	}
	return kings.Lsb()
}

// attackers bundles the bitboards attacks.IsAttacked needs for the given
// attacking color.
func (p *Position) attackers(by Color) attacks.Attackers {
	return attacks.Attackers{
		Occupied:     p.occupancy[ColorBoth],
		Pawns:        p.PiecesBb(by, Pawn),
		Knights:      p.PiecesBb(by, Knight),
		DiagSliders:  p.PiecesBb(by, Bishop) | p.PiecesBb(by, Queen),
		OrthoSliders: p.PiecesBb(by, Rook) | p.PiecesBb(by, Queen),
		King:         p.PiecesBb(by, King),
	}
}

// IsAttacked reports whether square sq is attacked by any piece of color
// by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return attacks.IsAttacked(sq, by, p.attackers(by))
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	us := p.sideToMove
	return p.IsAttacked(p.KingSquare(us), us.Opposite())
}

// HasInsufficientMaterial reports a trivially drawn material balance: bare
// kings, king+minor vs king, or king+bishop vs king+bishop of the same
// color complex.
func (p *Position) HasInsufficientMaterial() bool {
	nonKing := p.Occupied() &^ (p.bitboards[WhiteKing] | p.bitboards[BlackKing])
	if nonKing == BbZero {
		return true
	}
	if nonKing.PopCount() == 2 {
		wb, bb := p.bitboards[WhiteBishop], p.bitboards[BlackBishop]
		if wb.PopCount() == 1 && bb.PopCount() == 1 {
			ws, bs := wb.Lsb(), bb.Lsb()
			return (int(ws.FileOf())+int(ws.RankOf()))%2 == (int(bs.FileOf())+int(bs.RankOf()))%2
		}
	}
	if nonKing.PopCount() > 1 {
		return false
	}
	minor := p.bitboards[WhiteKnight] | p.bitboards[BlackKnight] |
		p.bitboards[WhiteBishop] | p.bitboards[BlackBishop]
	return nonKing&minor != 0
}

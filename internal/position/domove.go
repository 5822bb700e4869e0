/*
 * Corvid - a bitboard chess engine core written in Go
 */

package position

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// castleRookMove describes the rook relocation that accompanies a castle
// move, indexed by the king's destination square.
type castleRookMove struct {
	rook     Piece
	from, to Square
}

var castleRookMoves = map[Square]castleRookMove{
	SqG1: {WhiteRook, SqH1, SqF1},
	SqC1: {WhiteRook, SqA1, SqD1},
	SqG8: {BlackRook, SqH8, SqF8},
	SqC8: {BlackRook, SqA8, SqD8},
}

// castlingLostBySquare maps a square to the castling right(s) permanently
// lost when a king or rook leaves (or a rook is captured on) that square.
// Castling rights only ever shrink (spec's monotonicity invariant); DoMove
// clears bits here, never sets them.
var castlingLostBySquare = map[Square]CastlingRights{
	SqE1: CastleWK | CastleWQ,
	SqA1: CastleWQ,
	SqH1: CastleWK,
	SqE8: CastleBK | CastleBQ,
	SqA8: CastleBQ,
	SqH8: CastleBK,
}

// DoMove applies m to the position in place. It does not check legality:
// the caller (search or perft) is expected to save a copy beforehand
// (`saved := *pos`), call DoMove, test with IsAttacked whether the king of
// the side that just moved is attacked, and restore `*pos = saved` if that
// side is left in check. This
// mirrors spec §4.6's exact sequence: clear source, clear/reset the
// en-passant target, apply the move-kind-specific effect, update castling
// rights, flip the side to move, then recompute derived state.
func (p *Position) DoMove(m Move) {
	from, to := m.From(), m.To()
	piece := m.Piece()
	us := p.sideToMove
	them := us.Opposite()

	p.zobristKey ^= zobristTable.sideToMove
	if p.enPassantTarget != SqNone {
		p.zobristKey ^= zobristTable.epFile[p.enPassantTarget.FileOf()]
	}
	crBefore := p.castlingRights

	p.ClearPieceAt(piece, from)
	p.zobristKey ^= zobristTable.piece[piece][from]

	p.lastCapturedPiece = PieceNone
	newEp := SqNone
	resetClock := piece.TypeOf() == Pawn

	switch m.Type() {
	case Quiet:
		p.SetPieceAt(piece, to)
		p.zobristKey ^= zobristTable.piece[piece][to]

	case DoublePush:
		p.SetPieceAt(piece, to)
		p.zobristKey ^= zobristTable.piece[piece][to]
		newEp = Square(int(from)+int(to)) / 2

	case Capture:
		captured := p.PieceAt(to)
		p.lastCapturedPiece = captured
		p.ClearPieceAt(captured, to)
		p.zobristKey ^= zobristTable.piece[captured][to]
		p.SetPieceAt(piece, to)
		p.zobristKey ^= zobristTable.piece[piece][to]
		resetClock = true
		if lost, ok := castlingLostBySquare[to]; ok {
			p.castlingRights = p.castlingRights.Clear(lost)
		}

	case EnPassant:
		capturedSq := SquareOf(to.FileOf(), from.RankOf())
		captured := MakePiece(them, Pawn)
		p.lastCapturedPiece = captured
		p.ClearPieceAt(captured, capturedSq)
		p.zobristKey ^= zobristTable.piece[captured][capturedSq]
		p.SetPieceAt(piece, to)
		p.zobristKey ^= zobristTable.piece[piece][to]
		resetClock = true

	case Castle:
		p.SetPieceAt(piece, to)
		p.zobristKey ^= zobristTable.piece[piece][to]
		rm := castleRookMoves[to]
		p.ClearPieceAt(rm.rook, rm.from)
		p.zobristKey ^= zobristTable.piece[rm.rook][rm.from]
		p.SetPieceAt(rm.rook, rm.to)
		p.zobristKey ^= zobristTable.piece[rm.rook][rm.to]

	case Promotion:
		promoted := MakePiece(us, m.PromotionType())
		p.SetPieceAt(promoted, to)
		p.zobristKey ^= zobristTable.piece[promoted][to]

	case PromotionCapture:
		captured := p.PieceAt(to)
		p.lastCapturedPiece = captured
		p.ClearPieceAt(captured, to)
		p.zobristKey ^= zobristTable.piece[captured][to]
		promoted := MakePiece(us, m.PromotionType())
		p.SetPieceAt(promoted, to)
		p.zobristKey ^= zobristTable.piece[promoted][to]
		resetClock = true
		if lost, ok := castlingLostBySquare[to]; ok {
			p.castlingRights = p.castlingRights.Clear(lost)
		}
	}

	if lost, ok := castlingLostBySquare[from]; ok {
		p.castlingRights = p.castlingRights.Clear(lost)
	}

	if newEp != SqNone {
		p.zobristKey ^= zobristTable.epFile[newEp.FileOf()]
	}
	p.enPassantTarget = newEp

	for i, bit := range castlingBits {
		if crBefore.Has(bit) && !p.castlingRights.Has(bit) {
			p.zobristKey ^= zobristTable.castling[i]
		}
	}

	if resetClock {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if us == Black {
		p.fullMoveNumber++
	}

	p.lastMove = m
	p.sideToMove = them
	p.RecomputeOccupancy()
}

/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package movegen generates pseudo-legal moves from a position: captures
// and non-captures, separately or together, for every piece type plus
// castling and en-passant. It never checks whether the mover's own king
// ends up in check - that is left to the copy-make discipline in
// position.DoMove plus a post-hoc IsAttacked test of the mover's king, exactly as spec §4.5
// describes the legality split between generation and application.
package movegen

import (
	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/assert"
	"github.com/corvidchess/corvid/internal/attacks"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// GenMode selects which subset of pseudo-legal moves to produce. Splitting
// captures from quiet moves is what lets quiescence search ask for GenCap
// alone without paying for quiet-move generation it would immediately
// discard.
type GenMode int

const (
	GenCap GenMode = 1 << iota
	GenNonCap
	GenAll = GenCap | GenNonCap
)

// Generator holds no state beyond what a single GeneratePseudoLegalMoves
// call needs; unlike the teacher's stateful on-demand generator (which
// tracked iterator stage and a take-index for incremental search-time
// generation), this engine always generates the full pseudo-legal list up
// front - move ordering happens afterwards in moveslice, not interleaved
// with generation.
type Generator struct{}

// NewGenerator returns a ready-to-use move generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePseudoLegalMoves appends every pseudo-legal move matching mode
// to out. out is not cleared first - callers own that, so a generator can
// be reused to accumulate moves from several calls.
func (g *Generator) GeneratePseudoLegalMoves(pos *position.Position, mode GenMode, out *moveslice.MoveList) {
	us := pos.SideToMove()
	them := us.Opposite()
	ownOcc := pos.OccupiedBy(us)
	theirOcc := pos.OccupiedBy(them)
	occ := pos.Occupied()

	g.generatePawnMoves(pos, us, them, theirOcc, occ, mode, out)
	g.generateLeaperMoves(pos, WhiteKnight, us, KnightAttacksOf, ownOcc, theirOcc, mode, out)
	g.generateSliderMoves(pos, WhiteBishop, us, attacks.BishopAttacks, occ, ownOcc, theirOcc, mode, out)
	g.generateSliderMoves(pos, WhiteRook, us, attacks.RookAttacks, occ, ownOcc, theirOcc, mode, out)
	g.generateSliderMoves(pos, WhiteQueen, us, attacks.QueenAttacks, occ, ownOcc, theirOcc, mode, out)
	g.generateLeaperMoves(pos, WhiteKing, us, KingAttacksOf, ownOcc, theirOcc, mode, out)
	if mode&GenNonCap != 0 {
		g.generateCastling(pos, us, occ, out)
	}
}

// KnightAttacksOf and KingAttacksOf adapt the attacks package's per-color-
// independent leaper tables to the uniform signature generateLeaperMoves
// wants.
func KnightAttacksOf(sq Square) Bitboard { return attacks.KnightAttacks(sq) }
func KingAttacksOf(sq Square) Bitboard   { return attacks.KingAttacks(sq) }

func (g *Generator) generateLeaperMoves(
	pos *position.Position, basePiece Piece, us Color, attacksFrom func(Square) Bitboard,
	ownOcc, theirOcc Bitboard, mode GenMode, out *moveslice.MoveList,
) {
	piece := colorAdjust(basePiece, us)
	bb := pos.PieceBb(piece)
	for bb != BbZero {
		from := bb.PopLsb()
		targets := attacksFrom(from) &^ ownOcc
		if mode&GenCap != 0 {
			g.emitTargets(piece, from, targets&theirOcc, Capture, out)
		}
		if mode&GenNonCap != 0 {
			g.emitTargets(piece, from, targets&^theirOcc, Quiet, out)
		}
	}
}

func (g *Generator) generateSliderMoves(
	pos *position.Position, basePiece Piece, us Color, attacksFrom func(Square, Bitboard) Bitboard,
	occ, ownOcc, theirOcc Bitboard, mode GenMode, out *moveslice.MoveList,
) {
	piece := colorAdjust(basePiece, us)
	bb := pos.PieceBb(piece)
	for bb != BbZero {
		from := bb.PopLsb()
		targets := attacksFrom(from, occ) &^ ownOcc
		if mode&GenCap != 0 {
			g.emitTargets(piece, from, targets&theirOcc, Capture, out)
		}
		if mode&GenNonCap != 0 {
			g.emitTargets(piece, from, targets&^theirOcc, Quiet, out)
		}
	}
}

func (g *Generator) emitTargets(piece Piece, from Square, targets Bitboard, kind MoveType, out *moveslice.MoveList) {
	for targets != BbZero {
		to := targets.PopLsb()
		out.PushBack(NewMove(from, to, piece, kind, PtNone))
	}
}

// colorAdjust maps a White-side piece constant to the matching piece for
// color c; WhitePawn..WhiteKing are laid out identically to BlackPawn..
// BlackKing six slots later, so this is a plain offset.
func colorAdjust(whitePiece Piece, c Color) Piece {
	if c == White {
		return whitePiece
	}
	return whitePiece + 6
}

func (g *Generator) generatePawnMoves(
	pos *position.Position, us, them Color, theirOcc, occ Bitboard, mode GenMode, out *moveslice.MoveList,
) {
	piece := colorAdjust(WhitePawn, us)
	push := us.PawnPushDirection()
	startRank := us.PawnStartRank()
	promoRank := us.PromotionRank()
	ep := pos.EnPassantTarget()

	bb := pos.PieceBb(piece)
	for bb != BbZero {
		from := bb.PopLsb()

		if mode&GenNonCap != 0 {
			one := from.To(push)
			if one != SqNone && !occ.Has(one) {
				if one.RankOf() == promoRank {
					emitPromotions(piece, from, one, Promotion, out)
				} else {
					out.PushBack(NewMove(from, one, piece, Quiet, PtNone))
					if from.RankOf() == startRank {
						two := one.To(push)
						if two != SqNone && !occ.Has(two) {
							out.PushBack(NewMove(from, two, piece, DoublePush, PtNone))
						}
					}
				}
			}
		}

		if mode&GenCap != 0 {
			for _, d := range pawnCaptureDirs(us) {
				to := from.To(d)
				if to == SqNone {
					continue
				}
				switch {
				case theirOcc.Has(to):
					if to.RankOf() == promoRank {
						emitPromotions(piece, from, to, PromotionCapture, out)
					} else {
						out.PushBack(NewMove(from, to, piece, Capture, PtNone))
					}
				case to == ep && ep != SqNone:
					out.PushBack(NewMove(from, to, piece, EnPassant, PtNone))
				}
			}
		}
	}
}

func pawnCaptureDirs(us Color) [2]Direction {
	if us == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func emitPromotions(piece Piece, from, to Square, kind MoveType, out *moveslice.MoveList) {
	for _, pt := range promotionTypes {
		out.PushBack(NewMove(from, to, piece, kind, pt))
	}
}

// castleSpec names the squares a castle move needs: the king's from/to,
// the squares that must be empty, and the squares (including the king's
// current square) that must not be attacked.
type castleSpec struct {
	right            CastlingRights
	kingFrom, kingTo Square
	mustBeEmpty      Bitboard
	mustNotBeAttacked [3]Square
}

var castleSpecs = map[Color][2]castleSpec{
	White: {
		{CastleWK, SqE1, SqG1, SqF1.Bb() | SqG1.Bb(), [3]Square{SqE1, SqF1, SqG1}},
		{CastleWQ, SqE1, SqC1, SqB1.Bb() | SqC1.Bb() | SqD1.Bb(), [3]Square{SqE1, SqD1, SqC1}},
	},
	Black: {
		{CastleBK, SqE8, SqG8, SqF8.Bb() | SqG8.Bb(), [3]Square{SqE8, SqF8, SqG8}},
		{CastleBQ, SqE8, SqC8, SqB8.Bb() | SqC8.Bb() | SqD8.Bb(), [3]Square{SqE8, SqD8, SqC8}},
	},
}

func (g *Generator) generateCastling(pos *position.Position, us Color, occ Bitboard, out *moveslice.MoveList) {
	rights := pos.CastlingRights()
	king := colorAdjust(WhiteKing, us)
	for _, spec := range castleSpecs[us] {
		if !rights.Has(spec.right) {
			continue
		}
		if occ&spec.mustBeEmpty != 0 {
			continue
		}
		attacked := false
		for _, sq := range spec.mustNotBeAttacked {
			if pos.IsAttacked(sq, us.Opposite()) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		if assert.DEBUG {
			assert.Assert(pos.KingSquare(us) == spec.kingFrom, "movegen: castling right set but king not on its home square")
		}
		out.PushBack(NewMove(spec.kingFrom, spec.kingTo, king, Castle, PtNone))
	}
}

// GenerateLegalMoves filters GeneratePseudoLegalMoves's output down to
// moves that don't leave the mover's own king in check, using the
// engine's copy-make discipline: apply, test, restore. This is the
// convenience entry point for callers (MoveFromUCI, and through it the
// opening book, the test-suite runner and the UCI adapter) that want legal
// moves directly rather than doing the copy-make dance themselves; perft
// and the search's hot path inline the same pattern instead of paying for
// two full move lists per node.
func (g *Generator) GenerateLegalMoves(pos *position.Position, out *moveslice.MoveList) {
	pseudo := moveslice.NewMoveList()
	g.GeneratePseudoLegalMoves(pos, GenAll, pseudo)
	us := pos.SideToMove()
	pseudo.ForEach(func(_ int, m Move) {
		saved := *pos
		pos.DoMove(m)
		if !pos.IsAttacked(pos.KingSquare(us), us.Opposite()) {
			out.PushBack(m)
		}
		*pos = saved
	})
}

/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package search implements iterative-deepening alpha-beta principal
// variation search with a quiescence extension, transposition-table
// caching, killer moves, the history heuristic and late-move reduction.
package search

import (
	"sync/atomic"
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	"github.com/corvidchess/corvid/internal/history"
	corvidlogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/openingbook"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

var log *logging.Logger

func init() {
	log = corvidlogging.GetLog()
}

// nodeCheckInterval is how often (in visited nodes) the search polls its
// time/node budget - frequent enough to respond promptly to a stop
// request, infrequent enough that the check itself isn't the bottleneck.
const nodeCheckInterval = 1024

// Result is one completed iteration's output: what the UCI adapter turns
// into an "info" line, and what Go() returns once iteration stops.
type Result struct {
	Depth    int
	Score    Value
	Nodes    uint64
	Duration time.Duration
	PV       moveslice.MoveList
	BestMove Move
}

// Engine runs searches against a transposition table and history table
// that persist across Go() calls within a game (killer moves are reset at
// the start of each Go() call), the way a UCI
// engine keeps its hash table warm between moves of the same game.
type Engine struct {
	tt      *transpositiontable.Table
	hist    *history.History
	gen     *movegen.Generator
	killers [][2]Move
	book    *openingbook.Book

	stats    Statistics
	limits   Limits
	deadline time.Time
	stop     atomic.Bool
}

// NewEngine returns a search engine backed by tt. Pass a fresh
// transpositiontable.Table per game, or the same one across moves of a
// game to retain cross-move hash hits.
func NewEngine(tt *transpositiontable.Table) *Engine {
	return &Engine{
		tt:      tt,
		hist:    history.NewHistory(),
		gen:     movegen.NewGenerator(),
		killers: make([][2]Move, config.Settings.Search.MaxPly),
	}
}

// Stop requests that the current or next Go() call abort as soon as its
// next budget check runs.
func (e *Engine) Stop() {
	e.stop.Store(true)
}

// SetBook installs an opening book to consult before iterative deepening.
// A nil book (the zero value) disables book probing.
func (e *Engine) SetBook(b *openingbook.Book) {
	e.book = b
}

// ClearHash empties the transposition table, killer and history tables -
// the UCI "Clear Hash" button and "ucinewgame" both want a clean slate.
func (e *Engine) ClearHash() {
	e.tt.Clear()
	e.hist.Clear()
	for i := range e.killers {
		e.killers[i] = [2]Move{MoveNone, MoveNone}
	}
}

// ResizeHash rebuilds the transposition table at sizeMB, discarding its
// current contents - the UCI "Hash" spin option handler.
func (e *Engine) ResizeHash(sizeMB int) {
	e.tt.Resize(sizeMB)
}

// Go runs iterative deepening from pos under limits until a depth/node/
// time bound is hit or Stop is called, returning the last fully completed
// iteration's result. onIteration, if non-nil, is called after every
// completed iteration - the UCI adapter's hook for emitting "info" lines
// as the search progresses.
func (e *Engine) Go(pos position.Position, limits Limits, onIteration func(Result)) Result {
	e.limits = limits
	e.stop.Store(false)
	e.stats = Statistics{Start: time.Now()}
	for i := range e.killers {
		e.killers[i] = [2]Move{MoveNone, MoveNone}
	}
	e.tt.NewSearch()

	if config.Settings.Search.UseBook && e.book != nil && !limits.Infinite {
		if bookMove, ok := e.book.Probe(pos.ZobristKey()); ok {
			result := Result{Depth: 0, BestMove: bookMove, Duration: time.Since(e.stats.Start)}
			log.Debugf("search: book move %s", bookMove.UCI())
			if onIteration != nil {
				onIteration(result)
			}
			return result
		}
	}

	e.deadline = time.Time{}
	if mt := limits.effectiveMoveTime(pos.SideToMove() == White); mt > 0 {
		e.deadline = e.stats.Start.Add(mt)
	}

	maxDepth := config.Settings.Search.MaxDepth
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	var last Result
	for depth := 1; depth <= maxDepth; depth++ {
		root := pos
		score, bestMove, legal, aborted := e.searchRoot(&root, depth)
		if aborted {
			log.Debugf("search: depth %d aborted after %d nodes", depth, e.stats.Nodes)
			break
		}
		if !legal {
			last = Result{Depth: depth, Score: score, Nodes: e.stats.Nodes, Duration: time.Since(e.stats.Start)}
			break
		}
		last = Result{
			Depth:    depth,
			Score:    score,
			Nodes:    e.stats.Nodes,
			Duration: time.Since(e.stats.Start),
			BestMove: bestMove,
			PV:       *e.extractPV(&pos, depth),
		}
		if onIteration != nil {
			onIteration(last)
		}
		if last.Score.IsMateScore() {
			break
		}
	}
	return last
}

// searchRoot runs one full-width iteration at the given depth, returning
// the best score and move found, whether any legal move exists, and
// whether the search was aborted by the time/node budget before finishing.
func (e *Engine) searchRoot(pos *position.Position, depth int) (Value, Move, bool, bool) {
	pseudo := moveslice.NewMoveList()
	e.gen.GeneratePseudoLegalMoves(pos, movegen.GenAll, pseudo)
	e.orderMoves(pos, pseudo, 0, MoveNone)

	us := pos.SideToMove()
	best := -ValueInfinite
	var bestMove Move
	legalSeen := false
	aborted := false

	pseudo.ForEach(func(_ int, m Move) {
		if aborted {
			return
		}
		if e.budgetExhausted() {
			aborted = true
			return
		}
		saved := *pos
		pos.DoMove(m)
		if pos.IsAttacked(pos.KingSquare(us), us.Opposite()) {
			*pos = saved
			return
		}
		legalSeen = true
		score, subAborted := e.negamax(pos, depth-1, 1, -ValueInfinite, -best, true)
		score = -score
		*pos = saved
		if subAborted {
			aborted = true
			return
		}
		if score > best {
			best = score
			bestMove = m
		}
	})

	if aborted {
		return 0, MoveNone, false, true
	}
	if !legalSeen {
		if pos.InCheck() {
			return MatedIn(0), MoveNone, false, false
		}
		return ValueDraw, MoveNone, false, false
	}
	if config.Settings.Search.UseTT {
		e.tt.Store(pos.ZobristKey(), bestMove, best, best, int8(depth), transpositiontable.BoundExact, 0)
	}
	return best, bestMove, true, false
}

// negamax is the recursive alpha-beta principal-variation search.
func (e *Engine) negamax(pos *position.Position, depth, ply int, alpha, beta Value, isPv bool) (Value, bool) {
	e.stats.Nodes++
	if e.stats.Nodes%nodeCheckInterval == 0 && e.budgetExhausted() {
		return 0, true
	}
	if ply >= config.Settings.Search.MaxPly-1 {
		return evaluator.Evaluate(pos), false
	}

	// A side without a king lost it to a capture on the previous ply, which
	// only a root position with the side not to move in check allows; score
	// it as mated here.
	if pos.PiecesBb(pos.SideToMove(), King) == BbZero {
		return MatedIn(ply), false
	}

	inCheck := pos.InCheck()
	if inCheck {
		depth++
	}

	if config.Settings.Search.UseMDP {
		var collapsed bool
		alpha, beta, collapsed = mateDistancePruning(alpha, beta, ply)
		if collapsed {
			return alpha, false
		}
	}

	if depth <= 0 {
		return e.quiescence(pos, ply, alpha, beta)
	}

	key := pos.ZobristKey()
	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		if move, value, _, ttDepth, bound, ok := e.tt.Probe(key, ply); ok {
			e.stats.TTHits++
			ttMove = move
			if config.Settings.Search.UseTTValue && int(ttDepth) >= depth {
				switch bound {
				case transpositiontable.BoundExact:
					return value, false
				case transpositiontable.BoundLower:
					if value >= beta {
						return beta, false
					}
				case transpositiontable.BoundUpper:
					if value <= alpha {
						return alpha, false
					}
				}
			}
		}
	}
	if !config.Settings.Search.UseTTMove {
		ttMove = MoveNone
	}

	pseudo := moveslice.NewMoveList()
	e.gen.GeneratePseudoLegalMoves(pos, movegen.GenAll, pseudo)
	e.orderMoves(pos, pseudo, ply, ttMove)

	us := pos.SideToMove()
	best := -ValueInfinite
	var bestMove Move
	legalSeen := false
	raisedAlpha := false
	moveIndex := 0
	aborted := false
	cutoff := false

	pseudo.ForEach(func(_ int, m Move) {
		if aborted || cutoff {
			return
		}
		saved := *pos
		pos.DoMove(m)
		if pos.IsAttacked(pos.KingSquare(us), us.Opposite()) {
			*pos = saved
			return
		}
		legalSeen = true

		var score Value
		var subAborted bool

		if moveIndex == 0 {
			score, subAborted = e.negamax(pos, depth-1, ply+1, -beta, -alpha, isPv)
			score = -score
		} else {
			reduction := 0
			if config.Settings.Search.UseLMR && !isPv && !inCheck && !m.IsTactical() {
				reduction = lmrReduction(moveIndex, depth)
			}
			score, subAborted = e.negamax(pos, depth-1-reduction, ply+1, -alpha-1, -alpha, false)
			score = -score
			if !subAborted && reduction > 0 && score > alpha {
				score, subAborted = e.negamax(pos, depth-1, ply+1, -alpha-1, -alpha, false)
				score = -score
			}
			if !subAborted && isPv && score > alpha && score < beta {
				score, subAborted = e.negamax(pos, depth-1, ply+1, -beta, -alpha, true)
				score = -score
			}
		}
		*pos = saved
		moveIndex++

		if subAborted {
			aborted = true
			return
		}
		if score > best {
			best = score
			bestMove = m
		}
		if score >= beta {
			if !m.IsTactical() {
				if config.Settings.Search.UseKiller {
					e.recordKiller(ply, m)
				}
				if config.Settings.Search.UseHistory {
					e.hist.Bump(us, m, depth)
				}
			}
			e.stats.BetaCutoffs++
			if config.Settings.Search.UseTT {
				e.tt.Store(key, m, beta, best, int8(depth), transpositiontable.BoundLower, ply)
			}
			best = beta
			cutoff = true
			return
		}
		if score > alpha {
			alpha = score
			raisedAlpha = true
		}
	})

	if aborted {
		return 0, true
	}
	if cutoff {
		return best, false
	}
	if !legalSeen {
		if inCheck {
			return MatedIn(ply), false
		}
		return ValueDraw, false
	}

	if config.Settings.Search.UseTT {
		bound := transpositiontable.BoundUpper
		if raisedAlpha {
			bound = transpositiontable.BoundExact
		}
		e.tt.Store(key, bestMove, best, best, int8(depth), bound, ply)
	}
	return best, false
}

// quiescence extends the search along capture lines until the
// position is "quiet", avoiding the horizon effect a hard depth cutoff
// would otherwise cause in the middle of an exchange.
func (e *Engine) quiescence(pos *position.Position, ply int, alpha, beta Value) (Value, bool) {
	e.stats.Nodes++
	e.stats.QuiescenceNodes++
	if e.stats.Nodes%nodeCheckInterval == 0 && e.budgetExhausted() {
		return 0, true
	}
	if ply >= config.Settings.Search.MaxPly-1 {
		return evaluator.Evaluate(pos), false
	}

	// A position in check has no safe "do nothing" - stand-pat would let
	// a mate hide behind a refuted quiet move, so search every reply
	// instead of captures only, the same check-in-quiescence extension
	// the rest of the search applies via negamax's depth++.
	hasCheck := pos.InCheck()

	var candidates *moveslice.MoveList
	if hasCheck {
		candidates = moveslice.NewMoveList()
		e.gen.GeneratePseudoLegalMoves(pos, movegen.GenAll, candidates)
		e.orderMoves(pos, candidates, ply, MoveNone)
	} else {
		standPat := evaluator.Evaluate(pos)
		if standPat >= beta {
			return beta, false
		}
		if standPat > alpha {
			alpha = standPat
		}
		if !config.Settings.Search.UseQuiescence {
			return alpha, false
		}
		candidates = moveslice.NewMoveList()
		e.gen.GeneratePseudoLegalMoves(pos, movegen.GenCap, candidates)
		e.orderCaptures(pos, candidates)
	}

	us := pos.SideToMove()
	legalSeen := false
	aborted := false
	cutoff := false
	candidates.ForEach(func(_ int, m Move) {
		if aborted || cutoff {
			return
		}
		// Captures that lose material even in the best case for the
		// attacker aren't worth searching - they can only ever make
		// stand-pat's position look worse, never better.
		if !hasCheck && seeCapture(pos, m) < 0 {
			return
		}
		saved := *pos
		pos.DoMove(m)
		if pos.IsAttacked(pos.KingSquare(us), us.Opposite()) {
			*pos = saved
			return
		}
		legalSeen = true
		score, subAborted := e.quiescence(pos, ply+1, -beta, -alpha)
		score = -score
		*pos = saved
		if subAborted {
			aborted = true
			return
		}
		if score >= beta {
			alpha = beta
			cutoff = true
			return
		}
		if score > alpha {
			alpha = score
		}
	})
	if aborted {
		return 0, true
	}
	if cutoff {
		return alpha, false
	}
	if hasCheck && !legalSeen {
		return MatedIn(ply), false
	}
	return alpha, false
}

func (e *Engine) recordKiller(ply int, m Move) {
	if ply >= len(e.killers) || e.killers[ply][0] == m {
		return
	}
	e.killers[ply][1] = e.killers[ply][0]
	e.killers[ply][0] = m
}

// orderMoves sorts pseudo-legal moves: the TT move first, then captures/
// promotion-captures by MVV-LVA, then this ply's killer moves, then
// quiet moves by history score.
func (e *Engine) orderMoves(pos *position.Position, moves *moveslice.MoveList, ply int, ttMove Move) {
	us := pos.SideToMove()
	k1, k2 := MoveNone, MoveNone
	if ply < len(e.killers) {
		k1, k2 = e.killers[ply][0], e.killers[ply][1]
	}
	moves.SortByScore(func(m Move) int {
		switch {
		case ttMove != MoveNone && m == ttMove:
			return 1 << 30
		case m.IsTactical():
			return 1<<20 + mvvLva(pos, m)
		case m == k1:
			return 1 << 19
		case m == k2:
			return 1 << 18
		default:
			return e.hist.Score(us, m)
		}
	})
}

// orderCaptures sorts quiescence's capture-only list by MVV-LVA.
func (e *Engine) orderCaptures(pos *position.Position, moves *moveslice.MoveList) {
	moves.SortByScore(func(m Move) int {
		return mvvLva(pos, m)
	})
}

// mvvLva scores a capture as victim_value*100 - attacker_value, the
// classic "most valuable victim, least valuable attacker" ordering.
func mvvLva(pos *position.Position, m Move) int {
	var victim PieceType
	if m.Type() == EnPassant {
		victim = Pawn
	} else {
		victim = pos.PieceAt(m.To()).TypeOf()
	}
	return int(victim.Value())*100 - int(m.Piece().TypeOf().Value())
}

func (e *Engine) budgetExhausted() bool {
	if e.stop.Load() {
		return true
	}
	if e.limits.Nodes > 0 && e.stats.Nodes >= e.limits.Nodes {
		return true
	}
	if !e.deadline.IsZero() && time.Now().After(e.deadline) {
		return true
	}
	return false
}

// extractPV walks the transposition table from pos, following each
// position's stored best move as long as the table remembers one and the
// move replays legally, reconstructing the principal variation the
// iteration just completed without threading a separate triangular PV
// table through every recursive call.
func (e *Engine) extractPV(pos *position.Position, maxLen int) *moveslice.MoveList {
	pv := moveslice.NewMoveList()
	cur := *pos
	seen := map[Key]bool{}
	for i := 0; i < maxLen; i++ {
		key := cur.ZobristKey()
		if seen[key] {
			break
		}
		seen[key] = true
		move, _, _, _, _, ok := e.tt.Probe(key, i)
		if !ok || move == MoveNone {
			break
		}
		us := cur.SideToMove()
		saved := cur
		cur.DoMove(move)
		if cur.IsAttacked(cur.KingSquare(us), us.Opposite()) {
			cur = saved
			break
		}
		pv.PushBack(move)
	}
	return pv
}

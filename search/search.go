// Package search implements a fixed-depth negamax search with alpha-beta
// pruning over the board/eval primitives.
package search

import (
	"sort"

	"github.com/kestrelchess/analyzer/board"
	"github.com/kestrelchess/analyzer/eval"
)

const (
	valueDraw     = 0
	mateScore     = 30000
	valueInfinity = mateScore + 1
)

// winIn and lossIn express mate-distance scores relative to height, the
// number of plies already played from the root. A mate found at a
// shallower height (closer to the root, hence faster) scores closer to
// mateScore/-mateScore than one found deeper, so alpha-beta naturally
// prefers the fastest mate among equally winning lines.
func winIn(height int) int {
	return mateScore - height
}

func lossIn(height int) int {
	return -mateScore + height
}

// FindBestMove runs a fixed-depth negamax search from pos and returns the
// best move found, or the null move if pos has no legal moves. depth must
// be at least 1.
func FindBestMove(pos *board.Position, depth int) board.Move {
	var ml = board.GenerateLegalMoves(pos)
	if len(ml) == 0 {
		return board.MoveNull
	}
	orderMoves(pos, ml)

	var best = ml[0]
	var alpha = -valueInfinity
	const beta = valueInfinity
	for _, m := range ml {
		var child, _ = pos.MakeMove(m)
		var score = -alphaBeta(&child, -beta, -alpha, depth-1, 1)
		if score > alpha {
			alpha = score
			best = m
		}
	}
	return best
}

func alphaBeta(pos *board.Position, alpha, beta, depth, height int) int {
	if depth <= 0 {
		return eval.Evaluate(pos)
	}

	var ml = board.GenerateLegalMoves(pos)
	if len(ml) == 0 {
		if pos.IsInCheck() {
			return lossIn(height)
		}
		return valueDraw
	}
	orderMoves(pos, ml)

	for _, m := range ml {
		var child, _ = pos.MakeMove(m)
		var score = -alphaBeta(&child, -beta, -alpha, depth-1, height+1)
		if score > alpha {
			alpha = score
			if alpha >= beta {
				break
			}
		}
	}
	return alpha
}

// orderMoves sorts captures and en-passant captures before quiet moves,
// stable among equals, matching the spec's move-ordering contract.
func orderMoves(pos *board.Position, ml []board.Move) {
	sort.SliceStable(ml, func(i, j int) bool {
		return isCapture(pos, ml[i]) && !isCapture(pos, ml[j])
	})
}

func isCapture(pos *board.Position, m board.Move) bool {
	if m.Type() == board.MoveEnPassant {
		return true
	}
	_, _, ok := pos.PieceTypeAndColor(m.To())
	return ok
}

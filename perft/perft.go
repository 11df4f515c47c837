// Package perft counts leaf nodes of the legal move tree to a fixed
// depth: the canonical end-to-end correctness gate for move generation,
// MakeMove, legality filtering, en-passant, promotion, and castling.
package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelchess/analyzer/board"
)

// Count returns the number of leaf positions reachable from pos in
// exactly depth plies. Count(pos, 0) is 1.
func Count(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var buffer [board.MaxMoves]board.Move
	var pseudo = board.GenerateMoves(buffer[:0], pos)
	var nodes uint64
	for _, m := range pseudo {
		if child, ok := pos.MakeMove(m); ok {
			nodes += Count(&child, depth-1)
		}
	}
	return nodes
}

// CountParallel is Count, but fans the root ply's legal moves out across
// goroutines via errgroup.Group. This is safe only because Position is a
// value type that MakeMove never mutates in place and the attack tables
// it reads are written once at package init and never again; it is the
// one place this repository relaxes single-threaded search in favor of
// concurrency, and only for this read-only exploration.
func CountParallel(ctx context.Context, pos *board.Position, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	var legal = board.GenerateLegalMoves(pos)
	var partials = make([]uint64, len(legal))

	var g, gctx = errgroup.WithContext(ctx)
	for i, m := range legal {
		var i, m = i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var child, _ = pos.MakeMove(m)
			partials[i] = Count(&child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, n := range partials {
		total += n
	}
	return total, nil
}

package perft

import (
	"context"
	"testing"

	"github.com/kestrelchess/analyzer/board"
)

func TestCountStartingPosition(t *testing.T) {
	var p, err = board.FromFEN(board.InitialPositionFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var want = []uint64{1, 20, 400, 8902}
	for depth, expect := range want {
		if got := Count(&p, depth); got != expect {
			t.Fatalf("Count(startpos, %d) = %d, want %d", depth, got, expect)
		}
	}
}

func TestCountParallelMatchesCount(t *testing.T) {
	var p, err = board.FromFEN(board.InitialPositionFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var want = Count(&p, 3)
	var got, perr = CountParallel(context.Background(), &p, 3)
	if perr != nil {
		t.Fatalf("CountParallel: %v", perr)
	}
	if got != want {
		t.Fatalf("CountParallel(3) = %d, want %d", got, want)
	}
}

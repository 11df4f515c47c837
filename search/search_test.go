package search

import (
	"testing"

	"github.com/kestrelchess/analyzer/board"
)

func TestFindBestMoveNoLegalMovesReturnsNull(t *testing.T) {
	// Black is stalemated: no legal move, not in check.
	var p, err = board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if got := FindBestMove(&p, 3); got != board.MoveNull {
		t.Fatalf("FindBestMove(stalemate) = %v, want MoveNull", got)
	}
}

func TestFindBestMoveTakesFreeQueen(t *testing.T) {
	var p, err = board.FromFEN("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var m = FindBestMove(&p, 2)
	if m.From() != board.SquareD1 || m.To() != board.SquareD5 {
		t.Fatalf("FindBestMove = %s, want Rd1xd5", board.ToUCI(m))
	}
}

func TestFindBestMoveFindsMateInOne(t *testing.T) {
	// Rook to a8 is back-rank mate: black king trapped on g8 behind its own
	// pawns, white rook delivers check along the back rank with no escape.
	var p, err = board.FromFEN("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var m = FindBestMove(&p, 2)
	if m.From() != board.SquareA1 || m.To() != board.SquareA8 {
		t.Fatalf("FindBestMove = %s, want Ra1-a8", board.ToUCI(m))
	}
}

func TestWinInPrefersFasterMate(t *testing.T) {
	if winIn(1) <= winIn(3) {
		t.Fatalf("winIn(1) = %d, want greater than winIn(3) = %d", winIn(1), winIn(3))
	}
}

func TestLossInPrefersSlowerLoss(t *testing.T) {
	if lossIn(1) >= lossIn(3) {
		t.Fatalf("lossIn(1) = %d, want less than lossIn(3) = %d", lossIn(1), lossIn(3))
	}
}

func TestOrderMovesPutsCapturesFirst(t *testing.T) {
	var p, err = board.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var ml = board.GenerateLegalMoves(&p)
	orderMoves(&p, ml)
	if !isCapture(&p, ml[0]) {
		t.Fatalf("orderMoves: first move %s is not a capture", board.ToUCI(ml[0]))
	}
}

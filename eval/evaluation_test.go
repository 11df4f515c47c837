package eval

import (
	"testing"

	"github.com/kestrelchess/analyzer/board"
)

func TestEvaluateSymmetricPositionIsZero(t *testing.T) {
	var p, err = board.FromFEN(board.InitialPositionFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if got := Evaluate(&p); got != 0 {
		t.Fatalf("Evaluate(startpos) = %d, want 0", got)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	var p, err = board.FromFEN("4k3/8/8/8/8/8/8/RN2K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if got := Evaluate(&p); got <= 0 {
		t.Fatalf("Evaluate(white up a rook and knight) = %d, want > 0", got)
	}
}

func TestEvaluateNegatesFromBlackPerspective(t *testing.T) {
	var white, err = board.FromFEN("4k3/8/8/8/8/8/8/RN2K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var black, berr = board.FromFEN("4k3/8/8/8/8/8/8/RN2K3 b - - 0 1")
	if berr != nil {
		t.Fatalf("FromFEN: %v", berr)
	}
	if Evaluate(&white) != -Evaluate(&black) {
		t.Fatalf("Evaluate(white to move) = %d, want negation of Evaluate(black to move) = %d",
			Evaluate(&white), Evaluate(&black))
	}
}

func TestDoubledPawnsPenalized(t *testing.T) {
	// Two pawns stacked on the same file should score worse than the same
	// two pawns spread across separate files.
	var doubled, err = board.FromFEN("4k3/8/8/8/8/P7/P7/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var spread, serr = board.FromFEN("4k3/8/8/8/8/P7/7P/4K3 w - - 0 1")
	if serr != nil {
		t.Fatalf("FromFEN: %v", serr)
	}
	if Evaluate(&doubled) >= Evaluate(&spread) {
		t.Fatalf("doubled pawns scored %d, want less than spread pawns %d", Evaluate(&doubled), Evaluate(&spread))
	}
}

func TestIsEndgameThreshold(t *testing.T) {
	var heavy, err = board.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if isEndgame(&heavy) {
		t.Fatalf("isEndgame(four rooks) = true, want false")
	}

	var bare, berr = board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if berr != nil {
		t.Fatalf("FromFEN: %v", berr)
	}
	if !isEndgame(&bare) {
		t.Fatalf("isEndgame(bare kings) = false, want true")
	}
}

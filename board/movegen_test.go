package board

import "testing"

func containsMove(ml []Move, m Move) bool {
	for _, x := range ml {
		if x == m {
			return true
		}
	}
	return false
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	var p, err = FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var ml = GenerateLegalMoves(&p)
	if !containsMove(ml, NewMove(SquareE1, SquareG1, MoveCastling, 0)) {
		t.Error("missing white kingside castle")
	}
	if !containsMove(ml, NewMove(SquareE1, SquareC1, MoveCastling, 0)) {
		t.Error("missing white queenside castle")
	}
}

func TestCastlingBlockedThroughCheck(t *testing.T) {
	// Black rook on e8's file... instead put a rook attacking f1, which the
	// king must pass through to castle kingside.
	var p, err = FromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	// Add an attacker of f1 by starting from a position where a black rook
	// sits on f8.
	p, err = FromFEN("5rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var ml = GenerateLegalMoves(&p)
	if containsMove(ml, NewMove(SquareE1, SquareG1, MoveCastling, 0)) {
		t.Error("kingside castle generated through an attacked transit square")
	}
	if !containsMove(ml, NewMove(SquareE1, SquareC1, MoveCastling, 0)) {
		t.Error("queenside castle wrongly excluded")
	}
}

func TestCastlingRightsClearedByRookCapture(t *testing.T) {
	var p, err = FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var m, merr = FromUCI(&p, "a1a8")
	if merr != nil {
		t.Fatalf("FromUCI: %v", merr)
	}
	var next, ok = p.MakeMove(m)
	if !ok {
		t.Fatal("rook capture rejected as illegal")
	}
	if next.CastleRights&BlackQueenSide != 0 {
		t.Error("black queenside right survives its rook being captured")
	}
	if next.CastleRights&WhiteQueenSide != 0 {
		t.Error("white queenside right survives its own rook moving")
	}
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	var p, err = FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var m = NewMove(SquareE5, SquareD6, MoveEnPassant, 0)
	var next, ok = p.MakeMove(m)
	if !ok {
		t.Fatal("en-passant capture rejected as illegal")
	}
	if next.PieceTypeAt(SquareD5) != Empty {
		t.Error("captured pawn still present on d5")
	}
	if next.PieceTypeAt(SquareD6) != Pawn {
		t.Error("capturing pawn missing from d6")
	}
}

func TestCheckEvasionOnlyAddressesCheck(t *testing.T) {
	// White king on e1 in check from a black rook on e8; a white bishop on
	// c3 can block on e5, but cannot move to an unrelated square.
	var p, err = FromFEN("4r1k1/8/8/8/8/2B5/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if !p.IsInCheck() {
		t.Fatal("expected white king to be in check")
	}
	var ml = GenerateLegalMoves(&p)
	if containsMove(ml, NewMove(SquareC3, SquareA5, MoveNormal, 0)) {
		t.Error("bishop move that ignores check was generated as legal")
	}
	if !containsMove(ml, NewMove(SquareC3, SquareE5, MoveNormal, 0)) {
		t.Error("bishop block on e5 missing")
	}
}

func TestPromotionGeneratesAllFourPieces(t *testing.T) {
	var p, err = FromFEN("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var ml = GenerateLegalMoves(&p)
	var count = 0
	for _, m := range ml {
		if m.From() == SquareE7 && m.To() == SquareE8 {
			count++
		}
	}
	if count != 4 {
		t.Fatalf("promotion moves from e7-e8 = %d, want 4", count)
	}
}

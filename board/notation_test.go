package board

import "testing"

func TestToUciAndFromUciRoundTrip(t *testing.T) {
	var p, err = FromFEN(InitialPositionFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range GenerateLegalMoves(&p) {
		var uci = ToUCI(m)
		var back, berr = FromUCI(&p, uci)
		if berr != nil {
			t.Fatalf("FromUCI(%q): %v", uci, berr)
		}
		if back != m {
			t.Fatalf("FromUCI(ToUCI(%v)) = %v, want %v", m, back, m)
		}
	}
}

func TestToUciNullMove(t *testing.T) {
	if got := ToUCI(MoveNull); got != "0000" {
		t.Fatalf("ToUCI(MoveNull) = %q, want 0000", got)
	}
}

func TestToSanCastling(t *testing.T) {
	var p, err = FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var m = NewMove(SquareE1, SquareG1, MoveCastling, 0)
	if got := ToSAN(&p, m); got != "O-O" {
		t.Fatalf("ToSAN(kingside castle) = %q, want O-O", got)
	}
	var m2 = NewMove(SquareE1, SquareC1, MoveCastling, 0)
	if got := ToSAN(&p, m2); got != "O-O-O" {
		t.Fatalf("ToSAN(queenside castle) = %q, want O-O-O", got)
	}
}

func TestToSanDisambiguation(t *testing.T) {
	// Two white knights on a1 and c1 both reach b3: they differ by file,
	// so a file letter disambiguates.
	var p, err = FromFEN("4k3/8/8/8/8/8/8/N1N1K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var m = NewMove(SquareA1, SquareB3, MoveNormal, 0)
	if got := ToSAN(&p, m); got != "Nab3" {
		t.Fatalf("ToSAN(ambiguous knight move) = %q, want Nab3", got)
	}
}

func TestToSanPawnPushAndPromotion(t *testing.T) {
	var p, err = FromFEN("4k3/3p4/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var m = NewMove(SquareD7, SquareD5, MoveNormal, 0)
	if got := ToSAN(&p, m); got != "d5" {
		t.Fatalf("ToSAN(pawn push) = %q, want d5", got)
	}

	var promo, perr = FromFEN("4k3/8/8/8/8/8/3p4/6K1 b - - 0 1")
	if perr != nil {
		t.Fatalf("FromFEN: %v", perr)
	}
	var pm = NewMove(SquareD2, SquareD1, MovePromotion, PromoQueen)
	if got := ToSAN(&promo, pm); got != "d1=Q+" {
		t.Fatalf("ToSAN(promotion with check) = %q, want d1=Q+", got)
	}
}

func TestParseSanRoundTrip(t *testing.T) {
	var p, err = FromFEN(InitialPositionFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range GenerateLegalMoves(&p) {
		var san = ToSAN(&p, m)
		var back, perr = ParseSAN(&p, san)
		if perr != nil {
			t.Fatalf("ParseSAN(%q): %v", san, perr)
		}
		if back != m {
			t.Fatalf("ParseSAN(ToSAN(%v)) = %v, want %v", m, back, m)
		}
	}
}

func TestParseSanIllegalMove(t *testing.T) {
	var p, err = FromFEN(InitialPositionFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if _, perr := ParseSAN(&p, "Qh5"); perr != ErrIllegalMove {
		t.Fatalf("ParseSAN(Qh5) error = %v, want ErrIllegalMove", perr)
	}
}

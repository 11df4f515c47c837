package board

import "testing"

// perft counts leaf nodes of the legal move tree to a fixed depth. It is
// the authoritative end-to-end test: it exercises generation, MakeMove,
// legality filtering, en-passant, promotion, and castling together.
func perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var buffer [MaxMoves]Move
	var pseudo = GenerateMoves(buffer[:0], p)
	var nodes uint64
	for _, m := range pseudo {
		if child, ok := p.MakeMove(m); ok {
			nodes += perft(&child, depth-1)
		}
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	var p, err = FromFEN(InitialPositionFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var want = []uint64{1, 20, 400, 8902, 197281, 4865609}
	for depth, expect := range want {
		if got := perft(&p, depth); got != expect {
			t.Fatalf("perft(startpos, %d) = %d, want %d", depth, got, expect)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	var p, err = FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var want = []uint64{1, 48, 2039, 97862, 4085603}
	for depth, expect := range want {
		if got := perft(&p, depth); got != expect {
			t.Fatalf("perft(kiwipete, %d) = %d, want %d", depth, got, expect)
		}
	}
}

func TestPerftEndgamePosition(t *testing.T) {
	var p, err = FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var want = []uint64{1, 14, 191, 2812, 43238, 674624}
	for depth, expect := range want {
		if got := perft(&p, depth); got != expect {
			t.Fatalf("perft(endgame, %d) = %d, want %d", depth, got, expect)
		}
	}
}

package explain

import (
	"strings"
	"testing"

	"github.com/kestrelchess/analyzer/board"
)

func TestExplainMoveMentionsCapture(t *testing.T) {
	var p, err = board.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var m = board.NewMove(board.SquareE4, board.SquareD5, board.MoveNormal, 0)
	var text = ExplainMove(&p, m)
	if !strings.Contains(text, "captures") {
		t.Fatalf("ExplainMove = %q, want mention of a capture", text)
	}
}

func TestExplainMoveMentionsCastling(t *testing.T) {
	var p, err = board.FromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var m = board.NewMove(board.SquareE1, board.SquareG1, board.MoveCastling, 0)
	var text = ExplainMove(&p, m)
	if !strings.Contains(text, "castles") {
		t.Fatalf("ExplainMove = %q, want mention of castling", text)
	}
}

func TestIdentifyThemesFork(t *testing.T) {
	// White knight on e5 attacks both the black king's rook on d7 and
	// rook on f7.
	var p, err = board.FromFEN("4k3/3r1r2/8/4N3/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var themes = IdentifyThemes(&p)
	var found = false
	for _, th := range themes {
		if th == ThemeFork {
			found = true
		}
	}
	if !found {
		t.Fatalf("IdentifyThemes = %v, want ThemeFork", themes)
	}
}

func TestIdentifyThemesBackRankMateThreat(t *testing.T) {
	var p, err = board.FromFEN("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var themes = IdentifyThemes(&p)
	var found = false
	for _, th := range themes {
		if th == ThemeBackRankMate {
			found = true
		}
	}
	if !found {
		t.Fatalf("IdentifyThemes = %v, want ThemeBackRankMate", themes)
	}
}

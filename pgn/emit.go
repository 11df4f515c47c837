package pgn

import (
	"fmt"
	"strings"

	"github.com/kestrelchess/analyzer/board"
)

// String renders g as PGN text: header tags, then movetext with a move
// number before every White move and the result token appended if set.
func (g *Game) String() string {
	var sb strings.Builder
	for _, t := range g.Tags {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", t.Name, t.Value)
	}
	sb.WriteByte('\n')

	var startFEN = g.StartFEN
	if startFEN == "" {
		startFEN = board.InitialPositionFEN
	}
	var pos, err = board.FromFEN(startFEN)
	if err != nil {
		return sb.String()
	}

	for i, m := range g.Moves {
		if pos.SideToMove == board.White {
			fmt.Fprintf(&sb, "%d. ", pos.FullmoveNumber)
		}
		sb.WriteString(board.ToSAN(&pos, m))
		if i != len(g.Moves)-1 {
			sb.WriteByte(' ')
		}
		var next, ok = pos.MakeMove(m)
		if !ok {
			break
		}
		pos = next
	}

	if g.Result != "" {
		if len(g.Moves) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.Result)
	}
	sb.WriteByte('\n')

	return sb.String()
}

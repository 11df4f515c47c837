// Package pgn implements a PGN (Portable Game Notation) codec: header
// parsing, movetext sanitization and tokenization, SAN interpretation
// against a running position, and emission.
package pgn

import "github.com/kestrelchess/analyzer/board"

// Tag is one PGN header pair, e.g. {"Event", "F/S Return Match"}.
type Tag struct {
	Name  string
	Value string
}

// Game is a parsed PGN record: header tags in file order, an optional
// starting FEN (empty means the initial position), the sequence of moves
// successfully interpreted, and the trailing result token.
//
// LastError holds the reason interpretation stopped, if it stopped before
// the movetext was exhausted; Moves still holds every move interpreted up
// to that point (best-effort continuation, not all-or-nothing).
type Game struct {
	Tags      []Tag
	StartFEN  string
	Moves     []board.Move
	Result    string
	LastError error
}

// Tag looks up a header value by name; ok is false if absent.
func (g *Game) Tag(name string) (string, bool) {
	for _, t := range g.Tags {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

func isResultToken(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

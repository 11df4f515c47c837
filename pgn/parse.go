package pgn

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kestrelchess/analyzer/board"
)

// Parse reads one PGN game: header lines of the form `[Tag "value"]` up to
// the first blank line, then movetext. It sanitizes comments and
// variations out of the movetext, tokenizes what remains, and interprets
// every SAN move against a running position starting from the FEN named
// by the "FEN" tag (or the initial position). Interpretation is
// best-effort: on the first token that cannot be resolved, it stops and
// records the reason in the returned Game's LastError, keeping every move
// successfully applied before that point.
func Parse(pgnText string) (Game, error) {
	var g Game

	var lines = strings.Split(pgnText, "\n")
	var i = 0
	for ; i < len(lines); i++ {
		var line = strings.TrimSpace(lines[i])
		if line == "" {
			if len(g.Tags) != 0 {
				i++
				break
			}
			continue
		}
		var tag, ok = parseTagLine(line)
		if !ok {
			break
		}
		g.Tags = append(g.Tags, tag)
	}
	var movetext = strings.Join(lines[i:], " ")

	if fen, ok := g.Tag("FEN"); ok {
		g.StartFEN = fen
	}

	var startFEN = g.StartFEN
	if startFEN == "" {
		startFEN = board.InitialPositionFEN
	}
	var pos, err = board.FromFEN(startFEN)
	if err != nil {
		return g, fmt.Errorf("%w: start position %q: %v", board.ErrParse, startFEN, err)
	}

	var sanitized = sanitizeMovetext(movetext)
	var tokens = tokenize(sanitized)

	for _, tok := range tokens {
		if strings.HasSuffix(tok, ".") {
			continue
		}
		if isResultToken(tok) {
			g.Result = tok
			continue
		}
		var m, perr = board.ParseSAN(&pos, tok)
		if perr != nil {
			g.LastError = fmt.Errorf("move %q: %w", tok, perr)
			break
		}
		var next, ok = pos.MakeMove(m)
		if !ok {
			g.LastError = fmt.Errorf("move %q: %w", tok, board.ErrIllegalMove)
			break
		}
		g.Moves = append(g.Moves, m)
		pos = next
	}

	return g, nil
}

// parseTagLine parses `[Name "value"]`.
func parseTagLine(line string) (Tag, bool) {
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return Tag{}, false
	}
	var inner = line[1 : len(line)-1]
	var space = strings.IndexByte(inner, ' ')
	if space < 0 {
		return Tag{}, false
	}
	var name = inner[:space]
	var rest = strings.TrimSpace(inner[space+1:])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return Tag{}, false
	}
	return Tag{Name: name, Value: rest[1 : len(rest)-1]}, true
}

// sanitizeMovetext drops balanced `{...}` comments and `(...)` variations,
// both of which may nest arbitrarily.
func sanitizeMovetext(movetext string) string {
	var sb strings.Builder
	var braceDepth, parenDepth = 0, 0
	for _, r := range movetext {
		switch {
		case r == '{':
			braceDepth++
		case r == '}':
			if braceDepth > 0 {
				braceDepth--
			}
		case r == '(':
			parenDepth++
		case r == ')':
			if parenDepth > 0 {
				parenDepth--
			}
		case braceDepth == 0 && parenDepth == 0:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// tokenize whitespace-splits the sanitized movetext and splits any token
// of the form `<digits>.<move>` (or `<digits>...<move>`, the
// black-to-move variant) into a move-number token and a move token.
func tokenize(movetext string) []string {
	var raw = strings.Fields(movetext)
	var tokens = make([]string, 0, len(raw))
	for _, tok := range raw {
		var dot = -1
		for i, r := range tok {
			if !unicode.IsDigit(r) {
				if r == '.' {
					dot = i
				}
				break
			}
		}
		if dot < 0 {
			tokens = append(tokens, tok)
			continue
		}
		var end = dot
		for end < len(tok) && tok[end] == '.' {
			end++
		}
		tokens = append(tokens, tok[:dot+1])
		if end < len(tok) {
			tokens = append(tokens, tok[end:])
		}
	}
	return tokens
}

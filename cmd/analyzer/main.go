package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/kestrelchess/analyzer/board"
	"github.com/kestrelchess/analyzer/eval"
	"github.com/kestrelchess/analyzer/explain"
	"github.com/kestrelchess/analyzer/internal/benchconfig"
	"github.com/kestrelchess/analyzer/perft"
	"github.com/kestrelchess/analyzer/pgn"
	"github.com/kestrelchess/analyzer/search"
)

const usage = `Chess Move Analyzer CLI

Usage: analyzer <command> [options]

Commands:
  analyze <fen>            Print evaluation, tactical themes, and every legal move with its explanation
  explain <fen> <uci>      Print the explanation of a specific move
  best <fen> [depth]       Run search (default depth 6) and print the move, its evaluation, and its explanation
  game <path>              Parse a PGN file and print each move with its SAN and running evaluation
  perft <fen> <depth>      Count leaf nodes of the legal move tree to depth
  perft -suite=<file>      Run a YAML suite of perft regression cases and report pass/fail
  help                     Show this help message

"startpos" is recognized anywhere a FEN is expected.
`

func main() {
	var logger = log.New(os.Stderr, "", 0)
	if err := run(logger, os.Args[1:]); err != nil {
		logger.Println("Error:", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "help":
		fmt.Print(usage)
		return nil
	case "analyze":
		if len(args) != 2 {
			return fmt.Errorf("usage: analyzer analyze <fen>")
		}
		return cmdAnalyze(args[1])
	case "explain":
		if len(args) != 3 {
			return fmt.Errorf("usage: analyzer explain <fen> <uci>")
		}
		return cmdExplain(args[1], args[2])
	case "best":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("usage: analyzer best <fen> [depth]")
		}
		var depth = 6
		if len(args) == 3 {
			var d, err = strconv.Atoi(args[2])
			if err != nil || d < 1 {
				return fmt.Errorf("depth must be a positive integer: %v", err)
			}
			depth = d
		}
		return cmdBest(args[1], depth)
	case "game":
		if len(args) != 2 {
			return fmt.Errorf("usage: analyzer game <path>")
		}
		return cmdGame(logger, args[1])
	case "perft":
		return cmdPerft(logger, args[1:])
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func parseFEN(fen string) (board.Position, error) {
	if fen == "startpos" {
		fen = board.InitialPositionFEN
	}
	return board.FromFEN(fen)
}

func cmdAnalyze(fen string) error {
	var pos, err = parseFEN(fen)
	if err != nil {
		return err
	}

	fmt.Printf("FEN: %s\n", pos.String())
	fmt.Printf("Evaluation: %d centipawns\n\n", eval.Evaluate(&pos))

	var themes = explain.IdentifyThemes(&pos)
	if len(themes) != 0 {
		fmt.Print("Tactical themes:")
		for _, th := range themes {
			fmt.Printf(" %s", th)
		}
		fmt.Println()
		fmt.Println()
	}

	var ml = board.GenerateLegalMoves(&pos)
	fmt.Printf("Legal moves (%d):\n", len(ml))
	for _, m := range ml {
		fmt.Printf("%-8s %s\n", board.ToUCI(m), explain.ExplainMove(&pos, m))
	}
	return nil
}

func cmdExplain(fen, uci string) error {
	var pos, err = parseFEN(fen)
	if err != nil {
		return err
	}
	var m, merr = board.FromUCI(&pos, uci)
	if merr != nil {
		return merr
	}
	if !board.IsLegal(&pos, m) {
		return fmt.Errorf("%w: %s is not legal in this position", board.ErrIllegalMove, uci)
	}
	fmt.Println(explain.ExplainMove(&pos, m))
	return nil
}

func cmdBest(fen string, depth int) error {
	var pos, err = parseFEN(fen)
	if err != nil {
		return err
	}
	var m = search.FindBestMove(&pos, depth)
	if m.IsNull() {
		fmt.Println("no legal moves")
		return nil
	}
	fmt.Println(explain.ExplainMove(&pos, m))
	var next, _ = pos.MakeMove(m)
	fmt.Printf("%s %d\n", board.ToUCI(m), eval.Evaluate(&next))
	return nil
}

func cmdGame(logger *log.Logger, path string) error {
	var data, err = os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	var g, perr = pgn.Parse(string(data))
	if perr != nil {
		return perr
	}

	var startFEN = g.StartFEN
	if startFEN == "" {
		startFEN = board.InitialPositionFEN
	}
	var pos, ferr = board.FromFEN(startFEN)
	if ferr != nil {
		return ferr
	}

	for i, m := range g.Moves {
		var next, ok = pos.MakeMove(m)
		if !ok {
			return fmt.Errorf("%w: move %d (%s) is not legal from the replayed position", board.ErrInternalInvariant, i+1, board.ToUCI(m))
		}
		fmt.Printf("%3d. %-8s %d\n", i+1, board.ToSAN(&pos, m), eval.Evaluate(&next))
		pos = next
	}

	if g.LastError != nil {
		logger.Printf("stopped early: %v", g.LastError)
	}
	if g.Result != "" {
		fmt.Println(g.Result)
	}
	return nil
}

func cmdPerft(logger *log.Logger, args []string) error {
	var fs = flag.NewFlagSet("perft", flag.ContinueOnError)
	var suite string
	fs.StringVar(&suite, "suite", "", "run a YAML suite of perft regression cases instead of a single fen/depth pair")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if suite != "" {
		return runPerftSuite(logger, suite)
	}

	var rest = fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: analyzer perft <fen> <depth> (or perft -suite=<file>)")
	}
	var pos, err = parseFEN(rest[0])
	if err != nil {
		return err
	}
	var d, derr = strconv.Atoi(rest[1])
	if derr != nil || d < 0 {
		return fmt.Errorf("depth must be a non-negative integer: %v", derr)
	}
	fmt.Println(perft.Count(&pos, d))
	return nil
}

func runPerftSuite(logger *log.Logger, filename string) error {
	var s, err = benchconfig.Load(filename)
	if err != nil {
		return err
	}

	var failures = 0
	for _, c := range s.Cases {
		var pos, ferr = parseFEN(c.FEN)
		if ferr != nil {
			logger.Printf("FAIL %-20s bad fen %q: %v", c.Name, c.FEN, ferr)
			failures++
			continue
		}
		var got, perr = perft.CountParallel(context.Background(), &pos, c.Depth)
		if perr != nil {
			logger.Printf("FAIL %-20s %v", c.Name, perr)
			failures++
			continue
		}
		if got != c.Nodes {
			logger.Printf("FAIL %-20s depth=%d got=%d want=%d", c.Name, c.Depth, got, c.Nodes)
			failures++
			continue
		}
		fmt.Printf("PASS %-20s depth=%d nodes=%d\n", c.Name, c.Depth, got)
	}

	if failures != 0 {
		return fmt.Errorf("%d of %d perft cases failed", failures, len(s.Cases))
	}
	return nil
}

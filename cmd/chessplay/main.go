// Command chessplay is the menu-driven console driver of spec.md §6:
// it owns the terminal, the difficulty-to-depth mapping, and reading
// moves as a pair of squares plus an optional promotion letter. It
// deliberately implements none of the UCI protocol (an explicit
// Non-goal) even though it is grounded on the teacher's zurichess/main.go
// read-a-line-and-dispatch loop; the UCI command table itself
// (zurichess/uci.go) is not reused.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"

	"github.com/YashwantBhosale/chessplay/bookio"
	"github.com/YashwantBhosale/chessplay/engine"
	"github.com/YashwantBhosale/chessplay/notation"
)

var (
	cpuprofile = flag.Bool("cpuprofile", false, "profile the session with github.com/pkg/profile")
	bookPath   = flag.String("book", "", "opening book file (FEN,side,move CSV), optional")
	startFEN   = flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "starting position")
)

// difficultyDepth maps spec.md §6's three difficulty levels to the
// fixed search depth IterativeDeepen is capped at.
var difficultyDepth = map[int]int{1: 4, 2: 5, 3: 6}

func main() {
	flag.Parse()
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	log.SetFlags(0)
	log.SetPrefix("")

	pos, err := notation.ParseFEN(*startFEN)
	if err != nil {
		log.Fatalln("cannot parse --fen:", err)
	}

	searcher := engine.NewSearcher(engine.NewTranspositionTable(engine.DefaultHashTableSizeMB), loadBook(*bookPath))

	stdin := bufio.NewReader(os.Stdin)
	printMenu()

	for {
		fmt.Print("> ")
		line, err := readLine(stdin)
		if err != nil {
			return
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "T":
			playTwoPlayer(stdin, pos)
		case "S":
			playSinglePlayer(stdin, pos, searcher)
		case "H":
			printMenu()
		case "":
			continue
		default:
			fmt.Println("unrecognized option; press H for help")
		}
	}
}

func printMenu() {
	fmt.Println("chessplay")
	fmt.Println("  T - two-player game (both sides entered by hand)")
	fmt.Println("  S - single-player game (you vs the engine)")
	fmt.Println("  H - show this menu")
	fmt.Println("  Ctrl+C - quit")
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// playTwoPlayer alternates reading a move for whichever side is to
// move until the game ends or the player quits.
func playTwoPlayer(stdin *bufio.Reader, pos *engine.Position) {
	for {
		if gameOver(pos) {
			return
		}
		fmt.Printf("%s\n%s to move, enter src dest [promotion]: ", pos.String(), pos.SideToMove)
		line, err := readLine(stdin)
		if err != nil {
			return
		}
		if strings.EqualFold(strings.TrimSpace(line), "quit") {
			return
		}
		move, err := parseAndFindMove(pos, line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		pos.Make(move)
	}
}

// playSinglePlayer asks for a difficulty, then alternates a
// human-entered move for White with an engine move for Black.
func playSinglePlayer(stdin *bufio.Reader, pos *engine.Position, searcher *engine.Searcher) {
	fmt.Print("difficulty (1-3): ")
	line, err := readLine(stdin)
	if err != nil {
		return
	}
	level, err := strconv.Atoi(strings.TrimSpace(line))
	depth, ok := difficultyDepth[level]
	if err != nil || !ok {
		fmt.Println("invalid difficulty; defaulting to 1")
		depth = difficultyDepth[1]
	}

	for {
		if gameOver(pos) {
			return
		}
		if pos.SideToMove == engine.White {
			fmt.Printf("%s\nyour move, enter src dest [promotion]: ", pos.String())
			line, err := readLine(stdin)
			if err != nil {
				return
			}
			if strings.EqualFold(strings.TrimSpace(line), "quit") {
				return
			}
			move, err := parseAndFindMove(pos, line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			pos.Make(move)
			continue
		}

		result := searcher.IterativeDeepen(pos, depth, engine.Black)
		if result.Move == engine.NullMove {
			return
		}
		fmt.Printf("engine plays %s (depth %d, score %.1f)\n", result.Move.UCI(), result.Depth, result.Score)
		pos.Make(result.Move)
	}
}

// gameOver reports whether the side to move has no legal response.
func gameOver(pos *engine.Position) bool {
	if len(pos.FilterLegalMoves(pos.SideToMove)) != 0 {
		return false
	}
	if pos.InCheck(pos.SideToMove) {
		fmt.Printf("checkmate, %s has no moves\n", pos.SideToMove)
	} else {
		fmt.Println("stalemate")
	}
	return true
}

// parseAndFindMove reads "src dest [promotion]" (e.g. "e2 e4" or
// "e7 e8 q") and matches it against pos's legal moves, implementing
// spec.md §6's make_move_from_squares contract: only a move the
// generator actually produced is ever accepted.
func parseAndFindMove(pos *engine.Position, line string) (engine.Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return engine.NullMove, fmt.Errorf("expected \"src dest [promotion]\", got %q", line)
	}
	from, err := engine.SquareFromString(fields[0])
	if err != nil {
		return engine.NullMove, err
	}
	to, err := engine.SquareFromString(fields[1])
	if err != nil {
		return engine.NullMove, err
	}
	promotion := ""
	if len(fields) == 3 {
		promotion = strings.ToLower(fields[2])
	}

	for _, sm := range pos.FilterLegalMoves(pos.SideToMove) {
		m := sm.Move
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && promotionLetter(m.Promoted()) != promotion {
			continue
		}
		if !m.IsPromotion() && promotion != "" {
			continue
		}
		return m, nil
	}
	return engine.NullMove, fmt.Errorf("%w: no legal move %s-%s", engine.ErrInvalidMove, fields[0], fields[1])
}

func promotionLetter(fig engine.Figure) string {
	switch fig {
	case engine.Knight:
		return "n"
	case engine.Bishop:
		return "b"
	case engine.Rook:
		return "r"
	case engine.Queen:
		return "q"
	default:
		return ""
	}
}

func loadBook(path string) *engine.Book {
	if path == "" {
		return engine.NewBook()
	}
	f, err := os.Open(path)
	if err != nil {
		log.Printf("cannot open book %s: %v (continuing without a book)", path, err)
		return engine.NewBook()
	}
	defer f.Close()

	result, err := bookio.Load(f)
	if err != nil {
		log.Printf("cannot load book %s: %v (continuing without a book)", path, err)
		return engine.NewBook()
	}
	if result.Skipped > 0 {
		log.Printf("book %s: skipped %d malformed line(s) of %d", path, result.Skipped, result.Read)
	}
	return result.Book
}

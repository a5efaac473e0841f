// Package notation converts between engine.Position and the external
// text formats a driver needs: FEN in, FEN out. It deliberately knows
// nothing about search or move generation; it only builds and reads
// board state, the same "external collaborator" split spec.md draws
// around the opening book's file format.
//
// Grounded on the teacher's PositionFromFEN (fen.go): the same
// field-splitting and rank/file walk, adapted to populate a mailbox-
// and-bitboard Position instead of the teacher's array-only one.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/YashwantBhosale/chessplay/engine"
)

// ParseFEN builds a Position from a FEN string. It returns
// engine.ErrInvalidFen (wrapped with detail) for any malformed field.
func ParseFEN(fen string) (*engine.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d", engine.ErrInvalidFen, len(fields))
	}

	pos := engine.NewPosition()

	if err := parsePiecePlacement(pos, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = engine.White
	case "b":
		pos.SideToMove = engine.Black
	default:
		return nil, fmt.Errorf("%w: unknown side to move %q", engine.ErrInvalidFen, fields[1])
	}

	castle, err := parseCastlingRights(fields[2])
	if err != nil {
		return nil, err
	}
	pos.Castle = castle

	pos.EPTarget = engine.NoSquare
	if fields[3] != "-" {
		// Per SPEC_FULL.md's open-question decision, the en-passant
		// file given in the FEN is trusted as-is rather than re-derived
		// from a pawn-and-empty-square check.
		ep, err := engine.SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: bad en-passant square %q", engine.ErrInvalidFen, fields[3])
		}
		pos.EPTarget = ep
	}

	return pos, nil
}

// parsePiecePlacement fills pos's board from FEN's first field,
// walking ranks 8 down to 1 as the format specifies.
func parsePiecePlacement(pos *engine.Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", engine.ErrInvalidFen, len(ranks))
	}
	for r, row := range ranks {
		sq := engine.RankFile(7-r, 0)
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				sq = sq.Relative(0, int(ch-'0'))
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return fmt.Errorf("%w: rank %d has more than 8 squares", engine.ErrInvalidFen, 8-r)
			}
			pi, err := pieceFromSymbol(ch)
			if err != nil {
				return err
			}
			pos.Put(sq, pi)
			sq = sq.Relative(0, 1)
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d squares, want 8", engine.ErrInvalidFen, 8-r, file)
		}
	}
	return nil
}

func pieceFromSymbol(ch rune) (engine.Piece, error) {
	col := engine.White
	if ch >= 'a' && ch <= 'z' {
		col = engine.Black
	}
	var fig engine.Figure
	switch ch {
	case 'p', 'P':
		fig = engine.Pawn
	case 'n', 'N':
		fig = engine.Knight
	case 'b', 'B':
		fig = engine.Bishop
	case 'r', 'R':
		fig = engine.Rook
	case 'q', 'Q':
		fig = engine.Queen
	case 'k', 'K':
		fig = engine.King
	default:
		return engine.NoPiece, fmt.Errorf("%w: unhandled piece symbol %q", engine.ErrInvalidFen, ch)
	}
	return engine.ColorFigure(col, fig), nil
}

func parseCastlingRights(field string) (engine.Castle, error) {
	if field == "-" {
		return engine.NoCastle, nil
	}
	var c engine.Castle
	for _, ch := range field {
		switch ch {
		case 'K':
			c |= engine.WhiteOO
		case 'Q':
			c |= engine.WhiteOOO
		case 'k':
			c |= engine.BlackOO
		case 'q':
			c |= engine.BlackOOO
		default:
			return engine.NoCastle, fmt.Errorf("%w: unhandled castling symbol %q", engine.ErrInvalidFen, ch)
		}
	}
	return c, nil
}

// FormatFEN renders pos back to a FEN string. Halfmove clock and
// fullmove number, which Position does not track, are emitted as the
// conventional "0 1" since spec.md has no notion of either.
func FormatFEN(pos *engine.Position) string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := engine.RankFile(r, f)
			pi := pos.Get(sq)
			if pi == engine.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pi.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.SideToMove == engine.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(formatCastlingRights(pos.Castle))

	sb.WriteByte(' ')
	if pos.EPTarget == engine.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.EPTarget.String())
	}

	sb.WriteString(" 0 1")
	return sb.String()
}

func formatCastlingRights(c engine.Castle) string {
	if c == engine.NoCastle {
		return "-"
	}
	var sb strings.Builder
	if c.Has(engine.WhiteOO) {
		sb.WriteByte('K')
	}
	if c.Has(engine.WhiteOOO) {
		sb.WriteByte('Q')
	}
	if c.Has(engine.BlackOO) {
		sb.WriteByte('k')
	}
	if c.Has(engine.BlackOOO) {
		sb.WriteByte('q')
	}
	return sb.String()
}

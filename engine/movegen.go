// movegen.go enumerates pseudo-legal moves per spec.md §4.3. Every
// generator appends to the caller's MoveList and simultaneously ORs
// its destinations into an attack bitboard returned to the caller; no
// generator ever mutates the Position. Sliding-piece rays reuse
// attack.go's slidingAttack helper (ray-walk, not magic bitboards).

package engine

// castling describes one king-side or queen-side castling option.
type castling struct {
	right               Castle
	kingFrom, kingTo    Square
	rookFrom            Square
	mustBeEmpty         Bitboard // squares between king and rook
	kingPath            []Square // squares the king starts on, crosses, or lands on
}

var castlings = [4]castling{
	{ // White king-side
		right: WhiteOO, kingFrom: SquareA1 + 4, kingTo: SquareA1 + 6, rookFrom: SquareA1 + 7,
		mustBeEmpty: RankFile(0, 5).Bitboard() | RankFile(0, 6).Bitboard(),
		kingPath:    []Square{RankFile(0, 4), RankFile(0, 5), RankFile(0, 6)},
	},
	{ // White queen-side
		right: WhiteOOO, kingFrom: SquareA1 + 4, kingTo: SquareA1 + 2, rookFrom: SquareA1,
		mustBeEmpty: RankFile(0, 1).Bitboard() | RankFile(0, 2).Bitboard() | RankFile(0, 3).Bitboard(),
		kingPath:    []Square{RankFile(0, 4), RankFile(0, 3), RankFile(0, 2)},
	},
	{ // Black king-side
		right: BlackOO, kingFrom: SquareA8 + 4, kingTo: SquareA8 + 6, rookFrom: SquareA8 + 7,
		mustBeEmpty: RankFile(7, 5).Bitboard() | RankFile(7, 6).Bitboard(),
		kingPath:    []Square{RankFile(7, 4), RankFile(7, 5), RankFile(7, 6)},
	},
	{ // Black queen-side
		right: BlackOOO, kingFrom: SquareA8 + 4, kingTo: SquareA8 + 2, rookFrom: SquareA8,
		mustBeEmpty: RankFile(7, 1).Bitboard() | RankFile(7, 2).Bitboard() | RankFile(7, 3).Bitboard(),
		kingPath:    []Square{RankFile(7, 4), RankFile(7, 3), RankFile(7, 2)},
	},
}

var promotionFigures = [4]Figure{Knight, Bishop, Rook, Queen}

var queenDirections = [8]direction{
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
}

// GeneratePseudoLegalMoves returns every pseudo-legal move for color,
// along with the union attack bitboard of all of color's pieces
// (castling destinations excluded: they are moves, not threats).
func (pos *Position) GeneratePseudoLegalMoves(color Color) (MoveList, Bitboard) {
	var moves MoveList
	var attacks Bitboard

	pos.genPawnMoves(color, &moves, &attacks)
	pos.genKnightMoves(color, &moves, &attacks)
	pos.genSlidingMoves(color, Bishop, bishopDirections[:], &moves, &attacks)
	pos.genSlidingMoves(color, Rook, rookDirections[:], &moves, &attacks)
	pos.genSlidingMoves(color, Queen, queenDirections[:], &moves, &attacks)
	pos.genKingMoves(color, &moves, &attacks)

	return moves, attacks
}

func (pos *Position) genPawnMoves(us Color, moves *MoveList, attacks *Bitboard) {
	them := us.Opposite()
	all := pos.Occupancy()
	theirs := pos.ByColor(them)
	pawns := pos.ByPiece(us, Pawn)

	startRank, lastRank := 1, 6
	if us == Black {
		startRank, lastRank = 6, 1
	}
	dr := 1
	if us == Black {
		dr = -1
	}

	for bb := pawns; bb != 0; {
		from := bb.Pop()
		*attacks |= BbPawnAttack[us][from]

		promoting := from.Rank() == lastRank

		// Single push.
		to := from.Relative(dr, 0)
		if !all.Has(to) {
			if promoting {
				for _, p := range promotionFigures {
					*moves = append(*moves, MakeMove(from, to, Pawn, NoFigure, p, PromotionFlag))
				}
			} else {
				*moves = append(*moves, MakeMove(from, to, Pawn, NoFigure, NoFigure, Normal))
				if from.Rank() == startRank {
					to2 := from.Relative(2*dr, 0)
					if !all.Has(to2) {
						*moves = append(*moves, MakeMove(from, to2, Pawn, NoFigure, NoFigure, Normal))
					}
				}
			}
		}

		// Diagonal captures (including en-passant).
		for _, df := range []int{-1, +1} {
			if from.File()+df < 0 || from.File()+df > 7 {
				continue
			}
			capTo := from.Relative(dr, df)
			if theirs.Has(capTo) {
				captured := pos.Get(capTo).Figure()
				if promoting {
					for _, p := range promotionFigures {
						*moves = append(*moves, MakeMove(from, capTo, Pawn, captured, p, PromotionFlag))
					}
				} else {
					*moves = append(*moves, MakeMove(from, capTo, Pawn, captured, NoFigure, CaptureFlag))
				}
			} else if pos.EPTarget != NoSquare && capTo == pos.EPTarget {
				*moves = append(*moves, MakeMove(from, capTo, Pawn, Pawn, NoFigure, EnPassantFlag))
			}
		}
	}
}

func (pos *Position) genKnightMoves(us Color, moves *MoveList, attacks *Bitboard) {
	own := pos.ByColor(us)
	for bb := pos.ByPiece(us, Knight); bb != 0; {
		from := bb.Pop()
		dests := BbKnightAttack[from] &^ own
		*attacks |= dests
		pos.emitSimpleMoves(us, from, Knight, dests, moves)
	}
}

func (pos *Position) genSlidingMoves(us Color, fig Figure, directions []direction, moves *MoveList, attacks *Bitboard) {
	own := pos.ByColor(us)
	all := pos.Occupancy()
	for bb := pos.ByPiece(us, fig); bb != 0; {
		from := bb.Pop()
		dests := slidingAttack(from, directions, all) &^ own
		*attacks |= dests
		pos.emitSimpleMoves(us, from, fig, dests, moves)
	}
}

func (pos *Position) genKingMoves(us Color, moves *MoveList, attacks *Bitboard) {
	them := us.Opposite()
	own := pos.ByColor(us)
	from := pos.King(us)

	dests := BbKingAttack[from] &^ own
	*attacks |= dests
	pos.emitSimpleMoves(us, from, King, dests, moves)

	all := pos.Occupancy()
	for i := 0; i < 4; i++ {
		c := castlings[i]
		if c.right == WhiteOO || c.right == WhiteOOO {
			if us != White {
				continue
			}
		} else if us != Black {
			continue
		}
		if pos.Castle&c.right == 0 {
			continue
		}
		if all&c.mustBeEmpty != 0 {
			continue
		}
		blocked := false
		for _, sq := range c.kingPath {
			if pos.attacksSquare(sq, them) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		*moves = append(*moves, MakeMove(c.kingFrom, c.kingTo, King, NoFigure, NoFigure, CastleFlag))
	}
}

// emitSimpleMoves appends one Normal or CaptureFlag move per
// destination bit in dests, classifying each by whether it lands on
// an opponent-occupied square.
func (pos *Position) emitSimpleMoves(us Color, from Square, fig Figure, dests Bitboard, moves *MoveList) {
	them := us.Opposite()
	theirs := pos.ByColor(them)
	for d := dests; d != 0; {
		to := d.Pop()
		if theirs.Has(to) {
			*moves = append(*moves, MakeMove(from, to, fig, pos.Get(to).Figure(), NoFigure, CaptureFlag))
		} else {
			*moves = append(*moves, MakeMove(from, to, fig, NoFigure, NoFigure, Normal))
		}
	}
}

package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Board is a single Minesweeper game. It owns two row-major planes over
// the same rows*columns cells: the truth plane holding mines and true
// clear-counts, and the visible plane holding what the player has
// uncovered. The truth plane stays nil until the first dig so the mine
// layout can be rolled with the opening coordinate in hand, which is what
// makes the first dig safe.
//
// A Board is not safe for concurrent use; callers that share one across
// goroutines must bring their own locking.
type Board struct {
	rows, columns int
	mines         int

	truth   []CellValue // nil until the first dig
	visible []CellValue

	rng    *rand.Rand
	seed   int64
	state  BoardState
	hidden int // clear cells not yet revealed; reaching 0 wins
	flags  int
}

// InvalidConfigError reports construction parameters that cannot form a
// playable board.
type InvalidConfigError struct {
	Rows, Columns, Mines int
}

func (e *InvalidConfigError) Error() string {
	switch {
	case e.Rows <= 0:
		return fmt.Sprintf("invalid board: rows must be positive, got %d", e.Rows)
	case e.Columns <= 0:
		return fmt.Sprintf("invalid board: columns must be positive, got %d", e.Columns)
	case e.Mines < 0:
		return fmt.Sprintf("invalid board: mine count must not be negative, got %d", e.Mines)
	default:
		return fmt.Sprintf("invalid board: %d mines do not leave a clear cell on %dx%d",
			e.Mines, e.Rows, e.Columns)
	}
}

// New creates a board with a time-seeded random source.
func New(rows, columns, mines int) (*Board, error) {
	return NewSeeded(rows, columns, mines, time.Now().UnixNano())
}

// NewSeeded creates a board whose mine layout is fully determined by the
// seed and the coordinate of the first dig.
func NewSeeded(rows, columns, mines int, seed int64) (*Board, error) {
	if rows <= 0 || columns <= 0 || mines < 0 || mines >= rows*columns {
		return nil, &InvalidConfigError{Rows: rows, Columns: columns, Mines: mines}
	}

	visible := make([]CellValue, rows*columns)
	for i := range visible {
		visible[i] = Unknown
	}

	return &Board{
		rows:    rows,
		columns: columns,
		mines:   mines,
		visible: visible,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		hidden:  rows*columns - mines,
	}, nil
}

func (b *Board) Rows() int         { return b.rows }
func (b *Board) Columns() int      { return b.columns }
func (b *Board) Mines() int        { return b.mines }
func (b *Board) Flags() int        { return b.flags }
func (b *Board) Seed() int64       { return b.seed }
func (b *Board) State() BoardState { return b.state }

// Started reports whether the truth plane exists yet, i.e. whether the
// first dig has happened.
func (b *Board) Started() bool { return b.truth != nil }

func (b *Board) index(row, column int) int { return row*b.columns + column }

func (b *Board) inBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

// Visible reports the player-facing value at (row, column). ok is false
// out of bounds.
func (b *Board) Visible(row, column int) (value CellValue, ok bool) {
	if !b.inBounds(row, column) {
		return Unknown, false
	}
	return b.visible[b.index(row, column)], true
}

// Truth reports the underlying value at (row, column). Before the first
// dig there is no truth plane and every in-bounds cell reads Unknown.
func (b *Board) Truth(row, column int) (value CellValue, ok bool) {
	if !b.inBounds(row, column) {
		return Unknown, false
	}
	if b.truth == nil {
		return Unknown, true
	}
	return b.truth[b.index(row, column)], true
}

// Dig uncovers the cell at (row, column).
//
// The first in-bounds dig of a game lays out the mines; see
// ensureSafeFirstDig for the safety guarantee. Digging a mine marks it in
// the visible plane, ends the game, and returns Boom; the board stays
// usable for rendering the final position. Digging a zero-count cell
// cascades through the connected zero region and its numbered border.
// Flagged cells are protected: digging one changes nothing, not even on a
// fresh board. Once the game is over, digs change nothing.
func (b *Board) Dig(row, column int) Result {
	if !b.inBounds(row, column) {
		return OutOfBounds
	}
	if b.state != Ongoing {
		return Ok
	}

	i := b.index(row, column)
	if b.visible[i] == Flagged {
		return Ok
	}

	if b.truth == nil {
		b.ensureSafeFirstDig(row, column)
	}

	switch {
	case b.truth[i] == Mine:
		b.visible[i] = Mine
		b.state = Lost
		return Boom
	case b.truth[i] == Clear:
		b.floodReveal(row, column)
	default:
		b.reveal(i)
	}
	return Ok
}

// Flag marks an untouched cell. Flags are one-way: flagging a flagged or
// revealed cell is a silent no-op, and nothing removes a flag.
func (b *Board) Flag(row, column int) Result {
	if !b.inBounds(row, column) {
		return OutOfBounds
	}
	if b.state != Ongoing {
		return Ok
	}
	if i := b.index(row, column); b.visible[i] == Unknown {
		b.visible[i] = Flagged
		b.flags++
	}
	return Ok
}

// reveal copies one clear cell's truth into the visible plane and tracks
// the win condition. Revealing an already-revealed cell is a no-op, so
// cascades may revisit cells freely.
func (b *Board) reveal(i int) {
	if b.visible[i].IsCount() {
		return
	}
	b.visible[i] = b.truth[i]
	b.hidden--
	if b.hidden == 0 {
		b.state = Won
	}
}

// generate lays out a fresh truth plane: mines placed by uniform
// reject-resample, counts rebuilt from them.
func (b *Board) generate() {
	for i := range b.truth {
		b.truth[i] = Clear
	}

	remaining := b.mines
	for remaining > 0 {
		i := b.rng.Intn(len(b.truth))
		if b.truth[i] == Mine {
			continue
		}
		b.truth[i] = Mine
		remaining--
	}

	b.recount()
}

// recount rebuilds every clear cell's count from the mine positions in
// the truth plane: each mine bumps its in-bounds clear neighbors.
func (b *Board) recount() {
	for i, v := range b.truth {
		if v != Mine {
			b.truth[i] = Clear
		}
	}

	for row := 0; row < b.rows; row++ {
		for column := 0; column < b.columns; column++ {
			if b.truth[b.index(row, column)] != Mine {
				continue
			}
			for _, d := range NeighborOffsets {
				nr, nc := row+d[0], column+d[1]
				if b.inBounds(nr, nc) && b.truth[b.index(nr, nc)] != Mine {
					b.truth[b.index(nr, nc)]++
				}
			}
		}
	}
}

// safeDigAttempts bounds the regenerate-until-zero loop below. Some legal
// configurations admit no layout with a zero count at the opening cell (a
// 3x3 board with one mine dug at the center has none), so the preference
// for a zero opening must eventually settle for a layout that is merely
// not a mine there.
const safeDigAttempts = 100

// ensureSafeFirstDig allocates the truth plane and regenerates it until
// the opening cell is a zero-count clear, falling back to the first
// non-mine layout once the attempts run out. Either way the opening
// never lands on a mine, since mines < rows*columns always leaves a
// clear cell somewhere.
func (b *Board) ensureSafeFirstDig(row, column int) {
	b.truth = make([]CellValue, b.rows*b.columns)
	i := b.index(row, column)

	for attempt := 0; attempt < safeDigAttempts; attempt++ {
		b.generate()
		if b.truth[i] == Clear {
			return
		}
	}
	for b.truth[i] == Mine {
		b.generate()
	}
}

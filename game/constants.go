package game

// CellValue is one square's worth of knowledge. The truth plane holds Mine
// or a clear-count 0..8; the visible plane additionally holds Unknown and
// Flagged. Counts are the values themselves so neighbor bookkeeping is
// plain integer math.
type CellValue int8

// BoardState reports whether a board is still being played.
type BoardState int

// Result is the outcome of a single Dig or Flag request.
type Result int

// Target selects which plane Render draws.
type Target int

const (
	Unknown CellValue = iota - 3
	Flagged
	Mine
	Clear CellValue = 0 // clear-counts run 0..8
)

// MaxCount is the largest possible clear-count (all eight neighbors mined).
const MaxCount CellValue = 8

const (
	Ongoing BoardState = iota
	Won
	Lost
)

const (
	Ok Result = iota
	Boom
	OutOfBounds
)

const (
	Visible Target = iota
	Truth
)

// NeighborOffsets lists the eight (row, column) deltas around a cell.
// Directors iterate it too, relying on Visible's ok result for bounds.
var NeighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (s BoardState) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case Boom:
		return "boom"
	case OutOfBounds:
		return "out_of_bounds"
	}
	return "unknown"
}

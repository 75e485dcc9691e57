package game

// MoveAction is what a director wants done to a cell.
type MoveAction int

const (
	ActionDig MoveAction = iota
	ActionFlag
)

func (a MoveAction) String() string {
	if a == ActionFlag {
		return "flag"
	}
	return "dig"
}

// Move is a single decision a director makes for a board.
type Move struct {
	Row    int
	Column int
	Action MoveAction
}

// Apply plays the move against the board.
func (m Move) Apply(b *Board) Result {
	if m.Action == ActionFlag {
		return b.Flag(m.Row, m.Column)
	}
	return b.Dig(m.Row, m.Column)
}

// Director chooses moves for a board it is playing. NextMove reports
// false when the director has nothing left to offer, which the caller
// should treat as a stalled game. Directors never mutate the board; the
// caller applies the returned move.
type Director interface {
	Name() string
	NextMove(*Board) (Move, bool)
}

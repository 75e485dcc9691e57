package game

import "testing"

// Layout used by most flood tests. Truth resolves to:
//
//	* 1 0
//	1 1 0
//	0 0 0
const cornerMine = "O##\n###\n###"

func TestFloodRevealsZeroRegionAndBorder(t *testing.T) {
	board := craft(t, cornerMine)

	if got := board.Dig(2, 2); got != Ok {
		t.Fatalf("Dig = %v, want Ok", got)
	}

	want := [3][3]CellValue{
		{Unknown, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if v, _ := board.Visible(r, c); v != want[r][c] {
				t.Errorf("Visible(%d, %d) = %v, want %v", r, c, v, want[r][c])
			}
		}
	}
	// Every clear cell is revealed, so the cascade alone wins the game.
	if board.State() != Won {
		t.Errorf("State() = %v, want Won", board.State())
	}
}

func TestFloodStopsAtFlag(t *testing.T) {
	board := craft(t, cornerMine)

	if got := board.Flag(1, 2); got != Ok {
		t.Fatalf("Flag = %v, want Ok", got)
	}
	if got := board.Dig(2, 2); got != Ok {
		t.Fatalf("Dig = %v, want Ok", got)
	}

	// The flag at (1, 2) cuts the only path to (0, 2).
	if v, _ := board.Visible(1, 2); v != Flagged {
		t.Errorf("flagged cell reads %v, want Flagged", v)
	}
	if v, _ := board.Visible(0, 2); v != Unknown {
		t.Errorf("cell beyond flag reads %v, want Unknown", v)
	}
	for _, rc := range [][2]int{{1, 0}, {1, 1}, {2, 0}, {2, 1}, {2, 2}} {
		if v, _ := board.Visible(rc[0], rc[1]); !v.IsCount() {
			t.Errorf("Visible(%d, %d) = %v, want a count", rc[0], rc[1], v)
		}
	}
	if board.State() != Ongoing {
		t.Errorf("State() = %v, want Ongoing", board.State())
	}
}

func TestFloodChainStopsAtNumberedBorder(t *testing.T) {
	// Mine at (0, 5). The zero region spans columns 0-3; (0, 4) and
	// (1, 4) are its numbered border; (1, 5) touches no zero cell and
	// must stay hidden.
	board := craft(t, "#####O\n######")

	if got := board.Dig(0, 0); got != Ok {
		t.Fatalf("Dig = %v, want Ok", got)
	}

	for r := 0; r < 2; r++ {
		for c := 0; c < 4; c++ {
			if v, _ := board.Visible(r, c); v != Clear {
				t.Errorf("Visible(%d, %d) = %v, want 0", r, c, v)
			}
		}
	}
	if v, _ := board.Visible(0, 4); v != 1 {
		t.Errorf("Visible(0, 4) = %v, want 1", v)
	}
	if v, _ := board.Visible(1, 4); v != 1 {
		t.Errorf("Visible(1, 4) = %v, want 1", v)
	}
	if v, _ := board.Visible(1, 5); v != Unknown {
		t.Errorf("Visible(1, 5) = %v, want Unknown", v)
	}
	if board.State() != Ongoing {
		t.Errorf("State() = %v, want Ongoing", board.State())
	}
}

func TestRedigOfZeroCellIsNoOp(t *testing.T) {
	board := craft(t, cornerMine)

	if got := board.Dig(2, 2); got != Ok {
		t.Fatalf("Dig = %v, want Ok", got)
	}
	state := board.State()
	if got := board.Dig(2, 2); got != Ok {
		t.Fatalf("re-Dig = %v, want Ok", got)
	}
	if board.State() != state {
		t.Errorf("re-dig moved state from %v to %v", state, board.State())
	}
}

func TestDigFlaggedCellSuppressesGeneration(t *testing.T) {
	board, err := NewSeeded(5, 5, 5, 11)
	if err != nil {
		t.Fatal(err)
	}

	if got := board.Flag(2, 2); got != Ok {
		t.Fatalf("Flag = %v, want Ok", got)
	}
	if got := board.Dig(2, 2); got != Ok {
		t.Fatalf("Dig on flagged cell = %v, want Ok", got)
	}
	// The protected dig must not have rolled a layout.
	if board.Started() {
		t.Error("dig on flagged cell generated the board")
	}
}

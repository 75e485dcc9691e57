package game

import "testing"

func TestGeneratePlacesExactMineCount(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		board, err := NewSeeded(8, 7, 12, seed)
		if err != nil {
			t.Fatal(err)
		}
		board.Dig(0, 0)

		mines := 0
		for r := 0; r < board.Rows(); r++ {
			for c := 0; c < board.Columns(); c++ {
				if v, _ := board.Truth(r, c); v == Mine {
					mines++
				}
			}
		}
		if mines != 12 {
			t.Fatalf("seed %d: %d mines placed, want 12", seed, mines)
		}
	}
}

func TestGenerateCountsMatchNeighborMines(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		board, err := NewSeeded(6, 9, 11, seed)
		if err != nil {
			t.Fatal(err)
		}
		board.Dig(3, 4)

		for r := 0; r < board.Rows(); r++ {
			for c := 0; c < board.Columns(); c++ {
				v, _ := board.Truth(r, c)
				if v == Mine {
					continue
				}
				adjacent := CellValue(0)
				for _, d := range NeighborOffsets {
					if n, ok := board.Truth(r+d[0], c+d[1]); ok && n == Mine {
						adjacent++
					}
				}
				if v != adjacent {
					t.Fatalf("seed %d: Truth(%d, %d) = %v, want %v", seed, r, c, v, adjacent)
				}
			}
		}
	}
}

func TestGenerateZeroMinesRevealsEverything(t *testing.T) {
	board, err := NewSeeded(4, 4, 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := board.Dig(1, 2); got != Ok {
		t.Fatalf("Dig = %v, want Ok", got)
	}
	if board.State() != Won {
		t.Fatalf("State() = %v, want Won", board.State())
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if v, _ := board.Visible(r, c); v != Clear {
				t.Errorf("Visible(%d, %d) = %v, want 0", r, c, v)
			}
		}
	}
}

func TestSeedsAreReproducible(t *testing.T) {
	a, err := NewSeeded(9, 9, 15, 1234)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSeeded(9, 9, 15, 1234)
	if err != nil {
		t.Fatal(err)
	}
	a.Dig(4, 4)
	b.Dig(4, 4)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			av, _ := a.Truth(r, c)
			bv, _ := b.Truth(r, c)
			if av != bv {
				t.Fatalf("Truth(%d, %d) differs between identical seeds: %v vs %v", r, c, av, bv)
			}
		}
	}
}

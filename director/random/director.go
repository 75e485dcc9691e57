// Package random provides a director that digs blindly. It is the
// baseline for the solve harness and the guess of last resort for
// smarter directors.
package random

import (
	"math/rand"

	"github.com/moneytech/minesweeper/game"
)

type Director struct {
	rng *rand.Rand
}

// New creates a director whose guesses are driven by seed.
func New(seed int64) *Director {
	return &Director{rng: rand.New(rand.NewSource(seed))}
}

func (director *Director) Name() string {
	return "random"
}

// NextMove digs a uniformly random untouched cell. It reports false once
// every cell is revealed or flagged.
func (director *Director) NextMove(board *game.Board) (game.Move, bool) {
	if board.State() != game.Ongoing {
		return game.Move{}, false
	}

	candidates := make([]game.Move, 0, board.Rows()*board.Columns())
	for row := 0; row < board.Rows(); row++ {
		for column := 0; column < board.Columns(); column++ {
			if value, _ := board.Visible(row, column); value == game.Unknown {
				candidates = append(candidates, game.Move{Row: row, Column: column, Action: game.ActionDig})
			}
		}
	}
	if len(candidates) == 0 {
		return game.Move{}, false
	}
	return candidates[director.rng.Intn(len(candidates))], true
}

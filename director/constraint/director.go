// Package constraint provides a director that digs what it can prove
// safe, flags what it can prove mined, and falls back to the lowest
// mine probability guess when proof runs out.
package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/moneytech/minesweeper/director/random"
	"github.com/moneytech/minesweeper/game"
	"github.com/moneytech/minesweeper/util/collections"
)

// Observation is the constraint one revealed numbered cell places on its
// untouched neighborhood: exactly numMines of the cells hold mines.
// Flagged neighbors count as found mines and are excluded from cells.
// Derived observations, built from relations between two others, carry no
// origin.
type Observation struct {
	origin   int // flat index of the numbered cell, or -1 if derived
	numMines int
	cells    collections.Set[int]
}

func (observation *Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (observation *Observation) String() string {
	origin := "?"
	if observation.origin >= 0 {
		origin = strconv.Itoa(observation.origin)
	}
	return fmt.Sprintf("obs[%s: %d mines in %d cells]", origin, observation.numMines, len(observation.cells))
}

type Director struct {
	rng      *rand.Rand
	fallback *random.Director
}

// New creates a director whose guesses are driven by seed. Deductions are
// deterministic for a given position regardless of seed.
func New(seed int64) *Director {
	return &Director{
		rng:      rand.New(rand.NewSource(seed)),
		fallback: random.New(seed),
	}
}

func (director *Director) Name() string {
	return "constraint"
}

// NextMove rebuilds the observation set from the visible plane, then
// tries, in order: a move deduced certain, the lowest-probability guess
// among observed cells, and a blind dig anywhere untouched.
func (director *Director) NextMove(board *game.Board) (game.Move, bool) {
	if board.State() != game.Ongoing {
		return game.Move{}, false
	}

	observations := observe(board)

	if d, ok := deliberate(observations); ok {
		move := d.move(board.Columns())
		log.WithFields(log.Fields{
			"observation": d.source,
			"row":         move.Row,
			"column":      move.Column,
			"action":      move.Action.String(),
		}).Debug("deduced move")
		return move, true
	}

	if d, ok := director.lowestProbability(observations); ok {
		move := d.move(board.Columns())
		log.WithFields(log.Fields{
			"row":    move.Row,
			"column": move.Column,
		}).Debug("guessing lowest probability")
		return move, true
	}

	return director.fallback.NextMove(board)
}

// decision is a move still expressed as a flat cell index, paired with
// the observation that justified it.
type decision struct {
	cell   int
	action game.MoveAction
	source *Observation
}

func (d decision) move(columns int) game.Move {
	return game.Move{Row: d.cell / columns, Column: d.cell % columns, Action: d.action}
}

// observe builds one observation per revealed numbered cell that still
// has untouched neighbors.
func observe(board *game.Board) []*Observation {
	var observations []*Observation
	for row := 0; row < board.Rows(); row++ {
		for column := 0; column < board.Columns(); column++ {
			value, _ := board.Visible(row, column)
			if !value.IsCount() || value == game.Clear {
				continue
			}

			observation := &Observation{
				origin:   row*board.Columns() + column,
				numMines: int(value),
				cells:    make(collections.Set[int]),
			}
			for _, d := range game.NeighborOffsets {
				nr, nc := row+d[0], column+d[1]
				neighbor, ok := board.Visible(nr, nc)
				if !ok {
					continue
				}
				switch neighbor {
				case game.Flagged:
					observation.numMines--
				case game.Unknown:
					observation.cells.Add(nr*board.Columns() + nc)
				}
			}
			if len(observation.cells) > 0 {
				observations = append(observations, observation)
			}
		}
	}
	return observations
}

// deliberate looks for a certain move. An observation with no outstanding
// mines makes every cell in it safe; one whose outstanding mines fill it
// exactly makes every cell a mine. When one observation's cells are a
// subset of another's, the same two certainties apply to the cells only
// the larger covers. When two observations overlap without nesting and
// the first holds exactly one mine, at most one of the second's mines can
// hide in the shared cells, so if its remaining mines exactly fill its
// unshared cells those are all mines.
func deliberate(observations []*Observation) (decision, bool) {
	for _, observation := range observations {
		if observation.numMines <= 0 {
			return decision{cell: minCell(observation.cells), action: game.ActionDig, source: observation}, true
		}
		if observation.numMines >= len(observation.cells) {
			return decision{cell: minCell(observation.cells), action: game.ActionFlag, source: observation}, true
		}
	}

	for _, observation := range observations {
		for _, other := range observations {
			if other == observation {
				continue
			}
			shared, isSubset := observation.cells.IntersectionEx(other.cells)

			if isSubset {
				rest := other.cells.Difference(observation.cells)
				if len(rest) == 0 {
					continue
				}
				split := &Observation{origin: -1, numMines: other.numMines - observation.numMines, cells: rest}
				switch {
				case split.numMines == 0:
					return decision{cell: minCell(rest), action: game.ActionDig, source: split}, true
				case split.numMines == len(rest):
					return decision{cell: minCell(rest), action: game.ActionFlag, source: split}, true
				}
				continue
			}

			if observation.numMines == 1 && len(shared) > 1 {
				rest := other.cells.Difference(shared)
				if occluded := other.numMines - 1; occluded > 0 && occluded == len(rest) {
					derived := &Observation{origin: -1, numMines: occluded, cells: rest}
					return decision{cell: minCell(rest), action: game.ActionFlag, source: derived}, true
				}
			}
		}
	}

	return decision{}, false
}

// lowestProbability guesses the observed cell least likely to be a mine,
// scoring each cell by the most favorable observation covering it. Ties
// break randomly.
func (director *Director) lowestProbability(observations []*Observation) (decision, bool) {
	lowest := math.Inf(1)
	cellProbabilities := make(map[int]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			past, seen := cellProbabilities[cell]
			if !seen || probability < past {
				cellProbabilities[cell] = probability
			}
			if probability < lowest {
				lowest = probability
			}
		}
	}
	if len(cellProbabilities) == 0 {
		return decision{}, false
	}

	var candidates []int
	for cell, probability := range cellProbabilities {
		if probability <= lowest {
			candidates = append(candidates, cell)
		}
	}
	sort.Ints(candidates)

	cell := candidates[director.rng.Intn(len(candidates))]
	return decision{cell: cell, action: game.ActionDig}, true
}

// minCell picks the lowest flat index so deductions are stable for a
// given position.
func minCell(cells collections.Set[int]) int {
	min := math.MaxInt
	for cell := range cells {
		if cell < min {
			min = cell
		}
	}
	return min
}

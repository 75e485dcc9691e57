package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a yaml-portable record of one game: the seed the board
// was created with and a board string folding the truth and visible
// planes into one character per cell (see serializeCell for the
// alphabet). The solve harness dumps lost games this way, and tests use
// hand-written snapshots to pin exact mine layouts.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

// Snapshot captures the board's current planes. A board that has not been
// dug yet serializes as all-untouched cells.
func (b *Board) Snapshot() *BoardSnapshot {
	lines := make([]string, b.rows)
	var line strings.Builder
	for r := 0; r < b.rows; r++ {
		line.Reset()
		for c := 0; c < b.columns; c++ {
			i := b.index(r, c)
			truth := Unknown
			if b.truth != nil {
				truth = b.truth[i]
			}
			line.WriteByte(serializeCell(truth, b.visible[i]))
		}
		lines[r] = line.String()
	}
	return &BoardSnapshot{Seed: b.seed, SerializedBoard: strings.Join(lines, "\n")}
}

// Serialize renders the snapshot as yaml.
func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		// Two scalar fields cannot fail to marshal.
		panic(err)
	}
	return string(out)
}

// LoadSnapshot parses a yaml snapshot.
func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// CreateBoard reconstructs a playable board from the snapshot. Dimensions
// and the mine count come from the board string itself, and clear-counts
// are recomputed from the mine positions rather than trusted. With fresh
// set, the visible plane is reset so the recorded layout starts over as a
// new game; otherwise reveals, flags, and a detonated mine are restored
// and the board state is derived from them.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	if snapshot.SerializedBoard == "" {
		return nil, fmt.Errorf("snapshot: empty board")
	}
	lines := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	rows := len(lines)
	columns := len(lines[0])

	mines := 0
	mask := make([]bool, rows*columns)
	visible := make([]CellValue, rows*columns)
	for r, line := range lines {
		if len(line) != columns {
			return nil, fmt.Errorf("snapshot: row %d is %d cells wide, want %d", r, len(line), columns)
		}
		for c := 0; c < columns; c++ {
			mine, vis, err := deserializeCell(line[c])
			if err != nil {
				return nil, fmt.Errorf("snapshot: row %d, column %d: %w", r, c, err)
			}
			i := r*columns + c
			mask[i] = mine
			visible[i] = vis
			if mine {
				mines++
			}
		}
	}

	board, err := NewSeeded(rows, columns, mines, snapshot.Seed)
	if err != nil {
		return nil, err
	}

	board.truth = make([]CellValue, rows*columns)
	for i, isMine := range mask {
		if isMine {
			board.truth[i] = Mine
		}
	}
	board.recount()

	if fresh {
		return board, nil
	}

	detonated := false
	for i, v := range visible {
		switch {
		case v == Flagged:
			board.visible[i] = Flagged
			board.flags++
		case v == Mine:
			board.visible[i] = Mine
			detonated = true
		case v.IsCount():
			board.visible[i] = board.truth[i]
			board.hidden--
		}
	}
	switch {
	case detonated:
		board.state = Lost
	case board.hidden == 0:
		board.state = Won
	}
	return board, nil
}

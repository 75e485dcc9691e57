package game

import "fmt"

// IsCount reports whether v is a revealed/true clear-count (0..8).
func (v CellValue) IsCount() bool {
	return v >= Clear && v <= MaxCount
}

// Rune returns the single-character rendering of a cell value. The mapping
// is stable per state: '#' unknown, 'F' flag, '*' mine, '0'..'8' counts.
func (v CellValue) Rune() byte {
	switch {
	case v == Unknown:
		return '#'
	case v == Flagged:
		return 'F'
	case v == Mine:
		return '*'
	case v.IsCount():
		return byte('0' + v)
	}
	return '?'
}

func (v CellValue) String() string {
	switch {
	case v == Unknown:
		return "unknown"
	case v == Flagged:
		return "flagged"
	case v == Mine:
		return "mine"
	case v.IsCount():
		return fmt.Sprintf("%d", int8(v))
	}
	return fmt.Sprintf("CellValue(%d)", int8(v))
}

// serializeCell folds one cell's truth and visible values into the
// snapshot alphabet:
//
//	'*' detonated mine   'F' flagged mine   'O' hidden mine
//	'f' flagged clear    '.' revealed clear '#' unknown clear
//
// Clear-counts are not recorded; they are recomputed from mine positions
// when a snapshot is loaded.
func serializeCell(truth, visible CellValue) byte {
	if truth == Mine {
		switch visible {
		case Mine:
			return '*'
		case Flagged:
			return 'F'
		default:
			return 'O'
		}
	}
	switch {
	case visible == Flagged:
		return 'f'
	case visible.IsCount():
		return '.'
	default:
		return '#'
	}
}

// deserializeCell is the inverse of serializeCell. The returned visible
// value for '.' is a placeholder count; the loader recomputes real counts
// once all mines are known.
func deserializeCell(c byte) (mine bool, visible CellValue, err error) {
	switch c {
	case '*':
		return true, Mine, nil
	case 'F':
		return true, Flagged, nil
	case 'O':
		return true, Unknown, nil
	case 'f':
		return false, Flagged, nil
	case '.':
		return false, Clear, nil
	case '#':
		return false, Unknown, nil
	}
	return false, Unknown, fmt.Errorf("unknown cell code %q", c)
}

package game

import (
	"fmt"
	"strings"
)

// Render draws one plane as a terminal board: a tens-digit header row, a
// ones-digit header row, a separator, then each grid row prefixed with
// its index. Rendering the truth plane before the first dig shows every
// cell as unknown, since no layout exists yet.
func (b *Board) Render(target Target) string {
	var out strings.Builder
	out.Grow((b.columns + 5) * (b.rows + 3))

	out.WriteString("  | ")
	for c := 0; c < b.columns; c++ {
		if c%10 == 0 {
			out.WriteByte(byte('0' + c/10))
		} else {
			out.WriteByte(' ')
		}
	}
	out.WriteString("\n  | ")
	for c := 0; c < b.columns; c++ {
		out.WriteByte(byte('0' + c%10))
	}
	out.WriteString("\n--|-")
	for c := 0; c < b.columns; c++ {
		out.WriteByte('-')
	}
	out.WriteByte('\n')

	for r := 0; r < b.rows; r++ {
		fmt.Fprintf(&out, "%2d| ", r)
		for c := 0; c < b.columns; c++ {
			out.WriteByte(b.planeValue(target, r, c).Rune())
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func (b *Board) planeValue(target Target, row, column int) CellValue {
	if target == Truth {
		if b.truth == nil {
			return Unknown
		}
		return b.truth[b.index(row, column)]
	}
	return b.visible[b.index(row, column)]
}

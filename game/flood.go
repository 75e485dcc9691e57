package game

import "github.com/gammazero/deque"

// floodReveal uncovers the connected region of zero-count cells around
// the dig site, plus the numbered cells bordering that region. An
// explicit work queue keeps arbitrarily large boards from exhausting the
// stack. Flagged cells stop the cascade.
func (b *Board) floodReveal(row, column int) {
	var pending deque.Deque[int]
	pending.PushBack(b.index(row, column))

	for pending.Len() > 0 {
		i := pending.PopFront()
		if b.visible[i].IsCount() || b.visible[i] == Flagged {
			continue
		}
		b.reveal(i)

		// Only zero-count cells propagate; numbered cells are the
		// region's border.
		if b.truth[i] != Clear {
			continue
		}
		r, c := i/b.columns, i%b.columns
		for _, d := range NeighborOffsets {
			if nr, nc := r+d[0], c+d[1]; b.inBounds(nr, nc) {
				pending.PushBack(b.index(nr, nc))
			}
		}
	}
}

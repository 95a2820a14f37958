package wheel

import "math"

// Row is one rendered line of the wheel.
type Row struct {
	// Label is empty for padding rows past the ends of a non-looping list.
	Label string
	// Index is the item index, or -1 for padding rows.
	Index int
	// Distance is the signed distance from the viewport center in rows.
	Distance float64
	// Centered marks the emphasized row.
	Centered bool
}

// Rows returns the VisibleRows rows around the viewport center. The row
// nearest the center is marked Centered; it always matches Value once the
// wheel is idle.
func (w *Wheel) Rows() []Row {
	if len(w.items) == 0 {
		return nil
	}

	c := w.Offset() / w.rowHeight
	center := int(math.Round(c))
	half := w.visibleRows / 2
	n := len(w.items)

	rows := make([]Row, 0, w.visibleRows)
	for r := center - half; r <= center+half; r++ {
		row := Row{Index: -1, Distance: float64(r) - c, Centered: r == center}
		if w.loop || (r >= 0 && r < n) {
			row.Index = ((r % n) + n) % n
			row.Label = w.items[row.Index]
		}
		rows = append(rows, row)
	}
	return rows
}

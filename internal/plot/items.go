package plot

// PlottedItem is a datum placed on the surface during one render pass.
//
// Index is the datum's position in the visible data of that pass, so an
// item is only meaningful together with its Generation.
type PlottedItem struct {
	Index      int
	Generation uint64
	Box        Rect
	Datum      Datum
}

// ItemSet is the full set of items of one render pass.
type ItemSet struct {
	Generation uint64
	Items      []PlottedItem
}

// Item returns the item at index, if any.
func (s ItemSet) Item(index int) (PlottedItem, bool) {
	if index < 0 || index >= len(s.Items) {
		return PlottedItem{}, false
	}
	return s.Items[index], true
}

// HitTest returns the topmost item whose box contains (x, y).
//
// Later items are drawn above earlier ones.
func (s ItemSet) HitTest(x, y float64) (PlottedItem, bool) {
	for i := len(s.Items) - 1; i >= 0; i-- {
		if s.Items[i].Box.Contains(x, y) {
			return s.Items[i], true
		}
	}
	return PlottedItem{}, false
}

package timeline

import "github.com/lixenwraith/stepweave/chart"

type cursorState uint8

const (
	cursorValid cursorState = iota
	cursorBeforeFirst
	cursorAfterLast
)

// Cursor is a bidirectional position in an index. It is a value: copying (or
// Clone) yields an independent cursor, which is how concurrent scans over the
// same index stay isolated. A cursor re-seeks on every step, so it tolerates
// index mutation between steps; it never mutates the index itself.
//
// The sentinel states matter: a cursor positioned before the first event
// still reaches the whole index through Next, and one past the last event
// reaches it through Prev.
type Cursor struct {
	ix    *Index
	ev    chart.Event
	state cursorState
}

// CursorLE returns a cursor at the last event with row ≤ row, or a
// before-first cursor when no such event exists
func (ix *Index) CursorLE(row int) Cursor {
	c := Cursor{ix: ix, state: cursorBeforeFirst}
	ix.tree.DescendLessOrEqual(rowCeil(row), func(ev chart.Event) bool {
		c.ev, c.state = ev, cursorValid
		return false
	})
	return c
}

// CursorGE returns a cursor at the first event with row ≥ row, or an
// after-last cursor when no such event exists
func (ix *Index) CursorGE(row int) Cursor {
	c := Cursor{ix: ix, state: cursorAfterLast}
	ix.tree.AscendGreaterOrEqual(rowFloor(row), func(ev chart.Event) bool {
		c.ev, c.state = ev, cursorValid
		return false
	})
	return c
}

// Clone returns an independent cursor at the same position
func (c Cursor) Clone() Cursor {
	return c
}

// Valid reports whether the cursor rests on an event
func (c Cursor) Valid() bool {
	return c.state == cursorValid
}

// Event returns the event under the cursor; only meaningful while Valid
func (c Cursor) Event() chart.Event {
	return c.ev
}

// Next advances to the following event in canonical order. Returns false and
// parks after the last event when exhausted.
func (c *Cursor) Next() bool {
	switch c.state {
	case cursorAfterLast:
		return false
	case cursorBeforeFirst:
		if min, ok := c.ix.tree.Min(); ok {
			c.ev, c.state = min, cursorValid
			return true
		}
		c.state = cursorAfterLast
		return false
	}

	var next chart.Event
	found := false
	c.ix.tree.AscendGreaterOrEqual(c.ev, func(ev chart.Event) bool {
		if chart.SameSpot(ev, c.ev) {
			return true // skip current position
		}
		next, found = ev, true
		return false
	})
	if !found {
		c.state = cursorAfterLast
		return false
	}
	c.ev = next
	return true
}

// Prev retreats to the preceding event in canonical order. Returns false and
// parks before the first event when exhausted.
func (c *Cursor) Prev() bool {
	switch c.state {
	case cursorBeforeFirst:
		return false
	case cursorAfterLast:
		if max, ok := c.ix.tree.Max(); ok {
			c.ev, c.state = max, cursorValid
			return true
		}
		c.state = cursorBeforeFirst
		return false
	}

	var prev chart.Event
	found := false
	c.ix.tree.DescendLessOrEqual(c.ev, func(ev chart.Event) bool {
		if chart.SameSpot(ev, c.ev) {
			return true // skip current position
		}
		prev, found = ev, true
		return false
	})
	if !found {
		c.state = cursorBeforeFirst
		return false
	}
	c.ev = prev
	return true
}

package entry

// Direction selects the neighbour to move focus to.
type Direction int

const (
	Prev Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// BumpDirection selects whether a bump increments or decrements.
type BumpDirection int

const (
	Incr BumpDirection = iota
	Decr
)

func (d BumpDirection) delta() int {
	if d == Decr {
		return -1
	}
	return 1
}

func (d BumpDirection) String() string {
	if d == Decr {
		return "decr"
	}
	return "incr"
}

// Action is a mutation of a single entry.
type Action interface {
	isEntryAction()
}

// ToggleCollapse flips the collapsed flag.
type ToggleCollapse struct{}

// Bump adjusts the focused row value, or the entry counter when no row is
// focused.
type Bump struct {
	Dir BumpDirection
}

func (ToggleCollapse) isEntryAction() {}
func (Bump) isEntryAction()           {}

// Apply returns the entry after applying action with the given inner focus.
func (e Entry) Apply(action Action, point Point) Widget {
	return e.apply(action, point)
}

func (e Entry) apply(action Action, point Point) Entry {
	switch a := action.(type) {
	case ToggleCollapse:
		e.Collapsed = !e.Collapsed
		return e
	case Bump:
		if row, ok := e.rowAt(point); ok {
			e = e.clone()
			e.Rows[row].Value += a.Dir.delta()
			return e
		}
		e.Counter += a.Dir.delta()
		return e
	}
	return e
}

func (e Entry) rowAt(point Point) (int, bool) {
	row, ok := point.RowIndex()
	if !ok || row >= len(e.Rows) {
		return 0, false
	}
	return row, true
}

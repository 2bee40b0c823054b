package entry

// Point is an optional inner focus location. The zero value means no point.
type Point struct {
	Row   int  `yaml:"row"`
	Valid bool `yaml:"valid"`
}

// At returns the point addressing row.
func At(row int) Point {
	return Point{Row: row, Valid: true}
}

// RowIndex returns the addressed row when the point is set.
func (p Point) RowIndex() (int, bool) {
	if !p.Valid || p.Row < 0 {
		return 0, false
	}
	return p.Row, true
}

// MoveFocus computes the next inner focus point from point in direction dir.
// Collapsed entries expose no points. Stepping past either end drops the
// inner focus.
func (e Entry) MoveFocus(point Point, dir Direction) Point {
	n := len(e.Rows)
	if e.Collapsed || n == 0 {
		return Point{}
	}
	row, ok := point.RowIndex()
	if !ok || row >= n {
		if dir == Next {
			return At(0)
		}
		return At(n - 1)
	}
	if dir == Next {
		row++
	} else {
		row--
	}
	if row < 0 || row >= n {
		return Point{}
	}
	return At(row)
}

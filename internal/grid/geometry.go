package grid

import "iter"

type Position struct {
	Row int
	Col int
}

// Rect is a half-open rectangle of cells: rows [Row0, Row1), cols [Col0, Col1).
type Rect struct {
	Row0 int
	Row1 int
	Col0 int
	Col1 int
}

func (r Rect) Empty() bool {
	return r.Row0 >= r.Row1 || r.Col0 >= r.Col1
}

func (r Rect) Contains(p Position) bool {
	return p.Row >= r.Row0 && p.Row < r.Row1 && p.Col >= r.Col0 && p.Col < r.Col1
}

func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return (r.Row1 - r.Row0) * (r.Col1 - r.Col0)
}

// Geometry maps between cell positions and row-major indices.
type Geometry struct {
	Rows int
	Cols int
}

func (g Geometry) Len() int {
	return g.Rows * g.Cols
}

func (g Geometry) Index(row, col int) int {
	return row*g.Cols + col
}

func (g Geometry) Position(index int) Position {
	return Position{Row: index / g.Cols, Col: index % g.Cols}
}

func (g Geometry) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

func (g Geometry) Bounds() Rect {
	return Rect{Row0: 0, Row1: g.Rows, Col0: 0, Col1: g.Cols}
}

// Clip intersects r with the grid bounds.
func (g Geometry) Clip(r Rect) Rect {
	r.Row0 = max(r.Row0, 0)
	r.Col0 = max(r.Col0, 0)
	r.Row1 = min(r.Row1, g.Rows)
	r.Col1 = min(r.Col1, g.Cols)
	if r.Empty() {
		return Rect{}
	}
	return r
}

// Cells yields every position of r inside the grid, row by row.
func (g Geometry) Cells(r Rect) iter.Seq[Position] {
	r = g.Clip(r)
	return func(yield func(Position) bool) {
		for row := r.Row0; row < r.Row1; row++ {
			for col := r.Col0; col < r.Col1; col++ {
				if !yield(Position{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

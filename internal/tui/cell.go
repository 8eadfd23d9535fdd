package tui

import "fmt"

// Cell is the render handle of one grid item.
type Cell struct {
	Label  string
	Width  int
	Height int

	ready    bool
	selected bool
}

func (c *Cell) Ready() bool    { return c.ready }
func (c *Cell) Selected() bool { return c.selected }

// NewCells builds rows*cols demo cells in row-major order. Widths vary by
// column and heights by row so that scroll offsets depend on real extents.
func NewCells(rows, cols, width, height int) []*Cell {
	cells := make([]*Cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, &Cell{
				Label:  fmt.Sprintf("%d,%d", r, c),
				Width:  width + (c%3)*2,
				Height: height + r%2,
			})
		}
	}
	return cells
}

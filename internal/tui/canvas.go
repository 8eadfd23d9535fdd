package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/kecap/internal/grid"
	"github.com/nicobailon/kecap/internal/tui/theme"
)

// canvas is the terminal rendering collaborator of the grid manager. It lays
// every cell out on one large surface and shows a scrolled window of it.
type canvas struct {
	rows, cols int
	gap        int
	cells      []*Cell
	colWidths  []int
	rowHeights []int
	selected   lipgloss.Style

	xOffset int
	yOffset int

	materialized int
	scrolls      int
}

func newCanvas(rows, cols, gap int, cells []*Cell, selectedClass string) *canvas {
	c := &canvas{
		rows:       rows,
		cols:       cols,
		gap:        gap,
		cells:      cells,
		colWidths:  make([]int, cols),
		rowHeights: make([]int, rows),
		selected:   theme.SelectedStyle(selectedClass),
	}
	for col := 0; col < cols; col++ {
		c.colWidths[col] = cells[col].Width
	}
	for row := 0; row < rows; row++ {
		c.rowHeights[row] = cells[row*cols].Height
	}
	return c
}

func (c *canvas) Measure(it *grid.Item[*Cell]) grid.Extent {
	left := 0
	for col := 0; col < it.Col(); col++ {
		left += c.colWidths[col] + c.gap
	}
	top := 0
	for row := 0; row < it.Row(); row++ {
		top += c.rowHeights[row] + c.gap
	}
	return grid.Extent{
		Width:      c.colWidths[it.Col()],
		Height:     c.rowHeights[it.Row()],
		OffsetLeft: left,
		OffsetTop:  top,
	}
}

func (c *canvas) Materialize(it *grid.Item[*Cell]) {
	if !it.Handle().ready {
		c.materialized++
	}
	it.Handle().ready = true
}

func (c *canvas) Dematerialize(it *grid.Item[*Cell]) {
	if it.Handle().ready {
		c.materialized--
	}
	it.Handle().ready = false
}

func (c *canvas) SetSelected(it *grid.Item[*Cell], selected bool) {
	it.Handle().selected = selected
}

func (c *canvas) ScrollTo(offset int, axis grid.Axis) {
	c.scrolls++
	if axis == grid.AxisX {
		c.xOffset = offset
		return
	}
	c.yOffset = offset
}

// surfaceSize is the visible area: the widest column and tallest row times
// the viewport counts, plus the gaps between them.
func (c *canvas) surfaceSize(viewportRows, viewportCols int) (int, int) {
	maxW, maxH := 0, 0
	for _, w := range c.colWidths {
		maxW = max(maxW, w)
	}
	for _, h := range c.rowHeights {
		maxH = max(maxH, h)
	}
	return maxW*viewportCols + c.gap*(viewportCols-1),
		maxH*viewportRows + c.gap*(viewportRows-1)
}

func (c *canvas) renderCell(cell *Cell) string {
	if !cell.ready {
		return lipgloss.NewStyle().Width(cell.Width).Height(cell.Height).Render("")
	}
	style := theme.CellStyle
	if cell.selected {
		style = c.selected
	}
	// the border takes one column and one line on each side
	return style.Width(cell.Width - 2).Height(cell.Height - 2).Render(cell.Label)
}

// lines renders the whole surface, one string per terminal line.
func (c *canvas) lines() []string {
	var out []string
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			for i := 0; i < c.gap; i++ {
				out = append(out, "")
			}
		}
		blocks := make([]string, 0, 2*c.cols)
		for col := 0; col < c.cols; col++ {
			if col > 0 && c.gap > 0 {
				blocks = append(blocks, strings.Repeat(" ", c.gap))
			}
			blocks = append(blocks, c.renderCell(c.cells[row*c.cols+col]))
		}
		out = append(out, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")...)
	}
	return out
}

// View returns the scrolled window of the surface. Horizontal scrolling cuts
// each line; vertical scrolling goes through vp.
func (c *canvas) View(vp viewport.Model) string {
	lines := c.lines()
	for i, line := range lines {
		lines[i] = ansi.Cut(line, c.xOffset, c.xOffset+vp.Width)
	}
	vp.SetContent(strings.Join(lines, "\n"))
	vp.SetYOffset(c.yOffset)
	return vp.View()
}

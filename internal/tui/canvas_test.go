package tui

import (
	"testing"

	"github.com/nicobailon/kecap/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCells(t *testing.T) {
	cells := NewCells(2, 4, 10, 3)
	require.Len(t, cells, 8)
	assert.Equal(t, "1,2", cells[6].Label)
	assert.Equal(t, []int{10, 12, 14, 10}, []int{cells[0].Width, cells[1].Width, cells[2].Width, cells[3].Width})
	assert.Equal(t, 3, cells[0].Height)
	assert.Equal(t, 4, cells[4].Height)
}

func TestCanvasMeasure(t *testing.T) {
	cells := NewCells(3, 3, 10, 3)
	cv := newCanvas(3, 3, 1, cells, "focus")

	opts := grid.Options{ItemRows: 3, ItemCols: 3, ViewportRows: 2, ViewportCols: 2, Gap: 1}
	mgr, err := grid.New(opts, cells)
	require.NoError(t, err)

	e := cv.Measure(mgr.Item(2, 2))
	assert.Equal(t, grid.Extent{Width: 14, Height: 3, OffsetLeft: 10 + 1 + 12 + 1, OffsetTop: 3 + 1 + 4 + 1}, e)

	w, h := cv.surfaceSize(2, 2)
	assert.Equal(t, 14*2+1, w)
	assert.Equal(t, 4*2+1, h)
}

func TestCanvasTracksMaterialization(t *testing.T) {
	cells := NewCells(4, 4, 8, 3)
	cv := newCanvas(4, 4, 0, cells, "select")
	mgr, err := grid.New(grid.Options{ItemRows: 4, ItemCols: 4, ViewportRows: 2, ViewportCols: 2}, cells)
	require.NoError(t, err)
	require.NoError(t, mgr.Attach(cv, nil))

	assert.Equal(t, 4, cv.materialized)
	assert.True(t, cells[0].Ready())
	assert.False(t, cells[2].Ready())

	mgr.SelectRight()
	mgr.SelectRight()
	assert.Equal(t, 4, cv.materialized)
	assert.False(t, cells[0].Ready())
	assert.True(t, cells[2].Ready())
	assert.Equal(t, 8+10, cv.xOffset)
}

func TestKeySource(t *testing.T) {
	src := newKeySource()
	var a, b []grid.Direction
	cancelA := src.Subscribe(func(d grid.Direction) { a = append(a, d) })
	src.Subscribe(func(d grid.Direction) { b = append(b, d) })
	assert.Equal(t, 2, src.Subscribers())

	src.dispatch(grid.Up)
	cancelA()
	cancelA()
	src.dispatch(grid.Down)

	assert.Equal(t, []grid.Direction{grid.Up}, a)
	assert.Equal(t, []grid.Direction{grid.Up, grid.Down}, b)
	assert.Equal(t, 1, src.Subscribers())
}

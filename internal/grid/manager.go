package grid

import (
	"fmt"
	"iter"
)

// Manager owns the items of one grid, the selection cursor and the viewport
// origin. It is driven synchronously and is not safe for concurrent use.
type Manager[T any] struct {
	opts   Options
	geom   Geometry
	policy scrollPolicy
	items  []*Item[T]

	cursor Position
	view   Position
	window Rect

	r        Renderer[T]
	attached bool
	cancel   func()
}

// New builds a manager over handles laid out row-major. The handle count
// must equal opts.ItemRows*opts.ItemCols.
func New[T any](opts Options, handles []T) (*Manager[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	policy, err := policyFor(opts.Strategy)
	if err != nil {
		return nil, err
	}
	geom := opts.geometry()
	if len(handles) != geom.Len() {
		return nil, fmt.Errorf("%w: got %d, want %d (%dx%d)",
			ErrItemCount, len(handles), geom.Len(), geom.Rows, geom.Cols)
	}

	m := &Manager[T]{
		opts:   opts,
		geom:   geom,
		policy: policy,
		items:  make([]*Item[T], len(handles)),
		r:      nopRenderer[T]{},
	}
	for i, h := range handles {
		m.items[i] = &Item[T]{pos: geom.Position(i), handle: h}
	}
	m.items[0].selected = true
	m.applyWindow()
	return m, nil
}

func (m *Manager[T]) Options() Options     { return m.opts }
func (m *Manager[T]) Geometry() Geometry   { return m.geom }
func (m *Manager[T]) Cursor() Position     { return m.cursor }
func (m *Manager[T]) ViewOrigin() Position { return m.view }
func (m *Manager[T]) Window() Rect         { return m.window }
func (m *Manager[T]) Attached() bool       { return m.attached }

func (m *Manager[T]) SelectedItem() *Item[T] {
	return m.itemAt(m.cursor)
}

// Item returns the item at (row, col), or nil outside the grid.
func (m *Manager[T]) Item(row, col int) *Item[T] {
	if !m.geom.InBounds(row, col) {
		return nil
	}
	return m.items[m.geom.Index(row, col)]
}

// CellsInRect yields the items inside the half-open rectangle
// [r0, r1) x [c0, c1), clipped to the grid.
func (m *Manager[T]) CellsInRect(r0, r1, c0, c1 int) iter.Seq[*Item[T]] {
	cells := m.geom.Cells(Rect{Row0: r0, Row1: r1, Col0: c0, Col1: c1})
	return func(yield func(*Item[T]) bool) {
		for p := range cells {
			if !yield(m.itemAt(p)) {
				return
			}
		}
	}
}

// Materialized returns the positions of all materialized items, row-major.
func (m *Manager[T]) Materialized() []Position {
	var out []Position
	for _, it := range m.items {
		if it.materialized {
			out = append(out, it.pos)
		}
	}
	return out
}

// Attach binds a renderer, replays the current state to it and subscribes
// to in, if non-nil. Directions from in are applied in delivery order.
func (m *Manager[T]) Attach(r Renderer[T], in InputSource) error {
	if m.attached {
		return ErrAttached
	}
	m.r = r
	m.attached = true

	for it := range m.CellsInRect(m.window.Row0, m.window.Row1, m.window.Col0, m.window.Col1) {
		m.materialize(it)
	}
	m.r.SetSelected(m.SelectedItem(), true)
	if m.view.Col > 0 {
		m.r.ScrollTo(m.scrollOffset(AxisX), AxisX)
	}
	if m.view.Row > 0 {
		m.r.ScrollTo(m.scrollOffset(AxisY), AxisY)
	}

	if in != nil {
		m.cancel = in.Subscribe(m.handleInput)
	}
	return nil
}

// Detach releases the input subscription and unbinds the renderer. Logical
// state is kept; calling Detach twice is harmless.
func (m *Manager[T]) Detach() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.r = nopRenderer[T]{}
	m.attached = false
}

func (m *Manager[T]) handleInput(d Direction) {
	// directions outside the four known ones are dropped
	_, _ = m.Move(d)
}

func (m *Manager[T]) SelectAbove() bool { return m.selectToward(Up) }
func (m *Manager[T]) SelectBelow() bool { return m.selectToward(Down) }
func (m *Manager[T]) SelectLeft() bool  { return m.selectToward(Left) }
func (m *Manager[T]) SelectRight() bool { return m.selectToward(Right) }

func (m *Manager[T]) selectToward(d Direction) bool {
	moved, _ := m.Move(d)
	return moved
}

// Move advances the cursor one cell in direction d. A move that would leave
// the grid changes nothing, emits nothing and reports false.
func (m *Manager[T]) Move(d Direction) (bool, error) {
	axis, step, err := d.Step()
	if err != nil {
		return false, err
	}
	next := m.cursor
	if axis == AxisY {
		next.Row += step
	} else {
		next.Col += step
	}
	if !m.geom.InBounds(next.Row, next.Col) {
		return false, nil
	}

	prev := m.itemAt(m.cursor)
	prev.selected = false
	m.r.SetSelected(prev, false)
	m.cursor = next
	cur := m.itemAt(next)
	cur.selected = true
	m.r.SetSelected(cur, true)

	if m.shift(axis, step) && m.attached {
		m.r.ScrollTo(m.scrollOffset(axis), axis)
	}
	m.applyWindow()
	return true, nil
}

func (m *Manager[T]) axis(a Axis) axisState {
	if a == AxisY {
		return axisState{cursor: m.cursor.Row, view: m.view.Row, viewport: m.opts.ViewportRows, items: m.opts.ItemRows}
	}
	return axisState{cursor: m.cursor.Col, view: m.view.Col, viewport: m.opts.ViewportCols, items: m.opts.ItemCols}
}

// shift moves the viewport origin by step along a when the policy asks for
// it and reports whether the origin changed.
func (m *Manager[T]) shift(a Axis, step int) bool {
	st := m.axis(a)
	if !m.policy(st, step) {
		return false
	}
	v := clamp(st.view+step, 0, st.items-st.viewport)
	if v == st.view {
		return false
	}
	if a == AxisY {
		m.view.Row = v
	} else {
		m.view.Col = v
	}
	return true
}

// scrollOffset sums the extents of the items before the viewport origin
// along a, plus one gap per item.
func (m *Manager[T]) scrollOffset(a Axis) int {
	offset := 0
	if a == AxisX {
		for col := 0; col < m.view.Col; col++ {
			offset += m.extentOf(m.items[m.geom.Index(m.view.Row, col)]).Width + m.opts.Gap
		}
		return offset
	}
	for row := 0; row < m.view.Row; row++ {
		offset += m.extentOf(m.items[m.geom.Index(row, m.view.Col)]).Height + m.opts.Gap
	}
	return offset
}

func (m *Manager[T]) extentOf(it *Item[T]) Extent {
	if !it.measured && m.attached {
		it.extent = m.r.Measure(it)
		it.measured = true
	}
	return it.extent
}

func (m *Manager[T]) applyWindow() {
	next := MaterializationWindow(m.view, m.opts.ViewportRows, m.opts.ViewportCols, m.opts.Preload, m.geom)
	d := WindowDelta(m.window, next, m.geom)
	m.window = next
	for _, p := range d.Dematerialize {
		it := m.itemAt(p)
		it.materialized = false
		m.r.Dematerialize(it)
	}
	for _, p := range d.Materialize {
		m.materialize(m.itemAt(p))
	}
}

func (m *Manager[T]) materialize(it *Item[T]) {
	it.materialized = true
	m.r.Materialize(it)
	m.extentOf(it)
}

func (m *Manager[T]) itemAt(p Position) *Item[T] {
	return m.items[m.geom.Index(p.Row, p.Col)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

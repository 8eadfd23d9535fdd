package grid

// MaterializationWindow returns the viewport rectangle at view, grown by
// preload cells on every side and clipped to the grid.
func MaterializationWindow(view Position, viewportRows, viewportCols, preload int, g Geometry) Rect {
	return g.Clip(Rect{
		Row0: view.Row - preload,
		Row1: view.Row + viewportRows + preload,
		Col0: view.Col - preload,
		Col1: view.Col + viewportCols + preload,
	})
}

// Delta is the set of cells entering and leaving the materialized window.
type Delta struct {
	Materialize   []Position
	Dematerialize []Position
}

func (d Delta) Empty() bool {
	return len(d.Materialize) == 0 && len(d.Dematerialize) == 0
}

// WindowDelta lists next \ prev and prev \ next, each in row-major order.
func WindowDelta(prev, next Rect, g Geometry) Delta {
	var d Delta
	for p := range g.Cells(next) {
		if !prev.Contains(p) {
			d.Materialize = append(d.Materialize, p)
		}
	}
	for p := range g.Cells(prev) {
		if !next.Contains(p) {
			d.Dematerialize = append(d.Dematerialize, p)
		}
	}
	return d
}

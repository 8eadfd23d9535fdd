package grid

// Extent is the layout box of a rendered item, in renderer units.
type Extent struct {
	Width      int
	Height     int
	OffsetLeft int
	OffsetTop  int
}

// Item is one logical cell of the grid. Items live as long as their manager;
// leaving the window only dematerializes them.
type Item[T any] struct {
	pos          Position
	handle       T
	materialized bool
	selected     bool

	extent   Extent
	measured bool
}

func (it *Item[T]) Position() Position { return it.pos }
func (it *Item[T]) Row() int           { return it.pos.Row }
func (it *Item[T]) Col() int           { return it.pos.Col }
func (it *Item[T]) Handle() T          { return it.handle }
func (it *Item[T]) Materialized() bool { return it.materialized }
func (it *Item[T]) Selected() bool     { return it.selected }

// Extent returns the last measured extent and whether one was taken.
func (it *Item[T]) Extent() (Extent, bool) {
	return it.extent, it.measured
}

// Renderer is the collaborator that owns the visual side of items.
// Materialize and Dematerialize must be idempotent and tolerate any order
// across distinct items. ScrollTo is fire-and-forget.
type Renderer[T any] interface {
	Measure(it *Item[T]) Extent
	Materialize(it *Item[T])
	Dematerialize(it *Item[T])
	SetSelected(it *Item[T], selected bool)
	ScrollTo(offset int, axis Axis)
}

// InputSource delivers directional commands. The returned cancel function
// ends the subscription.
type InputSource interface {
	Subscribe(handler func(Direction)) (cancel func())
}

type nopRenderer[T any] struct{}

func (nopRenderer[T]) Measure(*Item[T]) Extent    { return Extent{} }
func (nopRenderer[T]) Materialize(*Item[T])       {}
func (nopRenderer[T]) Dematerialize(*Item[T])     {}
func (nopRenderer[T]) SetSelected(*Item[T], bool) {}
func (nopRenderer[T]) ScrollTo(int, Axis)         {}

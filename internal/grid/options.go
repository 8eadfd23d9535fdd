package grid

import "fmt"

const (
	DefaultPreload      = 1
	DefaultItemRows     = 5
	DefaultItemCols     = 5
	DefaultViewportRows = 3
	DefaultViewportCols = 3
)

// Options is the construction-time configuration of a Manager. It is copied
// on construction and never changes afterwards.
type Options struct {
	// Preload is the number of extra rows and columns materialized on each
	// side of the viewport.
	Preload      int
	ItemRows     int
	ItemCols     int
	ViewportRows int
	ViewportCols int
	// Gap is the spacing between adjacent items, added to scroll offsets.
	Gap      int
	Strategy Strategy
}

func DefaultOptions() Options {
	return Options{
		Preload:      DefaultPreload,
		ItemRows:     DefaultItemRows,
		ItemCols:     DefaultItemCols,
		ViewportRows: DefaultViewportRows,
		ViewportCols: DefaultViewportCols,
		Strategy:     Eager,
	}
}

func (o Options) Validate() error {
	if o.ItemRows <= 0 || o.ItemCols <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidSize, o.ItemRows, o.ItemCols)
	}
	if o.ViewportRows <= 0 || o.ViewportCols <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidSize, o.ViewportRows, o.ViewportCols)
	}
	if o.Preload < 0 || o.Gap < 0 {
		return fmt.Errorf("%w: preload %d, gap %d", ErrInvalidSize, o.Preload, o.Gap)
	}
	if o.ViewportRows > o.ItemRows || o.ViewportCols > o.ItemCols {
		return fmt.Errorf("%w: viewport %dx%d, grid %dx%d", ErrViewportTooLarge,
			o.ViewportRows, o.ViewportCols, o.ItemRows, o.ItemCols)
	}
	if _, err := policyFor(o.Strategy); err != nil {
		return err
	}
	return nil
}

func (o Options) geometry() Geometry {
	return Geometry{Rows: o.ItemRows, Cols: o.ItemCols}
}

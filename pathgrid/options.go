package pathgrid

// Option configures a Search via functional arguments.
type Option func(*SearchOptions)

// SearchOptions holds the observer hooks and flags for one Search.
type SearchOptions struct {
	// OnOpen is called when a cell is placed on the frontier (never for start).
	OnOpen func(at Coord)

	// OnClose is called after a cell other than start has been expanded.
	OnClose func(at Coord)

	// MarkVisits makes Search write Open/Closed into the grid's cells.
	MarkVisits bool

	// ResetVisits clears every cell's visit state before the search starts.
	ResetVisits bool
}

// DefaultOptions returns SearchOptions with no-op hooks and no visit marking.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		OnOpen:  func(Coord) {},
		OnClose: func(Coord) {},
	}
}

// WithOnOpen registers a callback fired when a cell joins the frontier.
func WithOnOpen(fn func(at Coord)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}

// WithOnClose registers a callback fired when a non-start cell is expanded.
func WithOnClose(fn func(at Coord)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnClose = fn
		}
	}
}

// WithVisitMarking makes Search tag cells Open and Closed as it runs.
func WithVisitMarking() Option {
	return func(o *SearchOptions) {
		o.MarkVisits = true
	}
}

// WithResetVisits clears visit states before searching.
func WithResetVisits() Option {
	return func(o *SearchOptions) {
		o.ResetVisits = true
	}
}

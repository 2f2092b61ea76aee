package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/pathgrid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *pathgrid.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrSourceOutOfBounds indicates the source lies outside the grid.
	ErrSourceOutOfBounds = fmt.Errorf("dijkstra: source %w", pathgrid.ErrOutOfBounds)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates PathTo could not reach the destination.
	ErrNoPath = errors.New("dijkstra: destination not reached from source")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source     : starting cell; must be set and inside the grid.
// ReturnPath : if true, return the predecessor map; otherwise prev is nil.
// MaxDistance: cells farther than this are not expanded. Default +Inf.
type Options struct {
	Source      pathgrid.Coord
	HasSource   bool
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell.
func Source(c pathgrid.Coord) Option {
	return func(o *Options) {
		o.Source = c
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; a negative value panics with
// ErrBadMaxDistance when Dijkstra applies the option.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no predecessor map and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}

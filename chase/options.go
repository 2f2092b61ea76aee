package chase

import (
	"log/slog"

	"github.com/katalvlaran/gridpath/metrics"
)

// Options configures a Session.
type Options struct {
	// StrictRepair rebuilds all adjacency after a toggle that opens a cell.
	StrictRepair bool

	// MarkVisits makes every enemy search reset and then mark visit states.
	MarkVisits bool

	// Recorder receives search, toggle and rebuild observations. May be nil.
	Recorder *metrics.Recorder

	// Logger receives one debug record per turn.
	Logger *slog.Logger
}

// Option is a functional option for NewSession.
type Option func(*Options)

// WithStrictRepair enables a full rebuild after each opening toggle.
func WithStrictRepair() Option {
	return func(o *Options) {
		o.StrictRepair = true
	}
}

// WithVisitMarking leaves the enemy's last search visible in the grid's
// visit states.
func WithVisitMarking() Option {
	return func(o *Options) {
		o.MarkVisits = true
	}
}

// WithRecorder attaches Prometheus instrumentation.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns incremental repair, no instrumentation and a logger
// that discards everything.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
	}
}

package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrNoGatherer indicates the Recorder was registered on a Registerer that
// cannot be gathered from.
var ErrNoGatherer = errors.New("metrics: registry cannot be gathered")

// WriteTextfile writes the current metric values to path in the text
// exposition format, for the node_exporter textfile collector. A nil
// Recorder writes nothing.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if r.gatherer == nil {
		return ErrNoGatherer
	}
	if err := prometheus.WriteToTextfile(path, r.gatherer); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}

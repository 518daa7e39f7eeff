package logging

import (
	"io"
	"sync/atomic"

	"go.uber.org/multierr"
)

// teeWriter copies every log line to all of its sinks. A line counts as
// written when at least one sink took all of it, so a full disk does not
// make logrus drop output that stdout could still show.
type teeWriter struct {
	sinks  []io.Writer
	failed atomic.Uint64
}

func newTeeWriter(sinks ...io.Writer) *teeWriter {
	return &teeWriter{sinks: sinks}
}

func (t *teeWriter) Write(p []byte) (int, error) {
	var errs error
	delivered := false
	for _, sink := range t.sinks {
		n, err := sink.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			t.failed.Add(1)
			errs = multierr.Append(errs, err)
			continue
		}
		delivered = true
	}
	if delivered {
		return len(p), nil
	}
	return 0, errs
}

// Failures reports how many sink writes failed since start.
func (t *teeWriter) Failures() uint64 {
	return t.failed.Load()
}

package syncunit

import (
	"github.com/2beens/motivly/internal/store"

	log "github.com/sirupsen/logrus"
)

type Outcome int

const (
	// OutcomeEmpty means the routine should apply an empty result with no message.
	OutcomeEmpty Outcome = iota
	// OutcomeFailed means a message was set and prior state must be kept.
	OutcomeFailed
)

// HandleLoadError applies the load error policy: a missing relation or an unreachable
// backend reads as no data, anything else sets msg.
func (b *Base) HandleLoadError(op string, err error, msg string) Outcome {
	kind := store.KindOf(err)
	b.countError(op, kind)

	switch kind {
	case store.KindAbsentSchema:
		log.Debugf("[%s] %s: schema not migrated yet: %s", b.name, op, err)
		return OutcomeEmpty
	case store.KindNetwork:
		log.Debugf("[%s] %s: backend unreachable: %s", b.name, op, err)
		return OutcomeEmpty
	case store.KindNotFound:
		return OutcomeEmpty
	default:
		log.Errorf("[%s] %s: %s", b.name, op, err)
		b.setError(msg)
		return OutcomeFailed
	}
}

// HandleSaveError always surfaces msg. Network failures are kept out of the error log.
func (b *Base) HandleSaveError(op string, err error, msg string) {
	kind := store.KindOf(err)
	b.countError(op, kind)

	if kind == store.KindNetwork {
		log.Debugf("[%s] %s: backend unreachable: %s", b.name, op, err)
	} else {
		log.Errorf("[%s] %s: %s", b.name, op, err)
	}
	b.setError(msg)
}

func (b *Base) countError(op string, kind store.Kind) {
	if b.metrics == nil {
		return
	}
	b.metrics.CounterUnitErrors.WithLabelValues(b.name, op, kind.String()).Inc()
}

// HandleQueryError applies the load policy to one-shot queries that do not touch unit
// state. It returns nil when the failure reads as no data.
func (b *Base) HandleQueryError(op string, err error) error {
	kind := store.KindOf(err)
	b.countError(op, kind)

	switch kind {
	case store.KindAbsentSchema, store.KindNetwork, store.KindNotFound:
		log.Debugf("[%s] %s: treated as empty: %s", b.name, op, err)
		return nil
	default:
		log.Errorf("[%s] %s: %s", b.name, op, err)
		return err
	}
}

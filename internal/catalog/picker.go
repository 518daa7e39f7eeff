package catalog

import (
	"math/rand"
	"sync"
)

const defaultMaxLevel = 2

type PickOptions struct {
	DurationMinutes int
	Kind            Kind
	MaxLevel        int
}

// Picker draws a random template. It is safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewPicker(rnd *rand.Rand) *Picker {
	return &Picker{rnd: rnd}
}

// Pick returns a uniformly chosen template of the requested duration whose level is
// at most opts.MaxLevel (2 when unset). The kind filter is dropped when no template of
// that kind fits. Pick returns nil when nothing fits.
func (p *Picker) Pick(opts PickOptions) *Template {
	maxLevel := opts.MaxLevel
	if maxLevel <= 0 {
		maxLevel = defaultMaxLevel
	}

	candidates := filter(opts.DurationMinutes, maxLevel, opts.Kind)
	if len(candidates) == 0 && opts.Kind != "" {
		candidates = filter(opts.DurationMinutes, maxLevel, "")
	}
	if len(candidates) == 0 {
		return nil
	}

	p.mu.Lock()
	i := p.rnd.Intn(len(candidates))
	p.mu.Unlock()

	t := candidates[i]
	return &t
}

func filter(duration, maxLevel int, kind Kind) []Template {
	var out []Template
	for _, t := range templates {
		if t.TargetDurationMinutes != duration || t.Level > maxLevel {
			continue
		}
		if kind != "" && t.Kind != kind {
			continue
		}
		out = append(out, t)
	}
	return out
}

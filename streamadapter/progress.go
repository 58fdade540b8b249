package streamadapter

import (
	"golang.org/x/time/rate"
)

// Progress is a best-effort, lossy reporter of cumulative received-byte
// counts, rate-limited so a fast source cannot flood whatever is
// consuming progress updates (a terminal UI, typically). Reports are
// dropped, never queued, when the limiter or the channel is not ready —
// the pipeline must never block on progress.
type Progress struct {
	limiter *rate.Limiter
	updates chan uint64
}

// NewProgress creates a progress reporter that allows at most one update
// per interval (plus one initial burst), delivered on a channel of depth
// buffer.
func NewProgress(eventsPerSecond float64, buffer int) *Progress {
	return &Progress{
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), 1),
		updates: make(chan uint64, buffer),
	}
}

// Report offers a new cumulative received-byte count; it is dropped
// silently if the rate limit hasn't replenished or no one is currently
// receiving.
func (p *Progress) Report(received uint64) {
	if !p.limiter.Allow() {
		return
	}
	select {
	case p.updates <- received:
	default:
	}
}

// Updates returns the channel external progress consumers read from.
func (p *Progress) Updates() <-chan uint64 {
	return p.updates
}

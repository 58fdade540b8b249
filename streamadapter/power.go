package streamadapter

import "sync"

// PowerHandle is scoped ownership over LNB (or other tuner frontend)
// power state: Enable is called once at acquisition, and Release must
// run on every exit path (success, timeout, cancellation, or error).
// Release is idempotent so a deferred call is always safe even after an
// explicit earlier release.
type PowerHandle struct {
	disable func() error
	once    sync.Once
	err     error
}

// NewPowerHandle acquires power by calling enable, and returns a handle
// whose Release will call disable exactly once.
func NewPowerHandle(enable, disable func() error) (*PowerHandle, error) {
	if err := enable(); err != nil {
		return nil, err
	}
	return &PowerHandle{disable: disable}, nil
}

// Release runs the disable callback exactly once, regardless of how many
// times Release is called.
func (h *PowerHandle) Release() error {
	h.once.Do(func() {
		h.err = h.disable()
	})
	return h.err
}

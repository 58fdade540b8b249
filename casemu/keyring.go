package casemu

import "sync"

// WorkingKeyPair is a single ECM working-key generation: the even and odd
// scramble-key-recovery keys delivered together over the EMM channel (or
// supplied directly on the command line for offline decode).
type WorkingKeyPair struct {
	Kw0 uint64
	Kw1 uint64
}

// KeyRegistry is the process-wide, mutex-guarded set of candidate working
// keys a decoder session authenticates ECM payloads against. Multiple
// generations can be registered at once (e.g. while a key rotation is in
// flight); authentication tries each candidate in registration order and
// stops at the first one whose MAC matches, mirroring a multi-provider
// key-derivation fallback chain.
type KeyRegistry struct {
	mu         sync.RWMutex
	candidates []WorkingKeyPair
}

// NewKeyRegistry creates an empty key registry.
func NewKeyRegistry() *KeyRegistry {
	return &KeyRegistry{}
}

// Add registers a new candidate working-key pair. Newly added keys are
// tried after any keys already present, so the most recently superseded
// generation is not preferred over an older still-valid one.
func (r *KeyRegistry) Add(pair WorkingKeyPair) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates = append(r.candidates, pair)
}

// Reset clears every registered candidate.
func (r *KeyRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates = nil
}

// Snapshot returns a copy of the currently registered candidates. Callers
// must take this snapshot and release the registry's lock before running
// any cryptographic trial against it, so a concurrent key update is never
// blocked behind a slow authentication attempt.
func (r *KeyRegistry) Snapshot() []WorkingKeyPair {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]WorkingKeyPair, len(r.candidates))
	copy(out, r.candidates)
	return out
}

// Len reports how many candidates are currently registered.
func (r *KeyRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.candidates)
}

package casemu

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/kazuki0824/recisdb-rs/engine"
)

// DecoderOptions configures a Session. Fields are immutable after
// construction; defaults match the reference implementation's.
type DecoderOptions struct {
	EnableWorkingKey bool `default:"true"`
	RoundCount       int  `default:"4"`
	StripNulls       bool `default:"true"`
	EmmProc          bool `default:"false"`
	Simd             bool `default:"true"`
}

// Session owns an engine instance, an optional software CAS card, and the
// running byte counters for one decode run. Its address is handed to the
// engine (via SetBCasCard on the card it owns) and must not be copied by
// value after construction; always hold and pass *Session.
type Session struct {
	ID      uuid.UUID
	Opts    DecoderOptions
	engine  engine.Engine
	card    *SoftCard
	EmmChan *EmmChannel

	received atomic.Uint64
	emitted  atomic.Uint64
	closed   atomic.Bool
}

// NewSession constructs a session wired to eng, with a fresh SoftCard
// bound to registry and, if opts.EmmProc is set, a buffered EMM channel.
func NewSession(eng engine.Engine, registry *KeyRegistry, opts DecoderOptions) *Session {
	var emmChan *EmmChannel
	if opts.EmmProc {
		emmChan = NewEmmChannel(64)
	}

	card := NewSoftCard(registry, emmChan, opts.EmmProc)

	s := &Session{
		ID:      uuid.New(),
		Opts:    opts,
		engine:  eng,
		card:    card,
		EmmChan: emmChan,
	}

	eng.SetBCasCard(card)
	eng.SetMulti2Round(opts.RoundCount)
	eng.SetStrip(opts.StripNulls)
	eng.SetEmmProc(opts.EmmProc)
	eng.SetSimdMode(opts.Simd)

	return s
}

// Write pushes scrambled bytes into the underlying engine and adds their
// count to the received counter.
func (s *Session) Write(p []byte) (int, error) {
	n, err := s.engine.Put(p)
	s.received.Add(uint64(n))
	return n, err
}

// Read pulls descrambled bytes out of the underlying engine and adds
// their count to the emitted counter.
func (s *Session) Read(p []byte) (int, error) {
	n, err := s.engine.Get(p)
	s.emitted.Add(uint64(n))
	return n, err
}

// Flush flushes the underlying engine.
func (s *Session) Flush() error { return s.engine.Flush() }

// Received returns the cumulative number of bytes written into the
// session so far.
func (s *Session) Received() uint64 { return s.received.Load() }

// Emitted returns the cumulative number of bytes read out of the session
// so far.
func (s *Session) Emitted() uint64 { return s.emitted.Load() }

// Close releases the session's CAS card. Drop order mirrors the data
// model's invariant: the CAS vtable is released before the enclosing
// session is considered gone; the engine itself is owned by the caller
// and is not closed here.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return ErrSessionClosed
	}
	s.card.Release()
	return nil
}

// Package enginetest provides a minimal, non-production Engine used only
// to exercise the CAS vtable wiring and the streaming adapter in tests.
// It performs no TS/PAT/PMT/ECM demultiplexing whatsoever: Put simply
// buffers whatever bytes it is given, and Get drains that buffer back out
// unchanged. It exists to prove call order and backpressure handling, not
// to descramble anything.
package enginetest

import (
	"bytes"

	"github.com/kazuki0824/recisdb-rs/engine"
)

// Passthrough is a fake engine.Engine that echoes Put bytes back out of
// Get, recording every SetXxx call it receives so tests can assert on the
// wiring the rest of the module performs.
type Passthrough struct {
	buf  bytes.Buffer
	Card engine.Card

	MultiC2Round int
	Strip        bool
	EmmProc      bool
	Simd         bool

	FlushCount int
}

// New creates an empty Passthrough engine.
func New() *Passthrough { return &Passthrough{} }

func (p *Passthrough) Put(buf []byte) (int, error) { return p.buf.Write(buf) }

func (p *Passthrough) Get(out []byte) (int, error) {
	if p.buf.Len() == 0 {
		// Nothing buffered yet; this is not EOF, just "no section ready".
		return 0, nil
	}
	return p.buf.Read(out)
}

func (p *Passthrough) Flush() error {
	p.FlushCount++
	return nil
}

func (p *Passthrough) SetBCasCard(card engine.Card) { p.Card = card }
func (p *Passthrough) SetMulti2Round(n int)         { p.MultiC2Round = n }
func (p *Passthrough) SetStrip(enabled bool)        { p.Strip = enabled }
func (p *Passthrough) SetEmmProc(enabled bool)      { p.EmmProc = enabled }
func (p *Passthrough) SetSimdMode(enabled bool)     { p.Simd = enabled }

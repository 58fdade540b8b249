// Package streamadapter couples an async byte source (tuner, file, or
// stdin) to a blocking decoder session and an async sink (file or
// stdout), without losing or reordering a single byte.
//
// # Overview
//
// The adapter is a small cooperative state machine, not a pool of
// goroutines: suspension only happens at the source's fill and the
// sink's write, and between those two points a bounded slice of work is
// always advanced in one poll. Go's blocking io.Reader/io.Writer already
// model this "synchronous middle" directly, so Adapter.Run is an ordinary
// single-goroutine loop — no futures executor is introduced.
//
// The one place true concurrency is required is backpressure on a tuner
// character device whose kernel buffer can overrun if the pipeline
// stalls; Drainer models that as one dedicated goroutine reading into a
// bounded channel of chunks, which the adapter's source side consumes
// through a plain io.Reader wrapper (ChannelSource) so Adapter itself
// never special-cases the tuner.
package streamadapter

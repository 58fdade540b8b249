package main

import (
	"io"
	"time"
)

// copyWithDeadline copies src to dst until EOF, an error, or (if
// deadline is non-zero) the given duration elapses, returning the number
// of bytes copied. Used by "tune --no-decode" to pass a tuned stream
// straight through without wiring a decoder session at all.
func copyWithDeadline(src io.Reader, dst io.Writer, deadline time.Duration) (int64, error) {
	if deadline <= 0 {
		return io.Copy(dst, src)
	}

	type result struct {
		n   int64
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := io.Copy(dst, src)
		done <- result{n, err}
	}()

	select {
	case r := <-done:
		return r.n, r.err
	case <-time.After(deadline):
		return 0, nil
	}
}

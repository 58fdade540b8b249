// Package tuner opens a DVB/ISDB tuner character device and exposes it
// as a byte source suitable for streamadapter, plus scoped LNB power
// control. Frequency tuning and signal-level queries are driven through
// device-specific ioctls that are themselves out of this module's scope
// (the upstream BonDriver/DVB frontend stack); this package only owns the
// read-side backpressure problem and the power-control lifecycle.
package tuner

import (
	"os"
	"time"

	"github.com/kazuki0824/recisdb-rs/streamadapter"
)

// Options configures how a Device is opened.
type Options struct {
	Path             string
	EnableLNBPower   bool
	DrainerChunkSize int
	DrainerQueue     int
}

// Device is an open tuner character device, wrapped with a drainer
// goroutine so a blocking decoder downstream never causes the device's
// small kernel ring buffer to overrun.
type Device struct {
	file    *os.File
	drainer *streamadapter.Drainer
	source  *streamadapter.ChannelSource
	power   *streamadapter.PowerHandle
}

// Source returns the device's byte source for use as a streamadapter
// Adapter.Source.
func (d *Device) Source() *streamadapter.ChannelSource { return d.source }

// Close releases the power handle (if any) and stops the drainer.
func (d *Device) Close() error {
	if d.power != nil {
		_ = d.power.Release()
	}
	if d.drainer != nil {
		_ = d.drainer.Close()
	}
	return d.file.Close()
}

// WaitForSignal polls the device for up to timeout for the first chunk
// of data to arrive, used by the "checksignal" CLI command to report
// whether a tuned channel is actually producing a transport stream.
func (d *Device) WaitForSignal(timeout time.Duration) bool {
	return d.source.WaitTimeout(timeout)
}

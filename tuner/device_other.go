//go:build !linux

package tuner

import "github.com/kazuki0824/recisdb-rs/casemu"

// Open is unimplemented on non-Linux platforms: the character-device
// tuner backend this package wraps is Linux-specific (DVB/ISDB driver
// ioctls), matching the upstream tool's own platform support.
func Open(opts Options) (*Device, error) {
	return nil, casemu.NewTunerError("open", opts.Path, errUnsupportedPlatform)
}

var errUnsupportedPlatform = platformError("tuner character devices are only supported on linux")

type platformError string

func (e platformError) Error() string { return string(e) }

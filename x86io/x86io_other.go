//go:build !linux
// +build !linux

package x86io

import "errors"

var errUnsupported = errors.New("x86io: port I/O is only supported on linux")

// PortBus is an x86 I/O port bus. It is unavailable on this platform.
type PortBus struct{}

// Open always fails on this platform.
func Open() (*PortBus, error) {
	return nil, errUnsupported
}

func (b *PortBus) Out(port uint16, v uint8) {}

func (b *PortBus) In(port uint16) uint8 { return 0 }

func (b *PortBus) Close() error { return errUnsupported }

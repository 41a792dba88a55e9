//go:build linux
// +build linux

package x86io

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PortBus is an x86 I/O port bus. Each In and Out is a single-byte pread/pwrite on /dev/port at the port's offset,
// which the kernel turns into the corresponding inb/outb.
type PortBus struct {
	fd int
}

// Open opens /dev/port for port I/O.
func Open() (*PortBus, error) {
	fd, err := unix.Open("/dev/port", unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("x86io: open /dev/port: %w", err)
	}
	return &PortBus{fd: fd}, nil
}

// Out writes one byte to the given port.
func (b *PortBus) Out(port uint16, v uint8) {
	buf := [1]byte{v}
	// a port write has no way to report a fault; errors on an open descriptor are discarded like a real bus would
	_, _ = unix.Pwrite(b.fd, buf[:], int64(port))
}

// In reads one byte from the given port.
func (b *PortBus) In(port uint16) uint8 {
	var buf [1]byte
	_, _ = unix.Pread(b.fd, buf[:], int64(port))
	return buf[0]
}

func (b *PortBus) Close() error {
	return unix.Close(b.fd)
}

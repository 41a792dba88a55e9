// Package x86io provides a drivers.Bus backed by the Linux /dev/port device, giving privileged userspace processes
// raw access to x86 I/O ports. Reads and writes require root or CAP_SYS_RAWIO.
//
// On other platforms Open fails; inject a fake bus in tests instead.
package x86io

import "github.com/osdevkit/drivers"

var _ drivers.Bus = (*PortBus)(nil)

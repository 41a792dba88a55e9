// Package drivers provides the shared bus abstractions used by the device drivers in this module.
package drivers

// Bus is an x86 I/O port bus. Every call is a genuine external I/O operation executed in program order; an
// implementation must not cache, coalesce, or reorder accesses, because device registers have read and write side
// effects.
//
// In cannot report a fault: a port read always yields a byte, and a missing or wedged device is indistinguishable
// from one returning garbage.
type Bus interface {
	// Out writes one byte to the given port.
	Out(port uint16, v uint8)
	// In reads one byte from the given port.
	In(port uint16) uint8
}

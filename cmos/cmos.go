// Package cmos implements a driver for the MC146818-compatible CMOS Real-Time Clock (RTC) found on PC platforms
// behind I/O ports 0x70/0x71, providing read-only access to the current time. The chip also carries alarm registers
// and general NVRAM, but those remain unimplemented.
//
// Reading is a blocking, best-effort snapshot: the driver waits out in-progress hardware updates and re-samples until
// two consecutive reads agree, so a single Read can in principle block forever on a wedged device. There is no
// validation of the returned values; the hardware is trusted to supply plausible ones.
//
// Datasheet: https://www.nxp.com/docs/en/data-sheet/MC146818.pdf
package cmos

import (
	"sync"

	"github.com/osdevkit/drivers"
)

// DefaultCurrentYear is assumed when Config.CurrentYear is zero.
const DefaultCurrentYear = 2026

type Device struct {
	bus drivers.Bus
	// mu serializes whole reads: the select-then-read port protocol is not atomic, and interleaved selects from two
	// readers would pair one reader's index with the other's data.
	mu          sync.Mutex
	currentYear uint16
	centuryReg  uint8
}

type Config struct {
	// CurrentYear is the best available guess at the present calendar year. It is consulted only when the platform
	// has no century register, to pick the century of the device's two-digit year. Defaults to DefaultCurrentYear.
	CurrentYear uint16
	// CenturyRegister is the platform-specific CMOS index of the century register, as reported by the ACPI FADT.
	// Zero means the platform has none.
	CenturyRegister uint8
}

// New creates a new CMOS RTC driver on the given port bus.
func New(bus drivers.Bus) *Device {
	return &Device{
		bus:         bus,
		currentYear: DefaultCurrentYear,
	}
}

func (d *Device) Configure(c Config) {
	if c.CurrentYear == 0 {
		c.CurrentYear = DefaultCurrentYear
	}

	d.currentYear = c.CurrentYear
	d.centuryReg = c.CenturyRegister
}

// Read returns a single snapshot of the current time, fully decoded. It blocks until the device holds still long
// enough for two consecutive samples to agree, which normally takes two samples; it never gives up, so a device that
// is perpetually mid-update blocks forever. At most one Read runs per Device at a time.
func (d *Device) Read() Time {
	d.mu.Lock()
	defer d.mu.Unlock()

	t := d.sample()
	for {
		last := t
		t = d.sample()
		if t == last {
			break
		}
	}

	statusB := d.readRegister(StatusB)

	if statusB&BinaryMode == 0 {
		t.Second = bcdToDec(t.Second)
		t.Minute = bcdToDec(t.Minute)
		// keep the PM flag out of the BCD arithmetic
		t.Hour = bcdToDec(t.Hour&0x7F) | t.Hour&PMFlag
		t.Day = bcdToDec(t.Day)
		t.Month = bcdToDec(t.Month)
		t.Year = uint16(bcdToDec(uint8(t.Year)))
		if d.centuryReg != 0 {
			t.Century = bcdToDec(t.Century)
		}
	}

	// Convert 12-hour to 24-hour. The modulus folds "12 PM" back to hour 0.
	if statusB&Hours24 == 0 && t.Hour&PMFlag != 0 {
		t.Hour = ((t.Hour & 0x7F) + 12) % 24
	}

	if d.centuryReg == 0 {
		t.Year += (d.currentYear / 100) * 100
		if t.Year < d.currentYear {
			// two-digit year has wrapped past 99 since the configured baseline
			t.Year += 100
		}
	} else {
		t.Year += uint16(t.Century) * 100
	}

	return t
}

// sample waits until no update is in progress and then reads every time register once. The update flag is advisory
// only (a new update may start right after it clears), hence the agreement loop in Read.
func (d *Device) sample() Time {
	for d.updateInProgress() {
	}

	t := Time{
		Second: d.readRegister(Seconds),
		Minute: d.readRegister(Minutes),
		Hour:   d.readRegister(Hours),
		Day:    d.readRegister(Day),
		Month:  d.readRegister(Month),
		Year:   uint16(d.readRegister(Year)),
	}
	if d.centuryReg != 0 {
		t.Century = d.readRegister(d.centuryReg)
	}
	return t
}

func (d *Device) updateInProgress() bool {
	return d.readRegister(StatusA)&UpdateInProgress != 0
}

// readRegister selects a register on the address port and reads its content from the data port.
func (d *Device) readRegister(reg uint8) uint8 {
	d.bus.Out(AddressPort, reg)
	return d.bus.In(DataPort)
}

// bcdToDec converts packed BCD to binary.
func bcdToDec(b uint8) uint8 {
	return (b & 0x0F) + (b>>4)*10
}

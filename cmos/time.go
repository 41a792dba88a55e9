package cmos

import "fmt"

// Time is a wall-clock snapshot as produced by Device.Read. Values are immutable and comparable; each read returns a
// fresh one.
//
// During sampling Year holds the device's raw two-digit year; after decoding it holds the full four-digit year,
// resolved either through the century register or through the configured current year.
type Time struct {
	Second  uint8
	Minute  uint8
	Hour    uint8
	Day     uint8
	Month   uint8
	Year    uint16
	Century uint8
}

// Compare orders two times lexicographically by (century, year, month, day, hour, minute, second), returning -1 if t
// is before u, 0 if they are equal, and +1 if t is after u. The ordering is only meaningful between fully decoded
// times; comparing raw samples is out of contract.
func (t Time) Compare(u Time) int {
	switch {
	case t.Century != u.Century:
		return cmp(uint16(t.Century), uint16(u.Century))
	case t.Year != u.Year:
		return cmp(t.Year, u.Year)
	case t.Month != u.Month:
		return cmp(uint16(t.Month), uint16(u.Month))
	case t.Day != u.Day:
		return cmp(uint16(t.Day), uint16(u.Day))
	case t.Hour != u.Hour:
		return cmp(uint16(t.Hour), uint16(u.Hour))
	case t.Minute != u.Minute:
		return cmp(uint16(t.Minute), uint16(u.Minute))
	case t.Second != u.Second:
		return cmp(uint16(t.Second), uint16(u.Second))
	}
	return 0
}

// Before reports whether t is before u.
func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }

// After reports whether t is after u.
func (t Time) After(u Time) bool { return t.Compare(u) > 0 }

func (t Time) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

func cmp(a, b uint16) int {
	if a < b {
		return -1
	}
	return 1
}

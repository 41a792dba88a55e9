package cmos

const (
	AddressPort = 0x70 // Register select port
	DataPort    = 0x71 // Register data port

	Seconds = 0x00 // Seconds register
	Minutes = 0x02 // Minutes register
	Hours   = 0x04 // Hours register, bit 7 is the PM flag in 12-hour mode
	Day     = 0x07 // Day of month register
	Month   = 0x08 // Month register
	Year    = 0x09 // Year register (last two digits only)
	StatusA = 0x0A // Status register A, carries the update-in-progress flag
	StatusB = 0x0B // Status register B, carries the data format bits

	UpdateInProgress = 0x80 // StatusA: the clock is mid-update and the time registers are transient
	Hours24          = 0x02 // StatusB: hours run 0-23 instead of 1-12 plus PM flag
	BinaryMode       = 0x04 // StatusB: registers hold plain binary instead of packed BCD
	PMFlag           = 0x80 // Hours: PM, only meaningful in 12-hour mode
)

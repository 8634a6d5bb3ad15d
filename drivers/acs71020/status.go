package acs71020

// Status is the flag word of register 0x2D.
type Status uint32

const (
	StatusVZeroCross   Status = 1 << iota // voltage zero crossing
	StatusFaultOut                        // overcurrent, live
	StatusFaultLatched                    // overcurrent, latched until cleared
	StatusOverVoltage                     // OVRMS
	StatusUnderVoltage                    // UVRMS
	StatusPosAngle                        // current lagging
	StatusPosPF                           // power consumed (0: generated)

	statusMask = StatusVZeroCross | StatusFaultOut | StatusFaultLatched |
		StatusOverVoltage | StatusUnderVoltage | StatusPosAngle | StatusPosPF
)

// CustomerAccessCode unlocks customer write access when written to 0x2F.
const CustomerAccessCode uint32 = 0x4F70656E

// UnlockWord is the 0x2F write that enters customer mode.
func UnlockWord() uint32 { return CustomerAccessCode }

func StatusOf(word uint32) Status { return Status(word) & statusMask }

func (s Status) Has(flag Status) bool { return s&flag != 0 }

// Fault reports any live or latched overcurrent or RMS voltage event.
func (s Status) Fault() bool {
	return s.Has(StatusFaultOut | StatusFaultLatched | StatusOverVoltage | StatusUnderVoltage)
}

// ClearFaultLatchedWord is the 0x2D write that resets faultlatched.
func ClearFaultLatchedWord() uint32 { return uint32(StatusFaultLatched) }

// CustomerMode decodes register 0x30.
func CustomerMode(word uint32) bool { return word&1 != 0 }

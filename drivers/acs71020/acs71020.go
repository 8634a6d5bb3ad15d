// Package acs71020 provides a table-driven register codec for the Allegro
// ACS71020 power monitoring IC.
//
// Design notes (datasheet references):
// • 32-bit register words; EEPROM registers 0x0B..0x0F carry a 26-bit
//   payload with a 2-bit EEC status, shadow copies live at 0x1B..0x1F.
// • Volatile registers 0x20..0x30 hold RMS, power, instantaneous codes,
//   status flags and the customer access controls.
// • Field layouts live in one static catalog (registers.go); decode is
//   mask/shift with explicit two's-complement sign extension.
// • Fixed-point fields scale by a caller supplied full scale (Calibration).
// • No bus access: callers move {address, word} pairs to and from the device.
package acs71020

import "acs71020-go/x/conv"

// ---------------- Addresses and banks ----------------

// Address identifies one register of the device.
type Address uint8

func (a Address) String() string {
	var b [4]byte
	b[0], b[1] = '0', 'x'
	conv.U8Hex(b[2:], uint8(a))
	return string(b[:])
}

type Bank uint8

const (
	BankVolatile Bank = iota
	BankEEPROM
	BankShadow
)

func (b Bank) String() string {
	switch b {
	case BankVolatile:
		return "volatile"
	case BankEEPROM:
		return "eeprom"
	case BankShadow:
		return "shadow"
	default:
		return "unknown"
	}
}

type Access uint8

const (
	ReadOnly Access = iota
	ReadWrite
)

func (a Access) String() string {
	if a == ReadWrite {
		return "rw"
	}
	return "r"
}

// ---------------- Units ----------------

// Quantity selects which caller supplied full scale a fixed-point field uses.
type Quantity uint8

const (
	QtyNone    Quantity = iota // plain integer, no transform
	QtyCount                   // LSB counts, scaled by Unit.Scale only
	QtyVoltage                 // × Calibration.VoltageFullScale
	QtyCurrent                 // × Calibration.CurrentFullScale
	QtyPower                   // × voltage full scale × current full scale
	QtyRatio                   // dimensionless fixed point (power factor)
)

// Ratio is a rational multiplier. The zero value means 1/1.
type Ratio struct {
	Num, Den int32
}

func (r Ratio) Float() float64 {
	if r.Num == 0 && r.Den == 0 {
		return 1
	}
	if r.Den == 0 {
		return float64(r.Num)
	}
	return float64(r.Num) / float64(r.Den)
}

// Unit describes the physical transform of a field:
//
//	physical = raw / 2^FracBits × Scale × fullScale(Kind)
type Unit struct {
	FracBits uint8
	Scale    Ratio
	Kind     Quantity
	Symbol   string
}

// ---------------- Fields and registers ----------------

// Field is one named bit-field of a register word.
type Field struct {
	Name   string
	Offset uint8 // bit position of the LSB
	Width  uint8 // 1..32
	Signed bool  // two's complement
	Unit   Unit  // Kind == QtyNone for plain integers
}

// Scaled reports whether the field has a physical-unit transform.
func (f Field) Scaled() bool { return f.Unit.Kind != QtyNone }

// Register is the layout of one address. EEPROM layouts are relative to the
// 26-bit payload; all others cover the full 32-bit word.
type Register struct {
	Addr   Address
	Name   string
	Bank   Bank
	Access Access
	Fields []Field
}

// Width is the number of bits the field layout spans.
func (r Register) Width() uint8 {
	if r.Bank == BankEEPROM {
		return PayloadBits
	}
	return 32
}

func (r Register) FieldMask() uint32 {
	var m uint32
	for _, f := range r.Fields {
		m |= f.Mask()
	}
	return m
}

// ReservedMask covers the bits of the register width no field claims.
// Reserved bits are never read and always encode as zero.
func (r Register) ReservedMask() uint32 {
	return wordMask(r.Width()) &^ r.FieldMask()
}

func (r Register) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func wordMask(width uint8) uint32 {
	if width >= 32 {
		return 0xFFFFFFFF
	}
	return uint32(1)<<width - 1
}

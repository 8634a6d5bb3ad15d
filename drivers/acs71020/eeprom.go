package acs71020

import "acs71020-go/errcode"

// EEPROM frame layout: payload [25:0], EEC [27:26], reserved [31:28].
const (
	PayloadBits = 26

	payloadMask   uint32 = 1<<PayloadBits - 1
	eccShift             = 26
	eccMask       uint32 = 0x3
	frameReserved uint32 = 0xF0000000
)

// ECC is the 2-bit error correction status returned with EEPROM reads.
type ECC uint8

const (
	ECCNoError       ECC = iota // 00
	ECCCorrected                // 01: error detected and corrected
	ECCUncorrectable            // 10: payload is not trustworthy
	ECCDontCare                 // 11
)

func (e ECC) String() string {
	switch e {
	case ECCNoError:
		return "no_error"
	case ECCCorrected:
		return "corrected"
	case ECCUncorrectable:
		return "uncorrectable"
	case ECCDontCare:
		return "dont_care"
	default:
		return "invalid"
	}
}

// Frame is a decoded EEPROM read.
type Frame struct {
	Addr    Address
	ECC     ECC
	Payload uint32
	Fields  Decoded
}

// Reliable is false when the device flagged the payload uncorrectable. The
// fields are decoded regardless; the caller decides what to do with them.
func (f Frame) Reliable() bool { return f.ECC != ECCUncorrectable }

// DecodeFrame splits an EEPROM word into EEC status and payload and decodes
// the payload with the register's layout.
func DecodeFrame(addr Address, word uint32) (Frame, error) {
	r, err := eepromRegister(addr, "decode_frame")
	if err != nil {
		return Frame{}, err
	}
	payload := word & payloadMask
	d := Decode(payload, r.Fields)
	d.Addr = addr
	return Frame{
		Addr:    addr,
		ECC:     ECC((word >> eccShift) & eccMask),
		Payload: payload,
		Fields:  d,
	}, nil
}

// EncodeFrame packs values into an EEPROM write word. EEC and reserved bits
// are zero; the device computes its own check bits on write.
func EncodeFrame(addr Address, values map[string]int64) (uint32, error) {
	r, err := eepromRegister(addr, "encode_frame")
	if err != nil {
		return 0, err
	}
	return Encode(values, r.Fields)
}

// FrameWord assembles a raw frame from status and payload. Payload bits
// above bit 25 are dropped.
func FrameWord(ecc ECC, payload uint32) uint32 {
	return (uint32(ecc)&eccMask)<<eccShift | payload&payloadMask
}

func eepromRegister(addr Address, op string) (Register, error) {
	r, err := Lookup(addr)
	if err != nil {
		return Register{}, err
	}
	if r.Bank != BankEEPROM {
		return Register{}, errcode.New(errcode.UnknownRegister, op, "not an EEPROM register: "+addr.String())
	}
	return r, nil
}

package acs71020

import (
	"errors"
	"testing"

	"acs71020-go/errcode"
)

func TestFrameLayoutCoversWord(t *testing.T) {
	ecc := eccMask << eccShift
	if payloadMask&ecc != 0 || payloadMask&frameReserved != 0 || ecc&frameReserved != 0 {
		t.Fatal("frame regions overlap")
	}
	if payloadMask|ecc|frameReserved != 0xFFFFFFFF {
		t.Fatalf("frame regions cover %#x", payloadMask|ecc|frameReserved)
	}
}

func TestDecodeFrameECC(t *testing.T) {
	for _, c := range []struct {
		bits     uint32
		want     ECC
		name     string
		reliable bool
	}{
		{0, ECCNoError, "no_error", true},
		{1, ECCCorrected, "corrected", true},
		{2, ECCUncorrectable, "uncorrectable", false},
		{3, ECCDontCare, "dont_care", true},
	} {
		f, err := DecodeFrame(RegAveraging, c.bits<<26|0x1FF)
		if err != nil {
			t.Fatal(err)
		}
		if f.ECC != c.want || f.ECC.String() != c.name || f.Reliable() != c.reliable {
			t.Fatalf("bits %d: %+v", c.bits, f)
		}
		// payload decodes whatever the status says
		if v, _ := f.Fields.Get("rms_avg_1"); v != 127 {
			t.Fatalf("rms_avg_1 = %d", v)
		}
		if v, _ := f.Fields.Get("rms_avg_2"); v != 3 {
			t.Fatalf("rms_avg_2 = %d", v)
		}
	}
}

func TestDecodeFrameAllOnes(t *testing.T) {
	f, err := DecodeFrame(RegTrim, 0xFFFFFFFF)
	if err != nil {
		t.Fatal(err)
	}
	if f.ECC != ECCDontCare || f.Payload != payloadMask || f.Addr != RegTrim || f.Fields.Addr != RegTrim {
		t.Fatalf("frame %+v", f)
	}
	if v, _ := f.Fields.Get("qvo_fine"); v != -1 {
		t.Fatalf("qvo_fine = %d", v)
	}
	if v, _ := f.Fields.Get("crs_sns"); v != 7 {
		t.Fatalf("crs_sns = %d", v)
	}
}

func TestDecodeFrameIgnoresReserved(t *testing.T) {
	w := FrameWord(ECCCorrected, 0x700076)
	a, _ := DecodeFrame(RegFaultConfig, w)
	b, _ := DecodeFrame(RegFaultConfig, w|frameReserved)
	if a.ECC != b.ECC || a.Payload != b.Payload || a.Fields.String() != b.Fields.String() {
		t.Fatalf("reserved bits leaked: %+v vs %+v", a, b)
	}
	if v, _ := a.Fields.Get("pacc_trim"); v != -10 {
		t.Fatalf("pacc_trim = %d", v)
	}
}

func TestEncodeFrame(t *testing.T) {
	w, err := EncodeFrame(RegFaultConfig, map[string]int64{"fault": 128, "fltdly": 3, "pacc_trim": -10})
	if err != nil || w != 0x700076 {
		t.Fatalf("EncodeFrame = %#x,%v", w, err)
	}
	if w&^payloadMask != 0 {
		t.Fatalf("status bits set: %#x", w)
	}
	if _, err := EncodeFrame(RegFaultConfig, map[string]int64{"fault": 300}); !errors.Is(err, errcode.FieldOverflow) {
		t.Fatalf("overflow err=%v", err)
	}
}

func TestFrameRejectsNonEEPROM(t *testing.T) {
	for _, a := range []Address{RegRMS, RegShadowTrim, 0x12} {
		if _, err := DecodeFrame(a, 0); !errors.Is(err, errcode.UnknownRegister) {
			t.Fatalf("DecodeFrame(%s) err=%v", a, err)
		}
		if _, err := EncodeFrame(a, nil); !errors.Is(err, errcode.UnknownRegister) {
			t.Fatalf("EncodeFrame(%s) err=%v", a, err)
		}
	}
}

func TestFrameWord(t *testing.T) {
	if got := FrameWord(ECCUncorrectable, 0xFFFFFFFF); got != 0x0BFFFFFF {
		t.Fatalf("FrameWord = %#x", got)
	}
	if ECC(7).String() != "invalid" {
		t.Fatal("out of range ECC name")
	}
}

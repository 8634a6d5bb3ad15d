package acs71020

import (
	"errors"
	"testing"

	"go.uber.org/multierr"

	"acs71020-go/errcode"
)

func TestRoundTripEveryRegister(t *testing.T) {
	for _, r := range Registers() {
		for _, pick := range []func(Field) int64{
			Field.Min,
			Field.Max,
			func(f Field) int64 { return f.Max() / 3 },
			func(f Field) int64 { return f.Min() / 2 },
		} {
			in := make(map[string]int64, len(r.Fields))
			for _, f := range r.Fields {
				in[f.Name] = pick(f)
			}
			w, err := EncodeRegister(r.Addr, in)
			if err != nil {
				t.Fatalf("%s: encode %v: %v", r.Name, in, err)
			}
			if w&r.ReservedMask() != 0 || w&^wordMask(r.Width()) != 0 {
				t.Fatalf("%s: encode set reserved bits: %#x", r.Name, w)
			}
			d, err := DecodeRegister(r.Addr, w)
			if err != nil {
				t.Fatalf("%s: decode: %v", r.Name, err)
			}
			for name, want := range in {
				if got, _ := d.Get(name); got != want {
					t.Fatalf("%s.%s round trip = %d want %d", r.Name, name, got, want)
				}
			}
			again, err := d.Encode()
			if err != nil || again != w {
				t.Fatalf("%s: re-encode = %#x,%v want %#x", r.Name, again, err, w)
			}
		}
	}
}

func TestRoundTripEveryValue(t *testing.T) {
	for _, r := range Registers() {
		for _, f := range r.Fields {
			if f.Width > 17 {
				continue
			}
			for v := f.Min(); v <= f.Max(); v++ {
				w, err := EncodeRegister(r.Addr, map[string]int64{f.Name: v})
				if err != nil {
					t.Fatalf("%s.%s encode %d: %v", r.Name, f.Name, v, err)
				}
				if w&^f.Mask() != 0 {
					t.Fatalf("%s.%s=%d touches other bits: %#x", r.Name, f.Name, v, w)
				}
				if got := f.Extract(w); got != v {
					t.Fatalf("%s.%s round trip = %d want %d", r.Name, f.Name, got, v)
				}
			}
		}
	}
}

func TestDecodeAllOnes(t *testing.T) {
	for _, r := range Registers() {
		d, err := DecodeRegister(r.Addr, 0xFFFFFFFF)
		if err != nil {
			t.Fatalf("%s: %v", r.Name, err)
		}
		for _, v := range d.Values {
			want := v.Max()
			if v.Signed {
				want = -1
			}
			if v.Raw != want {
				t.Fatalf("%s.%s = %d want %d", r.Name, v.Name, v.Raw, want)
			}
		}
	}
	d, _ := DecodeRegister(RegAccessCode, 0xFFFFFFFF)
	if got, _ := d.Get("access_code"); got != 0xFFFFFFFF {
		t.Fatalf("access_code = %d", got)
	}
}

func TestSignExtension(t *testing.T) {
	f, _ := catalogField(RegTrim, "qvo_fine")
	if got := f.Extract(320); got != -192 {
		t.Fatalf("qvo_fine(320) = %d want -192", got)
	}
	if got := f.Extract(255); got != 255 {
		t.Fatalf("qvo_fine(255) = %d want 255", got)
	}
	if got := f.Extract(256); got != -256 {
		t.Fatalf("qvo_fine(256) = %d want -256", got)
	}
	w, err := f.Insert(0, -192)
	if err != nil || w != 320 {
		t.Fatalf("Insert(-192) = %d,%v want 320", w, err)
	}

	p, _ := catalogField(RegPInstant, "pinstant")
	if got := p.Extract(0x80000000); got != -2147483648 {
		t.Fatalf("pinstant min = %d", got)
	}
	if got := p.Extract(0x7FFFFFFF); got != 2147483647 {
		t.Fatalf("pinstant max = %d", got)
	}
}

func TestInsertKeepsOtherBits(t *testing.T) {
	f, _ := catalogField(RegFaultConfig, "fltdly")
	w, err := f.Insert(0xFFFFFFFF, 0)
	if err != nil {
		t.Fatal(err)
	}
	if w != 0xFFFFFFFF&^(uint32(7)<<21) {
		t.Fatalf("Insert = %#x", w)
	}
	if _, err := f.Insert(0, 8); !errors.Is(err, errcode.FieldOverflow) {
		t.Fatalf("Insert(8) err=%v", err)
	}
	if _, err := f.Insert(0, -1); !errors.Is(err, errcode.FieldOverflow) {
		t.Fatalf("Insert(-1) err=%v", err)
	}
}

func TestFaultConfigScenario(t *testing.T) {
	w, err := EncodeRegister(RegFaultConfig, map[string]int64{
		"fault":     128,
		"fltdly":    3,
		"pacc_trim": -10,
	})
	if err != nil {
		t.Fatal(err)
	}
	// pacc_trim -10 -> 0x76, fault 128<<13, fltdly 3<<21
	if w != 0x700076 {
		t.Fatalf("word = %#x want 0x700076", w)
	}
	d, _ := DecodeRegister(RegFaultConfig, w)
	want := map[string]int64{
		"pacc_trim": -10, "ichan_del_en": 0, "chan_del_sel": 0,
		"fault": 128, "fltdly": 3, "halfcycle_en": 0, "squarewave_en": 0,
	}
	got := d.Map()
	if len(got) != len(want) {
		t.Fatalf("decoded %v", got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %d want %d", k, got[k], v)
		}
	}
	if s := d.String(); s != "pacc_trim=-10 ichan_del_en=0 chan_del_sel=0 fault=128 fltdly=3 halfcycle_en=0 squarewave_en=0" {
		t.Fatalf("String = %q", s)
	}
}

func TestEncodeAggregatesErrors(t *testing.T) {
	w, err := EncodeRegister(RegFaultConfig, map[string]int64{
		"fault":  256,
		"fltdly": 8,
		"zeta":   1,
		"alpha":  1,
	})
	if w != 0 || err == nil {
		t.Fatalf("Encode = %#x,%v", w, err)
	}
	errs := multierr.Errors(err)
	if len(errs) != 4 {
		t.Fatalf("got %d errors: %v", len(errs), err)
	}
	if !errors.Is(err, errcode.FieldOverflow) || !errors.Is(err, errcode.UnknownField) {
		t.Fatalf("missing codes in %v", err)
	}
	// layout order first, then unknown names sorted
	if got := errs[0].Error(); got != "encode: field_overflow: fault=256" {
		t.Fatalf("errs[0] = %q", got)
	}
	if got := errs[2].Error(); got != "encode: unknown_field: alpha" {
		t.Fatalf("errs[2] = %q", got)
	}
	if errcode.Of(err) != errcode.FieldOverflow {
		t.Fatalf("Of = %v", errcode.Of(err))
	}
}

func TestEncodeStartsFromZero(t *testing.T) {
	w, err := EncodeRegister(RegFaultConfig, nil)
	if err != nil || w != 0 {
		t.Fatalf("empty encode = %#x,%v", w, err)
	}
	if _, err := EncodeRegister(0x01, nil); !errors.Is(err, errcode.UnknownRegister) {
		t.Fatalf("unknown register err=%v", err)
	}
}

func TestModify(t *testing.T) {
	// bit 8 is reserved in 0x0D
	w, err := Modify(RegFaultConfig, 0x700076|1<<8, map[string]int64{"fltdly": 1})
	if err != nil {
		t.Fatal(err)
	}
	if w != 0x300076 {
		t.Fatalf("Modify = %#x want 0x300076", w)
	}
	if _, err := Modify(RegFaultConfig, 0, map[string]int64{"fltdly": 9}); !errors.Is(err, errcode.FieldOverflow) {
		t.Fatalf("Modify overflow err=%v", err)
	}
}

func TestDecodedWith(t *testing.T) {
	d, _ := DecodeRegister(RegAveraging, 5|3<<7)
	if s := d.String(); s != "rms_avg_1=5 rms_avg_2=3" {
		t.Fatalf("String = %q", s)
	}
	d2, err := d.With("rms_avg_2", 1023)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := d.Get("rms_avg_2"); v != 3 {
		t.Fatalf("With mutated receiver: %d", v)
	}
	w, err := d2.Encode()
	if err != nil || w != 5|1023<<7 {
		t.Fatalf("Encode = %#x,%v", w, err)
	}
	if _, err := d.With("rms_avg_2", 1024); !errors.Is(err, errcode.FieldOverflow) {
		t.Fatalf("With overflow err=%v", err)
	}
	if _, err := d.With("nope", 1); !errors.Is(err, errcode.UnknownField) {
		t.Fatalf("With unknown err=%v", err)
	}
	if _, ok := d.Get("nope"); ok {
		t.Fatal("Get(nope) ok")
	}
}

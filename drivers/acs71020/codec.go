package acs71020

import (
	"sort"

	"go.uber.org/multierr"

	"acs71020-go/errcode"
	"acs71020-go/x/conv"
	"acs71020-go/x/mathx"
)

// ---------------- Single field ----------------

// Mask covers the field's bits in the register word.
func (f Field) Mask() uint32 { return wordMask(f.Width) << f.Offset }

// Min and Max bound the values the field can hold.
func (f Field) Min() int64 {
	if f.Signed {
		return -(int64(1) << (f.Width - 1))
	}
	return 0
}

func (f Field) Max() int64 {
	if f.Signed {
		return int64(1)<<(f.Width-1) - 1
	}
	return int64(1)<<f.Width - 1
}

func (f Field) Fits(v int64) bool { return mathx.Between(v, f.Min(), f.Max()) }

// Clamp saturates v into the field's range.
func (f Field) Clamp(v int64) int64 { return mathx.Clamp(v, f.Min(), f.Max()) }

// Extract returns the field's value from word. Signed fields are sign
// extended from Width bits: raw >= 2^(w-1) decodes as raw - 2^w.
func (f Field) Extract(word uint32) int64 {
	raw := (word >> f.Offset) & wordMask(f.Width)
	if f.Signed && raw&(uint32(1)<<(f.Width-1)) != 0 {
		return int64(raw) - int64(1)<<f.Width
	}
	return int64(raw)
}

// Insert replaces the field's bits in word with v. Other bits are kept.
func (f Field) Insert(word uint32, v int64) (uint32, error) {
	if !f.Fits(v) {
		return word, fieldErr(errcode.FieldOverflow, "encode", f.Name, v)
	}
	bits := uint32(uint64(v)) & wordMask(f.Width)
	return word&^f.Mask() | bits<<f.Offset, nil
}

func fieldErr(c errcode.Code, op, name string, v int64) error {
	var b [20]byte
	return errcode.New(c, op, name+"="+string(conv.Itoa(b[:], v)))
}

// ---------------- Whole word ----------------

// Value is one decoded field.
type Value struct {
	Field
	Raw int64
}

// Physical converts the value with its field's unit transform.
func (v Value) Physical(cal Calibration) (float64, bool) {
	return v.Field.ToPhysical(v.Raw, cal)
}

// Decoded is the result of decoding one register word, in layout order.
type Decoded struct {
	Addr   Address
	Values []Value
}

// Decode extracts every field of the layout from word. Bits outside the
// layout are ignored.
func Decode(word uint32, fields []Field) Decoded {
	d := Decoded{Values: make([]Value, len(fields))}
	for i, f := range fields {
		d.Values[i] = Value{Field: f, Raw: f.Extract(word)}
	}
	return d
}

// Encode packs values into a fresh word. Fields missing from values and all
// reserved bits encode as zero; the prior contents of a register are never
// carried over. Every out-of-range value and unknown name is reported in one
// combined error, in which case the word is 0.
func Encode(values map[string]int64, fields []Field) (uint32, error) {
	var (
		word  uint32
		errs  error
		known int
	)
	for _, f := range fields {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		known++
		w, err := f.Insert(word, v)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		word = w
	}
	if known != len(values) {
		var unknown []string
		for name := range values {
			if !hasField(fields, name) {
				unknown = append(unknown, name)
			}
		}
		sort.Strings(unknown)
		for _, name := range unknown {
			errs = multierr.Append(errs, errcode.New(errcode.UnknownField, "encode", name))
		}
	}
	if errs != nil {
		return 0, errs
	}
	return word, nil
}

func hasField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// ---------------- Catalog helpers ----------------

// DecodeRegister decodes word with the catalog layout of addr. For EEPROM
// addresses word is the 26-bit payload; see DecodeFrame for full frames.
func DecodeRegister(addr Address, word uint32) (Decoded, error) {
	r, err := Lookup(addr)
	if err != nil {
		return Decoded{}, err
	}
	d := Decode(word, r.Fields)
	d.Addr = addr
	return d, nil
}

// EncodeRegister packs values with the catalog layout of addr.
func EncodeRegister(addr Address, values map[string]int64) (uint32, error) {
	r, err := Lookup(addr)
	if err != nil {
		return 0, err
	}
	return Encode(values, r.Fields)
}

// Modify is an explicit read-modify-write: word is decoded, the named fields
// are replaced and the full field set is re-encoded. Reserved bits of word
// are dropped.
func Modify(addr Address, word uint32, values map[string]int64) (uint32, error) {
	d, err := DecodeRegister(addr, word)
	if err != nil {
		return 0, err
	}
	merged := d.Map()
	for k, v := range values {
		merged[k] = v
	}
	return EncodeRegister(addr, merged)
}

// ---------------- Decoded accessors ----------------

func (d Decoded) Get(name string) (int64, bool) {
	for _, v := range d.Values {
		if v.Name == name {
			return v.Raw, true
		}
	}
	return 0, false
}

func (d Decoded) Map() map[string]int64 {
	m := make(map[string]int64, len(d.Values))
	for _, v := range d.Values {
		m[v.Name] = v.Raw
	}
	return m
}

// With returns a copy of d with one field replaced. The value is checked
// against the field width.
func (d Decoded) With(name string, raw int64) (Decoded, error) {
	out := Decoded{Addr: d.Addr, Values: append([]Value(nil), d.Values...)}
	for i := range out.Values {
		if out.Values[i].Name != name {
			continue
		}
		if !out.Values[i].Fits(raw) {
			return d, fieldErr(errcode.FieldOverflow, "with", name, raw)
		}
		out.Values[i].Raw = raw
		return out, nil
	}
	return d, errcode.New(errcode.UnknownField, "with", name)
}

// Encode re-packs the decoded values.
func (d Decoded) Encode() (uint32, error) {
	var (
		word uint32
		errs error
	)
	for _, v := range d.Values {
		w, err := v.Insert(word, v.Raw)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		word = w
	}
	if errs != nil {
		return 0, errs
	}
	return word, nil
}

// Physical converts one named field; ok is false for unknown or unscaled
// fields.
func (d Decoded) Physical(name string, cal Calibration) (float64, bool) {
	for _, v := range d.Values {
		if v.Name == name {
			return v.Physical(cal)
		}
	}
	return 0, false
}

// Quantities converts every scaled field.
func (d Decoded) Quantities(cal Calibration) map[string]float64 {
	m := make(map[string]float64)
	for _, v := range d.Values {
		if x, ok := v.Physical(cal); ok {
			m[v.Name] = x
		}
	}
	return m
}

// String renders "name=raw" pairs in layout order.
func (d Decoded) String() string {
	var (
		b   [20]byte
		out []byte
	)
	for i, v := range d.Values {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, v.Name...)
		out = append(out, '=')
		out = append(out, conv.Itoa(b[:], v.Raw)...)
	}
	return string(out)
}

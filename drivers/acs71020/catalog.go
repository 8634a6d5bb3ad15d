package acs71020

import "acs71020-go/errcode"

var (
	byAddr map[Address]int
	byName map[string]int
)

func init() {
	byAddr = make(map[Address]int, len(table))
	byName = make(map[string]int, len(table))
	for i := range table {
		r := table[i]
		if err := Validate(r); err != nil {
			panic(err)
		}
		if _, dup := byAddr[r.Addr]; dup {
			panic(errcode.New(errcode.InvalidParams, "catalog", "duplicate address "+r.Addr.String()))
		}
		if _, dup := byName[r.Name]; dup {
			panic(errcode.New(errcode.InvalidParams, "catalog", "duplicate register "+r.Name))
		}
		byAddr[r.Addr] = i
		byName[r.Name] = i
	}
}

// Validate checks a layout against its register width: every field is 1..32
// bits wide, lies inside the width, has a unique name and overlaps no other
// field.
func Validate(r Register) error {
	const op = "validate"
	width := r.Width()
	var used uint32
	for i, f := range r.Fields {
		if f.Name == "" {
			return errcode.New(errcode.InvalidParams, op, r.Name+": unnamed field")
		}
		if f.Width == 0 || f.Width > 32 || uint16(f.Offset)+uint16(f.Width) > uint16(width) {
			return errcode.New(errcode.InvalidParams, op, r.Name+"."+f.Name+": outside register width")
		}
		if f.Mask()&used != 0 {
			return errcode.New(errcode.InvalidParams, op, r.Name+"."+f.Name+": overlaps another field")
		}
		used |= f.Mask()
		for _, g := range r.Fields[:i] {
			if g.Name == f.Name {
				return errcode.New(errcode.InvalidParams, op, r.Name+"."+f.Name+": duplicate name")
			}
		}
	}
	return nil
}

// Lookup returns the layout of addr. The returned register is a copy; the
// catalog itself never changes.
func Lookup(addr Address) (Register, error) {
	i, ok := byAddr[addr]
	if !ok {
		return Register{}, errcode.New(errcode.UnknownRegister, "lookup", addr.String())
	}
	return copyRegister(table[i]), nil
}

// ByName looks a register up by its catalog name (e.g. "fault_config").
func ByName(name string) (Register, error) {
	i, ok := byName[name]
	if !ok {
		return Register{}, errcode.New(errcode.UnknownRegister, "lookup", name)
	}
	return copyRegister(table[i]), nil
}

// Fields returns the ordered field layout of addr.
func Fields(addr Address) ([]Field, error) {
	r, err := Lookup(addr)
	if err != nil {
		return nil, err
	}
	return r.Fields, nil
}

// Registers returns every catalog entry in address order.
func Registers() []Register {
	out := make([]Register, len(table))
	for i := range table {
		out[i] = copyRegister(table[i])
	}
	return out
}

// Shadow returns the shadow address mirroring an EEPROM register.
func Shadow(addr Address) (Address, bool) {
	r, err := Lookup(addr)
	if err != nil || r.Bank != BankEEPROM {
		return 0, false
	}
	return addr + ShadowOffset, true
}

func copyRegister(r Register) Register {
	r.Fields = append([]Field(nil), r.Fields...)
	return r
}

package cmd

import (
	"strconv"
	"strings"

	"acs71020-go/drivers/acs71020"
	"acs71020-go/errcode"
)

// addrHelp documents ADDR for every command that takes one.
const addrHelp = "ADDR is 0x-prefixed hex (0x0D), plain decimal (13, leading zeros " +
	"are not octal) or a register name (fault_config)."

// parseRegister accepts a numeric address (0x0D, 13) or a catalog name.
func parseRegister(s string) (acs71020.Register, error) {
	if n, ok, err := parseAddress(s); ok {
		if err != nil {
			return acs71020.Register{}, err
		}
		return acs71020.Lookup(acs71020.Address(n))
	}
	return acs71020.ByName(s)
}

// parseAddress reports ok for strings that look numeric. Only 0x selects a
// base; everything else is decimal.
func parseAddress(s string) (uint64, bool, error) {
	base, digits := 10, s
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		base, digits = 16, s[2:]
	} else if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(digits, base, 8)
	if err != nil {
		return 0, true, &errcode.E{C: errcode.InvalidParams, Op: "parse", Msg: "address " + s, Err: err}
	}
	return n, true, nil
}

func parseWord(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, &errcode.E{C: errcode.InvalidParams, Op: "parse", Msg: "word " + s, Err: err}
	}
	return uint32(n), nil
}

// parseAssignments reads name=value pairs. Values may be negative or use a
// 0x/0b prefix.
func parseAssignments(args []string) (map[string]int64, error) {
	m := make(map[string]int64, len(args))
	for _, a := range args {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, errcode.New(errcode.InvalidParams, "parse", "want name=value, got "+a)
		}
		n, err := strconv.ParseInt(val, 0, 64)
		if err != nil {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "parse", Msg: a, Err: err}
		}
		m[name] = n
	}
	return m, nil
}

package acs71020

import (
	"strconv"

	"acs71020-go/x/conv"
)

// Enumerated EEPROM settings. These map raw codes to their datasheet
// meaning; codes are passed through without range enforcement beyond the
// field width.

var coarseGains = [8]float64{1, 2, 3, 3.5, 4, 4.5, 5.5, 8}

// CoarseGain maps crs_sns to its analog gain multiplier.
func CoarseGain(code int64) (float64, bool) {
	if code < 0 || code >= int64(len(coarseGains)) {
		return 0, false
	}
	return coarseGains[code], true
}

var faultDelays_us = [8]float64{0, 0, 4.75, 9.25, 13.75, 18.5, 23.25, 27.75}

// FaultDelay_us maps fltdly to the delay applied before flagging a fault.
func FaultDelay_us(code int64) (float64, bool) {
	if code < 0 || code >= int64(len(faultDelays_us)) {
		return 0, false
	}
	return faultDelays_us[code], true
}

// FaultThresholdPercent maps fault (0..255) onto 50..175 % of IP.
func FaultThresholdPercent(code int64) float64 {
	return 50 + float64(code)*125/255
}

// VEventCycles maps vevent_cycs to the number of cycles before OVRMS/UVRMS.
func VEventCycles(code int64) int64 { return code + 1 }

// ZeroCrossPulse_us maps delaycnt_sel to the zero-crossing pulse width.
func ZeroCrossPulse_us(code int64) int64 {
	if code != 0 {
		return 256
	}
	return 32
}

// VADCRate_kHz maps vadc_rate_set to the voltage ADC update rate.
func VADCRate_kHz(code int64) int64 {
	if code != 0 {
		return 4
	}
	return 32
}

var (
	dio0Names = [4]string{"vzc", "ovrms", "uvrms", "ovrms|uvrms"}
	dio1Names = [4]string{"ocf", "uvrms", "ovrms", "ovrms|uvrms|ocf"}
)

// DIO0Select names the flag routed to DIO0 by dio_0_sel.
func DIO0Select(code int64) string {
	if code < 0 || code > 3 {
		return ""
	}
	return dio0Names[code]
}

// DIO1Select names the flag routed to DIO1 by dio_1_sel.
func DIO1Select(code int64) string {
	if code < 0 || code > 3 {
		return ""
	}
	return dio1Names[code]
}

// Describe renders the meaning of an enumerated EEPROM code, e.g.
// fltdly=3 -> "9.25us". It returns "" for fields without a table and for
// codes outside one.
func Describe(name string, code int64) string {
	var b [20]byte
	g := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	switch name {
	case "crs_sns":
		if v, ok := CoarseGain(code); ok {
			return "x" + g(v)
		}
	case "fltdly":
		if v, ok := FaultDelay_us(code); ok {
			return g(v) + "us"
		}
	case "fault":
		if code >= 0 && code <= 255 {
			return strconv.FormatFloat(FaultThresholdPercent(code), 'f', 1, 64) + "%"
		}
	case "vevent_cycs":
		if code >= 0 && code <= 63 {
			return string(conv.Itoa(b[:], VEventCycles(code))) + "_cycles"
		}
	case "delaycnt_sel":
		return string(conv.Itoa(b[:], ZeroCrossPulse_us(code))) + "us"
	case "vadc_rate_set":
		return string(conv.Itoa(b[:], VADCRate_kHz(code))) + "kHz"
	case "dio_0_sel":
		return DIO0Select(code)
	case "dio_1_sel":
		return DIO1Select(code)
	}
	return ""
}

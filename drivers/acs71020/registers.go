package acs71020

const (
	// --- EEPROM (non-volatile, EEC framed) ---
	RegTrim          Address = 0x0B // R/W qvo_fine, sns_fine, crs_sns, iavgselen
	RegAveraging     Address = 0x0C // R/W rms_avg_1, rms_avg_2
	RegFaultConfig   Address = 0x0D // R/W pacc_trim, channel delay, fault, fltdly, zero crossing
	RegVoltageEvents Address = 0x0E // R/W vevent_cycs, vadc_rate_set, overvreg, undervreg, delaycnt_sel
	RegIOConfig      Address = 0x0F // R/W i2c_slv_addr, i2c_dis_slv_addr, dio_0_sel, dio_1_sel

	// --- Shadow (volatile copies of the EEPROM bank) ---
	ShadowOffset = 0x10

	RegShadowTrim          = RegTrim + ShadowOffset
	RegShadowAveraging     = RegAveraging + ShadowOffset
	RegShadowFaultConfig   = RegFaultConfig + ShadowOffset
	RegShadowVoltageEvents = RegVoltageEvents + ShadowOffset
	RegShadowIOConfig      = RegIOConfig + ShadowOffset

	// --- Volatile readouts / control ---
	RegRMS            Address = 0x20 // R vrms, irms
	RegActivePower    Address = 0x21 // R pactive
	RegApparentPower  Address = 0x22 // R papparent
	RegReactivePower  Address = 0x23 // R pimag
	RegPowerFactor    Address = 0x24 // R pfactor
	RegNumPoints      Address = 0x25 // R numptsout
	RegRMSAvgSec      Address = 0x26 // R vrmsavgonesec, irmsavgonesec
	RegRMSAvgMin      Address = 0x27 // R vrmsavgonemin, irmsavgonemin
	RegActiveAvgSec   Address = 0x28 // R pactavgonesec
	RegActiveAvgMin   Address = 0x29 // R pactavgonemin
	RegVCodes         Address = 0x2A // R vcodes
	RegICodes         Address = 0x2B // R icodes
	RegPInstant       Address = 0x2C // R pinstant
	RegStatus         Address = 0x2D // R/W1C flags
	RegAccessCode     Address = 0x2F // W access_code
	RegCustomerAccess Address = 0x30 // R customer_access
)

// Layout constructors.

func ufield(name string, off, width uint8) Field {
	return Field{Name: name, Offset: off, Width: width}
}

func sfield(name string, off, width uint8) Field {
	return Field{Name: name, Offset: off, Width: width, Signed: true}
}

func fixed(f Field, frac uint8, kind Quantity, sym string) Field {
	f.Unit = Unit{FracBits: frac, Kind: kind, Symbol: sym}
	return f
}

func lsb(f Field, step int32) Field {
	f.Unit = Unit{Scale: Ratio{Num: step, Den: 1}, Kind: QtyCount, Symbol: "LSB"}
	return f
}

// ---------------- EEPROM payload layouts ----------------

var trimFields = []Field{
	lsb(sfield("qvo_fine", 0, 9), 64), // offset trim, 64 LSB per step
	sfield("sns_fine", 9, 9),          // fine gain, 50..150 %
	ufield("crs_sns", 18, 3),          // coarse gain select
	ufield("iavgselen", 21, 1),        // 0 vrms, 1 irms averaging
}

var averagingFields = []Field{
	ufield("rms_avg_1", 0, 7),  // first stage, 0..127
	ufield("rms_avg_2", 7, 10), // second stage, 0..1023
}

var faultConfigFields = []Field{
	lsb(sfield("pacc_trim", 0, 7), 6), // active power offset, 6 LSB per step
	ufield("ichan_del_en", 7, 1),
	ufield("chan_del_sel", 9, 3),
	ufield("fault", 13, 8), // 50..175 % of IP
	ufield("fltdly", 21, 3),
	ufield("halfcycle_en", 24, 1),
	ufield("squarewave_en", 25, 1),
}

var voltageEventFields = []Field{
	ufield("vevent_cycs", 0, 6),
	ufield("vadc_rate_set", 6, 1),
	ufield("overvreg", 8, 6),
	ufield("undervreg", 14, 6),
	ufield("delaycnt_sel", 20, 1),
}

var ioConfigFields = []Field{
	ufield("i2c_slv_addr", 2, 7),
	ufield("i2c_dis_slv_addr", 9, 1),
	ufield("dio_0_sel", 10, 2),
	ufield("dio_1_sel", 12, 2),
}

// ---------------- Catalog ----------------

// table is ordered by address.
var table = [...]Register{
	{Addr: RegTrim, Name: "trim", Bank: BankEEPROM, Access: ReadWrite, Fields: trimFields},
	{Addr: RegAveraging, Name: "averaging", Bank: BankEEPROM, Access: ReadWrite, Fields: averagingFields},
	{Addr: RegFaultConfig, Name: "fault_config", Bank: BankEEPROM, Access: ReadWrite, Fields: faultConfigFields},
	{Addr: RegVoltageEvents, Name: "voltage_events", Bank: BankEEPROM, Access: ReadWrite, Fields: voltageEventFields},
	{Addr: RegIOConfig, Name: "io_config", Bank: BankEEPROM, Access: ReadWrite, Fields: ioConfigFields},

	{Addr: RegShadowTrim, Name: "shadow_trim", Bank: BankShadow, Access: ReadWrite, Fields: trimFields},
	{Addr: RegShadowAveraging, Name: "shadow_averaging", Bank: BankShadow, Access: ReadWrite, Fields: averagingFields},
	{Addr: RegShadowFaultConfig, Name: "shadow_fault_config", Bank: BankShadow, Access: ReadWrite, Fields: faultConfigFields},
	{Addr: RegShadowVoltageEvents, Name: "shadow_voltage_events", Bank: BankShadow, Access: ReadWrite, Fields: voltageEventFields},
	{Addr: RegShadowIOConfig, Name: "shadow_io_config", Bank: BankShadow, Access: ReadWrite, Fields: ioConfigFields},

	{Addr: RegRMS, Name: "rms", Fields: []Field{
		fixed(ufield("vrms", 0, 15), 15, QtyVoltage, "V"),
		fixed(ufield("irms", 16, 15), 14, QtyCurrent, "A"),
	}},
	{Addr: RegActivePower, Name: "active_power", Fields: []Field{
		fixed(sfield("pactive", 0, 17), 15, QtyPower, "W"),
	}},
	{Addr: RegApparentPower, Name: "apparent_power", Fields: []Field{
		fixed(ufield("papparent", 0, 16), 15, QtyPower, "VA"),
	}},
	{Addr: RegReactivePower, Name: "reactive_power", Fields: []Field{
		fixed(ufield("pimag", 0, 16), 15, QtyPower, "VAR"),
	}},
	{Addr: RegPowerFactor, Name: "power_factor", Fields: []Field{
		fixed(sfield("pfactor", 0, 11), 9, QtyRatio, ""),
	}},
	{Addr: RegNumPoints, Name: "num_points", Fields: []Field{
		ufield("numptsout", 0, 9),
	}},
	{Addr: RegRMSAvgSec, Name: "rms_avg_sec", Fields: []Field{
		fixed(ufield("vrmsavgonesec", 0, 15), 15, QtyVoltage, "V"),
		fixed(ufield("irmsavgonesec", 16, 15), 14, QtyCurrent, "A"),
	}},
	{Addr: RegRMSAvgMin, Name: "rms_avg_min", Fields: []Field{
		fixed(ufield("vrmsavgonemin", 0, 15), 15, QtyVoltage, "V"),
		fixed(ufield("irmsavgonemin", 16, 15), 14, QtyCurrent, "A"),
	}},
	{Addr: RegActiveAvgSec, Name: "active_avg_sec", Fields: []Field{
		fixed(sfield("pactavgonesec", 0, 17), 15, QtyPower, "W"),
	}},
	{Addr: RegActiveAvgMin, Name: "active_avg_min", Fields: []Field{
		fixed(sfield("pactavgonemin", 0, 17), 15, QtyPower, "W"),
	}},
	{Addr: RegVCodes, Name: "vcodes", Fields: []Field{
		fixed(sfield("vcodes", 0, 17), 16, QtyVoltage, "V"),
	}},
	{Addr: RegICodes, Name: "icodes", Fields: []Field{
		fixed(sfield("icodes", 0, 17), 15, QtyCurrent, "A"),
	}},
	{Addr: RegPInstant, Name: "pinstant", Fields: []Field{
		fixed(sfield("pinstant", 0, 32), 29, QtyPower, "W"),
	}},
	{Addr: RegStatus, Name: "status", Access: ReadWrite, Fields: []Field{
		ufield("vzerocrossout", 0, 1),
		ufield("faultout", 1, 1),
		ufield("faultlatched", 2, 1), // write 1 to clear
		ufield("overvoltage", 3, 1),
		ufield("undervoltage", 4, 1),
		ufield("posangle", 5, 1), // 1: current lagging
		ufield("pospf", 6, 1),    // 1: power consumed
	}},
	{Addr: RegAccessCode, Name: "access_code", Access: ReadWrite, Fields: []Field{
		ufield("access_code", 0, 32),
	}},
	{Addr: RegCustomerAccess, Name: "customer_access", Fields: []Field{
		ufield("customer_access", 0, 1),
	}},
}

package acs71020

import "acs71020-go/types"

// Info describes the calibration snapshots are converted with.
func Info(cal Calibration) types.PowerInfo {
	return types.PowerInfo{
		Driver:             "acs71020",
		VoltageFullScale_V: cal.VoltageFullScale,
		CurrentFullScale_A: cal.CurrentFullScale,
	}
}

// PowerSnapshot converts a set of sampled volatile words into physical
// values. Zero values remain where a register is missing from words.
func PowerSnapshot(words map[Address]uint32, cal Calibration) types.PowerValue {
	var s types.PowerValue
	PowerSnapshotInto(words, cal, &s)
	return s
}

func PowerSnapshotInto(words map[Address]uint32, cal Calibration, out *types.PowerValue) {
	var s types.PowerValue
	phys := func(addr Address, name string) float64 {
		w, ok := words[addr]
		if !ok {
			return 0
		}
		f, ok := catalogField(addr, name)
		if !ok {
			return 0
		}
		v, _ := f.ToPhysical(f.Extract(w), cal)
		return v
	}
	s.Vrms_V = phys(RegRMS, "vrms")
	s.Irms_A = phys(RegRMS, "irms")
	s.Active_W = phys(RegActivePower, "pactive")
	s.Apparent_VA = phys(RegApparentPower, "papparent")
	s.Reactive_VAR = phys(RegReactivePower, "pimag")
	s.PowerFactor = phys(RegPowerFactor, "pfactor")
	s.VrmsAvgSec_V = phys(RegRMSAvgSec, "vrmsavgonesec")
	s.IrmsAvgSec_A = phys(RegRMSAvgSec, "irmsavgonesec")
	s.VrmsAvgMin_V = phys(RegRMSAvgMin, "vrmsavgonemin")
	s.IrmsAvgMin_A = phys(RegRMSAvgMin, "irmsavgonemin")
	s.ActiveAvgSec_W = phys(RegActiveAvgSec, "pactavgonesec")
	s.ActiveAvgMin_W = phys(RegActiveAvgMin, "pactavgonemin")
	s.Vinst_V = phys(RegVCodes, "vcodes")
	s.Iinst_A = phys(RegICodes, "icodes")
	s.Pinst_W = phys(RegPInstant, "pinstant")
	if w, ok := words[RegNumPoints]; ok {
		if f, ok := catalogField(RegNumPoints, "numptsout"); ok {
			s.NumPoints = uint16(f.Extract(w))
		}
	}
	if w, ok := words[RegStatus]; ok {
		st := StatusOf(w)
		s.Flags = uint32(st)
		s.Lagging = st.Has(StatusPosAngle)
		s.Consuming = st.Has(StatusPosPF)
	}
	*out = s
}

// catalogField reads a field layout without copying the register.
func catalogField(addr Address, name string) (Field, bool) {
	i, ok := byAddr[addr]
	if !ok {
		return Field{}, false
	}
	return table[i].Field(name)
}

package acs71020

import (
	"testing"

	"acs71020-go/types"
)

func TestPowerSnapshot(t *testing.T) {
	words := map[Address]uint32{
		RegRMS:         0x4000 | 0x2000<<16,
		RegActivePower: 0x4000,
		RegPowerFactor: 0x100,
		RegNumPoints:   0xFFFF,
		RegPInstant:    0xE0000000,
		RegStatus:      0x60,
	}
	s := PowerSnapshot(words, DefaultCalibration)
	if s.Vrms_V != 125 || s.Irms_A != 15 {
		t.Fatalf("rms = %v V %v A", s.Vrms_V, s.Irms_A)
	}
	if s.Active_W != 3750 || s.PowerFactor != 0.5 {
		t.Fatalf("active=%v pf=%v", s.Active_W, s.PowerFactor)
	}
	if s.NumPoints != 511 {
		t.Fatalf("points = %d", s.NumPoints)
	}
	// -2^29 / 2^29 × 7500
	if s.Pinst_W != -7500 {
		t.Fatalf("pinstant = %v", s.Pinst_W)
	}
	if s.Flags != 0x60 || !s.Lagging || !s.Consuming {
		t.Fatalf("flags %#x lagging=%v consuming=%v", s.Flags, s.Lagging, s.Consuming)
	}
	if s.Apparent_VA != 0 || s.VrmsAvgMin_V != 0 {
		t.Fatal("missing registers should read zero")
	}
}

func TestPowerSnapshotIntoResets(t *testing.T) {
	out := types.PowerValue{Reactive_VAR: 99, Lagging: true}
	PowerSnapshotInto(map[Address]uint32{RegReactivePower: 0x8000}, DefaultCalibration, &out)
	if out.Reactive_VAR != 7500 || out.Lagging {
		t.Fatalf("snapshot %+v", out)
	}
}

func TestInfo(t *testing.T) {
	i := Info(Calibration{VoltageFullScale: 120, CurrentFullScale: 15})
	if i.Driver != "acs71020" || i.VoltageFullScale_V != 120 || i.CurrentFullScale_A != 15 {
		t.Fatalf("info %+v", i)
	}
}

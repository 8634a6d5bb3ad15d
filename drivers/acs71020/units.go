package acs71020

import (
	"math"

	"periph.io/x/conn/v3/physic"

	"acs71020-go/errcode"
	"acs71020-go/x/mathx"
)

// Calibration holds the full-scale values the device was trimmed to. They
// depend on the sense path and the voltage divider, not on register content.
type Calibration struct {
	VoltageFullScale float64 `json:"voltage_full_scale"` // volts
	CurrentFullScale float64 `json:"current_full_scale"` // amps
}

// DefaultCalibration is the datasheet example: 250 V divider, 30 A IP.
var DefaultCalibration = Calibration{VoltageFullScale: 250, CurrentFullScale: 30}

// FullScale returns the multiplier for a quantity kind. Power uses the
// product of voltage and current full scales (7500 W for the default).
func (c Calibration) FullScale(k Quantity) float64 {
	switch k {
	case QtyVoltage:
		return c.VoltageFullScale
	case QtyCurrent:
		return c.CurrentFullScale
	case QtyPower:
		return c.VoltageFullScale * c.CurrentFullScale
	default:
		return 1
	}
}

// ToPhysical computes raw / 2^fracBits × fullScale.
func ToPhysical(raw int64, fracBits uint8, fullScale float64) float64 {
	return float64(raw) / mathx.Pow2(fracBits) * fullScale
}

// FromPhysical is the inverse of ToPhysical, rounded half away from zero.
// It fails with OutOfRange when the result does not fit width bits of the
// given signedness.
func FromPhysical(value float64, fracBits uint8, fullScale float64, width uint8, signed bool) (int64, error) {
	const op = "from_physical"
	x, err := quantize(value, fracBits, fullScale, width)
	if err != nil {
		return 0, err
	}
	f := Field{Width: width, Signed: signed}
	if !mathx.Between(x, float64(f.Min()), float64(f.Max())) {
		return 0, errcode.New(errcode.OutOfRange, op, "value does not fit field")
	}
	return int64(x), nil
}

// SaturatePhysical is FromPhysical with the result clamped to the field
// range instead of failing. Infinite values saturate; NaN still fails.
func SaturatePhysical(value float64, fracBits uint8, fullScale float64, width uint8, signed bool) (int64, error) {
	if math.IsNaN(value) {
		return 0, errcode.New(errcode.OutOfRange, "from_physical", "not finite")
	}
	x, err := quantize(value, fracBits, fullScale, width)
	if err != nil {
		if errcode.Of(err) != errcode.OutOfRange {
			return 0, err
		}
		x = math.Copysign(math.Inf(1), value/fullScale)
	}
	f := Field{Width: width, Signed: signed}
	return int64(mathx.Clamp(x, float64(f.Min()), float64(f.Max()))), nil
}

func quantize(value float64, fracBits uint8, fullScale float64, width uint8) (float64, error) {
	const op = "from_physical"
	if width == 0 || width > 32 || fracBits > 32 {
		return 0, errcode.New(errcode.InvalidParams, op, "field shape")
	}
	if fullScale == 0 || math.IsNaN(fullScale) || math.IsInf(fullScale, 0) {
		return 0, errcode.New(errcode.InvalidParams, op, "full scale")
	}
	x := math.Round(value / fullScale * mathx.Pow2(fracBits))
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errcode.New(errcode.OutOfRange, op, "not finite")
	}
	return x, nil
}

// ---------------- Field level ----------------

func (f Field) fullScale(cal Calibration) float64 {
	return cal.FullScale(f.Unit.Kind) * f.Unit.Scale.Float()
}

// ToPhysical converts a raw field value; ok is false for unscaled fields.
func (f Field) ToPhysical(raw int64, cal Calibration) (float64, bool) {
	if !f.Scaled() {
		return 0, false
	}
	return ToPhysical(raw, f.Unit.FracBits, f.fullScale(cal)), true
}

// FromPhysical converts a physical value into a raw field value.
func (f Field) FromPhysical(v float64, cal Calibration) (int64, error) {
	if !f.Scaled() {
		return 0, errcode.New(errcode.InvalidParams, "from_physical", f.Name+": no unit")
	}
	raw, err := FromPhysical(v, f.Unit.FracBits, f.fullScale(cal), f.Width, f.Signed)
	if err != nil {
		return 0, &errcode.E{C: errcode.Of(err), Op: "from_physical", Msg: f.Name, Err: err}
	}
	return raw, nil
}

// SaturatePhysical converts like FromPhysical but clamps to the field range.
func (f Field) SaturatePhysical(v float64, cal Calibration) (int64, error) {
	if !f.Scaled() {
		return 0, errcode.New(errcode.InvalidParams, "from_physical", f.Name+": no unit")
	}
	return SaturatePhysical(v, f.Unit.FracBits, f.fullScale(cal), f.Width, f.Signed)
}

// ---------------- Typed quantities ----------------

func Potential(volts float64) physic.ElectricPotential {
	return physic.ElectricPotential(math.Round(volts * float64(physic.Volt)))
}

func Current(amps float64) physic.ElectricCurrent {
	return physic.ElectricCurrent(math.Round(amps * float64(physic.Ampere)))
}

func Power(watts float64) physic.Power {
	return physic.Power(math.Round(watts * float64(physic.Watt)))
}

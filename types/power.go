package types

// ------------------------
// Power monitor (acs71020)
// ------------------------

type PowerInfo struct {
	Driver             string  `json:"driver"`
	VoltageFullScale_V float64 `json:"voltage_full_scale_V"`
	CurrentFullScale_A float64 `json:"current_full_scale_A"`
}

// PowerValue is one converted sample of the volatile register bank.
type PowerValue struct {
	Vrms_V       float64 `json:"vrms_V"`
	Irms_A       float64 `json:"irms_A"`
	Active_W     float64 `json:"active_W"`
	Apparent_VA  float64 `json:"apparent_VA"`
	Reactive_VAR float64 `json:"reactive_VAR"`
	PowerFactor  float64 `json:"power_factor"`
	NumPoints    uint16  `json:"num_points"`

	VrmsAvgSec_V   float64 `json:"vrms_avg_sec_V"`
	IrmsAvgSec_A   float64 `json:"irms_avg_sec_A"`
	VrmsAvgMin_V   float64 `json:"vrms_avg_min_V"`
	IrmsAvgMin_A   float64 `json:"irms_avg_min_A"`
	ActiveAvgSec_W float64 `json:"active_avg_sec_W"`
	ActiveAvgMin_W float64 `json:"active_avg_min_W"`

	Vinst_V float64 `json:"vinst_V"`
	Iinst_A float64 `json:"iinst_A"`
	Pinst_W float64 `json:"pinst_W"`

	Flags     uint32 `json:"flags"` // raw 0x2D bits
	Lagging   bool   `json:"lagging"`
	Consuming bool   `json:"consuming"`
}

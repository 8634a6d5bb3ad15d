package config

// -----------------------------------------------------------------------------
// Embedded calibration profiles
//
// Key: profile name (config file "profile:" or --profile)
// Val: raw JSON calibration for that part variant. Voltage full scale assumes
// the datasheet reference divider.
// -----------------------------------------------------------------------------

const (
	cfg15A = `{"voltage_full_scale": 250, "current_full_scale": 15}`
	cfg30A = `{"voltage_full_scale": 250, "current_full_scale": 30}`
	cfg90A = `{"voltage_full_scale": 250, "current_full_scale": 90}`
)

var embeddedProfiles = map[string][]byte{
	"default": []byte(cfg30A),
	"15a":     []byte(cfg15A),
	"30a":     []byte(cfg30A),
	"90a":     []byte(cfg90A),
}

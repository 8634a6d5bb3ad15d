package config

import (
	"math"
	"os"
	"path/filepath"
	"sort"

	"sigs.k8s.io/yaml"

	"acs71020-go/drivers/acs71020"
	"acs71020-go/errcode"
)

const (
	ConfigDir       = ".acs71020"
	ConfigFile      = "config.yaml"
	DefaultProfile  = "default"
	DefaultLogLevel = "info"
)

// EmbeddedProfileLookup allows overriding how profiles are resolved.
var EmbeddedProfileLookup = func(name string) ([]byte, bool) {
	b, ok := embeddedProfiles[name]
	return b, ok
}

// Profiles lists the embedded profile names.
func Profiles() []string {
	out := make([]string, 0, len(embeddedProfiles))
	for k := range embeddedProfiles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type Config struct {
	Profile     string               `json:"profile,omitempty"`
	Calibration acs71020.Calibration `json:"calibration"`
	LogLevel    string               `json:"log_level,omitempty"`
	filepath    string
}

type ErrConfigFileExists struct {
	Path string
}

func (e ErrConfigFileExists) Error() string {
	return "config file already exists: " + e.Path
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		Profile:     DefaultProfile,
		Calibration: acs71020.DefaultCalibration,
		LogLevel:    DefaultLogLevel,
		filepath:    DefaultConfigPath(),
	}
}

func (c *Config) Path() string { return c.filepath }

func (c *Config) SetPath(p string) { c.filepath = p }

// Load merges the config file over the current values. A missing file is
// not an error. A profile named in the file is applied first, so explicit
// calibration keys in the same file win over it.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return c.Validate()
		}
		return &errcode.E{C: errcode.Error, Op: "config", Msg: c.filepath, Err: err}
	}
	var head struct {
		Profile string `json:"profile"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: c.filepath, Err: err}
	}
	if head.Profile != "" {
		if err := c.UseProfile(head.Profile); err != nil {
			return err
		}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: c.filepath, Err: err}
	}
	return c.Validate()
}

// UseProfile replaces the calibration with an embedded profile.
func (c *Config) UseProfile(name string) error {
	raw, ok := EmbeddedProfileLookup(name)
	if !ok || len(raw) == 0 {
		return errcode.New(errcode.InvalidParams, "config", "no embedded profile: "+name)
	}
	var cal acs71020.Calibration
	if err := yaml.Unmarshal(raw, &cal); err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "profile " + name, Err: err}
	}
	c.Profile = name
	c.Calibration = cal
	return nil
}

// Validate requires positive, finite full scales.
func (c *Config) Validate() error {
	for _, v := range []float64{c.Calibration.VoltageFullScale, c.Calibration.CurrentFullScale} {
		if !(v > 0) || math.IsInf(v, 0) {
			return errcode.New(errcode.InvalidParams, "config", "full scale must be positive")
		}
	}
	return nil
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.filepath), 0755); err != nil {
		return err
	}
	return os.WriteFile(c.filepath, data, 0644)
}

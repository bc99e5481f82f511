package h2m

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a typed settings map, the same shape as the teacher's own
// config.go: string paths to typed values, with panic-on-misuse accessors
// rather than silent zero values, so a typo in a setting path is caught
// immediately during development instead of silently behaving as "false".
type Config map[string]*cfgVal

// NewConfig creates a configuration primed with the five option names
// spec.md names in §6: silent, quiet, autobind, array_transpose,
// detect_invalid. array_transpose defaults to true (C row-major extents
// map to Fortran column-major order); the other four default to false.
func NewConfig() *Config {
	m := make(Config)
	m.SetBool("silent", false)
	m.SetBool("quiet", false)
	m.SetBool("autobind", false)
	m.SetBool("array_transpose", true)
	m.SetBool("detect_invalid", false)
	return &m
}

type cfgValType int

const (
	cfgValTypeUndefined cfgValType = iota
	cfgValTypeBool
	cfgValTypeInt
	cfgValTypeString
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValTypeUndefined: "undefined",
		cfgValTypeBool:      "bool",
		cfgValTypeInt:       "int",
		cfgValTypeString:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValTypeUndefined {
		panic(fmt.Sprintf("can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("can't retrieve `%s` from `%s` setting", vt, v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValTypeBool)
	(*c)[path].asBool = v
}

func (c *Config) SetInt(path string, v int) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValTypeInt)
	(*c)[path].asInt = v
}

func (c *Config) SetString(path string, v string) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValTypeString)
	(*c)[path].asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValTypeBool)
		return val.asBool
	}
	panic(fmt.Sprintf("bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValTypeInt)
		return val.asInt
	}
	panic(fmt.Sprintf("int setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValTypeString)
		return val.asString
	}
	panic(fmt.Sprintf("string setting `%s` does not exist", path))
}

// GetSilent, GetQuiet, GetAutobind, GetArrayTranspose and GetDetectInvalid
// are the named accessors spec.md's §6 Configuration Options describes.
func (c *Config) GetSilent() bool        { return c.GetBool("silent") }
func (c *Config) GetQuiet() bool         { return c.GetBool("quiet") }
func (c *Config) GetAutobind() bool      { return c.GetBool("autobind") }
func (c *Config) GetArrayTranspose() bool { return c.GetBool("array_transpose") }
func (c *Config) GetDetectInvalid() bool { return c.GetBool("detect_invalid") }

// fileConfig is the on-disk shape LoadConfigFile reads; only the fields a
// user would plausibly want to pin across runs are exposed, mirroring the
// original tool's command-line flags.
type fileConfig struct {
	Silent         *bool `yaml:"silent"`
	Quiet          *bool `yaml:"quiet"`
	Autobind       *bool `yaml:"autobind"`
	ArrayTranspose *bool `yaml:"array_transpose"`
	DetectInvalid  *bool `yaml:"detect_invalid"`
}

// LoadConfigFile reads a YAML file of the five boolean options and returns
// a Config seeded with NewConfig()'s defaults, overridden by whatever the
// file sets. A missing key in the file keeps the default.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg := NewConfig()
	if fc.Silent != nil {
		cfg.SetBool("silent", *fc.Silent)
	}
	if fc.Quiet != nil {
		cfg.SetBool("quiet", *fc.Quiet)
	}
	if fc.Autobind != nil {
		cfg.SetBool("autobind", *fc.Autobind)
	}
	if fc.ArrayTranspose != nil {
		cfg.SetBool("array_transpose", *fc.ArrayTranspose)
	}
	if fc.DetectInvalid != nil {
		cfg.SetBool("detect_invalid", *fc.DetectInvalid)
	}
	return cfg, nil
}

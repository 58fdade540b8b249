// Package config loads and validates the CLI's runtime configuration:
// flags parsed by cobra, optionally overlaid with a config file read by
// viper and decoded through mapstructure, defaulted with struct tags, and
// validated with struct tags — the same three-library combination used
// elsewhere in the pack for exactly this shape of problem.
package config

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/dealancer/validate.v2"

	"github.com/kazuki0824/recisdb-rs/casemu"
)

// Decode holds the parameters for the "decode" and "tune" subcommands.
type Decode struct {
	Source   string `mapstructure:"source"`
	Output   string `mapstructure:"output" default:"-"`
	Key0     string `mapstructure:"key0"`
	Key1     string `mapstructure:"key1"`
	NoDecode bool   `mapstructure:"no-decode"`
	NoSimd   bool   `mapstructure:"no-simd"`
	NoStrip  bool   `mapstructure:"no-strip"`
	Card     string `mapstructure:"card"`

	// Tune-only fields, empty for plain "decode", except ExitOnCardError,
	// which both subcommands set.
	Device          string        `mapstructure:"device"`
	Channel         string        `mapstructure:"channel"`
	TSID            uint16        `mapstructure:"tsid"`
	Time            time.Duration `mapstructure:"time"`
	LNB             bool          `mapstructure:"lnb"`
	ExitOnCardError bool          `mapstructure:"exit-on-card-error" default:"true"`
}

// Checksignal holds the parameters for the "checksignal" subcommand.
type Checksignal struct {
	Device  string `mapstructure:"device" validate:"empty=false"`
	Channel string `mapstructure:"channel" validate:"empty=false"`
	LNB     bool   `mapstructure:"lnb"`
}

// LoadDecode applies defaults, decodes raw (typically the result of
// binding cobra flags into a map, or a viper config file's subtree)
// through mapstructure, and validates the result.
func LoadDecode(raw map[string]any) (Decode, error) {
	var d Decode
	if err := defaults.Set(&d); err != nil {
		return Decode{}, fmt.Errorf("config: applying defaults: %w", err)
	}
	if err := mapstructure.Decode(raw, &d); err != nil {
		return Decode{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := validateDecode(d); err != nil {
		return Decode{}, err
	}
	return d, nil
}

func validateDecode(d Decode) error {
	if d.Source == "" && d.Device == "" {
		return casemu.NewConfigError("source", "", "either a source file or a tuner device must be given")
	}
	haveKey0, haveKey1 := d.Key0 != "", d.Key1 != ""
	if haveKey0 != haveKey1 {
		return casemu.NewConfigError("key0/key1", nil, "working keys must be supplied together or not at all")
	}
	return nil
}

// LoadChecksignal applies defaults, decodes, and validates a Checksignal
// configuration using dealancer/validate.v2 struct tags.
func LoadChecksignal(raw map[string]any) (Checksignal, error) {
	var c Checksignal
	if err := defaults.Set(&c); err != nil {
		return Checksignal{}, fmt.Errorf("config: applying defaults: %w", err)
	}
	if err := mapstructure.Decode(raw, &c); err != nil {
		return Checksignal{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := validate.Validate(&c); err != nil {
		return Checksignal{}, casemu.NewConfigError("", nil, err.Error())
	}
	return c, nil
}

// LoadFile reads an optional viper-backed config file (if configPath is
// non-empty) and returns its contents as a generic map suitable for
// LoadDecode/LoadChecksignal, so CLI flags and a config file can be
// merged by the caller before validation.
func LoadFile(configPath string) (map[string]any, error) {
	if configPath == "" {
		return map[string]any{}, nil
	}
	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
	}
	return v.AllSettings(), nil
}

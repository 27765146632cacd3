// Package config holds the optional per-project settings file that can sit
// next to a Runfile.
package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ConfigName is the settings file looked up in the Runfile's directory.
const ConfigName = ".run.yaml"

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Config tunes presentation and execution defaults. All fields are
// optional; zero values fall back to Default.
type Config struct {
	// Color controls help colorization: always, auto or never.
	Color string `json:"color" validate:"omitempty,oneof=always auto never"`

	// Shell overrides the interpreter for commands without a shebang.
	Shell string `json:"shell"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Color: ColorAuto,
	}
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

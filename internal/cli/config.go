// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "ECPOINT"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultWorkers   = 4
)

// Config holds the settings shared by every ecpoint command.  Values come from
// command line flags first and ECPOINT_* environment variables second.
type Config struct {
	Log     LogConfig
	Workers int
}

// LogConfig selects the level and encoding of log records.
type LogConfig struct {
	// Level is a zap level name such as "debug" or "warn".
	Level string

	// Format is one of "console", "json" or "logfmt".
	Format string
}

// newViper returns a viper instance that resolves keys such as log.level from
// environment variables such as ECPOINT_LOG_LEVEL.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// registerFlags adds the persistent configuration flags and binds them to
// their viper keys.
func registerFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", defaultLogFormat, "log format (console, json, logfmt)")
	flags.Int("workers", defaultWorkers, "maximum number of concurrent scalar multiplications")

	bindings := map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"workers":    "workers",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding flag %s", name)
		}
	}
	return nil
}

// loadConfig resolves and validates the configuration.
func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Workers: v.GetInt("workers"),
	}
	if cfg.Workers < 1 {
		return Config{}, errors.Errorf("workers must be at least 1, got %d",
			cfg.Workers)
	}
	return cfg, nil
}

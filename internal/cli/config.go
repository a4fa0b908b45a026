// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrFormat is returned for unknown output formats.
var ErrFormat = errors.New("unknown output format")

// Config holds the command line configuration.
type Config struct {
	// Format is the output format, "yaml" or "json".
	Format string `mapstructure:"format"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`

	// Name is the preferred name of range variables.
	Name string `mapstructure:"name"`

	// Tests includes test files when loading packages.
	Tests bool `mapstructure:"tests"`
}

// LogValue implements [slog.LogValuer].
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("format", c.Format),
		slog.Bool("verbose", c.Verbose),
		slog.String("name", c.Name),
		slog.Bool("tests", c.Tests),
	)
}

// registerConfigFlags defines the persistent flags backing [Config].
func registerConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default .quickassist.yaml in the working directory)")
	flags.StringP("format", "f", FormatYAML, "output format: yaml or json")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("name", "", "preferred name of range variables")
	flags.Bool("tests", false, "include test files")
}

// loadConfig reads the configuration from flags, QUICKASSIST_* environment variables and
// the config file, in that order of precedence.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix("QUICKASSIST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".quickassist")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	switch cfg.Format {
	case FormatYAML, FormatJSON:

	default:
		return Config{}, fmt.Errorf("%w %q", ErrFormat, cfg.Format)
	}

	return cfg, nil
}

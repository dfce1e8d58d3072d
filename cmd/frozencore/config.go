// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultRule = "orca"
	envPrefix   = "FROZENCORE_"
)

// defaultConfigFiles are searched in the working directory when no --config is given.
var defaultConfigFiles = []string{"frozencore.yaml", "frozencore.yml"}

// Config is the merged CLI configuration.
type Config struct {
	Rule    string `koanf:"rule"`
	ECPOnly bool   `koanf:"ecp_only"`
	Charge  int    `koanf:"charge"`
	Verbose bool   `koanf:"verbose"`
}

// configKeys maps flag names onto config keys.
var configKeys = map[string]string{
	"rule":     "rule",
	"ecp-only": "ecp_only",
	"charge":   "charge",
	"verbose":  "verbose",
}

// LoadConfig merges defaults, the config file, FROZENCORE_* environment
// variables and explicitly set flags, in increasing priority. It returns the
// config file used, if any.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"rule":     DefaultRule,
		"ecp_only": false,
		"charge":   0,
		"verbose":  false,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	used := cfgFile
	if used == "" {
		for _, name := range defaultConfigFiles {
			if _, err := os.Stat(name); err == nil {
				used = name
				break
			}
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// FROZENCORE_ECP_ONLY -> ecp_only
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := configKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}
	if strings.TrimSpace(c.Rule) == "" {
		c.Rule = DefaultRule
	}

	return &c, used, nil
}

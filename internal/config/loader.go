package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName      = ".treecheck"
	configType      = "yaml"
	envPrefix       = "TREECHECK"
	envKeySeparator = "_"
)

// Load loads the configuration from defaults, the config file, environment
// variables and flags, in increasing order of precedence.
//
// If path is non-empty it is used as the config file, which must then exist.
// Otherwise .treecheck.yaml is searched in the working directory and $HOME;
// a missing file is not an error. Flags are matched to settings by name, with
// dashes standing for underscores (--key-space sets key_space); only flags
// which were changed on the command line override other sources.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if bindErr == nil && slices.Contains(settings, key) {
				bindErr = v.BindPFlag(key, f)
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

var settings = []string{"seed", "operations", "key_space", "remove_ratio", "check_every", "forms"}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("operations", DefaultOperations)
	v.SetDefault("key_space", DefaultKeySpace)
	v.SetDefault("remove_ratio", DefaultRemoveRatio)
	v.SetDefault("check_every", DefaultCheckEvery)
	v.SetDefault("forms", DefaultForms)
}

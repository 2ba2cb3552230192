// Package configloader builds linelog configurations from the environment,
// YAML documents, or configuration files using Viper.
package configloader

import (
	"bytes"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/viper"

	"github.com/hyp3rd/linelog"
	"github.com/hyp3rd/linelog/internal/constants"
)

// rawConfig mirrors the external configuration surface before validation.
type rawConfig struct {
	Name   string `mapstructure:"name"`
	Output string `mapstructure:"output"`
	Color  string `mapstructure:"color"`
}

func allKeys() []string {
	return []string{"name", "output", "color"}
}

// FromEnv loads configuration sourced from environment variables using the
// provided prefix. Environment keys are normalized by uppercasing and
// replacing dots with underscores; an empty prefix falls back to the default
// LINELOG prefix.
func FromEnv(prefix string) (*linelog.Config, error) {
	viperInstance := viper.New()

	if prefix == "" {
		prefix = constants.EnvPrefix
	}

	err := bindEnvironment(viperInstance, prefix)
	if err != nil {
		return nil, err
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

// FromYAML loads configuration from a YAML document provided as bytes.
func FromYAML(data []byte) (*linelog.Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read YAML configuration")
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

// FromFile loads configuration from a file and merges environment overrides
// using the default prefix.
func FromFile(path string) (*linelog.Config, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, constants.EnvPrefix)
	if err != nil {
		return nil, err
	}

	viperInstance.SetConfigFile(path)

	err = viperInstance.ReadInConfig()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read configuration file").
			WithMetadata("path", path)
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

func loadRawFromViper(viperInstance *viper.Viper) (rawConfig, error) {
	var raw rawConfig

	err := viperInstance.Unmarshal(&raw)
	if err != nil {
		return rawConfig{}, ewrap.Wrap(err, "failed to decode configuration")
	}

	return raw, nil
}

func bindEnvironment(viperInstance *viper.Viper, prefix string) error {
	replacer := strings.NewReplacer(".", "_")
	viperInstance.SetEnvKeyReplacer(replacer)
	viperInstance.SetEnvPrefix(strings.TrimSuffix(prefix, "_"))
	viperInstance.AutomaticEnv()

	for _, key := range allKeys() {
		err := viperInstance.BindEnv(key)
		if err != nil {
			return ewrap.Wrap(err, "failed to bind environment key").
				WithMetadata("key", key).
				WithMetadata("prefix", prefix)
		}
	}

	return nil
}

func applyRaw(raw rawConfig) (*linelog.Config, error) {
	config := linelog.DefaultConfig()

	if raw.Name != "" {
		config.Name = raw.Name
	}

	if raw.Output != "" {
		config.Output = raw.Output
	}

	colorMode, err := linelog.ParseColorMode(raw.Color)
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid configuration")
	}

	config.Color = colorMode

	return &config, nil
}

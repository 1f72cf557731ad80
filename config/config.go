// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Pokedex)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	// Synchronize environment variable bindings.
	viper.SetEnvPrefix(constant.Pokedex)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	// Initialize factory default values.
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// Path is the config file location inside where.Config().
func Path() string {
	return filepath.Join(where.Config(), constant.Pokedex+".toml")
}

// Write persists the current settings, creating the config directory when needed.
func Write() error {
	if err := where.Ensure(where.Config()); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	err := viper.WriteConfigAs(Path())
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Set validates raw against the field registered for k and applies it.
func Set(k string, raw ...string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}

	v, err := field.Parse(raw...)
	if err != nil {
		return nil, err
	}

	viper.Set(k, v)
	return v, nil
}

// Reset restores the default of k, or of every key when k is empty.
func Reset(k string) error {
	if k == "" {
		for name, field := range Default {
			viper.Set(name, field.Value)
		}
		return nil
	}

	field, ok := Default[k]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}
	viper.Set(k, field.Value)
	return nil
}

// ErrUnknownKey is returned for keys missing from Default.
var ErrUnknownKey = errors.New("unknown key")

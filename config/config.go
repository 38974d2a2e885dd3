// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/filesystem"
	"github.com/odyssey-club/aiosource/key"
	"github.com/odyssey-club/aiosource/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return Validate()
}

// Validate rejects values that would otherwise be silently clamped at request time.
func Validate() error {
	if i := viper.GetInt(key.CommentsPageSizeIndex); i < 0 || i > 4 {
		return fmt.Errorf("%s must be between 0 and 4, got %d", key.CommentsPageSizeIndex, i)
	}

	if i := viper.GetInt(key.ChannelGroupingTypeIndex); i < 0 || i > 5 {
		return fmt.Errorf("%s must be between 0 and 5, got %d", key.ChannelGroupingTypeIndex, i)
	}

	if d := viper.GetInt(key.AccessFreeWindowDays); d < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", key.AccessFreeWindowDays, d)
	}

	if _, err := time.ParseDuration(viper.GetString(key.CacheLifetime)); err != nil {
		return fmt.Errorf("%s: %w", key.CacheLifetime, err)
	}

	return nil
}

// Package config registers every setting fitplayer understands and loads fitplayer.toml through viper.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jeremyfitness/fitplayer/constant"
	"github.com/jeremyfitness/fitplayer/filesystem"
	"github.com/jeremyfitness/fitplayer/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps configuration keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Path is where the configuration file lives, whether or not it exists yet.
func Path() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// Setup registers defaults and environment bindings, then reads fitplayer.toml if present.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		if err := viper.BindEnv(env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", Path(), err)
	}

	return nil
}

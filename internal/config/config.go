// Package config loads the runtime configuration.
//
// Every value has a default so the binary runs with no configuration
// at all. Values can be overridden through an optional YAML file and
// through environment variables with the BUDGET_ prefix, environment
// taking precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`         // Port the HTTP server listens on
	Mode        string `mapstructure:"mode"`         // gin mode, release or debug
	EnablePprof bool   `mapstructure:"enable_pprof"` // Expose pprof profiles under /debug/pprof
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"` // Path to the sqlite database file
}

type LogConfig struct {
	Format string `mapstructure:"format"` // json or human
}

type CORSConfig struct {
	// Origins allowed to call the API, space separated. CORS stays
	// disabled when empty.
	AllowOrigins string `mapstructure:"allow_origins"`
}

// Load reads the configuration. configPath may be empty, then only
// defaults and environment variables apply.
func Load(configPath string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.enable_pprof", false)
	v.SetDefault("database.path", "data/budget.db")
	v.SetDefault("log.format", "")
	v.SetDefault("cors.allow_origins", "")

	v.SetEnvPrefix("budget")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}

	return config, nil
}

// Origins splits the configured CORS origins into a list.
func (c CORSConfig) Origins() []string {
	return strings.Fields(c.AllowOrigins)
}

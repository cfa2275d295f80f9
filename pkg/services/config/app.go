package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "PERMIT_ATLAS"

var serverEnvAliases = map[string]string{
	"server.host": "SERVER_HOST",
	"server.port": "SERVER_PORT",
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CatalogConfig struct {
	Profile      string `mapstructure:"profile"`
	ProfilesPath string `mapstructure:"profiles_path"`
}

func DefaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".permitatlas.ini"
	}
	return filepath.Join(home, ".permitatlas.ini")
}

// LoadConfig reads the application config. An empty path uses defaults and
// PERMIT_ATLAS_* environment variables only, e.g. PERMIT_ATLAS_SERVER_PORT.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.profile", "default")
	v.SetDefault("catalog.profiles_path", DefaultProfilesPath())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Plain SERVER_HOST and SERVER_PORT, e.g. from a .env file, apply when the prefixed variables are unset.
	for key, env := range serverEnvAliases {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

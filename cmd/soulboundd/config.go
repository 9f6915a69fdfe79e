package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/iov-one/soulbound/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "SOULBOUND"

// Config is the process configuration. Values come from an optional yaml
// file, overridden by SOULBOUND_* environment variables.
type Config struct {
	Home     string `mapstructure:"home" validate:"required"`
	ChainID  string `mapstructure:"chain_id" validate:"required"`
	AppName  string `mapstructure:"app_name" validate:"required"`
	Keypair  string `mapstructure:"keypair"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info error none"`
	Debug    bool   `mapstructure:"debug"`
	// ClockOffset shifts the block time of every transaction relative to
	// the wall clock.
	ClockOffset time.Duration `mapstructure:"clock_offset"`
}

// DBPath is where the iavl store lives inside the home directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.Home, "data", "soulbound.db")
}

// BlockTime returns the time stamped on transactions.
func (c *Config) BlockTime() time.Time {
	return time.Now().Add(c.ClockOffset).UTC()
}

func defaultHome() string {
	return filepath.Join(os.ExpandEnv("$HOME"), ".soulbound")
}

// LoadConfig reads the configuration. An empty path skips the file and
// uses defaults and the environment only.
func LoadConfig(path string, v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("home", defaultHome())
	v.SetDefault("chain_id", "soulbound-local")
	v.SetDefault("app_name", "soulboundd")
	v.SetDefault("keypair", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("debug", false)
	v.SetDefault("clock_offset", "0s")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "read config %s: %s", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode config: %s", err)
	}
	cfg.Home = os.ExpandEnv(cfg.Home)
	cfg.Keypair = os.ExpandEnv(cfg.Keypair)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "validate config: %s", err)
	}
	return &cfg, nil
}

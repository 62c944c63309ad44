package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/names"
)

// LogConfig controls the process logger.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Config is the tool configuration.
type Config struct {
	Log    LogConfig `mapstructure:"log"`
	Format string    `mapstructure:"format"`
	Tables []string  `mapstructure:"tables"`
}

func defaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 7},
		Format: formatJSON,
	}
}

// loadConfig reads path (or blerpc.yaml from the usual places) with BLERPC_
// environment overrides, e.g. BLERPC_LOG_LEVEL=debug.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BLERPC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", cfg.Log.MaxBackups)
	v.SetDefault("log.max_age_days", cfg.Log.MaxAgeDays)
	v.SetDefault("log.compress", cfg.Log.Compress)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("tables", cfg.Tables)

	if path == "" {
		path = os.Getenv("BLERPC_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("blerpc")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".blerpc"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "read config")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case formatJSON, formatCBOR, formatCBORHex:
	default:
		return errors.Errorf("invalid format %q", c.Format)
	}
	return nil
}

// apply configures the package logger and loads extra name tables.
func (c *Config) apply() (io.Closer, error) {
	if err := blerpc.SetLogLevel(c.Log.Level); err != nil {
		return nil, errors.Wrapf(err, "log level %q", c.Log.Level)
	}

	var closer io.Closer = nopCloser{}
	if c.Log.File != "" {
		lj := &lumberjack.Logger{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSizeMB,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAgeDays,
			Compress:   c.Log.Compress,
		}
		blerpc.SetLogOutput(lj)
		closer = lj
	}

	for _, f := range c.Tables {
		if err := names.Default().LoadFile(f); err != nil {
			return closer, err
		}
		blerpc.GetLogger().Debugf("loaded name tables from %s", f)
	}
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

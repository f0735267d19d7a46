package main

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
)

// Config controls the dumper. Every field has a default so the config
// file is optional.
type Config struct {
	LogLevel     string `toml:"log-level"`
	PosFile      string `toml:"pos-file"`
	DecodeBodies bool   `toml:"decode-bodies"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		PosFile:      "binlog-dump.pos",
		DecodeBodies: true,
	}
}

func loadConfig(fileName string) (*Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(fileName, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

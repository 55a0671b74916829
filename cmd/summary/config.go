package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	ExportPath string `toml:"export_path"`
	Compressed bool   `toml:"compressed"`
	Timezone   string `toml:"timezone"`
	GroupBy    string `toml:"group_by"`
	Top        int    `toml:"top"`
	LogLevel   string `toml:"log_level"`
}

func NewConfig() *Config {
	return &Config{
		Compressed: true,
		Timezone:   "UTC",
		GroupBy:    "day",
		Top:        5,
		LogLevel:   "info",
	}
}

func (c *Config) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer file.Close()

	err = toml.NewDecoder(file).Decode(c)
	if err != nil {
		return fmt.Errorf("unable to decode %s: %w", path, err)
	}

	return nil
}

func (c *Config) Level() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

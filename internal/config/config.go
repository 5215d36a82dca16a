package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultCatalogURL = "https://raw.githubusercontent.com/keiyoushi/extensions/refs/heads/repo/index.min.json"
	DefaultOutputPath = "index.min.json"
	DefaultLang       = "es"

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	DotEnvFileName = ".env"

	EnvCatalogURL = "EXTPROBE_CATALOG_URL"
	EnvOutputPath = "EXTPROBE_OUTPUT_PATH"
	EnvLang       = "EXTPROBE_LANG"
	EnvLogLevel   = "EXTPROBE_LOG_LEVEL"
)

type Config struct {
	CatalogURL string `yaml:"catalog_url"`
	OutputPath string `yaml:"output_path"`
	Lang       string `yaml:"lang"`
	LogLevel   string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		CatalogURL: DefaultCatalogURL,
		OutputPath: DefaultOutputPath,
		Lang:       DefaultLang,
		LogLevel:   LogLevelInfo,
	}
}

/*
Load builds config in this order: defaults, yaml file (if path is not empty),
.env file (if exists), environment variables.
*/
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("cannot unmarshal config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(DotEnvFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load %s: %w", DotEnvFileName, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

func (c *Config) applyEnv() {
	for env, field := range map[string]*string{
		EnvCatalogURL: &c.CatalogURL,
		EnvOutputPath: &c.OutputPath,
		EnvLang:       &c.Lang,
		EnvLogLevel:   &c.LogLevel,
	} {
		if val, ok := os.LookupEnv(env); ok && val != "" {
			*field = val
		}
	}
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.CatalogURL)
	if err != nil {
		return fmt.Errorf("cannot parse catalog url: %w", err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("catalog url must be absolute http(s) url: %q", c.CatalogURL)
	}

	if c.OutputPath == "" {
		return fmt.Errorf("output path is empty")
	}

	if c.Lang == "" {
		return fmt.Errorf("lang is empty")
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case LogLevelInfo:
		return slog.LevelInfo, nil
	case LogLevelWarn:
		return slog.LevelWarn, nil
	case LogLevelError:
		return slog.LevelError, nil
	case LogLevelDebug:
		return slog.LevelDebug, nil
	}

	return slog.LevelInfo, fmt.Errorf("unknown log level: %q", c.LogLevel)
}

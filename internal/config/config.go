// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	IndexSQLite = "sqlite"
	IndexMemory = "memory"
)

type AppConfig struct {
	Host  string `yaml:"host" env:"AITRENDS_HOST"`
	Port  int    `yaml:"port" env:"AITRENDS_PORT"`
	Debug bool   `yaml:"debug" env:"AITRENDS_DEBUG"`
}

type DatasetConfig struct {
	Path string `yaml:"path" env:"AITRENDS_DATASET"`
	// Index picks the title lookup backend: sqlite or memory.
	Index string `yaml:"index" env:"AITRENDS_INDEX"`
}

type ChartConfig struct {
	Title         string  `yaml:"title"`
	SizeMax       float64 `yaml:"size_max"`
	SizeMin       float64 `yaml:"size_min"`
	CreationColor string  `yaml:"creation_color"`
	LossColor     string  `yaml:"loss_color"`
}

type LimitsConfig struct {
	CallbacksPerSec float64 `yaml:"callbacks_per_sec"`
	Burst           int     `yaml:"burst"`
}

type Config struct {
	App     AppConfig     `yaml:"app"`
	Dataset DatasetConfig `yaml:"dataset"`
	Chart   ChartConfig   `yaml:"chart"`
	Limits  LimitsConfig  `yaml:"limits"`
}

// Locator finds the config file.
type Locator struct {
	Path string `env:"AITRENDS_CONFIG" envDefault:"config.yml"`
}

func Default() Config {
	return Config{
		App:     AppConfig{Host: "127.0.0.1", Port: 8050, Debug: true},
		Dataset: DatasetConfig{Path: "ai_job_trends_dataset.csv", Index: IndexSQLite},
		Chart: ChartConfig{
			Title:         "Industry-Level Job Change % vs. AI Impact Intensity",
			SizeMax:       50,
			SizeMin:       4,
			CreationColor: "#2ecc71",
			LossColor:     "#e74c3c",
		},
		Limits: LimitsConfig{CallbacksPerSec: 20, Burst: 40},
	}
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

// ConfigPath resolves the config file location from AITRENDS_CONFIG.
func ConfigPath() (string, error) {
	var loc Locator
	if err := env.Parse(&loc); err != nil {
		return "", fmt.Errorf("parse env: %w", err)
	}
	return loc.Path, nil
}

// Load starts from Default, overlays the YAML file at path when it exists,
// then applies AITRENDS_* environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return cfg, err
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

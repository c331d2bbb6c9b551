package config

import (
	"errors"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if strings.TrimSpace(cfg.App.Host) == "" {
		errs = append(errs, "app.host is required")
	}

	if strings.TrimSpace(cfg.Dataset.Path) == "" {
		errs = append(errs, "dataset.path is required")
	}
	switch cfg.Dataset.Index {
	case IndexSQLite, IndexMemory:
	default:
		errs = append(errs, "dataset.index must be sqlite or memory")
	}

	if cfg.Chart.SizeMax <= 0 {
		errs = append(errs, "chart.size_max must be > 0")
	}
	if cfg.Chart.SizeMin <= 0 || cfg.Chart.SizeMin > cfg.Chart.SizeMax {
		errs = append(errs, "chart.size_min must be > 0 and <= chart.size_max")
	}
	checkColor := func(name, c string) {
		if !hexColor.MatchString(c) {
			errs = append(errs, name+" must be a hex colour like #2ecc71")
		}
	}
	checkColor("chart.creation_color", cfg.Chart.CreationColor)
	checkColor("chart.loss_color", cfg.Chart.LossColor)

	if cfg.Limits.CallbacksPerSec <= 0 {
		errs = append(errs, "limits.callbacks_per_sec must be > 0")
	}
	if cfg.Limits.Burst <= 0 {
		errs = append(errs, "limits.burst must be > 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

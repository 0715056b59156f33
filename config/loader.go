package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Cost: CostConfig{
			HeuristicMinPerKm: 2.0,
			HopTransferWeight: 1.0,
			MaxVisitedStates:  1_000_000,
			DefaultCriterion:  "time",
		},
	}
}

// LoadAppConfig loads and validates the application configuration. With an
// empty path it looks for config.yml; a missing file leaves the defaults in
// place.
func LoadAppConfig(path string) error {
	Config = Defaults()
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if path == "" {
			return nil
		}
		return err
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	if cfg.Cost.HeuristicMinPerKm == 0 {
		cfg.Cost.HeuristicMinPerKm = Defaults().Cost.HeuristicMinPerKm
	}
	if cfg.Cost.MaxVisitedStates == 0 {
		cfg.Cost.MaxVisitedStates = Defaults().Cost.MaxVisitedStates
	}
	if cfg.Cost.DefaultCriterion == "" {
		cfg.Cost.DefaultCriterion = Defaults().Cost.DefaultCriterion
	}
	Config = cfg
	return nil
}

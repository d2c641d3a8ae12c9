// Package cfgio loads a Scenario from a YAML or Hjson file on disk, and
// loads .env-style environment defaults. Grounded on cmd/api/main.go's
// godotenv.Load() + yaml.Unmarshal config-loading pattern.
package cfgio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"zngsim/pkg/config"
	"zngsim/pkg/core/utils"
)

// LoadEnv loads a .env file if present, silently doing nothing if it isn't
// — matching the teacher's tolerant godotenv.Load() call in cmd/api/main.go.
func LoadEnv(path string) {
	if path == "" {
		path = ".env"
	}
	_ = godotenv.Load(path)
}

// LoadScenario reads a scenario file and unmarshals it into a Scenario,
// dispatching on file extension: .yaml/.yml via gopkg.in/yaml.v2, .hjson
// via github.com/hjson/hjson-go/v4 (through pkg/core/utils.ParseHJSONToStruct).
// The loaded scenario is validated before being returned.
func LoadScenario(path string) (config.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Scenario{}, fmt.Errorf("CONFIG_READ_ERROR: %w", err)
	}

	scenario := config.DefaultScenario()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &scenario); err != nil {
			return config.Scenario{}, fmt.Errorf("CONFIG_YAML_ERROR: %w", err)
		}
	case ".hjson":
		if err := utils.ParseHJSONToStruct(string(data), &scenario); err != nil {
			return config.Scenario{}, fmt.Errorf("CONFIG_HJSON_ERROR: %w", err)
		}
	default:
		return config.Scenario{}, fmt.Errorf("CONFIG_UNKNOWN_EXTENSION: %q (expected .yaml, .yml, or .hjson)", filepath.Ext(path))
	}

	if err := scenario.Validate(); err != nil {
		return config.Scenario{}, fmt.Errorf("CONFIG_VALIDATION_ERROR: %w", err)
	}
	return scenario, nil
}

// LoadChargerVariant reads a standalone charger-variant file (useful when
// comparing variants outside a full scenario), dispatching the same way as
// LoadScenario.
func LoadChargerVariant(path string) (config.ChargerVariant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.ChargerVariant{}, fmt.Errorf("CONFIG_READ_ERROR: %w", err)
	}

	variant := config.DefaultChargerVariant()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &variant); err != nil {
			return config.ChargerVariant{}, fmt.Errorf("CONFIG_YAML_ERROR: %w", err)
		}
	case ".hjson":
		if err := utils.ParseHJSONToStruct(string(data), &variant); err != nil {
			return config.ChargerVariant{}, fmt.Errorf("CONFIG_HJSON_ERROR: %w", err)
		}
	default:
		return config.ChargerVariant{}, fmt.Errorf("CONFIG_UNKNOWN_EXTENSION: %q (expected .yaml, .yml, or .hjson)", filepath.Ext(path))
	}
	return variant, nil
}

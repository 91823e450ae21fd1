// SPDX-License-Identifier: MIT

// Package config loads the crowdtsp settings in layers: built-in defaults,
// an optional YAML file, an optional dotenv file, then CROWDTSP_* environment
// variables. Command-line flags are applied on top by the caller. The merged
// result is validated with struct tags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crowdtsp/crowd"
	"github.com/katalvlaran/crowdtsp/ga"
	"github.com/katalvlaran/crowdtsp/render"
	"github.com/katalvlaran/crowdtsp/solver"
	"github.com/katalvlaran/crowdtsp/tsp"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "CROWDTSP_"

var (
	// ErrInvalid is returned when the merged configuration violates a constraint.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrLoad is returned when a configuration source cannot be read or decoded.
	ErrLoad = errors.New("config: cannot load configuration")
)

// Config is the complete application configuration.
type Config struct {
	Seed int64 `yaml:"seed" env:"SEED"`

	GA struct {
		Generations    int     `yaml:"generations" env:"GENERATIONS" validate:"gte=0"`
		PopulationSize int     `yaml:"population_size" env:"POPULATION_SIZE" validate:"gte=0,ne=1"`
		MutationRate   float64 `yaml:"mutation_rate" env:"MUTATION_RATE" validate:"gte=0,lte=1"`
	} `yaml:"ga" envPrefix:"GA_"`

	Crowd struct {
		Size      int     `yaml:"size" env:"SIZE" validate:"gte=1"`
		Workers   int     `yaml:"workers" env:"WORKERS" validate:"gte=0"`
		Tolerance float64 `yaml:"tolerance" env:"TOLERANCE" validate:"gte=0"`
	} `yaml:"crowd" envPrefix:"CROWD_"`

	Exact struct {
		MaxCities int `yaml:"max_cities" env:"MAX_CITIES" validate:"gte=0,lte=13"`
	} `yaml:"exact" envPrefix:"EXACT_"`

	Log struct {
		Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" env:"FORMAT" validate:"oneof=text json"`
	} `yaml:"log" envPrefix:"LOG_"`

	Report struct {
		Color bool `yaml:"color" env:"COLOR"`
	} `yaml:"report" envPrefix:"REPORT_"`

	Plot struct {
		Path     string  `yaml:"path" env:"PATH"`
		WidthCm  float64 `yaml:"width_cm" env:"WIDTH_CM" validate:"gt=0"`
		HeightCm float64 `yaml:"height_cm" env:"HEIGHT_CM" validate:"gt=0"`
	} `yaml:"plot" envPrefix:"PLOT_"`

	Metrics struct {
		Textfile string `yaml:"textfile" env:"TEXTFILE"`
	} `yaml:"metrics" envPrefix:"METRICS_"`
}

// Default returns the built-in defaults.
func Default() Config {
	var c Config
	c.GA.Generations = ga.DefaultGenerations
	c.GA.MutationRate = ga.DefaultMutationRate
	c.Crowd.Size = solver.DefaultCrowdSize
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Plot.WidthCm = render.DefaultWidthCm
	c.Plot.HeightCm = render.DefaultHeightCm

	return c
}

// Load merges defaults, the YAML file at path and the dotenv file at
// envFile (both optional, skipped when empty) and the process environment,
// then validates the result.
//
// Dotenv values never override variables already set in the process
// environment, and the process environment is not modified.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	environ := env.ToMap(os.Environ())
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return Config{}, fmt.Errorf("%w: dotenv %q: %w", ErrLoad, envFile, err)
		}
		for k, v := range vars {
			if _, set := environ[k]; !set {
				environ[k] = v
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// Only the first error keeps the message readable.
			err = aggErr.Errors[0]
		}
		return Config{}, fmt.Errorf("%w: environment: %w", ErrLoad, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decodeYAML overlays the YAML file onto cfg. Unknown keys are rejected.
func decodeYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: yaml %q: %w", ErrLoad, path, err)
	}

	return nil
}

// Validate checks the struct-tag constraints.
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Exact.MaxCities > tsp.MaxExactCities {
		return fmt.Errorf("%w: exact.max_cities %d > %d", ErrInvalid, c.Exact.MaxCities, tsp.MaxExactCities)
	}

	return nil
}

// SolverOptions maps the configuration onto solver.Options.
func (c Config) SolverOptions() solver.Options {
	return solver.Options{
		Seed:      c.Seed,
		CrowdSize: c.Crowd.Size,
		Workers:   c.Crowd.Workers,
		ExactUpTo: c.Exact.MaxCities,
		GA: ga.Options{
			Generations:    c.GA.Generations,
			PopulationSize: c.GA.PopulationSize,
			MutationRate:   c.GA.MutationRate,
		},
		Crowd: crowd.Options{Tolerance: c.Crowd.Tolerance},
	}
}

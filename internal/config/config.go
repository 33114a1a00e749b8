package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64         `yaml:"seed"`
	Run     RunConfig     `yaml:"run"`
	OneMax  OneMaxConfig  `yaml:"onemax"`
	BinPack BinPackConfig `yaml:"binpack"`
	Logging LogConfig     `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RunConfig defines the evolution budget and engine settings shared by all problems
type RunConfig struct {
	Generations     int     `yaml:"generations" validate:"gte=0"`
	Population      int     `yaml:"population" validate:"gte=1"`
	Elitism         float64 `yaml:"elitism" validate:"gte=0,lte=1"` // fraction of elites, 0 disables
	OutputFrequency int     `yaml:"output_frequency" validate:"gte=0"`
	Runs            int     `yaml:"runs" validate:"gte=1"`
	Workers         int     `yaml:"workers" validate:"gte=0"` // parallel runs, <=1 runs sequentially
}

// OneMaxConfig defines the all-ones bit string problem
type OneMaxConfig struct {
	Length       int     `yaml:"length" validate:"gte=1"`
	BitMutationP float64 `yaml:"bit_mutation_p" validate:"gte=0,lte=1"`
	CrossoverP   float64 `yaml:"crossover_p" validate:"gte=0,lte=1"`
}

// BinPackConfig defines the bin packing problem
type BinPackConfig struct {
	WeightsPath    string  `yaml:"weights_path"`
	Bins           int     `yaml:"bins" validate:"gte=2"`
	MutationP      float64 `yaml:"mutation_p" validate:"gte=0,lte=1"`
	GeneChangeP    float64 `yaml:"gene_change_p" validate:"gte=0,lte=1"`
	CrossoverP     float64 `yaml:"crossover_p" validate:"gte=0,lte=1"`
	TournamentSize int     `yaml:"tournament_size" validate:"gte=1"`
	TournamentWinP float64 `yaml:"tournament_win_p" validate:"gte=0,lte=1"`
}

// LogConfig defines logging and artifact output
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Format      string `yaml:"format" validate:"oneof=text json"`
	CSVPath     string `yaml:"csv_path"`
	JSONPath    string `yaml:"json_path"`
	ChampionDir string `yaml:"champion_dir"`
}

// MetricsConfig defines the Prometheus endpoint. An empty address disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Seed: 1337,
		Run: RunConfig{
			Generations:     1000,
			Population:      100,
			Elitism:         0,
			OutputFrequency: 1,
			Runs:            1,
			Workers:         1,
		},
		OneMax: OneMaxConfig{
			Length:       70,
			BitMutationP: 0.2,
			CrossoverP:   0.1,
		},
		BinPack: BinPackConfig{
			Bins:           5,
			MutationP:      0.1,
			GeneChangeP:    0.1,
			CrossoverP:     0.1,
			TournamentSize: 2,
			TournamentWinP: 0.8,
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML config file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// Apply defaults
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.BinPack.TournamentSize == 0 {
		cfg.BinPack.TournamentSize = 2
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("invalid config: %w", err)
}

package config

import (
	"fmt"
	"os"

	"github.com/drakos74/edu-cluster/internal/model"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the location of the default configuration file.
const DefaultPath = "infra/config/clustering.yaml"

// Clustering is the configuration of a pipeline run.
type Clustering struct {
	// K is the cluster count used when the caller does not provide one.
	K int `yaml:"k" json:"k"`
	// MinK and MaxK bound the cluster count accepted from users.
	MinK       int   `yaml:"min_k" json:"min_k"`
	MaxK       int   `yaml:"max_k" json:"max_k"`
	Seed       int64 `yaml:"seed" json:"seed"`
	Iterations int   `yaml:"iterations" json:"iterations"`
	Restarts   int   `yaml:"restarts" json:"restarts"`
}

// Server is the configuration of the http server.
type Server struct {
	Name  string `yaml:"name"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

// Config is the full application configuration.
type Config struct {
	Clustering Clustering `yaml:"clustering"`
	Server     Server     `yaml:"server"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Clustering: Clustering{
			K:          3,
			MinK:       2,
			MaxK:       5,
			Seed:       42,
			Iterations: 300,
			Restarts:   10,
		},
		Server: Server{
			Name: "edu-cluster",
			Port: 6090,
		},
	}
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	cl := c.Clustering
	if cl.MinK < 1 || cl.MaxK < cl.MinK {
		return fmt.Errorf("invalid k bounds [%d,%d]: %w", cl.MinK, cl.MaxK, model.InvalidParameterErr)
	}
	if err := cl.Check(cl.K); err != nil {
		return fmt.Errorf("invalid default k: %w", err)
	}
	if cl.Iterations < 1 {
		return fmt.Errorf("iterations must be positive but was %d: %w", cl.Iterations, model.InvalidParameterErr)
	}
	if cl.Restarts < 1 {
		return fmt.Errorf("restarts must be positive but was %d: %w", cl.Restarts, model.InvalidParameterErr)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d: %w", c.Server.Port, model.InvalidParameterErr)
	}
	return nil
}

// Check checks if k lies within the configured bounds.
func (c Clustering) Check(k int) error {
	if k < c.MinK || k > c.MaxK {
		return fmt.Errorf("k must be in [%d,%d] but was %d: %w", c.MinK, c.MaxK, k, model.InvalidParameterErr)
	}
	return nil
}

// Load loads the config from the given path.
// Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not load config from %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("could not unmarshal config from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	log.Info().
		Str("path", path).
		Int("k", cfg.Clustering.K).
		Int64("seed", cfg.Clustering.Seed).
		Msg("loaded config")

	return cfg, nil
}

// MustLoad loads the config from the given path and panics on failure.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("could not load config: %s", err.Error()))
	}
	return cfg
}

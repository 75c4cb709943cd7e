// Package config loads the planning engine's YAML configuration and
// layers environment-variable overrides on top of it.
//
// Grounded on github.com/smilemakc/mbflow's src/internal/config.go
// (YAML-tagged struct, os.ReadFile + yaml.Unmarshal) with its manual
// CONFIG_PATH/TESTING env-var lookups generalized to
// github.com/spf13/viper's BindEnv/AutomaticEnv, following the same
// pattern used by niceyeti-tabular/tabular/reinforcement/learning.go.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds every recognized spec.md §6 option plus the ambient
// fields the engine's logging and RNG need.
type Config struct {
	MultiPlanner  string `yaml:"multi_planner"`
	Handler       string `yaml:"handler"`
	SinglePlanner string `yaml:"single_planner"`
	MSTAlgo       string `yaml:"mst_algo"`
	MaxIter       int    `yaml:"max_iter"`

	LogLevel string `yaml:"log_level"`
	RNGSeed  int64  `yaml:"rng_seed"`
}

// Default returns the reference defaults named throughout spec.md.
func Default() Config {
	return Config{
		MultiPlanner:  "BFS",
		Handler:       "NoOp",
		SinglePlanner: "STC",
		MSTAlgo:       "kruskal",
		MaxIter:       100,
		LogLevel:      "info",
		RNGSeed:       42069,
	}
}

// envBindings lists every MCPP_* environment override this config
// recognizes, mirroring learning.go's explicit BindEnv call list.
var envBindings = []string{
	"multi_planner",
	"handler",
	"single_planner",
	"mst_algo",
	"max_iter",
	"log_level",
	"rng_seed",
}

// Load reads YAML from path into Config's defaults, then applies any
// MCPP_-prefixed environment variable overrides (e.g. MCPP_MAX_ITER).
// A missing file is not an error: Load falls back to Default() and
// still applies env overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if buf, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	v := viper.New()
	v.SetEnvPrefix("MCPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envBindings {
		_ = v.BindEnv(key)
	}

	if s := v.GetString("multi_planner"); s != "" {
		cfg.MultiPlanner = s
	}
	if s := v.GetString("handler"); s != "" {
		cfg.Handler = s
	}
	if s := v.GetString("single_planner"); s != "" {
		cfg.SinglePlanner = s
	}
	if s := v.GetString("mst_algo"); s != "" {
		cfg.MSTAlgo = s
	}
	if n := v.GetInt("max_iter"); n != 0 {
		cfg.MaxIter = n
	}
	if s := v.GetString("log_level"); s != "" {
		cfg.LogLevel = s
	}
	if n := v.GetInt64("rng_seed"); n != 0 {
		cfg.RNGSeed = n
	}

	return &cfg, nil
}

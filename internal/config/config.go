// Package config loads widget tuning from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EpochConfig describes the batch schedule.
type EpochConfig struct {
	// Seconds is the duration of one batch, shared by every widget.
	Seconds int64 `yaml:"seconds"`
	// SolveWindowSeconds is how long solutions are accepted after a batch closes.
	SolveWindowSeconds int64 `yaml:"solve_window_seconds"`
}

// ViewConfig holds polling periods of the widget loops.
type ViewConfig struct {
	LinkInterval      time.Duration `yaml:"link_interval"`
	CountdownInterval time.Duration `yaml:"countdown_interval"`
	SolutionsInterval time.Duration `yaml:"solutions_interval"`
}

// LookupConfig configures the batch link lookup.
type LookupConfig struct {
	// InstanceURL is queried for a batch, "{batch}" is replaced with the batch number.
	InstanceURL string `yaml:"instance_url"`
	// LinkURL is the link published once the instance exists.
	LinkURL   string        `yaml:"link_url"`
	Timeout   time.Duration `yaml:"timeout"`
	RPS       int           `yaml:"rps"`
	CacheSize int           `yaml:"cache_size"`
}

// ExplorerConfig configures transaction links.
type ExplorerConfig struct {
	TxURL string `yaml:"tx_url"`
}

// Config is the full widget configuration.
type Config struct {
	Epoch    EpochConfig    `yaml:"epoch"`
	View     ViewConfig     `yaml:"view"`
	Lookup   LookupConfig   `yaml:"lookup"`
	Explorer ExplorerConfig `yaml:"explorer"`
}

// Default returns the production defaults.
func Default() *Config {
	return &Config{
		Epoch: EpochConfig{
			Seconds:            300,
			SolveWindowSeconds: 240,
		},
		View: ViewConfig{
			LinkInterval:      5 * time.Second,
			CountdownInterval: 250 * time.Millisecond,
			SolutionsInterval: 10 * time.Second,
		},
		Lookup: LookupConfig{
			InstanceURL: "https://dfusion-instances.s3.amazonaws.com/mainnet/{batch}/instance.json",
			LinkURL:     "https://dfusion-instances.s3.amazonaws.com/mainnet/{batch}/instance.json",
			Timeout:     10 * time.Second,
			RPS:         20,
			CacheSize:   4096,
		},
		Explorer: ExplorerConfig{
			TxURL: "https://etherscan.io/tx/",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values the widget loops rely on.
func (c *Config) Validate() error {
	var errs []error
	if c.Epoch.Seconds <= 0 {
		errs = append(errs, errors.New("epoch.seconds must be positive"))
	}
	if c.Epoch.SolveWindowSeconds <= 0 || c.Epoch.SolveWindowSeconds > c.Epoch.Seconds {
		errs = append(errs, errors.New("epoch.solve_window_seconds must be within (0, epoch.seconds]"))
	}
	if c.View.LinkInterval <= 0 {
		errs = append(errs, errors.New("view.link_interval must be positive"))
	}
	if c.View.CountdownInterval <= 0 {
		errs = append(errs, errors.New("view.countdown_interval must be positive"))
	}
	if c.View.SolutionsInterval <= 0 {
		errs = append(errs, errors.New("view.solutions_interval must be positive"))
	}
	if !strings.Contains(c.Lookup.InstanceURL, "{batch}") {
		errs = append(errs, errors.New("lookup.instance_url must contain {batch}"))
	}
	if c.Lookup.LinkURL == "" {
		errs = append(errs, errors.New("lookup.link_url is required"))
	}
	if c.Lookup.RPS <= 0 {
		errs = append(errs, errors.New("lookup.rps must be positive"))
	}
	if c.Lookup.CacheSize <= 0 {
		errs = append(errs, errors.New("lookup.cache_size must be positive"))
	}
	if c.Explorer.TxURL == "" {
		errs = append(errs, errors.New("explorer.tx_url is required"))
	}
	return errors.Join(errs...)
}

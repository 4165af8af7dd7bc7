package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls browser launch and capture behaviour.
type Config struct {
	// ExecPath points at the Chrome/Chromium binary. Empty means discover on
	// PATH.
	ExecPath              string        `yaml:"exec_path"`
	NavigationTimeout     time.Duration `yaml:"-"`
	SettleDelay           time.Duration `yaml:"-"`
	MaxConcurrentCaptures int           `yaml:"max_concurrent_captures"`

	NavigationTimeoutRaw string `yaml:"navigation_timeout"`
	SettleDelayRaw       string `yaml:"settle_delay"`
}

// LoadConfig reads configuration from disk.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open render config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a Config from a reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read render config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal render config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.parseDurations(); err != nil {
		return nil, err
	}
	cfg.ExecPath = strings.TrimSpace(os.ExpandEnv(cfg.ExecPath))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the configuration used when no render section is
// provided.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.NavigationTimeout = 30 * time.Second
	cfg.SettleDelay = time.Second
	return cfg
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.NavigationTimeoutRaw) == "" {
		c.NavigationTimeoutRaw = "30s"
	}
	if strings.TrimSpace(c.SettleDelayRaw) == "" {
		c.SettleDelayRaw = "1s"
	}
	if c.MaxConcurrentCaptures <= 0 {
		c.MaxConcurrentCaptures = 4
	}
}

func (c *Config) parseDurations() error {
	nav, err := time.ParseDuration(c.NavigationTimeoutRaw)
	if err != nil {
		return fmt.Errorf("render config: invalid navigation_timeout %q: %w", c.NavigationTimeoutRaw, err)
	}
	if nav <= 0 {
		return fmt.Errorf("render config: navigation_timeout must be positive, got %s", nav)
	}
	settle, err := time.ParseDuration(c.SettleDelayRaw)
	if err != nil {
		return fmt.Errorf("render config: invalid settle_delay %q: %w", c.SettleDelayRaw, err)
	}
	if settle < 0 {
		return fmt.Errorf("render config: settle_delay must not be negative, got %s", settle)
	}
	c.NavigationTimeout = nav
	c.SettleDelay = settle
	return nil
}

// Validate ensures configuration sanity.
func (c *Config) Validate() error {
	if c.NavigationTimeout <= 0 {
		return errors.New("render config: navigation_timeout must be positive")
	}
	if c.SettleDelay < 0 {
		return errors.New("render config: settle_delay must not be negative")
	}
	if c.MaxConcurrentCaptures <= 0 {
		return errors.New("render config: max_concurrent_captures must be positive")
	}
	return nil
}

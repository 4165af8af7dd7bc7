package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultSystemPrompt = "You are an expert web designer and front-end developer. " +
	"You produce complete, modern, accessible marketing homepages. " +
	"Respond with HTML markup only, no commentary."

// Config controls runtime behaviour for the generation pipeline.
type Config struct {
	PromptTemplate           string        `yaml:"prompt_template"`
	SystemPrompt             string        `yaml:"system_prompt"`
	CompletionTimeout        time.Duration `yaml:"-"`
	MaxConcurrentGenerations int           `yaml:"max_concurrent_generations"`
	JournalDir               string        `yaml:"journal_dir"`

	CompletionTimeoutRaw string `yaml:"completion_timeout"`
}

// LoadConfig reads configuration from disk.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open generator config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a Config from a reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read generator config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal generator config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.parseDurations(); err != nil {
		return nil, err
	}
	cfg.JournalDir = strings.TrimSpace(os.ExpandEnv(cfg.JournalDir))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the configuration used when no generator section is
// provided.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.CompletionTimeout = 120 * time.Second
	return cfg
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.PromptTemplate) == "" {
		c.PromptTemplate = "etc/prompts/generator/homepage.tmpl"
	}
	if strings.TrimSpace(c.SystemPrompt) == "" {
		c.SystemPrompt = defaultSystemPrompt
	}
	if strings.TrimSpace(c.CompletionTimeoutRaw) == "" {
		c.CompletionTimeoutRaw = "120s"
	}
	if c.MaxConcurrentGenerations <= 0 {
		c.MaxConcurrentGenerations = 4
	}
}

func (c *Config) parseDurations() error {
	timeout, err := time.ParseDuration(c.CompletionTimeoutRaw)
	if err != nil {
		return fmt.Errorf("generator config: invalid completion_timeout %q: %w", c.CompletionTimeoutRaw, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("generator config: completion_timeout must be positive, got %s", timeout)
	}
	c.CompletionTimeout = timeout
	return nil
}

// Validate ensures configuration sanity.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PromptTemplate) == "" {
		return errors.New("generator config: prompt_template is required")
	}
	if strings.TrimSpace(c.SystemPrompt) == "" {
		return errors.New("generator config: system_prompt is required")
	}
	if c.CompletionTimeout <= 0 {
		return errors.New("generator config: completion_timeout must be positive")
	}
	if c.MaxConcurrentGenerations <= 0 {
		return errors.New("generator config: max_concurrent_generations must be positive")
	}
	return nil
}

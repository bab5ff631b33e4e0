package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file at the project root.
const FileName = "ledgerloom.yaml"

// Config represents the top-level ledgerloom.yaml configuration.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Display DisplayConfig `yaml:"display"`
	Git     GitConfig     `yaml:"git"`
}

// ProjectConfig identifies the project.
type ProjectConfig struct {
	Name  string `yaml:"name"`
	Rules string `yaml:"rules"` // path to the ruleset file, relative to the project root
}

// DisplayConfig controls how amounts are rendered.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// GitConfig controls git integration for the rules directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a ledgerloom.yaml file from disk, then applies environment
// overrides. A .env file next to the config is loaded first if present.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Project.Rules == "" {
		cfg.Project.Rules = filepath.Join("rules", "rules.yaml")
	}

	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))
	applyEnv(&cfg)
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(projectName string) *Config {
	return &Config{
		Project: ProjectConfig{
			Name:  projectName,
			Rules: filepath.Join("rules", "rules.yaml"),
		},
		Display: DisplayConfig{
			Currency: "AED",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Ledgerloom",
			AuthorEmail: "bot@ledgerloom.dev",
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LEDGERLOOM_CURRENCY"); v != "" {
		cfg.Display.Currency = v
	}
	if v := os.Getenv("LEDGERLOOM_NO_GIT"); v != "" {
		cfg.Git.AutoCommit = false
	}
}

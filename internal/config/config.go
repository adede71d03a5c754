// internal/config/config.go
//
// This package handles configuration and the .tagboard directory structure.
// Every project that uses tagboard gets a .tagboard/ folder created in its
// root, holding config.yaml and the session logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/tagboard/internal/tag"
)

const (
	// TagboardDir is the name of the directory we create in each project
	TagboardDir = ".tagboard"
)

const defaultProjectConfigYAML = `# tagboard project configuration
version: 1

# Tags shown when the widget starts, in display order. Tags added during a
# session live alongside these until cleared.
predefined_tags:
  - Relevant
  - Irrelevant
  - Neutral
  - Explored
  - Exploited

# Per-tag policy. Omitted tags are gated until a policy or default is
# installed for them. "negates" lists tags cleared whenever the tag is
# applied, in order.
policies:
  Relevant:
    applicable: true
    removable: true
    negates: [Irrelevant, Neutral]
  Irrelevant:
    applicable: true
    removable: true
    negates: [Relevant, Neutral]
  Neutral:
    applicable: true
    removable: true
    negates: [Relevant, Irrelevant]
  # Explored and Exploited are derived from crawl state; visible, never set
  # or cleared by hand.
  Explored:
    applicable: false
    removable: false
  Exploited:
    applicable: false
    removable: false
`

// PolicyEntry models one policy block inside .tagboard/config.yaml.
type PolicyEntry struct {
	Applicable bool     `yaml:"applicable"`
	Removable  bool     `yaml:"removable"`
	Negates    []string `yaml:"negates,omitempty"`
}

// ProjectConfig models .tagboard/config.yaml.
type ProjectConfig struct {
	Version        int                    `yaml:"version"`
	PredefinedTags []string               `yaml:"predefined_tags"`
	Policies       map[string]PolicyEntry `yaml:"policies"`
}

// Config holds the runtime configuration for tagboard.
type Config struct {
	// ProjectDir is the directory where the user ran `tagboard` from
	ProjectDir string

	// TagboardProjectDir is ProjectDir/.tagboard
	TagboardProjectDir string

	Project ProjectConfig
}

// InitTagboardDir creates the .tagboard directory structure in the given
// project directory and seeds config.yaml when missing. Called at startup.
func InitTagboardDir(projectDir string) error {
	tagboardDir := filepath.Join(projectDir, TagboardDir)

	dirs := []string{
		filepath.Join(tagboardDir, "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return ensureProjectConfig(filepath.Join(tagboardDir, "config.yaml"))
}

// NewConfig creates a new Config instance populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:         projectDir,
		TagboardProjectDir: filepath.Join(projectDir, TagboardDir),
		Project:            defaultProjectConfig(),
	}

	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.TagboardProjectDir, "logs")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.TagboardProjectDir, "config.yaml")
}

// PredefinedTags returns the configured catalog seed in display order.
func (c *Config) PredefinedTags() []tag.Tag {
	out := make([]tag.Tag, 0, len(c.Project.PredefinedTags))
	for _, name := range c.Project.PredefinedTags {
		out = append(out, tag.Tag(name))
	}
	return out
}

// Policies converts the configured policy table into registry form.
func (c *Config) Policies() map[tag.Tag]tag.Policy {
	out := make(map[tag.Tag]tag.Policy, len(c.Project.Policies))
	for name, entry := range c.Project.Policies {
		p := tag.Policy{Applicable: entry.Applicable, Removable: entry.Removable}
		for _, n := range entry.Negates {
			p.Negates = append(p.Negates, tag.Tag(n))
		}
		out[tag.Tag(name)] = p
	}
	return out
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	var parsed ProjectConfig
	// The embedded default is authored in this repo; a parse failure is a
	// build mistake, not a runtime condition.
	if err := yaml.Unmarshal([]byte(defaultProjectConfigYAML), &parsed); err != nil {
		panic(fmt.Sprintf("config: embedded default config is invalid: %v", err))
	}
	parsed.applyDefaults()
	return parsed
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.Policies == nil {
		pc.Policies = map[string]PolicyEntry{}
	}
}

func (pc *ProjectConfig) normalize() {
	trimmed := pc.PredefinedTags[:0]
	for _, name := range pc.PredefinedTags {
		name = strings.TrimSpace(name)
		if name != "" {
			trimmed = append(trimmed, name)
		}
	}
	pc.PredefinedTags = trimmed
	for name, entry := range pc.Policies {
		for i := range entry.Negates {
			entry.Negates[i] = strings.TrimSpace(entry.Negates[i])
		}
		pc.Policies[name] = entry
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	for name, entry := range pc.Policies {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("policies: tag name is required")
		}
		for _, n := range entry.Negates {
			if n == name {
				return fmt.Errorf("policies[%s]: must not negate itself", name)
			}
			if n == "" {
				return fmt.Errorf("policies[%s]: negates a blank tag", name)
			}
		}
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

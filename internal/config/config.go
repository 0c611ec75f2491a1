// Package config loads the audit configuration file: the category taxonomy
// and the assessment tuning. Both YAML and JSON are accepted.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pladria/internal/taxonomy"
	"pladria/internal/usecase"
)

// Config is the on-disk audit configuration. Absent sections keep their
// compiled-in defaults.
type Config struct {
	Taxonomy   []taxonomy.Rule          `yaml:"taxonomy" json:"taxonomy"`
	Assessment usecase.AssessmentConfig `yaml:"assessment" json:"assessment"`
}

// LoadFromPath reads and parses a config file. Format is detected by
// extension (.yaml/.yml/.json) or, failing that, by content.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config bytes. ext is the file extension used as a format hint;
// empty means detect from content.
func Load(data []byte, ext string) (*Config, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}

	var cfg Config
	switch ext {
	case ".yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	default:
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config json: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	return &cfg, nil
}

// BuildTaxonomy compiles the configured rules, or returns the default table
// when the config carries none.
func (c *Config) BuildTaxonomy() (*taxonomy.Taxonomy, error) {
	if c == nil || len(c.Taxonomy) == 0 {
		return taxonomy.Default(), nil
	}
	t, err := taxonomy.New(c.Taxonomy)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy config: %w", err)
	}
	return t, nil
}

// AssessmentConfig returns the configured tuning merged over the defaults.
func (c *Config) AssessmentConfig() usecase.AssessmentConfig {
	out := usecase.DefaultAssessmentConfig()
	if c == nil {
		return out
	}
	if c.Assessment.ThresholdPct != 0 {
		out.ThresholdPct = c.Assessment.ThresholdPct
	}
	if len(c.Assessment.Weights) > 0 {
		out.Weights = c.Assessment.Weights
	}
	if len(c.Assessment.ForbiddenTags) > 0 {
		out.ForbiddenTags = c.Assessment.ForbiddenTags
		out.MaxForbidden = c.Assessment.MaxForbidden
	}
	if c.Assessment.MaxDuplicateGroups != 0 {
		out.MaxDuplicateGroups = c.Assessment.MaxDuplicateGroups
	}
	if c.Assessment.MaxDiscrepancies != 0 {
		out.MaxDiscrepancies = c.Assessment.MaxDiscrepancies
	}
	return out
}

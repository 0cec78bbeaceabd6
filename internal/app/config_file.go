package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections
// map naturally to flags and env.
type FileConfig struct {
	Profile string `yaml:"profile" json:"profile"`

	Output struct {
		Dir        string `yaml:"dir" json:"dir"`
		Format     string `yaml:"format" json:"format"`
		PagesIndex bool   `yaml:"pagesIndex" json:"pagesIndex"`
	} `yaml:"output" json:"output"`

	Browser struct {
		Headless   *bool  `yaml:"headless" json:"headless"`
		ChromePath string `yaml:"chromePath" json:"chromePath"`
		TimeoutSec int    `yaml:"timeoutSec" json:"timeoutSec"`
	} `yaml:"browser" json:"browser"`

	Privacy struct {
		Disable bool `yaml:"disable" json:"disable"`
		Audit   bool `yaml:"audit" json:"audit"`
	} `yaml:"privacy" json:"privacy"`

	Retention struct {
		Cleanup     bool   `yaml:"cleanup" json:"cleanup"`
		Hours       int    `yaml:"hours" json:"hours"`
		SnapshotDir string `yaml:"snapshotDir" json:"snapshotDir"`
	} `yaml:"retention" json:"retention"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Polish  bool `yaml:"polish" json:"polish"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Defaults shared by flag registration and file-config overlay, so the
// overlay can tell "operator set this" apart from "flag default".
const (
	DefaultOutputDir  = "output"
	DefaultFormat     = "markdown"
	DefaultTimeoutSec = 60
)

// ApplyFileConfig overlays values from fc into cfg for fields still at
// their defaults. Flags should already have been parsed; this lets the
// file supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if cfg.ProfileURL == "" && fc.Profile != "" {
		cfg.ProfileURL = fc.Profile
	}
	if (cfg.OutputDir == "" || cfg.OutputDir == DefaultOutputDir) && fc.Output.Dir != "" {
		cfg.OutputDir = fc.Output.Dir
	}
	if (cfg.Format == "" || cfg.Format == DefaultFormat) && fc.Output.Format != "" {
		cfg.Format = fc.Output.Format
	}
	if !cfg.PagesIndex && fc.Output.PagesIndex {
		cfg.PagesIndex = true
	}

	// Headless defaults to true, so a bare bool cannot express
	// "file config turns it off"; a pointer can.
	if fc.Browser.Headless != nil {
		cfg.Headless = *fc.Browser.Headless
	}
	if cfg.ChromePath == "" && fc.Browser.ChromePath != "" {
		cfg.ChromePath = fc.Browser.ChromePath
	}
	if (cfg.TimeoutSec == 0 || cfg.TimeoutSec == DefaultTimeoutSec) && fc.Browser.TimeoutSec > 0 {
		cfg.TimeoutSec = fc.Browser.TimeoutSec
	}

	if !cfg.PrivacyOff && fc.Privacy.Disable {
		cfg.PrivacyOff = true
	}
	if !cfg.Audit && fc.Privacy.Audit {
		cfg.Audit = true
	}

	if !cfg.Cleanup && fc.Retention.Cleanup {
		cfg.Cleanup = true
	}
	if cfg.RetentionHours == 0 && fc.Retention.Hours > 0 {
		cfg.RetentionHours = fc.Retention.Hours
	}
	if cfg.SnapshotDir == "" && fc.Retention.SnapshotDir != "" {
		cfg.SnapshotDir = fc.Retention.SnapshotDir
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}

	if !cfg.Polish && fc.Polish {
		cfg.Polish = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyperifyio/linresume/internal/render"
	"github.com/hyperifyio/linresume/internal/skills"
)

// Config holds runtime configuration for one scrape-and-render run.
// Precedence, highest first: flags, environment, config file, defaults.
type Config struct {
	// Target
	ProfileURL string

	// Credentials
	Email      string
	Password   string
	TOTPSecret string

	// Browser
	Headless   bool
	ChromePath string
	CIMode     bool
	TimeoutSec int

	// Output
	OutputDir  string
	Format     string
	PagesIndex bool

	// Post-processing
	Polish     bool
	PrivacyOff bool
	Audit      bool

	// Retention
	Cleanup        bool
	RetentionHours int
	SnapshotDir    string

	// Auth bypass for an already-authenticated or public target.
	SkipAuth bool

	// LLM (used only when Polish is on)
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	Verbose bool
}

// ValidateConfig performs schema validation before any browser work.
// Failures here carry the configuration exit code.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.ProfileURL) == "" {
		return errors.New("config: profile URL is required (or set LINKEDIN_PROFILE_URL)")
	}
	if err := skills.ValidateProfileURL(cfg.ProfileURL); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return errors.New("config: output directory is required")
	}
	if _, err := render.ParseFormats(cfg.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.TimeoutSec < 5 || cfg.TimeoutSec > 300 {
		return errors.New("config: timeout must be between 5 and 300 seconds")
	}
	if cfg.RetentionHours < 0 || cfg.RetentionHours > 24 {
		return errors.New("config: retention must be between 0 and 24 hours")
	}
	if !cfg.SkipAuth {
		if strings.TrimSpace(cfg.Email) == "" || strings.TrimSpace(cfg.Password) == "" {
			return errors.New("config: credentials are required (set LINKEDIN_EMAIL and LINKEDIN_PASSWORD, or pass -skip.auth)")
		}
	}
	if cfg.Polish && strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm model is required when polishing is enabled (set LLM_MODEL)")
	}
	return nil
}

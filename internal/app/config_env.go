package app

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnvOverrides forcefully overrides cfg fields with environment
// variables when set. The CLI applies it over file values and then puts
// explicitly set flags back on top, so env ranks between the two.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv("LINKEDIN_PROFILE_URL"); v != "" {
		cfg.ProfileURL = v
	}
	if v := os.Getenv("LINKEDIN_EMAIL"); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv("LINKEDIN_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("LINKEDIN_TOTP_SECRET"); v != "" {
		cfg.TOTPSecret = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		cfg.ChromePath = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("SNAPSHOT_DIR"); v != "" {
		cfg.SnapshotDir = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLMBaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLMModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}

	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("RETENTION_HOURS"))); err == nil && n >= 0 {
		cfg.RetentionHours = n
	}

	setBool := func(dst *bool, envKey string) {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		case "0", "false", "no", "off":
			*dst = false
		}
	}
	setBool(&cfg.CIMode, "LINKEDIN_CI_MODE")
	setBool(&cfg.SkipAuth, "SKIP_AUTH")
	setBool(&cfg.Verbose, "VERBOSE")
}

package main

import (
	"flag"
	"os"

	"github.com/hyperifyio/linresume/internal/app"
)

// newFlagSet registers every CLI flag against cfg. String flags whose
// values usually come from the environment use env defaults so the
// help text mirrors actual behavior.
func newFlagSet(cfg *app.Config, configPath *string) *flag.FlagSet {
	fs := flag.NewFlagSet("linresume", flag.ExitOnError)

	fs.StringVar(&cfg.ProfileURL, "profile.url", os.Getenv("LINKEDIN_PROFILE_URL"), "LinkedIn profile URL to scrape (your own profile)")
	fs.StringVar(&cfg.OutputDir, "output.dir", envOr("OUTPUT_DIR", app.DefaultOutputDir), "Directory for generated documents")
	fs.StringVar(&cfg.Format, "output.format", app.DefaultFormat, "Output formats: markdown|json|html|pdf|all, comma-separated")
	fs.BoolVar(&cfg.PagesIndex, "pages.index", false, "Also write a GitHub Pages index.md")

	fs.StringVar(configPath, "config", "", "Path to YAML or JSON config file")

	fs.BoolVar(&cfg.Headless, "headless", true, "Run the browser headless")
	fs.StringVar(&cfg.ChromePath, "chrome.path", os.Getenv("CHROME_PATH"), "Chrome/Chromium binary path (optional)")
	fs.IntVar(&cfg.TimeoutSec, "timeout", app.DefaultTimeoutSec, "Per-operation browser timeout in seconds (5-300)")
	fs.BoolVar(&cfg.SkipAuth, "skip.auth", false, "Skip login; assume the session or target needs none")

	fs.BoolVar(&cfg.Polish, "polish", false, "Rewrite the summary through an OpenAI-compatible model")
	fs.BoolVar(&cfg.PrivacyOff, "privacy.off", false, "Disable the privacy redaction pass")
	fs.BoolVar(&cfg.Audit, "audit", false, "Run the compliance audit and log findings")
	fs.BoolVar(&cfg.Cleanup, "cleanup", false, "Remove snapshots and transient JSON per retention policy")
	fs.IntVar(&cfg.RetentionHours, "retention", 0, "Retention window in hours (0 = immediate cleanup, max 24)")

	fs.StringVar(&cfg.LLMBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	fs.StringVar(&cfg.LLMModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for polishing")
	fs.StringVar(&cfg.LLMAPIKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the OpenAI-compatible server")

	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")

	return fs
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// composeConfig layers the optional config file and the environment
// under the parsed flags. Precedence, highest first: flags the operator
// actually set, environment, config file, flag defaults. fs must
// already be parsed.
func composeConfig(cfg *app.Config, fs *flag.FlagSet, configPath string) error {
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	fromFlags := *cfg

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return err
		}
		app.ApplyFileConfig(cfg, fc)
	}
	// Env beats file values and flag defaults. Credentials have no
	// flags and arrive only through this step or the file.
	app.ApplyEnvOverrides(cfg)
	restoreExplicitFlags(cfg, fromFlags, explicit)
	return nil
}

// restoreExplicitFlags puts back every field whose flag appeared on the
// command line, undoing any file or env overlay on it.
func restoreExplicitFlags(cfg *app.Config, parsed app.Config, set map[string]bool) {
	if set["profile.url"] {
		cfg.ProfileURL = parsed.ProfileURL
	}
	if set["output.dir"] {
		cfg.OutputDir = parsed.OutputDir
	}
	if set["output.format"] {
		cfg.Format = parsed.Format
	}
	if set["pages.index"] {
		cfg.PagesIndex = parsed.PagesIndex
	}
	if set["headless"] {
		cfg.Headless = parsed.Headless
	}
	if set["chrome.path"] {
		cfg.ChromePath = parsed.ChromePath
	}
	if set["timeout"] {
		cfg.TimeoutSec = parsed.TimeoutSec
	}
	if set["skip.auth"] {
		cfg.SkipAuth = parsed.SkipAuth
	}
	if set["polish"] {
		cfg.Polish = parsed.Polish
	}
	if set["privacy.off"] {
		cfg.PrivacyOff = parsed.PrivacyOff
	}
	if set["audit"] {
		cfg.Audit = parsed.Audit
	}
	if set["cleanup"] {
		cfg.Cleanup = parsed.Cleanup
	}
	if set["retention"] {
		cfg.RetentionHours = parsed.RetentionHours
	}
	if set["llm.base"] {
		cfg.LLMBaseURL = parsed.LLMBaseURL
	}
	if set["llm.model"] {
		cfg.LLMModel = parsed.LLMModel
	}
	if set["llm.key"] {
		cfg.LLMAPIKey = parsed.LLMAPIKey
	}
	if set["v"] {
		cfg.Verbose = parsed.Verbose
	}
}

package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/linresume/internal/browser"
	"github.com/hyperifyio/linresume/internal/compliance"
	"github.com/hyperifyio/linresume/internal/polish"
	"github.com/hyperifyio/linresume/internal/privacy"
	"github.com/hyperifyio/linresume/internal/profile"
	"github.com/hyperifyio/linresume/internal/rawstore"
	"github.com/hyperifyio/linresume/internal/render"
	"github.com/hyperifyio/linresume/internal/scrape"
)

// App wires the scrape-and-render pipeline together. Construct with
// New after the config has passed ValidateConfig.
type App struct {
	cfg       Config
	formats   []render.Format
	snapshots *rawstore.Store
	renderer  *render.Renderer
	polisher  *polish.Polisher
}

func New(cfg Config) (*App, error) {
	formats, err := render.ParseFormats(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	snapDir := cfg.SnapshotDir
	if snapDir == "" {
		snapDir = filepath.Join(cfg.OutputDir, ".snapshots")
	}

	a := &App{
		cfg:       cfg,
		formats:   formats,
		snapshots: &rawstore.Store{Dir: snapDir},
		renderer:  &render.Renderer{OutputDir: cfg.OutputDir},
	}
	if cfg.Polish {
		a.polisher = &polish.Polisher{
			Client: polish.NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMAPIKey),
			Model:  cfg.LLMModel,
		}
	}
	return a, nil
}

func (a *App) Close() {
	// nothing held open between runs
}

// Run executes one full pipeline pass: browser session, optional
// login, assembly, post-processing and rendering. Session teardown is
// guaranteed on every exit path.
func (a *App) Run(ctx context.Context) error {
	headless := a.cfg.Headless
	if a.cfg.CIMode {
		headless = true
	}
	session, err := browser.NewSession(ctx, browser.Options{
		Headless:   headless,
		ChromePath: a.cfg.ChromePath,
		OpTimeout:  time.Duration(a.cfg.TimeoutSec) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("browser start: %w", err)
	}
	defer session.Close()

	if a.cfg.SkipAuth {
		log.Info().Msg("authentication skipped")
	} else {
		creds := browser.Credentials{
			Email:      a.cfg.Email,
			Password:   a.cfg.Password,
			TOTPSecret: a.cfg.TOTPSecret,
		}
		if err := session.Login(ctx, creds); err != nil {
			return err
		}
	}

	assembler := &scrape.Assembler{Page: session, Snapshots: a.snapshots}
	data, err := assembler.Assemble(ctx, a.cfg.ProfileURL)
	if err != nil {
		return err
	}

	return a.finish(ctx, data)
}

// finish runs every post-assembly stage. Split from Run so the stages
// are testable without a live browser.
func (a *App) finish(ctx context.Context, data profile.ProfileData) error {
	summarize(data)

	if a.polisher != nil {
		data = a.polisher.Apply(ctx, data)
	}

	rendered := data
	if !a.cfg.PrivacyOff {
		rendered = privacy.New(privacy.DefaultOptions()).Process(data)
	}

	paths, err := a.renderer.RenderAll(ctx, rendered, a.formats)
	if len(paths) == 0 && err != nil {
		return err
	}

	if a.cfg.PagesIndex {
		if path, err := a.renderer.WritePagesIndex(rendered); err != nil {
			log.Warn().Err(err).Msg("pages index write failed")
		} else {
			log.Info().Str("path", path).Msg("pages index written")
		}
	}

	if a.cfg.Audit {
		report := (&compliance.Auditor{RetentionHours: a.cfg.RetentionHours}).Audit(rendered)
		for _, issue := range report.Issues {
			log.Warn().
				Str("id", issue.ID).
				Str("category", string(issue.Category)).
				Str("severity", string(issue.Severity)).
				Str("recommendation", issue.Recommendation).
				Msg(issue.Title)
		}
		log.Info().
			Int("issues", len(report.Issues)).
			Int("passed", len(report.PassedChecks)).
			Msg("compliance audit complete")
	}

	if a.cfg.Cleanup {
		retention := time.Duration(a.cfg.RetentionHours) * time.Hour
		removed, err := privacy.CleanupArtifacts(a.snapshots, a.cfg.OutputDir, retention)
		if err != nil {
			log.Warn().Err(err).Msg("retention cleanup failed")
		} else {
			log.Info().Int("removed", removed).Msg("retention cleanup complete")
		}
	}

	return nil
}

// summarize always reports per-section counts, even after partial
// failure, so silent data loss is observable.
func summarize(data profile.ProfileData) {
	log.Info().
		Str("name", data.Name).
		Int("skills", len(data.Skills)).
		Int("experience", len(data.Experience)).
		Int("education", len(data.Education)).
		Int("certifications", len(data.Certifications)).
		Int("languages", len(data.Languages)).
		Int("projects", len(data.Projects)).
		Int("volunteer", len(data.Volunteer)).
		Int("honors", len(data.Honors)).
		Int("publications", len(data.Publications)).
		Int("recommendations", len(data.Recommendations)).
		Msg("profile assembled")
}

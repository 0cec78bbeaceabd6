// Package render turns an assembled profile record into resume
// documents. Markdown is the canonical output; HTML, PDF and the
// static-site index page are all derived from it, JSON is the record
// itself.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/linresume/internal/profile"
)

// Format selects one output document type.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatJSON     Format = "json"
)

// allFormats is the expansion of "all", in generation order. Markdown
// first since the other documents derive from it.
var allFormats = []Format{FormatMarkdown, FormatJSON, FormatHTML, FormatPDF}

// ParseFormats expands a comma-separated format list. "all" expands to
// every supported format; duplicates collapse.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	seen := map[Format]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if part == "all" {
			for _, f := range allFormats {
				if !seen[f] {
					seen[f] = true
					out = append(out, f)
				}
			}
			continue
		}
		f := Format(part)
		switch f {
		case FormatMarkdown, FormatHTML, FormatPDF, FormatJSON:
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		default:
			return nil, fmt.Errorf("unsupported output format %q", part)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no output format selected")
	}
	return out, nil
}

// GenerationError reports that one document could not be produced after
// every applicable backend was tried.
type GenerationError struct {
	Format Format
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Format, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Renderer writes resume documents under OutputDir. The zero value is
// not usable; OutputDir must be set.
type Renderer struct {
	OutputDir string

	// PDFConverters overrides the external converter preference chain.
	// nil means the default chain; an empty slice skips external
	// converters entirely and goes straight to the built-in writer.
	PDFConverters []string

	// now is swappable for deterministic file names in tests.
	now func() time.Time
}

func (r *Renderer) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// Render produces one document and returns its path.
func (r *Renderer) Render(ctx context.Context, data profile.ProfileData, format Format) (string, error) {
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return "", &GenerationError{Format: format, Err: err}
	}
	stamp := r.clock().Format("20060102_150405")

	switch format {
	case FormatMarkdown:
		path := filepath.Join(r.OutputDir, "resume_"+stamp+".md")
		if err := os.WriteFile(path, []byte(Markdown(data)), 0o644); err != nil {
			return "", &GenerationError{Format: format, Err: err}
		}
		return path, nil
	case FormatJSON:
		path := filepath.Join(r.OutputDir, "resume_"+stamp+".json")
		body, err := JSON(data)
		if err != nil {
			return "", &GenerationError{Format: format, Err: err}
		}
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return "", &GenerationError{Format: format, Err: err}
		}
		return path, nil
	case FormatHTML:
		path := filepath.Join(r.OutputDir, "resume_"+stamp+".html")
		if err := os.WriteFile(path, []byte(HTMLDocument(data.Name, Markdown(data))), 0o644); err != nil {
			return "", &GenerationError{Format: format, Err: err}
		}
		return path, nil
	case FormatPDF:
		path := filepath.Join(r.OutputDir, "resume_"+stamp+".pdf")
		if err := r.writePDF(ctx, Markdown(data), path); err != nil {
			return "", &GenerationError{Format: format, Err: err}
		}
		return path, nil
	default:
		return "", &GenerationError{Format: format, Err: fmt.Errorf("unknown format")}
	}
}

// RenderAll produces every requested format. A failing format is logged
// and skipped so the remaining documents still come out; the last
// failure is returned alongside the successful paths.
func (r *Renderer) RenderAll(ctx context.Context, data profile.ProfileData, formats []Format) ([]string, error) {
	var paths []string
	var lastErr error
	for _, f := range formats {
		path, err := r.Render(ctx, data, f)
		if err != nil {
			log.Warn().Err(err).Str("format", string(f)).Msg("document generation failed")
			lastErr = err
			continue
		}
		log.Info().Str("format", string(f)).Str("path", path).Msg("document written")
		paths = append(paths, path)
	}
	return paths, lastErr
}

// WritePagesIndex writes the GitHub Pages index.md next to the dated
// documents. Unlike the dated files it has a fixed name so the site
// always serves the latest render.
func (r *Renderer) WritePagesIndex(data profile.ProfileData) (string, error) {
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(r.OutputDir, "index.md")
	if err := os.WriteFile(path, []byte(PagesIndex(data)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// topSkills orders skills by endorsements descending, stable so that
// equal counts keep extraction order, and caps the list.
func topSkills(in []profile.Skill, max int) []profile.Skill {
	out := append([]profile.Skill(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Endorsements > out[j].Endorsements
	})
	if len(out) > max {
		out = out[:max]
	}
	return out
}

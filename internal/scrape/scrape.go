package scrape

import (
    "context"
    "fmt"
    "strings"
    "time"

    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/linresume/internal/extract"
    "github.com/hyperifyio/linresume/internal/profile"
    "github.com/hyperifyio/linresume/internal/rawstore"
    "github.com/hyperifyio/linresume/internal/skills"
    "github.com/hyperifyio/linresume/internal/textnorm"
)

// Page is the browser capability the assembler needs. browser.Session
// implements it; tests provide fakes.
type Page interface {
    URL() string
    Navigate(ctx context.Context, url string) error
    Click(ctx context.Context, selector string) error
    Text(ctx context.Context, selector string) (string, error)
    Texts(ctx context.Context, selector string) ([]string, error)
    Count(ctx context.Context, selector string) int
    Attr(ctx context.Context, selector, attr string) (string, error)
    PairTexts(ctx context.Context, container, item, first, second string) ([][2]string, error)
    FieldTexts(ctx context.Context, container, item string, fields map[string]string) ([]map[string]string, error)
    HTML(ctx context.Context) (string, error)
}

// SectionError is a section-level scrape failure. It is logged and
// converted to an empty section at the assembler boundary, never
// propagated to siblings.
type SectionError struct {
    Section string
    PageURL string
    Err     error
}

func (e *SectionError) Error() string {
    return fmt.Sprintf("scrape %s (%s): %v", e.Section, e.PageURL, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

// Per-section item caps mirror what the resume can reasonably carry.
const (
    maxSkillItems          = 30
    maxRecommendationItems = 5
)

// Assembler drives per-section extraction over one profile page and
// composes the aggregate record. Sections run strictly sequentially:
// they share the tab and some routines navigate away from it.
type Assembler struct {
    Page Page

    // Snapshots, when set, receives the raw page markup for fallback
    // extraction and is subject to the retention policy.
    Snapshots *rawstore.Store
}

// Assemble scrapes every section of the profile at profileURL. An
// unusable target fails the call; any individual section failure
// degrades to an empty section.
func (a *Assembler) Assemble(ctx context.Context, profileURL string) (profile.ProfileData, error) {
    if err := skills.ValidateProfileURL(profileURL); err != nil {
        return profile.ProfileData{}, err
    }
    if err := a.Page.Navigate(ctx, profileURL); err != nil {
        return profile.ProfileData{}, &SectionError{Section: "profile", PageURL: profileURL, Err: err}
    }

    data := profile.ProfileData{
        ScrapedAt:  time.Now().UTC(),
        ProfileURL: profileURL,
    }

    // Keep a raw snapshot for fallback extraction. Best effort; the
    // live selectors remain the primary source.
    var fallback extract.Document
    if markup, err := a.Page.HTML(ctx); err == nil {
        fallback = extract.FromProfileHTML([]byte(markup))
        if a.Snapshots != nil {
            if err := a.Snapshots.Save(profileURL, []byte(markup)); err != nil {
                log.Warn().Err(err).Msg("snapshot save failed")
            }
        }
    }

    a.basicInfo(ctx, &data, fallback)
    // The profile URL is known before the overlay runs; a contact
    // failure must not lose it.
    data.Contact.LinkedInURL = profileURL
    a.section("contact", func() error {
        contact, err := a.contactInfo(ctx)
        if err != nil {
            return err
        }
        contact.LinkedInURL = profileURL
        data.Contact = contact
        return nil
    })
    a.section("experience", func() error {
        items, err := a.experience(ctx)
        data.Experience = items
        return err
    })
    a.section("education", func() error {
        items, err := a.education(ctx)
        data.Education = items
        return err
    })
    a.section("certifications", func() error {
        items, err := a.certifications(ctx)
        data.Certifications = items
        return err
    })
    a.section("languages", func() error {
        items, err := a.languages(ctx)
        data.Languages = items
        return err
    })
    a.section("projects", func() error {
        items, err := a.projects(ctx)
        data.Projects = items
        return err
    })
    a.section("volunteer", func() error {
        items, err := a.volunteer(ctx)
        data.Volunteer = items
        return err
    })
    a.section("honors", func() error {
        items, err := a.honors(ctx)
        data.Honors = items
        return err
    })
    a.section("publications", func() error {
        items, err := a.publications(ctx)
        data.Publications = items
        return err
    })
    a.section("recommendations", func() error {
        items, err := a.recommendations(ctx)
        data.Recommendations = items
        return err
    })

    // Skills run last: free-text mining feeds on the headline and the
    // experience descriptions gathered above. Section order in the
    // rendered resume is fixed by the renderer, not by scrape order.
    a.section("skills", func() error {
        descriptions := make([]string, 0, len(data.Experience))
        for _, e := range data.Experience {
            if e.Description != "" {
                descriptions = append(descriptions, e.Description)
            }
        }
        x := &skills.Extractor{Page: &skillPage{p: a.Page}}
        found, err := x.Extract(ctx, data.Headline, descriptions)
        if err != nil {
            return err
        }
        if len(found) > maxSkillItems {
            found = found[:maxSkillItems]
        }
        data.Skills = found
        return nil
    })

    return data, nil
}

// section runs one routine with fault isolation.
func (a *Assembler) section(name string, fn func() error) {
    if err := fn(); err != nil {
        log.Warn().Err(&SectionError{Section: name, PageURL: a.Page.URL(), Err: err}).
            Str("section", name).Msg("section failed; continuing with empty section")
    }
}

// skillPage adapts Page to the extractor's Pager without coupling the
// skills package to the full assembler surface.
type skillPage struct {
    p Page
}

func (s *skillPage) URL() string                                   { return s.p.URL() }
func (s *skillPage) Navigate(ctx context.Context, u string) error  { return s.p.Navigate(ctx, u) }
func (s *skillPage) Click(ctx context.Context, sel string) error   { return s.p.Click(ctx, sel) }
func (s *skillPage) HTML(ctx context.Context) (string, error)      { return s.p.HTML(ctx) }
func (s *skillPage) Texts(ctx context.Context, sel string) ([]string, error) {
    return s.p.Texts(ctx, sel)
}

func (s *skillPage) Items(ctx context.Context, container, item, name, endorsements string) ([]skills.Item, error) {
    rows, err := s.p.PairTexts(ctx, container, item, name, endorsements)
    if err != nil {
        return nil, err
    }
    out := make([]skills.Item, 0, len(rows))
    for _, r := range rows {
        out = append(out, skills.Item{Name: r[0], Endorsements: r[1]})
    }
    return out, nil
}

func clean(s string) string { return textnorm.Normalize(s) }

// splitDotted breaks "Acme · Full-time" style values on the middle dot.
func splitDotted(s string) []string {
    parts := strings.Split(s, "·")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if t := strings.TrimSpace(p); t != "" {
            out = append(out, t)
        }
    }
    return out
}

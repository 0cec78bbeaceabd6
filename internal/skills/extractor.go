package skills

import (
    "context"
    "fmt"
    "net/url"
    "regexp"
    "strings"

    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/linresume/internal/extract"
    "github.com/hyperifyio/linresume/internal/profile"
    "github.com/hyperifyio/linresume/internal/textnorm"
)

// TargetError reports an unusable scrape target (wrong host, not a
// profile path). It is fatal to the extraction call; section-level
// failures inside strategies are not.
type TargetError struct {
    URL string
}

func (e *TargetError) Error() string {
    return fmt.Sprintf("not a linkedin profile url: %q", e.URL)
}

// Item is one raw skill entry as read off the page: the bolded name
// text plus the endorsement text next to it.
type Item struct {
    Name         string
    Endorsements string
}

// Pager is the minimal page capability the extractor needs. The
// production implementation drives a Chrome tab; tests provide fakes.
type Pager interface {
    // URL returns the page's current location.
    URL() string
    // Navigate loads a URL and waits for the document to settle.
    Navigate(ctx context.Context, url string) error
    // Click clicks the first match; best effort, error when absent.
    Click(ctx context.Context, selector string) error
    // Texts returns the text content of every element matching selector.
    Texts(ctx context.Context, selector string) ([]string, error)
    // Items returns name/endorsement pairs for list entries under container.
    Items(ctx context.Context, container, item, name, endorsements string) ([]Item, error)
    // HTML returns the full current page markup.
    HTML(ctx context.Context) (string, error)
}

// Extractor merges several independent skill-extraction strategies.
// Strategies run in a fixed order and each contributes only names not
// already seen (case-insensitive, first strategy wins).
type Extractor struct {
    Page Pager

    // DetailsPath overrides the skills-details sub-page path suffix.
    DetailsPath string
}

// skillWordRe matches plausible skill tokens in loose text: letters,
// digits, spaces and .+#- only, 2 to 30 characters. skillTokenRe is the
// anchored form used when an element's whole text must qualify.
var (
    skillWordRe  = regexp.MustCompile(`[A-Za-z][A-Za-z0-9 .+#-]{1,29}`)
    skillTokenRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 .+#-]{1,29}$`)
)

// noiseWords are UI chrome fragments that must never become skills.
var noiseWords = []string{
    "show more", "show less", "see more", "see less", "show all",
    "endorsements", "connections", "followers",
    "view profile", "message", "connect",
}

// Extract runs the strategy pipeline against the current page. The
// headline and experience descriptions are mined as the final strategy.
// The returned set is unique by case-insensitive name; every skill has
// a category. Only an unusable target fails the call.
func (x *Extractor) Extract(ctx context.Context, headline string, descriptions []string) ([]profile.Skill, error) {
    if err := ValidateProfileURL(x.Page.URL()); err != nil {
        return nil, err
    }

    var out []profile.Skill
    seen := map[string]bool{}
    add := func(skills []profile.Skill) {
        for _, s := range skills {
            key := strings.ToLower(s.Name)
            if seen[key] {
                continue
            }
            seen[key] = true
            out = append(out, s)
        }
    }

    add(x.fromDetailsPage(ctx))
    add(x.fromSkillsSection(ctx))
    add(x.fromBroadScan(ctx))
    add(x.fromSectionText(ctx))
    if len(out) == 0 {
        add(x.fromPageMarkup(ctx))
    }
    add(MineText(headline, profile.SourceHeadline))
    for _, d := range descriptions {
        add(MineText(d, profile.SourceExperience))
    }

    for i := range out {
        if out[i].Category == "" {
            out[i].Category = string(Categorize(out[i].Name))
        }
    }
    return out, nil
}

// ValidateProfileURL accepts only profile pages: https (or http) on a
// linkedin host with a path under /in/. Anything else is a TargetError;
// the extractor refuses to guess a fallback URL.
func ValidateProfileURL(raw string) error {
    u, err := url.Parse(raw)
    if err != nil {
        return &TargetError{URL: raw}
    }
    if u.Scheme != "https" && u.Scheme != "http" {
        return &TargetError{URL: raw}
    }
    host := strings.ToLower(u.Hostname())
    if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
        return &TargetError{URL: raw}
    }
    if !strings.HasPrefix(u.Path, "/in/") {
        return &TargetError{URL: raw}
    }
    return nil
}

// fromDetailsPage navigates to the dedicated skills sub-page when one
// exists and reads its full list. Navigation errors degrade to zero
// skills; the profile page is restored afterwards.
func (x *Extractor) fromDetailsPage(ctx context.Context) []profile.Skill {
    base := strings.TrimRight(x.Page.URL(), "/")
    path := x.DetailsPath
    if path == "" {
        path = "/details/skills/"
    }
    if err := x.Page.Navigate(ctx, base+path); err != nil {
        log.Debug().Err(err).Msg("skills details page unreachable")
        return nil
    }
    defer func() {
        if err := x.Page.Navigate(ctx, base+"/"); err != nil {
            log.Warn().Err(err).Msg("could not return to profile page")
        }
    }()

    // Best effort: expand any collapsed list.
    _ = x.Page.Click(ctx, `button[aria-label*="Show more"]`)

    items, err := x.Page.Items(ctx,
        "main", "li.artdeco-list__item",
        `.mr1.t-bold span[aria-hidden="true"]`,
        `.t-black--light span[aria-hidden="true"]`)
    if err != nil {
        log.Debug().Err(err).Msg("skills details list unavailable")
        return nil
    }
    return x.itemsToSkills(items, profile.SourceSkillsDetailsPage)
}

// fromSkillsSection reads the skills section embedded in the main
// profile page. Same shape as the details page, different scope.
func (x *Extractor) fromSkillsSection(ctx context.Context) []profile.Skill {
    _ = x.Page.Click(ctx, `section.skills button[aria-label*="Show all"]`)

    items, err := x.Page.Items(ctx,
        "section.skills, .pv-skill-categories-section", "li.artdeco-list__item",
        `.mr1.t-bold span[aria-hidden="true"]`,
        `.pv-skill-category-entity__endorsement-count, .endorsement-count`)
    if err != nil {
        log.Debug().Err(err).Msg("skills section unavailable")
        return nil
    }
    return x.itemsToSkills(items, profile.SourceSkillsSection)
}

// fromBroadScan selects interactive elements whose text looks like a
// skill token and filters out UI noise.
func (x *Extractor) fromBroadScan(ctx context.Context) []profile.Skill {
    texts, err := x.Page.Texts(ctx, "section.skills button, section.skills a, section.skills span")
    if err != nil {
        return nil
    }
    var out []profile.Skill
    for _, t := range texts {
        t = textnorm.Normalize(t)
        if !skillTokenRe.MatchString(t) {
            continue
        }
        if !IsValidSkillName(t) {
            continue
        }
        s, err := profile.NewSkill(t, 0, profile.SourceSkillsSection, 1.0)
        if err != nil {
            continue
        }
        out = append(out, s)
    }
    return out
}

// fromSectionText regex-scans the raw text of the skills section.
func (x *Extractor) fromSectionText(ctx context.Context) []profile.Skill {
    texts, err := x.Page.Texts(ctx, "section.skills, .pv-skill-categories-section")
    if err != nil || len(texts) == 0 {
        return nil
    }
    joined := strings.Join(texts, "\n")
    var out []profile.Skill
    for _, m := range skillWordRe.FindAllString(joined, -1) {
        m = textnorm.Normalize(m)
        if len(m) < 2 || len(m) > 30 || !IsValidSkillName(m) {
            continue
        }
        s, err := profile.NewSkill(m, 0, profile.SourceSkillsSection, 1.0)
        if err != nil {
            continue
        }
        out = append(out, s)
    }
    return out
}

// fromPageMarkup is the last-resort attribute scan over the raw HTML,
// used only when every structured strategy found nothing.
func (x *Extractor) fromPageMarkup(ctx context.Context) []profile.Skill {
    markup, err := x.Page.HTML(ctx)
    if err != nil {
        return nil
    }
    var out []profile.Skill
    for _, raw := range extract.AttrValues([]byte(markup), "skill") {
        name := textnorm.Normalize(raw)
        if len(name) < 2 || len(name) > 40 || !IsValidSkillName(name) {
            continue
        }
        s, err := profile.NewSkill(name, 0, profile.SourceSkillsSection, 1.0)
        if err != nil {
            continue
        }
        out = append(out, s)
    }
    return out
}

func (x *Extractor) itemsToSkills(items []Item, source profile.SkillSource) []profile.Skill {
    var out []profile.Skill
    for _, it := range items {
        name := textnorm.Normalize(it.Name)
        if !IsValidSkillName(name) {
            continue
        }
        s, err := profile.NewSkill(name, profile.ParseEndorsements(it.Endorsements), source, 1.0)
        if err != nil {
            continue
        }
        out = append(out, s)
    }
    return out
}

// IsValidSkillName rejects empty, one-character, and UI-noise names.
func IsValidSkillName(name string) bool {
    trimmed := strings.ToLower(strings.TrimSpace(name))
    if len(trimmed) < 2 {
        return false
    }
    for _, noise := range noiseWords {
        if strings.Contains(trimmed, noise) {
            return false
        }
    }
    return true
}

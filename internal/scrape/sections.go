package scrape

import (
    "context"
    "strings"

    "github.com/hyperifyio/linresume/internal/browser"
    "github.com/hyperifyio/linresume/internal/extract"
    "github.com/hyperifyio/linresume/internal/profile"
)

// Selector candidates per logical element. LinkedIn reshuffles class
// names between rollouts, so every lookup is an ordered fallback chain.
var (
    nameLoc     = browser.Locator{`main h1`, `.pv-text-details__left-panel h1`, `.top-card-layout__title`}
    headlineLoc = browser.Locator{`main .text-body-medium`, `.pv-text-details__left-panel .text-body-medium`, `.top-card-layout__headline`}
    locationLoc = browser.Locator{
        `main .text-body-small.inline.t-black--light`,
        `.pv-text-details__left-panel .text-body-small`,
        `.top-card-layout__first-subline`,
    }
    aboutLoc = browser.Locator{
        `section:has(div#about) .inline-show-more-text span[aria-hidden="true"]`,
        `section.summary .pv-about__summary-text`,
    }

    experienceSection = browser.Locator{`section:has(div#experience)`, `section#experience-section`, `.experience-section`}
    educationSection  = browser.Locator{`section:has(div#education)`, `section#education-section`, `.education-section`}
    certsSection      = browser.Locator{`section:has(div#licenses_and_certifications)`, `section:has(div#certifications)`, `.certifications-section`}
    languagesSection  = browser.Locator{`section:has(div#languages)`, `.languages-section`}
    projectsSection   = browser.Locator{`section:has(div#projects)`, `.projects-section`}
    volunteerSection  = browser.Locator{`section:has(div#volunteering_experience)`, `section:has(div#volunteer_experience)`, `.volunteering-section`}
    honorsSection     = browser.Locator{`section:has(div#honors_and_awards)`, `section:has(div#honors)`, `.honors-section`}
    pubsSection       = browser.Locator{`section:has(div#publications)`, `.publications-section`}
    recsSection       = browser.Locator{`section:has(div#recommendations)`, `.recommendations-section`}
)

// Field selectors shared by the artdeco list layout. The title span is
// bolded, subtitle and caption carry the lighter metadata.
var itemFields = map[string]string{
    "title":       `.mr1.t-bold span[aria-hidden="true"]`,
    "subtitle":    `.t-14.t-normal span[aria-hidden="true"]`,
    "caption":     `.t-14.t-normal.t-black--light span[aria-hidden="true"]`,
    "description": `.pvs-entity__sub-components .inline-show-more-text span[aria-hidden="true"]`,
}

const listItem = `li.artdeco-list__item`

// basicInfo fills name, headline, location and summary, falling back to
// the raw snapshot when the live selectors miss.
func (a *Assembler) basicInfo(ctx context.Context, data *profile.ProfileData, fallback extract.Document) {
    if text, ok := nameLoc.FirstText(ctx, a.Page); ok {
        data.Name = clean(text)
    }
    if data.Name == "" {
        data.Name = fallback.Name
    }
    if text, ok := headlineLoc.FirstText(ctx, a.Page); ok {
        data.Headline = clean(text)
    }
    if data.Headline == "" {
        data.Headline = fallback.Headline
    }
    if text, ok := locationLoc.FirstText(ctx, a.Page); ok {
        data.Location = clean(text)
    }
    if text, ok := aboutLoc.FirstText(ctx, a.Page); ok {
        data.Summary = clean(text)
    }
    if data.Summary == "" {
        data.Summary = extract.SectionText(fallback, "about")
    }
}

// sectionItems resolves a section container and reads its list items.
// An absent section is an empty result, not an error.
func (a *Assembler) sectionItems(ctx context.Context, containers browser.Locator) ([]map[string]string, error) {
    container, ok := containers.Resolve(ctx, a.Page)
    if !ok {
        return nil, nil
    }
    return a.Page.FieldTexts(ctx, container, listItem, itemFields)
}

func (a *Assembler) experience(ctx context.Context) ([]profile.Experience, error) {
    rows, err := a.sectionItems(ctx, experienceSection)
    if err != nil {
        return nil, err
    }
    var out []profile.Experience
    for _, row := range rows {
        item := profile.Experience{
            Title:       clean(row["title"]),
            Description: clean(row["description"]),
        }
        // Subtitle reads "Acme · Full-time"; caption reads
        // "Jan 2020 - Present · 3 yrs · Helsinki".
        if parts := splitDotted(clean(row["subtitle"])); len(parts) > 0 {
            item.Company = parts[0]
        }
        caption := splitDotted(clean(row["caption"]))
        if len(caption) > 0 {
            item.StartDate, item.EndDate = profile.ParseDateRange(caption[0])
        }
        if len(caption) > 1 {
            item.Duration = caption[1]
        }
        if len(caption) > 2 {
            item.Location = caption[2]
        }
        if item.Validate() != nil {
            continue
        }
        out = append(out, item)
    }
    return out, nil
}

func (a *Assembler) education(ctx context.Context) ([]profile.Education, error) {
    rows, err := a.sectionItems(ctx, educationSection)
    if err != nil {
        return nil, err
    }
    var out []profile.Education
    for _, row := range rows {
        item := profile.Education{
            Institution: clean(row["title"]),
            Description: clean(row["description"]),
        }
        // Subtitle reads "BSc, Computer Science".
        if sub := clean(row["subtitle"]); sub != "" {
            if idx := strings.Index(sub, ", "); idx >= 0 {
                item.Degree = sub[:idx]
                item.FieldOfStudy = sub[idx+2:]
            } else {
                item.Degree = sub
            }
        }
        if caption := clean(row["caption"]); caption != "" {
            item.StartDate, item.EndDate = profile.ParseDateRange(caption)
        }
        if item.Validate() != nil {
            continue
        }
        out = append(out, item)
    }
    return out, nil
}

func (a *Assembler) certifications(ctx context.Context) ([]profile.Certification, error) {
    rows, err := a.sectionItems(ctx, certsSection)
    if err != nil {
        return nil, err
    }
    var out []profile.Certification
    for _, row := range rows {
        item := profile.Certification{
            Name:   clean(row["title"]),
            Issuer: clean(row["subtitle"]),
        }
        if caption := clean(row["caption"]); caption != "" {
            issue, expiry := profile.ParseDateRange(strings.TrimPrefix(caption, "Issued "))
            item.IssueDate = issue
            item.ExpiryDate = expiry
        }
        if item.Validate() != nil {
            continue
        }
        out = append(out, item)
    }
    return out, nil
}

func (a *Assembler) languages(ctx context.Context) ([]profile.Language, error) {
    rows, err := a.sectionItems(ctx, languagesSection)
    if err != nil {
        return nil, err
    }
    var out []profile.Language
    for _, row := range rows {
        item := profile.Language{
            Name:        clean(row["title"]),
            Proficiency: clean(row["subtitle"]),
        }
        if item.Validate() != nil {
            continue
        }
        out = append(out, item)
    }
    return out, nil
}

func (a *Assembler) projects(ctx context.Context) ([]profile.Project, error) {
    rows, err := a.sectionItems(ctx, projectsSection)
    if err != nil {
        return nil, err
    }
    var out []profile.Project
    for _, row := range rows {
        item := profile.Project{
            Name:        clean(row["title"]),
            Description: clean(row["description"]),
        }
        if sub := clean(row["subtitle"]); sub != "" {
            item.StartDate, item.EndDate = profile.ParseDateRange(sub)
        }
        if item.Validate() != nil {
            continue
        }
        out = append(out, item)
    }
    return out, nil
}

func (a *Assembler) volunteer(ctx context.Context) ([]profile.VolunteerExperience, error) {
    rows, err := a.sectionItems(ctx, volunteerSection)
    if err != nil {
        return nil, err
    }
    var out []profile.VolunteerExperience
    for _, row := range rows {
        item := profile.VolunteerExperience{
            Role:        clean(row["title"]),
            Description: clean(row["description"]),
        }
        if parts := splitDotted(clean(row["subtitle"])); len(parts) > 0 {
            item.Organization = parts[0]
            if len(parts) > 1 {
                item.Cause = parts[1]
            }
        }
        if caption := splitDotted(clean(row["caption"])); len(caption) > 0 {
            item.StartDate, item.EndDate = profile.ParseDateRange(caption[0])
        }
        if item.Validate() != nil {
            continue
        }
        out = append(out, item)
    }
    return out, nil
}

func (a *Assembler) honors(ctx context.Context) ([]profile.Honor, error) {
    rows, err := a.sectionItems(ctx, honorsSection)
    if err != nil {
        return nil, err
    }
    var out []profile.Honor
    for _, row := range rows {
        item := profile.Honor{
            Title:       clean(row["title"]),
            Description: clean(row["description"]),
        }
        // Subtitle reads "Issued by Acme · Jun 2021".
        if parts := splitDotted(strings.TrimPrefix(clean(row["subtitle"]), "Issued by ")); len(parts) > 0 {
            item.Issuer = parts[0]
            if len(parts) > 1 {
                item.IssueDate = parts[1]
            }
        }
        if item.Validate() != nil {
            continue
        }
        out = append(out, item)
    }
    return out, nil
}

func (a *Assembler) publications(ctx context.Context) ([]profile.Publication, error) {
    rows, err := a.sectionItems(ctx, pubsSection)
    if err != nil {
        return nil, err
    }
    var out []profile.Publication
    for _, row := range rows {
        item := profile.Publication{
            Title:       clean(row["title"]),
            Description: clean(row["description"]),
        }
        if parts := splitDotted(clean(row["subtitle"])); len(parts) > 0 {
            item.Publisher = parts[0]
            if len(parts) > 1 {
                item.PublishDate = parts[1]
            }
        }
        if item.Validate() != nil {
            continue
        }
        out = append(out, item)
    }
    return out, nil
}

func (a *Assembler) recommendations(ctx context.Context) ([]profile.Recommendation, error) {
    rows, err := a.sectionItems(ctx, recsSection)
    if err != nil {
        return nil, err
    }
    var out []profile.Recommendation
    for _, row := range rows {
        if len(out) >= maxRecommendationItems {
            break
        }
        item := profile.Recommendation{
            Recommender: clean(row["title"]),
            Text:        clean(row["description"]),
        }
        if parts := splitDotted(clean(row["caption"])); len(parts) > 0 {
            item.Relationship = parts[len(parts)-1]
        }
        if item.Validate() != nil {
            continue
        }
        out = append(out, item)
    }
    return out, nil
}

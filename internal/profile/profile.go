package profile

import (
    "strings"
    "time"
)

// SkillSource records which extraction path produced a skill.
type SkillSource string

const (
    SourceSkillsSection     SkillSource = "skills_section"
    SourceSkillsDetailsPage SkillSource = "skills_details_page"
    SourceHeadline          SkillSource = "headline"
    SourceExperience        SkillSource = "experience"
)

// Skill is one extracted skill. Name uniqueness is enforced
// case-insensitively by the extractor within a single run, not here.
type Skill struct {
    Name         string      `json:"name"`
    Category     string      `json:"category,omitempty"`
    Endorsements int         `json:"endorsements"`
    Source       SkillSource `json:"source"`
    Confidence   float64     `json:"confidence"`
}

// NewSkill validates and constructs a Skill. The name must be non-empty
// after trimming; endorsements are clamped at zero.
func NewSkill(name string, endorsements int, source SkillSource, confidence float64) (Skill, error) {
    name = strings.TrimSpace(name)
    if name == "" {
        return Skill{}, &ValidationError{Field: "skill.name", Value: name}
    }
    if endorsements < 0 {
        endorsements = 0
    }
    if confidence < 0 {
        confidence = 0
    } else if confidence > 1 {
        confidence = 1
    }
    return Skill{Name: name, Endorsements: endorsements, Source: source, Confidence: confidence}, nil
}

// Experience is one position. Retained only when it carries a title or a
// company; everything else is optional.
type Experience struct {
    Title       string   `json:"title,omitempty"`
    Company     string   `json:"company,omitempty"`
    Location    string   `json:"location,omitempty"`
    StartDate   string   `json:"start_date,omitempty"`
    EndDate     string   `json:"end_date,omitempty"`
    Duration    string   `json:"duration,omitempty"`
    Description string   `json:"description,omitempty"`
    Skills      []string `json:"skills,omitempty"`
}

// Current reports whether the position is ongoing (no end date).
func (e Experience) Current() bool { return strings.TrimSpace(e.EndDate) == "" }

// Validate enforces the minimum-field retention invariant.
func (e Experience) Validate() error {
    if strings.TrimSpace(e.Title) == "" && strings.TrimSpace(e.Company) == "" {
        return &ValidationError{Field: "experience.title|company", Value: ""}
    }
    return nil
}

// Education is one schooling entry; requires a non-empty institution.
type Education struct {
    Institution  string `json:"institution"`
    Degree       string `json:"degree,omitempty"`
    FieldOfStudy string `json:"field_of_study,omitempty"`
    StartDate    string `json:"start_date,omitempty"`
    EndDate      string `json:"end_date,omitempty"`
    Grade        string `json:"grade,omitempty"`
    Description  string `json:"description,omitempty"`
}

func (e Education) Validate() error {
    if strings.TrimSpace(e.Institution) == "" {
        return &ValidationError{Field: "education.institution", Value: ""}
    }
    return nil
}

// Certification and the remaining flat records share the same shape: a
// required name-like key plus optional metadata.
type Certification struct {
    Name         string `json:"name"`
    Issuer       string `json:"issuer,omitempty"`
    IssueDate    string `json:"issue_date,omitempty"`
    ExpiryDate   string `json:"expiry_date,omitempty"`
    CredentialID string `json:"credential_id,omitempty"`
}

func (c Certification) Validate() error { return requireField("certification.name", c.Name) }

type Language struct {
    Name        string `json:"name"`
    Proficiency string `json:"proficiency,omitempty"`
}

func (l Language) Validate() error { return requireField("language.name", l.Name) }

type Project struct {
    Name        string `json:"name"`
    Description string `json:"description,omitempty"`
    StartDate   string `json:"start_date,omitempty"`
    EndDate     string `json:"end_date,omitempty"`
    URL         string `json:"url,omitempty"`
}

func (p Project) Validate() error { return requireField("project.name", p.Name) }

type VolunteerExperience struct {
    Role         string `json:"role"`
    Organization string `json:"organization,omitempty"`
    Cause        string `json:"cause,omitempty"`
    StartDate    string `json:"start_date,omitempty"`
    EndDate      string `json:"end_date,omitempty"`
    Description  string `json:"description,omitempty"`
}

func (v VolunteerExperience) Validate() error { return requireField("volunteer.role", v.Role) }

type Honor struct {
    Title       string `json:"title"`
    Issuer      string `json:"issuer,omitempty"`
    IssueDate   string `json:"issue_date,omitempty"`
    Description string `json:"description,omitempty"`
}

func (h Honor) Validate() error { return requireField("honor.title", h.Title) }

type Publication struct {
    Title       string `json:"title"`
    Publisher   string `json:"publisher,omitempty"`
    PublishDate string `json:"publish_date,omitempty"`
    URL         string `json:"url,omitempty"`
    Description string `json:"description,omitempty"`
}

func (p Publication) Validate() error { return requireField("publication.title", p.Title) }

type Recommendation struct {
    Recommender  string `json:"recommender,omitempty"`
    Relationship string `json:"relationship,omitempty"`
    Text         string `json:"text"`
}

func (r Recommendation) Validate() error { return requireField("recommendation.text", r.Text) }

// ContactInfo holds optional reachability fields. Email, when present,
// must contain an "@".
type ContactInfo struct {
    Email       string `json:"email,omitempty"`
    Phone       string `json:"phone,omitempty"`
    Location    string `json:"location,omitempty"`
    LinkedInURL string `json:"linkedin_url,omitempty"`
    Website     string `json:"website,omitempty"`
}

func (c ContactInfo) Validate() error {
    if c.Email != "" && !strings.Contains(c.Email, "@") {
        return &ValidationError{Field: "contact.email", Value: c.Email}
    }
    return nil
}

// ProfileData is the aggregate record composed by the assembler. It owns
// all child collections; the privacy processor copies rather than
// mutating it.
type ProfileData struct {
    Name            string                `json:"name"`
    Headline        string                `json:"headline,omitempty"`
    Location        string                `json:"location,omitempty"`
    Summary         string                `json:"summary,omitempty"`
    Contact         ContactInfo           `json:"contact"`
    Skills          []Skill               `json:"skills,omitempty"`
    Experience      []Experience          `json:"experience,omitempty"`
    Education       []Education           `json:"education,omitempty"`
    Certifications  []Certification       `json:"certifications,omitempty"`
    Languages       []Language            `json:"languages,omitempty"`
    Projects        []Project             `json:"projects,omitempty"`
    Volunteer       []VolunteerExperience `json:"volunteer,omitempty"`
    Honors          []Honor               `json:"honors,omitempty"`
    Publications    []Publication         `json:"publications,omitempty"`
    Recommendations []Recommendation      `json:"recommendations,omitempty"`
    ScrapedAt       time.Time             `json:"scraped_at"`
    ProfileURL      string                `json:"profile_url,omitempty"`
}

// Clone returns a deep copy. Used by the privacy processor so the
// sanitized record never aliases the original's slices.
func (p ProfileData) Clone() ProfileData {
    out := p
    out.Skills = append([]Skill(nil), p.Skills...)
    out.Experience = append([]Experience(nil), p.Experience...)
    for i := range out.Experience {
        out.Experience[i].Skills = append([]string(nil), p.Experience[i].Skills...)
    }
    out.Education = append([]Education(nil), p.Education...)
    out.Certifications = append([]Certification(nil), p.Certifications...)
    out.Languages = append([]Language(nil), p.Languages...)
    out.Projects = append([]Project(nil), p.Projects...)
    out.Volunteer = append([]VolunteerExperience(nil), p.Volunteer...)
    out.Honors = append([]Honor(nil), p.Honors...)
    out.Publications = append([]Publication(nil), p.Publications...)
    out.Recommendations = append([]Recommendation(nil), p.Recommendations...)
    return out
}

func requireField(field, value string) error {
    if strings.TrimSpace(value) == "" {
        return &ValidationError{Field: field, Value: value}
    }
    return nil
}

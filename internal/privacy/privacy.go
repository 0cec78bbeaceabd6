// Package privacy produces a sanitized copy of the assembled profile
// record. The original record is never mutated; redaction and
// anonymization operate on a deep copy so the caller can still render
// an unredacted document when the operator asks for one.
package privacy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hyperifyio/linresume/internal/profile"
)

// Options selects which scrubbing passes run. The zero value scrubs
// nothing; use DefaultOptions for the shipped policy.
type Options struct {
	RedactEmail  bool
	RedactPhone  bool
	RedactSalary bool

	AnonymizeCompanies bool
	AnonymizeSchools   bool
	AnonymizeLocations bool
}

// DefaultOptions redacts direct identifiers and salary talk but keeps
// real company, school and location names, which a resume normally
// wants to show.
func DefaultOptions() Options {
	return Options{RedactEmail: true, RedactPhone: true, RedactSalary: true}
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]\d{4}`)
	ssnRe   = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)

	salaryRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\$\s*\d+[,\d]*(?:\.\d{2})?(?:\s*k|\s*thousand|\s*million)?`),
		regexp.MustCompile(`(?i)\b\d+[,\d]*\s*(?:dollars?|USD|salary|compensation|pay)\b`),
		regexp.MustCompile(`(?i)\b(?:salary|compensation|pay|wage):\s*\$?\d+`),
	}
)

// Processor applies one privacy policy. Anonymization mappings are
// cached so the same company or school always maps to the same alias
// within one processor lifetime.
type Processor struct {
	opts Options

	companies map[string]string
	schools   map[string]string
	locations map[string]string
}

func New(opts Options) *Processor {
	return &Processor{
		opts:      opts,
		companies: map[string]string{},
		schools:   map[string]string{},
		locations: map[string]string{},
	}
}

// Process returns the sanitized copy.
func (p *Processor) Process(data profile.ProfileData) profile.ProfileData {
	out := data.Clone()

	if p.opts.RedactEmail && out.Contact.Email != "" {
		out.Contact.Email = "[EMAIL_REDACTED]"
	}
	if p.opts.RedactPhone && out.Contact.Phone != "" {
		out.Contact.Phone = "[PHONE_REDACTED]"
	}
	if p.opts.AnonymizeLocations {
		out.Location = p.location(out.Location)
		out.Contact.Location = p.location(out.Contact.Location)
	}

	out.Summary = p.cleanText(out.Summary)
	for i := range out.Experience {
		exp := &out.Experience[i]
		exp.Description = p.cleanText(exp.Description)
		if p.opts.AnonymizeCompanies && exp.Company != "" {
			exp.Company = p.company(exp.Company)
		}
		if p.opts.AnonymizeLocations {
			exp.Location = p.location(exp.Location)
		}
	}
	for i := range out.Education {
		edu := &out.Education[i]
		edu.Description = p.cleanText(edu.Description)
		if p.opts.AnonymizeSchools && edu.Institution != "" {
			edu.Institution = p.school(edu.Institution)
		}
	}
	for i := range out.Projects {
		out.Projects[i].Description = p.cleanText(out.Projects[i].Description)
	}
	for i := range out.Volunteer {
		out.Volunteer[i].Description = p.cleanText(out.Volunteer[i].Description)
	}
	for i := range out.Recommendations {
		out.Recommendations[i].Text = p.cleanText(out.Recommendations[i].Text)
	}

	return out
}

// cleanText scrubs inline identifiers out of free text.
func (p *Processor) cleanText(text string) string {
	if text == "" {
		return text
	}
	text = emailRe.ReplaceAllString(text, "[EMAIL]")
	text = phoneRe.ReplaceAllString(text, "[PHONE]")
	text = ssnRe.ReplaceAllString(text, "[SSN]")
	if p.opts.RedactSalary {
		for _, re := range salaryRes {
			text = re.ReplaceAllString(text, "[SALARY_INFO]")
		}
	}
	return text
}

// location keeps only the trailing city/region pair, so "Kamppi,
// Helsinki, Finland" becomes "Helsinki, Finland". Single-part values
// have nothing general to keep and collapse to a placeholder.
func (p *Processor) location(loc string) string {
	if loc == "" {
		return loc
	}
	if cached, ok := p.locations[loc]; ok {
		return cached
	}
	parts := strings.Split(loc, ",")
	var anon string
	if len(parts) >= 2 {
		anon = strings.TrimSpace(parts[len(parts)-2]) + ", " + strings.TrimSpace(parts[len(parts)-1])
	} else {
		anon = "[LOCATION_REDACTED]"
	}
	p.locations[loc] = anon
	return anon
}

// company assigns a stable sector-flavored alias per distinct name.
func (p *Processor) company(name string) string {
	if cached, ok := p.companies[name]; ok {
		return cached
	}
	id := len(p.companies) + 1
	lower := strings.ToLower(name)
	kind := "Technology Company"
	switch {
	case containsAny(lower, "bank", "financial", "capital", "insurance"):
		kind = "Financial Services Company"
	case containsAny(lower, "health", "medical", "pharma", "clinic"):
		kind = "Healthcare Company"
	case containsAny(lower, "university", "school", "college"):
		kind = "Educational Institution"
	case containsAny(lower, "government", "ministry", "agency", "municipal"):
		kind = "Government Agency"
	}
	anon := fmt.Sprintf("%s %d", kind, id)
	p.companies[name] = anon
	return anon
}

// school assigns a stable alias per distinct institution.
func (p *Processor) school(name string) string {
	if cached, ok := p.schools[name]; ok {
		return cached
	}
	id := len(p.schools) + 1
	lower := strings.ToLower(name)
	kind := "University"
	switch {
	case containsAny(lower, "community", "college"):
		kind = "Community College"
	case containsAny(lower, "institute", "tech"):
		kind = "Technical Institute"
	}
	anon := fmt.Sprintf("%s %d", kind, id)
	p.schools[name] = anon
	return anon
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Report summarizes what one processor rewrote. Informational only.
type Report struct {
	CompaniesAnonymized int     `json:"companies_anonymized"`
	SchoolsAnonymized   int     `json:"schools_anonymized"`
	LocationsAnonymized int     `json:"locations_anonymized"`
	Options             Options `json:"options"`
}

func (p *Processor) Report() Report {
	return Report{
		CompaniesAnonymized: len(p.companies),
		SchoolsAnonymized:   len(p.schools),
		LocationsAnonymized: len(p.locations),
		Options:             p.opts,
	}
}

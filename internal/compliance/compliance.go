// Package compliance audits an assembled profile record against the
// data-handling policy and reports what it finds. The audit is
// informational only: it never blocks rendering and never rewrites the
// record (that is the privacy processor's job).
package compliance

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hyperifyio/linresume/internal/profile"
)

// Severity orders issues by how urgently the operator should act.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Category groups issues by policy area.
type Category string

const (
	CategoryPrivacy   Category = "privacy"
	CategorySecurity  Category = "security"
	CategoryRetention Category = "data_retention"
	CategoryLegal     Category = "legal"
)

// Issue is one detected policy finding.
type Issue struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       Category `json:"category"`
	Severity       Severity `json:"severity"`
	Location       string   `json:"location,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// Report collects every finding from one audit pass.
type Report struct {
	Issues       []Issue   `json:"issues"`
	PassedChecks []string  `json:"passed_checks"`
	AuditedAt    time.Time `json:"audited_at"`
}

func (r *Report) add(issue Issue)   { r.Issues = append(r.Issues, issue) }
func (r *Report) pass(check string) { r.PassedChecks = append(r.PassedChecks, check) }

func (r *Report) has(c Category) bool {
	for _, i := range r.Issues {
		if i.Category == c {
			return true
		}
	}
	return false
}

// BySeverity returns the findings at or above the given level.
func (r *Report) BySeverity(min Severity) []Issue {
	rank := map[Severity]int{SeverityLow: 0, SeverityMedium: 1, SeverityHigh: 2, SeverityCritical: 3}
	var out []Issue
	for _, i := range r.Issues {
		if rank[i.Severity] >= rank[min] {
			out = append(out, i)
		}
	}
	return out
}

var (
	internalRefRe = regexp.MustCompile(`(?i)\b(?:internal|intranet|vpn|admin|root|localhost)\b`)
	legalMarkRe   = regexp.MustCompile(`(?i)©|\(c\)|copyright|trademark|™|®`)
	streetRe      = regexp.MustCompile(`(?i)\b\d+\s+\w+\s+(?:street|st|avenue|ave|road|rd|drive|dr|lane|ln)\b`)
)

var sensitiveKeywords = []string{
	"password", "secret", "api key", "token", "credential", "confidential",
}

// Auditor holds the retention policy the record is audited against.
type Auditor struct {
	// RetentionHours is the configured data-retention window. Zero
	// means immediate cleanup, which always passes.
	RetentionHours int
}

// Audit runs every check and returns the combined report.
func (a *Auditor) Audit(data profile.ProfileData) *Report {
	report := &Report{AuditedAt: time.Now().UTC()}
	a.auditPrivacy(data, report)
	a.auditSecurity(data, report)
	a.auditRetention(data, report)
	a.auditLegal(data, report)
	return report
}

func (a *Auditor) auditPrivacy(data profile.ProfileData, report *Report) {
	if email := data.Contact.Email; email != "" && !isRedacted(email) {
		report.add(Issue{
			ID:             "PRIV001",
			Title:          "Email Address Exposed",
			Description:    "Personal email address is exposed in the profile record",
			Category:       CategoryPrivacy,
			Severity:       SeverityHigh,
			Location:       "contact.email",
			Recommendation: "Redact or anonymize the email address before sharing",
		})
	}
	if phone := data.Contact.Phone; phone != "" && !isRedacted(phone) {
		report.add(Issue{
			ID:             "PRIV002",
			Title:          "Phone Number Exposed",
			Description:    "Personal phone number is exposed in the profile record",
			Category:       CategoryPrivacy,
			Severity:       SeverityHigh,
			Location:       "contact.phone",
			Recommendation: "Redact or anonymize the phone number before sharing",
		})
	}
	for _, loc := range []string{data.Location, data.Contact.Location} {
		if loc != "" && streetRe.MatchString(loc) {
			report.add(Issue{
				ID:             "PRIV003",
				Title:          "Full Address Exposed",
				Description:    "A street-level home address appears in the location field",
				Category:       CategoryPrivacy,
				Severity:       SeverityMedium,
				Location:       "location",
				Recommendation: "Keep only city and state or country information",
			})
			break
		}
	}
	if !report.has(CategoryPrivacy) {
		report.pass("privacy data exposure")
	}
}

func (a *Auditor) auditSecurity(data profile.ProfileData, report *Report) {
	text := strings.ToLower(allText(data))
	for _, kw := range sensitiveKeywords {
		if strings.Contains(text, kw) {
			report.add(Issue{
				ID:             "SEC001",
				Title:          "Potentially Sensitive Keywords Found",
				Description:    fmt.Sprintf("Profile text mentions %q", kw),
				Category:       CategorySecurity,
				Severity:       SeverityMedium,
				Recommendation: "Review the text for accidental inclusion of secrets",
			})
			break
		}
	}
	if internalRefRe.MatchString(text) {
		report.add(Issue{
			ID:             "SEC002",
			Title:          "Internal System References",
			Description:    "Profile text references internal systems or infrastructure",
			Category:       CategorySecurity,
			Severity:       SeverityLow,
			Recommendation: "Remove references to internal systems",
		})
	}
	if !report.has(CategorySecurity) {
		report.pass("security information exposure")
	}
}

func (a *Auditor) auditRetention(data profile.ProfileData, report *Report) {
	if a.RetentionHours == 0 {
		report.pass("retention policy set to immediate cleanup")
		return
	}
	if a.RetentionHours > 24 {
		report.add(Issue{
			ID:             "RET001",
			Title:          "Extended Data Retention Period",
			Description:    fmt.Sprintf("Retention is configured for %d hours", a.RetentionHours),
			Category:       CategoryRetention,
			Severity:       SeverityMedium,
			Recommendation: "Shorten the retention period",
		})
	}
	if !data.ScrapedAt.IsZero() {
		age := time.Since(data.ScrapedAt)
		if age > time.Duration(a.RetentionHours)*time.Hour {
			report.add(Issue{
				ID:             "RET002",
				Title:          "Data Retention Period Exceeded",
				Description:    fmt.Sprintf("Record is %.1f hours old, beyond the retention window", age.Hours()),
				Category:       CategoryRetention,
				Severity:       SeverityHigh,
				Recommendation: "Run cleanup to remove the stale record",
			})
		}
	}
	if !report.has(CategoryRetention) {
		report.pass("data retention")
	}
}

func (a *Auditor) auditLegal(data profile.ProfileData, report *Report) {
	if legalMarkRe.MatchString(allText(data)) {
		report.add(Issue{
			ID:             "LEG001",
			Title:          "Copyright or Trademark References Found",
			Description:    "Profile text carries copyright or trademark marks",
			Category:       CategoryLegal,
			Severity:       SeverityLow,
			Recommendation: "Review for intellectual property concerns",
		})
	}
	if !report.has(CategoryLegal) {
		report.pass("legal")
	}
}

func isRedacted(s string) bool {
	upper := strings.ToUpper(s)
	return strings.Contains(upper, "[EMAIL") || strings.Contains(upper, "[PHONE") ||
		strings.Contains(upper, "REDACTED")
}

// allText flattens every free-text field into one blob for keyword
// scanning.
func allText(data profile.ProfileData) string {
	var b strings.Builder
	add := func(s string) {
		if s != "" {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	}
	add(data.Headline)
	add(data.Summary)
	for _, e := range data.Experience {
		add(e.Description)
	}
	for _, e := range data.Education {
		add(e.Description)
	}
	for _, p := range data.Projects {
		add(p.Description)
	}
	for _, v := range data.Volunteer {
		add(v.Description)
	}
	for _, r := range data.Recommendations {
		add(r.Text)
	}
	return b.String()
}

package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/linresume/internal/profile"
)

func issueIDs(report *Report) []string {
	ids := make([]string, 0, len(report.Issues))
	for _, i := range report.Issues {
		ids = append(ids, i.ID)
	}
	return ids
}

func TestAudit_ExposedContactDetails(t *testing.T) {
	a := &Auditor{}
	report := a.Audit(profile.ProfileData{
		Name: "Jane Smith",
		Contact: profile.ContactInfo{
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
	})
	require.Contains(t, issueIDs(report), "PRIV001")
	require.Contains(t, issueIDs(report), "PRIV002")
}

func TestAudit_RedactedContactPasses(t *testing.T) {
	a := &Auditor{}
	report := a.Audit(profile.ProfileData{
		Name: "Jane Smith",
		Contact: profile.ContactInfo{
			Email: "[EMAIL_REDACTED]",
			Phone: "[PHONE_REDACTED]",
		},
	})
	require.NotContains(t, issueIDs(report), "PRIV001")
	require.NotContains(t, issueIDs(report), "PRIV002")
	require.Contains(t, report.PassedChecks, "privacy data exposure")
}

func TestAudit_StreetAddress(t *testing.T) {
	a := &Auditor{}
	report := a.Audit(profile.ProfileData{Name: "X", Location: "12 Main Street, Springfield"})
	require.Contains(t, issueIDs(report), "PRIV003")
}

func TestAudit_SecurityKeywords(t *testing.T) {
	a := &Auditor{}
	report := a.Audit(profile.ProfileData{
		Name:    "X",
		Summary: "Rotated the admin password for the intranet VPN.",
	})
	ids := issueIDs(report)
	require.Contains(t, ids, "SEC001")
	require.Contains(t, ids, "SEC002")
}

func TestAudit_RetentionWindow(t *testing.T) {
	old := profile.ProfileData{Name: "X", ScrapedAt: time.Now().Add(-48 * time.Hour)}

	immediate := (&Auditor{RetentionHours: 0}).Audit(old)
	require.NotContains(t, issueIDs(immediate), "RET002")
	require.Contains(t, immediate.PassedChecks, "retention policy set to immediate cleanup")

	expired := (&Auditor{RetentionHours: 12}).Audit(old)
	require.Contains(t, issueIDs(expired), "RET002")

	long := (&Auditor{RetentionHours: 48}).Audit(profile.ProfileData{Name: "X", ScrapedAt: time.Now()})
	require.Contains(t, issueIDs(long), "RET001")
}

func TestReport_BySeverity(t *testing.T) {
	a := &Auditor{RetentionHours: 12}
	report := a.Audit(profile.ProfileData{
		Name:      "X",
		Contact:   profile.ContactInfo{Email: "jane@example.com"},
		ScrapedAt: time.Now().Add(-24 * time.Hour),
	})
	high := report.BySeverity(SeverityHigh)
	require.NotEmpty(t, high)
	for _, i := range high {
		require.Contains(t, []Severity{SeverityHigh, SeverityCritical}, i.Severity)
	}
}

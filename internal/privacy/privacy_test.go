package privacy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/linresume/internal/profile"
	"github.com/hyperifyio/linresume/internal/rawstore"
)

func sample() profile.ProfileData {
	return profile.ProfileData{
		Name:     "Jane Smith",
		Location: "Kamppi, Helsinki, Finland",
		Summary:  "Reach me at jane.smith@example.com or 555-123-4567.",
		Contact: profile.ContactInfo{
			Email: "jane.smith@example.com",
			Phone: "+1 555-123-4567",
		},
		Experience: []profile.Experience{{
			Title:       "Engineer",
			Company:     "Acme Bank",
			Description: "Negotiated salary: $120,000 and led migrations.",
		}},
		Education: []profile.Education{{Institution: "Aalto University"}},
	}
}

func TestProcess_RedactsDirectIdentifiers(t *testing.T) {
	data := sample()
	out := New(DefaultOptions()).Process(data)

	require.Equal(t, "[EMAIL_REDACTED]", out.Contact.Email)
	require.Equal(t, "[PHONE_REDACTED]", out.Contact.Phone)
	require.NotContains(t, out.Summary, "jane.smith@example.com")
	require.Contains(t, out.Summary, "[EMAIL]")
	require.Contains(t, out.Summary, "[PHONE]")
	require.Contains(t, out.Experience[0].Description, "[SALARY_INFO]")

	require.Equal(t, "jane.smith@example.com", data.Contact.Email, "original record is untouched")
	require.Contains(t, data.Experience[0].Description, "$120,000")
}

func TestProcess_ZeroOptionsIsPassThrough(t *testing.T) {
	data := sample()
	out := New(Options{}).Process(data)
	require.Equal(t, data.Contact.Email, out.Contact.Email)
	require.Equal(t, data.Summary, out.Summary)
}

func TestProcess_AnonymizationIsStable(t *testing.T) {
	p := New(Options{AnonymizeCompanies: true, AnonymizeSchools: true, AnonymizeLocations: true})
	out := p.Process(sample())

	require.Equal(t, "Financial Services Company 1", out.Experience[0].Company)
	require.Equal(t, "University 1", out.Education[0].Institution)
	require.Equal(t, "Helsinki, Finland", out.Location, "trailing city/country pair survives")

	again := p.Process(sample())
	require.Equal(t, out.Experience[0].Company, again.Experience[0].Company,
		"same input maps to the same alias across calls")

	report := p.Report()
	require.Equal(t, 1, report.CompaniesAnonymized)
	require.Equal(t, 1, report.SchoolsAnonymized)
}

func TestProcess_SingleTokenLocationCollapses(t *testing.T) {
	p := New(Options{AnonymizeLocations: true})
	out := p.Process(profile.ProfileData{Name: "X", Location: "Helsinki"})
	require.Equal(t, "[LOCATION_REDACTED]", out.Location)
}

func TestCleanupArtifacts_RemovesSnapshotsAndTransientJSON(t *testing.T) {
	outDir := t.TempDir()
	store := &rawstore.Store{Dir: t.TempDir()}
	require.NoError(t, store.Save("https://www.linkedin.com/in/jane", []byte("<html></html>")))

	jsonPath := filepath.Join(outDir, "resume_20260801_120000.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{}"), 0o644))
	mdPath := filepath.Join(outDir, "resume_20260801_120000.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("# Jane"), 0o644))

	removed, err := CleanupArtifacts(store, outDir, 0)
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	_, err = os.Stat(jsonPath)
	require.True(t, os.IsNotExist(err), "transient JSON is deleted")
	_, err = os.Stat(mdPath)
	require.NoError(t, err, "rendered documents are kept")
}

func TestCleanupArtifacts_RespectsRetentionWindow(t *testing.T) {
	outDir := t.TempDir()
	fresh := filepath.Join(outDir, "resume_fresh.json")
	require.NoError(t, os.WriteFile(fresh, []byte("{}"), 0o644))

	removed, err := CleanupArtifacts(nil, outDir, time.Hour)
	require.NoError(t, err)
	require.Zero(t, removed, "files inside the retention window survive")
}

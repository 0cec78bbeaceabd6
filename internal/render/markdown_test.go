package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/linresume/internal/profile"
	"github.com/hyperifyio/linresume/internal/skills"
)

func janeProfile(t *testing.T) profile.ProfileData {
	t.Helper()

	python, err := profile.NewSkill("Python", 12, profile.SourceSkillsSection, 1.0)
	require.NoError(t, err)
	python.Category = string(skills.Categorize(python.Name))

	mined := skills.MineText(
		"Moved batch workloads to AWS and cut cloud costs.",
		profile.SourceExperience,
	)
	require.NotEmpty(t, mined, "AWS should be mined from the description")

	return profile.ProfileData{
		Name:     "Jane Smith",
		Headline: "Platform Engineer",
		Skills:   append([]profile.Skill{python}, mined...),
		Experience: []profile.Experience{{
			Title:       "Platform Engineer",
			Company:     "Acme",
			StartDate:   "Jan 2020",
			Description: "Moved batch workloads to AWS and cut cloud costs.",
		}},
		ScrapedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		ProfileURL: "https://www.linkedin.com/in/jane-smith",
	}
}

func TestMarkdown_JaneSmithResume(t *testing.T) {
	data := janeProfile(t)
	md := Markdown(data)

	require.Contains(t, md, "# Jane Smith")
	require.Contains(t, md, "## Skills")
	require.Contains(t, md, "Python (12 endorsements)")
	require.Contains(t, md, "- AWS")

	var python, aws profile.Skill
	for _, s := range data.Skills {
		switch s.Name {
		case "Python":
			python = s
		case "AWS":
			aws = s
		}
	}
	require.Less(t, aws.Confidence, python.Confidence,
		"a skill inferred from free text carries lower confidence than a declared one")
}

func TestMarkdown_EmptySectionsAreOmitted(t *testing.T) {
	md := Markdown(profile.ProfileData{Name: "Jane Smith"})
	require.Contains(t, md, "# Jane Smith")
	require.NotContains(t, md, "## Skills")
	require.NotContains(t, md, "## Education")
	require.NotContains(t, md, "## Contact Information")
}

func TestMarkdown_SkillsSortedAndCapped(t *testing.T) {
	data := profile.ProfileData{Name: "X"}
	for i := 0; i < 40; i++ {
		data.Skills = append(data.Skills, profile.Skill{
			Name:         "Skill" + string(rune('A'+i%26)) + string(rune('a'+i/26)),
			Category:     string(skills.CategoryOther),
			Endorsements: i,
		})
	}
	md := Markdown(data)

	count := strings.Count(md, "\n- ")
	require.Equal(t, maxRenderedSkills, count)
	require.Contains(t, md, "(39 endorsements)")
	require.NotContains(t, md, "(5 endorsements)", "low-endorsement entries fall off the top list")
}

func TestMarkdown_SkillsGroupedByCategory(t *testing.T) {
	data := profile.ProfileData{
		Name: "X",
		Skills: []profile.Skill{
			{Name: "Leadership", Category: string(skills.CategorySoftSkills)},
			{Name: "Go", Category: string(skills.CategoryProgramming)},
		},
	}
	md := Markdown(data)
	prog := strings.Index(md, "### "+string(skills.CategoryProgramming))
	soft := strings.Index(md, "### "+string(skills.CategorySoftSkills))
	require.GreaterOrEqual(t, prog, 0)
	require.GreaterOrEqual(t, soft, 0)
	require.Less(t, prog, soft, "categories follow display order, not input order")
}

func TestMarkdown_RecommendationsTruncated(t *testing.T) {
	long := strings.Repeat("praise ", 100)
	data := profile.ProfileData{
		Name: "X",
		Recommendations: []profile.Recommendation{
			{Recommender: "A", Text: long},
			{Recommender: "B", Text: "short"},
			{Recommender: "C", Text: "short"},
			{Recommender: "D", Text: "dropped"},
		},
	}
	md := Markdown(data)
	require.NotContains(t, md, "dropped", "only the first three recommendations render")
	require.Contains(t, md, "...")
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "> ") && !strings.HasPrefix(line, "> -") {
			require.LessOrEqual(t, len(line), maxRecommendationChars+2)
		}
	}
}

func TestPagesIndex_FrontMatter(t *testing.T) {
	out := PagesIndex(profile.ProfileData{Name: "Jane Smith"})
	require.True(t, strings.HasPrefix(out, "---\nlayout: default\ntitle: Resume\n---\n"))
	require.Contains(t, out, "# Jane Smith")
}

package render

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/linresume/internal/profile"
	"github.com/hyperifyio/linresume/internal/skills"
	"github.com/hyperifyio/linresume/internal/textnorm"
)

const (
	maxRenderedSkills          = 30
	maxRenderedRecommendations = 3
	maxRecommendationChars     = 300
)

// Markdown renders the canonical resume document. Empty sections are
// omitted entirely rather than rendered as bare headers.
func Markdown(data profile.ProfileData) string {
	var b strings.Builder
	line := func(s string) { b.WriteString(s); b.WriteByte('\n') }
	blank := func() { b.WriteByte('\n') }

	line("# " + data.Name)
	if data.Headline != "" {
		line("## " + data.Headline)
	}
	blank()

	if c := data.Contact; c.Email != "" || c.Phone != "" || c.LinkedInURL != "" || c.Website != "" || data.Location != "" {
		line("## Contact Information")
		if c.Email != "" {
			line("- **Email:** " + c.Email)
		}
		if c.Phone != "" {
			line("- **Phone:** " + c.Phone)
		}
		if data.Location != "" {
			line("- **Location:** " + data.Location)
		}
		if c.LinkedInURL != "" {
			line("- **LinkedIn:** " + c.LinkedInURL)
		}
		if c.Website != "" {
			line("- **Website:** " + c.Website)
		}
		blank()
	}

	if data.Summary != "" {
		line("## Summary")
		line(data.Summary)
		blank()
	}

	if len(data.Experience) > 0 {
		line("## Professional Experience")
		for _, exp := range data.Experience {
			switch {
			case exp.Title != "" && exp.Company != "":
				line("### " + exp.Title + " at " + exp.Company)
			case exp.Title != "":
				line("### " + exp.Title)
			default:
				line("### " + exp.Company)
			}
			if exp.Location != "" {
				line("*" + exp.Location + "*")
			}
			if exp.StartDate != "" || exp.EndDate != "" {
				line("*" + dateRange(exp.StartDate, exp.EndDate) + "*")
			}
			if exp.Description != "" {
				blank()
				line(exp.Description)
			}
			if len(exp.Skills) > 0 {
				blank()
				line("**Skills:**")
				for _, s := range exp.Skills {
					line("- " + s)
				}
			}
			blank()
		}
	}

	if len(data.Skills) > 0 {
		line("## Skills")
		writeSkillGroups(line, blank, topSkills(data.Skills, maxRenderedSkills))
	}

	if len(data.Education) > 0 {
		line("## Education")
		for _, edu := range data.Education {
			switch {
			case edu.Degree != "" && edu.FieldOfStudy != "":
				line("### " + edu.Degree + " - " + edu.FieldOfStudy)
			case edu.Degree != "":
				line("### " + edu.Degree)
			default:
				line("### " + edu.Institution)
			}
			line("**" + edu.Institution + "**")
			if edu.StartDate != "" || edu.EndDate != "" {
				line("*" + dateRange(edu.StartDate, edu.EndDate) + "*")
			}
			if edu.Grade != "" {
				line("**Grade:** " + edu.Grade)
			}
			if edu.Description != "" {
				blank()
				line(edu.Description)
			}
			blank()
		}
	}

	if len(data.Certifications) > 0 {
		line("## Certifications")
		for _, cert := range data.Certifications {
			line("### " + cert.Name)
			if cert.Issuer != "" {
				line("**" + cert.Issuer + "**")
			}
			if cert.IssueDate != "" {
				line("*Issued: " + cert.IssueDate + "*")
			}
			if cert.ExpiryDate != "" {
				line("*Expires: " + cert.ExpiryDate + "*")
			}
			blank()
		}
	}

	if len(data.Languages) > 0 {
		line("## Languages")
		for _, lang := range data.Languages {
			if lang.Proficiency != "" {
				line("- **" + lang.Name + ":** " + lang.Proficiency)
			} else {
				line("- " + lang.Name)
			}
		}
		blank()
	}

	if len(data.Projects) > 0 {
		line("## Projects")
		for _, proj := range data.Projects {
			line("### " + proj.Name)
			if proj.StartDate != "" || proj.EndDate != "" {
				line("*" + dateRange(proj.StartDate, proj.EndDate) + "*")
			}
			if proj.URL != "" {
				line("[" + proj.URL + "](" + proj.URL + ")")
			}
			if proj.Description != "" {
				blank()
				line(proj.Description)
			}
			blank()
		}
	}

	if len(data.Volunteer) > 0 {
		line("## Volunteer Experience")
		for _, vol := range data.Volunteer {
			if vol.Organization != "" {
				line("### " + vol.Role + " at " + vol.Organization)
			} else {
				line("### " + vol.Role)
			}
			if vol.Cause != "" {
				line("*" + vol.Cause + "*")
			}
			if vol.StartDate != "" || vol.EndDate != "" {
				line("*" + dateRange(vol.StartDate, vol.EndDate) + "*")
			}
			if vol.Description != "" {
				blank()
				line(vol.Description)
			}
			blank()
		}
	}

	if len(data.Honors) > 0 {
		line("## Honors & Awards")
		for _, h := range data.Honors {
			line("### " + h.Title)
			if h.Issuer != "" {
				line("**" + h.Issuer + "**")
			}
			if h.IssueDate != "" {
				line("*" + h.IssueDate + "*")
			}
			if h.Description != "" {
				line(h.Description)
			}
			blank()
		}
	}

	if len(data.Publications) > 0 {
		line("## Publications")
		for _, pub := range data.Publications {
			line("### " + pub.Title)
			if pub.Publisher != "" {
				line("**" + pub.Publisher + "**")
			}
			if pub.PublishDate != "" {
				line("*" + pub.PublishDate + "*")
			}
			if pub.URL != "" {
				line("[" + pub.URL + "](" + pub.URL + ")")
			}
			blank()
		}
	}

	if len(data.Recommendations) > 0 {
		line("## Recommendations")
		recs := data.Recommendations
		if len(recs) > maxRenderedRecommendations {
			recs = recs[:maxRenderedRecommendations]
		}
		for _, rec := range recs {
			line("> " + textnorm.Truncate(rec.Text, maxRecommendationChars))
			if rec.Recommender != "" {
				attribution := "> - " + rec.Recommender
				if rec.Relationship != "" {
					attribution += ", " + rec.Relationship
				}
				line(attribution)
			}
			blank()
		}
	}

	line("---")
	footer := "*Generated"
	if data.ProfileURL != "" {
		footer += " from " + data.ProfileURL
	}
	if !data.ScrapedAt.IsZero() {
		footer += " on " + data.ScrapedAt.UTC().Format("2006-01-02")
	}
	line(footer + "*")

	return b.String()
}

// writeSkillGroups renders skills grouped by category, in the fixed
// category display order, with endorsement counts where known.
func writeSkillGroups(line func(string), blank func(), list []profile.Skill) {
	groups := map[skills.Category][]profile.Skill{}
	for _, s := range list {
		cat := skills.Category(s.Category)
		groups[cat] = append(groups[cat], s)
	}
	for _, cat := range skills.CategoryOrder {
		members := groups[cat]
		if len(members) == 0 {
			continue
		}
		line("### " + string(cat))
		for _, s := range members {
			if s.Endorsements > 0 {
				line(fmt.Sprintf("- %s (%d endorsements)", s.Name, s.Endorsements))
			} else {
				line("- " + s.Name)
			}
		}
		blank()
		delete(groups, cat)
	}
	// Uncategorized stragglers keep the resume complete even when the
	// categorizer was skipped upstream.
	for cat, members := range groups {
		if cat == "" {
			for _, s := range members {
				line("- " + s.Name)
			}
			blank()
		}
	}
}

func dateRange(start, end string) string {
	if start == "" {
		start = "Unknown"
	}
	if end == "" {
		end = "Present"
	}
	return start + " - " + end
}

// PagesIndex renders the static-site landing page: the same Markdown
// body behind a small front-matter header GitHub Pages understands.
func PagesIndex(data profile.ProfileData) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("layout: default\n")
	b.WriteString("title: Resume\n")
	b.WriteString("---\n\n")
	b.WriteString(Markdown(data))
	return b.String()
}

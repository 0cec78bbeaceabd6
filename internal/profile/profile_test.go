package profile

import (
    "testing"

    "github.com/stretchr/testify/require"
)

func TestNewSkill_RejectsEmptyName(t *testing.T) {
    _, err := NewSkill("   ", 3, SourceSkillsSection, 1.0)
    var verr *ValidationError
    require.ErrorAs(t, err, &verr)
    require.Equal(t, "skill.name", verr.Field)
}

func TestNewSkill_ClampsValues(t *testing.T) {
    s, err := NewSkill("Python", -4, SourceSkillsSection, 1.5)
    require.NoError(t, err)
    require.Equal(t, 0, s.Endorsements)
    require.Equal(t, 1.0, s.Confidence)
}

func TestExperienceRetentionInvariant(t *testing.T) {
    if err := (Experience{Title: "", Company: ""}).Validate(); err == nil {
        t.Fatal("expected validation error for empty experience")
    }
    if err := (Experience{Title: "Engineer"}).Validate(); err != nil {
        t.Fatalf("title alone should satisfy the invariant: %v", err)
    }
    if err := (Experience{Company: "Acme"}).Validate(); err != nil {
        t.Fatalf("company alone should satisfy the invariant: %v", err)
    }
}

func TestEducationRequiresInstitution(t *testing.T) {
    if err := (Education{Degree: "BSc"}).Validate(); err == nil {
        t.Fatal("expected validation error without institution")
    }
    if err := (Education{Institution: "MIT"}).Validate(); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
}

func TestContactEmailMustContainAt(t *testing.T) {
    if err := (ContactInfo{Email: "not-an-email"}).Validate(); err == nil {
        t.Fatal("expected validation error for malformed email")
    }
    if err := (ContactInfo{Email: "a@b.example"}).Validate(); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if err := (ContactInfo{}).Validate(); err != nil {
        t.Fatalf("empty email is optional: %v", err)
    }
}

func TestCloneDoesNotAliasSlices(t *testing.T) {
    p := ProfileData{
        Name:       "Jane",
        Skills:     []Skill{{Name: "Go"}},
        Experience: []Experience{{Title: "Dev", Skills: []string{"Go"}}},
    }
    c := p.Clone()
    c.Skills[0].Name = "Rust"
    c.Experience[0].Skills[0] = "Rust"
    require.Equal(t, "Go", p.Skills[0].Name)
    require.Equal(t, "Go", p.Experience[0].Skills[0])
}

func TestExperienceCurrent(t *testing.T) {
    if !(Experience{Title: "Dev"}).Current() {
        t.Fatal("missing end date means ongoing")
    }
    if (Experience{Title: "Dev", EndDate: "2022"}).Current() {
        t.Fatal("end date present means not current")
    }
}

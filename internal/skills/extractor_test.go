package skills

import (
    "context"
    "errors"
    "testing"

    "github.com/stretchr/testify/require"

    "github.com/hyperifyio/linresume/internal/profile"
)

// fakePage simulates a profile page. Navigating to the details path
// switches which item set Items returns.
type fakePage struct {
    url          string
    detailsItems []Item
    sectionItems []Item
    broadTexts   []string
    markup       string
    failDetails  bool
    onDetails    bool
}

func (f *fakePage) URL() string { return f.url }

func (f *fakePage) Navigate(_ context.Context, url string) error {
    if f.failDetails && len(url) > len(f.url) {
        return errors.New("navigation timeout")
    }
    f.onDetails = len(url) > len(f.url)+1
    return nil
}

func (f *fakePage) Click(context.Context, string) error { return errors.New("no such element") }

func (f *fakePage) Texts(context.Context, string) ([]string, error) {
    return f.broadTexts, nil
}

func (f *fakePage) Items(context.Context, string, string, string, string) ([]Item, error) {
    if f.onDetails {
        return f.detailsItems, nil
    }
    return f.sectionItems, nil
}

func (f *fakePage) HTML(context.Context) (string, error) { return f.markup, nil }

func TestExtract_RejectsNonProfileURL(t *testing.T) {
    x := &Extractor{Page: &fakePage{url: "https://example.com/in/someone"}}
    _, err := x.Extract(context.Background(), "", nil)
    var terr *TargetError
    require.ErrorAs(t, err, &terr)

    x = &Extractor{Page: &fakePage{url: "https://www.linkedin.com/feed/"}}
    _, err = x.Extract(context.Background(), "", nil)
    require.ErrorAs(t, err, &terr)
}

func TestExtract_CaseInsensitiveDedupFirstWins(t *testing.T) {
    page := &fakePage{
        url:          "https://www.linkedin.com/in/jane",
        detailsItems: []Item{{Name: "Python", Endorsements: "12 endorsements"}},
        sectionItems: []Item{{Name: "python", Endorsements: "3 endorsements"}},
    }
    x := &Extractor{Page: page}
    got, err := x.Extract(context.Background(), "", nil)
    require.NoError(t, err)

    count := 0
    for _, s := range got {
        if s.Name == "Python" || s.Name == "python" {
            count++
            require.Equal(t, "Python", s.Name, "first strategy's casing wins")
            require.Equal(t, 12, s.Endorsements)
            require.Equal(t, profile.SourceSkillsDetailsPage, s.Source)
        }
    }
    require.Equal(t, 1, count)
}

func TestExtract_StrategyFailureDegradesToNextStrategy(t *testing.T) {
    page := &fakePage{
        url:          "https://www.linkedin.com/in/jane",
        failDetails:  true,
        sectionItems: []Item{{Name: "Terraform", Endorsements: "7"}},
    }
    x := &Extractor{Page: page}
    got, err := x.Extract(context.Background(), "", nil)
    require.NoError(t, err)
    require.True(t, names(got)["Terraform"])
}

func TestExtract_NoiseWordsFiltered(t *testing.T) {
    page := &fakePage{
        url:          "https://www.linkedin.com/in/jane",
        sectionItems: []Item{{Name: "Show all 42 skills"}, {Name: "Kubernetes"}},
    }
    x := &Extractor{Page: page}
    got, err := x.Extract(context.Background(), "", nil)
    require.NoError(t, err)
    require.True(t, names(got)["Kubernetes"])
    require.False(t, names(got)["Show all 42 skills"])
}

func TestExtract_MarkupFallbackOnlyWhenStructuredEmpty(t *testing.T) {
    page := &fakePage{
        url:    "https://www.linkedin.com/in/jane",
        markup: `<div data-skill="true">Ansible</div>`,
    }
    x := &Extractor{Page: page}
    got, err := x.Extract(context.Background(), "", nil)
    require.NoError(t, err)
    require.True(t, names(got)["Ansible"])
}

func TestExtract_AllSkillsCategorized(t *testing.T) {
    page := &fakePage{
        url:          "https://www.linkedin.com/in/jane",
        sectionItems: []Item{{Name: "Underwater Basket Weaving"}, {Name: "Docker"}},
    }
    x := &Extractor{Page: page}
    got, err := x.Extract(context.Background(), "Experienced Go developer building backend services", nil)
    require.NoError(t, err)
    for _, s := range got {
        require.NotEmpty(t, s.Category, "skill %q missing category", s.Name)
    }
    require.True(t, names(got)["Go"])
}

func TestValidateProfileURL(t *testing.T) {
    valid := []string{
        "https://www.linkedin.com/in/jane-smith/",
        "https://linkedin.com/in/jane",
        "http://www.linkedin.com/in/jane/details/skills/",
    }
    for _, u := range valid {
        if err := ValidateProfileURL(u); err != nil {
            t.Fatalf("expected %q to validate: %v", u, err)
        }
    }
    invalid := []string{
        "",
        "ftp://www.linkedin.com/in/jane",
        "https://evil.example/in/jane",
        "https://www.linkedin.com/company/acme",
        "https://notlinkedin.com.evil/in/jane",
    }
    for _, u := range invalid {
        if err := ValidateProfileURL(u); err == nil {
            t.Fatalf("expected %q to be rejected", u)
        }
    }
}

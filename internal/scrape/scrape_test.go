package scrape

import (
    "context"
    "errors"
    "strings"
    "testing"

    "github.com/stretchr/testify/require"

    "github.com/hyperifyio/linresume/internal/rawstore"
    "github.com/hyperifyio/linresume/internal/skills"
)

// fakeProfilePage serves canned answers keyed by selector fragments.
type fakeProfilePage struct {
    url      string
    texts    map[string]string // selector -> text
    items    map[string][]map[string]string
    attrs    map[string]string
    failSecs map[string]bool // container fragment -> error
    clickErr error
    markup   string
}

func (f *fakeProfilePage) URL() string                                  { return f.url }
func (f *fakeProfilePage) Navigate(_ context.Context, u string) error   { f.url = u; return nil }
func (f *fakeProfilePage) Click(_ context.Context, sel string) error    { return f.clickErr }
func (f *fakeProfilePage) HTML(_ context.Context) (string, error)       { return f.markup, nil }
func (f *fakeProfilePage) Count(_ context.Context, selector string) int {
    for sel := range f.texts {
        if sel == selector {
            return 1
        }
    }
    for frag := range f.items {
        if strings.Contains(selector, "div#"+frag) {
            return 1
        }
    }
    for frag := range f.failSecs {
        if strings.Contains(selector, "div#"+frag) {
            return 1
        }
    }
    return 0
}

func (f *fakeProfilePage) Text(_ context.Context, selector string) (string, error) {
    return f.texts[selector], nil
}

func (f *fakeProfilePage) Texts(_ context.Context, selector string) ([]string, error) {
    if t, ok := f.texts[selector]; ok {
        return []string{t}, nil
    }
    return nil, nil
}

func (f *fakeProfilePage) Attr(_ context.Context, selector, _ string) (string, error) {
    return f.attrs[selector], nil
}

func (f *fakeProfilePage) PairTexts(_ context.Context, container, _, _, _ string) ([][2]string, error) {
    for frag, rows := range f.items {
        if !strings.Contains(container, "div#"+frag) {
            continue
        }
        out := make([][2]string, 0, len(rows))
        for _, r := range rows {
            out = append(out, [2]string{r["title"], r["caption"]})
        }
        return out, nil
    }
    return nil, nil
}

func (f *fakeProfilePage) FieldTexts(_ context.Context, container, _ string, _ map[string]string) ([]map[string]string, error) {
    for frag := range f.failSecs {
        if strings.Contains(container, "div#"+frag) {
            return nil, errors.New("detached node")
        }
    }
    for frag, rows := range f.items {
        if strings.Contains(container, "div#"+frag) {
            return rows, nil
        }
    }
    return nil, nil
}

func janePage() *fakeProfilePage {
    return &fakeProfilePage{
        url: "https://www.linkedin.com/in/jane-smith",
        texts: map[string]string{
            `main h1`:               "Jane Smith",
            `main .text-body-medium`: "Platform Engineer",
        },
        items: map[string][]map[string]string{
            "experience": {
                {
                    "title":       "Platform Engineer",
                    "subtitle":    "Acme · Full-time",
                    "caption":     "Jan 2020 - Present · 3 yrs · Helsinki",
                    "description": "Moved batch workloads to AWS and cut cloud costs.",
                },
                {
                    // Missing both title and company: must be dropped.
                    "title":    "",
                    "subtitle": "",
                    "caption":  "2010 - 2011",
                },
            },
            "education": {
                {"title": "Aalto University", "subtitle": "MSc, Computer Science", "caption": "2014 - 2016"},
                {"title": "", "subtitle": "BSc, Physics"},
            },
        },
    }
}

func TestAssemble_BasicInfoAndSections(t *testing.T) {
    page := janePage()
    a := &Assembler{Page: page}
    data, err := a.Assemble(context.Background(), "https://www.linkedin.com/in/jane-smith")
    require.NoError(t, err)

    require.Equal(t, "Jane Smith", data.Name)
    require.Equal(t, "Platform Engineer", data.Headline)

    require.Len(t, data.Experience, 1, "empty experience must be dropped")
    exp := data.Experience[0]
    require.Equal(t, "Acme", exp.Company)
    require.Equal(t, "Jan 2020", exp.StartDate)
    require.Empty(t, exp.EndDate)
    require.Equal(t, "3 yrs", exp.Duration)
    require.Equal(t, "Helsinki", exp.Location)

    require.Len(t, data.Education, 1, "education without institution must be dropped")
    require.Equal(t, "Aalto University", data.Education[0].Institution)
    require.Equal(t, "MSc", data.Education[0].Degree)
    require.Equal(t, "Computer Science", data.Education[0].FieldOfStudy)
}

func TestAssemble_MinesSkillsFromExperience(t *testing.T) {
    page := janePage()
    a := &Assembler{Page: page}
    data, err := a.Assemble(context.Background(), "https://www.linkedin.com/in/jane-smith")
    require.NoError(t, err)

    var aws bool
    for _, s := range data.Skills {
        if s.Name == "AWS" {
            aws = true
            require.Equal(t, 0.8, s.Confidence, "mined skill carries reduced confidence")
        }
    }
    require.True(t, aws, "AWS mentioned only in a description should still be found")
}

func TestAssemble_SectionFailureIsIsolated(t *testing.T) {
    page := janePage()
    page.failSecs = map[string]bool{"education": true}
    a := &Assembler{Page: page}
    data, err := a.Assemble(context.Background(), "https://www.linkedin.com/in/jane-smith")
    require.NoError(t, err, "one broken section must not abort the run")
    require.Empty(t, data.Education)
    require.NotEmpty(t, data.Experience, "sibling sections keep their data")
}

func TestAssemble_ContactFailureKeepsProfileURL(t *testing.T) {
    page := janePage()
    page.texts[`#top-card-text-details-contact-info`] = ""
    page.clickErr = errors.New("overlay did not open")
    a := &Assembler{Page: page}
    data, err := a.Assemble(context.Background(), "https://www.linkedin.com/in/jane-smith")
    require.NoError(t, err, "contact is a degradable section")

    require.Empty(t, data.Contact.Email)
    require.Equal(t, "https://www.linkedin.com/in/jane-smith", data.Contact.LinkedInURL,
        "profile URL survives a failed contact overlay")
}

func TestAssemble_InvalidTargetIsFatal(t *testing.T) {
    a := &Assembler{Page: janePage()}
    _, err := a.Assemble(context.Background(), "https://example.com/in/jane")
    var terr *skills.TargetError
    require.ErrorAs(t, err, &terr)
}

func TestAssemble_StoresSnapshot(t *testing.T) {
    page := janePage()
    page.markup = "<html><h1>Jane Smith</h1></html>"
    store := &rawstore.Store{Dir: t.TempDir()}
    a := &Assembler{Page: page, Snapshots: store}
    _, err := a.Assemble(context.Background(), "https://www.linkedin.com/in/jane-smith")
    require.NoError(t, err)

    body, err := store.Load("https://www.linkedin.com/in/jane-smith")
    require.NoError(t, err)
    require.Contains(t, string(body), "Jane Smith")
}

package skills

import (
    "sync"
    "testing"

    "github.com/hyperifyio/linresume/internal/profile"
)

func names(skills []profile.Skill) map[string]bool {
    out := map[string]bool{}
    for _, s := range skills {
        out[s.Name] = true
    }
    return out
}

func TestMineText_AmbiguousTokenNeedsContext(t *testing.T) {
    got := names(MineText("Let's go to the park", profile.SourceHeadline))
    if got["Go"] {
        t.Fatal("casual 'go to' must not yield the Go language")
    }

    got = names(MineText("Experienced Go developer building backend services", profile.SourceHeadline))
    if !got["Go"] {
        t.Fatal("expected Go near a programming indicator")
    }
}

func TestMineText_ExclusionPhrase(t *testing.T) {
    got := names(MineText("Big monty python fan and software developer", profile.SourceHeadline))
    if got["Python"] {
        t.Fatal("exclusion phrase should veto the match despite an indicator nearby")
    }
}

func TestMineText_UnambiguousToken(t *testing.T) {
    got := MineText("Migrated workloads to AWS and tuned the cloud spend", profile.SourceExperience)
    found := false
    for _, s := range got {
        if s.Name == "AWS" {
            found = true
            if s.Confidence != 0.8 {
                t.Fatalf("mined confidence = %v, want 0.8", s.Confidence)
            }
            if s.Source != profile.SourceExperience {
                t.Fatalf("source = %q", s.Source)
            }
            if s.Category != string(CategoryCloudDevOps) {
                t.Fatalf("category = %q", s.Category)
            }
        }
    }
    if !found {
        t.Fatal("expected AWS to be mined")
    }
}

func TestMineText_WordBoundaries(t *testing.T) {
    // "Category" contains "go" only inside a word; no match.
    if got := names(MineText("Category theory for developers", profile.SourceHeadline)); got["Go"] {
        t.Fatal("substring inside a word must not match")
    }
    if got := MineText("", profile.SourceHeadline); got != nil {
        t.Fatalf("empty text should mine nothing, got %v", got)
    }
}

func TestMineText_ConcurrentCallers(t *testing.T) {
    var wg sync.WaitGroup
    for i := 0; i < 8; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            for j := 0; j < 50; j++ {
                got := names(MineText("Kubernetes and Terraform on AWS", profile.SourceExperience))
                if !got["Kubernetes"] || !got["Terraform"] || !got["AWS"] {
                    t.Errorf("concurrent mining lost matches: %v", got)
                    return
                }
            }
        }()
    }
    wg.Wait()
}

package skills

import (
    "regexp"
    "strings"

    "github.com/hyperifyio/linresume/internal/profile"
)

// minedConfidence is assigned to skills inferred from free text, below
// the 1.0 given to skills the profile declares explicitly.
const minedConfidence = 0.8

// ambiguousTokens are vocabulary entries that are common English words
// or proper nouns outside a technical context. They only count as a
// skill when the surrounding text looks technical.
var ambiguousTokens = map[string]bool{
    "go":     true,
    "python": true,
    "r":      true,
    "rust":   true,
    "swift":  true,
    "chef":   true,
    "puppet": true,
}

// programmingIndicators accept an ambiguous token when any of them
// appears within 50 characters of the match.
var programmingIndicators = []string{
    "programming", "developer", "development", "engineer", "engineering",
    "backend", "frontend", "framework", "language", "code", "coding",
    "software", "services", "stack",
}

// exclusionPhrases reject an ambiguous token when any of them appears
// within 20 characters of the match.
var exclusionPhrases = []string{
    "let's go to", "lets go to", "go to the", "going to",
    "monty python", "python snake",
}

// wordBoundaryRes holds one boundary-aware pattern per vocabulary
// keyword, compiled once at init. The keyword set is static, so
// MineText touches no shared mutable state and is safe to call from
// concurrent goroutines.
var wordBoundaryRes = func() map[string]*regexp.Regexp {
    res := make(map[string]*regexp.Regexp)
    for _, group := range categoryKeywords {
        for _, kw := range group.Keywords {
            token := strings.ToLower(kw)
            if _, ok := res[token]; ok {
                continue
            }
            res[token] = regexp.MustCompile(`(?i)(^|[^a-z0-9])` + regexp.QuoteMeta(token) + `($|[^a-z0-9])`)
        }
    }
    return res
}()

// MineText scans free text (headline, experience description) for
// occurrences of the known-skill vocabulary. Matching is word-boundary
// aware, and ambiguous tokens additionally require a programming
// indicator near the match and no exclusion phrase around it.
func MineText(text string, source profile.SkillSource) []profile.Skill {
    if strings.TrimSpace(text) == "" {
        return nil
    }
    lower := strings.ToLower(text)

    var out []profile.Skill
    for _, group := range categoryKeywords {
        for _, kw := range group.Keywords {
            kwLower := strings.ToLower(kw)
            loc := wordBoundaryRes[kwLower].FindStringIndex(lower)
            if loc == nil {
                continue
            }
            if ambiguousTokens[kwLower] && !acceptAmbiguous(lower, loc[0], loc[1]) {
                continue
            }
            s, err := profile.NewSkill(kw, 0, source, minedConfidence)
            if err != nil {
                continue
            }
            s.Category = string(group.Category)
            out = append(out, s)
        }
    }
    return out
}

// acceptAmbiguous applies the context-window checks around a match at
// [start, end): an indicator must appear within 50 characters, and no
// exclusion phrase within 20.
func acceptAmbiguous(lower string, start, end int) bool {
    wide := window(lower, start, end, 50)
    near := window(lower, start, end, 20)

    for _, phrase := range exclusionPhrases {
        if strings.Contains(near, phrase) {
            return false
        }
    }
    for _, ind := range programmingIndicators {
        if strings.Contains(wide, ind) {
            return true
        }
    }
    return false
}

func window(s string, start, end, radius int) string {
    lo := start - radius
    if lo < 0 {
        lo = 0
    }
    hi := end + radius
    if hi > len(s) {
        hi = len(s)
    }
    return s[lo:hi]
}

package profile

import "strings"

// Separators tried in order; the first one present in the text wins.
var rangeSeparators = []string{" - ", "–", "—"}

var ongoingMarkers = map[string]bool{
    "present": true,
    "current": true,
    "now":     true,
}

// ParseDateRange splits a free-text date range like "Jan 2020 - Present"
// into start and end. An end of "present", "current" or "now" (any case)
// means the range is open, reported as an empty end. A bare date with no
// separator is treated as an ongoing position: (date, ""). Empty input
// yields ("", "").
func ParseDateRange(text string) (start, end string) {
    text = strings.TrimSpace(text)
    if text == "" {
        return "", ""
    }
    for _, sep := range rangeSeparators {
        idx := strings.Index(text, sep)
        if idx < 0 {
            continue
        }
        start = strings.TrimSpace(text[:idx])
        end = strings.TrimSpace(text[idx+len(sep):])
        if ongoingMarkers[strings.ToLower(end)] {
            end = ""
        }
        return start, end
    }
    return text, ""
}

// ParseEndorsements extracts a non-negative count from endorsement text
// such as "1,234+ endorsements" by stripping every non-digit character.
// Text without digits yields zero.
func ParseEndorsements(text string) int {
    n := 0
    seen := false
    for _, r := range text {
        if r < '0' || r > '9' {
            continue
        }
        seen = true
        n = n*10 + int(r-'0')
        if n > 1_000_000_000 {
            // Clamp absurd values; endorsement counts are small.
            return 1_000_000_000
        }
    }
    if !seen {
        return 0
    }
    return n
}

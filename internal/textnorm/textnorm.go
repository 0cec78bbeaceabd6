package textnorm

import (
    "strings"

    "golang.org/x/text/unicode/norm"
)

// Common mis-decoded punctuation sequences produced when UTF-8 profile text
// is read as Windows-1252 somewhere upstream. Repaired to ASCII equivalents.
var mojibake = strings.NewReplacer(
    "\u00e2\u20ac\u00a2", "-", // mangled bullet
    "\u00e2\u20ac\u201c", "-", // mangled en dash
    "\u00e2\u20ac\u201d", "-", // mangled em dash
)

// Normalize collapses whitespace runs to single spaces, trims, and repairs
// known mis-decoded punctuation. Empty input yields the empty string.
func Normalize(s string) string {
    if s == "" {
        return ""
    }
    s = mojibake.Replace(s)
    s = norm.NFC.String(s)
    return CollapseSpaces(strings.TrimSpace(s))
}

// CollapseSpaces replaces internal whitespace runs with single spaces.
func CollapseSpaces(s string) string {
    var b strings.Builder
    lastSpace := false
    for _, r := range s {
        if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
            if !lastSpace {
                b.WriteByte(' ')
                lastSpace = true
            }
            continue
        }
        b.WriteRune(r)
        lastSpace = false
    }
    return b.String()
}

// Truncate shortens s to at most max runes, appending "..." when it cuts.
// A max of zero or less returns s unchanged.
func Truncate(s string, max int) string {
    if max <= 0 {
        return s
    }
    runes := []rune(s)
    if len(runes) <= max {
        return s
    }
    cut := max - 3
    if cut < 0 {
        cut = 0
    }
    return string(runes[:cut]) + "..."
}

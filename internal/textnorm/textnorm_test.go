package textnorm

import "testing"

func TestNormalize_CollapsesWhitespace(t *testing.T) {
    cases := []struct {
        in   string
        want string
    }{
        {"", ""},
        {"  hello   world  ", "hello world"},
        {"line\none\ttwo", "line one two"},
        {"already clean", "already clean"},
    }
    for _, c := range cases {
        if got := Normalize(c.in); got != c.want {
            t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
        }
    }
}

func TestNormalize_RepairsMangledPunctuation(t *testing.T) {
    in := "Led team â€¢ 2019â€“2021"
    got := Normalize(in)
    want := "Led team - 2019-2021"
    if got != want {
        t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
    }
}

func TestTruncate(t *testing.T) {
    if got := Truncate("short", 10); got != "short" {
        t.Fatalf("expected unchanged, got %q", got)
    }
    got := Truncate("a very long recommendation text", 10)
    if got != "a very ..." {
        t.Fatalf("Truncate = %q", got)
    }
    if got := Truncate("anything", 0); got != "anything" {
        t.Fatalf("max 0 should be a no-op, got %q", got)
    }
}

package browser

import "testing"

func TestCredentialsValidate(t *testing.T) {
    if err := (Credentials{}).Validate(); err == nil {
        t.Fatal("expected error for empty credentials")
    }
    if err := (Credentials{Email: "a@b.example"}).Validate(); err == nil {
        t.Fatal("expected error for missing password")
    }
    if err := (Credentials{Email: "a@b.example", Password: "pw"}).Validate(); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
}

func TestMaskEmail(t *testing.T) {
    cases := []struct{ in, want string }{
        {"jane.smith@example.com", "ja***@example.com"},
        {"ab@example.com", "ab***@example.com"},
        {"x@example.com", "x***@example.com"},
    }
    for _, c := range cases {
        if got := MaskEmail(c.in); got != c.want {
            t.Fatalf("MaskEmail(%q) = %q, want %q", c.in, got, c.want)
        }
    }
}

func TestMaskSecret_NeverRevealsBody(t *testing.T) {
    secret := "hunter2hunter2"
    got := MaskSecret(secret)
    if got == secret {
        t.Fatal("secret not masked")
    }
    if len(got) < 2 || got[0] != 'h' {
        t.Fatalf("mask shape unexpected: %q", got)
    }
    for _, r := range got[1:] {
        if r != '*' {
            t.Fatalf("mask leaks characters: %q", got)
        }
    }
}

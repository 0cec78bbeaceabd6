package browser

import (
    "context"
    "errors"
    "fmt"
    "strings"
    "time"

    "github.com/pquerna/otp/totp"
    "github.com/rs/zerolog/log"
)

const loginURL = "https://www.linkedin.com/login"

// Selector census used to classify the post-submit page state.
const (
    loggedInSelectors  = `nav.global-nav, .global-nav__me`
    twoFactorSelectors = `input[autocomplete="one-time-code"], input[name*="pin"], #input__phone_verification_pin`
    captchaSelectors   = `iframe[src*="captcha"], iframe[src*="challenge"]`
)

// ErrAuthFailed means the login flow did not reach a signed-in state.
// Fatal to the run; there is no retry or backoff for login.
var ErrAuthFailed = errors.New("authentication failed")

// ErrTwoFactor means a 2FA challenge appeared and could not be
// satisfied (no seed configured, or the code was rejected).
var ErrTwoFactor = errors.New("two-factor challenge unresolved")

// Credentials carries the login inputs. Never log these raw; use the
// Mask helpers for any diagnostic output.
type Credentials struct {
    Email      string
    Password   string
    TOTPSecret string
}

// Validate reports whether the mandatory fields are present.
func (c Credentials) Validate() error {
    if strings.TrimSpace(c.Email) == "" {
        return errors.New("credentials: email is required")
    }
    if strings.TrimSpace(c.Password) == "" {
        return errors.New("credentials: password is required")
    }
    return nil
}

// MaskEmail keeps the first two characters and the domain.
func MaskEmail(email string) string {
    at := strings.IndexByte(email, '@')
    if at <= 0 {
        return MaskSecret(email)
    }
    local := email[:at]
    if len(local) <= 2 {
        return local + "***" + email[at:]
    }
    return local[:2] + "***" + email[at:]
}

// MaskSecret replaces all but the first character with asterisks.
func MaskSecret(s string) string {
    if s == "" {
        return ""
    }
    if len(s) == 1 {
        return "*"
    }
    return s[:1] + strings.Repeat("*", 7)
}

// Login signs the session in. Already-authenticated sessions return
// immediately. A 2FA prompt is answered with a generated TOTP code when
// a seed is configured; captchas get a bounded window to be solved
// manually (headful runs) before the login is declared failed.
func (s *Session) Login(ctx context.Context, creds Credentials) error {
    if err := creds.Validate(); err != nil {
        return err
    }
    if err := s.Navigate(ctx, loginURL); err != nil {
        return fmt.Errorf("open login page: %w", err)
    }

    if s.Count(ctx, loggedInSelectors) > 0 {
        log.Info().Str("email", MaskEmail(creds.Email)).Msg("session already authenticated")
        return nil
    }

    log.Info().Str("email", MaskEmail(creds.Email)).Msg("signing in")
    if err := s.SetValue(ctx, `#username`, creds.Email); err != nil {
        return fmt.Errorf("%w: fill email: %v", ErrAuthFailed, err)
    }
    if err := s.SetValue(ctx, `#password, input[name="session_password"]`, creds.Password); err != nil {
        return fmt.Errorf("%w: fill password: %v", ErrAuthFailed, err)
    }
    if err := s.Click(ctx, `button[data-litms-control-urn="login-submit"], button[type="submit"]`); err != nil {
        return fmt.Errorf("%w: submit: %v", ErrAuthFailed, err)
    }

    return s.settleLogin(ctx, creds)
}

// settleLogin polls the page until it lands in a known state.
func (s *Session) settleLogin(ctx context.Context, creds Credentials) error {
    deadline := time.Now().Add(90 * time.Second)
    twoFactorTried := false
    for time.Now().Before(deadline) {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case <-time.After(1200 * time.Millisecond):
        }

        if s.Count(ctx, loggedInSelectors) > 0 {
            log.Info().Msg("signed in")
            return nil
        }
        if s.Count(ctx, captchaSelectors) > 0 {
            log.Warn().Msg("captcha challenge present; waiting for it to clear")
            if err := s.WaitDisappear(ctx, time.Until(deadline), captchaSelectors); err != nil {
                return fmt.Errorf("%w: captcha not cleared", ErrAuthFailed)
            }
            continue
        }
        if s.Count(ctx, twoFactorSelectors) > 0 {
            if twoFactorTried {
                continue
            }
            if err := s.submitTOTP(ctx, creds); err != nil {
                return err
            }
            twoFactorTried = true
        }
    }
    return fmt.Errorf("%w: no signed-in state within deadline", ErrAuthFailed)
}

func (s *Session) submitTOTP(ctx context.Context, creds Credentials) error {
    if strings.TrimSpace(creds.TOTPSecret) == "" {
        return fmt.Errorf("%w: no TOTP seed configured", ErrTwoFactor)
    }
    code, err := totp.GenerateCode(strings.ReplaceAll(creds.TOTPSecret, " ", ""), time.Now())
    if err != nil {
        return fmt.Errorf("%w: generate code: %v", ErrTwoFactor, err)
    }
    log.Info().Str("code", MaskSecret(code)).Msg("answering two-factor prompt")
    if err := s.SetValue(ctx, twoFactorSelectors, code); err != nil {
        return fmt.Errorf("%w: fill code: %v", ErrTwoFactor, err)
    }
    if err := s.Click(ctx, `button[type="submit"], #two-step-submit-button`); err != nil {
        return fmt.Errorf("%w: submit code: %v", ErrTwoFactor, err)
    }
    return nil
}

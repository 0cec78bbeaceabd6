package browser

import (
    "context"
    "fmt"
    "strings"
    "time"

    "github.com/chromedp/chromedp"
    "github.com/rs/zerolog/log"
)

// Options controls the Chrome allocation for one scrape session.
type Options struct {
    Headless   bool
    ChromePath string
    UserAgent  string
    // OpTimeout bounds each individual page operation.
    OpTimeout time.Duration
    // SlowMo adds a pause after navigations to let client-side
    // rendering settle.
    SlowMo time.Duration
}

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// Session owns exactly one Chrome tab. All scraping shares it and runs
// strictly sequentially; sub-page navigations must return before the
// next routine touches the page.
type Session struct {
    ctx         context.Context
    cancelCtx   context.CancelFunc
    cancelAlloc context.CancelFunc
    opTimeout   time.Duration
    slowMo      time.Duration
}

// NewSession allocates a browser and primes a blank tab. Close must be
// called on every exit path.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
    ua := opts.UserAgent
    if ua == "" {
        ua = defaultUserAgent
    }
    allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
        chromedp.Flag("headless", opts.Headless),
        chromedp.Flag("no-sandbox", true),
        chromedp.Flag("disable-gpu", true),
        chromedp.Flag("disable-dev-shm-usage", true),
        chromedp.UserAgent(ua),
    )
    if opts.ChromePath != "" {
        allocOpts = append(allocOpts, chromedp.ExecPath(opts.ChromePath))
    }

    allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
    browserCtx, cancelCtx := chromedp.NewContext(allocCtx)

    s := &Session{
        ctx:         browserCtx,
        cancelCtx:   cancelCtx,
        cancelAlloc: cancelAlloc,
        opTimeout:   opts.OpTimeout,
        slowMo:      opts.SlowMo,
    }
    if s.opTimeout <= 0 {
        s.opTimeout = 30 * time.Second
    }

    if err := s.run(context.Background(), chromedp.Navigate("about:blank")); err != nil {
        s.Close()
        return nil, fmt.Errorf("start browser: %w", err)
    }
    return s, nil
}

// Close releases the tab and the browser process.
func (s *Session) Close() {
    if s == nil {
        return
    }
    if s.cancelCtx != nil {
        s.cancelCtx()
    }
    if s.cancelAlloc != nil {
        s.cancelAlloc()
    }
}

// run executes actions against the session tab under the per-op
// timeout. The caller's ctx only carries cancellation: chromedp needs
// its own context chain, so we check ctx before and bound the run with
// the op timeout.
func (s *Session) run(ctx context.Context, actions ...chromedp.Action) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    runCtx, cancel := context.WithTimeout(s.ctx, s.opTimeout)
    defer cancel()
    return chromedp.Run(runCtx, actions...)
}

// URL returns the tab's current location, or "" when unavailable.
func (s *Session) URL() string {
    var loc string
    if err := s.run(context.Background(), chromedp.Location(&loc)); err != nil {
        return ""
    }
    return loc
}

// Navigate loads a URL and waits for the document body.
func (s *Session) Navigate(ctx context.Context, url string) error {
    err := s.run(ctx,
        chromedp.Navigate(url),
        chromedp.WaitReady("body", chromedp.ByQuery),
    )
    if err != nil {
        return fmt.Errorf("navigate %s: %w", url, err)
    }
    if s.slowMo > 0 {
        time.Sleep(s.slowMo)
    }
    return nil
}

// Click clicks the first element matching selector; an error means no
// element matched.
func (s *Session) Click(ctx context.Context, selector string) error {
    ok := false
    js := fmt.Sprintf(`(() => {
        const el = document.querySelector(%q);
        if (!el) return false;
        el.click();
        return true;
    })()`, selector)
    if err := s.Evaluate(ctx, js, &ok); err != nil {
        return err
    }
    if !ok {
        return fmt.Errorf("no element for selector %q", selector)
    }
    return nil
}

// SetValue fills a form control once it is visible.
func (s *Session) SetValue(ctx context.Context, selector, value string) error {
    return s.run(ctx,
        chromedp.WaitVisible(selector, chromedp.ByQuery),
        chromedp.SetValue(selector, value, chromedp.ByQuery),
    )
}

// WaitVisible blocks until selector is visible or the op times out.
func (s *Session) WaitVisible(ctx context.Context, selector string) error {
    return s.run(ctx, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

// Texts returns the text content of every element matching selector.
func (s *Session) Texts(ctx context.Context, selector string) ([]string, error) {
    var out []string
    js := fmt.Sprintf(`Array.from(document.querySelectorAll(%q))
        .map(el => (el.textContent || '').trim())
        .filter(t => t.length > 0)`, selector)
    if err := s.Evaluate(ctx, js, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// Text returns the first matching element's text, or "" when absent.
func (s *Session) Text(ctx context.Context, selector string) (string, error) {
    texts, err := s.Texts(ctx, selector)
    if err != nil {
        return "", err
    }
    if len(texts) == 0 {
        return "", nil
    }
    return texts[0], nil
}

// Attr returns an attribute of the first matching element.
func (s *Session) Attr(ctx context.Context, selector, attr string) (string, error) {
    var out string
    js := fmt.Sprintf(`(() => {
        const el = document.querySelector(%q);
        return el ? (el.getAttribute(%q) || '') : '';
    })()`, selector, attr)
    if err := s.Evaluate(ctx, js, &out); err != nil {
        return "", err
    }
    return out, nil
}

// PairTexts collects, per item under container, the text of two nested
// selectors. Batch extraction in one JS round trip keeps per-item
// latency off the hot path.
func (s *Session) PairTexts(ctx context.Context, container, item, first, second string) ([][2]string, error) {
    var rows [][]string
    js := fmt.Sprintf(`(() => {
        const scope = document.querySelector(%q);
        if (!scope) return [];
        return Array.from(scope.querySelectorAll(%q)).map(it => {
            const pick = sel => {
                const el = it.querySelector(sel);
                return el ? (el.textContent || '').trim() : '';
            };
            return [pick(%q), pick(%q)];
        });
    })()`, container, item, first, second)
    if err := s.Evaluate(ctx, js, &rows); err != nil {
        return nil, err
    }
    out := make([][2]string, 0, len(rows))
    for _, r := range rows {
        var pair [2]string
        if len(r) > 0 {
            pair[0] = r[0]
        }
        if len(r) > 1 {
            pair[1] = r[1]
        }
        out = append(out, pair)
    }
    return out, nil
}

// FieldTexts extracts, per item under container, the text of each named
// selector. Returns one map per item.
func (s *Session) FieldTexts(ctx context.Context, container, item string, fields map[string]string) ([]map[string]string, error) {
    pairs := make([]string, 0, len(fields))
    for name, sel := range fields {
        pairs = append(pairs, fmt.Sprintf("%q: pick(%q)", name, sel))
    }
    js := fmt.Sprintf(`(() => {
        const scope = document.querySelector(%q);
        if (!scope) return [];
        return Array.from(scope.querySelectorAll(%q)).map(it => {
            const pick = sel => {
                const el = it.querySelector(sel);
                return el ? (el.textContent || '').trim() : '';
            };
            return {%s};
        });
    })()`, container, item, strings.Join(pairs, ", "))
    var rows []map[string]string
    if err := s.Evaluate(ctx, js, &rows); err != nil {
        return nil, err
    }
    return rows, nil
}

// Count returns how many elements match selector.
func (s *Session) Count(ctx context.Context, selector string) int {
    var n int
    js := fmt.Sprintf(`document.querySelectorAll(%q).length`, selector)
    if err := s.Evaluate(ctx, js, &n); err != nil {
        return 0
    }
    return n
}

// HTML returns the full page markup.
func (s *Session) HTML(ctx context.Context) (string, error) {
    var markup string
    if err := s.Evaluate(ctx, `document.documentElement.outerHTML`, &markup); err != nil {
        return "", err
    }
    return markup, nil
}

// Evaluate runs JS in the page and decodes the result into out.
func (s *Session) Evaluate(ctx context.Context, js string, out any) error {
    return s.run(ctx, chromedp.EvaluateAsDevTools(js, out))
}

// WaitUntil polls a JS condition until it is truthy or timeout elapses.
func (s *Session) WaitUntil(ctx context.Context, timeout time.Duration, jsCond string) error {
    deadline := time.Now().Add(timeout)
    for time.Now().Before(deadline) {
        var ok bool
        if err := s.Evaluate(ctx, jsCond, &ok); err == nil && ok {
            return nil
        }
        select {
        case <-ctx.Done():
            return ctx.Err()
        case <-time.After(1500 * time.Millisecond):
        }
    }
    return fmt.Errorf("condition not met within %s", timeout)
}

// WaitDisappear polls until no element matches selector.
func (s *Session) WaitDisappear(ctx context.Context, timeout time.Duration, selector string) error {
    deadline := time.Now().Add(timeout)
    for time.Now().Before(deadline) {
        if s.Count(ctx, selector) == 0 {
            return nil
        }
        select {
        case <-ctx.Done():
            return ctx.Err()
        case <-time.After(2 * time.Second):
        }
    }
    log.Debug().Str("selector", selector).Msg("element still present at deadline")
    return fmt.Errorf("%q still present after %s", selector, timeout)
}

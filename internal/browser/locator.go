package browser

import "context"

// Querier is the slice of Session the locator needs; tests provide
// fakes.
type Querier interface {
    Text(ctx context.Context, selector string) (string, error)
    Count(ctx context.Context, selector string) int
}

// Locator is an ordered list of selector candidates for one logical
// page element. Profile markup varies between accounts and rollouts,
// so each field is located by trying candidates in order; the first
// selector with a match wins. A miss is an explicit (value, false)
// result rather than an error.
type Locator []string

// FirstText returns the text of the first candidate that matches.
func (l Locator) FirstText(ctx context.Context, q Querier) (string, bool) {
    for _, sel := range l {
        if q.Count(ctx, sel) == 0 {
            continue
        }
        text, err := q.Text(ctx, sel)
        if err != nil {
            continue
        }
        return text, true
    }
    return "", false
}

// Resolve returns the first candidate selector that matches anything.
func (l Locator) Resolve(ctx context.Context, q Querier) (string, bool) {
    for _, sel := range l {
        if q.Count(ctx, sel) > 0 {
            return sel, true
        }
    }
    return "", false
}

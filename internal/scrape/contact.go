package scrape

import (
    "context"
    "strings"

    "github.com/hyperifyio/linresume/internal/browser"
    "github.com/hyperifyio/linresume/internal/profile"
)

var (
    contactLink    = browser.Locator{`#top-card-text-details-contact-info`, `a[href*="overlay/contact-info"]`}
    contactModal   = `.artdeco-modal, .pv-contact-info`
    contactDismiss = `button[aria-label="Dismiss"]`
)

// contactInfo opens the contact-info overlay, reads what it exposes,
// and dismisses it so the page is usable for the next section. Email
// comes off the mailto link; phone and websites from their labeled
// blocks.
func (a *Assembler) contactInfo(ctx context.Context) (profile.ContactInfo, error) {
    contact := profile.ContactInfo{}

    sel, ok := contactLink.Resolve(ctx, a.Page)
    if !ok {
        // Profiles without a visible contact affordance still have a
        // location on the top card.
        return contact, nil
    }
    if err := a.Page.Click(ctx, sel); err != nil {
        return contact, err
    }
    // Overlay may close itself on navigation; dismissal is best effort.
    defer func() { _ = a.Page.Click(ctx, contactDismiss) }()

    if a.Page.Count(ctx, contactModal) == 0 {
        return contact, nil
    }

    if href, err := a.Page.Attr(ctx, `a[href^="mailto:"]`, "href"); err == nil && href != "" {
        email := strings.TrimPrefix(href, "mailto:")
        c := profile.ContactInfo{Email: email}
        if c.Validate() == nil {
            contact.Email = email
        }
    }
    if phone, err := a.Page.Text(ctx, `section.ci-phone .t-14, li.ci-phone span`); err == nil {
        contact.Phone = clean(phone)
    }
    if site, err := a.Page.Attr(ctx, `section.ci-websites a, li.ci-websites a`, "href"); err == nil {
        contact.Website = site
    }

    return contact, nil
}

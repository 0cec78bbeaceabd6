package extract

import (
    "bytes"
    "strings"

    "golang.org/x/net/html"
)

// Document is the text recovered from a saved profile-page snapshot.
// It backs the live scraper up: when a selector chain finds nothing,
// the assembler falls back to these fields.
type Document struct {
    Name     string
    Headline string
    Sections map[string]string
}

// FromProfileHTML walks a raw profile page. The first <h1> is taken as
// the profile name, the text block following it as the headline, and
// every <section> that carries an <h2> heading is collected under the
// heading's normalized text.
func FromProfileHTML(input []byte) Document {
    node, err := html.Parse(bytes.NewReader(input))
    if err != nil || node == nil {
        return Document{}
    }

    doc := Document{Sections: map[string]string{}}

    if h1 := findFirst(node, "h1"); h1 != nil {
        doc.Name = normalizeWhitespace(textOf(h1))
        // LinkedIn places the headline in the block element directly
        // after the name heading.
        if sib := nextElement(h1); sib != nil {
            doc.Headline = normalizeWhitespace(textOf(sib))
        }
    }

    walkSections(node, func(heading string, section *html.Node) {
        key := strings.ToLower(normalizeWhitespace(heading))
        if key == "" {
            return
        }
        if _, dup := doc.Sections[key]; dup {
            return
        }
        doc.Sections[key] = normalizeWhitespace(textOf(section))
    })
    return doc
}

// SectionText returns the collected text of the section whose heading
// contains the given word (case-insensitive), or "".
func SectionText(doc Document, headingWord string) string {
    headingWord = strings.ToLower(headingWord)
    for heading, text := range doc.Sections {
        if strings.Contains(heading, headingWord) {
            return text
        }
    }
    return ""
}

// AttrValues scans markup for elements whose attribute key or value
// contains the hint and returns their text content. Used for the
// last-resort skill scan over data-* and aria-label attributes.
func AttrValues(input []byte, hint string) []string {
    node, err := html.Parse(bytes.NewReader(input))
    if err != nil || node == nil {
        return nil
    }
    hint = strings.ToLower(hint)
    var out []string
    var dfs func(*html.Node)
    dfs = func(n *html.Node) {
        if n.Type == html.ElementNode {
            for _, attr := range n.Attr {
                key := strings.ToLower(attr.Key)
                val := strings.ToLower(attr.Val)
                if strings.Contains(key, hint) || ((key == "aria-label" || strings.HasPrefix(key, "data-")) && strings.Contains(val, hint)) {
                    if t := normalizeWhitespace(textOf(n)); t != "" {
                        out = append(out, t)
                    }
                    break
                }
            }
        }
        for c := n.FirstChild; c != nil; c = c.NextSibling {
            dfs(c)
        }
    }
    dfs(node)
    return out
}

// walkSections visits every <section> containing an <h2> descendant.
func walkSections(n *html.Node, visit func(heading string, section *html.Node)) {
    var dfs func(*html.Node)
    dfs = func(cur *html.Node) {
        if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "section") {
            if h2 := findFirst(cur, "h2"); h2 != nil {
                visit(textOf(h2), cur)
            }
        }
        for c := cur.FirstChild; c != nil; c = c.NextSibling {
            dfs(c)
        }
    }
    dfs(n)
}

func findFirst(n *html.Node, tag string) *html.Node {
    var res *html.Node
    var dfs func(*html.Node)
    dfs = func(cur *html.Node) {
        if res != nil {
            return
        }
        if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
            res = cur
            return
        }
        for c := cur.FirstChild; c != nil; c = c.NextSibling {
            dfs(c)
            if res != nil {
                return
            }
        }
    }
    dfs(n)
    return res
}

func nextElement(n *html.Node) *html.Node {
    for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
        if sib.Type == html.ElementNode {
            return sib
        }
    }
    return nil
}

func textOf(n *html.Node) string {
    var b strings.Builder
    collectText(&b, n)
    return b.String()
}

func collectText(b *strings.Builder, n *html.Node) {
    if n.Type == html.ElementNode {
        switch strings.ToLower(n.Data) {
        case "script", "style", "noscript", "iframe":
            return
        case "br", "li", "p", "h1", "h2", "h3":
            b.WriteString("\n")
        }
    }
    if n.Type == html.TextNode {
        data := strings.ReplaceAll(n.Data, "\t", " ")
        data = strings.ReplaceAll(data, "\r", " ")
        b.WriteString(data)
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        collectText(b, c)
    }
}

func normalizeWhitespace(s string) string {
    lines := strings.Split(s, "\n")
    out := make([]string, 0, len(lines))
    for _, line := range lines {
        trimmed := strings.TrimSpace(line)
        if trimmed == "" {
            continue
        }
        out = append(out, collapseSpaces(trimmed))
    }
    return strings.Join(out, " ")
}

func collapseSpaces(s string) string {
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

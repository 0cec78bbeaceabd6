package render

import (
	"html"
	"regexp"
	"strings"
)

// Inline markup, deliberately limited to one span per line. A full
// Markdown parser is overkill for a document this code generated
// itself.
var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
	mdLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// HTMLDocument renders a standalone HTML page from the generated
// Markdown. The conversion is a deterministic line-by-line
// re-interpretation of the Markdown this package emits, not a general
// Markdown renderer.
func HTMLDocument(title, markdown string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>" + html.EscapeString(title) + " - Resume</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("body { font-family: Georgia, serif; max-width: 50rem; margin: 2rem auto; padding: 0 1rem; color: #1c1e21; }\n")
	b.WriteString("h1 { border-bottom: 2px solid #1c1e21; padding-bottom: .3rem; }\n")
	b.WriteString("h2 { border-bottom: 1px solid #ccc; padding-bottom: .2rem; margin-top: 1.6rem; }\n")
	b.WriteString("blockquote { border-left: 3px solid #ccc; margin-left: 0; padding-left: 1rem; color: #555; }\n")
	b.WriteString("hr { border: none; border-top: 1px solid #ccc; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(markdownBody(markdown))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func markdownBody(markdown string) string {
	var b strings.Builder
	inList := false
	closeList := func() {
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimRight(raw, " \t")
		switch {
		case line == "":
			closeList()
		case strings.HasPrefix(line, "### "):
			closeList()
			b.WriteString("<h3>" + inlineHTML(line[4:]) + "</h3>\n")
		case strings.HasPrefix(line, "## "):
			closeList()
			b.WriteString("<h2>" + inlineHTML(line[3:]) + "</h2>\n")
		case strings.HasPrefix(line, "# "):
			closeList()
			b.WriteString("<h1>" + inlineHTML(line[2:]) + "</h1>\n")
		case strings.HasPrefix(line, "- "):
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			b.WriteString("<li>" + inlineHTML(line[2:]) + "</li>\n")
		case strings.HasPrefix(line, "> "):
			closeList()
			b.WriteString("<blockquote>" + inlineHTML(line[2:]) + "</blockquote>\n")
		case line == "---":
			closeList()
			b.WriteString("<hr>\n")
		default:
			closeList()
			b.WriteString("<p>" + inlineHTML(line) + "</p>\n")
		}
	}
	closeList()
	return b.String()
}

// inlineHTML escapes a line and rewrites at most one link, one bold and
// one italic span. Bold runs before italic so ** never half-matches.
func inlineHTML(s string) string {
	s = html.EscapeString(s)
	if m := mdLinkRe.FindStringSubmatchIndex(s); m != nil {
		text := s[m[2]:m[3]]
		url := s[m[4]:m[5]]
		s = s[:m[0]] + `<a href="` + url + `">` + text + `</a>` + s[m[1]:]
	}
	if m := boldRe.FindStringSubmatchIndex(s); m != nil {
		s = s[:m[0]] + "<strong>" + s[m[2]:m[3]] + "</strong>" + s[m[1]:]
	}
	if m := italicRe.FindStringSubmatchIndex(s); m != nil {
		s = s[:m[0]] + "<em>" + s[m[2]:m[3]] + "</em>" + s[m[1]:]
	}
	return s
}

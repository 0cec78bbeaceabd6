package render

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"
)

// defaultPDFConverters is the external converter preference chain.
// Missing binaries fall through; the built-in writer is the terminal
// backend and needs nothing installed.
var defaultPDFConverters = []string{"pandoc", "wkhtmltopdf"}

func (r *Renderer) writePDF(ctx context.Context, markdown, outPath string) error {
	converters := r.PDFConverters
	if converters == nil {
		converters = defaultPDFConverters
	}
	for _, name := range converters {
		bin, err := exec.LookPath(name)
		if err != nil {
			log.Debug().Str("converter", name).Msg("pdf converter not installed; trying next backend")
			continue
		}
		if err := runConverter(ctx, name, bin, markdown, outPath); err != nil {
			log.Warn().Err(err).Str("converter", name).Msg("pdf converter failed; trying next backend")
			continue
		}
		return nil
	}
	return writeResumePDF(markdown, outPath)
}

func runConverter(ctx context.Context, name, bin, markdown, outPath string) error {
	tmp, err := os.MkdirTemp("", "linresume-pdf-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	var cmd *exec.Cmd
	switch name {
	case "pandoc":
		src := filepath.Join(tmp, "resume.md")
		if err := os.WriteFile(src, []byte(markdown), 0o600); err != nil {
			return err
		}
		cmd = exec.CommandContext(ctx, bin, src, "-o", outPath,
			"--variable", "geometry:margin=2cm", "--variable", "fontsize=11pt")
	case "wkhtmltopdf":
		src := filepath.Join(tmp, "resume.html")
		if err := os.WriteFile(src, []byte(HTMLDocument("Resume", markdown)), 0o600); err != nil {
			return err
		}
		cmd = exec.CommandContext(ctx, bin, "--quiet", src, outPath)
	default:
		return fmt.Errorf("unknown converter %q", name)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// writeResumePDF is the built-in backend: a line-by-line flow of the
// Markdown with heading sizing and clickable links, not full Markdown
// layout.
func writeResumePDF(markdown string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	linkRe := regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			pdf.Ln(5)
			continue
		}
		if strings.HasPrefix(s, "#") {
			i := 0
			for i < len(s) && s[i] == '#' {
				i++
			}
			text := strings.TrimSpace(s[i:])
			if text == "" {
				continue
			}
			size := 14.0
			if i >= 2 {
				size = 12.0
			}
			pdf.SetFont("Helvetica", "B", size)
			pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		s = strings.TrimPrefix(s, "> ")
		s = strings.ReplaceAll(s, "**", "")
		parts := linkRe.FindAllStringSubmatchIndex(s, -1)
		if len(parts) == 0 {
			pdf.MultiCell(0, 5, s, "", "L", false)
			continue
		}
		pos := 0
		for _, m := range parts {
			if m[0] > pos {
				pdf.Write(5, s[pos:m[0]])
			}
			pdf.WriteLinkString(5, s[m[2]:m[3]], s[m[4]:m[5]])
			pos = m[1]
		}
		if pos < len(s) {
			pdf.Write(5, s[pos:])
		}
		pdf.Ln(6)
	}

	return pdf.OutputFileAndClose(outPath)
}

package markdown

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cogmetrics/domain/report"
	"cogmetrics/ports"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Renderer converts a composed report into markdown or standalone HTML.
// The markdown document is the canonical rendering; HTML is derived from it.
type Renderer struct{}

// NewRenderer creates a report renderer
func NewRenderer() ports.RendererPort {
	return &Renderer{}
}

// RenderMarkdown writes the report as a markdown document
func (r *Renderer) RenderMarkdown(ctx context.Context, rep *report.Report, w io.Writer) error {
	if rep == nil {
		return fmt.Errorf("render: nil report")
	}
	_, err := io.WriteString(w, buildMarkdown(rep))
	return err
}

// RenderHTML writes the report as a standalone HTML document
func (r *Renderer) RenderHTML(ctx context.Context, rep *report.Report, w io.Writer) error {
	if rep == nil {
		return fmt.Errorf("render: nil report")
	}
	md := buildMarkdown(rep)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	opts := html.RendererOptions{Flags: html.CommonFlags}
	body := markdown.ToHTML([]byte(md), p, html.NewRenderer(opts))

	if _, err := fmt.Fprintf(w, htmlShellHead, rep.ID); err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlShellFoot)
	return err
}

func buildMarkdown(rep *report.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Cognitive Assessment Report\n\n")
	fmt.Fprintf(&b, "**Session:** %s  \n**Generated:** %s  \n**Audience:** %s\n\n",
		rep.SessionID, rep.GeneratedAt, rep.Audience)

	b.WriteString("## Executive Summary\n\n")
	for _, p := range rep.ExecutiveSummary {
		b.WriteString(p)
		b.WriteString("\n\n")
	}

	for _, s := range rep.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		for _, p := range s.Paragraphs {
			b.WriteString(p)
			b.WriteString("\n\n")
		}
		for _, e := range s.Entries {
			fmt.Fprintf(&b, "**%s** - %s\n\n", e.Title, e.Body)
			for _, item := range e.Items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
			if len(e.Items) > 0 {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

const htmlShellHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Report %s</title>
<style>
body { font-family: Georgia, serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; color: #1a1a1a; }
h1, h2 { font-family: Helvetica, Arial, sans-serif; }
h2 { border-bottom: 1px solid #ddd; padding-bottom: 0.3rem; }
</style>
</head>
<body>
`

const htmlShellFoot = `
</body>
</html>
`

package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// extractText flattens a block tree into plain text for linguistic analysis.
// It walks depth-first, taking text, stripped HTML and list items from each
// block and recursing into nested children.
func extractText(blocks []ContentBlock) string {
	var b strings.Builder

	for _, blk := range blocks {
		c := blk.Content
		if c == nil {
			continue
		}
		if c.Text != "" {
			b.WriteString(c.Text)
			b.WriteByte(' ')
		}
		if c.HTML != "" {
			b.WriteString(stripHTML(c.HTML))
			b.WriteByte(' ')
		}
		for _, item := range c.ListItems {
			b.WriteString(item)
			b.WriteByte(' ')
		}
		if len(c.Children) > 0 {
			b.WriteString(extractText(c.Children))
		}
	}

	return strings.TrimSpace(b.String())
}

// extractHTML reconstructs an HTML fragment from the block tree for
// structural and link analysis. Headings become <hN> tags (level from block
// settings, defaulting to H2), paragraphs are wrapped in <p>, images become
// <img> tags with src/alt defaulting to empty strings, and raw HTML payloads
// are passed through verbatim.
func extractHTML(blocks []ContentBlock) string {
	var b strings.Builder

	for _, blk := range blocks {
		c := blk.Content
		if c == nil {
			continue
		}

		if blk.Type == "heading" {
			level := headingLevel(blk.Settings)
			if c.Text != "" {
				fmt.Fprintf(&b, "<h%d>%s</h%d>\n", level, c.Text, level)
			}
		}

		if c.HTML != "" {
			b.WriteString(c.HTML)
			b.WriteByte('\n')
		}

		if blk.Type == "paragraph" && c.Text != "" {
			b.WriteString("<p>" + c.Text + "</p>\n")
		}

		if blk.Type == "image" {
			b.WriteString(`<img src="` + c.MediaURL + `" alt="` + c.MediaAlt + `">` + "\n")
		}

		if len(c.Children) > 0 {
			b.WriteString(extractHTML(c.Children))
		}
	}

	return b.String()
}

func headingLevel(s *BlockSettings) int {
	if s == nil || s.Level == 0 {
		return 2
	}
	return s.Level
}

// stripHTML removes tags via a non-greedy tag pattern and collapses runs of
// whitespace. Entities are not decoded. Only safe for the HTML this package
// reconstructs itself, never arbitrary markup.
func stripHTML(html string) string {
	text := tagRe.ReplaceAllString(html, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

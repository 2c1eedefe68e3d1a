package analyzer

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestExtractText(t *testing.T) {
	blocks := []ContentBlock{
		{ID: "1", Type: "paragraph", Content: &BlockContent{Text: "Hello world."}},
		{ID: "2", Type: "html", Content: &BlockContent{HTML: "<p>From <b>HTML</b></p>"}},
		{ID: "3", Type: "list", Content: &BlockContent{ListItems: []string{"one", "two"}}},
		{ID: "4", Type: "container", Content: &BlockContent{
			Children: []ContentBlock{
				{ID: "5", Type: "paragraph", Content: &BlockContent{Text: "nested"}},
			},
		}},
	}

	got := extractText(blocks)
	want := "Hello world. From HTML one two nested"
	if got != want {
		t.Errorf("extractText = %q, want %q", got, want)
	}
}

func TestExtractTextNilContent(t *testing.T) {
	blocks := []ContentBlock{
		{ID: "1", Type: "divider"},
		{ID: "2", Type: "paragraph", Content: &BlockContent{Text: "after"}},
	}
	if got := extractText(blocks); got != "after" {
		t.Errorf("extractText = %q, want %q", got, "after")
	}
}

func TestExtractHTML(t *testing.T) {
	blocks := []ContentBlock{
		{ID: "1", Type: "heading", Content: &BlockContent{Text: "Section"}, Settings: &BlockSettings{Level: 3}},
		{ID: "2", Type: "heading", Content: &BlockContent{Text: "Default Level"}},
		{ID: "3", Type: "paragraph", Content: &BlockContent{Text: "Body text."}},
		{ID: "4", Type: "image", Content: &BlockContent{MediaURL: "/img/chart.png", MediaAlt: "A chart"}},
		{ID: "5", Type: "image", Content: &BlockContent{MediaURL: "/img/plain.png"}},
		{ID: "6", Type: "container", Content: &BlockContent{
			Children: []ContentBlock{
				{ID: "7", Type: "paragraph", Content: &BlockContent{Text: "Nested body."}},
			},
		}},
	}

	html := extractHTML(blocks)

	for _, want := range []string{
		"<h3>Section</h3>\n",
		"<h2>Default Level</h2>\n",
		"<p>Body text.</p>\n",
		`<img src="/img/chart.png" alt="A chart">` + "\n",
		`<img src="/img/plain.png" alt="">` + "\n",
		"<p>Nested body.</p>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("extractHTML output missing %q:\n%s", want, html)
		}
	}
}

// TestExtractHTMLParses feeds the reconstructed fragment through a real HTML
// parser and checks the DOM it yields, so a regression in tag assembly cannot
// hide behind the regex matchers used elsewhere in the package.
func TestExtractHTMLParses(t *testing.T) {
	blocks := []ContentBlock{
		{ID: "1", Type: "heading", Content: &BlockContent{Text: "Getting Started"}, Settings: &BlockSettings{Level: 2}},
		{ID: "2", Type: "paragraph", Content: &BlockContent{Text: "Intro paragraph."}},
		{ID: "3", Type: "html", Content: &BlockContent{HTML: `<p>See <a href="/guides">our guides</a> and <a href="https://example.com" rel="nofollow">this site</a>.</p>`}},
		{ID: "4", Type: "image", Content: &BlockContent{MediaURL: "/img/a.png", MediaAlt: "Diagram"}},
		{ID: "5", Type: "image", Content: &BlockContent{MediaURL: "/img/b.png"}},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(extractHTML(blocks)))
	if err != nil {
		t.Fatalf("parsing reconstructed HTML: %v", err)
	}

	if n := doc.Find("h2").Length(); n != 1 {
		t.Errorf("expected 1 h2, got %d", n)
	}
	if txt := doc.Find("h2").First().Text(); txt != "Getting Started" {
		t.Errorf("h2 text = %q", txt)
	}
	if n := doc.Find("p").Length(); n != 2 {
		t.Errorf("expected 2 paragraphs, got %d", n)
	}
	if n := doc.Find("a").Length(); n != 2 {
		t.Errorf("expected 2 anchors, got %d", n)
	}
	if n := doc.Find("img").Length(); n != 2 {
		t.Errorf("expected 2 images, got %d", n)
	}

	withAlt := 0
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if alt, ok := s.Attr("alt"); ok && alt != "" {
			withAlt++
		}
	})
	if withAlt != 1 {
		t.Errorf("expected 1 image with non-empty alt, got %d", withAlt)
	}
}

func TestHeadingLevel(t *testing.T) {
	if got := headingLevel(nil); got != 2 {
		t.Errorf("headingLevel(nil) = %d, want 2", got)
	}
	if got := headingLevel(&BlockSettings{}); got != 2 {
		t.Errorf("headingLevel(zero) = %d, want 2", got)
	}
	if got := headingLevel(&BlockSettings{Level: 4}); got != 4 {
		t.Errorf("headingLevel(4) = %d, want 4", got)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Hello   <b>world</b></p>", "Hello world"},
		{"no tags at all", "no tags at all"},
		{"<br><br>", ""},
		{"<h2>Title</h2>\n<p>Body</p>", "Title Body"},
	}
	for _, tt := range tests {
		if got := stripHTML(tt.in); got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

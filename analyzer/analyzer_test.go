package analyzer

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Shutdown(); err != nil {
			t.Errorf("shutdown failed: %v", err)
		}
	})
	return a
}

func strPtr(s string) *string { return &s }

// optimizedRequest builds a well-formed post: optimal title and meta, a slug
// carrying the keyword, four H2 sections, an image with alt text and roughly
// 1250 words at a keyword density just over 1%.
func optimizedRequest() *ValidationRequest {
	kwSentence := "Smart options trading depends on patience."
	trio := "However, consistent practice builds discipline and steady habits over many months. " +
		"Therefore, traders should review their journal entries carefully each week. " +
		"Also, markets reward preparation because preparation reduces costly mistakes."
	para := kwSentence + " " + strings.TrimSpace(strings.Repeat(trio+" ", 3))

	var blocks []ContentBlock
	id := 0
	addPara := func() {
		id++
		blocks = append(blocks, ContentBlock{
			ID:      string(rune('a' + id)),
			Type:    "paragraph",
			Content: &BlockContent{Text: para},
		})
	}
	addHeading := func(text string) {
		id++
		blocks = append(blocks, ContentBlock{
			ID:       string(rune('a' + id)),
			Type:     "heading",
			Content:  &BlockContent{Text: text},
			Settings: &BlockSettings{Level: 2},
		})
	}

	addPara()
	for _, h := range []string{
		"Options Trading Fundamentals",
		"Managing Risk Through Position Sizing",
		"Building a Trading Journal",
		"Common Mistakes and How to Avoid Them",
	} {
		addHeading(h)
		addPara()
		addPara()
		addPara()
	}
	blocks = append(blocks, ContentBlock{
		ID:      "img-1",
		Type:    "image",
		Content: &BlockContent{MediaURL: "/img/payoff.png", MediaAlt: "Payoff diagram for a covered call"},
	})

	meta := "Learn how options trading works in practice. " + strings.Repeat("x", 110)
	return &ValidationRequest{
		Title:           "Complete Guide to Options Trading for New Beginners",
		MetaDescription: &meta,
		ContentBlocks:   blocks,
		Slug:            "complete-guide-options-trading",
		FocusKeyword:    strPtr("options trading"),
	}
}

func TestValidateEmptySubmission(t *testing.T) {
	a := newTestAnalyzer(t)
	resp := a.Validate(&ValidationRequest{})

	if resp.Score != 56 {
		t.Errorf("score = %d, want 56", resp.Score)
	}
	if resp.Grade != "F" {
		t.Errorf("grade = %q, want F", resp.Grade)
	}
	if resp.CategoryScores.TitleScore != 0 {
		t.Errorf("title score = %d, want 0", resp.CategoryScores.TitleScore)
	}
	if resp.CategoryScores.MetaScore != 40 {
		t.Errorf("meta score = %d, want 40", resp.CategoryScores.MetaScore)
	}
	if resp.CategoryScores.KeywordScore != 50 {
		t.Errorf("keyword score = %d, want 50 when no focus keyword is set", resp.CategoryScores.KeywordScore)
	}
	if resp.WordCount != 0 {
		t.Errorf("word count = %d, want 0", resp.WordCount)
	}
	if resp.ReadingTimeMinutes != 1 {
		t.Errorf("reading time = %d, want floor of 1", resp.ReadingTimeMinutes)
	}
	if got := countSeverity(resp.Issues, SeverityError); got < 3 {
		t.Errorf("expected at least 3 errors, got %d: %+v", got, resp.Issues)
	}
	if resp.HeadingStructure == nil {
		t.Error("heading structure should serialize as an empty array, not null")
	}
}

func TestValidateOptimizedPost(t *testing.T) {
	a := newTestAnalyzer(t)
	resp := a.Validate(optimizedRequest())

	if resp.Grade != "A" {
		t.Errorf("grade = %q, want A (score %d)", resp.Grade, resp.Score)
	}
	if resp.Score < 90 {
		t.Errorf("score = %d, want >= 90", resp.Score)
	}
	cs := resp.CategoryScores
	if cs.TitleScore != 100 {
		t.Errorf("title score = %d, want 100", cs.TitleScore)
	}
	if cs.MetaScore != 100 {
		t.Errorf("meta score = %d, want 100", cs.MetaScore)
	}
	if cs.ContentScore != 100 {
		t.Errorf("content score = %d, want 100", cs.ContentScore)
	}
	if cs.StructureScore != 100 {
		t.Errorf("structure score = %d, want 100", cs.StructureScore)
	}
	if cs.KeywordScore != cs.ContentScore {
		t.Errorf("keyword score = %d, want content score %d", cs.KeywordScore, cs.ContentScore)
	}
	if resp.WordCount < 1000 || resp.WordCount >= 1500 {
		t.Errorf("word count = %d, want within [1000, 1500)", resp.WordCount)
	}
	if resp.KeywordDensity < 1.0 || resp.KeywordDensity > 2.5 {
		t.Errorf("keyword density = %f, want within optimal band", resp.KeywordDensity)
	}
	if want := resp.WordCount / 200; resp.ReadingTimeMinutes != want {
		t.Errorf("reading time = %d, want %d", resp.ReadingTimeMinutes, want)
	}
	if resp.ImagesWithoutAlt != 0 {
		t.Errorf("images without alt = %d, want 0", resp.ImagesWithoutAlt)
	}
	if len(resp.HeadingStructure) != 4 {
		t.Errorf("expected 4 headings, got %d", len(resp.HeadingStructure))
	}
	if resp.Links.InternalCount != 0 || resp.Links.ExternalCount != 0 {
		t.Errorf("unexpected link counts: %+v", resp.Links)
	}
	// no links is a warning plus a suggestion but never a score penalty
	if !hasIssue(resp.Issues, SeverityWarning, CategoryLinks) {
		t.Error("expected no-links warning")
	}
	if !hasSuggestion(resp.Suggestions, "Add both internal and external links to your content") {
		t.Errorf("missing link suggestion, got %v", resp.Suggestions)
	}
}

func TestValidateScoreAggregation(t *testing.T) {
	a := newTestAnalyzer(t)

	for name, req := range map[string]*ValidationRequest{
		"empty":     {},
		"optimized": optimizedRequest(),
	} {
		resp := a.Validate(req)
		cs := resp.CategoryScores
		want := clampScore(int(math.Round(float64(cs.TitleScore)*0.20 +
			float64(cs.MetaScore)*0.15 +
			float64(cs.ContentScore)*0.25 +
			float64(cs.ReadabilityScore)*0.20 +
			float64(cs.StructureScore)*0.20)))
		if resp.Score != want {
			t.Errorf("%s: score = %d, want weighted %d", name, resp.Score, want)
		}
	}
}

func TestValidateIssuesSortedBySeverity(t *testing.T) {
	a := newTestAnalyzer(t)
	resp := a.Validate(&ValidationRequest{Title: "Hi", FocusKeyword: strPtr("missing")})

	lastRank := -1
	for _, is := range resp.Issues {
		r := is.Severity.rank()
		if r < lastRank {
			t.Fatalf("issues not ordered by severity: %+v", resp.Issues)
		}
		lastRank = r
	}
}

func TestValidateSuggestionsDeduplicated(t *testing.T) {
	// an empty title and an unfindable keyword produce overlapping advice
	// across stages; each suggestion must appear only once
	a := newTestAnalyzer(t)
	resp := a.Validate(&ValidationRequest{FocusKeyword: strPtr("nowhere")})

	seen := make(map[string]bool)
	for _, s := range resp.Suggestions {
		if seen[s] {
			t.Errorf("duplicate suggestion: %q", s)
		}
		seen[s] = true
	}
}

func TestDedupeSuggestionsKeepsFirstOccurrenceOrder(t *testing.T) {
	got := dedupeSuggestions([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestValidateDeterministic(t *testing.T) {
	a := newTestAnalyzer(t)
	req := optimizedRequest()

	first, err := json.Marshal(a.Validate(req))
	if err != nil {
		t.Fatal(err)
	}

	a.ClearCache()
	second, err := json.Marshal(a.Validate(req))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("recomputed response differs:\n%s\n%s", first, second)
	}
}

func TestValidateCaching(t *testing.T) {
	a := newTestAnalyzer(t)
	req := optimizedRequest()

	if a.IsCached(req) {
		t.Fatal("request should not be cached before first validation")
	}

	first := a.Validate(req)
	if !a.IsCached(req) {
		t.Fatal("request should be cached after validation")
	}

	second := a.Validate(req)
	if first != second {
		t.Error("cached validation should return the stored response")
	}

	if stats := a.GetCacheStats(); stats.Entries != 1 {
		t.Errorf("cache entries = %d, want 1", stats.Entries)
	}

	a.ClearCache()
	if a.IsCached(req) {
		t.Error("request should not be cached after ClearCache")
	}
}

func TestCacheExpiry(t *testing.T) {
	a := newTestAnalyzer(t)
	a.SetCacheTTL(100 * time.Millisecond)

	req := optimizedRequest()
	a.Validate(req)
	if !a.IsCached(req) {
		t.Fatal("expected cache entry right after validation")
	}

	time.Sleep(150 * time.Millisecond)
	if a.IsCached(req) {
		t.Error("cache entry should have expired")
	}
}

func TestCacheSizeLimitEviction(t *testing.T) {
	a := newTestAnalyzer(t)

	for _, title := range []string{"First Post", "Second Post", "Third Post"} {
		a.Validate(&ValidationRequest{Title: title})
	}
	if stats := a.GetCacheStats(); stats.Entries != 3 {
		t.Fatalf("cache entries = %d, want 3", stats.Entries)
	}

	a.SetMaxCacheSize(1)
	if stats := a.GetCacheStats(); stats.Entries > 1 {
		t.Errorf("cache entries = %d after shrink, want at most 1", stats.Entries)
	}
}

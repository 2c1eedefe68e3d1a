package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SEO thresholds. These are load-bearing: editors compare scores across
// revisions, so any change here shifts every published score.
const (
	titleMinLength  = 30
	titleOptimalMin = 50
	titleOptimalMax = 60
	titleMaxLength  = 70

	metaMinLength  = 70
	metaOptimalMin = 150
	metaOptimalMax = 160
	metaMaxLength  = 180

	minWordCount       = 300
	goodWordCount      = 1000
	excellentWordCount = 1500

	keywordDensityMin        = 0.5
	keywordDensityMax        = 3.0
	keywordDensityOptimalMin = 1.0
	keywordDensityOptimalMax = 2.5

	slugMaxLength = 75

	wordsPerMinute = 200
)

var powerWords = []string{
	"ultimate", "complete", "essential", "proven", "best",
	"top", "guide", "how to", "secrets", "tips",
	"definitive", "comprehensive", "master", "expert", "professional",
}

var ctaWords = []string{
	"learn", "discover", "find out", "get", "start", "try", "read", "click", "explore", "see",
}

var transitionWords = []string{
	"however", "therefore", "furthermore", "additionally", "moreover",
	"consequently", "thus", "hence", "meanwhile", "nevertheless",
	"although", "because", "since", "while", "whereas",
	"finally", "first", "second", "third", "next",
	"then", "also", "besides",
}

var slugStopWords = []string{
	"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for", "of",
}

var (
	passiveRe      = regexp.MustCompile(`\b(was|were|is|are|been|being)\s+\w+ed\b`)
	h2TagRe        = regexp.MustCompile(`<h2[^>]*>(.*?)</h2>`)
	imgTagRe       = regexp.MustCompile(`<img[^>]*>`)
	imgWithAltRe   = regexp.MustCompile(`<img[^>]*alt="[^"]+"`)
	internalLinkRe = regexp.MustCompile(`<a[^>]*href="(/[^"]*|#[^"]*)"`)
	externalLinkRe = regexp.MustCompile(`<a[^>]*href="https?://[^"]*"`)
	nofollowRe     = regexp.MustCompile(`<a[^>]*rel="[^"]*nofollow[^"]*"`)
)

// analyzeTitle scores the page title: length bands, focus keyword presence
// and position, power words.
func analyzeTitle(title, keyword string) (int, []Issue, []string) {
	score := 100
	var issues []Issue
	var suggestions []string

	if title == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Category: CategoryTitle,
			Message:  "Page title is missing",
			Impact:   "high",
		})
		return 0, issues, suggestions
	}

	titleLen := utf8.RuneCountInString(title)
	switch {
	case titleLen < titleMinLength:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryTitle,
			Message: fmt.Sprintf("Title is too short (%d chars). Aim for %d-%d characters.",
				titleLen, titleOptimalMin, titleOptimalMax),
			Impact: "medium",
		})
		score -= 20
	case titleLen > titleMaxLength:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryTitle,
			Message: fmt.Sprintf("Title is too long (%d chars). Keep under %d characters.",
				titleLen, titleOptimalMax),
			Impact: "medium",
		})
		score -= 15
	case titleLen >= titleOptimalMin && titleLen <= titleOptimalMax:
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryTitle,
			Message:  fmt.Sprintf("Title length is optimal (%d chars)", titleLen),
		})
	default:
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Category: CategoryTitle,
			Message:  fmt.Sprintf("Title length is acceptable (%d chars)", titleLen),
		})
	}

	titleLower := strings.ToLower(title)
	if keyword != "" {
		kwLower := strings.ToLower(keyword)
		if strings.Contains(titleLower, kwLower) {
			issues = append(issues, Issue{
				Severity: SeveritySuccess,
				Category: CategoryTitle,
				Message:  "Focus keyword found in title",
			})
			if strings.HasPrefix(titleLower, kwLower) || strings.Index(titleLower, kwLower) < 20 {
				issues = append(issues, Issue{
					Severity: SeveritySuccess,
					Category: CategoryTitle,
					Message:  "Focus keyword appears near the beginning of the title",
				})
			}
		} else {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Category: CategoryTitle,
				Message:  "Focus keyword not found in title",
				Impact:   "high",
			})
			suggestions = append(suggestions, "Add your focus keyword near the beginning of the title")
			score -= 15
		}
	}

	hasPowerWord := false
	for _, w := range powerWords {
		if strings.Contains(titleLower, w) {
			hasPowerWord = true
			break
		}
	}
	if hasPowerWord {
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryTitle,
			Message:  "Title contains power words",
		})
	} else {
		suggestions = append(suggestions, "Consider adding power words to make your title more compelling")
	}

	return clampScore(score), issues, suggestions
}

// analyzeMetaDescription scores the meta description. A missing description
// is an error but returns a fixed 40, not 0: an otherwise healthy post
// should not be dragged to the floor by one absent field.
func analyzeMetaDescription(meta *string, keyword string) (int, []Issue, []string) {
	score := 100
	var issues []Issue
	var suggestions []string

	if meta == nil || *meta == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Category: CategoryMeta,
			Message:  "Meta description is missing",
			Impact:   "high",
		})
		suggestions = append(suggestions, "Add a compelling meta description of 150-160 characters")
		return 40, issues, suggestions
	}

	metaText := *meta
	metaLen := utf8.RuneCountInString(metaText)
	switch {
	case metaLen < metaMinLength:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryMeta,
			Message: fmt.Sprintf("Meta description is too short (%d chars). Aim for %d-%d characters.",
				metaLen, metaOptimalMin, metaOptimalMax),
			Impact: "medium",
		})
		score -= 25
	case metaLen > metaMaxLength:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryMeta,
			Message: fmt.Sprintf("Meta description is too long (%d chars). Keep under %d characters.",
				metaLen, metaOptimalMax),
			Impact: "low",
		})
		score -= 10
	case metaLen >= metaOptimalMin && metaLen <= metaOptimalMax:
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryMeta,
			Message:  fmt.Sprintf("Meta description length is optimal (%d chars)", metaLen),
		})
	default:
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Category: CategoryMeta,
			Message:  fmt.Sprintf("Meta description length is acceptable (%d chars)", metaLen),
		})
	}

	metaLower := strings.ToLower(metaText)
	if keyword != "" {
		if strings.Contains(metaLower, strings.ToLower(keyword)) {
			issues = append(issues, Issue{
				Severity: SeveritySuccess,
				Category: CategoryMeta,
				Message:  "Focus keyword found in meta description",
			})
		} else {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Category: CategoryMeta,
				Message:  "Focus keyword not found in meta description",
				Impact:   "medium",
			})
			suggestions = append(suggestions, "Include your focus keyword in the meta description")
			score -= 15
		}
	}

	hasCTA := false
	for _, w := range ctaWords {
		if strings.Contains(metaLower, w) {
			hasCTA = true
			break
		}
	}
	if hasCTA {
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryMeta,
			Message:  "Meta description contains a call to action",
		})
	} else {
		suggestions = append(suggestions, "Add a call to action in your meta description")
	}

	return clampScore(score), issues, suggestions
}

// analyzeContent scores content length and keyword usage, returning the
// computed keyword density alongside the score.
func analyzeContent(text, keyword string) (int, float64, []Issue, []string) {
	score := 100
	var issues []Issue
	var suggestions []string

	wordCount := countWords(text)
	density := 0.0

	switch {
	case wordCount < minWordCount:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Category: CategoryContent,
			Message: fmt.Sprintf("Content is too short (%d words). Aim for at least %d words.",
				wordCount, minWordCount),
			Impact: "high",
		})
		score -= 30
	case wordCount < goodWordCount:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryContent,
			Message: fmt.Sprintf("Content is relatively short (%d words). Consider expanding to %d+ words.",
				wordCount, excellentWordCount),
			Impact: "medium",
		})
		score -= 15
	case wordCount >= excellentWordCount:
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryContent,
			Message:  fmt.Sprintf("Excellent content length (%d words)", wordCount),
		})
	default:
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryContent,
			Message:  fmt.Sprintf("Good content length (%d words)", wordCount),
		})
	}

	if keyword != "" {
		density = keywordDensity(text, keyword)

		switch {
		case density == 0.0:
			issues = append(issues, Issue{
				Severity: SeverityError,
				Category: CategoryKeyword,
				Message:  "Focus keyword not found in content",
				Impact:   "high",
			})
			score -= 25
		case density < keywordDensityMin:
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Category: CategoryKeyword,
				Message: fmt.Sprintf("Keyword density is low (%.1f%%). Aim for %.1f-%.1f%%.",
					density, keywordDensityOptimalMin, keywordDensityOptimalMax),
				Impact: "medium",
			})
			score -= 10
		case density > keywordDensityMax:
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Category: CategoryKeyword,
				Message: fmt.Sprintf("Keyword density is too high (%.1f%%). This may be seen as keyword stuffing.",
					density),
				Impact: "medium",
			})
			score -= 15
		case density >= keywordDensityOptimalMin && density <= keywordDensityOptimalMax:
			issues = append(issues, Issue{
				Severity: SeveritySuccess,
				Category: CategoryKeyword,
				Message:  fmt.Sprintf("Keyword density is optimal (%.1f%%)", density),
			})
		default:
			issues = append(issues, Issue{
				Severity: SeverityInfo,
				Category: CategoryKeyword,
				Message:  fmt.Sprintf("Keyword density is acceptable (%.1f%%)", density),
			})
		}

		fields := strings.Fields(text)
		if len(fields) > 100 {
			fields = fields[:100]
		}
		first100 := strings.ToLower(strings.Join(fields, " "))
		if strings.Contains(first100, strings.ToLower(keyword)) {
			issues = append(issues, Issue{
				Severity: SeveritySuccess,
				Category: CategoryContent,
				Message:  "Focus keyword appears in the first 100 words",
			})
		} else {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Category: CategoryContent,
				Message:  "Focus keyword does not appear in the first 100 words",
				Impact:   "medium",
			})
			suggestions = append(suggestions, "Add your focus keyword within the first paragraph")
			score -= 10
		}
	}

	return clampScore(score), density, issues, suggestions
}

// analyzeReadability scores sentence length, Flesch Reading Ease, transition
// words and a passive-voice heuristic, returning the Flesch score alongside.
func analyzeReadability(text string) (int, float64, []Issue, []string) {
	score := 100
	var issues []Issue
	var suggestions []string

	wordCount := countWords(text)
	sentenceCount := countSentences(text)
	fleschScore := fleschKincaid(text)

	avgSentenceLength := 0.0
	if sentenceCount > 0 {
		avgSentenceLength = float64(wordCount) / float64(sentenceCount)
	}

	switch {
	case avgSentenceLength > 25.0:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryReadability,
			Message: fmt.Sprintf("Sentences are too long on average (%.0f words). Aim for under 20 words.",
				avgSentenceLength),
			Impact: "medium",
		})
		suggestions = append(suggestions, "Break up long sentences for better readability")
		score -= 15
	case avgSentenceLength > 20.0:
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Category: CategoryReadability,
			Message:  fmt.Sprintf("Average sentence length is slightly high (%.0f words)", avgSentenceLength),
			Impact:   "low",
		})
		score -= 5
	default:
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryReadability,
			Message:  fmt.Sprintf("Good average sentence length (%.0f words)", avgSentenceLength),
		})
	}

	switch {
	case fleschScore >= 60.0:
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryReadability,
			Message:  fmt.Sprintf("Good readability score (%.0f Flesch Reading Ease)", fleschScore),
		})
	case fleschScore >= 30.0:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryReadability,
			Message: fmt.Sprintf("Content may be difficult to read (%.0f Flesch Reading Ease). Aim for 60+.",
				fleschScore),
			Impact: "medium",
		})
		suggestions = append(suggestions, "Simplify your writing by using shorter sentences and simpler words")
		score -= 15
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Category: CategoryReadability,
			Message:  fmt.Sprintf("Content is very difficult to read (%.0f Flesch Reading Ease)", fleschScore),
			Impact:   "high",
		})
		score -= 25
	}

	textLower := strings.ToLower(text)
	transitionCount := 0
	for _, w := range transitionWords {
		if strings.Contains(textLower, w) {
			transitionCount++
		}
	}
	if transitionCount < 3 && wordCount > 300 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryReadability,
			Message:  "Content lacks transition words",
			Impact:   "low",
		})
		suggestions = append(suggestions, "Add transition words to improve content flow")
		score -= 10
	} else if transitionCount >= 3 {
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryReadability,
			Message:  "Good use of transition words",
		})
	}

	passiveCount := len(passiveRe.FindAllString(textLower, -1))
	passivePct := 0.0
	if sentenceCount > 0 {
		passivePct = float64(passiveCount) / float64(sentenceCount) * 100.0
	}
	switch {
	case passivePct > 20.0:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryReadability,
			Message:  fmt.Sprintf("Too much passive voice detected (~%.0f%%)", passivePct),
			Impact:   "low",
		})
		suggestions = append(suggestions, "Use more active voice for engaging content")
		score -= 10
	case passivePct > 10.0:
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Category: CategoryReadability,
			Message:  fmt.Sprintf("Some passive voice detected (~%.0f%%)", passivePct),
		})
	default:
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryReadability,
			Message:  "Good use of active voice",
		})
	}

	return clampScore(score), fleschScore, issues, suggestions
}

// analyzeSlug scores the URL slug. An empty slug means "not set yet" on a
// draft, so it returns a neutral 50 rather than an error.
func analyzeSlug(slug, keyword string) (int, []Issue, []string) {
	score := 100
	var issues []Issue
	var suggestions []string

	if slug == "" {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Category: CategorySlug,
			Message:  "URL slug not yet set",
		})
		return 50, issues, suggestions
	}

	if len(slug) > slugMaxLength {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategorySlug,
			Message: fmt.Sprintf("URL slug is too long (%d). Keep under %d characters.",
				len(slug), slugMaxLength),
			Impact: "medium",
		})
		score -= 15
	} else {
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategorySlug,
			Message:  "URL slug length is good",
		})
	}

	if keyword != "" {
		slugLower := strings.ToLower(slug)
		kwLower := strings.ToLower(keyword)
		kwSlug := strings.ReplaceAll(kwLower, " ", "-")

		allWordsPresent := true
		for _, w := range strings.Fields(kwLower) {
			if !strings.Contains(slugLower, w) {
				allWordsPresent = false
				break
			}
		}

		if strings.Contains(slugLower, kwSlug) || allWordsPresent {
			issues = append(issues, Issue{
				Severity: SeveritySuccess,
				Category: CategorySlug,
				Message:  "Focus keyword found in URL slug",
			})
		} else {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Category: CategorySlug,
				Message:  "Focus keyword not found in URL slug",
				Impact:   "medium",
			})
			suggestions = append(suggestions, "Include your focus keyword in the URL slug")
			score -= 15
		}
	}

	slugParts := strings.Split(slug, "-")
	hasStopWord := false
	for _, sw := range slugStopWords {
		for _, part := range slugParts {
			if part == sw {
				hasStopWord = true
				break
			}
		}
		if hasStopWord {
			break
		}
	}
	if hasStopWord {
		suggestions = append(suggestions, "Consider removing stop words from your URL slug")
	}

	if last, _ := utf8.DecodeLastRuneInString(slug); unicode.IsNumber(last) {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Category: CategorySlug,
			Message:  "URL contains numbers (possibly a date)",
		})
	}

	return clampScore(score), issues, suggestions
}

// analyzeStructure validates the heading hierarchy and image alt coverage.
// Headings are read from the top-level blocks while H2 and image counts also
// include matches from the reconstructed HTML; elements visible to both walks
// are counted twice, which the scoring thresholds were tuned against.
func analyzeStructure(html string, blocks []ContentBlock, keyword string) (int, []HeadingNode, int, []Issue, []string) {
	score := 100
	var issues []Issue
	var suggestions []string

	headings := make([]HeadingNode, 0)
	h1Count := 0
	h2Count := 0
	lastLevel := 0
	hierarchyValid := true

	for _, blk := range blocks {
		if blk.Type != "heading" {
			continue
		}
		level := headingLevel(blk.Settings)

		text := ""
		if blk.Content != nil {
			text = blk.Content.Text
		}

		if level > lastLevel+1 && lastLevel > 0 {
			hierarchyValid = false
		}
		lastLevel = level

		switch level {
		case 1:
			h1Count++
		case 2:
			h2Count++
		}

		headings = append(headings, HeadingNode{
			Level:    level,
			Text:     text,
			ID:       blk.ID,
			Children: []HeadingNode{},
		})
	}

	h2Count += len(h2TagRe.FindAllString(html, -1))

	// The page title renders as the H1, so content blocks should add at most one.
	if h1Count > 1 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryHeadings,
			Message:  fmt.Sprintf("Multiple H1 headings found (%d). Use only one H1 per page.", h1Count),
			Impact:   "medium",
		})
		score -= 15
	}

	switch {
	case h2Count == 0:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryStructure,
			Message:  "No H2 subheadings found",
			Impact:   "medium",
		})
		suggestions = append(suggestions, "Add H2 subheadings to improve content structure")
		score -= 15
	case h2Count < 3:
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Category: CategoryStructure,
			Message:  fmt.Sprintf("Only %d H2 subheading(s) found. Consider adding more.", h2Count),
			Impact:   "low",
		})
	default:
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryStructure,
			Message:  fmt.Sprintf("Good number of H2 subheadings (%d)", h2Count),
		})
	}

	if !hierarchyValid {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryHeadings,
			Message:  "Heading hierarchy is not sequential (e.g., H1 -> H3 skips H2)",
			Impact:   "medium",
		})
		suggestions = append(suggestions, "Maintain proper heading hierarchy (H1 -> H2 -> H3)")
		score -= 10
	}

	if keyword != "" {
		kwLower := strings.ToLower(keyword)
		found := false
		for _, h := range headings {
			if strings.Contains(strings.ToLower(h.Text), kwLower) {
				found = true
				break
			}
		}
		if found {
			issues = append(issues, Issue{
				Severity: SeveritySuccess,
				Category: CategoryHeadings,
				Message:  "Focus keyword found in at least one heading",
			})
		} else if len(headings) > 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Category: CategoryHeadings,
				Message:  "Focus keyword not found in any heading",
				Impact:   "medium",
			})
			suggestions = append(suggestions, "Add your focus keyword to at least one subheading (H2)")
			score -= 10
		}
	}

	imagesWithoutAlt := 0
	hasImageBlock := false
	for _, blk := range blocks {
		if blk.Type != "image" {
			continue
		}
		hasImageBlock = true
		if blk.Content == nil || blk.Content.MediaAlt == "" {
			imagesWithoutAlt++
		}
	}

	totalImg := len(imgTagRe.FindAllString(html, -1))
	imgWithAlt := len(imgWithAltRe.FindAllString(html, -1))
	if totalImg > imgWithAlt {
		imagesWithoutAlt += totalImg - imgWithAlt
	}

	if imagesWithoutAlt > 0 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryImages,
			Message:  fmt.Sprintf("%d image(s) missing alt text", imagesWithoutAlt),
			Impact:   "medium",
		})
		suggestions = append(suggestions, "Add descriptive alt text to all images")
		score -= 10
	} else if totalImg > 0 || hasImageBlock {
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryImages,
			Message:  "All images have alt text",
		})
	}

	return clampScore(score), headings, imagesWithoutAlt, issues, suggestions
}

// analyzeLinks counts internal/external/nofollow anchors in the reconstructed
// HTML. Link composition never subtracts from any score; it only produces
// positive findings and suggestions. BrokenCount stays zero because liveness
// checks would need network calls the validator does not make.
func analyzeLinks(html string) (LinksAnalysis, []Issue, []string) {
	var issues []Issue
	var suggestions []string

	internalCount := len(internalLinkRe.FindAllString(html, -1))
	externalCount := len(externalLinkRe.FindAllString(html, -1))
	nofollowCount := len(nofollowRe.FindAllString(html, -1))

	totalLinks := internalCount + externalCount
	ratio := 0.0
	if totalLinks > 0 {
		ratio = float64(internalCount) / float64(totalLinks)
	}

	if internalCount == 0 && externalCount > 0 {
		suggestions = append(suggestions, "Add internal links to other relevant content on your site")
	} else if internalCount > 0 {
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryLinks,
			Message:  fmt.Sprintf("%d internal link(s) found", internalCount),
		})
	}

	if externalCount == 0 && internalCount > 0 {
		suggestions = append(suggestions, "Consider adding external links to authoritative sources")
	} else if externalCount > 0 {
		issues = append(issues, Issue{
			Severity: SeveritySuccess,
			Category: CategoryLinks,
			Message:  fmt.Sprintf("%d external link(s) found", externalCount),
		})
	}

	if totalLinks == 0 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Category: CategoryLinks,
			Message:  "No links found in content",
			Impact:   "low",
		})
		suggestions = append(suggestions, "Add both internal and external links to your content")
	}

	return LinksAnalysis{
		InternalCount: internalCount,
		ExternalCount: externalCount,
		Ratio:         ratio,
		NofollowCount: nofollowCount,
		BrokenCount:   0,
	}, issues, suggestions
}

// calculateGrade maps a composite score to a letter grade.
func calculateGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

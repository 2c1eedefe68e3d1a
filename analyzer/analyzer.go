package analyzer

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/tradingpros/cms-backend/stats"
)

// Cache entry with expiration
type cacheEntry struct {
	response  *ValidationResponse
	timestamp time.Time
}

// CacheStats provides statistics about the analyzer's result cache
type CacheStats struct {
	Entries     int           `json:"entries"`
	CacheHits   int           `json:"cacheHits"`
	CacheMisses int           `json:"cacheMisses"`
	CacheTTL    time.Duration `json:"cacheTTL"`
}

// Analyzer runs SEO validation over CMS content and caches results.
// Validation itself is a pure function of the request, so cached responses
// are byte-identical to freshly computed ones.
type Analyzer struct {
	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	stats           *stats.Storage
}

// New creates a new Analyzer instance with its stats storage rooted at dataDir.
func New(dataDir string) (*Analyzer, error) {
	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	analyzer := &Analyzer{
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		stats:           statsStorage,
	}

	// Start cleanup goroutine
	go analyzer.periodicCleanup()

	return analyzer, nil
}

// periodicCleanup removes expired cache entries periodically
func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		a.cleanup()
	}
}

// cleanup removes expired entries and ensures the cache size limit
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	// If still over size limit, remove oldest entries
	if len(a.cache) > a.maxCacheSize {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(a.cache))

		for key, entry := range a.cache {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})

		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}

	a.lastCleanup = now
}

// SetMaxCacheSize sets the maximum number of cached validation results
func (a *Analyzer) SetMaxCacheSize(size int) {
	a.cacheMutex.Lock()
	a.maxCacheSize = size
	a.cacheMutex.Unlock()
	a.cleanup() // Run cleanup immediately if new size is smaller
}

// SetCacheTTL sets the cache TTL
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// ClearCache clears the result cache
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// cacheKey derives a stable key from the request's JSON encoding. Struct
// field order is fixed, so identical requests always hash the same.
func cacheKey(req *ValidationRequest) (string, bool) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	hash := md5.Sum(data)
	return hex.EncodeToString(hash[:]), true
}

// GetCacheStats returns statistics about the cache
func (a *Analyzer) GetCacheStats() CacheStats {
	currentStats := a.stats.GetCurrentStats()

	a.cacheMutex.RLock()
	entries := len(a.cache)
	ttl := a.cacheTTL
	a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:     entries,
		CacheHits:   currentStats.CacheHits,
		CacheMisses: currentStats.CacheMisses,
		CacheTTL:    ttl,
	}
}

// IsCached reports whether an identical request has a live cache entry
func (a *Analyzer) IsCached(req *ValidationRequest) bool {
	key, ok := cacheKey(req)
	if !ok {
		return false
	}

	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[key]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// Validate runs the full SEO analysis pipeline for a request, serving
// repeated identical requests from the cache.
func (a *Analyzer) Validate(req *ValidationRequest) *ValidationResponse {
	// Check if cleanup is needed
	if time.Since(a.lastCleanup) > a.cleanupInterval {
		go a.cleanup()
	}

	key, keyOK := cacheKey(req)
	if keyOK {
		a.cacheMutex.RLock()
		if entry, found := a.cache[key]; found && time.Since(entry.timestamp) < a.cacheTTL {
			a.cacheMutex.RUnlock()
			a.stats.IncrementStats(1, 0, 0)
			return entry.response
		}
		a.cacheMutex.RUnlock()
		a.stats.IncrementStats(0, 1, 0)
	}

	response := a.run(req)
	a.stats.IncrementStats(0, 0, 1)

	if keyOK {
		a.cacheMutex.Lock()
		a.cache[key] = cacheEntry{
			response:  response,
			timestamp: time.Now(),
		}
		a.cacheMutex.Unlock()
	}

	return response
}

// run executes the analysis stages in a fixed order and aggregates their
// output. Each stage is pure; issues and suggestions are concatenated here
// rather than threaded through the stages as shared state.
func (a *Analyzer) run(req *ValidationRequest) *ValidationResponse {
	plainText := extractText(req.ContentBlocks)
	htmlContent := extractHTML(req.ContentBlocks)
	wordCount := countWords(plainText)

	keyword := ""
	if req.FocusKeyword != nil {
		keyword = *req.FocusKeyword
	}

	issues := make([]Issue, 0)
	suggestions := make([]string, 0)
	appendStage := func(is []Issue, sg []string) {
		issues = append(issues, is...)
		suggestions = append(suggestions, sg...)
	}

	titleScore, is, sg := analyzeTitle(req.Title, keyword)
	appendStage(is, sg)

	metaScore, is, sg := analyzeMetaDescription(req.MetaDescription, keyword)
	appendStage(is, sg)

	contentScore, density, is, sg := analyzeContent(plainText, keyword)
	appendStage(is, sg)

	readabilityScore, fleschScore, is, sg := analyzeReadability(plainText)
	appendStage(is, sg)

	_, is, sg = analyzeSlug(req.Slug, keyword)
	appendStage(is, sg)

	structureScore, headings, imagesWithoutAlt, is, sg := analyzeStructure(htmlContent, req.ContentBlocks, keyword)
	appendStage(is, sg)

	links, is, sg := analyzeLinks(htmlContent)
	appendStage(is, sg)

	// Weighted average. The slug score and the keyword alias stay out of
	// the aggregate.
	overall := int(math.Round(float64(titleScore)*0.20 +
		float64(metaScore)*0.15 +
		float64(contentScore)*0.25 +
		float64(readabilityScore)*0.20 +
		float64(structureScore)*0.20))
	overall = clampScore(overall)

	readingTime := wordCount / wordsPerMinute
	if readingTime < 1 {
		readingTime = 1
	}

	keywordScore := 50
	if req.FocusKeyword != nil {
		keywordScore = contentScore
	}

	// Sort issues by severity (errors first), stable within equal severity
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.rank() < issues[j].Severity.rank()
	})

	return &ValidationResponse{
		Score:              overall,
		Grade:              calculateGrade(overall),
		Issues:             issues,
		Suggestions:        dedupeSuggestions(suggestions),
		KeywordDensity:     density,
		ReadabilityScore:   fleschScore,
		WordCount:          wordCount,
		ReadingTimeMinutes: readingTime,
		HeadingStructure:   headings,
		Links:              links,
		ImagesWithoutAlt:   imagesWithoutAlt,
		CategoryScores: CategoryScores{
			TitleScore:       titleScore,
			MetaScore:        metaScore,
			ContentScore:     contentScore,
			ReadabilityScore: readabilityScore,
			KeywordScore:     keywordScore,
			StructureScore:   structureScore,
		},
	}
}

// dedupeSuggestions removes duplicates while keeping first-occurrence order
// so responses stay byte-stable for identical input.
func dedupeSuggestions(suggestions []string) []string {
	seen := make(map[string]struct{}, len(suggestions))
	unique := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}

// GetStats returns the statistics storage instance
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown persists pending statistics and releases the cache
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	a.cacheMutex.Lock()
	a.cache = nil
	a.cacheMutex.Unlock()

	return nil
}

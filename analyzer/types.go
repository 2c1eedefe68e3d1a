package analyzer

// Severity classifies how strongly a finding affects the SEO score.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// rank orders severities for sorting: errors first, successes last.
func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// Category identifies which analysis dimension produced an issue.
type Category string

const (
	CategoryTitle       Category = "title"
	CategoryMeta        Category = "meta"
	CategoryContent     Category = "content"
	CategoryKeyword     Category = "keyword"
	CategoryReadability Category = "readability"
	CategoryStructure   Category = "structure"
	CategorySlug        Category = "slug"
	CategoryLinks       Category = "links"
	CategoryImages      Category = "images"
	CategoryHeadings    Category = "headings"
)

// Issue is a single SEO finding. The severity is serialized as "type" for
// compatibility with dashboard clients.
type Issue struct {
	Severity Severity `json:"type"`
	Category Category `json:"category"`
	Message  string   `json:"message"`
	Impact   string   `json:"impact,omitempty"`
}

// ContentBlock is one node of the editor's rich content tree. Unknown block
// types are carried along; extraction reads only the fields it understands.
type ContentBlock struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Content  *BlockContent  `json:"content,omitempty"`
	Settings *BlockSettings `json:"settings,omitempty"`
}

// BlockContent holds the payload of a content block. Every field is optional;
// a block with no content contributes nothing to the analysis.
type BlockContent struct {
	Text      string         `json:"text,omitempty"`
	HTML      string         `json:"html,omitempty"`
	ListItems []string       `json:"listItems,omitempty"`
	MediaURL  string         `json:"mediaUrl,omitempty"`
	MediaAlt  string         `json:"mediaAlt,omitempty"`
	Children  []ContentBlock `json:"children,omitempty"`
}

// BlockSettings carries per-block editor settings. A missing or zero heading
// level is treated as H2.
type BlockSettings struct {
	Level int `json:"level,omitempty"`
}

// ValidationRequest is the input to a single SEO validation run.
// MetaDescription and FocusKeyword are pointers because a field that was
// never sent behaves differently from one sent as an empty string.
type ValidationRequest struct {
	Title           string         `json:"title"`
	MetaDescription *string        `json:"meta_description,omitempty"`
	ContentBlocks   []ContentBlock `json:"content_blocks"`
	Slug            string         `json:"slug"`
	FocusKeyword    *string        `json:"focus_keyword,omitempty"`
}

// HeadingNode is one heading found in the content, used by clients to render
// the document outline. Children is always empty for now: headings are
// reported in document order, not nested.
type HeadingNode struct {
	Level    int           `json:"level"`
	Text     string        `json:"text"`
	ID       string        `json:"id"`
	Children []HeadingNode `json:"children"`
}

// LinksAnalysis summarizes the anchors found in the reconstructed HTML.
// BrokenCount is always zero: the validator never performs network calls.
type LinksAnalysis struct {
	InternalCount int     `json:"internal_count"`
	ExternalCount int     `json:"external_count"`
	Ratio         float64 `json:"ratio"`
	NofollowCount int     `json:"nofollow_count"`
	BrokenCount   int     `json:"broken_count"`
}

// CategoryScores reports the per-dimension sub-scores. KeywordScore mirrors
// the content score when a focus keyword was supplied (50 otherwise) and is
// shown for display only; it does not feed the weighted aggregate.
type CategoryScores struct {
	TitleScore       int `json:"title_score"`
	MetaScore        int `json:"meta_score"`
	ContentScore     int `json:"content_score"`
	ReadabilityScore int `json:"readability_score"`
	KeywordScore     int `json:"keyword_score"`
	StructureScore   int `json:"structure_score"`
}

// ValidationResponse is the complete result of one SEO validation run.
type ValidationResponse struct {
	Score              int            `json:"score"`
	Grade              string         `json:"grade"`
	Issues             []Issue        `json:"issues"`
	Suggestions        []string       `json:"suggestions"`
	KeywordDensity     float64        `json:"keyword_density"`
	ReadabilityScore   float64        `json:"readability_score"`
	WordCount          int            `json:"word_count"`
	ReadingTimeMinutes int            `json:"reading_time_minutes"`
	HeadingStructure   []HeadingNode  `json:"heading_structure"`
	Links              LinksAnalysis  `json:"links"`
	ImagesWithoutAlt   int            `json:"images_without_alt"`
	CategoryScores     CategoryScores `json:"category_scores"`
}

package models

// ArticleMeta carries the metadata supplied alongside article content.
// WordCount follows the extractor's convention: it is the character length of
// the tag-stripped, whitespace-collapsed content, not a token count. The
// convention suits Japanese text where whitespace-delimited counting is
// meaningless, and is preserved for compatibility with existing callers.
type ArticleMeta struct {
	Title     string   `json:"title"`
	Category  string   `json:"category,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	WordCount int      `json:"wordCount"`
}

// ContentImage is one <img> occurrence in article markup. HasAlt is true only
// when an alt attribute is present and non-blank after trimming.
type ContentImage struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	HasAlt bool   `json:"hasAlt"`
}

// ContentLink is one anchor occurrence. IsInternal is true when the href
// starts with "/" or contains the base URL as a substring.
type ContentLink struct {
	Href       string `json:"href"`
	Text       string `json:"text"`
	IsInternal bool   `json:"isInternal"`
}

// StructuredContent is the parsed representation of raw article markup.
// It is derived, ephemeral and recomputed on demand, never persisted.
// Canonical and Viewport come from the metadata extraction pass and feed the
// quality scorer's tag checks.
type StructuredContent struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Canonical   string         `json:"canonical,omitempty"`
	Viewport    string         `json:"viewport,omitempty"`
	Headings    []string       `json:"headings"`
	Images      []ContentImage `json:"images"`
	Links       []ContentLink  `json:"links"`
	WordCount   int            `json:"wordCount"`
}

// PageMetadata holds the tag-level metadata extracted from article markup.
// Missing tags yield empty strings.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Robots      string `json:"robots"`
	Viewport    string `json:"viewport"`
	Canonical   string `json:"canonical"`
}

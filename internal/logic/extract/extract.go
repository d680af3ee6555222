// Package extract parses raw article markup (Markdown with embedded HTML)
// into a structured representation. Every function is pure and total:
// missing structure degrades to empty values, never an error. Patterns are
// Go RE2 regexps, so position finding cannot backtrack catastrophically;
// callers are still expected to bound input size before invoking the
// pipeline.
package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/patrickwarner/adweave/internal/models"
)

var (
	titleRe     = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	canonicalRe = regexp.MustCompile(`(?i)<link\s+[^>]*rel=["']canonical["'][^>]*href=["']([^"']*)["']`)
	headingRe   = regexp.MustCompile(`(?im)^(#{1,6})[ \t]+(.+)$|<h[1-6][^>]*>(.*?)</h[1-6]\s*>`)
	imgRe       = regexp.MustCompile(`(?is)<img[^>]*>`)
	srcAttrRe   = regexp.MustCompile(`(?i)src\s*=\s*["']([^"']*)["']`)
	altAttrRe   = regexp.MustCompile(`(?i)alt\s*=\s*["']([^"']*)["']`)
	anchorRe    = regexp.MustCompile(`(?is)<a\s[^>]*href\s*=\s*["']([^"']*)["'][^>]*>(.*?)</a>`)
	tagRe       = regexp.MustCompile(`<[^>]*>`)
	spaceRe     = regexp.MustCompile(`\s+`)
	markdownRe  = regexp.MustCompile("[*_`]+")
)

func metaContentRe(name string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)<meta\s+[^>]*name=["']%s["'][^>]*content=["']([^"']*)["']`, name))
}

var (
	descriptionRe = metaContentRe("description")
	keywordsRe    = metaContentRe("keywords")
	robotsRe      = metaContentRe("robots")
	viewportRe    = metaContentRe("viewport")
)

func firstGroup(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Metadata pulls tag-level metadata out of the content. A missing tag yields
// an empty string.
func Metadata(content string) models.PageMetadata {
	return models.PageMetadata{
		Title:       firstGroup(titleRe, content),
		Description: firstGroup(descriptionRe, content),
		Keywords:    firstGroup(keywordsRe, content),
		Robots:      firstGroup(robotsRe, content),
		Viewport:    firstGroup(viewportRe, content),
		Canonical:   firstGroup(canonicalRe, content),
	}
}

// Headings returns the text of every heading (Markdown ATX levels 1-6 and
// HTML h1-h6) in document order, with inner markup stripped.
func Headings(content string) []string {
	var out []string
	for _, m := range headingRe.FindAllStringSubmatch(content, -1) {
		text := m[2]
		if text == "" {
			text = m[3]
		}
		text = stripInlineMarkup(text)
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}

// Images returns one entry per <img> occurrence. HasAlt is true only when an
// alt attribute is present and non-blank after trimming.
func Images(content string) []models.ContentImage {
	var out []models.ContentImage
	for _, tag := range imgRe.FindAllString(content, -1) {
		img := models.ContentImage{}
		if m := srcAttrRe.FindStringSubmatch(tag); m != nil {
			img.Src = m[1]
		}
		if m := altAttrRe.FindStringSubmatch(tag); m != nil {
			img.Alt = m[1]
			img.HasAlt = strings.TrimSpace(m[1]) != ""
		}
		out = append(out, img)
	}
	return out
}

// Links returns one entry per anchor. A link is internal when its href
// starts with "/" or contains baseURL as a substring.
func Links(content, baseURL string) []models.ContentLink {
	var out []models.ContentLink
	for _, m := range anchorRe.FindAllStringSubmatch(content, -1) {
		href := m[1]
		out = append(out, models.ContentLink{
			Href:       href,
			Text:       stripInlineMarkup(m[2]),
			IsInternal: strings.HasPrefix(href, "/") || (baseURL != "" && strings.Contains(href, baseURL)),
		})
	}
	return out
}

// CountWords strips all tags, collapses whitespace, and returns the
// character length of what remains. Characters, not tokens: the convention
// comes from Japanese article text, where whitespace-delimited word counting
// is meaningless. Callers relying on this value must not reinterpret it as a
// token count.
func CountWords(content string) int {
	stripped := tagRe.ReplaceAllString(content, "")
	collapsed := strings.TrimSpace(spaceRe.ReplaceAllString(stripped, " "))
	return utf8.RuneCountInString(collapsed)
}

// Structured runs every extraction pass over the content and assembles the
// structured representation used by the quality scorer.
func Structured(content, baseURL string) models.StructuredContent {
	meta := Metadata(content)
	return models.StructuredContent{
		Title:       meta.Title,
		Description: meta.Description,
		Canonical:   meta.Canonical,
		Viewport:    meta.Viewport,
		Headings:    Headings(content),
		Images:      Images(content),
		Links:       Links(content, baseURL),
		WordCount:   CountWords(content),
	}
}

func stripInlineMarkup(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = markdownRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

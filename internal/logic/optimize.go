package logic

import (
	"regexp"
	"strings"

	"github.com/patrickwarner/adweave/internal/models"
)

var (
	optImgRe    = regexp.MustCompile(`(?is)<img[^>]*>`)
	optAltRe    = regexp.MustCompile(`(?i)alt\s*=\s*["'][^"']*["']`)
	optAnchorRe = regexp.MustCompile(`(?is)(<a\s[^>]*>)(.*?)(</a>)`)
)

// Anchor texts too vague to help screen readers or crawlers.
var vagueAnchorTexts = []string{"こちら", "ここ", "詳細", "リンク", "here", "click here", "read more"}

func isVagueAnchor(text string) bool {
	for _, v := range vagueAnchorTexts {
		if strings.EqualFold(text, v) {
			return true
		}
	}
	return false
}

// OptimizeContent applies the accessibility micro-optimizations: images
// without meaningful alt text get a topic-derived alt, and vague anchor
// texts are rewritten to name the topic. Pure and total; the returned stats
// count the elements actually changed.
func OptimizeContent(content, topic string) (string, models.OptimizationStats) {
	var stats models.OptimizationStats

	altText := topic + "に関連する画像"
	content = optImgRe.ReplaceAllStringFunc(content, func(tag string) string {
		if m := optAltRe.FindString(tag); m != "" {
			existing := strings.Trim(m[strings.Index(m, "=")+1:], ` "'`)
			if strings.TrimSpace(existing) != "" {
				return tag
			}
			stats.ImagesOptimized++
			return optAltRe.ReplaceAllString(tag, `alt="`+altText+`"`)
		}
		stats.ImagesOptimized++
		if strings.HasSuffix(tag, "/>") {
			return strings.TrimRight(tag[:len(tag)-2], " ") + ` alt="` + altText + `" />`
		}
		return tag[:len(tag)-1] + ` alt="` + altText + `">`
	})

	anchorText := topic + "の詳細情報"
	content = optAnchorRe.ReplaceAllStringFunc(content, func(anchor string) string {
		m := optAnchorRe.FindStringSubmatch(anchor)
		inner := strings.TrimSpace(m[2])
		if !isVagueAnchor(inner) {
			return anchor
		}
		stats.LinksOptimized++
		return m[1] + anchorText + m[3]
	})

	return content, stats
}

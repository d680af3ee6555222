// Package render composes ad configurations into article markup. Real
// renders embed the configured ad code verbatim: ad codes are trusted
// third-party snippets supplied by operators, so escaping them would break
// the embedded script tags. Operator-entered text such as labels and display
// names is escaped.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/patrickwarner/adweave/internal/models"
)

// defaultLabel is the advertisement label used when none is configured.
const defaultLabel = "広告"

// Render produces the markup for one ad configuration. In preview mode the
// container shows a placeholder box describing the unit instead of the real
// ad code.
func Render(cfg models.AdConfig, preview bool) string {
	label := labelBlock(cfg.Style)
	if preview {
		return label + previewContainer(cfg)
	}
	return label + adContainer(cfg)
}

func labelBlock(style models.AdStyle) string {
	if !style.ShowLabel {
		return ""
	}
	text := style.LabelText
	if text == "" {
		text = defaultLabel
	}
	return fmt.Sprintf(`<div class="ad-label" style="font-size:10px;color:#999;text-align:center;">%s</div>`, html.EscapeString(text)) + "\n"
}

func containerStyle(style models.AdStyle) string {
	var rules []string
	if style.Margin != "" {
		rules = append(rules, "margin:"+style.Margin)
	}
	if style.CenterAlign {
		rules = append(rules, "text-align:center")
	}
	return strings.Join(rules, ";")
}

func adContainer(cfg models.AdConfig) string {
	return fmt.Sprintf(`<div class="ad-container" style="%s">%s</div>`, containerStyle(cfg.Style), cfg.AdCode)
}

// SizeLabel renders an ad size for humans: "レスポンシブ" for fluid units,
// otherwise "{w}x{h}".
func SizeLabel(size models.AdSize) string {
	if size.Responsive() {
		return "レスポンシブ"
	}
	return fmt.Sprintf("%dx%d", size.Width, size.Height)
}

func previewContainer(cfg models.AdConfig) string {
	dims := fmt.Sprintf("width:%dpx;height:%dpx;", cfg.Size.Width, cfg.Size.Height)
	if cfg.Size.Responsive() {
		dims = "width:100%;height:250px;"
	}

	return fmt.Sprintf(
		`<div class="ad-preview" style="%sbackground:#f5f5f5;border:2px dashed #ccc;display:flex;flex-direction:column;align-items:center;justify-content:center;">`+
			`<div class="ad-preview-name">%s</div>`+
			`<div class="ad-preview-meta">%s / %s</div>`+
			`</div>`,
		dims,
		html.EscapeString(cfg.Name),
		SizeLabel(cfg.Size),
		html.EscapeString(string(cfg.Placement)),
	)
}

// Package placement locates insertion points for rendered ad markup inside
// article content. Each placement kind maps to a pure resolution function;
// adding a kind means adding a table entry, the orchestrator never changes.
//
// Positions are character (rune) offsets into the content string at the
// moment of insertion. On failure the returned content is byte-identical to
// the input.
package placement

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/patrickwarner/adweave/internal/models"
)

// Result is the outcome of one resolution attempt.
type Result struct {
	Success  bool
	Content  string
	Position int
}

// Func resolves one placement kind against the current content and
// pre-rendered markup.
type Func func(content, markup string) Result

var h1Re = regexp.MustCompile(`(?m)^#\s+.+$`)

// Conclusion heading patterns, tried in fixed order. The first pattern that
// matches anywhere in the content decides the insertion point.
var conclusionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,6}[^\n]*まとめ`),
	regexp.MustCompile(`(?m)^#{1,6}[^\n]*結論`),
	regexp.MustCompile(`(?m)^#{1,6}[^\n]*さいごに`),
	regexp.MustCompile(`(?m)^#{1,6}[^\n]*終わりに`),
	regexp.MustCompile(`(?m)^#{1,6}[^\n]*最後に`),
	regexp.MustCompile(`(?mi)^#{1,6}[^\n]*conclusion`),
	regexp.MustCompile(`(?mi)^#{1,6}[^\n]*summary`),
}

var strategies = map[models.Placement]Func{
	models.PlacementHeader:            header,
	models.PlacementFooter:            footer,
	models.PlacementAfterTitle:        afterTitle,
	models.PlacementBeforeConclusion:  beforeConclusion,
	models.PlacementBetweenParagraphs: betweenParagraphs,
	models.PlacementInContent:         inContent,
}

// Resolve dispatches to the strategy for the given placement kind. The
// sidebar and floating kinds place nothing inline; they append a delimited
// block carrying the ad id for a downstream layout renderer to extract.
// An unknown kind fails with position -1 and the content unchanged.
func Resolve(kind models.Placement, adID, content, markup string) Result {
	switch kind {
	case models.PlacementSidebar:
		return appendBlock(content, "SIDEBAR_AD", adID, markup)
	case models.PlacementFloating:
		return appendBlock(content, "FLOATING_AD", adID, markup)
	}
	if fn, ok := strategies[kind]; ok {
		return fn(content, markup)
	}
	return Result{Success: false, Content: content, Position: -1}
}

func failure(content string) Result {
	return Result{Success: false, Content: content, Position: -1}
}

func header(content, markup string) Result {
	return Result{
		Success:  true,
		Content:  markup + "\n\n" + content,
		Position: 0,
	}
}

func footer(content, markup string) Result {
	return Result{
		Success:  true,
		Content:  content + "\n\n" + markup,
		Position: utf8.RuneCountInString(content),
	}
}

// afterTitle inserts immediately after the first leading-H1 line. The
// reported position is the start of the line that follows the title.
func afterTitle(content, markup string) Result {
	loc := h1Re.FindStringIndex(content)
	if loc == nil {
		return failure(content)
	}

	head := content[:loc[1]]
	tail := content[loc[1]:]

	pos := utf8.RuneCountInString(head)
	if strings.HasPrefix(tail, "\n") {
		pos++
	}

	return Result{
		Success:  true,
		Content:  head + "\n\n" + markup + tail,
		Position: pos,
	}
}

func beforeConclusion(content, markup string) Result {
	for _, re := range conclusionRes {
		loc := re.FindStringIndex(content)
		if loc == nil {
			continue
		}
		head := content[:loc[0]]
		return Result{
			Success:  true,
			Content:  head + markup + "\n\n" + content[loc[0]:],
			Position: utf8.RuneCountInString(head),
		}
	}
	return failure(content)
}

// betweenParagraphs inserts the markup as a new paragraph at the midpoint of
// the blank-line-delimited paragraph list. Fewer than three paragraphs is a
// failure.
func betweenParagraphs(content, markup string) Result {
	paragraphs := strings.Split(content, "\n\n")
	if len(paragraphs) < 3 {
		return failure(content)
	}

	mid := len(paragraphs) / 2
	position := utf8.RuneCountInString(strings.Join(paragraphs[:mid], "\n\n"))

	joined := make([]string, 0, len(paragraphs)+1)
	joined = append(joined, paragraphs[:mid]...)
	joined = append(joined, markup)
	joined = append(joined, paragraphs[mid:]...)

	return Result{
		Success:  true,
		Content:  strings.Join(joined, "\n\n"),
		Position: position,
	}
}

// inContent picks a body-text line a third of the way into the article and
// inserts the markup after it, padded with blank lines. Body-text lines are
// non-blank, not headings, not Markdown images, and longer than 50
// characters; fewer than two such lines is a failure.
func inContent(content, markup string) Result {
	lines := strings.Split(content, "\n")

	var candidates []int
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "![") {
			continue
		}
		if utf8.RuneCountInString(line) <= 50 {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) < 2 {
		return failure(content)
	}

	target := candidates[len(candidates)/3]
	position := utf8.RuneCountInString(strings.Join(lines[:target+1], "\n"))

	joined := make([]string, 0, len(lines)+3)
	joined = append(joined, lines[:target+1]...)
	joined = append(joined, "", markup, "")
	joined = append(joined, lines[target+1:]...)

	return Result{
		Success:  true,
		Content:  strings.Join(joined, "\n"),
		Position: position,
	}
}

// appendBlock places an out-of-flow ad as a comment-delimited block at the
// end of the content. A downstream layout renderer extracts the block by its
// marker and ad id.
func appendBlock(content, marker, adID, markup string) Result {
	block := fmt.Sprintf("<!-- %s:%s -->\n%s\n<!-- /%s -->", marker, adID, markup, marker)
	return Result{
		Success:  true,
		Content:  content + "\n\n" + block,
		Position: utf8.RuneCountInString(content),
	}
}

// Package seo scores structured article content against a fixed rubric.
// Scoring is deterministic: the same structured content always yields the
// same report.
package seo

import (
	"fmt"
	"unicode/utf8"

	"github.com/patrickwarner/adweave/internal/models"
)

const maxImageDeduction = 20

// Score evaluates the structured content and returns a report with a score
// clamped to [0,100]. Deductions across rubric items accumulate; issues and
// recommendations are appended pairwise in deduction order.
func Score(sc models.StructuredContent) models.SeoReport {
	deductions := 0
	issues := make([]string, 0, 8)
	recommendations := make([]string, 0, 8)

	deduct := func(points int, issue, recommendation string) {
		deductions += points
		issues = append(issues, issue)
		recommendations = append(recommendations, recommendation)
	}

	titleLen := utf8.RuneCountInString(sc.Title)
	switch {
	case sc.Title == "":
		deduct(20, "タイトルが設定されていません", "ページタイトルを設定してください")
	case titleLen < 20:
		deduct(15, fmt.Sprintf("タイトルが短すぎます（%d文字）", titleLen), "タイトルは20〜60文字にしてください")
	case titleLen > 60:
		deduct(10, fmt.Sprintf("タイトルが長すぎます（%d文字）", titleLen), "タイトルは60文字以内に収めてください")
	}

	descLen := utf8.RuneCountInString(sc.Description)
	switch {
	case sc.Description == "":
		deduct(20, "メタディスクリプションが設定されていません", "メタディスクリプションを設定してください")
	case descLen < 120:
		deduct(15, fmt.Sprintf("メタディスクリプションが短すぎます（%d文字）", descLen), "メタディスクリプションは120〜160文字にしてください")
	case descLen > 160:
		deduct(10, fmt.Sprintf("メタディスクリプションが長すぎます（%d文字）", descLen), "メタディスクリプションは160文字以内に収めてください")
	}

	if len(sc.Headings) < 3 {
		deduct(15, "見出しが不足しています", "見出しを3つ以上使って構造化してください")
	}

	missingAlt := 0
	for _, img := range sc.Images {
		if !img.HasAlt {
			missingAlt++
		}
	}
	if missingAlt > 0 {
		points := missingAlt * 5
		if points > maxImageDeduction {
			points = maxImageDeduction
		}
		deduct(points,
			fmt.Sprintf("alt属性のない画像が%d件あります", missingAlt),
			"すべての画像にalt属性を設定してください")
	}

	internal := 0
	for _, link := range sc.Links {
		if link.IsInternal {
			internal++
		}
	}
	if internal < 2 {
		deduct(10, "内部リンクが不足しています", "関連記事への内部リンクを2つ以上追加してください")
	}

	if sc.Canonical == "" {
		deduct(5, "canonicalタグが設定されていません", "canonicalタグを設定してください")
	}
	if sc.Viewport == "" {
		deduct(5, "viewportタグが設定されていません", "viewportタグを設定してください")
	}

	score := 100 - deductions
	if score < 0 {
		score = 0
	}

	return models.SeoReport{
		Score:           score,
		Issues:          issues,
		Recommendations: recommendations,
	}
}

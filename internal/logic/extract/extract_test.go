package extract

import (
	"reflect"
	"testing"
)

func TestMetadata(t *testing.T) {
	content := `<title>記事タイトル</title>
<meta name="description" content="説明文です">
<meta name="keywords" content="a,b,c">
<meta name="robots" content="index,follow">
<meta name="viewport" content="width=device-width, initial-scale=1">
<link rel="canonical" href="https://example.com/post">`

	meta := Metadata(content)
	if meta.Title != "記事タイトル" {
		t.Errorf("Title: got %q", meta.Title)
	}
	if meta.Description != "説明文です" {
		t.Errorf("Description: got %q", meta.Description)
	}
	if meta.Keywords != "a,b,c" {
		t.Errorf("Keywords: got %q", meta.Keywords)
	}
	if meta.Robots != "index,follow" {
		t.Errorf("Robots: got %q", meta.Robots)
	}
	if meta.Viewport == "" {
		t.Error("Viewport: expected non-empty")
	}
	if meta.Canonical != "https://example.com/post" {
		t.Errorf("Canonical: got %q", meta.Canonical)
	}
}

func TestMetadataMissingTags(t *testing.T) {
	meta := Metadata("no tags here at all")
	if meta != (Metadata("")) {
		t.Errorf("expected zero metadata, got %+v", meta)
	}
	if meta.Title != "" || meta.Description != "" || meta.Canonical != "" {
		t.Errorf("missing tags must yield empty strings, got %+v", meta)
	}
}

func TestHeadingsOrderAndStripping(t *testing.T) {
	content := "# 見出し1\n\n本文\n\n## **強調**見出し\n\n<h3>HTML <em>見出し</em></h3>\n\n### さいごに"
	got := Headings(content)
	want := []string{"見出し1", "強調見出し", "HTML 見出し", "さいごに"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Headings: got %v, want %v", got, want)
	}
}

func TestImages(t *testing.T) {
	content := `<img src="a.jpg" alt="猫の写真"><img src="b.jpg" alt="  "><img src="c.jpg">`
	imgs := Images(content)
	if len(imgs) != 3 {
		t.Fatalf("expected 3 images, got %d", len(imgs))
	}
	if !imgs[0].HasAlt || imgs[0].Alt != "猫の写真" || imgs[0].Src != "a.jpg" {
		t.Errorf("image 0: %+v", imgs[0])
	}
	// blank alt after trimming counts as missing
	if imgs[1].HasAlt {
		t.Errorf("image 1: blank alt must not count, got %+v", imgs[1])
	}
	if imgs[2].HasAlt || imgs[2].Alt != "" {
		t.Errorf("image 2: %+v", imgs[2])
	}
}

func TestLinks(t *testing.T) {
	content := `<a href="/about">会社概要</a> <a href="https://example.com/post">記事</a> <a href="https://other.org">外部</a>`
	links := Links(content, "example.com")
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(links))
	}
	if !links[0].IsInternal || links[0].Text != "会社概要" {
		t.Errorf("link 0: %+v", links[0])
	}
	if !links[1].IsInternal {
		t.Errorf("link 1 contains base URL, must be internal: %+v", links[1])
	}
	if links[2].IsInternal {
		t.Errorf("link 2: %+v", links[2])
	}
}

func TestLinksEmptyBaseURL(t *testing.T) {
	links := Links(`<a href="https://other.org">x</a>`, "")
	if len(links) != 1 || links[0].IsInternal {
		t.Errorf("empty base URL must not mark absolute links internal: %+v", links)
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"plain ascii", "hello world", 11},
		{"tags stripped", "<p>hello</p>", 5},
		{"whitespace collapsed", "a  \n\n  b", 3},
		{"japanese runes", "日本語のテキスト", 8},
		{"tags only", "<div><img src='x.png'></div>", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountWords(tc.content); got != tc.want {
				t.Errorf("CountWords(%q) = %d, want %d", tc.content, got, tc.want)
			}
		})
	}
}

func TestStructuredIsPure(t *testing.T) {
	content := "# T\n\n<img src=\"a.jpg\" alt=\"x\"> <a href=\"/p\">link</a> 本文テキスト"
	first := Structured(content, "example.com")
	for i := 0; i < 3; i++ {
		if got := Structured(content, "example.com"); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

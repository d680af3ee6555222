package render

import (
	"strings"
	"testing"

	"github.com/patrickwarner/adweave/internal/models"
)

func TestRenderEmbedsAdCodeVerbatim(t *testing.T) {
	cfg := models.AdConfig{
		ID:        "ad-1",
		Placement: models.PlacementHeader,
		AdCode:    `<script src="https://ads.example.com/unit.js"></script>`,
	}
	out := Render(cfg, false)
	if !strings.Contains(out, cfg.AdCode) {
		t.Errorf("ad code must be embedded unescaped: %q", out)
	}
	if strings.Contains(out, "ad-label") {
		t.Errorf("no label requested: %q", out)
	}
}

func TestRenderLabel(t *testing.T) {
	cfg := models.AdConfig{
		ID:        "ad-1",
		Placement: models.PlacementHeader,
		Style:     models.AdStyle{ShowLabel: true},
	}
	out := Render(cfg, false)
	if !strings.Contains(out, ">広告<") {
		t.Errorf("default label missing: %q", out)
	}

	cfg.Style.LabelText = "スポンサーリンク"
	out = Render(cfg, false)
	if !strings.Contains(out, ">スポンサーリンク<") {
		t.Errorf("custom label missing: %q", out)
	}
}

func TestContainerStyleJoin(t *testing.T) {
	tests := []struct {
		name  string
		style models.AdStyle
		want  string
	}{
		{"empty", models.AdStyle{}, `style=""`},
		{"margin only", models.AdStyle{Margin: "20px 0"}, `style="margin:20px 0"`},
		{"center only", models.AdStyle{CenterAlign: true}, `style="text-align:center"`},
		{"both", models.AdStyle{Margin: "1em", CenterAlign: true}, `style="margin:1em;text-align:center"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Render(models.AdConfig{ID: "a", Placement: models.PlacementFooter, Style: tc.style}, false)
			if !strings.Contains(out, tc.want) {
				t.Errorf("got %q, want to contain %q", out, tc.want)
			}
		})
	}
}

func TestPreviewResponsive(t *testing.T) {
	cfg := models.AdConfig{
		ID:        "ad-1",
		Name:      "記事内広告",
		Placement: models.PlacementInContent,
		AdCode:    `<script>real()</script>`,
		Size:      models.AdSize{Width: 0, Height: 0, Name: "responsive"},
	}
	out := Render(cfg, true)
	if strings.Contains(out, "real()") {
		t.Errorf("preview must never embed the real ad code: %q", out)
	}
	if !strings.Contains(out, "height:250px") {
		t.Errorf("responsive preview must use the fixed 250px box: %q", out)
	}
	if !strings.Contains(out, "レスポンシブ") || !strings.Contains(out, "記事内広告") || !strings.Contains(out, "in-content") {
		t.Errorf("preview must show name, size and placement: %q", out)
	}
}

func TestPreviewFixedSize(t *testing.T) {
	cfg := models.AdConfig{
		ID:        "ad-2",
		Name:      "バナー",
		Placement: models.PlacementHeader,
		Size:      models.AdSize{Width: 728, Height: 90},
	}
	out := Render(cfg, true)
	if !strings.Contains(out, "width:728px;height:90px;") {
		t.Errorf("fixed sizes must render explicit pixel dimensions: %q", out)
	}
	if !strings.Contains(out, "728x90") {
		t.Errorf("size label missing: %q", out)
	}
}

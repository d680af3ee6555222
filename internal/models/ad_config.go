package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by store lookups when no record matches.
var ErrNotFound = errors.New("not found")

// AdType identifies the creative format of an ad unit.
type AdType string

const (
	AdTypeDisplay    AdType = "display"
	AdTypeText       AdType = "text"
	AdTypeResponsive AdType = "responsive"
	AdTypeVideo      AdType = "video"
	AdTypeShopping   AdType = "shopping"
)

// Placement names the strategy used to locate an insertion point for an ad
// unit inside article content. Each placement maps to a pure resolution
// function in the placement package.
type Placement string

const (
	PlacementHeader            Placement = "header"
	PlacementFooter            Placement = "footer"
	PlacementInContent         Placement = "in-content"
	PlacementBetweenParagraphs Placement = "between-paragraphs"
	PlacementBeforeConclusion  Placement = "before-conclusion"
	PlacementAfterTitle        Placement = "after-title"
	PlacementSidebar           Placement = "sidebar"
	PlacementFloating          Placement = "floating"
)

var validAdTypes = map[AdType]bool{
	AdTypeDisplay:    true,
	AdTypeText:       true,
	AdTypeResponsive: true,
	AdTypeVideo:      true,
	AdTypeShopping:   true,
}

var validPlacements = map[Placement]bool{
	PlacementHeader:            true,
	PlacementFooter:            true,
	PlacementInContent:         true,
	PlacementBetweenParagraphs: true,
	PlacementBeforeConclusion:  true,
	PlacementAfterTitle:        true,
	PlacementSidebar:           true,
	PlacementFloating:          true,
}

// AdSize describes the pixel dimensions of an ad unit. A width of zero (or
// the name "responsive") marks a fluid unit without fixed dimensions.
type AdSize struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Name   string `json:"name,omitempty"`
}

// Responsive reports whether the size describes a fluid unit.
func (s AdSize) Responsive() bool {
	return s.Width == 0 || s.Name == "responsive"
}

// AdStyle carries presentation options applied when an ad unit is rendered
// into article markup.
type AdStyle struct {
	Margin      string `json:"margin,omitempty"`
	CenterAlign bool   `json:"centerAlign,omitempty"`
	ShowLabel   bool   `json:"showLabel,omitempty"`
	LabelText   string `json:"labelText,omitempty"`
}

// DisplayConditions restricts when an ad configuration may display for a
// given article. Zero values mean the condition is unset and always passes.
type DisplayConditions struct {
	MinWordCount int `json:"minWordCount,omitempty"`
	// DeviceRestriction limits display to one device class ("desktop",
	// "mobile", "tablet"). It is only evaluated when the transport layer
	// supplies a device context resolved from the request User-Agent.
	DeviceRestriction   string   `json:"deviceRestriction,omitempty"`
	CategoryRestriction []string `json:"categoryRestriction,omitempty"`
	ExcludeKeywords     []string `json:"excludeKeywords,omitempty"`
}

// AdConfig is a single ad unit configuration. Configs are owned by an
// external ad-management store; the pipeline treats each config as a
// read-only value for the duration of one invocation.
type AdConfig struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      AdType    `json:"type"`
	Placement Placement `json:"placement"`
	// AdCode is the raw third-party ad snippet. It is embedded in rendered
	// markup verbatim; configs come from trusted operators, not end users.
	AdCode            string            `json:"adCode"`
	Size              AdSize            `json:"size"`
	DisplayConditions DisplayConditions `json:"displayConditions,omitempty"`
	Style             AdStyle           `json:"style,omitempty"`
	IsActive          bool              `json:"isActive"`
	CreatedAt         time.Time         `json:"createdAt,omitempty"`
	UpdatedAt         time.Time         `json:"updatedAt,omitempty"`
}

// Validate checks the structural invariants of a config before it enters the
// pipeline. It does not evaluate display conditions.
func (c AdConfig) Validate() error {
	if c.ID == "" {
		return errors.New("ad config id is empty")
	}
	if c.Type != "" && !validAdTypes[c.Type] {
		return fmt.Errorf("unknown ad type %q", c.Type)
	}
	if !validPlacements[c.Placement] {
		return fmt.Errorf("unknown placement %q", c.Placement)
	}
	if c.Size.Width < 0 || c.Size.Height < 0 {
		return fmt.Errorf("negative size %dx%d", c.Size.Width, c.Size.Height)
	}
	if c.DisplayConditions.MinWordCount < 0 {
		return errors.New("negative minWordCount")
	}
	return nil
}

// AutoPlacementRule maps a word-count bracket to a recommended number of
// synthetic ad units. Brackets are inclusive on both ends.
type AutoPlacementRule struct {
	MinWords           int      `json:"minWords"`
	MaxWords           int      `json:"maxWords"`
	RecommendedAdCount int      `json:"recommendedAdCount"`
	RecommendedAdTypes []AdType `json:"recommendedAdTypes,omitempty"`
}

// AutoPlacementConfig enables rule-driven generation of synthetic ad configs.
type AutoPlacementConfig struct {
	Enabled bool                `json:"enabled"`
	Rules   []AutoPlacementRule `json:"rules,omitempty"`
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/patrickwarner/adweave/internal/logic"
	"github.com/patrickwarner/adweave/internal/logic/extract"
	"github.com/patrickwarner/adweave/internal/models"
	"github.com/patrickwarner/adweave/internal/observability"
	"github.com/patrickwarner/adweave/internal/seo"
)

type EnhanceArticleInput struct {
	Content   string `json:"content"`
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	WordCount int    `json:"word_count,omitempty"`
	Preview   bool   `json:"preview,omitempty"`
}

type EnhanceArticleOutput struct {
	EnhancedContent string                  `json:"enhanced_content"`
	InsertedAds     []models.InsertedAd     `json:"inserted_ads"`
	Summary         models.InsertionSummary `json:"summary"`
	SeoReport       models.SeoReport        `json:"seo_report"`
}

type ScoreArticleInput struct {
	Content string `json:"content"`
	BaseURL string `json:"base_url,omitempty"`
}

type ScoreArticleOutput struct {
	SeoReport models.SeoReport `json:"seo_report"`
}

// enhancerServer holds dependencies for the MCP tools.
type enhancerServer struct {
	store  *models.InMemoryAdConfigStore
	logger *zap.Logger
}

// EnhanceArticle runs the insertion pipeline against the active ad-config
// snapshot and scores the result.
func (s *enhancerServer) EnhanceArticle(ctx context.Context, req *mcp.CallToolRequest, input EnhanceArticleInput) (*mcp.CallToolResult, EnhanceArticleOutput, error) {
	if input.Content == "" || input.Title == "" {
		return nil, EnhanceArticleOutput{}, fmt.Errorf("content and title are required")
	}

	meta := models.ArticleMeta{
		Title:     input.Title,
		Category:  input.Category,
		WordCount: input.WordCount,
	}
	if meta.WordCount <= 0 {
		meta.WordCount = extract.CountWords(input.Content)
	}

	result := logic.InsertAds(s.store.Active(), input.Content, meta, logic.InsertOptions{Preview: input.Preview})
	report := seo.Score(extract.Structured(result.EnhancedContent, ""))

	s.logger.Info("article enhanced via mcp",
		zap.Int("inserted", len(result.InsertedAds)),
		zap.Int("seo_score", report.Score))

	return nil, EnhanceArticleOutput{
		EnhancedContent: result.EnhancedContent,
		InsertedAds:     result.InsertedAds,
		Summary:         result.Summary,
		SeoReport:       report,
	}, nil
}

// ScoreArticle extracts structured content and returns the quality report.
func (s *enhancerServer) ScoreArticle(ctx context.Context, req *mcp.CallToolRequest, input ScoreArticleInput) (*mcp.CallToolResult, ScoreArticleOutput, error) {
	if input.Content == "" {
		return nil, ScoreArticleOutput{}, fmt.Errorf("content is required")
	}

	report := seo.Score(extract.Structured(input.Content, input.BaseURL))
	return nil, ScoreArticleOutput{SeoReport: report}, nil
}

func main() {
	logger, err := observability.InitLogger("adweave-mcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	store := models.NewInMemoryAdConfigStore()
	if file := os.Getenv("AD_CONFIG_FILE"); file != "" {
		if err := store.ReloadFile(file); err != nil {
			logger.Fatal("load ad configs", zap.Error(err))
		}
		logger.Info("ad configs loaded", zap.String("file", file), zap.Int("count", store.Len()))
	}

	enhancer := &enhancerServer{store: store, logger: logger}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "adweave",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "enhance_article",
		Description: "Insert configured ads into a Markdown/HTML article and return the enhanced content with an SEO quality report",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Article content, Markdown with embedded HTML",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Article title",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Article category for eligibility filtering",
				},
				"word_count": map[string]interface{}{
					"type":        "integer",
					"description": "Character count override; computed from content when omitted",
				},
				"preview": map[string]interface{}{
					"type":        "boolean",
					"description": "Render placeholder boxes instead of real ad code",
				},
			},
			"required": []string{"content", "title"},
		},
	}, enhancer.EnhanceArticle)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_article",
		Description: "Score article content quality on a 0-100 scale with itemized issues and recommendations",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Article content, Markdown with embedded HTML",
				},
				"base_url": map[string]interface{}{
					"type":        "string",
					"description": "Site origin used to classify internal links",
				},
			},
			"required": []string{"content"},
		},
	}, enhancer.ScoreArticle)

	logger.Info("MCP server running via stdio")

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

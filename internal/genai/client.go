// Package genai generates plans and final analyses through an OpenAI-compatible chat API.
package genai

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/verte-zerg/consistency21/internal/model"
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	// DefaultPlanModel generates plans.
	DefaultPlanModel = "gemini-3-flash-preview"
	// DefaultAnalysisModel generates final analyses.
	DefaultAnalysisModel = "gemini-3-pro-preview"
)

// Config holds client settings. Empty fields fall back to the defaults.
type Config struct {
	APIKey        string
	BaseURL       string
	PlanModel     string
	AnalysisModel string
	HTTPClient    *http.Client
}

// Client implements plan and analysis generation.
type Client struct {
	cfg    Config
	client *openai.Client
}

// New builds a Client. A missing API key is reported on the first call.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PlanModel == "" {
		cfg.PlanModel = DefaultPlanModel
	}
	if cfg.AnalysisModel == "" {
		cfg.AnalysisModel = DefaultAnalysisModel
	}
	ocfg := openai.DefaultConfig(cfg.APIKey)
	ocfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.HTTPClient != nil {
		ocfg.HTTPClient = cfg.HTTPClient
	}
	return &Client{cfg: cfg, client: openai.NewClientWithConfig(ocfg)}
}

// Config returns the effective settings.
func (c *Client) Config() Config {
	return c.cfg
}

// GeneratePlan asks the plan model for a day-by-day program toward goal.
func (c *Client) GeneratePlan(ctx context.Context, goal string) ([]model.DayPlan, error) {
	text, err := c.complete(ctx, "plan", c.cfg.PlanModel, planPrompt(goal), &planSchema)
	if err != nil {
		return nil, err
	}
	plan, err := ParsePlan(text)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// GenerateAnalysis asks the analysis model to assess the collected reports.
func (c *Client) GenerateAnalysis(ctx context.Context, goal string, reports []model.DailyReport, plan []model.DayPlan) (model.FinalAnalysis, error) {
	prompt, err := analysisPrompt(goal, reports, plan)
	if err != nil {
		return model.FinalAnalysis{}, err
	}
	text, err := c.complete(ctx, "analysis", c.cfg.AnalysisModel, prompt, &analysisSchema)
	if err != nil {
		return model.FinalAnalysis{}, err
	}
	return ParseAnalysis(text)
}

func (c *Client) complete(ctx context.Context, name, modelName, prompt string, schema *jsonschema.Definition) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	reqID := uuid.NewString()
	log.Printf("INFO: [GenAI] %s request %s using model %s", name, reqID, modelName)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: schema,
			},
		},
	})
	if err != nil {
		log.Printf("ERROR: [GenAI] %s request %s failed: %v", name, reqID, err)
		return "", fmt.Errorf("%s request: %w", name, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		log.Printf("WARN: [GenAI] %s request %s returned no content", name, reqID)
		return "", ErrEmptyResponse
	}
	content := resp.Choices[0].Message.Content
	log.Printf("INFO: [GenAI] %s request %s returned %d bytes", name, reqID, len(content))
	return content, nil
}

// Package content obtains tailored resume material from an upstream LLM and
// decodes it into the loosely-typed AIContent form the normalizer consumes.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/davidchen/resume-builder/internal/types"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// Generator produces resume content tailored to a job description.
type Generator interface {
	// Generate returns tailored content for the given job description,
	// profile, and page target.
	Generate(ctx context.Context, jobDescription string, profile *types.UserProfile, targetPages string) (*types.AIContent, error)
	// Close releases any resources held by the generator
	Close() error
}

// GeminiGenerator implements Generator on Google Gemini.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	verbose bool
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, verbose bool) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, &GenerationError{Message: "API key is required"}
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &GenerationError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiGenerator{client: client, model: model, verbose: verbose}, nil
}

// Generate asks the model for tailored content and decodes the JSON reply.
func (g *GeminiGenerator) Generate(ctx context.Context, jobDescription string, profile *types.UserProfile, targetPages string) (*types.AIContent, error) {
	if profile == nil {
		return nil, &GenerationError{Message: "user profile is required"}
	}

	prompt := BuildPrompt(jobDescription, profile, targetPages)

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	if g.verbose {
		log.Printf("[CONTENT] generating %s-page content with %s", targetPages, g.model)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, &GenerationError{Message: "model request failed", Cause: err}
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, &GenerationError{Message: "empty model response", Cause: err}
	}

	return DecodeResponse(text)
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// DecodeResponse strips any markdown fencing from a raw model reply and
// decodes it. Shape violations are logged, not fatal; only unparseable JSON
// fails the call.
func DecodeResponse(raw string) (*types.AIContent, error) {
	cleaned := CleanJSONBlock(raw)

	if err := CheckShape(cleaned); err != nil {
		log.Printf("[CONTENT] %v", err)
	}

	var ai types.AIContent
	if err := json.Unmarshal([]byte(cleaned), &ai); err != nil {
		return nil, &GenerationError{Message: "invalid JSON in model response", Cause: err}
	}
	return &ai, nil
}

// CleanJSONBlock removes markdown code block wrappers from JSON
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

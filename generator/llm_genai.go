package generator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GenAIClient implements Client using the official Google GenAI SDK.
// It is the default provider: the only one in the switch that can paint.
type GenAIClient struct {
	client     *genai.Client
	model      string
	flashModel string
	imageModel string
}

const (
	defaultGenAIModel      = "gemini-3-pro-preview"
	defaultGenAIFlashModel = "gemini-3-flash-preview"
	defaultGenAIImageModel = "gemini-2.5-flash-image"
)

func NewGenAIClient(cfg *Settings) (*GenAIClient, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("genai api key missing; provide llm.api_key")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c := &GenAIClient{
		client:     client,
		model:      cfg.Model,
		flashModel: cfg.FlashModel,
		imageModel: cfg.ImageModel,
	}
	if c.model == "" {
		c.model = defaultGenAIModel
	}
	if c.flashModel == "" {
		c.flashModel = defaultGenAIFlashModel
	}
	if c.imageModel == "" {
		c.imageModel = defaultGenAIImageModel
	}
	return c, nil
}

// historyContents converts the prompt history plus the current user turn
// into the SDK's content list. Any role other than "assistant" maps to user.
func historyContents(prompt Prompt) []*genai.Content {
	var contents []*genai.Content
	for _, h := range prompt.History {
		role := genai.Role(genai.RoleUser)
		if h.Role == "assistant" {
			role = genai.Role(genai.RoleModel)
		}
		contents = append(contents, genai.NewContentFromText(h.Content, role))
	}
	return append(contents, genai.NewContentFromText(prompt.User, genai.RoleUser))
}

func (c *GenAIClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	contents := historyContents(prompt)

	config := &genai.GenerateContentConfig{}
	if prompt.System != "" {
		config.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}
	if prompt.WantJSON {
		config.ResponseMIMEType = "application/json"
	}

	model := c.model
	if prompt.Flash {
		model = c.flashModel
	}
	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("genai complete: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("genai: empty response")
	}
	return text, nil
}

// Paint issues an image-generation call and returns the first inline
// binary part as a base64 data URL. The payload is never decoded here.
func (c *GenAIClient) Paint(ctx context.Context, prompt string, aspect string) (string, error) {
	if aspect == "" {
		aspect = "1:1"
	}
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: aspect},
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("genai paint: %w", err)
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return fmt.Sprintf("data:%s;base64,%s", mime,
				base64.StdEncoding.EncodeToString(part.InlineData.Data)), nil
		}
	}
	return "", errors.New("genai: no inline image in response")
}

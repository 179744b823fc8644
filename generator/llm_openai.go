package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient implements Client using the official openai-go SDK (chat
// completions). Works against any OpenAI-compatible endpoint (e.g.
// DeepSeek with base_url set). Text only: Paint reports unsupported and
// the document simply keeps no image.
type OpenAIClient struct {
	Model      string
	FlashModel string
	Opts       []option.RequestOption
}

func NewOpenAIClient(cfg *Settings) (*OpenAIClient, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; provide llm.api_key")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	flash := cfg.FlashModel
	if flash == "" {
		flash = cfg.Model
	}
	return &OpenAIClient{Model: cfg.Model, FlashModel: flash, Opts: opts}, nil
}

func (o *OpenAIClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.Opts...)

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(prompt.System),
	}
	for _, h := range prompt.History {
		role := h.Role
		if role == "" {
			role = "user"
		}
		switch role {
		case "assistant":
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(h.Content))
		default:
			msgs = append(msgs, openai.UserMessage(h.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(prompt.User))

	model := o.Model
	if prompt.Flash {
		model = o.FlashModel
	}
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: msgs,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIClient) Paint(ctx context.Context, prompt string, aspect string) (string, error) {
	return "", ErrImageUnsupported
}

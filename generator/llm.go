package generator

import (
	"context"
	"errors"
)

// Client 抽象生成式模型客户端，便于替换/Mock。
// Complete returns the raw model text; Paint returns an inline image
// reference (data URL) for the given visual prompt.
type Client interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
	Paint(ctx context.Context, prompt string, aspect string) (string, error)
}

// ErrImageUnsupported is returned by Paint on providers without image
// generation. The orchestrator treats it as a soft failure: content
// completes, the image reference stays empty.
var ErrImageUnsupported = errors.New("provider does not support image generation")

// Settings 提供给具体实现的基础配置。
type Settings struct {
	Provider   string
	Model      string // text model for post/edit/carousel
	FlashModel string // cheaper model for hooks/virality
	ImageModel string
	APIKey     string
	BaseURL    string
}

// Prompt 表示发送给模型的消息集合。
type Prompt struct {
	System   string
	User     string
	History  []Message
	WantJSON bool // hint the provider to emit application/json
	Flash    bool // prefer the cheaper model tier
}

// Message 用于少量历史（可选）。
type Message struct {
	Role    string
	Content string
}

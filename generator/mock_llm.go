package generator

import (
	"context"
	"strings"
)

// MockClient 一个占位实现，便于本地调试和测试，不调用外部模型。
// CompleteFunc/PaintFunc override the canned behavior when set.
type MockClient struct {
	CompleteFunc func(ctx context.Context, prompt Prompt) (string, error)
	PaintFunc    func(ctx context.Context, prompt string, aspect string) (string, error)
}

func (m *MockClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}
	// 简单按提示词内容返回对应形状的 JSON。
	user := strings.ToLower(prompt.User)
	switch {
	case strings.Contains(user, "carousel"):
		var sb strings.Builder
		sb.WriteString("[")
		for i := 0; i < 7; i++ {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(`{"title":"Slide","content":"Point 1\nPoint 2\nPoint 3","visualPrompt":"Abstract structural metaphor"}`)
		}
		sb.WriteString("]")
		return sb.String(), nil
	// "virality" must be sniffed before "hooks": the virality response
	// format itself names hookStrength.
	case strings.Contains(user, "virality"):
		return `{"total":72,"readability":80,"hookStrength":65,"formatting":70,"improvementTips":["Shorten the opening line."]}`, nil
	case strings.Contains(user, "hooks"):
		var sb strings.Builder
		sb.WriteString("[")
		for i := 0; i < 10; i++ {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(`{"category":"Data","text":"A placeholder hook."}`)
		}
		sb.WriteString("]")
		return sb.String(), nil
	case strings.Contains(user, "instruction"):
		return `{"explanation":"Tightened the hook.","content":"Edited placeholder post.","shouldUpdateImage":false}`, nil
	default:
		return `{"explanation":"Placeholder framework.","content":"Generated placeholder post.","imagePrompt":"Minimalist isometric structure"}`, nil
	}
}

func (m *MockClient) Paint(ctx context.Context, prompt string, aspect string) (string, error) {
	if m.PaintFunc != nil {
		return m.PaintFunc(ctx, prompt, aspect)
	}
	return "data:image/png;base64,aWNvbg==", nil
}

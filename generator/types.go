package generator

import "time"

// BrandProfile is the user-supplied business context that biases every
// generation call. All fields are plain strings; a missing field is the
// empty string, never null.
type BrandProfile struct {
	Niche          string `json:"niche"`
	Audience       string `json:"audience"`
	Goals          string `json:"goals"`
	Tone           string `json:"tone"`
	Offer          string `json:"offer"`
	Pillars        string `json:"pillars"`
	Transformation string `json:"transformation"`
	UniqueInsight  string `json:"uniqueInsight"`
	Constraints    string `json:"constraints"`
	CTA            string `json:"cta"`
}

// VoiceProfile is a named writing-style preset. Profiles are selected from
// the compiled-in catalog, never mutated.
type VoiceProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

// ChatMessage 记录 transcript 中的一条消息（append-only，不修改不删除）。
type ChatMessage struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// PostDocument is the draft being edited. Carousel slides and the single
// image may both be present in state; rendering gives the carousel
// precedence.
type PostDocument struct {
	Content        string          `json:"content"`
	AuthorName     string          `json:"authorName"`
	AuthorHeadline string          `json:"authorHeadline"`
	AuthorAvatar   string          `json:"authorAvatar"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	CarouselSlides []CarouselSlide `json:"carouselSlides,omitempty"`
	Score          *ViralityScore  `json:"score,omitempty"`
}

// CarouselSlide 是 deck 中的一页；整组生成，不支持单页编辑。
type CarouselSlide struct {
	Title        string `json:"title"`
	Content      string `json:"content"` // newline-separated bullet points
	VisualPrompt string `json:"visualPrompt"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// ViralityScore is replaced wholesale on each re-analysis, never merged.
type ViralityScore struct {
	Total           int      `json:"total"`
	Readability     int      `json:"readability"`
	HookStrength    int      `json:"hookStrength"`
	Formatting      int      `json:"formatting"`
	ImprovementTips []string `json:"improvementTips"`
}

// HookSuggestion 由 Hook Lab 批量产出，属于会话内的临时数据，不持久化。
type HookSuggestion struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// PostPlan is the shape returned by the full-post intent.
type PostPlan struct {
	Explanation string `json:"explanation"`
	Content     string `json:"content"`
	ImagePrompt string `json:"imagePrompt"`
}

// EditPlan is the shape returned by the chat-edit intent.
type EditPlan struct {
	Explanation         string `json:"explanation"`
	Content             string `json:"content"`
	ShouldUpdateImage   bool   `json:"shouldUpdateImage"`
	ImagePromptOverride string `json:"imagePromptOverride,omitempty"`
}

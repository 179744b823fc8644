package generator

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const greeting = "Hi! I'm Kleo. Ready to engineer some LinkedIn leverage for Kendidex?"

const (
	replyError         = "Error processing your request."
	replyCarouselFail  = "Failed to build carousel."
	replyCarouselReady = "Your Kendidex Authority Carousel is ready! Review the slides in the UI simulator."
)

// seedDraft 是新会话的示例稿件，让 preview 一开始就有内容。
const seedDraft = `Most agencies think they have a "candidate quality" problem.

They don't.
You have a volume problem.
And it's costing you $480K a month.

I analyzed the data from over 100 recruitment agencies.
Here is the math most owners ignore:

1. **The Market Reality**
There are 50-75 companies hiring in your niche right now.
But manual prospecting only reaches 5-10 of them per month.

2. **The Opportunity Cost**
Missing 60 companies × 30% close rate = 18 lost clients.
At a $30K placement fee, that's $540,000 in revenue left on the table. Every single month.

3. **The Solution**
Speed and volume.
Agencies automating their outreach hit 100% of the market instantly.
Time-to-fill drops from 45 days to 15 days.

TL;DR: You don't need better recruiters. You need a system that finds the 90% of the market you're currently ignoring.

How many new clients did you onboard last month?`

// Session 持有一次编辑会话的全部可变状态：文档、对话记录、当前
// voice、hook 列表。所有修改都在内部锁下进行；生成调用本身在锁外，
// 完成时通过 generation token 判断是否已过期，过期结果直接丢弃。
type Session struct {
	ID string

	mu       sync.Mutex
	doc      PostDocument
	voice    VoiceProfile
	messages []ChatMessage
	hooks    []HookSuggestion
	genSeq   uint64

	orch       *Orchestrator
	classifier Classifier
	log        *logrus.Logger
}

// NewSession 创建带默认稿件和开场白的会话。
func NewSession(id string, orch *Orchestrator, classifier Classifier, log *logrus.Logger) *Session {
	if classifier == nil {
		classifier = KeywordClassifier{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	voice := DefaultVoice()
	s := &Session{
		ID:         id,
		voice:      voice,
		orch:       orch,
		classifier: classifier,
		log:        log,
		doc: PostDocument{
			Content:        seedDraft,
			AuthorName:     voice.Name,
			AuthorHeadline: voice.Description,
			AuthorAvatar:   voice.Avatar,
		},
	}
	s.messages = append(s.messages, ChatMessage{Role: "assistant", Content: greeting, Timestamp: time.Now()})
	return s
}

// Snapshot returns copies of the session state for rendering.
func (s *Session) Snapshot() (PostDocument, []ChatMessage, []HookSuggestion, VoiceProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.doc
	doc.CarouselSlides = append([]CarouselSlide(nil), s.doc.CarouselSlides...)
	if s.doc.Score != nil {
		score := *s.doc.Score
		doc.Score = &score
	}
	msgs := append([]ChatMessage(nil), s.messages...)
	hooks := append([]HookSuggestion(nil), s.hooks...)
	return doc, msgs, hooks, s.voice
}

// Chat 处理一条用户指令：分类 → 生成 → 应用。任何失败都退化成一条
// 通用错误回复，文档保持原样。
func (s *Session) Chat(ctx context.Context, instruction string, brand BrandProfile) {
	if strings.TrimSpace(instruction) == "" {
		return
	}

	s.mu.Lock()
	s.appendLocked("user", instruction)
	s.genSeq++
	token := s.genSeq
	current := s.doc.Content
	voice := s.voice
	s.mu.Unlock()

	switch s.classifier.Classify(instruction) {
	case IntentFullPost:
		s.chatFullPost(ctx, token, instruction, voice, brand)
	case IntentImageOnly:
		s.chatEdit(ctx, token, current, instruction, voice, brand, true)
	default:
		s.chatEdit(ctx, token, current, instruction, voice, brand, false)
	}
}

func (s *Session) chatFullPost(ctx context.Context, token uint64, instruction string, voice VoiceProfile, brand BrandProfile) {
	plan, err := s.orch.GenerateFullPost(ctx, instruction, voice, brand)
	if err != nil {
		s.log.WithError(err).Warn("full post generation failed")
		s.reply(replyError)
		return
	}
	// Image failure is non-fatal: the post lands without a new image.
	imageURL, err := s.orch.PaintPost(ctx, plan.ImagePrompt)
	if err != nil {
		s.log.WithError(err).Debug("post image generation failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.genSeq {
		s.log.WithField("session", s.ID).Debug("dropping stale full-post result")
		return
	}
	s.doc.Content = plan.Content
	if imageURL != "" {
		s.doc.ImageURL = imageURL
	}
	s.doc.CarouselSlides = nil
	s.appendLocked("assistant", plan.Explanation)
}

func (s *Session) chatEdit(ctx context.Context, token uint64, current, instruction string, voice VoiceProfile, brand BrandProfile, textLocked bool) {
	plan, err := s.orch.ChatEditPost(ctx, current, instruction, voice, brand)
	if err != nil {
		s.log.WithError(err).Warn("chat edit failed")
		s.reply(replyError)
		return
	}

	imageURL := ""
	if plan.ShouldUpdateImage || s.classifier.WantsImage(instruction) {
		visual := plan.ImagePromptOverride
		if visual == "" {
			visual = "Premium 3D authority visual: " + instruction
		}
		if url, perr := s.orch.PaintPost(ctx, visual); perr == nil {
			imageURL = url
		} else {
			s.log.WithError(perr).Debug("edit image generation failed")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.genSeq {
		s.log.WithField("session", s.ID).Debug("dropping stale edit result")
		return
	}
	if !textLocked {
		s.doc.Content = plan.Content
	}
	if imageURL != "" {
		s.doc.ImageURL = imageURL
	}
	s.appendLocked("assistant", plan.Explanation)
}

// BuildCarousel 把当前稿件改写成 7 页 deck 并逐页配图，一次性更新文档。
func (s *Session) BuildCarousel(ctx context.Context) {
	s.mu.Lock()
	s.genSeq++
	token := s.genSeq
	content := s.doc.Content
	s.mu.Unlock()

	slides, err := s.orch.GenerateCarousel(ctx, content)
	if err != nil {
		s.log.WithError(err).Warn("carousel generation failed")
		s.reply(replyCarouselFail)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.genSeq {
		s.log.WithField("session", s.ID).Debug("dropping stale carousel result")
		return
	}
	s.doc.CarouselSlides = slides
	s.appendLocked("assistant", replyCarouselReady)
}

// RefreshHooks replaces the hook list wholesale; the previous list
// survives any failure.
func (s *Session) RefreshHooks(ctx context.Context, topic string) []HookSuggestion {
	hooks, err := s.orch.GenerateHooks(ctx, topic)
	if err != nil {
		s.log.WithError(err).Warn("hook generation failed")
		s.mu.Lock()
		defer s.mu.Unlock()
		return append([]HookSuggestion(nil), s.hooks...)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = hooks
	return append([]HookSuggestion(nil), s.hooks...)
}

// ApplyHook prepends a chosen hook to the draft (a direct user edit,
// no generation involved).
func (s *Session) ApplyHook(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Content = text + "\n\n" + s.doc.Content
}

// RefreshScore re-analyzes virality. Drafts under 20 characters are
// skipped entirely: no request is sent and the prior score stays.
func (s *Session) RefreshScore(ctx context.Context) {
	s.mu.Lock()
	content := s.doc.Content
	s.mu.Unlock()
	if utf8.RuneCountInString(content) < 20 {
		return
	}

	score, err := s.orch.AnalyzeVirality(ctx, content)
	if err != nil {
		s.log.WithError(err).Warn("virality analysis failed")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Score = &score
}

// SelectVoice attributes the document to a catalog profile.
func (s *Session) SelectVoice(id string) error {
	voice, err := VoiceByID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voice = voice
	s.doc.AuthorName = voice.Name
	s.doc.AuthorHeadline = voice.Description
	s.doc.AuthorAvatar = voice.Avatar
	return nil
}

// ExportText returns the draft verbatim, literal newlines included.
func (s *Session) ExportText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Content
}

func (s *Session) reply(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked("assistant", text)
}

func (s *Session) appendLocked(role, content string) {
	s.messages = append(s.messages, ChatMessage{Role: role, Content: content, Timestamp: time.Now()})
}

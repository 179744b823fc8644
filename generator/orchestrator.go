package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Orchestrator 负责组装提示词、调用模型并把结果规整成类型化数据。
// It never mutates caller state: every operation returns a value the
// caller may apply, or an error after which the caller keeps whatever
// it had before.
type Orchestrator struct {
	client Client
	log    *logrus.Logger
}

func NewOrchestrator(client Client, log *logrus.Logger) (*Orchestrator, error) {
	if client == nil {
		return nil, errors.New("generative client is required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Orchestrator{client: client, log: log}, nil
}

// GenerateFullPost drafts a complete post plus an image prompt.
func (o *Orchestrator) GenerateFullPost(ctx context.Context, request string, voice VoiceProfile, brand BrandProfile) (PostPlan, error) {
	raw, err := o.client.Complete(ctx, BuildFullPostPrompt(request, voice, brand))
	if err != nil {
		return PostPlan{}, err
	}
	var plan PostPlan
	if err := Normalize(raw, &plan); err != nil {
		return PostPlan{}, err
	}
	if plan.Content == "" {
		return PostPlan{}, fmt.Errorf("%w: plan missing content", ErrParseFailure)
	}
	return plan, nil
}

// ChatEditPost applies a free-text instruction to the current draft.
// Parse failures degrade to a synthesized plan that leaves the content
// unchanged, so callers always receive a usable plan. Transport errors
// are returned as-is.
func (o *Orchestrator) ChatEditPost(ctx context.Context, current, instruction string, voice VoiceProfile, brand BrandProfile) (EditPlan, error) {
	raw, err := o.client.Complete(ctx, BuildEditPrompt(current, instruction, voice, brand))
	if err != nil {
		return EditPlan{}, err
	}
	var plan EditPlan
	if err := Normalize(raw, &plan); err != nil || plan.Content == "" {
		o.log.WithError(err).Debug("edit plan did not normalize, falling back to unchanged content")
		return EditPlan{Explanation: "Updated.", Content: current, ShouldUpdateImage: false}, nil
	}
	return plan, nil
}

// GenerateHooks produces a batch of hook suggestions for a topic.
func (o *Orchestrator) GenerateHooks(ctx context.Context, topic string) ([]HookSuggestion, error) {
	raw, err := o.client.Complete(ctx, BuildHooksPrompt(topic))
	if err != nil {
		return nil, err
	}
	var hooks []HookSuggestion
	if err := Normalize(raw, &hooks); err != nil {
		return nil, err
	}
	if len(hooks) == 0 {
		return nil, fmt.Errorf("%w: empty hook list", ErrParseFailure)
	}
	return hooks, nil
}

// GenerateCarousel rewrites the post as a slide deck, then fans out one
// image call per slide and joins them all. A failed image call leaves
// that slide without an image; the deck itself still succeeds.
func (o *Orchestrator) GenerateCarousel(ctx context.Context, postContent string) ([]CarouselSlide, error) {
	raw, err := o.client.Complete(ctx, BuildCarouselPrompt(postContent))
	if err != nil {
		return nil, err
	}
	var slides []CarouselSlide
	if err := Normalize(raw, &slides); err != nil {
		return nil, err
	}
	if len(slides) == 0 {
		return nil, fmt.Errorf("%w: empty deck", ErrParseFailure)
	}

	var g errgroup.Group
	for i := range slides {
		g.Go(func() error {
			url, err := o.client.Paint(ctx, BuildImagePrompt(slides[i].VisualPrompt), "1:1")
			if err != nil {
				o.log.WithError(err).WithField("slide", i).Debug("slide image generation failed")
				return nil
			}
			slides[i].ImageURL = url
			return nil
		})
	}
	_ = g.Wait()
	return slides, nil
}

// AnalyzeVirality scores the draft. The result replaces any previous
// score wholesale.
func (o *Orchestrator) AnalyzeVirality(ctx context.Context, content string) (ViralityScore, error) {
	raw, err := o.client.Complete(ctx, BuildViralityPrompt(content))
	if err != nil {
		return ViralityScore{}, err
	}
	var score ViralityScore
	if err := Normalize(raw, &score); err != nil {
		return ViralityScore{}, err
	}
	return score, nil
}

// PaintPost generates a single post illustration with the fixed visual
// style baked in. Providers without image support report a soft failure.
func (o *Orchestrator) PaintPost(ctx context.Context, visual string) (string, error) {
	url, err := o.client.Paint(ctx, BuildImagePrompt(visual), "1:1")
	if err != nil {
		if errors.Is(err, ErrImageUnsupported) {
			o.log.Debug("image generation unsupported by provider")
		}
		return "", err
	}
	return url, nil
}

package generator

import (
	"fmt"
	"strings"
)

// Fixed system instructions for the "Authority Guide" content system.
const studioSystemPrompt = `You are a LinkedIn Growth Strategist for Kendidex.
YOUR JOB: Create "Cheat Sheet" style content that is so valuable people feel obligated to save it.

POST PHILOSOPHY:
- No fluff. No "Believe in yourself."
- Pure math, logic, and frameworks.
- Frame the problem in lost revenue ($).
- Position automation as the unfair competitive advantage.

STRUCTURE:
1. [HOOK]: A stark realization or data point.
2. [THE GAP]: Why the old way is failing (manual prospecting, human error).
3. [THE MULTIPLIER]: Specific numbers showing the ROI of automation.
4. [THE GUIDE]: A step-by-step roadmap.
5. [SOFT CTA]: Low-friction engagement question.`

// Visual design system baked into every image prompt.
const authorityGraphicSystem = `INFOGRAPHIC DESIGN SYSTEM:
- AESTHETIC: High-end Technical Editorial.
- STYLE: Minimalist abstract 3D frameworks. Clean isometric grids, translucent glass panels, and geometric structural elements.
- LIGHTING: Soft studio lighting, realistic shadows, depth of field.
- PALETTE: Deep Charcoal (#0B0E14) base, with Vibrant Orange (#F97316) and Slate White accents.
- ELEMENTS:
  - Structural glass pillars (Scale)
  - Interlocking geometric loops (Systems)
  - Sharp isometric floating grids (Data)
  - Abstract blueprints (Roadmap)
- RULE: ABSOLUTELY NO TEXT, LABELS, OR NUMBERS in the generated image. The UI will handle the text.`

const imageStyleSuffix = `Style: Technical Editorial, minimalist 3D isometric, soft global illumination, charcoal and orange accents, premium materials, 8k. NO TEXT.`

// brandContext 将十个品牌字段拼成提示词上下文，空字段跳过。
func brandContext(brand BrandProfile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("BRAND INTEL: Niche: %s, Audience: %s, Tone: %s.\n", brand.Niche, brand.Audience, brand.Tone))
	for _, line := range []struct{ label, value string }{
		{"Goal", brand.Goals},
		{"Offer", brand.Offer},
		{"Content pillars", brand.Pillars},
		{"Transformation", brand.Transformation},
		{"Unique insight", brand.UniqueInsight},
		{"Writing constraints", brand.Constraints},
		{"Preferred CTA", brand.CTA},
	} {
		if line.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", line.label, line.value))
	}
	return sb.String()
}

// BuildFullPostPrompt 生成整篇帖子的提示词。
func BuildFullPostPrompt(request string, voice VoiceProfile, brand BrandProfile) Prompt {
	var sb strings.Builder
	sb.WriteString(studioSystemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(authorityGraphicSystem)
	sb.WriteString("\n\n")
	sb.WriteString(brandContext(brand))
	if voice.Instructions != "" {
		sb.WriteString(fmt.Sprintf("VOICE: %s\n", voice.Instructions))
	}

	user := fmt.Sprintf(`TASK: Generate a viral "Cheat Sheet" post and an abstract structural visual prompt.
USER REQUEST: %q

Response Format (JSON):
{
  "explanation": "Why this framework works.",
  "content": "Tactical post content...",
  "imagePrompt": "Description for a high-end isometric abstract framework (glass, orange accents, minimalist). No text."
}`, request)

	return Prompt{System: sb.String(), User: user, WantJSON: true}
}

// BuildEditPrompt 基于当前稿件和用户指令生成修订提示词。
func BuildEditPrompt(current, instruction string, voice VoiceProfile, brand BrandProfile) Prompt {
	var sb strings.Builder
	sb.WriteString("You are editing a LinkedIn post. Make the smallest change that satisfies the instruction.\n")
	sb.WriteString(brandContext(brand))
	if voice.Instructions != "" {
		sb.WriteString(fmt.Sprintf("VOICE: %s\n", voice.Instructions))
	}

	user := fmt.Sprintf(`Current Post: %q
Instruction: %q

TASK: Update the post or visual prompt.
Return JSON:
{
  "explanation": "Briefly state what changed.",
  "content": "Updated content.",
  "shouldUpdateImage": true/false,
  "imagePromptOverride": "If true, provide a new high-end structural abstract prompt."
}`, current, instruction)

	return Prompt{System: sb.String(), User: user, WantJSON: true}
}

// BuildHooksPrompt 批量生成钩子（固定 10 条）。
func BuildHooksPrompt(topic string) Prompt {
	return Prompt{
		User:     fmt.Sprintf(`Generate 10 'Cheat Sheet' hooks for: %q. JSON array {category, text}`, topic),
		WantJSON: true,
		Flash:    true,
	}
}

// BuildCarouselPrompt 把整帖改写成 7 页的 carousel deck。
func BuildCarouselPrompt(postContent string) Prompt {
	user := fmt.Sprintf(`Convert this post into a 7-slide "Ultimate Authority Guide" Carousel: %q.

CRITICAL:
- Slide 1: High-impact title (The Ultimate Guide to X).
- Slides 2-6: Deep tactical breakdown (The Problem, The Math, The System, Step-by-Step, The Result).
- Slide 7: The Recap & CTA.
- CONTENT: Each slide needs a Title and a list of 3-4 short tactical bullet points.

Return JSON array: [{ "title": "...", "content": "Bullet 1\nBullet 2\nBullet 3", "visualPrompt": "Abstract structural metaphor for [slide theme]" }]`, postContent)

	return Prompt{User: user, WantJSON: true}
}

// BuildViralityPrompt 评分提示词，走 flash 档模型。
func BuildViralityPrompt(content string) Prompt {
	return Prompt{
		User:     fmt.Sprintf(`Analyze virality: %q. JSON: {total, readability, hookStrength, formatting, improvementTips: []}`, content),
		WantJSON: true,
		Flash:    true,
	}
}

// BuildImagePrompt 给视觉描述追加固定的风格约束。
func BuildImagePrompt(visual string) string {
	return fmt.Sprintf("%s. %s", strings.TrimSpace(visual), imageStyleSuffix)
}

// Package profile persists the brand profile: one named storage slot
// holding the serialized BrandProfile as JSON. Saves happen only on the
// explicit sync action; loads fall back to the seeded defaults when the
// slot is absent.
package profile

import (
	"context"

	"kleo/generator"
)

// Store abstracts the storage slot so the orchestration layer stays
// testable with an in-memory fake.
type Store interface {
	Load(ctx context.Context) (generator.BrandProfile, error)
	Save(ctx context.Context, p generator.BrandProfile) error
}

// Default 返回首次运行时的品牌画像。
func Default() generator.BrandProfile {
	return generator.BrandProfile{
		Niche:          "AI automation for recruitment agencies. Specifically for small to medium-sized agencies (5-200 employees) to automate client acquisition, resume screening, and interview scheduling.",
		Audience:       "Recruitment agency owners and founders (5-200 employees) US, UK, Canada, Australia, India.",
		Goals:          "Book 10-15 free audit calls per month to close clients at $1,997/month.",
		Tone:           "Professional yet conversational. Data-driven advisor style.",
		Offer:          "'The Speed-to-Placement System' - $1,997/mo. Complete automation.",
		Pillars:        "1. Revenue Gap. 2. Automation shift. 3. Speed advantage.",
		Transformation: "Stagnant to automated growth.",
		UniqueInsight:  "The problem is reach and speed, not candidate quality.",
		Constraints:    "Specific numbers. Under 250 words. No jargon. Minimal emojis.",
		CTA:            "Conversational questions.",
	}
}

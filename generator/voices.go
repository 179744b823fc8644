package generator

import "errors"

// ErrUnknownVoice is returned when a voice id is not in the catalog.
var ErrUnknownVoice = errors.New("unknown voice profile")

// Voices 是编译期固定的写作风格目录，用户只能选择，不能编辑。
var Voices = []VoiceProfile{
	{
		ID:           "justin-welsh",
		Name:         "Justin Welsh",
		Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Justin",
		Description:  "Solopreneur guide. High-value frameworks.",
		Instructions: "Style: Punchy, structured, 1-line paragraphs, heavy emphasis on 'The Result'.",
	},
	{
		ID:           "kleo-expert",
		Name:         "Authority Guide",
		Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Kleo",
		Description:  "The 'Ultimate Guide' formula. Dense, tactical, high-authority.",
		Instructions: "Style: The Cheat Sheet Master. Uses numbers, bullet points, and 'The Math' to build undeniable authority.",
	},
	{
		ID:           "data-storyteller",
		Name:         "Data Storyteller",
		Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Data",
		Description:  "Turns one number into a narrative.",
		Instructions: "Style: Open with a single surprising statistic, then walk through what it means in three short beats.",
	},
	{
		ID:           "contrarian-operator",
		Name:         "Contrarian Operator",
		Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Contrarian",
		Description:  "Challenges the default playbook.",
		Instructions: "Style: State the popular belief, dismantle it with operator math, end with the uncomfortable takeaway.",
	},
	{
		ID:           "kendidex-strategist",
		Name:         "Kendidex Strategist",
		Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Kendidex",
		Description:  "Recruitment automation advisor. Revenue math first.",
		Instructions: "Style: Data-driven advisor. Frame every point in lost or gained revenue. Under 250 words.",
	},
}

// DefaultVoice is attributed to freshly created documents.
func DefaultVoice() VoiceProfile {
	return Voices[len(Voices)-1]
}

// VoiceByID looks a profile up in the catalog.
func VoiceByID(id string) (VoiceProfile, error) {
	for _, v := range Voices {
		if v.ID == id {
			return v, nil
		}
	}
	return VoiceProfile{}, ErrUnknownVoice
}

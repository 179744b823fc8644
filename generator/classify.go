package generator

import "regexp"

// Intent is the three-way branch a chat instruction resolves to.
type Intent int

const (
	// IntentEdit: targeted edit of the current draft (default).
	IntentEdit Intent = iota
	// IntentFullPost: regenerate the whole post from the instruction.
	IntentFullPost
	// IntentImageOnly: text is pinned; only the image may change.
	IntentImageOnly
)

// Classifier decides which generation branch handles an instruction.
// The default is keyword sniffing; swap in something stronger without
// touching the session logic.
type Classifier interface {
	Classify(instruction string) Intent
	WantsImage(instruction string) bool
}

// KeywordClassifier 用关键词正则做三分类。误判是已接受的限制。
// Precedence is deterministic: a text-lock phrase beats creation verbs
// (the user explicitly pinned the text), creation verbs beat the edit
// default.
type KeywordClassifier struct{}

var (
	creationRe = regexp.MustCompile(`(?i)make|create|write|new|generate`)
	visualRe   = regexp.MustCompile(`(?i)image|visual|look|better image`)
	lockRe     = regexp.MustCompile(`(?i)keep text|don't change|text locked`)
)

func (KeywordClassifier) Classify(instruction string) Intent {
	switch {
	case lockRe.MatchString(instruction):
		return IntentImageOnly
	case creationRe.MatchString(instruction):
		return IntentFullPost
	default:
		return IntentEdit
	}
}

// WantsImage reports whether the instruction asks for a visual refresh
// regardless of what the edit plan says.
func (KeywordClassifier) WantsImage(instruction string) bool {
	return visualRe.MatchString(instruction)
}

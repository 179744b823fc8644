package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"
)

// Normalization errors form a closed set; callers branch on these with
// errors.Is and treat any failure as "no usable structured result".
var (
	// ErrNoMatch: 文本为空，或没有任何 {...} / [...] 片段。
	ErrNoMatch = errors.New("no embedded JSON found")
	// ErrParseFailure: 找到片段但无法解析（修复后仍然无效）。
	ErrParseFailure = errors.New("embedded JSON did not parse")
)

// Normalize extracts the first embedded JSON object or array from raw
// model output and decodes it into v. Models routinely wrap JSON in
// prose, so the candidate is taken greedily from the first opening
// brace/bracket to the last closing one. Invalid candidates get one
// repair pass before giving up.
func Normalize(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrNoMatch
	}

	candidate, ok := extractCandidate(raw)
	if !ok {
		return ErrNoMatch
	}

	if !gjson.Valid(candidate) {
		repaired, err := jsonrepair.JSONRepair(candidate)
		if err != nil || !gjson.Valid(repaired) {
			return fmt.Errorf("%w: invalid candidate of %d bytes", ErrParseFailure, len(candidate))
		}
		candidate = repaired
	}

	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return nil
}

// extractCandidate mirrors the greedy /\{[\s\S]*\}|\[[\s\S]*\]/ match:
// whichever of object or array opens first wins, spanning to the last
// matching closer in the whole text.
func extractCandidate(raw string) (string, bool) {
	objStart := strings.IndexByte(raw, '{')
	objEnd := strings.LastIndexByte(raw, '}')
	arrStart := strings.IndexByte(raw, '[')
	arrEnd := strings.LastIndexByte(raw, ']')

	objOK := objStart >= 0 && objEnd > objStart
	arrOK := arrStart >= 0 && arrEnd > arrStart

	switch {
	case objOK && (!arrOK || objStart < arrStart):
		return raw[objStart : objEnd+1], true
	case arrOK:
		return raw[arrStart : arrEnd+1], true
	default:
		return "", false
	}
}

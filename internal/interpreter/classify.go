package interpreter

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// drawIntentByShape maps a shape tag co-occurring with a draw action to the
// classified intent.
var drawIntentByShape = map[string]Kind{
	"line":      KindDrawLine,
	"circle":    KindDrawCircle,
	"arc":       KindDrawArc,
	"rectangle": KindDrawRectangle,
	"square":    KindDrawRectangle,
	"polyline":  KindDrawPolyline,
	"text":      KindDrawText,
	"hatch":     KindDrawHatch,
	"wall":      KindDrawWall,
	"dimension": KindAddDimension,
}

var latinWordRE = regexp.MustCompile(`[a-z]+`)

// classify decides which intent a normalised command expresses. Rules are
// layered and the first success wins: the action+shape pairing is the
// primary signal, the special-case phrase checks catch commands without a
// recognised draw verb, and the fuzzy Latin fallback recovers typos in
// English keywords. Returns KindUnknown when nothing matches.
func classify(command string) Kind {
	for _, action := range actionKeywords {
		if !strings.Contains(command, action.phrase) {
			continue
		}
		for _, shape := range shapeKeywords {
			if !strings.Contains(command, shape.phrase) {
				continue
			}
			if action.tag != "draw" {
				continue
			}
			if intent, ok := drawIntentByShape[shape.tag]; ok {
				return intent
			}
		}
	}

	// Special-case phrases, checked in this fixed order. The order resolves
	// ties deterministically when a command satisfies more than one rule.
	if containsAny(command, "图层", "layer") && containsAny(command, "创建", "新建", "添加", "create", "new", "add") {
		return KindCreateLayer
	}
	if containsAny(command, "标注", "dimension") {
		return KindAddDimension
	}
	if containsAny(command, "保存", "save") {
		return KindSave
	}

	if intent := classifyFuzzyLatin(command); intent != "" {
		return intent
	}

	return KindUnknown
}

func containsAny(command string, phrases ...string) bool {
	for _, phrase := range phrases {
		if strings.Contains(command, phrase) {
			return true
		}
	}
	return false
}

// classifyFuzzyLatin compares Latin word tokens against the English surface
// forms of the action and shape tables with a length-scaled levenshtein
// limit, so "draw circl" still classifies. It runs strictly after the fixed
// rules and never overrides them.
func classifyFuzzyLatin(command string) Kind {
	tokens := latinWordRE.FindAllString(command, -1)
	if len(tokens) == 0 {
		return ""
	}

	actionTag := fuzzyTag(tokens, actionKeywords)
	shapeTag := fuzzyTag(tokens, shapeKeywords)

	if actionTag == "draw" && shapeTag != "" {
		if intent, ok := drawIntentByShape[shapeTag]; ok {
			return intent
		}
	}
	if actionTag == "save" {
		return KindSave
	}
	return ""
}

// fuzzyTag returns the tag of the Latin table entry closest to any token.
// Ties resolve to the earlier token, then the earlier table entry, keeping
// classification deterministic.
func fuzzyTag(tokens []string, table []keywordEntry) string {
	bestTag := ""
	bestDist := -1
	for _, token := range tokens {
		if len(token) < 3 {
			continue
		}
		for _, entry := range table {
			if !isLatinPhrase(entry.phrase) {
				continue
			}
			dist := levenshtein.ComputeDistance(token, entry.phrase)
			if dist > levenshteinLimit(len(entry.phrase)) {
				continue
			}
			if bestDist == -1 || dist < bestDist {
				bestDist = dist
				bestTag = entry.tag
			}
		}
	}
	return bestTag
}

func isLatinPhrase(phrase string) bool {
	for _, r := range phrase {
		if r > 'z' {
			return false
		}
	}
	return true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

package estimate

import (
	"strings"
	"unicode"

	"github.com/fathomhq/fathom/internal/model"
)

// overlapSuggestion is the generic advice attached to every overlap warning
const overlapSuggestion = "consider merging these features or clarifying their scope"

// DetectOverlaps flags pairs or groups of selected features that share a
// scope keyword. Matching is whole-token against the configured vocabulary,
// case-insensitive; it is a best-effort heuristic, not an exhaustive
// duplicate detector. Warnings come back in vocabulary order.
func DetectOverlaps(featureNames []string, vocabulary []string) []model.OverlapWarning {
	tokenSets := make([]map[string]bool, len(featureNames))
	for i, name := range featureNames {
		tokenSets[i] = tokenize(name)
	}

	var warnings []model.OverlapWarning
	for _, keyword := range vocabulary {
		kw := strings.ToLower(keyword)
		var matched []string
		for i, name := range featureNames {
			if tokenSets[i][kw] {
				matched = append(matched, name)
			}
		}
		if len(matched) >= 2 {
			warnings = append(warnings, model.OverlapWarning{
				Keyword:    kw,
				Features:   matched,
				Suggestion: overlapSuggestion,
			})
		}
	}
	return warnings
}

func tokenize(name string) map[string]bool {
	tokens := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

package score

import (
	"strings"

	"github.com/chw708/teresa-api/consts"
	"github.com/chw708/teresa-api/schema"
)

// Keyword sets for classifying boolean questions by their wording. When a
// question text carries both kinds, the positive set wins because it is
// checked first.
var (
	positiveBoolKeywords = []string{"comfortable", "ready", "clear", "smooth", "motivated", "steady"}
	negativeBoolKeywords = []string{"pain", "dizz", "headache", "nausea", "pressure", "swelling"}
)

// ScaleAnswerScore scores a 1-10 rating answer, high to low, first match
// wins.
func ScaleAnswerScore(v int) int {
	switch {
	case v >= 8:
		return 4
	case v >= 6:
		return 2
	case v >= 4:
		return 0
	case v >= 2:
		return -2
	default:
		return -4
	}
}

// BoolAnswerScore scores a yes/no answer in the light of the question that
// asked it: "yes" to "do you feel comfortable" and "yes" to "any pain"
// point in opposite directions.
func BoolAnswerScore(questionText string, v bool) int {
	text := strings.ToLower(questionText)

	for _, kw := range positiveBoolKeywords {
		if strings.Contains(text, kw) {
			if v {
				return 3
			}
			return -2
		}
	}

	for _, kw := range negativeBoolKeywords {
		if strings.Contains(text, kw) {
			if v {
				return -3
			}
			return 2
		}
	}

	if v {
		return 1
	}
	return -1
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// TextAnswerScore scores a free-text or multiple-choice answer by phrase
// matching, top rule first. An answer that matches nothing still earns +1:
// engagement itself is treated as a weak positive signal.
func TextAnswerScore(v string) int {
	text := strings.ToLower(v)

	switch {
	case strings.Contains(text, "very") && containsAny(text, "good", "comfortable", "motivated"):
		return 4
	case containsAny(text, "good", "comfortable", "normal", "motivated"):
		return 2
	case containsAny(text, "slight", "somewhat", "moderate"):
		return 0
	case containsAny(text, "low", "poor", "tired", "cold", "dry"):
		return -2
	case strings.Contains(text, "very") && containsAny(text, "poor", "bad", "tired"):
		return -4
	default:
		return 1
	}
}

// ClassifyAnswer returns the point value of one dynamic answer and whether
// it counts as answered. Empty or whitespace-only text is not an answer:
// absence contributes nothing, it is not a zero.
func ClassifyAnswer(questionText string, answer schema.AnswerValue) (int, bool) {
	switch answer.Kind {
	case schema.AnswerKindScale:
		return ScaleAnswerScore(answer.Scale), true
	case schema.AnswerKindBool:
		return BoolAnswerScore(questionText, answer.Bool), true
	case schema.AnswerKindText:
		if strings.TrimSpace(answer.Text) == "" {
			return 0, false
		}
		return TextAnswerScore(answer.Text), true
	}
	return 0, false
}

// DynamicContribution folds every dynamic answer into a single delta: the
// per-answer point values plus a flat engagement credit per answered
// question. Answers are keyed by question id; the id doubles as the
// question text for keyword purposes, since generated ids embed the asked
// wording in slug form.
func DynamicContribution(answers map[string]schema.AnswerValue) int {
	points := 0
	answered := 0

	for questionID, answer := range answers {
		p, counted := ClassifyAnswer(questionID, answer)
		if !counted {
			continue
		}
		points += p
		answered++
	}

	return points + answered*consts.EngagementCredit
}

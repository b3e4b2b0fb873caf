// Package daily produces the day's dynamic check-in questions.
package daily

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chw708/teresa-api/assistant"
	"github.com/chw708/teresa-api/consts"
	"github.com/chw708/teresa-api/schema"
	"github.com/chw708/teresa-api/utils"
)

// fallbackPool rotates when the completion API is unavailable. Ids are
// fixed slugs so a fallback question keeps its identity across days.
var fallbackPool = []schema.DailyQuestion{
	{ID: "fallback-energy_level", Text: "How is your energy level this morning?", Type: schema.QuestionTypeScale},
	{ID: "fallback-feel_comfortable", Text: "Do you feel comfortable in your body right now?", Type: schema.QuestionTypeBoolean},
	{ID: "fallback-appetite", Text: "How is your appetite today?", Type: schema.QuestionTypeMultiple, Options: []string{"Very good", "Normal", "Low", "None"}},
	{ID: "fallback-morning_mood", Text: "Describe your mood in a few words.", Type: schema.QuestionTypeText},
	{ID: "fallback-head_clear", Text: "Is your head clear this morning?", Type: schema.QuestionTypeBoolean},
	{ID: "fallback-hydration", Text: "How does your mouth and skin feel?", Type: schema.QuestionTypeMultiple, Options: []string{"Normal", "Somewhat dry", "Very dry"}},
	{ID: "fallback-motivation", Text: "How motivated do you feel for today?", Type: schema.QuestionTypeScale},
	{ID: "fallback-any_pressure", Text: "Do you feel any pressure or tightness in your chest?", Type: schema.QuestionTypeBoolean},
}

const questionPrompt = `Generate %d short wellness check-in questions for a daily morning form.
Answer with one JSON object per line, no other text.
Each object has fields: "text", "type" (one of "scale", "boolean", "text", "multiple") and, for "multiple", "options" (2-4 short strings).
Questions must be gentle, non-diagnostic, and answerable in seconds.`

// Generator builds one question sheet per calendar day.
type Generator struct {
	completer assistant.Completer
}

func NewGenerator(completer assistant.Completer) *Generator {
	return &Generator{completer: completer}
}

// SheetFor returns the question sheet for the given time's calendar date,
// asking the completion API first and falling back to the static pool.
// Generated ids embed the date and a slug of the question wording, so ids
// are stable within a day and the scorer can keyword-match the id.
func (g *Generator) SheetFor(ctx context.Context, now time.Time) schema.QuestionSheet {
	date := utils.DateString(now)

	if g.completer != nil {
		questions, err := g.generate(ctx, date)
		if err == nil {
			return schema.QuestionSheet{
				Date:      date,
				Questions: questions,
				Source:    "ai",
				CreatedAt: now.Unix(),
			}
		}
		log.WithError(err).WithField("prefix", "daily").Warn("question generation failed, using fallback pool")
	}

	return schema.QuestionSheet{
		Date:      date,
		Questions: FallbackQuestions(now),
		Source:    "fallback",
		CreatedAt: now.Unix(),
	}
}

func (g *Generator) generate(ctx context.Context, date string) ([]schema.DailyQuestion, error) {
	raw, err := g.completer.Complete(ctx, fmt.Sprintf(questionPrompt, consts.DailyQuestionCount))
	if err != nil {
		return nil, err
	}

	questions, err := ParseGenerated(raw, date)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ParseGenerated reads the completion output, one JSON object per line,
// and keeps the valid questions. Fails when fewer than the required count
// survive validation.
func ParseGenerated(raw, date string) ([]schema.DailyQuestion, error) {
	questions := []schema.DailyQuestion{}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, "{") {
			continue
		}

		var parsed struct {
			Text    string   `json:"text"`
			Type    string   `json:"type"`
			Options []string `json:"options"`
		}
		if err := json.Unmarshal([]byte(line), &parsed); err != nil {
			continue
		}

		q := schema.DailyQuestion{
			Text:    strings.TrimSpace(parsed.Text),
			Type:    schema.QuestionType(parsed.Type),
			Options: parsed.Options,
		}
		if !validQuestion(q) {
			continue
		}

		q.ID = fmt.Sprintf("q-%s-%d-%s", date, len(questions)+1, slug(q.Text))
		questions = append(questions, q)

		if len(questions) == consts.DailyQuestionCount {
			break
		}
	}

	if len(questions) < consts.DailyQuestionCount {
		return nil, fmt.Errorf("generated %d valid questions, need %d", len(questions), consts.DailyQuestionCount)
	}
	return questions, nil
}

func validQuestion(q schema.DailyQuestion) bool {
	if q.Text == "" {
		return false
	}
	switch q.Type {
	case schema.QuestionTypeScale, schema.QuestionTypeBoolean, schema.QuestionTypeText:
		return true
	case schema.QuestionTypeMultiple:
		return len(q.Options) >= 2
	}
	return false
}

// slug reduces question wording to the id-safe form the answer classifier
// keyword-matches against.
func slug(text string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
		if b.Len() >= 40 {
			break
		}
	}
	return strings.Trim(b.String(), "_")
}

// FallbackQuestions picks a deterministic window of the static pool, rotated
// by day so consecutive days do not repeat the same four questions.
func FallbackQuestions(now time.Time) []schema.DailyQuestion {
	start := utils.DayIndex(now) % len(fallbackPool)

	questions := make([]schema.DailyQuestion, 0, consts.DailyQuestionCount)
	for i := 0; i < consts.DailyQuestionCount; i++ {
		questions = append(questions, fallbackPool[(start+i)%len(fallbackPool)])
	}
	return questions
}

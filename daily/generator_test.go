package daily

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/chw708/teresa-api/assistant/mocks"
	"github.com/chw708/teresa-api/consts"
	"github.com/chw708/teresa-api/schema"
)

func TestParseGenerated(t *testing.T) {
	raw := `{"text": "How is your energy level?", "type": "scale"}
{"text": "Do you feel ready for the day?", "type": "boolean"}
{"text": "How is your appetite?", "type": "multiple", "options": ["Good", "Normal", "Low"]}
{"text": "Describe your mood.", "type": "text"}`

	questions, err := ParseGenerated(raw, "2024-03-14")
	assert.NoError(t, err)
	assert.Len(t, questions, consts.DailyQuestionCount)
	assert.Equal(t, "q-2024-03-14-1-how_is_your_energy_level", questions[0].ID)
	assert.Equal(t, schema.QuestionTypeScale, questions[0].Type)
	assert.Equal(t, []string{"Good", "Normal", "Low"}, questions[2].Options)
}

func TestParseGeneratedSkipsChatter(t *testing.T) {
	raw := `Here are your questions:
{"text": "How is your energy level?", "type": "scale"}
{"text": "Do you feel ready?", "type": "boolean"}
not json at all
{"text": "Pick one", "type": "multiple", "options": ["a"]}
{"text": "How did you wake up?", "type": "text"}
{"text": "Is your head clear?", "type": "boolean"}`

	// the single-option multiple question is invalid and dropped
	questions, err := ParseGenerated(raw, "2024-03-14")
	assert.NoError(t, err)
	assert.Len(t, questions, consts.DailyQuestionCount)
	for _, q := range questions {
		assert.NotEqual(t, "Pick one", q.Text)
	}
}

func TestParseGeneratedTooFew(t *testing.T) {
	raw := `{"text": "Only one?", "type": "text"}`

	_, err := ParseGenerated(raw, "2024-03-14")
	assert.Error(t, err)
}

func TestSheetForUsesCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(
		`{"text": "How is your energy level?", "type": "scale"}
{"text": "Do you feel ready?", "type": "boolean"}
{"text": "How is your appetite?", "type": "text"}
{"text": "Describe your mood.", "type": "text"}`, nil)

	now := time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC)
	sheet := NewGenerator(completer).SheetFor(context.Background(), now)

	assert.Equal(t, "ai", sheet.Source)
	assert.Equal(t, "2024-03-14", sheet.Date)
	assert.Len(t, sheet.Questions, consts.DailyQuestionCount)
}

func TestSheetForFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("unavailable"))

	now := time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC)
	sheet := NewGenerator(completer).SheetFor(context.Background(), now)

	assert.Equal(t, "fallback", sheet.Source)
	assert.Len(t, sheet.Questions, consts.DailyQuestionCount)
}

func TestFallbackQuestionsRotateByDay(t *testing.T) {
	day1 := FallbackQuestions(time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC))
	day1Again := FallbackQuestions(time.Date(2024, 3, 14, 22, 0, 0, 0, time.UTC))
	day2 := FallbackQuestions(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, day1, day1Again)
	assert.NotEqual(t, day1[0].ID, day2[0].ID)
	assert.Len(t, day1, consts.DailyQuestionCount)
}

package consts

// Score policy. The floor exists so a bad morning never renders a
// demoralizing near-zero score.
const (
	ScoreFloor   = 50
	ScoreCeiling = 100

	// CompletionBonus rewards simply finishing the morning flow.
	CompletionBonus = 2

	// EngagementCredit is granted once per answered dynamic question, on
	// top of the answer's own point value.
	EngagementCredit = 1

	// DailyQuestionCount is how many dynamic questions a day's sheet holds.
	DailyQuestionCount = 4
)

package schema

const (
	DailyEntryCollection = "dailyEntry"
)

// ScoreResult is the outcome of one morning scoring run. It is computed
// fresh on every completion of the morning flow and never mutated.
type ScoreResult struct {
	Score  int      `json:"score" bson:"score"`
	Advice []string `json:"advice" bson:"advice"`
}

// StretchPick pairs a stiff body area with the stretch selected for it.
// AreaName is the localized display name for Area.
type StretchPick struct {
	Area     string `json:"area" bson:"area"`
	AreaName string `json:"area_name" bson:"area_name"`
	Stretch  string `json:"stretch" bson:"stretch"`
}

// DailyEntry is one calendar day of history for one user. Re-submitting the
// morning flow on the same date replaces the entry, it is never appended.
type DailyEntry struct {
	Owner     string         `json:"owner" bson:"owner"`
	Date      string         `json:"date" bson:"date"`
	Morning   *CheckInRecord `json:"morning,omitempty" bson:"morning,omitempty"`
	Midday    *MiddayCheckIn `json:"midday,omitempty" bson:"midday,omitempty"`
	Night     *NightCheckIn  `json:"night,omitempty" bson:"night,omitempty"`
	Result    *ScoreResult   `json:"result,omitempty" bson:"result,omitempty"`
	Stretches []StretchPick  `json:"stretches,omitempty" bson:"stretches,omitempty"`
	UpdatedAt int64          `json:"updated_at" bson:"updated_at"`
}

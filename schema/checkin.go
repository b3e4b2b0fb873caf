package schema

// CheckInPeriod tells which daily flow produced a submission.
type CheckInPeriod string

const (
	CheckInPeriodMorning CheckInPeriod = "morning"
	CheckInPeriodMidday  CheckInPeriod = "midday"
	CheckInPeriodNight   CheckInPeriod = "night"
)

// CheckInRecord is the morning check-in form. Numeric fields are pointers
// because an empty form field is not the same as zero: nil contributes
// nothing to the score.
type CheckInRecord struct {
	SleepHours    *float64               `json:"sleep_hours" bson:"sleep_hours"`
	Weight        *float64               `json:"weight" bson:"weight"`
	Swelling      bool                   `json:"swelling" bson:"swelling"`
	Fatigue       *int                   `json:"fatigue" bson:"fatigue"`
	Stiffness     []string               `json:"stiffness" bson:"stiffness"`
	BloodPressure string                 `json:"blood_pressure" bson:"blood_pressure"`
	BloodSugar    string                 `json:"blood_sugar" bson:"blood_sugar"`
	Answers       map[string]AnswerValue `json:"answers" bson:"answers"`
}

// HasVitals reports whether either optional vital field was filled in.
// Vitals are a presence-only signal; the values are never parsed.
func (r CheckInRecord) HasVitals() bool {
	return r.BloodPressure != "" || r.BloodSugar != ""
}

// MiddayCheckIn is the midday log. It is stored as submitted and never scored.
type MiddayCheckIn struct {
	Meals    []string `json:"meals" bson:"meals"`
	WaterMl  int      `json:"water_ml" bson:"water_ml"`
	MoodNote string   `json:"mood_note" bson:"mood_note"`
}

// NightCheckIn is the night log. Stored as submitted, never scored.
type NightCheckIn struct {
	DayRating int    `json:"day_rating" bson:"day_rating"`
	Gratitude string `json:"gratitude" bson:"gratitude"`
}

package score

import (
	"github.com/chw708/teresa-api/consts"
	"github.com/chw708/teresa-api/schema"
)

// SleepScore maps hours slept to a signed delta. Bands are checked from
// most to least severe; the first match wins so a value is never penalized
// twice. A nil reading contributes nothing.
func SleepScore(hours *float64) int {
	if hours == nil {
		return 0
	}

	h := *hours
	switch {
	case h < 4 || h > 10:
		return -12
	case h < 5.5 || h > 9:
		return -8
	case h < 6.5 || h > 8.5:
		return -4
	case h >= 7 && h <= 8:
		return 2
	default:
		return 0
	}
}

// FatigueScore maps the 1-10 self rating (1 = energetic, 10 = exhausted)
// to a signed delta.
func FatigueScore(rating *int) int {
	if rating == nil {
		return 0
	}

	f := *rating
	switch {
	case f >= 9:
		return -10
	case f >= 7:
		return -6
	case f >= 5:
		return -3
	case f <= 3:
		return 3
	default:
		return 0
	}
}

func SwellingScore(swelling bool) int {
	if swelling {
		return -3
	}
	return 0
}

// StiffnessCount counts reported areas, excluding the "None" marker. The
// form briefly allows "None" to coexist with real areas between toggles, so
// "None" is always skipped rather than only when it is the sole member.
func StiffnessCount(areas []string) int {
	n := 0
	for _, a := range areas {
		if a != schema.StiffnessNone {
			n++
		}
	}
	return n
}

// StiffnessScore penalizes by how widespread the stiffness is, checked
// high to low.
func StiffnessScore(areas []string) int {
	n := StiffnessCount(areas)
	switch {
	case n >= 5:
		return -8
	case n >= 3:
		return -5
	case n >= 1:
		return -2
	default:
		return 0
	}
}

// VitalsScore grants a small credit for logging either vital. The values
// themselves are free text and never interpreted.
func VitalsScore(record schema.CheckInRecord) int {
	if record.HasVitals() {
		return 2
	}
	return 0
}

// CalculateCheckInScore runs every sub-scorer over a morning record and
// returns the final clamped score. Pure and side-effect free: the same
// record always yields the same score.
func CalculateCheckInScore(record schema.CheckInRecord) int {
	raw := SleepScore(record.SleepHours) +
		FatigueScore(record.Fatigue) +
		SwellingScore(record.Swelling) +
		StiffnessScore(record.Stiffness) +
		VitalsScore(record) +
		consts.CompletionBonus +
		DynamicContribution(record.Answers)

	if raw < consts.ScoreFloor {
		return consts.ScoreFloor
	}
	if raw > consts.ScoreCeiling {
		return consts.ScoreCeiling
	}
	return raw
}

// CalculateCheckInResult bundles the score with its advice list.
func CalculateCheckInResult(record schema.CheckInRecord) schema.ScoreResult {
	s := CalculateCheckInScore(record)
	return schema.ScoreResult{
		Score:  s,
		Advice: GenerateAdvice(record, s),
	}
}

package score

import (
	"github.com/chw708/teresa-api/schema"
)

// Advice copy. The closing band lines are mutually exclusive; exactly one
// is always emitted.
const (
	adviceSleep     = "Try to keep your sleep between 6.5 and 8.5 hours; a steady schedule helps more than catching up."
	adviceFatigue   = "Your energy is running low today. Plan lighter activity and take short rests between tasks."
	adviceSwelling  = "For swelling, stay hydrated and elevate your legs for a few minutes when you can."
	adviceStiffness = "Loosen up stiff areas with the gentle stretches below before starting your day."

	adviceBandExcellent = "Excellent condition today. Keep doing what you are doing."
	adviceBandGood      = "You are in good shape today. A short walk would round it out nicely."
	adviceBandFair      = "A fair day. Be kind to yourself and keep your routine light."
	adviceBandAttention = "Some signals need attention today. Slow down and listen to your body."
	adviceBandConsult   = "Several signals are off. If this continues, please consider talking to a health professional."
)

// GenerateAdvice produces the advice list for a scored morning record.
// Line order is fixed: condition-specific tips first, then exactly one
// closing line chosen by score band.
func GenerateAdvice(record schema.CheckInRecord, finalScore int) []string {
	advice := []string{}

	if record.SleepHours != nil && (*record.SleepHours < 6.5 || *record.SleepHours > 8.5) {
		advice = append(advice, adviceSleep)
	}

	if record.Fatigue != nil && *record.Fatigue >= 7 {
		advice = append(advice, adviceFatigue)
	}

	if record.Swelling {
		advice = append(advice, adviceSwelling)
	}

	if StiffnessCount(record.Stiffness) > 0 {
		advice = append(advice, adviceStiffness)
	}

	switch {
	case finalScore >= 90:
		advice = append(advice, adviceBandExcellent)
	case finalScore >= 80:
		advice = append(advice, adviceBandGood)
	case finalScore >= 70:
		advice = append(advice, adviceBandFair)
	case finalScore >= 60:
		advice = append(advice, adviceBandAttention)
	default:
		advice = append(advice, adviceBandConsult)
	}

	return advice
}

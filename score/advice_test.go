package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chw708/teresa-api/schema"
)

func TestGenerateAdviceOnlyBandLine(t *testing.T) {
	record := schema.CheckInRecord{
		SleepHours: floatPtr(7.5),
		Fatigue:    intPtr(2),
	}

	advice := GenerateAdvice(record, 85)
	assert.Equal(t, 1, len(advice))
	assert.Equal(t, adviceBandGood, advice[0])
}

func TestGenerateAdviceOrder(t *testing.T) {
	record := schema.CheckInRecord{
		SleepHours: floatPtr(4.5),
		Fatigue:    intPtr(8),
		Swelling:   true,
		Stiffness:  []string{schema.StiffnessNeck},
	}

	advice := GenerateAdvice(record, 55)
	assert.Equal(t, []string{
		adviceSleep,
		adviceFatigue,
		adviceSwelling,
		adviceStiffness,
		adviceBandConsult,
	}, advice)
}

func TestGenerateAdviceBands(t *testing.T) {
	record := schema.CheckInRecord{}

	assert.Equal(t, []string{adviceBandExcellent}, GenerateAdvice(record, 90))
	assert.Equal(t, []string{adviceBandGood}, GenerateAdvice(record, 80))
	assert.Equal(t, []string{adviceBandFair}, GenerateAdvice(record, 70))
	assert.Equal(t, []string{adviceBandAttention}, GenerateAdvice(record, 60))
	assert.Equal(t, []string{adviceBandConsult}, GenerateAdvice(record, 59))
}

func TestGenerateAdviceNeverEmpty(t *testing.T) {
	advice := GenerateAdvice(schema.CheckInRecord{}, 100)
	assert.NotEmpty(t, advice)
}

func TestGenerateAdviceNilSleepSkipsSleepTip(t *testing.T) {
	advice := GenerateAdvice(schema.CheckInRecord{}, 85)
	assert.Equal(t, []string{adviceBandGood}, advice)
}

func TestGenerateAdviceStiffnessNoneAloneSkipsStretchTip(t *testing.T) {
	record := schema.CheckInRecord{Stiffness: []string{schema.StiffnessNone}}
	advice := GenerateAdvice(record, 85)
	assert.Equal(t, []string{adviceBandGood}, advice)
}

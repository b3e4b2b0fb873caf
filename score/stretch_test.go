package score

import (
	"testing"
	"time"

	"gopkg.in/go-playground/assert.v1"

	"github.com/chw708/teresa-api/schema"
)

func TestRecommendStretchesDeterministicWithinHour(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 5, 0, 0, time.UTC)
	later := time.Date(2024, 3, 14, 9, 55, 0, 0, time.UTC)
	areas := []string{schema.StiffnessNeck, schema.StiffnessBack}

	first := RecommendStretches(areas, now)
	second := RecommendStretches(areas, later)

	assert.Equal(t, first, second)
}

func TestRecommendStretchesOnePickPerArea(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

	picks := RecommendStretches([]string{schema.StiffnessNeck, schema.StiffnessHips}, now)

	assert.Equal(t, 2, len(picks))
	assert.Equal(t, schema.StiffnessNeck, picks[0].Area)
	assert.Equal(t, schema.StiffnessHips, picks[1].Area)
	assert.NotEqual(t, "", picks[0].Stretch)
	assert.NotEqual(t, "", picks[1].Stretch)
}

func TestRecommendStretchesSkipsNoneAndUnknown(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

	picks := RecommendStretches([]string{schema.StiffnessNone, "Elbows", schema.StiffnessKnees}, now)

	assert.Equal(t, 1, len(picks))
	assert.Equal(t, schema.StiffnessKnees, picks[0].Area)
}

func TestRecommendStretchesDeduplicates(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

	picks := RecommendStretches([]string{schema.StiffnessNeck, schema.StiffnessNeck}, now)

	assert.Equal(t, 1, len(picks))
}

func TestRecommendStretchesPreservesFirstSeenOrder(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	areas := []string{schema.StiffnessWrists, schema.StiffnessNeck, schema.StiffnessAnkles}

	picks := RecommendStretches(areas, now)

	assert.Equal(t, 3, len(picks))
	assert.Equal(t, schema.StiffnessWrists, picks[0].Area)
	assert.Equal(t, schema.StiffnessNeck, picks[1].Area)
	assert.Equal(t, schema.StiffnessAnkles, picks[2].Area)
}

func TestStretchIndexInRange(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for _, area := range schema.StiffnessAreas {
			n := len(schema.DefaultStretchTable[area])
			idx := stretchIndex(19700, hour, area, 0, n)
			if idx < 0 || idx >= n {
				t.Fatalf("index %d out of range for %s", idx, area)
			}
		}
	}
}

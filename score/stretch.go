package score

import (
	"time"

	"github.com/chw708/teresa-api/schema"
)

// areaNameHash is a per-character weighted hash of the area name, so that
// different areas land on different table rows with high probability.
func areaNameHash(area string) int {
	h := 0
	for i, r := range area {
		h += int(r) * (i + 1)
	}
	return h
}

// stretchIndex combines day, area, batch position and hour into an index
// into the area's candidate list. This is reproducible pseudo-selection,
// not randomness: the same area at the same day and hour always picks the
// same stretch.
func stretchIndex(day, hour int, area string, position, candidates int) int {
	if candidates <= 0 {
		return 0
	}
	return (day*13 + areaNameHash(area)*7 + position*19 + hour*3) % candidates
}

// RecommendStretches picks one stretch per unique known stiff area from
// the default table, preserving first-seen order. "None" and unknown areas
// are skipped. Selection is stable for a given wall-clock day and hour.
func RecommendStretches(areas []string, now time.Time) []schema.StretchPick {
	return RecommendStretchesFrom(schema.DefaultStretchTable, areas, now)
}

// RecommendStretchesFrom is RecommendStretches over a caller-supplied
// table, used when the stretch copy has been localized.
func RecommendStretchesFrom(table map[string][]string, areas []string, now time.Time) []schema.StretchPick {
	day := int(now.Unix() / 86400)
	hour := now.Hour()

	seen := map[string]struct{}{}
	picks := []schema.StretchPick{}

	for _, area := range areas {
		if area == schema.StiffnessNone {
			continue
		}
		if _, dup := seen[area]; dup {
			continue
		}

		candidates, known := table[area]
		if !known || len(candidates) == 0 {
			continue
		}
		seen[area] = struct{}{}

		idx := stretchIndex(day, hour, area, len(picks), len(candidates))
		picks = append(picks, schema.StretchPick{
			Area:    area,
			Stretch: candidates[idx],
		})
	}

	return picks
}

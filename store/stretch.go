package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/chw708/teresa-api/schema"
	"github.com/chw708/teresa-api/utils"
)

var ErrResolveStretchContent = fmt.Errorf("fail to resolve stretch content")

// The localized tables are written on first use of a language and read on
// every morning submission, so access is guarded.
var (
	stretchContentMu       sync.RWMutex
	localizedStretchTables = map[string]map[string][]string{}
	localizedAreaNames     = map[string]map[string]string{}
)

// LoadStretchTable builds the stretch instruction table for a language from
// the translation bundle and caches it. English falls back to the compiled
// default table when the bundle is unavailable. Safe for concurrent use;
// lang comes straight from the client.
func LoadStretchTable(lang string) (map[string][]string, error) {
	lang = normalizeLang(lang)

	stretchContentMu.RLock()
	table, ok := localizedStretchTables[lang]
	stretchContentMu.RUnlock()
	if ok {
		return table, nil
	}

	localizer := utils.NewLocalizer(lang)
	table = map[string][]string{}
	names := map[string]string{}

	for _, area := range schema.StiffnessAreas {
		count := len(schema.DefaultStretchTable[area])
		stretches := make([]string, 0, count)
		for i := 0; i < count; i++ {
			text, err := localizer.Localize(&i18n.LocalizeConfig{
				MessageID: fmt.Sprintf("stretches.%s.%d", area, i+1),
			})
			if err != nil {
				log.WithError(err).WithField("prefix", "i18n").Warn("fail to load stretch text in proper language")
				text = schema.DefaultStretchTable[area][i]
			}
			stretches = append(stretches, text)
		}
		table[area] = stretches

		name, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("areas.%s", area),
		})
		if err != nil {
			name = area
		}
		names[area] = name
	}

	stretchContentMu.Lock()
	// a concurrent loader may have won; keep the first table so callers
	// holding a reference and the cache agree
	if cached, ok := localizedStretchTables[lang]; ok {
		table = cached
	} else {
		localizedStretchTables[lang] = table
		localizedAreaNames[lang] = names
	}
	stretchContentMu.Unlock()

	return table, nil
}

// ResolveAreaName returns the display name for a body area in the given
// language.
func ResolveAreaName(area, lang string) (string, error) {
	lang = normalizeLang(lang)

	stretchContentMu.RLock()
	defer stretchContentMu.RUnlock()

	m, ok := localizedAreaNames[lang]
	if !ok {
		m = localizedAreaNames["en"]
		if len(m) == 0 {
			return "", ErrResolveStretchContent
		}
	}

	return m[area], nil
}

func normalizeLang(lang string) string {
	if lang == "" {
		lang = "en"
	}
	return strings.ReplaceAll(strings.ToLower(lang), "-", "_")
}

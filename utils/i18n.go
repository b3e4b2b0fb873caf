package utils

import (
	"os"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var bundle *i18n.Bundle

// InitI18NBundle loads every translation file under the configured i18n
// directory. English is the fallback language.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "i18n"
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		log.WithError(err).WithField("prefix", "i18n").Error("fail to read translation dir")
		return
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}
		if _, err := bundle.LoadMessageFile(path.Join(dir, f.Name())); err != nil {
			log.WithError(err).WithField("prefix", "i18n").WithField("file", f.Name()).Error("fail to load translation file")
		}
	}
}

// NewLocalizer returns a localizer for the given language tag, falling back
// to English for messages the language does not cover.
func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		InitI18NBundle()
	}
	if lang == "" {
		lang = "en"
	}
	return i18n.NewLocalizer(bundle, lang, "en")
}

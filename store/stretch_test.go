package store

import (
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/chw708/teresa-api/schema"
	"github.com/chw708/teresa-api/utils"
)

func initTestI18N(t *testing.T) {
	t.Helper()
	os.Setenv("TEST_I18N_DIR", "../i18n")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	utils.InitI18NBundle()
}

func TestLoadStretchTableEnglish(t *testing.T) {
	initTestI18N(t)

	table, err := LoadStretchTable("en")
	assert.NoError(t, err)

	for _, area := range schema.StiffnessAreas {
		assert.Len(t, table[area], len(schema.DefaultStretchTable[area]))
	}
	assert.Equal(t, schema.DefaultStretchTable[schema.StiffnessNeck][0], table[schema.StiffnessNeck][0])
}

func TestLoadStretchTableKorean(t *testing.T) {
	initTestI18N(t)

	table, err := LoadStretchTable("ko")
	assert.NoError(t, err)

	assert.Len(t, table[schema.StiffnessNeck], len(schema.DefaultStretchTable[schema.StiffnessNeck]))
	assert.NotEqual(t, schema.DefaultStretchTable[schema.StiffnessNeck][0], table[schema.StiffnessNeck][0])
}

func TestLoadStretchTableConcurrent(t *testing.T) {
	initTestI18N(t)

	langs := []string{"en", "ko", "en-US", "en_GB", "fr", "ja"}

	var wg sync.WaitGroup
	for i := 0; i < 120; i++ {
		wg.Add(1)
		go func(lang string) {
			defer wg.Done()
			table, err := LoadStretchTable(lang)
			assert.NoError(t, err)
			assert.NotEmpty(t, table[schema.StiffnessNeck])
		}(langs[i%len(langs)])
	}
	wg.Wait()
}

func TestResolveAreaName(t *testing.T) {
	initTestI18N(t)

	if _, err := LoadStretchTable("ko"); err != nil {
		t.Fatal(err)
	}

	name, err := ResolveAreaName(schema.StiffnessNeck, "ko")
	assert.NoError(t, err)
	assert.Equal(t, "목", name)
}

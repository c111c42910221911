// internal/i18n/i18n_test.go
package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestT(t *testing.T) {
	require.NoError(t, Initialize())

	assert.Equal(t, "Order not found", T("en", KeyOrderNotFound))
	assert.Equal(t, "找不到訂單", T("zh_TW", KeyOrderNotFound))
	assert.Equal(t, "Invalid page", T("en", KeyValidationInvalid, "page"))

	// Unknown languages fall back to English, unknown keys to the key itself.
	assert.Equal(t, "Order not found", T("fr", KeyOrderNotFound))
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))

	assert.Equal(t, []string{"en", "zh_TW"}, GetSupportedLanguages())
}

func TestParseLanguage(t *testing.T) {
	require.NoError(t, Initialize())

	tests := map[string]string{
		"":                        "en",
		"zh-TW,zh;q=0.9,en;q=0.8": "zh_TW",
		"zh-Hant":                 "zh_TW",
		"en-GB,en;q=0.9":          "en",
		"en-US":                   "en",
		"fr-FR":                   "en",
		" zh_TW ;q=1":             "zh_TW",
		"fr-FR,zh-TW;q=0.5":       "zh_TW",
		"en;q=abc":                "en",
	}
	for header, want := range tests {
		assert.Equal(t, want, ParseLanguage(header, "en"), header)
	}

	assert.Equal(t, "zh_TW", ParseLanguage("", "zh_TW"))
	assert.Equal(t, "zh_TW", ParseLanguage("fr-FR", "zh_TW"))
	assert.Equal(t, "en", ParseLanguage("en-US", "zh_TW"))
}

func TestLoad_RequiresDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/zh_TW.json": {Data: []byte(`{"welcome":"歡迎"}`)},
	}
	_, err := Load(fsys, "locales")
	assert.ErrorContains(t, err, `locale "en" missing`)

	fsys["locales/en.json"] = &fstest.MapFile{Data: []byte(`{"welcome":"Welcome %s"}`)}
	c, err := Load(fsys, "locales")
	require.NoError(t, err)
	assert.Equal(t, "歡迎", c.T("zh_TW", "welcome"))
	assert.Equal(t, "Welcome Ada", c.T("fr", "welcome", "Ada"))
	assert.Equal(t, "missing.key", c.T("zh_TW", "missing.key"))
	assert.Equal(t, []string{"en", "zh_TW"}, c.Locales())
}

func TestLocalesHaveSameKeys(t *testing.T) {
	require.NoError(t, Initialize())

	en := instance.messages["en"]
	zh := instance.messages["zh_TW"]
	for key := range en {
		assert.Contains(t, zh, key)
	}
	assert.Len(t, zh, len(en))
}

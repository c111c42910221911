// internal/i18n/i18n.go
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLocale answers keys a requested locale does not carry.
const DefaultLocale = "en"

//go:embed locales/*.json
var localeFS embed.FS

// Catalog holds one flat key/message map per locale. It is read-only once
// loaded.
type Catalog struct {
	messages map[string]map[string]string
	locales  []string
	matcher  language.Matcher
}

var (
	instance *Catalog
	once     sync.Once
)

// Initialize loads the embedded catalogs into the package-level instance.
func Initialize() error {
	var err error
	once.Do(func() {
		instance, err = Load(localeFS, "locales")
	})
	return err
}

// Load reads every <locale>.json under dir. The default locale must exist.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	c := &Catalog{messages: make(map[string]map[string]string, len(files))}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to unmarshal locale file %s: %w", file, err)
		}
		c.messages[strings.TrimSuffix(path.Base(file), ".json")] = messages
	}

	if _, ok := c.messages[DefaultLocale]; !ok {
		return nil, fmt.Errorf("locale %q missing from %s", DefaultLocale, dir)
	}

	// The default locale goes first so the matcher falls back to it.
	c.locales = append(c.locales, DefaultLocale)
	for locale := range c.messages {
		if locale != DefaultLocale {
			c.locales = append(c.locales, locale)
		}
	}
	sort.Strings(c.locales[1:])

	tags := make([]language.Tag, 0, len(c.locales))
	for _, locale := range c.locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("locale file name %q is not a language tag: %w", locale, err)
		}
		tags = append(tags, tag)
	}
	c.matcher = language.NewMatcher(tags)
	return c, nil
}

// T returns the message for key in locale, then in the default locale, then
// the key itself. Args are applied with fmt.Sprintf.
func (c *Catalog) T(locale, key string, args ...interface{}) string {
	text, ok := c.messages[locale][key]
	if !ok {
		text, ok = c.messages[DefaultLocale][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Match maps an Accept-Language header onto a loaded locale. Headers naming
// no loaded locale, and malformed headers, yield fallback.
func (c *Catalog) Match(header, fallback string) string {
	if strings.TrimSpace(header) == "" {
		return fallback
	}

	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return fallback
	}

	_, idx, conf := c.matcher.Match(prefs...)
	if conf == language.No {
		return fallback
	}
	return c.locales[idx]
}

// Locales lists the loaded locales, default first.
func (c *Catalog) Locales() []string {
	return append([]string(nil), c.locales...)
}

func T(lang, key string, args ...interface{}) string {
	if instance != nil {
		return instance.T(lang, key, args...)
	}
	return key
}

// ParseLanguage resolves an Accept-Language header against the loaded
// catalogs.
func ParseLanguage(header, fallback string) string {
	if instance == nil {
		return fallback
	}
	return instance.Match(header, fallback)
}

func GetSupportedLanguages() []string {
	if instance == nil {
		return []string{DefaultLocale}
	}
	return instance.Locales()
}

// Package i18n holds the process-wide message table used to render
// user-facing text in the caller's language.
package i18n

import (
	_ "embed"
	"fmt"
	"strings"

	"catalog/config"
	"catalog/internal/errors"

	"github.com/knadh/koanf/parsers/yaml"
	"golang.org/x/text/language"
)

//go:embed messages.yaml
var defaultCatalog []byte

// Messages is an immutable table keyed by locale and message key.
type Messages struct {
	tags    []language.Tag
	matcher language.Matcher
	tables  []map[string]string
}

// New loads the embedded catalog with i18n.defaultLocale as the fallback.
func New(cfg *config.Config) (*Messages, error) {
	return Load(defaultCatalog, cfg.I18n.DefaultLocale)
}

// Load parses a YAML document of the form {locale: {key: text}}.
func Load(data []byte, defaultLocale string) (*Messages, error) {
	raw, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse message catalog")
	}

	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid default locale %q", defaultLocale)
	}

	m := &Messages{}
	var fallbackTable map[string]string

	for locale, entries := range raw {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid locale %q in message catalog", locale)
		}

		values, ok := entries.(map[string]any)
		if !ok {
			return nil, errors.Errorf("locale %q must map keys to messages", locale)
		}

		table := make(map[string]string, len(values))
		for key, value := range values {
			table[key] = fmt.Sprint(value)
		}

		if tag == fallback {
			fallbackTable = table

			continue
		}
		m.tags = append(m.tags, tag)
		m.tables = append(m.tables, table)
	}

	if fallbackTable == nil {
		return nil, errors.Errorf("message catalog has no entries for default locale %q", defaultLocale)
	}

	// The matcher treats its first tag as the default.
	m.tags = append([]language.Tag{fallback}, m.tags...)
	m.tables = append([]map[string]string{fallbackTable}, m.tables...)
	m.matcher = language.NewMatcher(m.tags)

	return m, nil
}

// Localize renders key for the best match of acceptLanguage, substituting
// {name} placeholders from params. A key missing from the matched locale falls
// back to the default locale, then to the key itself.
func (m *Messages) Localize(acceptLanguage, key string, params map[string]string) string {
	text, ok := m.lookup(acceptLanguage, key)
	if !ok {
		text = key
	}

	return render(text, params)
}

// Has reports whether the default locale defines key.
func (m *Messages) Has(key string) bool {
	_, ok := m.tables[0][key]

	return ok
}

func (m *Messages) lookup(acceptLanguage, key string) (string, bool) {
	_, index := language.MatchStrings(m.matcher, acceptLanguage)
	if text, ok := m.tables[index][key]; ok {
		return text, true
	}

	text, ok := m.tables[0][key]

	return text, ok
}

func render(text string, params map[string]string) string {
	if len(params) == 0 {
		return text
	}

	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(text)
}

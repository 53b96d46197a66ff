package i18n

import (
	"strings"
)

type Language string

const (
	LangEnglish Language = "english"
	LangArabic  Language = "arabic"
	LangFrench  Language = "french"
	LangDarija  Language = "darija"
)

// Params are interpolated into translated strings: every "{name}" in the
// catalog entry is replaced with params["name"].
type Params map[string]string

// Bundle is an in-memory {language, key} -> string table. Lookups fall back
// to English, then to the key itself, so T is total. Bundles are immutable
// after construction and safe for concurrent use.
type Bundle struct {
	catalog map[Language]map[string]string
}

// Default returns a bundle loaded with the built-in catalog.
func Default() *Bundle {
	return &Bundle{catalog: translations}
}

// NewBundle builds a bundle from an explicit catalog. Tests use this to
// supply independent instances.
func NewBundle(catalog map[Language]map[string]string) *Bundle {
	if catalog == nil {
		catalog = map[Language]map[string]string{}
	}
	return &Bundle{catalog: catalog}
}

func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arabic":
		return LangArabic
	case "french":
		return LangFrench
	case "darija":
		return LangDarija
	default:
		return LangEnglish
	}
}

func IsValidLanguage(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "arabic", "french", "darija":
		return true
	}
	return false
}

func (b *Bundle) T(lang Language, key string, params Params) string {
	text, ok := b.lookup(lang, key)
	if !ok {
		if text, ok = b.lookup(LangEnglish, key); !ok {
			text = key
		}
	}
	return interpolate(text, params)
}

func (b *Bundle) lookup(lang Language, key string) (string, bool) {
	table, ok := b.catalog[lang]
	if !ok {
		return "", false
	}
	text, ok := table[key]
	return text, ok
}

func interpolate(text string, params Params) string {
	if len(params) == 0 || !strings.Contains(text, "{") {
		return text
	}
	for name, val := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", val)
	}
	return text
}

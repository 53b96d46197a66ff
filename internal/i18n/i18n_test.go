package i18n

import "testing"

func testBundle() *Bundle {
	return NewBundle(map[Language]map[string]string{
		LangEnglish: {
			"greeting": "Hello",
			"welcome":  "Welcome, {name}!",
			"only_en":  "English only",
		},
		LangFrench: {
			"greeting": "Bonjour",
		},
		LangDarija: {
			"greeting": "السلام",
		},
	})
}

func TestT_TranslatesForLanguage(t *testing.T) {
	b := testBundle()
	if got := b.T(LangFrench, "greeting", nil); got != "Bonjour" {
		t.Fatalf("expected Bonjour, got %q", got)
	}
	if got := b.T(LangDarija, "greeting", nil); got != "السلام" {
		t.Fatalf("expected darija greeting, got %q", got)
	}
}

func TestT_FallsBackToEnglishThenKey(t *testing.T) {
	b := testBundle()
	if got := b.T(LangFrench, "only_en", nil); got != "English only" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	if got := b.T(LangArabic, "missing.key", nil); got != "missing.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestT_Interpolates(t *testing.T) {
	b := testBundle()
	got := b.T(LangEnglish, "welcome", Params{"name": "Yassine"})
	if got != "Welcome, Yassine!" {
		t.Fatalf("got %q", got)
	}
}

func TestT_MissingParamLeavesPlaceholder(t *testing.T) {
	b := testBundle()
	got := b.T(LangEnglish, "welcome", Params{"other": "x"})
	if got != "Welcome, {name}!" {
		t.Fatalf("got %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"english", LangEnglish},
		{"Arabic", LangArabic},
		{" FRENCH ", LangFrench},
		{"darija", LangDarija},
		{"", LangEnglish},
		{"klingon", LangEnglish},
	}
	for _, tc := range cases {
		if got := ParseLanguage(tc.in); got != tc.want {
			t.Fatalf("ParseLanguage(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidLanguage(t *testing.T) {
	if !IsValidLanguage("darija") || !IsValidLanguage("English") {
		t.Fatalf("expected supported languages to validate")
	}
	if IsValidLanguage("klingon") || IsValidLanguage("") {
		t.Fatalf("expected unsupported languages to fail")
	}
}

func TestDefaultCatalog_CoversAllLanguagesForRoadmapKeys(t *testing.T) {
	b := Default()
	keys := []string{
		"roadmap.default_title",
		"roadmap.default_description",
		"roadmap.default_step_description",
	}
	for _, lang := range []Language{LangEnglish, LangArabic, LangFrench, LangDarija} {
		for _, key := range keys {
			if got := b.T(lang, key, nil); got == key {
				t.Fatalf("catalog missing %q for %q", key, lang)
			}
		}
	}
}

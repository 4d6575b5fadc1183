package message

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestEveryKeyHasBothCatalogs(t *testing.T) {
	for key := range english {
		if _, ok := russian[key]; !ok {
			t.Errorf("key %s present in english catalog but missing from russian", key)
		}
	}
	for key := range russian {
		if _, ok := english[key]; !ok {
			t.Errorf("key %s present in russian catalog but missing from english", key)
		}
	}
}

func TestFormatSubstitutesArgs(t *testing.T) {
	p := New(language.English)
	got := p.Format(UnknownSymbol, "@")
	if !strings.Contains(got, "@") {
		t.Fatalf("expected formatted message to contain the glyph, got %q", got)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	p := New(language.MustParse("fr"))
	if p.Tag() != language.English {
		t.Fatalf("expected fallback to English, got %v", p.Tag())
	}
}

func TestRussianCatalogSelected(t *testing.T) {
	p := New(language.Russian)
	if p.Tag() != language.Russian {
		t.Fatalf("expected Russian, got %v", p.Tag())
	}
	got := p.Format(NoInputFile)
	if got == "" {
		t.Fatal("expected a non-empty localized message")
	}
}

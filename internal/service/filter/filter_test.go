package filter

import (
	"testing"

	"github.com/jgivc/extprobe/internal/entity"
	"github.com/stretchr/testify/assert"
)

func extensions(langs ...string) []entity.Extension {
	exts := make([]entity.Extension, 0, len(langs))
	for i, lang := range langs {
		exts = append(exts, entity.Extension{Name: string(rune('a' + i)), Lang: lang})
	}

	return exts
}

func names(exts []entity.Extension) []string {
	res := make([]string, 0, len(exts))
	for _, ext := range exts {
		res = append(res, ext.Name)
	}

	return res
}

func TestByLang(t *testing.T) {
	exts := extensions("es", "en", "es", "ES", "es-419", "all", "es")

	got := ByLang(exts, "es")
	assert.Equal(t, []string{"a", "c", "g"}, names(got))

	for _, ext := range got {
		assert.Equal(t, "es", ext.Lang)
	}
}

func TestByLangIdempotent(t *testing.T) {
	exts := extensions("es", "en", "es", "pt-BR", "en")

	for _, lang := range []string{"es", "en", "pt-BR", "fr"} {
		once := ByLang(exts, lang)
		assert.Equal(t, once, ByLang(once, lang), lang)
	}
}

func TestByLangNoMatch(t *testing.T) {
	got := ByLang(extensions("en", "fr"), "es")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ByLang(nil, "es")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

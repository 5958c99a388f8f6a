package i18n

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"
)

const messages = `
en:
  greeting: "Hello, %s!"
  title: "Settings"
de:
  greeting: "Hallo, %s!"
  title: "Einstellungen"
`

func loadMessages(t *testing.T) *Localizer {
	t.Helper()
	cat, err := LoadCatalog(strings.NewReader(messages), language.English)
	require.NoError(t, err)
	return NewLocalizer(WithLanguage(language.German), WithCatalog(cat))
}

func TestLocalizer_ResolvesPerLanguage(t *testing.T) {
	t.Parallel()
	cat, err := LoadCatalog(strings.NewReader(messages), language.English)
	require.NoError(t, err)

	en := NewLocalizer(WithCatalog(cat))
	de := NewLocalizer(WithLanguage(language.German), WithCatalog(cat))

	assert.Equal(t, "Settings", en.Localized("title"))
	assert.Equal(t, "Einstellungen", de.Localized("title"))
	assert.Equal(t, "Hello, Ana!", en.LocalizedArgs("greeting", "Ana"))
	assert.Equal(t, "Hallo, Ana!", de.LocalizedArgs("greeting", "Ana"))
	assert.Equal(t, language.German, de.Language())
}

func TestLocalizer_MissingKeyReturnsKey(t *testing.T) {
	t.Parallel()
	l := loadMessages(t)

	assert.Equal(t, "settings.missing", l.Localized("settings.missing"))
	assert.Equal(t, "plain", NewLocalizer().Localized("plain"))
}

func TestLocalizer_LogsCatalog(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	cat, err := LoadCatalog(strings.NewReader(messages), language.English)
	require.NoError(t, err)

	NewLocalizer(WithCatalog(cat), WithLogger(zap.New(core)))

	entries := logs.FilterMessage("localizer ready").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "en", fields["language"])
	assert.EqualValues(t, 2, fields["catalog_languages"])
}

func TestLoadCatalog_InvalidLanguage(t *testing.T) {
	t.Parallel()
	_, err := LoadCatalog(strings.NewReader("not a tag:\n  k: v\n"), language.English)

	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadCatalog_MalformedYAML(t *testing.T) {
	t.Parallel()
	_, err := LoadCatalog(strings.NewReader("en: ["), language.English)

	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadCatalog_Empty(t *testing.T) {
	t.Parallel()
	cat, err := LoadCatalog(strings.NewReader(""), language.English)

	require.NoError(t, err)
	assert.Empty(t, cat.Languages())
}

func TestLoadCatalogFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "messages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(messages), 0o600))

	cat, err := LoadCatalogFile(path, language.English)
	require.NoError(t, err)
	assert.Equal(t, "Einstellungen",
		NewLocalizer(WithLanguage(language.German), WithCatalog(cat)).Localized("title"))

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "absent.yaml"), language.English)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	l := loadMessages(t)
	def := NewLocalizer()

	assert.Same(t, def, FromContext(context.Background(), def))
	assert.Same(t, l, FromContext(WithLocalizer(context.Background(), l), def))
}

func TestPackageLocalized(t *testing.T) {
	l := loadMessages(t)

	SetDefault(l)
	defer SetDefault(nil)

	ctx := context.Background()
	assert.Equal(t, "Einstellungen", Localized(ctx, "title"))
	assert.Equal(t, "Hallo, Bo!", LocalizedArgs(ctx, "greeting", "Bo"))

	cat, err := LoadCatalog(strings.NewReader(messages), language.English)
	require.NoError(t, err)
	ctx = WithLocalizer(ctx, NewLocalizer(WithCatalog(cat)))
	assert.Equal(t, "Settings", Localized(ctx, "title"))
}

func TestSetDefault_NilResets(t *testing.T) {
	SetDefault(loadMessages(t))
	SetDefault(nil)

	assert.Equal(t, language.English, Default().Language())
	assert.Equal(t, "title", Localized(context.Background(), "title"))
}

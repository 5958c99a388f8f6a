package i18n

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type Localizer struct {
	tag     language.Tag
	cat     catalog.Catalog
	printer *message.Printer
	logger  *zap.Logger
}

var (
	defaultLocalizer = NewLocalizer()
	mu               sync.RWMutex
)

// NewLocalizer defaults to English, an empty catalog and a no-op logger.
func NewLocalizer(opts ...Option) *Localizer {
	c := config{tag: language.English}
	for _, opt := range opts {
		opt(&c)
	}
	if c.cat == nil {
		c.cat = catalog.NewBuilder(catalog.Fallback(c.tag))
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	l := &Localizer{
		tag:     c.tag,
		cat:     c.cat,
		printer: message.NewPrinter(c.tag, message.Catalog(c.cat)),
		logger:  c.logger,
	}

	l.logger.Debug("localizer ready",
		zap.Stringer("language", l.tag),
		zap.Int("catalog_languages", len(l.cat.Languages())))

	return l
}

func (l *Localizer) Language() language.Tag {
	return l.tag
}

func (l *Localizer) Localized(key string) string {
	return l.printer.Sprintf(key)
}

// LocalizedArgs formats the message for key with positional arguments.
func (l *Localizer) LocalizedArgs(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

func Default() *Localizer {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLocalizer
}

// SetDefault replaces the package default; nil restores a fresh English localizer.
func SetDefault(l *Localizer) {
	if l == nil {
		l = NewLocalizer()
	}

	mu.Lock()
	defer mu.Unlock()
	defaultLocalizer = l
}

func Localized(ctx context.Context, key string) string {
	return FromContext(ctx, Default()).Localized(key)
}

func LocalizedArgs(ctx context.Context, key string, args ...any) string {
	return FromContext(ctx, Default()).LocalizedArgs(key, args...)
}

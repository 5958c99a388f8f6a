package i18n

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

type OptionKey string

const LocalizerKey OptionKey = "localizer"

type config struct {
	tag    language.Tag
	cat    catalog.Catalog
	logger *zap.Logger
}

type Option func(*config)

func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.tag = tag
	}
}

func WithCatalog(cat catalog.Catalog) Option {
	return func(c *config) {
		c.cat = cat
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func WithLocalizer(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, LocalizerKey, l)
}

func FromContext(ctx context.Context, defaultLocalizer *Localizer) *Localizer {
	l, ok := ctx.Value(LocalizerKey).(*Localizer)
	if ok && l != nil {
		return l
	}
	return defaultLocalizer
}

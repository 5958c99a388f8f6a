// Package i18n resolves localization keys to messages.
//
// A Localizer pairs a language with a golang.org/x/text catalog. Catalogs are
// usually loaded from YAML files keyed by language:
//
//	en:
//	  greeting: "Hello, %s!"
//	de:
//	  greeting: "Hallo, %s!"
//
// A key without a message is printed as is, so untranslated keys stay visible.
// Localizers travel in a context (WithLocalizer/FromContext); Localized and
// LocalizedArgs use the one from the context or the package default.
package i18n

package i18n

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalog = errors.New("i18n: invalid catalog")

// LoadCatalog reads a YAML document mapping language tags to key/message pairs.
// An empty document yields an empty catalog.
func LoadCatalog(r io.Reader, fallback language.Tag) (*catalog.Builder, error) {
	var raw map[string]map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for _, lang := range slices.Sorted(maps.Keys(raw)) {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %v", ErrInvalidCatalog, lang, err)
		}

		messages := raw[lang]
		for _, key := range slices.Sorted(maps.Keys(messages)) {
			if err := b.SetString(tag, key, messages[key]); err != nil {
				return nil, fmt.Errorf("%w: %s/%s: %v", ErrInvalidCatalog, lang, key, err)
			}
		}
	}

	return b, nil
}

func LoadCatalogFile(path string, fallback language.Tag) (*catalog.Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f, fallback)
}

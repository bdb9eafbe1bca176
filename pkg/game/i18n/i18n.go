// Package i18n holds the translated player-facing strings.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var catalogues embed.FS

// DefaultLanguage is used when no language is chosen
const DefaultLanguage = "en"

// Catalog is one language's translations
type Catalog struct {
	Language string
	po       *gotext.Po
}

// Load parses the embedded catalogue for lang
func Load(lang string) (*Catalog, error) {
	data, err := catalogues.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("language %q not available (have %s)", lang, strings.Join(Languages(), ", "))
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{Language: lang, po: po}, nil
}

// T returns the translation of key, formatted with args.
// Unknown keys come back untranslated.
func (c *Catalog) T(key string, args ...any) string {
	return c.po.Get(key, args...)
}

// Languages lists the embedded catalogues
func Languages() []string {
	entries, _ := catalogues.ReadDir("locales")
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

var (
	mu      sync.RWMutex
	current *Catalog
)

// SetLanguage switches the package-level catalogue used by T
func SetLanguage(lang string) error {
	c, err := Load(lang)
	if err != nil {
		return err
	}
	mu.Lock()
	current = c
	mu.Unlock()
	return nil
}

// T translates key with the package-level catalogue, loading the
// default language on first use.
func T(key string, args ...any) string {
	mu.RLock()
	c := current
	mu.RUnlock()

	if c == nil {
		var err error
		if c, err = Load(DefaultLanguage); err != nil {
			return fmt.Sprintf(key, args...)
		}
		mu.Lock()
		if current == nil {
			current = c
		}
		mu.Unlock()
	}
	return c.T(key, args...)
}

// Package cldr serves the built-in, locale-aware currency dataset. The data
// ships as one embedded JSON file per locale and is decoded at most once per
// locale; the resulting maps are shared read-only snapshots.
package cldr

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/finlocale/currency_catalog/internal/apperrors"
	"github.com/finlocale/currency_catalog/internal/core/domain"
	"github.com/finlocale/currency_catalog/internal/core/ports"
	"golang.org/x/text/language"
)

//go:embed data/*.json
var dataFS embed.FS

// Repository implements ports.CurrencyDataRepository over the embedded
// dataset.
type Repository struct {
	locales []string
	tags    []language.Tag
	matcher language.Matcher

	mu     sync.Mutex
	byTag  map[string]map[string]domain.Currency // decoded locale maps, memoized
	loaded map[string]bool
}

var _ ports.CurrencyDataRepository = (*Repository)(nil)

// NewRepository enumerates the embedded locale files and prepares the locale
// matcher. Files are decoded lazily on first use.
func NewRepository() (*Repository, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded currency data: %w", err)
	}

	r := &Repository{
		byTag:  make(map[string]map[string]domain.Currency),
		loaded: make(map[string]bool),
	}
	for _, entry := range entries {
		name := entry.Name()
		locale := strings.TrimSuffix(name, path.Ext(name))
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("embedded locale file %q has an unparsable name: %w", name, err)
		}
		r.locales = append(r.locales, tag.String())
		r.tags = append(r.tags, tag)
	}
	if len(r.tags) == 0 {
		return nil, fmt.Errorf("no embedded locale files found")
	}
	sort.Strings(r.locales)
	r.matcher = language.NewMatcher(r.tags)
	return r, nil
}

// CanonicalLocale negotiates a caller-supplied locale against the known set,
// so "en-US" resolves to "en". Returns apperrors.ErrUnknownLocale when
// nothing matches.
func (r *Repository) CanonicalLocale(locale string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return "", fmt.Errorf("locale %q: %w", locale, apperrors.ErrUnknownLocale)
	}
	_, index, conf := r.matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("locale %q: %w", locale, apperrors.ErrUnknownLocale)
	}
	return r.tags[index].String(), nil
}

// CurrenciesForLocale returns the immutable currency map for a locale,
// decoding the embedded file on first use.
func (r *Repository) CurrenciesForLocale(ctx context.Context, locale string) (map[string]domain.Currency, error) {
	canonical, err := r.CanonicalLocale(locale)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded[canonical] {
		return r.byTag[canonical], nil
	}

	raw, err := dataFS.ReadFile("data/" + canonical + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset for locale %s: %w", canonical, err)
	}
	var file rawLocaleFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to decode dataset for locale %s: %w", canonical, err)
	}

	currencies := make(map[string]domain.Currency, len(file.Currencies))
	for code, entry := range file.Currencies {
		code = domain.NormalizeCode(code)
		currencies[code] = entry.toDomain(code)
	}
	r.byTag[canonical] = currencies
	r.loaded[canonical] = true
	return currencies, nil
}

// KnownLocales lists the locales the dataset ships, sorted.
func (r *Repository) KnownLocales() []string {
	out := make([]string, len(r.locales))
	copy(out, r.locales)
	return out
}

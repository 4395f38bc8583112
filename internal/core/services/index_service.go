package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/finlocale/currency_catalog/internal/core/domain"
	"github.com/finlocale/currency_catalog/internal/core/ports"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stringCode is one (display string, currency code) candidate pair.
type stringCode struct {
	s    string
	code string
}

// localeIndex is the immutable per-locale index material. pairs holds the
// pre-collision candidates (names, symbols, codes, alt codes, plural
// forms); narrow
// holds the narrow-symbol pairs, kept apart because they never participate
// in collision resolution. resolved is the final string -> code map.
type localeIndex struct {
	pairs    []stringCode
	narrow   []stringCode
	resolved map[string]string
}

// CurrencyIndexService builds and memoizes, per locale, the reverse index
// from lower-cased display strings to currency codes. An index is a pure
// function of the locale's immutable currency map, so it is computed once
// under a double-checked mutex and shared thereafter.
type CurrencyIndexService struct {
	data ports.CurrencyDataRepository

	mu    sync.Mutex
	cache map[string]*localeIndex
}

// NewCurrencyIndexService creates the index builder over the given dataset.
func NewCurrencyIndexService(data ports.CurrencyDataRepository) *CurrencyIndexService {
	return &CurrencyIndexService{
		data:  data,
		cache: make(map[string]*localeIndex),
	}
}

// IndexForLocale returns the full string -> code index for a locale.
func (s *CurrencyIndexService) IndexForLocale(ctx context.Context, locale string) (map[string]string, error) {
	index, err := s.indexForLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	return index.resolved, nil
}

// FilteredIndex returns the index narrowed to the allowed code set. The
// cached candidate pairs are re-resolved against the narrowed set rather
// than the resolved map being key-filtered: narrowing can restore clarity to
// a string that was ambiguous over the full set, or re-introduce ambiguity
// among the survivors.
func (s *CurrencyIndexService) FilteredIndex(ctx context.Context, locale string, allowed map[string]domain.Currency) (map[string]string, error) {
	index, err := s.indexForLocale(ctx, locale)
	if err != nil {
		return nil, err
	}

	pairs := make([]stringCode, 0, len(index.pairs))
	for _, pair := range index.pairs {
		if _, ok := allowed[pair.code]; ok {
			pairs = append(pairs, pair)
		}
	}
	resolved := resolveCollisions(pairs, allowed)
	for _, pair := range index.narrow {
		if _, ok := allowed[pair.code]; !ok {
			continue
		}
		if _, taken := resolved[pair.s]; !taken {
			resolved[pair.s] = pair.code
		}
	}
	return resolved, nil
}

// StringsForCurrency returns every index key resolving to code, sorted.
func (s *CurrencyIndexService) StringsForCurrency(ctx context.Context, locale, code string) ([]string, error) {
	index, err := s.indexForLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	code = domain.NormalizeCode(code)
	strs := make([]string, 0, 4)
	for display, c := range index.resolved {
		if c == code {
			strs = append(strs, display)
		}
	}
	sort.Strings(strs)
	return strs, nil
}

func (s *CurrencyIndexService) indexForLocale(ctx context.Context, locale string) (*localeIndex, error) {
	canonical, err := s.data.CanonicalLocale(locale)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if index, ok := s.cache[canonical]; ok {
		s.mu.Unlock()
		return index, nil
	}
	s.mu.Unlock()

	currencies, err := s.data.CurrenciesForLocale(ctx, canonical)
	if err != nil {
		return nil, err
	}
	index := buildIndex(currencies, canonical)

	s.mu.Lock()
	// Another goroutine may have built it meanwhile; both results are
	// identical for a fixed locale map, keep the first.
	if existing, ok := s.cache[canonical]; ok {
		index = existing
	} else {
		s.cache[canonical] = index
	}
	s.mu.Unlock()
	return index, nil
}

// buildIndex derives the candidate pairs and resolved index for one locale
// map. Codes are visited in sorted order so the result is deterministic
// regardless of map iteration order.
func buildIndex(currencies map[string]domain.Currency, locale string) *localeIndex {
	lower := cases.Lower(language.Make(locale))
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	index := &localeIndex{}
	for _, code := range codes {
		currency := currencies[code]
		candidates := []string{currency.Name, currency.Symbol, currency.Code, currency.AltCode}
		for _, pluralized := range currency.Count {
			candidates = append(candidates, pluralized)
		}
		seen := make(map[string]bool, len(candidates))
		cleaned := make([]string, 0, len(candidates))
		for _, candidate := range candidates {
			candidate = normalizeIndexString(lower, candidate)
			if candidate == "" || seen[candidate] {
				continue
			}
			seen[candidate] = true
			cleaned = append(cleaned, candidate)
		}
		// Count maps iterate randomly; sort the per-currency set.
		sort.Strings(cleaned)
		for _, candidate := range cleaned {
			index.pairs = append(index.pairs, stringCode{s: candidate, code: code})
		}

		if currency.NarrowSymbol != "" {
			narrow := normalizeIndexString(lower, currency.NarrowSymbol)
			if narrow != "" {
				index.narrow = append(index.narrow, stringCode{s: narrow, code: code})
			}
		}
	}

	index.resolved = resolveCollisions(index.pairs, currencies)

	// Narrow symbols are strictly additive: they yield on any conflict with
	// the resolved index and among themselves (sorted-code order decides).
	for _, pair := range index.narrow {
		if _, taken := index.resolved[pair.s]; !taken {
			index.resolved[pair.s] = pair.code
		}
	}
	return index
}

// normalizeIndexString lower-cases a candidate and trims a single trailing
// period, which the dataset occasionally uses for abbreviations.
func normalizeIndexString(lower cases.Caser, s string) string {
	s = lower.String(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".")
	return s
}

// resolveCollisions inverts the candidate pairs into a map, applying the
// tie-break rules for strings claimed by more than one code: a lone current
// claimant wins over historic ones; strings with two current claimants, or
// with only historic claimants, stay out of the index.
func resolveCollisions(pairs []stringCode, currencies map[string]domain.Currency) map[string]string {
	claims := make(map[string][]string, len(pairs))
	for _, pair := range pairs {
		codes := claims[pair.s]
		duplicate := false
		for _, code := range codes {
			if code == pair.code {
				duplicate = true
				break
			}
		}
		if !duplicate {
			claims[pair.s] = append(codes, pair.code)
		}
	}

	resolved := make(map[string]string, len(claims))
	for display, codes := range claims {
		if len(codes) == 1 {
			resolved[display] = codes[0]
			continue
		}
		var current []string
		for _, code := range codes {
			if currencies[code].IsCurrent() {
				current = append(current, code)
			}
		}
		if len(current) == 1 {
			resolved[display] = current[0]
		}
	}
	return resolved
}

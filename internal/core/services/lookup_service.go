package services

import (
	"context"
	"fmt"

	"github.com/finlocale/currency_catalog/internal/apperrors"
	"github.com/finlocale/currency_catalog/internal/core/domain"
	"github.com/finlocale/currency_catalog/internal/core/ports"
	portssvc "github.com/finlocale/currency_catalog/internal/core/ports/services"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// CurrencyLookupService orchestrates locale resolution, the built-in
// dataset, the private registry, the filter engine and the string index to
// answer metadata and reverse-lookup queries.
type CurrencyLookupService struct {
	data     ports.CurrencyDataRepository
	registry portssvc.CurrencyRegistryReaderSvc
	filter   *CurrencyFilterService
	index    *CurrencyIndexService
}

var _ portssvc.CurrencyLookupSvc = (*CurrencyLookupService)(nil)

// NewCurrencyLookupService wires the lookup facade.
func NewCurrencyLookupService(
	data ports.CurrencyDataRepository,
	registry portssvc.CurrencyRegistryReaderSvc,
	filter *CurrencyFilterService,
	index *CurrencyIndexService,
) *CurrencyLookupService {
	return &CurrencyLookupService{
		data:     data,
		registry: registry,
		filter:   filter,
		index:    index,
	}
}

// CurrencyForCode resolves a code against the locale map, falling back to
// the private registry.
func (s *CurrencyLookupService) CurrencyForCode(ctx context.Context, code, locale string) (*domain.Currency, error) {
	normalized := domain.NormalizeCode(code)
	if !domain.IsValidCodeShape(normalized) {
		return nil, fmt.Errorf("code %q: %w", code, apperrors.ErrInvalidCurrencyCode)
	}

	currencies, err := s.data.CurrenciesForLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	if currency, ok := currencies[normalized]; ok {
		return &currency, nil
	}

	private, err := s.registry.Lookup(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if private != nil {
		return private, nil
	}
	return nil, fmt.Errorf("code %s: %w", normalized, apperrors.ErrUnknownCurrency)
}

// Resolve is the pre-resolved fast path: callers that already hold a record
// pass it through without a repeat lookup. Strings are resolved as codes.
func (s *CurrencyLookupService) Resolve(ctx context.Context, codeOrRecord any, locale string) (*domain.Currency, error) {
	switch v := codeOrRecord.(type) {
	case *domain.Currency:
		return v, nil
	case domain.Currency:
		return &v, nil
	case string:
		return s.CurrencyForCode(ctx, v, locale)
	default:
		return nil, fmt.Errorf("cannot resolve %T as a currency: %w", codeOrRecord, apperrors.ErrInvalidCurrencyCode)
	}
}

// CurrenciesForLocale returns the locale map narrowed by only/except atoms.
func (s *CurrencyLookupService) CurrenciesForLocale(ctx context.Context, locale string, only, except []string) (map[string]domain.Currency, error) {
	currencies, err := s.data.CurrenciesForLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	return s.filter.FilterMap(ctx, currencies, only, except)
}

// CurrencyStrings returns the display-string -> code index for the locale
// narrowed by only/except. The unfiltered case serves the memoized index
// directly.
func (s *CurrencyLookupService) CurrencyStrings(ctx context.Context, locale string, only, except []string) (map[string]string, error) {
	if IsPassthrough(only, except) {
		return s.index.IndexForLocale(ctx, locale)
	}
	allowed, err := s.CurrenciesForLocale(ctx, locale, only, except)
	if err != nil {
		return nil, err
	}
	return s.index.FilteredIndex(ctx, locale, allowed)
}

// StringsForCurrency returns every index key resolving to code, sorted.
// Private currencies are not indexed, so the result is empty for them.
func (s *CurrencyLookupService) StringsForCurrency(ctx context.Context, code, locale string) ([]string, error) {
	if _, err := s.CurrencyForCode(ctx, code, locale); err != nil {
		return nil, err
	}
	return s.index.StringsForCurrency(ctx, locale, code)
}

// LocalizedName returns the plural display name of code for count, using the
// locale's cardinal plural rules.
func (s *CurrencyLookupService) LocalizedName(ctx context.Context, code, locale string, count int) (string, error) {
	currency, err := s.CurrencyForCode(ctx, code, locale)
	if err != nil {
		return "", err
	}
	canonical, err := s.data.CanonicalLocale(locale)
	if err != nil {
		return "", err
	}
	form := plural.Cardinal.MatchPlural(language.Make(canonical), count, 0, 0, 0, 0)
	return currency.PluralizedName(pluralCategory(form)), nil
}

// KnownLocales lists the locales the dataset ships.
func (s *CurrencyLookupService) KnownLocales(ctx context.Context) []string {
	return s.data.KnownLocales()
}

func pluralCategory(form plural.Form) domain.PluralCategory {
	switch form {
	case plural.Zero:
		return domain.PluralZero
	case plural.One:
		return domain.PluralOne
	case plural.Two:
		return domain.PluralTwo
	case plural.Few:
		return domain.PluralFew
	case plural.Many:
		return domain.PluralMany
	default:
		return domain.PluralOther
	}
}

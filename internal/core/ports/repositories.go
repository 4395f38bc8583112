package ports

import (
	"context"

	"github.com/finlocale/currency_catalog/internal/core/domain"
)

// CurrencyDataRepository is the boundary to the locale-aware currency
// dataset. Implementations must hand out maps that are never mutated after
// construction; callers treat them as read-only snapshots.
type CurrencyDataRepository interface {
	// CurrenciesForLocale returns the immutable code -> record map for a
	// locale, or apperrors.ErrUnknownLocale.
	CurrenciesForLocale(ctx context.Context, locale string) (map[string]domain.Currency, error)

	// CanonicalLocale validates and canonicalizes a caller-supplied locale
	// identifier against the known set, or returns apperrors.ErrUnknownLocale.
	CanonicalLocale(locale string) (string, error)

	// KnownLocales lists the locales the dataset ships, sorted.
	KnownLocales() []string
}

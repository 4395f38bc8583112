package services

import (
	"context"

	"github.com/finlocale/currency_catalog/internal/core/domain"
	"github.com/finlocale/currency_catalog/internal/dto"
)

// CurrencyRegistryReaderSvc defines read operations over the private-use
// currency registry.
type CurrencyRegistryReaderSvc interface {
	// Lookup returns the registered record for code, or nil if absent.
	Lookup(ctx context.Context, code string) (*domain.Currency, error)

	// All returns a snapshot of every registered record keyed by code.
	All(ctx context.Context) (map[string]domain.Currency, error)

	// KnownCodes returns the sorted codes of all registered records.
	KnownCodes(ctx context.Context) ([]string, error)
}

// CurrencyRegistryWriterSvc defines the registry write path.
type CurrencyRegistryWriterSvc interface {
	// Register creates a private-use currency from the supplied options.
	Register(ctx context.Context, req dto.RegisterCurrencyRequest) (*domain.Currency, error)
}

// CurrencyRegistrySvcFacade combines the registry interfaces.
type CurrencyRegistrySvcFacade interface {
	CurrencyRegistryReaderSvc
	CurrencyRegistryWriterSvc
}

// CurrencyLookupSvc answers the two query classes over a locale's dataset:
// metadata for a known code, and reverse lookup from display strings.
type CurrencyLookupSvc interface {
	// CurrencyForCode resolves a code against the locale map, falling back
	// to the private registry.
	CurrencyForCode(ctx context.Context, code, locale string) (*domain.Currency, error)

	// Resolve is the pre-resolved fast path: a *domain.Currency passes
	// through untouched, a string is looked up as a code.
	Resolve(ctx context.Context, codeOrRecord any, locale string) (*domain.Currency, error)

	// CurrenciesForLocale returns the locale map narrowed by only/except
	// filter atoms.
	CurrenciesForLocale(ctx context.Context, locale string, only, except []string) (map[string]domain.Currency, error)

	// CurrencyStrings returns the display-string -> code index for the
	// locale, narrowed by only/except.
	CurrencyStrings(ctx context.Context, locale string, only, except []string) (map[string]string, error)

	// StringsForCurrency returns every index key resolving to code, sorted.
	StringsForCurrency(ctx context.Context, code, locale string) ([]string, error)

	// LocalizedName returns the plural display name of code for count.
	LocalizedName(ctx context.Context, code, locale string, count int) (string, error)

	// KnownLocales lists the locales the dataset ships.
	KnownLocales(ctx context.Context) []string
}

// ServiceContainer holds instances of all the application services. It is
// the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Registry CurrencyRegistrySvcFacade
	Lookup   CurrencyLookupSvc
}

package services_test

import (
	"context"
	"sort"

	"github.com/finlocale/currency_catalog/internal/core/domain"
	"github.com/finlocale/currency_catalog/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyDataRepository ---

type MockCurrencyDataRepository struct {
	mock.Mock
}

func (m *MockCurrencyDataRepository) CurrenciesForLocale(ctx context.Context, locale string) (map[string]domain.Currency, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Currency), args.Error(1)
}

func (m *MockCurrencyDataRepository) CanonicalLocale(locale string) (string, error) {
	args := m.Called(locale)
	return args.String(0), args.Error(1)
}

func (m *MockCurrencyDataRepository) KnownLocales() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// --- Mock CurrencyRegistry ---

type MockCurrencyRegistry struct {
	mock.Mock
}

func (m *MockCurrencyRegistry) Lookup(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRegistry) All(ctx context.Context) (map[string]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRegistry) KnownCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCurrencyRegistry) Register(ctx context.Context, req dto.RegisterCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// --- Shared fixtures ---

func intPtr(v int) *int { return &v }

func sortedKeys(m map[string]domain.Currency) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fixtureCurrencies returns a small en-style locale map exercising every
// status class: current tender (USD, EUR), current non-tender annotated
// (USN), historic (DEM, AFA) and an instrument that is neither current nor
// tender (XAU).
func fixtureCurrencies() map[string]domain.Currency {
	return map[string]domain.Currency{
		"USD": {
			Code: "USD", AltCode: "USD", Name: "US Dollar", Symbol: "$", NarrowSymbol: "$",
			Digits: 2, CashDigits: 2, ISODigits: intPtr(2), Tender: true,
			Count: map[domain.PluralCategory]string{domain.PluralOne: "US dollar", domain.PluralOther: "US dollars"},
		},
		"EUR": {
			Code: "EUR", AltCode: "EUR", Name: "Euro", Symbol: "€", NarrowSymbol: "€",
			Digits: 2, CashDigits: 2, ISODigits: intPtr(2), Tender: true,
			Count: map[domain.PluralCategory]string{domain.PluralOne: "euro", domain.PluralOther: "euros"},
		},
		"USN": {
			Code: "USN", AltCode: "USN", Name: "US Dollar (Next Day)", Symbol: "USN",
			Digits: 2, CashDigits: 2, ISODigits: intPtr(2), Tender: false,
		},
		"DEM": {
			Code: "DEM", AltCode: "DEM", Name: "German Mark", Symbol: "DM",
			Digits: 2, CashDigits: 2, Tender: false, From: intPtr(1948), To: intPtr(2001),
		},
		"AFA": {
			Code: "AFA", AltCode: "AFA", Name: "Afghan Afghani (1927–2002)", Symbol: "AFA",
			Digits: 2, CashDigits: 2, Tender: false, From: intPtr(1927), To: intPtr(2002),
		},
		"XAU": {
			Code: "XAU", AltCode: "XAU", Name: "Gold", Symbol: "XAU",
			Digits: 0, CashDigits: 0, Tender: false,
		},
	}
}

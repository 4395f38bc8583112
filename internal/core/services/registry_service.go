package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/finlocale/currency_catalog/internal/apperrors"
	"github.com/finlocale/currency_catalog/internal/core/domain"
	"github.com/finlocale/currency_catalog/internal/core/ports"
	portssvc "github.com/finlocale/currency_catalog/internal/core/ports/services"
	"github.com/finlocale/currency_catalog/internal/dto"
)

// CurrencyRegistryService holds user-defined private-use currencies for the
// lifetime of the process. Reads are lock-free; the only write is an atomic
// insert-if-absent, so a code can never be redefined once other components
// have seen it. Nothing is persisted: integrators must re-register on every
// process start.
type CurrencyRegistryService struct {
	data          ports.CurrencyDataRepository
	defaultLocale string
	store         *sync.Map
}

var _ portssvc.CurrencyRegistrySvcFacade = (*CurrencyRegistryService)(nil)

// NewCurrencyRegistryService creates an empty registry. defaultLocale selects
// the built-in map used for duplicate detection against ISO codes.
func NewCurrencyRegistryService(data ports.CurrencyDataRepository, defaultLocale string) *CurrencyRegistryService {
	return &CurrencyRegistryService{
		data:          data,
		defaultLocale: defaultLocale,
		store:         &sync.Map{},
	}
}

// Register validates the request and atomically inserts the new currency.
// Validation short-circuits in contract order: code shape, duplicate,
// missing options.
func (s *CurrencyRegistryService) Register(ctx context.Context, req dto.RegisterCurrencyRequest) (*domain.Currency, error) {
	code := domain.NormalizeCode(req.Code)
	if !domain.IsPrivateUseCode(code) {
		return nil, fmt.Errorf("code %q is not in the private-use range X[A-Z]{2}: %w", req.Code, apperrors.ErrInvalidCurrencyCode)
	}

	builtin, err := s.data.CurrenciesForLocale(ctx, s.defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in currencies: %w", err)
	}
	if _, exists := builtin[code]; exists {
		return nil, fmt.Errorf("code %s is a built-in currency: %w", code, apperrors.ErrCurrencyAlreadyDefined)
	}
	if s.store != nil {
		if _, exists := s.store.Load(code); exists {
			return nil, fmt.Errorf("code %s: %w", code, apperrors.ErrCurrencyAlreadyDefined)
		}
	}

	if req.Name == "" || req.Digits == nil {
		return nil, fmt.Errorf("name and digits are required: %w", apperrors.ErrMissingRequiredOption)
	}

	currency := buildPrivateCurrency(code, req)

	if s.store == nil {
		return nil, fmt.Errorf("registry store not initialized: %w", apperrors.ErrCurrencyNotSaved)
	}
	if _, raced := s.store.LoadOrStore(code, currency); raced {
		return nil, fmt.Errorf("code %s: %w", code, apperrors.ErrCurrencyAlreadyDefined)
	}
	return &currency, nil
}

// buildPrivateCurrency applies registration defaults: alt code and symbol
// fall back to the code, cash precision to standard precision, count to
// {other: name}.
func buildPrivateCurrency(code string, req dto.RegisterCurrencyRequest) domain.Currency {
	currency := domain.Currency{
		Code:         code,
		AltCode:      req.AltCode,
		Name:         req.Name,
		Symbol:       req.Symbol,
		NarrowSymbol: req.NarrowSymbol,
		Digits:       *req.Digits,
		CashDigits:   *req.Digits,
	}
	if currency.AltCode == "" {
		currency.AltCode = code
	}
	if currency.Symbol == "" {
		currency.Symbol = code
	}
	if req.Rounding != nil {
		currency.Rounding = *req.Rounding
	}
	currency.CashRounding = currency.Rounding
	if req.CashDigits != nil {
		currency.CashDigits = *req.CashDigits
	}
	if req.CashRounding != nil {
		currency.CashRounding = *req.CashRounding
	}
	if req.Tender != nil {
		currency.Tender = *req.Tender
	}
	if len(req.Count) > 0 {
		currency.Count = make(map[domain.PluralCategory]string, len(req.Count))
		for category, s := range req.Count {
			currency.Count[domain.PluralCategory(category)] = s
		}
	} else {
		currency.Count = map[domain.PluralCategory]string{domain.PluralOther: req.Name}
	}
	return currency
}

// Lookup returns the registered record for code, or nil if absent.
func (s *CurrencyRegistryService) Lookup(ctx context.Context, code string) (*domain.Currency, error) {
	value, ok := s.store.Load(domain.NormalizeCode(code))
	if !ok {
		return nil, nil
	}
	currency := value.(domain.Currency)
	return &currency, nil
}

// All returns a snapshot of the registry. Each entry was inserted atomically,
// so the snapshot never observes a partial record.
func (s *CurrencyRegistryService) All(ctx context.Context) (map[string]domain.Currency, error) {
	snapshot := make(map[string]domain.Currency)
	s.store.Range(func(key, value any) bool {
		snapshot[key.(string)] = value.(domain.Currency)
		return true
	})
	return snapshot, nil
}

// KnownCodes returns the sorted codes of all registered currencies.
func (s *CurrencyRegistryService) KnownCodes(ctx context.Context) ([]string, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(all))
	for code := range all {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/finlocale/currency_catalog/internal/core/domain"
	portssvc "github.com/finlocale/currency_catalog/internal/core/ports/services"
)

// Filter atoms. A list of atoms is a union; anything not in this set is
// treated as a currency-code literal.
const (
	FilterAll         = "all"
	FilterCurrent     = "current"
	FilterHistoric    = "historic"
	FilterTender      = "tender"
	FilterAnnotated   = "annotated"
	FilterUnannotated = "unannotated"
	FilterPrivate     = "private"
)

// CurrencyFilterService narrows currency collections by status tags and code
// literals: result = expand(only) minus expand(except). The private tag is a
// live read of the registry, never a cached snapshot.
type CurrencyFilterService struct {
	registry portssvc.CurrencyRegistryReaderSvc
}

// NewCurrencyFilterService creates the filter engine over the given registry.
func NewCurrencyFilterService(registry portssvc.CurrencyRegistryReaderSvc) *CurrencyFilterService {
	return &CurrencyFilterService{registry: registry}
}

// statusPredicates maps filter tags to their record predicate. The private
// and all tags are handled structurally, not per record.
var statusPredicates = map[string]func(domain.Currency) bool{
	FilterCurrent:     domain.Currency.IsCurrent,
	FilterHistoric:    domain.Currency.IsHistoric,
	FilterTender:      domain.Currency.IsTender,
	FilterAnnotated:   domain.Currency.IsAnnotated,
	FilterUnannotated: domain.Currency.IsUnannotated,
}

// IsPassthrough reports whether the only/except pair selects everything, the
// documented no-op fast path.
func IsPassthrough(only, except []string) bool {
	if len(except) != 0 {
		return false
	}
	if len(only) == 0 {
		return true
	}
	return len(only) == 1 && strings.EqualFold(strings.TrimSpace(only[0]), FilterAll)
}

// FilterMap returns the subset of currencies matching only but not except,
// re-keyed by normalized code. The input map is returned unchanged when the
// filter is a passthrough.
func (s *CurrencyFilterService) FilterMap(ctx context.Context, currencies map[string]domain.Currency, only, except []string) (map[string]domain.Currency, error) {
	if IsPassthrough(only, except) {
		return currencies, nil
	}
	// An absent only list defaults to all.
	if len(only) == 0 {
		only = []string{FilterAll}
	}

	selected, err := s.expand(ctx, currencies, only, true)
	if err != nil {
		return nil, err
	}
	excluded, err := s.expand(ctx, currencies, except, false)
	if err != nil {
		return nil, err
	}

	result := make(map[string]domain.Currency, len(selected))
	for code, currency := range selected {
		if _, drop := excluded[code]; !drop {
			result[code] = currency
		}
	}
	return result, nil
}

// FilterSlice is FilterMap for value collections; element identity is the
// normalized code and the input order is preserved. Private currencies
// selected by the private tag are appended in sorted-code order.
func (s *CurrencyFilterService) FilterSlice(ctx context.Context, currencies []domain.Currency, only, except []string) ([]domain.Currency, error) {
	if IsPassthrough(only, except) {
		return currencies, nil
	}
	// An absent only list defaults to all.
	if len(only) == 0 {
		only = []string{FilterAll}
	}

	byCode := make(map[string]domain.Currency, len(currencies))
	for _, currency := range currencies {
		byCode[domain.NormalizeCode(currency.Code)] = currency
	}
	selected, err := s.expand(ctx, byCode, only, true)
	if err != nil {
		return nil, err
	}
	excluded, err := s.expand(ctx, byCode, except, false)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Currency, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, currency := range currencies {
		code := domain.NormalizeCode(currency.Code)
		if _, keep := selected[code]; !keep {
			continue
		}
		if _, drop := excluded[code]; drop {
			continue
		}
		result = append(result, currency)
		seen[code] = true
	}
	// Registry records selected via the private tag are not part of the
	// input; union them in deterministically.
	extra := make([]string, 0)
	for code := range selected {
		if _, drop := excluded[code]; drop {
			continue
		}
		if !seen[code] {
			extra = append(extra, code)
		}
	}
	sort.Strings(extra)
	for _, code := range extra {
		result = append(result, selected[code])
	}
	return result, nil
}

// expand resolves a list of filter atoms into a code -> record map. When
// includePrivate is false (except side) the private tag still expands to the
// registry contents so those codes subtract from the result.
func (s *CurrencyFilterService) expand(ctx context.Context, currencies map[string]domain.Currency, atoms []string, includePrivate bool) (map[string]domain.Currency, error) {
	result := make(map[string]domain.Currency)
	for _, atom := range atoms {
		atom = strings.TrimSpace(atom)
		if atom == "" {
			continue
		}
		tag := strings.ToLower(atom)
		switch {
		case tag == FilterAll:
			for code, currency := range currencies {
				result[code] = currency
			}
		case tag == FilterPrivate:
			// Live read: the dynamic private set is unioned in (only) or
			// subtracted out (except), not filtered from the input.
			private, err := s.registry.All(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to read private currency registry: %w", err)
			}
			for code, currency := range private {
				result[code] = currency
			}
		default:
			if predicate, ok := statusPredicates[tag]; ok {
				for code, currency := range currencies {
					if predicate(currency) {
						result[code] = currency
					}
				}
				continue
			}
			// Not a status tag: a code literal.
			code := domain.NormalizeCode(atom)
			if currency, ok := currencies[code]; ok {
				result[code] = currency
			} else if !includePrivate {
				// Except-side code literals subtract by key even when the
				// record is not in the candidate pool (e.g. private codes).
				result[code] = domain.Currency{Code: code}
			}
		}
	}
	return result, nil
}

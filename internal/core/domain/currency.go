package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PluralCategory is a CLDR plural bucket key ("one", "other", ...).
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// Currency holds the canonical metadata for one currency in one locale.
// Immutable once constructed; mutating methods are absent on purpose.
type Currency struct {
	Code         string                    `json:"code"`                   // ISO 4217 code or private-use X?? code
	AltCode      string                    `json:"altCode"`                // application-chosen alias, defaults to Code
	Name         string                    `json:"name"`                   // e.g. "US Dollar (Next Day)"
	Symbol       string                    `json:"symbol"`                 // e.g. "$"
	NarrowSymbol string                    `json:"narrowSymbol,omitempty"` // may be empty
	Digits       int                       `json:"digits"`
	Rounding     int                       `json:"rounding"`
	CashDigits   int                       `json:"cashDigits"`
	CashRounding int                       `json:"cashRounding"`
	ISODigits    *int                      `json:"isoDigits,omitempty"` // nil: not a currently recognized ISO code
	Tender       bool                      `json:"tender"`
	Count        map[PluralCategory]string `json:"count,omitempty"`
	From         *int                      `json:"from,omitempty"` // first calendar year of use
	To           *int                      `json:"to,omitempty"`   // last calendar year of use, nil while in use
}

var (
	codePattern        = regexp.MustCompile(`^[A-Z]{3}$`)
	privateCodePattern = regexp.MustCompile(`^X[A-Z]{2}$`)
)

// nowYear is swapped out by tests that pin the wall-clock year.
var nowYear = func() int { return time.Now().Year() }

// NormalizeCode upper-cases a caller-supplied currency code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidCodeShape reports whether code has ISO 4217 shape (3 uppercase letters).
// Callers must normalize first.
func IsValidCodeShape(code string) bool {
	return codePattern.MatchString(code)
}

// IsPrivateUseCode reports whether code is in the ISO 4217 private-use range
// (X followed by two uppercase letters).
func IsPrivateUseCode(code string) bool {
	return privateCodePattern.MatchString(code)
}

// IsHistoric reports whether the currency is out of use: either ISO no longer
// (or never) recognized the code, or its last year of use has passed.
func (c Currency) IsHistoric() bool {
	if c.ISODigits == nil {
		return true
	}
	return c.To != nil && *c.To < nowYear()
}

// IsCurrent reports whether the currency is an active ISO currency. Note this
// is not the negation of IsHistoric: a record with no ISODigits and no To year
// is historic yet not current.
func (c Currency) IsCurrent() bool {
	return c.ISODigits != nil && c.To == nil
}

// IsTender reports whether the currency is legal tender.
func (c Currency) IsTender() bool {
	return c.Tender
}

// IsAnnotated reports whether the display name carries a parenthesized
// qualifier, e.g. "US Dollar (Next Day)". Annotated entries are typically
// financial instruments rather than everyday tender.
func (c Currency) IsAnnotated() bool {
	return strings.ContainsRune(c.Name, '(')
}

// IsUnannotated is the negation of IsAnnotated.
func (c Currency) IsUnannotated() bool {
	return !c.IsAnnotated()
}

// RoundingIncrement returns the minimum rounding increment for standard
// amounts as an exact decimal, e.g. 0.01 for USD.
func (c Currency) RoundingIncrement() decimal.Decimal {
	return increment(c.Digits, c.Rounding)
}

// CashRoundingIncrement returns the minimum rounding increment for cash
// amounts, e.g. 0.05 for CHF cash.
func (c Currency) CashRoundingIncrement() decimal.Decimal {
	return increment(c.CashDigits, c.CashRounding)
}

func increment(digits, rounding int) decimal.Decimal {
	if rounding == 0 {
		return decimal.New(1, int32(-digits))
	}
	return decimal.New(int64(rounding), int32(-digits))
}

// PluralizedName returns the display string for the given plural category,
// falling back to the "other" form and finally the base name.
func (c Currency) PluralizedName(category PluralCategory) string {
	if s, ok := c.Count[category]; ok {
		return s
	}
	if s, ok := c.Count[PluralOther]; ok {
		return s
	}
	return c.Name
}

package cldr

import "github.com/finlocale/currency_catalog/internal/core/domain"

// rawLocaleFile mirrors the on-disk shape of one embedded locale dataset.
type rawLocaleFile struct {
	Locale     string                 `json:"locale"`
	Currencies map[string]rawCurrency `json:"currencies"`
}

// rawCurrency is one dataset entry before defaulting. Pointer fields are
// optional in the JSON; absence carries meaning for ISODigits and To.
type rawCurrency struct {
	Name         string            `json:"name"`
	Symbol       string            `json:"symbol"`
	NarrowSymbol string            `json:"narrow_symbol"`
	AltCode      string            `json:"alt_code"`
	Digits       int               `json:"digits"`
	Rounding     int               `json:"rounding"`
	CashDigits   *int              `json:"cash_digits"`
	CashRounding *int              `json:"cash_rounding"`
	ISODigits    *int              `json:"iso_digits"`
	Tender       *bool             `json:"tender"`
	Count        map[string]string `json:"count"`
	From         *int              `json:"from"`
	To           *int              `json:"to"`
}

// toDomain applies dataset defaults: symbol and alt code fall back to the
// code, cash precision falls back to standard precision, tender defaults to
// true for built-in entries.
func (r rawCurrency) toDomain(code string) domain.Currency {
	curr := domain.Currency{
		Code:         code,
		AltCode:      r.AltCode,
		Name:         r.Name,
		Symbol:       r.Symbol,
		NarrowSymbol: r.NarrowSymbol,
		Digits:       r.Digits,
		Rounding:     r.Rounding,
		CashDigits:   r.Digits,
		CashRounding: r.Rounding,
		ISODigits:    r.ISODigits,
		Tender:       true,
		From:         r.From,
		To:           r.To,
	}
	if curr.AltCode == "" {
		curr.AltCode = code
	}
	if curr.Symbol == "" {
		curr.Symbol = code
	}
	if r.CashDigits != nil {
		curr.CashDigits = *r.CashDigits
	}
	if r.CashRounding != nil {
		curr.CashRounding = *r.CashRounding
	}
	if r.Tender != nil {
		curr.Tender = *r.Tender
	}
	if len(r.Count) > 0 {
		curr.Count = make(map[domain.PluralCategory]string, len(r.Count))
		for category, s := range r.Count {
			curr.Count[domain.PluralCategory(category)] = s
		}
	}
	return curr
}

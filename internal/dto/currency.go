package dto

import (
	"github.com/finlocale/currency_catalog/internal/core/domain"
)

// RegisterCurrencyRequest defines the options accepted when registering a
// private-use currency. Code is the only field enforced at binding time;
// name/digits presence is checked in the service so that the documented
// validation order (shape, duplicate, missing option) holds.
type RegisterCurrencyRequest struct {
	Code         string            `json:"code" binding:"required,privateccy"`
	Name         string            `json:"name"`
	Digits       *int              `json:"digits" binding:"omitempty,gte=0"`
	Rounding     *int              `json:"rounding" binding:"omitempty,gte=0"`
	Symbol       string            `json:"symbol"`
	NarrowSymbol string            `json:"narrowSymbol"`
	AltCode      string            `json:"altCode"`
	CashDigits   *int              `json:"cashDigits" binding:"omitempty,gte=0"`
	CashRounding *int              `json:"cashRounding" binding:"omitempty,gte=0"`
	Tender       *bool             `json:"tender"`
	Count        map[string]string `json:"count"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code         string            `json:"code"`
	AltCode      string            `json:"altCode"`
	Name         string            `json:"name"`
	Symbol       string            `json:"symbol"`
	NarrowSymbol string            `json:"narrowSymbol,omitempty"`
	Digits       int               `json:"digits"`
	Rounding     int               `json:"rounding"`
	CashDigits   int               `json:"cashDigits"`
	CashRounding int               `json:"cashRounding"`
	ISODigits    *int              `json:"isoDigits,omitempty"`
	Tender       bool              `json:"tender"`
	Count        map[string]string `json:"count,omitempty"`
	From         *int              `json:"from,omitempty"`
	To           *int              `json:"to,omitempty"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	var count map[string]string
	if len(curr.Count) > 0 {
		count = make(map[string]string, len(curr.Count))
		for k, v := range curr.Count {
			count[string(k)] = v
		}
	}
	return CurrencyResponse{
		Code:         curr.Code,
		AltCode:      curr.AltCode,
		Name:         curr.Name,
		Symbol:       curr.Symbol,
		NarrowSymbol: curr.NarrowSymbol,
		Digits:       curr.Digits,
		Rounding:     curr.Rounding,
		CashDigits:   curr.CashDigits,
		CashRounding: curr.CashRounding,
		ISODigits:    curr.ISODigits,
		Tender:       curr.Tender,
		Count:        count,
		From:         curr.From,
		To:           curr.To,
	}
}

// ToCurrencyMapResponse converts a code -> record map into a response map.
func ToCurrencyMapResponse(currencies map[string]domain.Currency) map[string]CurrencyResponse {
	res := make(map[string]CurrencyResponse, len(currencies))
	for code, curr := range currencies {
		res[code] = ToCurrencyResponse(&curr)
	}
	return res
}

// LocalesResponse lists the locales the dataset ships.
type LocalesResponse struct {
	Locales []string `json:"locales"`
}

// CurrencyStringsResponse carries the display-string -> code index.
type CurrencyStringsResponse struct {
	Locale  string            `json:"locale"`
	Strings map[string]string `json:"strings"`
}

// StringsForCurrencyResponse lists every index key for one code.
type StringsForCurrencyResponse struct {
	Code    string   `json:"code"`
	Locale  string   `json:"locale"`
	Strings []string `json:"strings"`
}

// DisplayNameResponse carries a pluralized display name.
type DisplayNameResponse struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
	Name  string `json:"name"`
}

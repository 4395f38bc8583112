package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func pinYear(t *testing.T, year int) {
	t.Helper()
	prev := nowYear
	nowYear = func() int { return year }
	t.Cleanup(func() { nowYear = prev })
}

func TestStatusPredicates(t *testing.T) {
	pinYear(t, 2026)

	tests := []struct {
		name     string
		currency Currency
		current  bool
		historic bool
	}{
		{
			name:     "active ISO currency",
			currency: Currency{Code: "USD", ISODigits: intPtr(2)},
			current:  true,
			historic: false,
		},
		{
			name:     "withdrawn currency with past end year",
			currency: Currency{Code: "DEM", To: intPtr(2001)},
			current:  false,
			historic: true,
		},
		{
			name:     "ISO currency ending this year is not yet historic",
			currency: Currency{Code: "TST", ISODigits: intPtr(2), To: intPtr(2026)},
			current:  false,
			historic: false,
		},
		{
			name:     "non-ISO entry is historic regardless of end year",
			currency: Currency{Code: "XAU"},
			current:  false,
			historic: true,
		},
		{
			name:     "ISO currency with past end year",
			currency: Currency{Code: "AFA", ISODigits: intPtr(2), To: intPtr(2002)},
			current:  false,
			historic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.current, tt.currency.IsCurrent())
			assert.Equal(t, tt.historic, tt.currency.IsHistoric())
			// Current and historic are mutually exclusive.
			assert.False(t, tt.currency.IsCurrent() && tt.currency.IsHistoric())
		})
	}
}

func TestAnnotated(t *testing.T) {
	usn := Currency{Code: "USN", Name: "US Dollar (Next Day)"}
	usd := Currency{Code: "USD", Name: "US Dollar"}

	assert.True(t, usn.IsAnnotated())
	assert.False(t, usn.IsUnannotated())
	assert.False(t, usd.IsAnnotated())
	assert.True(t, usd.IsUnannotated())
}

func TestCodeShapeHelpers(t *testing.T) {
	assert.Equal(t, "USD", NormalizeCode(" usd "))

	assert.True(t, IsValidCodeShape("USD"))
	assert.True(t, IsValidCodeShape("XTS"))
	assert.False(t, IsValidCodeShape("usd"))
	assert.False(t, IsValidCodeShape("US"))
	assert.False(t, IsValidCodeShape("USDT"))
	assert.False(t, IsValidCodeShape("US1"))

	assert.True(t, IsPrivateUseCode("XAZ"))
	assert.False(t, IsPrivateUseCode("USD"))
	assert.False(t, IsPrivateUseCode("XA1"))
	assert.False(t, IsPrivateUseCode("xaz"))
}

func TestRoundingIncrements(t *testing.T) {
	usd := Currency{Code: "USD", Digits: 2, CashDigits: 2}
	assert.Equal(t, "0.01", usd.RoundingIncrement().String())
	assert.Equal(t, "0.01", usd.CashRoundingIncrement().String())

	chf := Currency{Code: "CHF", Digits: 2, CashDigits: 2, CashRounding: 5}
	assert.Equal(t, "0.01", chf.RoundingIncrement().String())
	assert.Equal(t, "0.05", chf.CashRoundingIncrement().String())

	jpy := Currency{Code: "JPY", Digits: 0, CashDigits: 0}
	assert.Equal(t, "1", jpy.RoundingIncrement().String())
}

func TestPluralizedName(t *testing.T) {
	usd := Currency{
		Code: "USD",
		Name: "US Dollar",
		Count: map[PluralCategory]string{
			PluralOne:   "US dollar",
			PluralOther: "US dollars",
		},
	}
	assert.Equal(t, "US dollar", usd.PluralizedName(PluralOne))
	assert.Equal(t, "US dollars", usd.PluralizedName(PluralFew)) // falls back to other

	bare := Currency{Code: "XTC", Name: "Test Coin"}
	assert.Equal(t, "Test Coin", bare.PluralizedName(PluralOther))
}

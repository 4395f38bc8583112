package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/finlocale/currency_catalog/internal/apperrors"
	"github.com/finlocale/currency_catalog/internal/core/domain"
	"github.com/finlocale/currency_catalog/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LookupServiceTestSuite struct {
	suite.Suite
	mockData     *MockCurrencyDataRepository
	mockRegistry *MockCurrencyRegistry
	service      *services.CurrencyLookupService
}

func (suite *LookupServiceTestSuite) SetupTest() {
	suite.mockData = new(MockCurrencyDataRepository)
	suite.mockRegistry = new(MockCurrencyRegistry)
	suite.mockData.On("CanonicalLocale", "en").Return("en", nil).Maybe()
	suite.mockData.On("CurrenciesForLocale", mock.Anything, "en").Return(fixtureCurrencies(), nil).Maybe()

	filter := services.NewCurrencyFilterService(suite.mockRegistry)
	index := services.NewCurrencyIndexService(suite.mockData)
	suite.service = services.NewCurrencyLookupService(suite.mockData, suite.mockRegistry, filter, index)
}

func (suite *LookupServiceTestSuite) TestCurrencyForCode_Builtin() {
	currency, err := suite.service.CurrencyForCode(context.Background(), "usd", "en")

	suite.Require().NoError(err)
	suite.Equal("USD", currency.Code)
	suite.Equal("US Dollar", currency.Name)
	suite.mockRegistry.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything)
}

func (suite *LookupServiceTestSuite) TestCurrencyForCode_FallsBackToRegistry() {
	ctx := context.Background()
	private := &domain.Currency{Code: "XAZ", Name: "Test Coin", Digits: 2}
	suite.mockRegistry.On("Lookup", ctx, "XAZ").Return(private, nil).Once()

	currency, err := suite.service.CurrencyForCode(ctx, "XAZ", "en")

	suite.Require().NoError(err)
	suite.Equal(private, currency)
	suite.mockRegistry.AssertExpectations(suite.T())
}

func (suite *LookupServiceTestSuite) TestCurrencyForCode_Unknown() {
	ctx := context.Background()
	suite.mockRegistry.On("Lookup", ctx, "ZZZ").Return(nil, nil).Once()

	_, err := suite.service.CurrencyForCode(ctx, "ZZZ", "en")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *LookupServiceTestSuite) TestCurrencyForCode_InvalidShape() {
	for _, code := range []string{"US", "USDX", "U$D", ""} {
		_, err := suite.service.CurrencyForCode(context.Background(), code, "en")
		suite.Require().Error(err, "code %q", code)
		suite.ErrorIs(err, apperrors.ErrInvalidCurrencyCode)
	}
}

func (suite *LookupServiceTestSuite) TestResolve_RecordFastPath() {
	record := &domain.Currency{Code: "USD", Name: "US Dollar"}

	resolved, err := suite.service.Resolve(context.Background(), record, "en")

	suite.Require().NoError(err)
	suite.Same(record, resolved)
	// No repository or registry round trip on the fast path.
	suite.mockData.AssertNotCalled(suite.T(), "CurrenciesForLocale", mock.Anything, mock.Anything)
	suite.mockRegistry.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything)
}

func (suite *LookupServiceTestSuite) TestResolve_StringLooksUp() {
	resolved, err := suite.service.Resolve(context.Background(), "eur", "en")

	suite.Require().NoError(err)
	suite.Equal("EUR", resolved.Code)
}

func (suite *LookupServiceTestSuite) TestCurrenciesForLocale_Filtered() {
	result, err := suite.service.CurrenciesForLocale(context.Background(), "en", []string{"current"}, []string{"annotated"})

	suite.Require().NoError(err)
	suite.Equal([]string{"EUR", "USD"}, sortedKeys(result))
}

func (suite *LookupServiceTestSuite) TestCurrencyStrings_Passthrough() {
	index, err := suite.service.CurrencyStrings(context.Background(), "en", nil, nil)

	suite.Require().NoError(err)
	suite.Equal("USD", index["us dollar"])
	suite.Equal("EUR", index["euro"])
	// Every code in the locale map appears as an index key.
	for _, code := range sortedKeys(fixtureCurrencies()) {
		suite.Contains(index, strings.ToLower(code))
	}
}

func (suite *LookupServiceTestSuite) TestCurrencyStrings_Filtered() {
	index, err := suite.service.CurrencyStrings(context.Background(), "en", []string{"current"}, nil)

	suite.Require().NoError(err)
	suite.Equal("USD", index["us dollar"])
	suite.NotContains(index, "german mark")
	suite.NotContains(index, "dem")
}

func (suite *LookupServiceTestSuite) TestStringsForCurrency() {
	ctx := context.Background()

	strs, err := suite.service.StringsForCurrency(ctx, "EUR", "en")

	suite.Require().NoError(err)
	suite.Contains(strs, "euro")
	suite.Contains(strs, "eur")
	suite.Contains(strs, "euros")
}

func (suite *LookupServiceTestSuite) TestLocalizedName() {
	ctx := context.Background()

	one, err := suite.service.LocalizedName(ctx, "USD", "en", 1)
	suite.Require().NoError(err)
	suite.Equal("US dollar", one)

	many, err := suite.service.LocalizedName(ctx, "USD", "en", 3)
	suite.Require().NoError(err)
	suite.Equal("US dollars", many)
}

func (suite *LookupServiceTestSuite) TestKnownLocales() {
	suite.mockData.On("KnownLocales").Return([]string{"de", "en", "fr"}).Once()

	suite.Equal([]string{"de", "en", "fr"}, suite.service.KnownLocales(context.Background()))
}

func TestLookupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LookupServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"

	"github.com/finlocale/currency_catalog/internal/core/domain"
	"github.com/finlocale/currency_catalog/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FilterServiceTestSuite struct {
	suite.Suite
	mockRegistry *MockCurrencyRegistry
	service      *services.CurrencyFilterService
}

func (suite *FilterServiceTestSuite) SetupTest() {
	suite.mockRegistry = new(MockCurrencyRegistry)
	suite.service = services.NewCurrencyFilterService(suite.mockRegistry)
}

func (suite *FilterServiceTestSuite) TestPassthroughIdentity() {
	ctx := context.Background()
	input := fixtureCurrencies()

	for _, only := range [][]string{nil, {}, {"all"}, {"ALL"}} {
		result, err := suite.service.FilterMap(ctx, input, only, nil)
		suite.Require().NoError(err)
		suite.Equal(input, result)
	}
	// The registry is never consulted on the fast path.
	suite.mockRegistry.AssertNotCalled(suite.T(), "All", mock.Anything)
}

func (suite *FilterServiceTestSuite) TestUnionSemantics() {
	ctx := context.Background()
	// AAA is tender but not current, BBB is current but not tender, CCC
	// is neither.
	input := map[string]domain.Currency{
		"AAA": {Code: "AAA", Tender: true},
		"BBB": {Code: "BBB", ISODigits: intPtr(2)},
		"CCC": {Code: "CCC"},
	}

	result, err := suite.service.FilterMap(ctx, input, []string{"tender", "current"}, nil)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.Contains(result, "AAA")
	suite.Contains(result, "BBB")
	suite.NotContains(result, "CCC")
}

func (suite *FilterServiceTestSuite) TestExceptSubtraction() {
	ctx := context.Background()
	input := fixtureCurrencies()

	result, err := suite.service.FilterMap(ctx, input, []string{"all"}, []string{"historic"})

	suite.Require().NoError(err)
	suite.Contains(result, "USD")
	suite.Contains(result, "EUR")
	suite.Contains(result, "USN")
	suite.NotContains(result, "DEM")
	suite.NotContains(result, "AFA")
	suite.NotContains(result, "XAU") // no ISO digits: historic
}

func (suite *FilterServiceTestSuite) TestExceptWithoutOnly() {
	ctx := context.Background()
	input := fixtureCurrencies()

	// An absent only list defaults to all, so except subtracts from the
	// full input instead of from an empty set.
	result, err := suite.service.FilterMap(ctx, input, nil, []string{"historic"})

	suite.Require().NoError(err)
	suite.Contains(result, "USD")
	suite.Contains(result, "EUR")
	suite.Contains(result, "USN")
	suite.NotContains(result, "DEM")
	suite.NotContains(result, "AFA")
	suite.NotContains(result, "XAU")
}

func (suite *FilterServiceTestSuite) TestFilterSliceExceptWithoutOnly() {
	ctx := context.Background()
	input := []domain.Currency{
		{Code: "USD", ISODigits: intPtr(2), Tender: true},
		{Code: "DEM", To: intPtr(2001)},
		{Code: "EUR", ISODigits: intPtr(2), Tender: true},
	}

	result, err := suite.service.FilterSlice(ctx, input, nil, []string{"historic"})

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("USD", result[0].Code)
	suite.Equal("EUR", result[1].Code)
}

func (suite *FilterServiceTestSuite) TestAnnotatedFilters() {
	ctx := context.Background()
	input := fixtureCurrencies()

	annotated, err := suite.service.FilterMap(ctx, input, []string{"annotated"}, nil)
	suite.Require().NoError(err)
	suite.Equal([]string{"AFA", "USN"}, sortedKeys(annotated))

	unannotated, err := suite.service.FilterMap(ctx, input, []string{"current"}, []string{"annotated"})
	suite.Require().NoError(err)
	suite.Equal([]string{"EUR", "USD"}, sortedKeys(unannotated))
}

func (suite *FilterServiceTestSuite) TestCodeLiterals() {
	ctx := context.Background()
	input := fixtureCurrencies()

	result, err := suite.service.FilterMap(ctx, input, []string{"usd", "DEM"}, nil)

	suite.Require().NoError(err)
	suite.Equal([]string{"DEM", "USD"}, sortedKeys(result))

	// An atom matching nothing yields an empty result, not an error.
	result, err = suite.service.FilterMap(ctx, input, []string{"ZZZ"}, nil)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *FilterServiceTestSuite) TestPrivateUnionsRegistry() {
	ctx := context.Background()
	input := fixtureCurrencies()
	private := map[string]domain.Currency{
		"XAZ": {Code: "XAZ", Name: "Test Coin", Digits: 2},
	}
	suite.mockRegistry.On("All", ctx).Return(private, nil)

	// private alone selects exactly the live registry contents.
	result, err := suite.service.FilterMap(ctx, input, []string{"private"}, nil)
	suite.Require().NoError(err)
	suite.Equal([]string{"XAZ"}, sortedKeys(result))

	// Unioned with a status tag it adds to, not filters, the candidate pool.
	result, err = suite.service.FilterMap(ctx, input, []string{"current", "private"}, nil)
	suite.Require().NoError(err)
	suite.Equal([]string{"EUR", "USD", "USN", "XAZ"}, sortedKeys(result))
}

func (suite *FilterServiceTestSuite) TestPrivateSubtractsInExcept() {
	ctx := context.Background()
	input := fixtureCurrencies()
	private := map[string]domain.Currency{
		"XAZ": {Code: "XAZ", Name: "Test Coin", Digits: 2},
	}
	suite.mockRegistry.On("All", ctx).Return(private, nil)

	result, err := suite.service.FilterMap(ctx, input, []string{"all", "private"}, []string{"private"})

	suite.Require().NoError(err)
	suite.Equal(sortedKeys(fixtureCurrencies()), sortedKeys(result))
	suite.NotContains(result, "XAZ")
}

func (suite *FilterServiceTestSuite) TestFilterSlicePreservesOrder() {
	ctx := context.Background()
	input := []domain.Currency{
		{Code: "USD", ISODigits: intPtr(2), Tender: true},
		{Code: "DEM", To: intPtr(2001)},
		{Code: "EUR", ISODigits: intPtr(2), Tender: true},
	}

	result, err := suite.service.FilterSlice(ctx, input, []string{"current"}, nil)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("USD", result[0].Code)
	suite.Equal("EUR", result[1].Code)
}

func (suite *FilterServiceTestSuite) TestFilterSliceAppendsPrivate() {
	ctx := context.Background()
	input := []domain.Currency{
		{Code: "USD", ISODigits: intPtr(2), Tender: true},
	}
	private := map[string]domain.Currency{
		"XBB": {Code: "XBB", Name: "B Coin"},
		"XAA": {Code: "XAA", Name: "A Coin"},
	}
	suite.mockRegistry.On("All", ctx).Return(private, nil)

	result, err := suite.service.FilterSlice(ctx, input, []string{"all", "private"}, nil)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("USD", result[0].Code)
	// Registry additions come last, in sorted-code order.
	suite.Equal("XAA", result[1].Code)
	suite.Equal("XBB", result[2].Code)
}

func TestFilterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FilterServiceTestSuite))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/finlocale/currency_catalog/internal/apperrors"
	portssvc "github.com/finlocale/currency_catalog/internal/core/ports/services"
	"github.com/finlocale/currency_catalog/internal/dto"
	"github.com/finlocale/currency_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests for locale-scoped currency queries.
type currencyHandler struct {
	lookupService portssvc.CurrencyLookupSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(ls portssvc.CurrencyLookupSvc) *currencyHandler {
	return &currencyHandler{
		lookupService: ls,
	}
}

// registerCurrencyRoutes registers the locale-scoped query routes.
func registerCurrencyRoutes(rg *gin.RouterGroup, lookupService portssvc.CurrencyLookupSvc) {
	h := newCurrencyHandler(lookupService)

	locales := rg.Group("/locales")
	{
		locales.GET("", h.listLocales)
		locales.GET("/:locale/currencies", h.listCurrencies)
		locales.GET("/:locale/currency-strings", h.currencyStrings)
		locales.GET("/:locale/currencies/:code", h.getCurrencyByCode)
		locales.GET("/:locale/currencies/:code/strings", h.stringsForCurrency)
		locales.GET("/:locale/currencies/:code/display-name", h.displayName)
	}
}

// parseFilterAtoms splits a comma-separated only/except query value.
func parseFilterAtoms(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	atoms := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			atoms = append(atoms, part)
		}
	}
	return atoms
}

// listLocales godoc
// @Summary List known locales
// @Description Lists the locales the built-in dataset ships
// @Tags locales
// @Produce json
// @Success 200 {object} dto.LocalesResponse
// @Router /locales [get]
func (h *currencyHandler) listLocales(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LocalesResponse{Locales: h.lookupService.KnownLocales(c.Request.Context())})
}

// listCurrencies godoc
// @Summary List currencies for a locale
// @Description Retrieves the locale's currency map, optionally narrowed by only/except filter atoms
// @Tags currencies
// @Produce json
// @Param locale path string true "Locale identifier (e.g. en, de-AT)"
// @Param only query string false "Comma-separated filter atoms (current, historic, tender, annotated, unannotated, private, all, or codes)"
// @Param except query string false "Comma-separated filter atoms to exclude"
// @Success 200 {object} map[string]dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Unknown locale"
// @Router /locales/{locale}/currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locale := c.Param("locale")
	only := parseFilterAtoms(c.Query("only"))
	except := parseFilterAtoms(c.Query("except"))

	currencies, err := h.lookupService.CurrenciesForLocale(c.Request.Context(), locale, only, except)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownLocale) {
			logger.Warn("Unknown locale requested", slog.String("locale", locale))
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown locale: " + locale})
		} else {
			logger.Error("Failed to list currencies", slog.String("locale", locale), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		}
		return
	}

	logger.Info("Currencies listed", slog.String("locale", locale), slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToCurrencyMapResponse(currencies))
}

// currencyStrings godoc
// @Summary Display-string index for a locale
// @Description Returns the lower-cased display string to currency code index, optionally narrowed by only/except
// @Tags currencies
// @Produce json
// @Param locale path string true "Locale identifier"
// @Param only query string false "Comma-separated filter atoms"
// @Param except query string false "Comma-separated filter atoms to exclude"
// @Success 200 {object} dto.CurrencyStringsResponse
// @Failure 404 {object} map[string]string "Unknown locale"
// @Router /locales/{locale}/currency-strings [get]
func (h *currencyHandler) currencyStrings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locale := c.Param("locale")
	only := parseFilterAtoms(c.Query("only"))
	except := parseFilterAtoms(c.Query("except"))

	index, err := h.lookupService.CurrencyStrings(c.Request.Context(), locale, only, except)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownLocale) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown locale: " + locale})
		} else {
			logger.Error("Failed to build currency strings", slog.String("locale", locale), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build currency strings"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyStringsResponse{Locale: locale, Strings: index})
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Resolves a code against the locale map, falling back to the private registry
// @Tags currencies
// @Produce json
// @Param locale path string true "Locale identifier"
// @Param code path string true "Currency code (e.g. USD, XBT)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Malformed code"
// @Failure 404 {object} map[string]string "Unknown currency or locale"
// @Router /locales/{locale}/currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locale := c.Param("locale")
	code := c.Param("code")

	currency, err := h.lookupService.CurrencyForCode(c.Request.Context(), code, locale)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrencyCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Currency not found", slog.String("code", code), slog.String("locale", locale))
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		case errors.Is(err, apperrors.ErrUnknownLocale):
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown locale: " + locale})
		default:
			logger.Error("Failed to get currency", slog.String("code", code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// stringsForCurrency godoc
// @Summary Display strings for a currency
// @Description Lists every index key that resolves to the given code
// @Tags currencies
// @Produce json
// @Param locale path string true "Locale identifier"
// @Param code path string true "Currency code"
// @Success 200 {object} dto.StringsForCurrencyResponse
// @Failure 404 {object} map[string]string "Unknown currency or locale"
// @Router /locales/{locale}/currencies/{code}/strings [get]
func (h *currencyHandler) stringsForCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locale := c.Param("locale")
	code := c.Param("code")

	strs, err := h.lookupService.StringsForCurrency(c.Request.Context(), code, locale)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrencyCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		case errors.Is(err, apperrors.ErrUnknownCurrency), errors.Is(err, apperrors.ErrUnknownLocale):
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		default:
			logger.Error("Failed to get currency strings", slog.String("code", code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency strings"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.StringsForCurrencyResponse{Code: strings.ToUpper(code), Locale: locale, Strings: strs})
}

// displayName godoc
// @Summary Pluralized display name
// @Description Returns the display name for a count, using the locale's cardinal plural rules
// @Tags currencies
// @Produce json
// @Param locale path string true "Locale identifier"
// @Param code path string true "Currency code"
// @Param count query int false "Count to pluralize for" default(1)
// @Success 200 {object} dto.DisplayNameResponse
// @Failure 404 {object} map[string]string "Unknown currency or locale"
// @Router /locales/{locale}/currencies/{code}/display-name [get]
func (h *currencyHandler) displayName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locale := c.Param("locale")
	code := c.Param("code")
	count, err := strconv.Atoi(c.DefaultQuery("count", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count must be an integer"})
		return
	}

	name, err := h.lookupService.LocalizedName(c.Request.Context(), code, locale, count)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrencyCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		case errors.Is(err, apperrors.ErrUnknownCurrency), errors.Is(err, apperrors.ErrUnknownLocale):
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		default:
			logger.Error("Failed to get display name", slog.String("code", code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve display name"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DisplayNameResponse{Code: strings.ToUpper(code), Count: count, Name: name})
}

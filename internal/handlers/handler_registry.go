package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/finlocale/currency_catalog/internal/apperrors"
	portssvc "github.com/finlocale/currency_catalog/internal/core/ports/services"
	"github.com/finlocale/currency_catalog/internal/dto"
	"github.com/finlocale/currency_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registryHandler handles HTTP requests for the private-use currency
// registry.
type registryHandler struct {
	registryService portssvc.CurrencyRegistrySvcFacade
}

// newRegistryHandler creates a new registryHandler.
func newRegistryHandler(rs portssvc.CurrencyRegistrySvcFacade) *registryHandler {
	return &registryHandler{
		registryService: rs,
	}
}

// registerRegistryRoutes registers the private currency routes. The write
// path gets the rate limiter; reads stay unthrottled.
func registerRegistryRoutes(rg *gin.RouterGroup, registryService portssvc.CurrencyRegistrySvcFacade, writeLimit gin.HandlerFunc) {
	h := newRegistryHandler(registryService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", writeLimit, h.registerCurrency)
		currencies.GET("", h.listRegistered)
		currencies.GET("/:code", h.getRegistered)
	}
}

// registerCurrency godoc
// @Summary Register a private-use currency
// @Description Creates a process-lifetime private currency (code X followed by two letters). Not persisted across restarts.
// @Tags registry
// @Accept json
// @Produce json
// @Param currency body dto.RegisterCurrencyRequest true "Currency options (name and digits required)"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Malformed code or request"
// @Failure 409 {object} map[string]string "Currency already defined"
// @Failure 422 {object} map[string]string "Missing required option"
// @Router /currencies [post]
func (h *registryHandler) registerCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to register private currency", slog.String("code", req.Code))

	currency, err := h.registryService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrencyCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Code %q is not a private-use currency code (X followed by two letters)", req.Code)})
		case errors.Is(err, apperrors.ErrCurrencyAlreadyDefined):
			logger.Warn("Attempted to redefine currency", slog.String("code", req.Code))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Currency code '%s' already exists", req.Code)})
		case errors.Is(err, apperrors.ErrMissingRequiredOption):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name and digits are required"})
		default:
			logger.Error("Failed to register currency", slog.String("code", req.Code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register currency"})
		}
		return
	}

	logger.Info("Private currency registered", slog.String("code", currency.Code))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// listRegistered godoc
// @Summary List registered private currencies
// @Description Snapshot of the private-use registry
// @Tags registry
// @Produce json
// @Success 200 {object} map[string]dto.CurrencyResponse
// @Router /currencies [get]
func (h *registryHandler) listRegistered(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	all, err := h.registryService.All(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list registered currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list registered currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyMapResponse(all))
}

// getRegistered godoc
// @Summary Get a registered private currency
// @Tags registry
// @Produce json
// @Param code path string true "Private-use currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Not registered"
// @Router /currencies/{code} [get]
func (h *registryHandler) getRegistered(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	currency, err := h.registryService.Lookup(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to look up registered currency", slog.String("code", code), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		return
	}
	if currency == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not registered"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

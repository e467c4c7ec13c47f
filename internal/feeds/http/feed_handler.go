// Package http provides HTTP handlers for the price, weather and randomness feeds.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gen-relay/genlayer-relay/internal/feeds/http/dto"
	feedsUseCase "github.com/gen-relay/genlayer-relay/internal/feeds/usecase"
	"github.com/gen-relay/genlayer-relay/internal/httputil"
	customValidation "github.com/gen-relay/genlayer-relay/internal/validation"
)

// FeedHandler handles HTTP requests for the relayed feeds.
type FeedHandler struct {
	feedUseCase feedsUseCase.FeedUseCase
	logger      *slog.Logger
}

// NewFeedHandler creates a new feed handler with required dependencies.
func NewFeedHandler(feedUseCase feedsUseCase.FeedUseCase, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

// PricesHandler returns spot prices.
// GET /prices?ids=bitcoin,ethereum&vs=usd
func (h *FeedHandler) PricesHandler(c *gin.Context) {
	var query dto.PricesQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := query.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	prices, err := h.feedUseCase.Prices(c.Request.Context(), query.IDs, query.Vs)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPricesToResponse(prices))
}

// PriceOptionsHandler returns the assets and currencies offered by the dashboard.
// GET /prices/options
func (h *FeedHandler) PriceOptionsHandler(c *gin.Context) {
	options := h.feedUseCase.PriceOptions(c.Request.Context())
	c.JSON(http.StatusOK, dto.MapPriceOptionsToResponse(options))
}

// WeatherHandler returns the current weather for a city.
// GET /weather?city=London
func (h *FeedHandler) WeatherHandler(c *gin.Context) {
	var query dto.WeatherQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := query.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	weather, err := h.feedUseCase.Weather(c.Request.Context(), query.City)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapWeatherToResponse(weather))
}

// RandomHandler returns the latest public randomness.
// GET /random
func (h *FeedHandler) RandomHandler(c *gin.Context) {
	randomness, err := h.feedUseCase.Random(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRandomnessToResponse(randomness))
}

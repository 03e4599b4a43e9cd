package handlers

import (
	"errors"
	"net/http"

	request "leadmarket/internal/adapter/http/dto/request"
	response "leadmarket/internal/adapter/http/dto/response"
	"leadmarket/internal/domain/pricing"
	"leadmarket/internal/usecase"
	"leadmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for decorating estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Create an estimate
// @Description  Prices a decorating job from room measurements or a fixed package and stores the estimate unpaid.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        estimate  body      request.EstimateRequest  true  "Estimate request"
// @Success      201       {object}  response.EstimateResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate godoc
// @Summary      Get an estimate
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.EstimateResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// GetDisplayPrice godoc
// @Summary      Get a locale-adjusted display price
// @Description  Converts the stored base-currency range for a display locale. Unknown locales fall back to the base locale.
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true   "Estimate ID"
// @Param        locale       query     string  false  "Display locale, e.g. en-IE"
// @Success      200          {object}  response.DisplayPriceResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/display-price [get]
func (h *EstimateHandler) GetDisplayPrice(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	locale := c.Query("locale")

	price, currency, err := h.usecase.DisplayPrice(c.Request.Context(), estimateID, locale)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DisplayPriceResponse{
		EstimateID: estimateID,
		Locale:     locale,
		Currency:   currency,
		Price:      response.PriceRangeResponse{Min: price.Min, Max: price.Max},
	})
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, pricing.ErrInvalidRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrUnknownPackage):
		return pkg.NewDomainErrorSimple("UNKNOWN_PACKAGE", "Unknown decorating package", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

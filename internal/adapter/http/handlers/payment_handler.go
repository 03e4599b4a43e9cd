package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "leadmarket/internal/adapter/http/dto/request"
	response "leadmarket/internal/adapter/http/dto/response"
	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase"
	"leadmarket/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for estimate fees and credit package
// purchases.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// PayEstimate godoc
// @Summary      Pay an estimate fee
// @Description  Charges the fixed estimate fee through the payment provider and marks the estimate paid.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.PaymentResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /payments/estimates/{estimate_id} [post]
func (h *PaymentHandler) PayEstimate(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log.Printf("[payment][handler] pay-estimate start estimate_id=%s", estimateID)

	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if isPaymentGatewayMockEnabled() {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload estimate_id=%s err=%v", estimateID, err)
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.PayEstimate(c.Request.Context(), estimateID, providerPayload)
	if err != nil {
		log.Printf("[payment][handler] pay-estimate failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay-estimate success estimate_id=%s payment_id=%s status=%s", estimateID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPaymentRecord(created))
}

// PurchaseCreditPackage godoc
// @Summary      Purchase a credit package
// @Description  Charges the package price through the payment provider and credits the professional's ledger.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        professional_id  path      string                               true  "Professional ID"
// @Param        purchase         body      request.PurchaseCreditPackageRequest true  "Package purchase"
// @Success      200              {object}  response.PaymentResponse
// @Failure      400              {object}  pkg.HTTPError
// @Failure      404              {object}  pkg.HTTPError
// @Router       /payments/professionals/{professional_id}/credit-packages [post]
func (h *PaymentHandler) PurchaseCreditPackage(c *gin.Context) {
	professionalID := c.Param("professional_id")

	var payload request.PurchaseCreditPackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] package purchase start professional_id=%s package_id=%s", professionalID, payload.PackageID)

	created, newBalance, err := h.usecase.PurchaseCreditPackage(c.Request.Context(), professionalID, payload.PackageID, payload.ProviderPayload)
	if err != nil {
		log.Printf("[payment][handler] package purchase failed professional_id=%s package_id=%s err=%v", professionalID, payload.PackageID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] package purchase success professional_id=%s payment_id=%s new_balance=%d", professionalID, created.ID, newBalance)

	c.JSON(http.StatusOK, response.FromCreditPackagePurchase(created, newBalance))
}

// GetLatestPayment godoc
// @Summary      Get the latest payment for a reference
// @Tags         payments
// @Produce      json
// @Param        reference_id  path      string  true  "Estimate or professional ID"
// @Success      200           {object}  response.PaymentResponse
// @Failure      404           {object}  pkg.HTTPError
// @Router       /payments/{reference_id} [get]
func (h *PaymentHandler) GetLatestPayment(c *gin.Context) {
	referenceID := c.Param("reference_id")

	latest, err := h.usecase.LatestByReferenceID(c.Request.Context(), referenceID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidProfessionalID),
		errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCreditPackage):
		return pkg.NewDomainErrorSimple("UNKNOWN_CREDIT_PACKAGE", "Unknown credit package", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_FOUND", "Professional not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEstimateAlreadyPaid):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_PAID", "Estimate already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDenied):
		return pkg.NewDomainErrorSimple("PAYMENT_DENIED", "Payment denied by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}

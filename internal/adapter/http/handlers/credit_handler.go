package handlers

import (
	"context"
	"errors"
	"net/http"
	"sort"

	request "leadmarket/internal/adapter/http/dto/request"
	response "leadmarket/internal/adapter/http/dto/response"
	"leadmarket/internal/domain/entities"
	"leadmarket/internal/domain/policy"
	"leadmarket/internal/usecase"
	"leadmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProfessionalPayload = pkg.NewDomainErrorSimple("INVALID_PROFESSIONAL_INPUT", "Invalid professional payload", http.StatusBadRequest)
)

// CreditHandler handles HTTP requests for professionals and their credit
// balances.

type CreditHandler struct {
	usecase usecase.ICreditLedgerUseCase
}

func NewCreditHandler(uc usecase.ICreditLedgerUseCase) *CreditHandler {
	return &CreditHandler{usecase: uc}
}

// RegisterProfessional godoc
// @Summary      Register a professional
// @Tags         professionals
// @Accept       json
// @Produce      json
// @Param        professional  body      request.RegisterProfessionalRequest  true  "Professional"
// @Success      201           {object}  response.ProfessionalResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /professionals [post]
func (h *CreditHandler) RegisterProfessional(c *gin.Context) {
	var payload request.RegisterProfessionalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfessionalPayload.HTTPStatus, errInvalidProfessionalPayload.ToHTTPError())
		return
	}

	prof, err := h.usecase.Register(c.Request.Context(), payload.IsPremium, payload.PremiumExpiresAt)
	if err != nil {
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProfessional(prof))
}

// GetBalance godoc
// @Summary      Get a professional's credit balance
// @Tags         professionals
// @Produce      json
// @Param        professional_id  path      string  true  "Professional ID"
// @Success      200              {object}  response.BalanceResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /professionals/{professional_id}/balance [get]
func (h *CreditHandler) GetBalance(c *gin.Context) {
	professionalID := c.Param("professional_id")

	balance, err := h.usecase.Balance(c.Request.Context(), professionalID)
	if err != nil {
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BalanceResponse{ProfessionalID: professionalID, CreditBalance: balance})
}

// GrantTrialCredits godoc
// @Summary      Grant trial credits
// @Description  Credits the fixed trial amount. Eligibility is the caller's responsibility.
// @Tags         professionals
// @Produce      json
// @Param        professional_id  path      string  true  "Professional ID"
// @Success      200              {object}  response.BalanceResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /professionals/{professional_id}/trial-credits [post]
func (h *CreditHandler) GrantTrialCredits(c *gin.Context) {
	h.grant(c, h.usecase.GrantTrialCredits)
}

// GrantReferralReward godoc
// @Summary      Grant a referral reward
// @Tags         professionals
// @Produce      json
// @Param        professional_id  path      string  true  "Professional ID"
// @Success      200              {object}  response.BalanceResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /professionals/{professional_id}/referral-rewards [post]
func (h *CreditHandler) GrantReferralReward(c *gin.Context) {
	h.grant(c, h.usecase.GrantReferralReward)
}

func (h *CreditHandler) grant(c *gin.Context, grantFn func(ctx context.Context, professionalID string) (int64, error)) {
	professionalID := c.Param("professional_id")

	balance, err := grantFn(c.Request.Context(), professionalID)
	if err != nil {
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BalanceResponse{ProfessionalID: professionalID, CreditBalance: balance})
}

// ListCreditPackages godoc
// @Summary      List purchasable credit packages
// @Description  Returns the credit bundles with their advisory estimated lead counts.
// @Tags         professionals
// @Produce      json
// @Success      200  {array}  response.CreditPackageResponse
// @Router       /credit-packages [get]
func (h *CreditHandler) ListCreditPackages(c *gin.Context) {
	packages := make([]response.CreditPackageResponse, 0, len(policy.CreditPackages))
	for _, p := range policy.CreditPackages {
		packages = append(packages, response.FromCreditPackage(p))
	}
	sort.Slice(packages, func(i, j int) bool { return packages[i].Credits < packages[j].Credits })

	c.JSON(http.StatusOK, packages)
}

func mapCreditError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfessionalID), errors.Is(err, usecase.ErrInvalidCreditAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_FOUND", "Professional not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvariantViolation):
		return pkg.NewDomainError("LEDGER_INVARIANT_VIOLATION", "Credit ledger is in an inconsistent state", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

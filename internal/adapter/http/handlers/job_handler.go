package handlers

import (
	"errors"
	"log"
	"net/http"

	request "leadmarket/internal/adapter/http/dto/request"
	response "leadmarket/internal/adapter/http/dto/response"
	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase"
	"leadmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for job listings and lead purchases.

type JobHandler struct {
	usecase usecase.ILeadAllocatorUseCase
}

func NewJobHandler(uc usecase.ILeadAllocatorUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// PostJob godoc
// @Summary      Post a job listing
// @Description  Publishes a customer's job with four purchasable lead slots.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      request.PostJobRequest  true  "Job listing"
// @Success      201  {object}  response.JobListingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /jobs [post]
func (h *JobHandler) PostJob(c *gin.Context) {
	var payload request.PostJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.PostJob(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[leads][handler] post failed owner=%s err=%v", payload.OwnerCustomerID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJobListing(job))
}

// GetJob godoc
// @Summary      Get a job listing
// @Tags         jobs
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {object}  response.JobListingResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/{job_id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobListing(job))
}

// PurchaseLead godoc
// @Summary      Purchase a lead slot
// @Description  Debits the professional's credits and grants one of the job's slots. Debit and grant succeed or fail together.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job_id    path      string                       true  "Job ID"
// @Param        purchase  body      request.PurchaseLeadRequest  true  "Purchase request"
// @Success      200       {object}  response.LeadPurchaseResponse
// @Failure      402       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/leads [post]
func (h *JobHandler) PurchaseLead(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.PurchaseLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	log.Printf("[leads][handler] purchase start job_id=%s professional_id=%s", jobID, payload.ProfessionalID)

	purchase, err := h.usecase.PurchaseLead(c.Request.Context(), jobID, payload.ProfessionalID)
	if err != nil {
		log.Printf("[leads][handler] purchase failed job_id=%s professional_id=%s err=%v", jobID, payload.ProfessionalID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[leads][handler] purchase success job_id=%s professional_id=%s charged=%d", jobID, payload.ProfessionalID, purchase.Record.CreditsCharged)

	c.JSON(http.StatusOK, response.FromLeadPurchase(purchase))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobListing), errors.Is(err, usecase.ErrInvalidProfessionalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job listing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotPaid):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_PAID", "Estimate has not been paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateAlreadyReferenced):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_REFERENCED", "Estimate already backs another job listing", http.StatusConflict)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_FOUND", "Professional not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInsufficientCredits):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_CREDITS", "Insufficient credits", http.StatusPaymentRequired)
	case errors.Is(err, entities.ErrAlreadyPurchased):
		return pkg.NewDomainErrorSimple("LEAD_ALREADY_PURCHASED", "Lead already purchased for this job", http.StatusConflict)
	case errors.Is(err, entities.ErrSlotsFull):
		return pkg.NewDomainErrorSimple("JOB_SLOTS_FULL", "All lead slots for this job are taken", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package routes

import (
	"leadmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates      = "/estimates"
	PathJobs           = "/jobs"
	PathProfessionals  = "/professionals"
	PathPayments       = "/payments"
	PathCreditPackages = "/credit-packages"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	jobHandler *handlers.JobHandler,
	creditHandler *handlers.CreditHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:estimate_id", estimateHandler.GetEstimate)
		estimates.GET("/:estimate_id/display-price", estimateHandler.GetDisplayPrice)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.PostJob)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.POST("/:job_id/leads", jobHandler.PurchaseLead)
	}

	professionals := rg.Group(PathProfessionals)
	{
		professionals.POST("", creditHandler.RegisterProfessional)
		professionals.GET("/:professional_id/balance", creditHandler.GetBalance)
		professionals.POST("/:professional_id/trial-credits", creditHandler.GrantTrialCredits)
		professionals.POST("/:professional_id/referral-rewards", creditHandler.GrantReferralReward)
	}

	rg.GET(PathCreditPackages, creditHandler.ListCreditPackages)

	payments := rg.Group(PathPayments)
	{
		payments.POST("/estimates/:estimate_id", paymentHandler.PayEstimate)
		payments.POST("/professionals/:professional_id/credit-packages", paymentHandler.PurchaseCreditPackage)
		payments.GET("/:reference_id", paymentHandler.GetLatestPayment)
	}
}

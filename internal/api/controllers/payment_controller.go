package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"elimu/internal/models/request_models"
	"elimu/internal/services"
	"elimu/pkg/utils"
)

type PaymentController struct {
	checkoutService     services.CheckoutService
	webhookService      services.WebhookService
	subscriptionService services.SubscriptionServiceInterface
}

func NewPaymentController(
	checkoutService services.CheckoutService,
	webhookService services.WebhookService,
	subscriptionService services.SubscriptionServiceInterface,
) *PaymentController {
	return &PaymentController{
		checkoutService:     checkoutService,
		webhookService:      webhookService,
		subscriptionService: subscriptionService,
	}
}

// CreateCheckout godoc
// @Summary Start a subscription checkout
// @Description Creates a pending subscription and initiates a mobile-money charge; the subscription activates asynchronously via webhook
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/create-checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	var request request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	checkout, err := p.checkoutService.StartCheckout(c.Request.Context(), userID, request.PlanID, request.Phone)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, checkout.Message)
}

// HandleWebhook godoc
// @Summary Payment provider webhook
// @Description Consumes payment-outcome events; always returns 200 except for invalid signatures
// @Tags Payments
// @Accept json
// @Produce json
// @Router /webhooks/lenco [post]
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	result, err := p.webhookService.HandleEvent(c.Request.Context(), rawBody, c.GetHeader("X-Lenco-Signature"))
	if err != nil {
		// Signature mismatch is the only non-200 webhook outcome.
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MySubscriptions godoc
// @Summary List the caller's subscriptions
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/me [get]
func (p *PaymentController) MySubscriptions(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	subs, err := p.subscriptionService.ListForAccount(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"subscriptions": subs}, "")
}

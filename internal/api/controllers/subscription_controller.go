package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

func (s *SubscriptionController) ListPlans(c *gin.Context) {
	plans, err := s.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "")
}

func (s *SubscriptionController) UpsertPlan(c *gin.Context) {
	var req request_models.UpsertPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := s.subscriptionService.UpsertPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan saved")
}

func (s *SubscriptionController) Subscribe(c *gin.Context) {
	var req request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	sub, err := s.subscriptionService.Subscribe(c.Request.Context(), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sub, "Subscription active")
}

func (s *SubscriptionController) Cancel(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := s.subscriptionService.Cancel(c.Request.Context(), identity.ID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Subscription cancelled")
}

// Current returns the caller's active subscription, or null when none.
func (s *SubscriptionController) Current(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	sub, err := s.subscriptionService.Current(c.Request.Context(), identity.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sub, "")
}

func (s *SubscriptionController) History(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	subs, err := s.subscriptionService.History(c.Request.Context(), identity.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, subs, "")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type DietController struct {
	dietService services.DietServiceInterface
}

func NewDietController(dietService services.DietServiceInterface) *DietController {
	return &DietController{dietService: dietService}
}

func (d *DietController) ListPlans(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plans, total, err := d.dietService.ListPlans(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(plans, page, limit, total), "")
}

func (d *DietController) CreatePlan(c *gin.Context) {
	var req request_models.UpsertDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	plan, err := d.dietService.CreatePlan(c.Request.Context(), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Diet plan created")
}

func (d *DietController) UpdatePlan(c *gin.Context) {
	var req request_models.UpsertDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := d.dietService.UpdatePlan(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Diet plan updated")
}

func (d *DietController) DeletePlan(c *gin.Context) {
	if err := d.dietService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Diet plan deleted")
}

func (d *DietController) Assign(c *gin.Context) {
	var req request_models.AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	assignment, err := d.dietService.Assign(c.Request.Context(), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, assignment, "Diet plan assigned")
}

func (d *DietController) UpdateAssignment(c *gin.Context) {
	var req request_models.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	assignment, err := d.dietService.UpdateAssignment(c.Request.Context(), identity.ID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, assignment, "Assignment updated")
}

func (d *DietController) MyAssignments(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	assignments, err := d.dietService.MyAssignments(c.Request.Context(), identity.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, assignments, "")
}

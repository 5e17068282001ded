package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutController(workoutService services.WorkoutServiceInterface) *WorkoutController {
	return &WorkoutController{workoutService: workoutService}
}

func (w *WorkoutController) ListPlans(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plans, total, err := w.workoutService.ListPlans(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(plans, page, limit, total), "")
}

func (w *WorkoutController) CreatePlan(c *gin.Context) {
	var req request_models.UpsertWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	plan, err := w.workoutService.CreatePlan(c.Request.Context(), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Workout plan created")
}

func (w *WorkoutController) UpdatePlan(c *gin.Context) {
	var req request_models.UpsertWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := w.workoutService.UpdatePlan(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Workout plan updated")
}

func (w *WorkoutController) DeletePlan(c *gin.Context) {
	if err := w.workoutService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Workout plan deleted")
}

func (w *WorkoutController) Assign(c *gin.Context) {
	var req request_models.AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	assignment, err := w.workoutService.Assign(c.Request.Context(), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, assignment, "Workout plan assigned")
}

// UpdateAssignment lets a member update progress on their own assignment.
func (w *WorkoutController) UpdateAssignment(c *gin.Context) {
	var req request_models.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	assignment, err := w.workoutService.UpdateAssignment(c.Request.Context(), identity.ID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, assignment, "Assignment updated")
}

func (w *WorkoutController) MyAssignments(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	assignments, err := w.workoutService.MyAssignments(c.Request.Context(), identity.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, assignments, "")
}

func (w *WorkoutController) ClientAssignments(c *gin.Context) {
	assignments, err := w.workoutService.ClientAssignments(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, assignments, "")
}

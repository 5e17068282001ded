package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitcore/internal/services"
	"fitcore/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	activityService  services.ActivityServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, activityService services.ActivityServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		activityService:  activityService,
	}
}

// Report builds the admin overview. Optional ?start=RFC3339&end=RFC3339
// bound the revenue window; defaults cover the last 30 days.
func (d *DashboardController) Report(c *gin.Context) {
	var start, end time.Time
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start time, expected RFC3339")
			return
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end time, expected RFC3339")
			return
		}
		end = parsed
	}

	report, err := d.dashboardService.BuildReport(c.Request.Context(), start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "")
}

func (d *DashboardController) ActivityLog(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	logs, total, err := d.activityService.List(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(logs, page, limit, total), "")
}

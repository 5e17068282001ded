package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type VideoController struct {
	videoService services.VideoServiceInterface
}

func NewVideoController(videoService services.VideoServiceInterface) *VideoController {
	return &VideoController{videoService: videoService}
}

// List returns only the videos the caller's tier can watch.
func (v *VideoController) List(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	identity := middleware.IdentityFrom(c)
	videos, total, err := v.videoService.List(c.Request.Context(), identity.ID, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(videos, page, limit, total), "")
}

func (v *VideoController) Get(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	video, err := v.videoService.Get(c.Request.Context(), identity.ID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, video, "")
}

func (v *VideoController) Create(c *gin.Context) {
	var req request_models.UpsertVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	video, err := v.videoService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, video, "Video created")
}

func (v *VideoController) Update(c *gin.Context) {
	var req request_models.UpsertVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	video, err := v.videoService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, video, "Video updated")
}

func (v *VideoController) Delete(c *gin.Context) {
	if err := v.videoService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Video deleted")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type ClassController struct {
	classService services.ClassServiceInterface
}

func NewClassController(classService services.ClassServiceInterface) *ClassController {
	return &ClassController{classService: classService}
}

func (cc *ClassController) List(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	classes, total, err := cc.classService.List(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(classes, page, limit, total), "")
}

func (cc *ClassController) Get(c *gin.Context) {
	class, err := cc.classService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, class, "")
}

func (cc *ClassController) Create(c *gin.Context) {
	var req request_models.UpsertClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	class, err := cc.classService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, class, "Class created")
}

func (cc *ClassController) Update(c *gin.Context) {
	var req request_models.UpsertClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	class, err := cc.classService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, class, "Class updated")
}

func (cc *ClassController) Delete(c *gin.Context) {
	if err := cc.classService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Class deleted")
}

// Reserve books a seat. Capacity is enforced inside a single database
// transaction, so two racing requests for the last seat cannot both win.
func (cc *ClassController) Reserve(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	reservation, err := cc.classService.Reserve(c.Request.Context(), c.Param("id"), identity.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reservation, "Seat reserved")
}

func (cc *ClassController) CancelReservation(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := cc.classService.CancelReservation(c.Request.Context(), c.Param("id"), identity.ID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Reservation cancelled")
}

func (cc *ClassController) MyReservations(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	reservations, err := cc.classService.MyReservations(c.Request.Context(), identity.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reservations, "")
}

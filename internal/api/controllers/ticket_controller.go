package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type TicketController struct {
	ticketService services.TicketServiceInterface
}

func NewTicketController(ticketService services.TicketServiceInterface) *TicketController {
	return &TicketController{ticketService: ticketService}
}

func (t *TicketController) Open(c *gin.Context) {
	var req request_models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	ticket, err := t.ticketService.Open(c.Request.Context(), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, ticket, "Ticket opened")
}

func (t *TicketController) Get(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	ticket, err := t.ticketService.Get(c.Request.Context(), c.Param("id"), identity.ID, identity.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, ticket, "")
}

func (t *TicketController) MyTickets(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	identity := middleware.IdentityFrom(c)
	tickets, total, err := t.ticketService.MyTickets(c.Request.Context(), identity.ID, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(tickets, page, limit, total), "")
}

func (t *TicketController) AllTickets(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	tickets, total, err := t.ticketService.AllTickets(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(tickets, page, limit, total), "")
}

func (t *TicketController) Reply(c *gin.Context) {
	var req request_models.TicketReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	reply, err := t.ticketService.Reply(c.Request.Context(), c.Param("id"), identity.ID, identity.Role, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reply, "Reply added")
}

func (t *TicketController) Close(c *gin.Context) {
	if err := t.ticketService.Close(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Ticket closed")
}

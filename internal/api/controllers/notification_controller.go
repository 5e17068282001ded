package controllers

import (
	"github.com/gin-gonic/gin"

	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List returns the caller's notifications, newest first. ?unread=true limits
// the result to unread ones.
func (n *NotificationController) List(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	identity := middleware.IdentityFrom(c)
	unreadOnly := c.Query("unread") == "true"

	notifications, total, err := n.notificationService.List(c.Request.Context(), identity.ID, unreadOnly, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(notifications, page, limit, total), "")
}

func (n *NotificationController) MarkRead(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := n.notificationService.MarkRead(c.Request.Context(), identity.ID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notification marked as read")
}

func (n *NotificationController) MarkAllRead(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if err := n.notificationService.MarkAllRead(c.Request.Context(), identity.ID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "All notifications marked as read")
}

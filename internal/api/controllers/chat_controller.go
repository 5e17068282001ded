package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"fitcore/internal/chat"
	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
	hub         *chat.Hub
	upgrader    websocket.Upgrader
	logger      *zap.Logger
}

func NewChatController(chatService services.ChatServiceInterface, hub *chat.Hub, logger *zap.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		hub:         hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from the SPA origin; tokens gate access.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// SendMessage is the REST entry into the same path the websocket uses.
func (cc *ChatController) SendMessage(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid receiver id")
		return
	}

	identity := middleware.IdentityFrom(c)
	message, err := cc.chatService.SendMessage(c.Request.Context(), identity.ID, receiverID, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, message, "Message sent")
}

func (cc *ChatController) Conversation(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	peerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	identity := middleware.IdentityFrom(c)
	messages, total, err := cc.chatService.Conversation(c.Request.Context(), identity.ID, peerID, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(messages, page, limit, total), "")
}

// Socket upgrades the connection and joins the caller's room. Inbound
// send_message frames go through the same SendMessage path as the REST
// endpoint; replies and errors come back as frames on the socket.
func (cc *ChatController) Socket(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	conn, err := cc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		cc.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	room := identity.ID.String()
	cc.hub.Register(room, conn)
	defer func() {
		cc.hub.Unregister(room, conn)
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var frame chat.Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			cc.writeError(conn, "Invalid frame")
			continue
		}

		switch frame.Event {
		case "send_message":
			cc.handleSendFrame(c, identity, conn, frame.Data)
		default:
			cc.writeError(conn, "Unknown event: "+frame.Event)
		}
	}
}

func (cc *ChatController) handleSendFrame(c *gin.Context, identity *middleware.Identity, conn *websocket.Conn, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		cc.writeError(conn, "Invalid payload")
		return
	}
	var req request_models.SendMessageRequest
	if err := json.Unmarshal(raw, &req); err != nil || req.ReceiverID == "" || req.Content == "" {
		cc.writeError(conn, "Invalid payload")
		return
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		cc.writeError(conn, "Invalid receiver id")
		return
	}

	if _, err := cc.chatService.SendMessage(c.Request.Context(), identity.ID, receiverID, req.Content); err != nil {
		cc.writeError(conn, err.Error())
	}
	// Success is confirmed by the message_sent frame pushed to the sender's
	// room by the service.
}

func (cc *ChatController) writeError(conn *websocket.Conn, message string) {
	frame, err := json.Marshal(chat.Frame{Event: "error", Data: gin.H{"message": message}})
	if err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, frame)
}

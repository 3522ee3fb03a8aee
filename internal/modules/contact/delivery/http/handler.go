package handler

import (
	"log/slog"
	"net/http"

	contactDto "anoa.com/portfoliocms/internal/modules/contact/dto"
	contact "anoa.com/portfoliocms/internal/modules/contact/service"
	"anoa.com/portfoliocms/pkg/response"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

type ContactHandler struct {
	contactService contact.ContactService
	redisClient    *redis.Client
	upgrader       websocket.Upgrader
	logger         *slog.Logger
}

// NewContactHandler wires the REST endpoints and the live feed. originAllowed
// guards websocket upgrades; nil accepts any origin.
func NewContactHandler(contactService contact.ContactService, redisClient *redis.Client, originAllowed func(string) bool, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		redisClient:    redisClient,
		logger:         logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if originAllowed == nil || origin == "" {
					return true
				}
				return originAllowed(origin)
			},
		},
	}
}

// Register mounts the owner routes on an authenticated group.
func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListMessages)
	rg.GET("/unread-count", h.UnreadCount)
	rg.GET("/ws", h.HandleWebSocket)
	rg.GET("/:id", h.GetMessage)
	rg.POST("/:id/read", h.MarkRead)
	rg.POST("/:id/unread", h.MarkUnread)
	rg.DELETE("/:id", h.DeleteMessage)
}

func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req contactDto.SendContactMessageRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.contactService.Send(c.Request.Context(), c.Param("username"), c.ClientIP(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "message sent successfully", res)
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var query contactDto.ContactMessageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.contactService.List(c.Request.Context(), userID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "contact messages retrieved successfully", res)
}

func (h *ContactHandler) UnreadCount(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.contactService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "unread count retrieved successfully", res)
}

func (h *ContactHandler) GetMessage(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.contactService.Get(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "contact message retrieved successfully", res)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.contactService.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "contact message marked as read", res)
}

func (h *ContactHandler) MarkUnread(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.contactService.MarkUnread(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "contact message marked as unread", res)
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "contact message deleted successfully", nil)
}

// HandleWebSocket streams the caller's new contact messages as JSON text frames.
func (h *ContactHandler) HandleWebSocket(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.redisClient == nil {
		response.Fail(c, http.StatusServiceUnavailable, "live updates are not available")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("failed to upgrade websocket", "error", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := h.redisClient.Subscribe(ctx, contact.Channel(userID))
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		h.logger.Error("failed to subscribe to contact channel", "user_id", userID, "error", err)
		return
	}

	ch := pubsub.Channel()

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				h.logger.Debug("websocket write failed", "user_id", userID, "error", err)
				return
			}
		case <-clientClosed:
			return
		case <-ctx.Done():
			return
		}
	}
}

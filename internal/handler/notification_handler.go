package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/edusync/edusync-backend/internal/middleware"
	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/edusync/edusync-backend/internal/response"
	"github.com/edusync/edusync-backend/internal/service"
	"github.com/edusync/edusync-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// NotificationHandler handles the notification feed, read-state flips, the
// admin broadcast entry point, and the live WebSocket stream.
type NotificationHandler struct {
	notificationService *service.NotificationService
	rdb                 *redis.Client
	log                 zerolog.Logger
	upgrader            websocket.Upgrader
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *service.NotificationService, rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		rdb:                 rdb,
		log:                 log.With().Str("component", "notification_handler").Logger(),
		upgrader:            buildUpgrader(allowedOrigins),
	}
}

// List godoc
// GET /api/v1/notifications
// Returns the caller's own feed, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)

	notifications, err := h.notificationService.ListFor(c.Request.Context(), claims)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead godoc
// POST /api/v1/notifications/:id/read
// Flips the read flag on a notification owned by the caller.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id := c.Param("id")

	if err := h.notificationService.MarkRead(c.Request.Context(), id, claims); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotOwner):
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// MarkAllRead godoc
// POST /api/v1/notifications/read-all
// Flips every unread notification in the caller's feed.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	claims := middleware.GetClaims(c)

	if err := h.notificationService.MarkAllRead(c.Request.Context(), claims); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Broadcast godoc
// POST /api/v1/admin/notifications/broadcast
// Enqueues a broadcast to every approved faculty member. The fanout worker
// performs the per-recipient writes.
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.BroadcastRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.notificationService.EnqueueBroadcast(c.Request.Context(), req.Message, claims.Email); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"queued": true})
}

// Stream godoc
// WS /ws/v1/notifications/stream?token=...
// Upgrades to WebSocket and relays the caller's live feed channel. Delivery
// is best-effort: consumers must tolerate duplicates and refresh via List.
func (h *NotificationHandler) Stream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	channel := service.FeedChannel(claims)
	sub := h.rdb.Subscribe(c.Request.Context(), channel)
	defer sub.Close()

	wsLog := h.log.With().
		Str("user_id", claims.UserID).
		Str("channel", channel).
		Logger()
	wsLog.Info().Msg("Feed subscriber connected")

	// Reader goroutine: the only signal we take from the client is the
	// connection closing, which cancels the relay loop.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				wsLog.Debug().Msg("Subscription closed")
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				wsLog.Debug().Err(err).Msg("Write failed, closing")
				return
			}
		case <-done:
			wsLog.Info().Msg("Feed subscriber disconnected")
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

package stream

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartconnect/internal/pkg/jwt"
	"smartconnect/internal/pkg/response"
)

// WSHandler upgrades panel connections to the notification stream.
type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
	log        *zap.Logger
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service, log *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, jwtService: jwtService, log: log}
}

// HandleWebSocket serves GET /notifications/ws?token=JWT.
// Auth rides in the query because browsers cannot set headers on a
// websocket upgrade.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required. Use ?token=YOUR_JWT_TOKEN")
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.log.Debug("notification stream connected", zap.Int64("user_id", claims.UserID))
	h.hub.ServeWS(conn, claims.UserID)
}

package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"mtaanimarket/internal/adapter/api/middleware"
	"mtaanimarket/internal/infrastructure/ws"
	"mtaanimarket/pkg/errors"
)

// BadgeStreamHandler upgrades authenticated clients onto the unread
// badge stream. The token rides in a query parameter because browser
// WebSocket clients cannot set headers.
type BadgeStreamHandler struct {
	hub            *ws.Hub
	authMiddleware *middleware.AuthMiddleware
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the web client origin once it is deployed
	},
}

func NewBadgeStreamHandler(hub *ws.Hub, authMiddleware *middleware.AuthMiddleware) *BadgeStreamHandler {
	return &BadgeStreamHandler{
		hub:            hub,
		authMiddleware: authMiddleware,
	}
}

func (h *BadgeStreamHandler) Stream(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication token is required", nil)
	}

	userID, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.hub.Register <- client

	go client.ReadPump(h.hub)
	go client.WritePump()

	return nil
}

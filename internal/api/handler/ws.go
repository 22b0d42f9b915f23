package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	statsInterval = 5 * time.Second
	writeWait     = 10 * time.Second
	pongWait      = 60 * time.Second
	pingPeriod    = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeStatsSocket upgrades the connection and pushes dashboard stats on
// a fixed interval until the client goes away.
func (h *Handler) ServeStatsSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}
	defer conn.Close()

	// The read loop only consumes control frames; its exit signals a
	// closed connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(statsInterval)
	pinger := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer pinger.Stop()

	if !h.pushStats(conn) {
		return
	}
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !h.pushStats(conn) {
				return
			}
		case <-pinger.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// pushStats writes one stats frame; false means the connection is gone
// or the store is failing and the feed should stop.
func (h *Handler) pushStats(conn *websocket.Conn) bool {
	ctx, cancel := context.WithTimeout(context.Background(), statsInterval)
	defer cancel()

	stats, err := h.Stores.Stats(ctx)
	if err != nil {
		h.log.Errorw("stats query failed", "error", err)
		return false
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(stats) == nil
}

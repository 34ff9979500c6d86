package handler

import (
	"fmt"
	"net/http"

	"github.com/fomoscore/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// WSHandler streams live score updates to connected clients. Events are
// published to redis when a record changes; each connection subscribes to
// its user's channel and forwards payloads as-is.
type WSHandler struct {
	redisClient *redis.Client
	upgrader    websocket.Upgrader
	log         *zap.SugaredLogger
}

func NewWSHandler(redisClient *redis.Client, log *zap.SugaredLogger) *WSHandler {
	return &WSHandler{
		redisClient: redisClient,
		log:         log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for now
			},
		},
	}
}

func (h *WSHandler) ScoreUpdates(c *gin.Context) {
	privyID, err := response.GetPrivyID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnw("failed to upgrade websocket", "error", err)
		return
	}
	defer conn.Close()

	if h.redisClient == nil {
		h.log.Warn("redis client is nil, cannot subscribe")
		return
	}

	channel := fmt.Sprintf("score_updates:%s", privyID)
	pubsub := h.redisClient.Subscribe(c.Request.Context(), channel)
	defer pubsub.Close()

	// Wait for confirmation that subscription is created
	if _, err := pubsub.Receive(c.Request.Context()); err != nil {
		h.log.Warnw("failed to subscribe to redis channel", "channel", channel, "error", err)
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
		case msg := <-ch:
			// Payload is already JSON, forward directly
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				h.log.Debugw("failed to write to websocket", "error", err)
				return
			}
		case <-clientClosed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

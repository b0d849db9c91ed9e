package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/safechat/internal/handlers"
)

func APIEndpoints(r *gin.Engine, wsH *handlers.WebSocketHandler, msgH *handlers.HTTPMessageHandler, roomH *handlers.RoomHandler) {
	r.GET("/ws", wsH.HandleWebSocket)

	rooms := r.Group("/rooms")
	{
		rooms.GET("/:room/messages", msgH.GetRoomMessages)
		rooms.GET("/:room/presence", roomH.GetPresence)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Embedded chat client, mirroring the public/ folder of the original
	// deployment.
	r.Static("/app", "./public")
}

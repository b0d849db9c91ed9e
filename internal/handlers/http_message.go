package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkravets/safechat/internal/database"
)

type HTTPMessageHandler struct {
	db *database.Database
}

func NewHTTPMessageHandler(db *database.Database) *HTTPMessageHandler {
	return &HTTPMessageHandler{db: db}
}

// GetRoomMessages returns the room history oldest-first. Retracted messages
// never appear here.
func (h *HTTPMessageHandler) GetRoomMessages(c *gin.Context) {
	website := c.Param("room")

	if _, err := h.db.GetRoom(website); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	messages, err := h.db.GetRoomMessages(website, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	result := make([]gin.H, len(messages))
	for i, msg := range messages {
		result[i] = gin.H{
			"id":         msg.ID,
			"room":       msg.RoomWebsite,
			"username":   msg.Username,
			"content":    msg.Content,
			"created_at": msg.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": result,
		"has_more": len(messages) == limit,
	})
}

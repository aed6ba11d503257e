// File: medigo/handlers/handlerBundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoint
	ChatHandler gin.HandlerFunc

	// Conversation endpoints
	ConversationStateHandler gin.HandlerFunc
	EndConversationHandler   gin.HandlerFunc

	// Operational endpoints
	StatsHandler  gin.HandlerFunc
	HealthHandler gin.HandlerFunc
}

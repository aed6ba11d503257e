package handlers

import (
	"net/http"
	"time"

	conversationRepo "medigo/database/repository/conversation"
	"medigo/models"
	"medigo/services/workflow"
	"medigo/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler runs one conversation turn per request: load (or create) the
// conversation record, hand it to the workflow engine, persist the result.
type ChatHandler struct {
	Engine   *workflow.Engine
	ConvRepo conversationRepo.ConversationRepository
	TTL      time.Duration
}

func NewChatHandler(engine *workflow.Engine, convRepo conversationRepo.ConversationRepository, ttl time.Duration) *ChatHandler {
	return &ChatHandler{Engine: engine, ConvRepo: convRepo, TTL: ttl}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	var conv *models.Conversation
	if req.ConversationID != "" {
		existing, err := h.ConvRepo.Get(req.ConversationID)
		if err != nil {
			utils.GetLogger().Error("failed to load conversation",
				zap.String("conversationId", req.ConversationID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load conversation", "please retry")
			return
		}
		conv = existing
	}

	now := time.Now()
	if conv == nil {
		id := req.ConversationID
		if id == "" {
			id = uuid.NewString()
		}
		conv = &models.Conversation{
			ConversationID: id,
			UserID:         req.UserID,
			Status:         models.ConversationStatusActive,
			CurrentStep:    models.StepInitialGreeting,
			IsActive:       true,
			CreatedAt:      now,
		}
	}
	conv.ExpiresAt = now.Add(h.TTL)

	resp := h.Engine.ProcessMessage(c.Request.Context(), conv, req.Message)

	conv.Messages = append(conv.Messages,
		models.ConversationMessage{Role: "user", Content: req.Message, Timestamp: now},
		models.ConversationMessage{Role: "assistant", Content: resp.Message, Timestamp: time.Now()},
	)
	if err := h.ConvRepo.Save(conv); err != nil {
		utils.GetLogger().Error("failed to save conversation",
			zap.String("conversationId", conv.ConversationID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save conversation", "please retry")
		return
	}

	resp.ConversationID = conv.ConversationID
	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "medigo/database/repository/appointment"
	conversationRepo "medigo/database/repository/conversation"
	"medigo/models"
	"medigo/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ConversationHandler serves conversation state and service stats.
type ConversationHandler struct {
	ConvRepo conversationRepo.ConversationRepository
	ApptRepo appointmentRepo.AppointmentRepository
}

func NewConversationHandler(convRepo conversationRepo.ConversationRepository, apptRepo appointmentRepo.AppointmentRepository) *ConversationHandler {
	return &ConversationHandler{ConvRepo: convRepo, ApptRepo: apptRepo}
}

// GetStateHandler returns the stored conversation record.
func (h *ConversationHandler) GetStateHandler(c *gin.Context) {
	id := c.Param("id")
	conv, err := h.ConvRepo.Get(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load conversation", "please retry")
		return
	}
	if conv == nil {
		utils.JSONError(c, http.StatusNotFound, "Conversation not found", id)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// EndHandler cancels a conversation.
func (h *ConversationHandler) EndHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.ConvRepo.Deactivate(id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Conversation not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to end conversation", "please retry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ended", "conversationId": id})
}

// StatsHandler reports activity counters.
func (h *ConversationHandler) StatsHandler(c *gin.Context) {
	active, err := h.ConvRepo.ActiveCount()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", "please retry")
		return
	}
	messages, err := h.ConvRepo.TotalMessages()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", "please retry")
		return
	}
	appointments, err := h.ApptRepo.CountAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", "please retry")
		return
	}
	c.JSON(http.StatusOK, models.StatsResponse{
		ActiveConversations: active,
		TotalMessages:       messages,
		TotalAppointments:   appointments,
	})
}

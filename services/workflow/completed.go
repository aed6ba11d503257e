package workflow

import (
	"context"

	"medigo/models"
)

// handleCompleted keeps the door open after a finished conversation: a new
// health concern or an explicit "book another" re-enters the funnel.
func (e *Engine) handleCompleted(ctx context.Context, conv *models.Conversation, message string) *models.ChatResponse {
	if healthConcern(message) || wantsAnotherBooking(message) {
		conv.ExtractedData = models.ExtractedData{}
		conv.Status = models.ConversationStatusActive
		conv.CurrentStep = models.StepSymptomCollection

		if healthConcern(message) {
			return e.handleSymptoms(ctx, conv, message)
		}
		return &models.ChatResponse{
			Message:       "Happy to help with another appointment. What symptoms are you experiencing?",
			AgentType:     models.AgentSystem,
			Confidence:    0.9,
			RequiresInput: true,
			NewStep:       models.StepSymptomCollection,
			NewStatus:     models.ConversationStatusActive,
		}
	}

	return &models.ChatResponse{
		Message:       "Thank you for using our service. Take care, and don't hesitate to reach out if anything comes up!",
		AgentType:     models.AgentSystem,
		Confidence:    0.9,
		RequiresInput: true,
	}
}

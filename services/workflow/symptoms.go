package workflow

import (
	"context"
	"fmt"

	"medigo/models"
	"medigo/services/triage"
)

// handleSymptoms runs triage on the message and, unless the case is
// urgent, lines up the best-rated doctor for confirmation.
func (e *Engine) handleSymptoms(ctx context.Context, conv *models.Conversation, message string) *models.ChatResponse {
	if isSmallTalk(message) {
		return &models.ChatResponse{
			Message:       "To find the right doctor for you, please describe the symptoms you're experiencing.",
			AgentType:     models.AgentSymptomAnalyzer,
			Confidence:    0.4,
			RequiresInput: true,
		}
	}

	analysis := e.Classifier.Classify(ctx, message)
	symptoms := analysis.Symptoms
	if len(symptoms) == 0 {
		symptoms = []string{message}
	}
	conv.ExtractedData.Symptoms = symptoms
	conv.ExtractedData.Severity = analysis.Severity
	conv.ExtractedData.Specialization = analysis.Specialization

	if analysis.Severity == models.SeverityUrgent {
		conv.CurrentStep = models.StepCompleted
		conv.Status = models.ConversationStatusUrgent
		return &models.ChatResponse{
			Message: "Your symptoms may indicate a medical emergency. Please call your local emergency " +
				"number or go to the nearest emergency room immediately. Do not wait for an appointment.",
			AgentType:     models.AgentSymptomAnalyzer,
			Confidence:    analysis.Confidence,
			RequiresInput: false,
			NewStep:       models.StepCompleted,
			NewStatus:     models.ConversationStatusUrgent,
			ExtractedData: &conv.ExtractedData,
		}
	}

	doctors, err := e.Matcher.TopDoctors(analysis.Specialization)
	if err != nil {
		return &models.ChatResponse{
			Message:       "I'm having trouble reaching our doctor records right now. Please try again in a moment.",
			AgentType:     models.AgentDoctorMatcher,
			Confidence:    0.3,
			RequiresInput: true,
		}
	}
	if len(doctors) == 0 {
		return &models.ChatResponse{
			Message: fmt.Sprintf("I couldn't find any %s doctors available at the moment. "+
				"Could you describe your symptoms differently, or try again later?", analysis.Specialization),
			AgentType:     models.AgentDoctorMatcher,
			Confidence:    analysis.Confidence,
			RequiresInput: true,
		}
	}

	top := doctors[0]
	conv.ExtractedData.DoctorID = top.ID
	conv.ExtractedData.DoctorName = top.Name
	conv.ExtractedData.Hospital = top.Hospital
	conv.ExtractedData.ConsultationFee = top.ConsultationFee
	conv.CurrentStep = models.StepDoctorConfirmation

	msg := fmt.Sprintf("Based on your symptoms, I recommend %s, a %s specialist", top.Name, top.Specialization)
	if top.Hospital != "" {
		msg += fmt.Sprintf(" at %s", top.Hospital)
	}
	msg += fmt.Sprintf(" (rating %.1f, consultation fee $%.0f). Would you like to book an appointment?",
		top.Rating, top.ConsultationFee)

	return &models.ChatResponse{
		Message:       msg,
		AgentType:     models.AgentDoctorMatcher,
		Confidence:    analysis.Confidence,
		RequiresInput: true,
		NewStep:       models.StepDoctorConfirmation,
		ExtractedData: &conv.ExtractedData,
	}
}

// healthConcern is a tiny indirection so the completed step can reuse the
// triage keyword tables.
func healthConcern(message string) bool {
	return triage.HasHealthConcern(message)
}

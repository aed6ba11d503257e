package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medigo/models"
	"medigo/services/booking"
	"medigo/utils"

	"go.uber.org/zap"
)

// handleConfirmation drives the yes/no/day decision in front of a selected
// doctor. Naming an available weekday books it outright; negative backs out
// to symptom collection; affirmative lists the open days.
func (e *Engine) handleConfirmation(ctx context.Context, conv *models.Conversation, message string) *models.ChatResponse {
	if !conv.ExtractedData.HasDoctor() {
		conv.CurrentStep = models.StepSymptomCollection
		return &models.ChatResponse{
			Message:       "I seem to have lost track of the doctor we were discussing. Could you describe your symptoms again so I can find the right one?",
			AgentType:     models.AgentSystem,
			Confidence:    0.4,
			RequiresInput: true,
			NewStep:       models.StepSymptomCollection,
		}
	}

	if day, ok := ExtractDay(message, e.now()); ok {
		return e.bookOnDay(conv, day)
	}

	if IsNegative(message) {
		conv.ExtractedData.DoctorID = ""
		conv.ExtractedData.DoctorName = ""
		conv.ExtractedData.Hospital = ""
		conv.ExtractedData.ConsultationFee = 0
		conv.ExtractedData.AvailableDays = nil
		conv.CurrentStep = models.StepSymptomCollection
		return &models.ChatResponse{
			Message:       "No problem. Tell me more about your symptoms, or what kind of doctor you'd prefer, and I'll look for another option.",
			AgentType:     models.AgentBookingCoordinator,
			Confidence:    0.8,
			RequiresInput: true,
			NewStep:       models.StepSymptomCollection,
		}
	}

	if IsAffirmative(message) {
		days, err := e.Availability.OpenSlots(conv.ExtractedData.DoctorID, booking.DefaultDaysAhead)
		if err != nil {
			return &models.ChatResponse{
				Message:       "I'm having trouble checking the doctor's schedule right now. Please try again in a moment.",
				AgentType:     models.AgentBookingCoordinator,
				Confidence:    0.3,
				RequiresInput: true,
			}
		}
		if len(days) == 0 {
			return &models.ChatResponse{
				Message: fmt.Sprintf("%s has no open slots in the next %d days. Say \"no\" and I'll look for another doctor.",
					conv.ExtractedData.DoctorName, booking.DefaultDaysAhead),
				AgentType:     models.AgentBookingCoordinator,
				Confidence:    0.7,
				RequiresInput: true,
			}
		}
		names := dayNames(days)
		conv.ExtractedData.AvailableDays = names
		return &models.ChatResponse{
			Message: fmt.Sprintf("Great! %s is available on %s. Which day works for you?",
				conv.ExtractedData.DoctorName, strings.Join(names, ", ")),
			AgentType:     models.AgentBookingCoordinator,
			Confidence:    0.9,
			RequiresInput: true,
			ExtractedData: &conv.ExtractedData,
		}
	}

	return &models.ChatResponse{
		Message: fmt.Sprintf("Would you like to book an appointment with %s? You can say yes, no, or name a day that suits you.",
			conv.ExtractedData.DoctorName),
		AgentType:     models.AgentBookingCoordinator,
		Confidence:    0.4,
		RequiresInput: true,
	}
}

// bookOnDay books the first open slot on the named weekday, if the doctor
// has one inside the lookahead window.
func (e *Engine) bookOnDay(conv *models.Conversation, dayName string) *models.ChatResponse {
	logger := utils.GetLogger()

	days, err := e.Availability.OpenSlots(conv.ExtractedData.DoctorID, booking.DefaultDaysAhead)
	if err != nil {
		return &models.ChatResponse{
			Message:       "I'm having trouble checking the doctor's schedule right now. Please try again in a moment.",
			AgentType:     models.AgentBookingCoordinator,
			Confidence:    0.3,
			RequiresInput: true,
		}
	}

	var target *models.DayAvailability
	for i := range days {
		if days[i].DayName == dayName {
			target = &days[i]
			break
		}
	}
	if target == nil {
		names := dayNames(days)
		conv.ExtractedData.AvailableDays = names
		if len(names) == 0 {
			return &models.ChatResponse{
				Message: fmt.Sprintf("%s has no open slots in the next %d days. Say \"no\" and I'll look for another doctor.",
					conv.ExtractedData.DoctorName, booking.DefaultDaysAhead),
				AgentType:     models.AgentBookingCoordinator,
				Confidence:    0.7,
				RequiresInput: true,
			}
		}
		return &models.ChatResponse{
			Message: fmt.Sprintf("%s isn't available on %s. Open days are %s. Which one works for you?",
				conv.ExtractedData.DoctorName, dayName, strings.Join(names, ", ")),
			AgentType:     models.AgentBookingCoordinator,
			Confidence:    0.8,
			RequiresInput: true,
			ExtractedData: &conv.ExtractedData,
		}
	}

	slot := target.Slots[0]
	appt, err := e.Finalizer.Book(booking.BookingRequest{
		UserID:         conv.UserID,
		ConversationID: conv.ConversationID,
		Doctor: models.Doctor{
			ID:              conv.ExtractedData.DoctorID,
			Name:            conv.ExtractedData.DoctorName,
			Specialization:  conv.ExtractedData.Specialization,
			Hospital:        conv.ExtractedData.Hospital,
			ConsultationFee: conv.ExtractedData.ConsultationFee,
		},
		Slot:     slot,
		Symptoms: conv.ExtractedData.Symptoms,
	})
	if err != nil {
		var conflictErr *booking.ConflictError
		if errors.As(err, &conflictErr) {
			return &models.ChatResponse{
				Message: fmt.Sprintf("That %s slot was just taken. Could you pick another day? %s is available on %s.",
					dayName, conv.ExtractedData.DoctorName, strings.Join(dayNames(days), ", ")),
				AgentType:     models.AgentBookingCoordinator,
				Confidence:    0.7,
				RequiresInput: true,
			}
		}
		// The slot was free and the failure is on our side; don't make the
		// patient re-do the funnel over it.
		logger.Error("appointment finalization failed",
			zap.String("conversationId", conv.ConversationID), zap.Error(err))
		conv.CurrentStep = models.StepCompleted
		conv.Status = models.ConversationStatusCompleted
		return &models.ChatResponse{
			Message: fmt.Sprintf("Your appointment with %s has been booked. You'll receive a confirmation email with the details shortly.",
				conv.ExtractedData.DoctorName),
			AgentType:     models.AgentBookingCoordinator,
			Confidence:    0.6,
			RequiresInput: false,
			NewStep:       models.StepCompleted,
			NewStatus:     models.ConversationStatusCompleted,
		}
	}

	conv.CurrentStep = models.StepCompleted
	conv.Status = models.ConversationStatusCompleted
	return &models.ChatResponse{
		Message:       formatConfirmation(appt),
		AgentType:     models.AgentBookingCoordinator,
		Confidence:    0.95,
		RequiresInput: false,
		NewStep:       models.StepCompleted,
		NewStatus:     models.ConversationStatusCompleted,
		ExtractedData: &conv.ExtractedData,
		AppointmentID: appt.ID,
	}
}

func formatConfirmation(appt *models.Appointment) string {
	var sb strings.Builder
	sb.WriteString("Your appointment is confirmed!\n\n")
	sb.WriteString(fmt.Sprintf("Appointment ID: %s\n", appt.ID))
	sb.WriteString(fmt.Sprintf("Doctor: %s (%s)\n", appt.DoctorName, appt.Specialization))
	if appt.Hospital != "" {
		sb.WriteString(fmt.Sprintf("Hospital: %s\n", appt.Hospital))
	}
	sb.WriteString(fmt.Sprintf("Date: %s\n", formatDate(appt.Date)))
	sb.WriteString(fmt.Sprintf("Time: %s - %s\n", formatTime12(appt.TimeSlot.StartTime), formatTime12(appt.TimeSlot.EndTime)))
	sb.WriteString(fmt.Sprintf("Consultation fee: $%.0f\n\n", appt.ConsultationFee))
	sb.WriteString("Please arrive 15 minutes early. Is there anything else I can help you with?")
	return sb.String()
}

func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

func formatTime12(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

func dayNames(days []models.DayAvailability) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.DayName)
	}
	return names
}

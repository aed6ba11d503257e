package notification

import (
	"context"

	"medigo/models"
	"medigo/utils"

	"go.uber.org/zap"
)

// NotificationService delivers appointment reminders. Delivery channels
// (email, SMS, push) live behind this interface; the worker only hands
// payloads over.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService records reminders in the service log. Stands in
// until a real delivery channel is wired up.
type LogNotificationService struct{}

func (s *LogNotificationService) SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("appointment reminder due",
		zap.String("appointmentId", payload.AppointmentID),
		zap.String("userId", payload.UserID),
		zap.String("doctor", payload.DoctorName),
		zap.String("date", payload.Date),
		zap.String("startTime", payload.StartTime),
	)
	return nil
}

package booking

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "medigo/database/repository/appointment"
	"medigo/models"
	"medigo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderQueue schedules a reminder for a booked appointment.
type ReminderQueue interface {
	ScheduleReminder(appt *models.Appointment) error
}

// DefaultFinalizerService implements FinalizerService with a
// check-then-create flow. The unique slot index in the store backstops the
// race between the two steps.
type DefaultFinalizerService struct {
	Appointments appointmentRepo.AppointmentRepository
	Reminders    ReminderQueue // optional
}

func (s *DefaultFinalizerService) Book(req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	conflict, err := s.Appointments.HasConflict(req.Doctor.ID, req.Slot.Date, req.Slot.StartTime, req.Slot.EndTime)
	if err != nil {
		// Cannot verify the slot, so treat it as taken.
		logger.Warn("conflict check failed", zap.Error(err))
		conflict = true
	}
	if conflict {
		return nil, &ConflictError{DoctorID: req.Doctor.ID, Date: req.Slot.Date, StartTime: req.Slot.StartTime}
	}

	appt := &models.Appointment{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		DoctorID:        req.Doctor.ID,
		DoctorName:      req.Doctor.Name,
		Specialization:  req.Doctor.Specialization,
		Hospital:        req.Doctor.Hospital,
		Date:            req.Slot.Date,
		TimeSlot:        models.SlotWindow{StartTime: req.Slot.StartTime, EndTime: req.Slot.EndTime},
		Symptoms:        req.Symptoms,
		ConsultationFee: req.Doctor.ConsultationFee,
		ConversationID:  req.ConversationID,
		Status:          models.AppointmentStatusScheduled,
		CreatedAt:       time.Now(),
	}
	if err := s.Appointments.Create(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, &ConflictError{DoctorID: req.Doctor.ID, Date: req.Slot.Date, StartTime: req.Slot.StartTime}
		}
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(appt); err != nil {
			logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

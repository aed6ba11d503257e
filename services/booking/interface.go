package booking

import "medigo/models"

// MatchingService finds candidate doctors for a specialization.
type MatchingService interface {
	TopDoctors(specialization string) ([]models.Doctor, error)
}

// AvailabilityService computes a doctor's open slots for the days ahead.
type AvailabilityService interface {
	OpenSlots(doctorID string, daysAhead int) ([]models.DayAvailability, error)
}

// BookingRequest carries everything needed to finalize an appointment.
type BookingRequest struct {
	UserID         string
	ConversationID string
	Doctor         models.Doctor
	Slot           models.Slot
	Symptoms       []string
}

// FinalizerService books a slot after re-checking for conflicts.
type FinalizerService interface {
	Book(req BookingRequest) (*models.Appointment, error)
}

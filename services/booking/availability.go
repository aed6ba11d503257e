package booking

import (
	"fmt"
	"time"

	appointmentRepo "medigo/database/repository/appointment"
	doctorRepo "medigo/database/repository/doctor"
	"medigo/models"
)

// DefaultDaysAhead is the lookahead window when the caller does not ask
// for a specific one.
const DefaultDaysAhead = 7

// DefaultAvailabilityService implements AvailabilityService by subtracting
// booked appointments from the doctor's weekly template.
type DefaultAvailabilityService struct {
	Doctors      doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
	Now          func() time.Time // overridable for tests
}

// OpenSlots walks the window starting tomorrow. Days with no open slots
// are omitted; an unknown doctor yields an empty result, not an error.
func (s *DefaultAvailabilityService) OpenSlots(doctorID string, daysAhead int) ([]models.DayAvailability, error) {
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	doctor, err := s.Doctors.GetByID(doctorID)
	if err != nil {
		return nil, NewLookupError(fmt.Sprintf("fetching doctor %s: %v", doctorID, err))
	}
	if doctor == nil {
		return nil, nil
	}

	now := s.now()
	var days []models.DayAvailability
	for offset := 1; offset <= daysAhead; offset++ {
		date := now.AddDate(0, 0, offset)
		dayName := date.Weekday().String()
		template := doctor.Availability[dayName]
		if len(template) == 0 {
			continue
		}

		dateStr := date.Format("2006-01-02")
		booked, err := s.Appointments.FindBookedSlots(doctorID, dateStr)
		if err != nil {
			return nil, NewLookupError(fmt.Sprintf("fetching booked slots for %s on %s: %v", doctorID, dateStr, err))
		}
		taken := make(map[string]bool, len(booked))
		for _, b := range booked {
			taken[b.StartTime+"-"+b.EndTime] = true
		}

		var open []models.Slot
		for _, w := range template {
			if taken[w.StartTime+"-"+w.EndTime] {
				continue
			}
			open = append(open, models.Slot{Date: dateStr, StartTime: w.StartTime, EndTime: w.EndTime})
		}
		if len(open) > 0 {
			days = append(days, models.DayAvailability{Date: dateStr, DayName: dayName, Slots: open})
		}
	}
	return days, nil
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

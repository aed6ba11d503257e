package booking

import (
	"errors"
	"testing"

	appointmentRepo "medigo/database/repository/appointment"
	"medigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReminderQueue struct {
	scheduled []*models.Appointment
	err       error
}

func (f *fakeReminderQueue) ScheduleReminder(appt *models.Appointment) error {
	f.scheduled = append(f.scheduled, appt)
	return f.err
}

func bookingReq() BookingRequest {
	return BookingRequest{
		UserID:         "user-1",
		ConversationID: "conv-1",
		Doctor: models.Doctor{
			ID:              "doc-1",
			Name:            "Dr. A",
			Specialization:  "Neurology",
			Hospital:        "Neuro Center",
			ConsultationFee: 220,
		},
		Slot:     models.Slot{Date: "2025-06-02", StartTime: "09:00", EndTime: "10:00"},
		Symptoms: []string{"headache"},
	}
}

func TestBookCreatesScheduledAppointment(t *testing.T) {
	appts := &fakeApptRepo{}
	reminders := &fakeReminderQueue{}
	svc := &DefaultFinalizerService{Appointments: appts, Reminders: reminders}

	appt, err := svc.Book(bookingReq())
	require.NoError(t, err)
	require.NotNil(t, appt)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.AppointmentStatusScheduled, appt.Status)
	assert.Equal(t, "doc-1", appt.DoctorID)
	assert.Equal(t, "2025-06-02", appt.Date)
	assert.Equal(t, "09:00", appt.TimeSlot.StartTime)
	require.Len(t, appts.created, 1)
	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, appt.ID, reminders.scheduled[0].ID)
}

func TestBookRefusesHeldSlot(t *testing.T) {
	appts := &fakeApptRepo{conflict: true}
	svc := &DefaultFinalizerService{Appointments: appts}

	_, err := svc.Book(bookingReq())
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Empty(t, appts.created, "no insert after a detected conflict")
}

func TestBookFailsClosedWhenCheckErrors(t *testing.T) {
	appts := &fakeApptRepo{checkErr: errors.New("mongo down")}
	svc := &DefaultFinalizerService{Appointments: appts}

	_, err := svc.Book(bookingReq())
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Empty(t, appts.created)
}

func TestBookTreatsDuplicateInsertAsConflict(t *testing.T) {
	appts := &fakeApptRepo{createErr: appointmentRepo.ErrSlotTaken}
	svc := &DefaultFinalizerService{Appointments: appts}

	_, err := svc.Book(bookingReq())
	var conflictErr *ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestBookSurfacesInsertFailure(t *testing.T) {
	appts := &fakeApptRepo{createErr: errors.New("write refused")}
	svc := &DefaultFinalizerService{Appointments: appts}

	_, err := svc.Book(bookingReq())
	require.Error(t, err)
	var conflictErr *ConflictError
	assert.False(t, errors.As(err, &conflictErr))
}

func TestBookSucceedsWhenReminderFails(t *testing.T) {
	appts := &fakeApptRepo{}
	reminders := &fakeReminderQueue{err: errors.New("queue down")}
	svc := &DefaultFinalizerService{Appointments: appts, Reminders: reminders}

	appt, err := svc.Book(bookingReq())
	assert.NoError(t, err)
	assert.NotNil(t, appt)
}
